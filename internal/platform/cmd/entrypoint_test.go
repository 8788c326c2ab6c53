package cmd

import (
	"context"
	"errors"
	"flag"
	"testing"
)

type testConfig struct {
	Address string `env:"CMD_TEST_ADDRESS" envDefault:"127.0.0.1:8080"`
	Mode    string `env:"CMD_TEST_MODE" envDefault:"server"`
}

func TestParseConfigReadsPrefixedEnvAndFlags(t *testing.T) {
	t.Setenv("METRIKA_CMD_TEST_ADDRESS", "env:9000")
	t.Setenv("METRIKA_CMD_TEST_MODE", "env-mode")
	t.Setenv("CMD_TEST_MODE", "unprefixed")

	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg := testConfig{}
	if err := ParseConfig(&cfg); err != nil {
		t.Fatalf("load config defaults: %v", err)
	}
	fs.StringVar(&cfg.Address, "address", cfg.Address, "address")
	fs.StringVar(&cfg.Mode, "mode", cfg.Mode, "mode")

	if err := ParseArgs(fs, []string{"-address", "flag:9001"}); err != nil {
		t.Fatalf("parse flags: %v", err)
	}
	if cfg.Address != "flag:9001" {
		t.Fatalf("expected flag value for address, got %q", cfg.Address)
	}
	if cfg.Mode != "env-mode" {
		t.Fatalf("expected prefixed env mode, got %q", cfg.Mode)
	}
}

func TestParseConfigRejectsNilTarget(t *testing.T) {
	var cfg *testConfig
	if err := ParseConfig(cfg); err == nil {
		t.Fatal("expected nil target error")
	}
}

func TestParseArgsRejectsNilParser(t *testing.T) {
	if err := ParseArgs(nil, []string{}); err == nil {
		t.Fatal("expected parse args to reject nil parser")
	}
}

func TestParseArgsAcceptsNilArgs(t *testing.T) {
	if err := ParseArgs(flag.NewFlagSet("nil-args", flag.ContinueOnError), nil); err != nil {
		t.Fatalf("ParseArgs() error = %v", err)
	}
}

func TestRunWithTelemetryRejectsMissingInputs(t *testing.T) {
	ctx := context.Background()
	if err := RunWithTelemetry(ctx, "", RunOptions{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing service error")
	}
	if err := RunWithTelemetry(ctx, ServiceWeb, RunOptions{}, nil); err == nil {
		t.Fatal("expected missing run function error")
	}
	if err := RunWithTelemetry(nil, ServiceWeb, RunOptions{}, func(context.Context) error { return nil }); err == nil {
		t.Fatal("expected missing context error")
	}
}

func TestRunWithTelemetryReturnsRunError(t *testing.T) {
	want := errors.New("boom")
	err := RunWithTelemetry(context.Background(), ServiceWeb, RunOptions{}, func(context.Context) error { return want })
	if !errors.Is(err, want) {
		t.Fatalf("RunWithTelemetry() error = %v, want %v", err, want)
	}
}
