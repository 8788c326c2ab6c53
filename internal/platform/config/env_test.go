package config

import (
	"strings"
	"testing"
)

type envTestConfig struct {
	TagID     int64  `env:"METRIKA_CONFIG_TEST_TAG_ID" envDefault:"123"`
	ScriptSrc string `env:"METRIKA_CONFIG_TEST_SCRIPT_SRC"`
}

type prefixedTestConfig struct {
	TagID int64 `env:"TAG_ID" envDefault:"7"`
}

func TestParseEnvDefaults(t *testing.T) {
	var cfg envTestConfig

	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.TagID != 123 {
		t.Fatalf("expected default tag id 123, got %d", cfg.TagID)
	}
	if cfg.ScriptSrc != "" {
		t.Fatalf("expected empty script src, got %q", cfg.ScriptSrc)
	}
}

func TestParseEnvOverrides(t *testing.T) {
	t.Setenv("METRIKA_CONFIG_TEST_TAG_ID", "87654321")
	t.Setenv("METRIKA_CONFIG_TEST_SCRIPT_SRC", "https://cdn.test/tag.js")

	var cfg envTestConfig
	if err := ParseEnv(&cfg); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.TagID != 87654321 {
		t.Fatalf("TagID = %d, want 87654321", cfg.TagID)
	}
	if cfg.ScriptSrc != "https://cdn.test/tag.js" {
		t.Fatalf("ScriptSrc = %q", cfg.ScriptSrc)
	}
}

func TestParseEnvError(t *testing.T) {
	var cfg envTestConfig
	t.Setenv("METRIKA_CONFIG_TEST_TAG_ID", "not-an-int")

	err := ParseEnv(&cfg)
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestParseEnvWithPrefixAddsSeparator(t *testing.T) {
	t.Setenv("METRIKA_PREFIX_TEST_TAG_ID", "99")

	var cfg prefixedTestConfig
	if err := ParseEnvWithPrefix(&cfg, "METRIKA_PREFIX_TEST"); err != nil {
		t.Fatalf("parse env: %v", err)
	}
	if cfg.TagID != 99 {
		t.Fatalf("TagID = %d, want 99", cfg.TagID)
	}
}

func TestParseEnvWithPrefixError(t *testing.T) {
	t.Setenv("METRIKA_PREFIX_ERR_TAG_ID", "nope")

	var cfg prefixedTestConfig
	err := ParseEnvWithPrefix(&cfg, "METRIKA_PREFIX_ERR_")
	if err == nil || !strings.Contains(err.Error(), "parse env METRIKA_PREFIX_ERR_*:") {
		t.Fatalf("expected prefixed parse error, got %v", err)
	}
}
