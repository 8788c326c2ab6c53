// Package web parses web command flags and launches the demo host service.
package web

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/louisbranch/metrika/internal/metrika/tag"
	entrypoint "github.com/louisbranch/metrika/internal/platform/cmd"
	"github.com/louisbranch/metrika/internal/platform/logging"
	"github.com/louisbranch/metrika/internal/platform/otel"
	"github.com/louisbranch/metrika/internal/services/web"
)

// Config holds the web command configuration. Env names are relative to
// the METRIKA_ prefix.
type Config struct {
	HTTPAddr  string `env:"WEB_HTTP_ADDR" envDefault:":8080"`
	TagID     int64  `env:"TAG_ID"`
	ScriptSrc string `env:"SCRIPT_SRC"`
	// InitParameters is read as key:value pairs separated by commas.
	InitParameters map[string]string `env:"INIT_PARAMETERS"`

	Logging logging.Config
	OTel    otel.Config `envPrefix:"OTEL_"`
}

// ParseConfig parses environment and flags into a Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.Int64Var(&cfg.TagID, "tag-id", cfg.TagID, "Analytics counter id")
	fs.StringVar(&cfg.ScriptSrc, "script-src", cfg.ScriptSrc, "Override for the analytics loader URL")
	fs.StringVar(&cfg.Logging.Level, "log-level", cfg.Logging.Level, "Log level (debug, info, warn, error)")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// TagOptions converts the command config into tag mount options.
// The literals true and false become booleans; other values stay strings.
func (c Config) TagOptions() tag.Options {
	opts := tag.Options{
		TagID:     c.TagID,
		ScriptSrc: strings.TrimSpace(c.ScriptSrc),
	}
	if len(c.InitParameters) == 0 {
		return opts
	}
	opts.InitParameters = make(tag.InitParameters, len(c.InitParameters))
	for key, raw := range c.InitParameters {
		key = strings.TrimSpace(key)
		if key == "" {
			continue
		}
		switch value := strings.TrimSpace(raw); value {
		case "true":
			opts.InitParameters[key] = true
		case "false":
			opts.InitParameters[key] = false
		default:
			opts.InitParameters[key] = value
		}
	}
	return opts
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	logger, err := logging.New(cfg.Logging, os.Stderr)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = logger.With().Str("service", entrypoint.ServiceWeb).Logger()

	tagOpts := cfg.TagOptions()
	server, err := web.NewServer(web.Config{
		HTTPAddr: cfg.HTTPAddr,
		Tag:      tagOpts,
		Logger:   logger,
	})
	if err != nil {
		return fmt.Errorf("init web server: %w", err)
	}
	defer server.Close()

	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, entrypoint.RunOptions{
		OTel:   cfg.OTel,
		Logger: logger,
	}, func(ctx context.Context) error {
		logger.Info().
			Str("addr", cfg.HTTPAddr).
			Int64("tag_id", tagOpts.TagID).
			Strs("init_parameters", parameterKeys(tagOpts.InitParameters)).
			Bool("tracing", cfg.OTel.Active()).
			Msg("web listening")
		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}

func parameterKeys(params tag.InitParameters) []string {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}
