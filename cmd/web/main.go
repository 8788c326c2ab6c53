// Package main starts the browser-facing demo service that mounts the
// analytics tag and reports goals.
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"

	webcmd "github.com/louisbranch/metrika/internal/cmd/web"
	"github.com/rs/zerolog/log"
)

func main() {
	cfg, err := webcmd.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		log.Fatal().Err(err).Msg("parse config")
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := webcmd.Run(ctx, cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to serve")
	}
}
