package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"tutorial-landing/cmd"
	"tutorial-landing/pkg/config"
	applog "tutorial-landing/pkg/log"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logger := applog.Base()
		logger.Fatal().Err(err).Msg("failed to load configuration")
	}
	applog.Configure(applog.Config{Level: cfg.LogLevel})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cmd.ServeWebsite(ctx, cfg); err != nil {
		logger := applog.Base()
		logger.Error().Err(err).Msg("server error")
		stop()
		os.Exit(1)
	}
}
