package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/aleister1102/siteeagle/internal/common"
	"github.com/aleister1102/siteeagle/internal/config"
	"github.com/aleister1102/siteeagle/internal/differ"
	"github.com/aleister1102/siteeagle/internal/extractor"
	"github.com/aleister1102/siteeagle/internal/httpclient"
	"github.com/aleister1102/siteeagle/internal/logger"
	"github.com/aleister1102/siteeagle/internal/monitor"
	"github.com/aleister1102/siteeagle/internal/notifier"
	"github.com/rs/zerolog"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	flags, err := ParseFlags(args, os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	gCfg, err := config.LoadGlobalConfig(flags.GlobalConfigFile, zerolog.Nop())
	if err != nil {
		log.Printf("[FATAL] Main: Could not load config using path '%s': %v", flags.GlobalConfigFile, err)
		return 1
	}
	flags.ApplyTo(gCfg)

	zLogger, err := logger.New(gCfg.LogConfig)
	if err != nil {
		log.Printf("[FATAL] Main: Could not initialize logger: %v", err)
		return 1
	}

	if err := gCfg.Normalize(); err != nil {
		zLogger.Error().Err(err).Msg("Configuration normalization failed")
		return 1
	}
	if err := config.ValidateConfig(gCfg); err != nil {
		zLogger.Error().Err(err).Msg("Configuration validation failed")
		return 1
	}

	httpClient, err := httpclient.NewHTTPClientBuilder(zLogger.With().Str("component", "HTTPClient").Logger()).
		WithAppConfig(gCfg.HTTPClientConfig).
		Build()
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to create HTTP client")
		return 1
	}

	n, err := notifier.NewNotifier(gCfg.WatchConfig, gCfg.NotificationConfig, httpClient, zLogger)
	if err != nil {
		zLogger.Error().Err(err).Msg("Failed to set up notifications")
		return 1
	}

	watcher := monitor.NewWatcher(
		gCfg.WatchConfig,
		monitor.NewFetcher(httpClient, extractor.NewSelectorExtractor(zLogger), zLogger),
		differ.NewChangeDetector(zLogger),
		notifier.NewNotificationHelper(n, gCfg.NotificationConfig, zLogger),
		zLogger,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return exitCode(watcher.Run(ctx), zLogger)
}

// exitCode maps the watcher's result to a process exit status.
func exitCode(err error, zLogger zerolog.Logger) int {
	var termErr *monitor.TerminationError
	switch {
	case err == nil, errors.Is(err, context.Canceled):
		zLogger.Info().Msg("Shutdown signal received, exiting")
		return 0
	case errors.As(err, &termErr):
		zLogger.Error().
			Err(err).
			Int("consecutive_errors", termErr.ConsecutiveErrors).
			AnErr("root_cause", common.GetRootCause(err)).
			Msg("Watch terminated")
		return 1
	default:
		zLogger.Error().Err(err).Msgf("Watch stopped unexpectedly: %T", err)
		return 1
	}
}
