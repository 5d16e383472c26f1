package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/fgeck/gowake/internal/config"
	"github.com/fgeck/gowake/internal/services/waker"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Wake every target in the config file",
	Long: `Wake every target listed in the host inventory, in file order. Targets
are woken sequentially unless defaults.parallel is set. Each target gets at
most one send attempt; a bad entry is reported and does not stop the rest.`,
	RunE: runBatch,
}

func runBatch(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		log.Error().Msg("config file is required")
		return cmd.Help()
	}

	// Load configuration
	parser := config.NewParser()
	cfg, err := parser.LoadFile(configFile)
	if err != nil {
		log.Error().Err(err).Str("file", configFile).Msg("failed to load config")
		return err
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		log.Error().Err(err).Msg("invalid configuration")
		return err
	}

	log.Info().
		Str("config", configFile).
		Int("targets", len(cfg.Targets)).
		Bool("parallel", cfg.Defaults.Parallel).
		Msg("configuration loaded")

	ctx, cancel := newSignalContext()
	defer cancel()

	wakerSvc := waker.New(log.Logger)
	results := wakerSvc.WakeAll(ctx, *cfg)

	return reportResults(results)
}

// newSignalContext returns a context cancelled on SIGINT or SIGTERM.
func newSignalContext() (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(context.Background())

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		sig := <-sigChan
		log.Warn().Str("signal", sig.String()).Msg("received signal, shutting down")
		cancel()
	}()

	return ctx, cancel
}
