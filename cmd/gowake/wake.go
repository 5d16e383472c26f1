package main

import (
	"fmt"
	"time"

	"github.com/fgeck/gowake/internal/config"
	"github.com/fgeck/gowake/internal/models"
	"github.com/fgeck/gowake/internal/services/waker"
	"github.com/fgeck/gowake/internal/wol"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	wakeBroadcast     string
	wakePort          int
	wakePollURL       string
	wakeTimeout       time.Duration
	wakePollInterval  time.Duration
	wakeStabilizeWait time.Duration
	wakeParallel      bool
)

var wakeCmd = &cobra.Command{
	Use:   "wake <mac-or-name>...",
	Short: "Wake one or more targets",
	Long: `Wake targets given as MAC addresses (aa:bb:cc:dd:ee:ff, aa-bb-cc-dd-ee-ff,
or aabbccddeeff) or, when a config file is provided, as target names from the
host inventory. Named targets keep their configured broadcast address, port,
and poll URL; flags apply to ad-hoc MAC addresses.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWake,
}

func init() {
	wakeCmd.Flags().StringVarP(&wakeBroadcast, "broadcast", "b", wol.DefaultBroadcastIP, "destination broadcast or unicast IP")
	wakeCmd.Flags().IntVarP(&wakePort, "port", "p", wol.DefaultPort, "destination UDP port")
	wakeCmd.Flags().StringVar(&wakePollURL, "poll-url", "", "URL to poll until the target responds")
	wakeCmd.Flags().DurationVar(&wakeTimeout, "timeout", 5*time.Minute, "max time to wait for the target")
	wakeCmd.Flags().DurationVar(&wakePollInterval, "poll-interval", 10*time.Second, "how often to poll the URL")
	wakeCmd.Flags().DurationVar(&wakeStabilizeWait, "stabilize-wait", 0, "extra wait after the target responds")
	wakeCmd.Flags().BoolVar(&wakeParallel, "parallel", false, "send to all targets concurrently")
}

func runWake(cmd *cobra.Command, args []string) error {
	// Load the inventory if a config file was given, so that arguments can be
	// resolved as target names.
	var cfg *models.WakeConfig
	if configFile != "" {
		parser := config.NewParser()
		loaded, err := parser.LoadFile(configFile)
		if err != nil {
			log.Error().Err(err).Str("file", configFile).Msg("failed to load config")
			return err
		}
		if err := config.Validate(loaded); err != nil {
			log.Error().Err(err).Msg("invalid configuration")
			return err
		}
		cfg = loaded
	}

	batch := models.WakeConfig{
		Defaults: models.TargetDefaults{
			BroadcastIP:   wakeBroadcast,
			Port:          wakePort,
			Parallel:      wakeParallel,
			Timeout:       wakeTimeout,
			PollInterval:  wakePollInterval,
			StabilizeWait: wakeStabilizeWait,
		},
	}
	// Poll settings from the config file apply unless overridden on the
	// command line.
	if cfg != nil {
		if !cmd.Flags().Changed("timeout") {
			batch.Defaults.Timeout = cfg.Defaults.Timeout
		}
		if !cmd.Flags().Changed("poll-interval") {
			batch.Defaults.PollInterval = cfg.Defaults.PollInterval
		}
		if !cmd.Flags().Changed("stabilize-wait") {
			batch.Defaults.StabilizeWait = cfg.Defaults.StabilizeWait
		}
	}

	for _, arg := range args {
		if cfg != nil {
			if target, ok := config.FindTarget(cfg, arg); ok {
				if target.BroadcastIP == "" {
					target.BroadcastIP = cfg.Defaults.BroadcastIP
				}
				if target.Port == 0 {
					target.Port = cfg.Defaults.Port
				}
				batch.Targets = append(batch.Targets, target)
				continue
			}
		}
		batch.Targets = append(batch.Targets, models.Target{
			MACAddress: arg,
			PollURL:    wakePollURL,
		})
	}

	ctx, cancel := newSignalContext()
	defer cancel()

	wakerSvc := waker.New(log.Logger)
	results := wakerSvc.WakeAll(ctx, batch)

	return reportResults(results)
}

// reportResults logs one line per result and returns an error if any
// target failed.
func reportResults(results []models.WakeResult) error {
	failed := 0
	for _, r := range results {
		if r.Error != nil {
			failed++
			log.Error().
				Err(r.Error).
				Str("mac", r.MACAddress).
				Str("name", r.Name).
				Msg("wake failed")
			continue
		}
		log.Info().
			Str("mac", r.MACAddress).
			Str("name", r.Name).
			Str("dest", r.BroadcastIP).
			Int("port", r.Port).
			Bool("packet_sent", r.PacketSent).
			Bool("target_ready", r.TargetReady).
			Dur("wait_duration", r.WaitDuration).
			Msg("wake completed")
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed", failed, len(results))
	}
	return nil
}
