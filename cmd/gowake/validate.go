package main

import (
	"fmt"
	"os"

	"github.com/fgeck/gowake/internal/config"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate configuration file",
	Long:  `Validate the host inventory without sending any packets.`,
	RunE:  validateConfig,
}

func validateConfig(cmd *cobra.Command, args []string) error {
	if configFile == "" {
		log.Error().Msg("config file is required")
		return cmd.Help()
	}

	// Check if file exists
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		log.Error().Str("file", configFile).Msg("config file not found")
		return fmt.Errorf("config file not found: %s", configFile)
	}

	// Load configuration
	parser := config.NewParser()
	cfg, err := parser.LoadFile(configFile)
	if err != nil {
		log.Error().Err(err).Str("file", configFile).Msg("failed to parse config")
		return err
	}

	// Validate configuration
	if err := config.Validate(cfg); err != nil {
		log.Error().Err(err).Msg("configuration validation failed")
		return err
	}

	// Print configuration summary
	fmt.Println("Configuration is valid!")
	fmt.Println()
	fmt.Println("Defaults:")
	fmt.Printf("  Broadcast IP: %s\n", cfg.Defaults.BroadcastIP)
	fmt.Printf("  Port: %d\n", cfg.Defaults.Port)
	fmt.Printf("  Parallel: %v\n", cfg.Defaults.Parallel)
	fmt.Printf("  Timeout: %s\n", cfg.Defaults.Timeout)
	fmt.Printf("  Poll interval: %s\n", cfg.Defaults.PollInterval)
	if cfg.Defaults.StabilizeWait > 0 {
		fmt.Printf("  Stabilize wait: %s\n", cfg.Defaults.StabilizeWait)
	}
	fmt.Println()
	fmt.Printf("Targets (%d):\n", len(cfg.Targets))

	for _, t := range cfg.Targets {
		name := t.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Printf("  %s\n", name)
		fmt.Printf("    MAC Address: %s\n", t.MACAddress)
		if t.BroadcastIP != "" {
			fmt.Printf("    Broadcast IP: %s\n", t.BroadcastIP)
		}
		if t.Port != 0 {
			fmt.Printf("    Port: %d\n", t.Port)
		}
		if t.PollURL != "" {
			fmt.Printf("    Poll URL: %s\n", t.PollURL)
		}
	}

	return nil
}
