// Package config provides configuration file parsing.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/fgeck/gowake/internal/models"
	"github.com/fgeck/gowake/internal/wol"
	"github.com/spf13/viper"
)

// Parser handles configuration file parsing.
type Parser struct {
	v *viper.Viper
}

// NewParser creates a new configuration parser.
func NewParser() *Parser {
	v := viper.New()
	v.SetConfigType("yaml")
	return &Parser{v: v}
}

// LoadFile loads configuration from a file path.
func (p *Parser) LoadFile(path string) (*models.WakeConfig, error) {
	p.v.SetConfigFile(path)

	if err := p.v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	return p.parse()
}

// LoadReader loads configuration from a reader (useful for testing).
func (p *Parser) LoadReader(content string) (*models.WakeConfig, error) {
	if err := p.v.ReadConfig(strings.NewReader(content)); err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}

	return p.parse()
}

// rawTarget mirrors one entry of the targets list in the YAML file.
type rawTarget struct {
	Name        string `mapstructure:"name"`
	MACAddress  string `mapstructure:"mac_address"`
	BroadcastIP string `mapstructure:"broadcast_ip"`
	Port        int    `mapstructure:"port"`
	PollURL     string `mapstructure:"poll_url"`
}

func (p *Parser) parse() (*models.WakeConfig, error) {
	cfg := &models.WakeConfig{}

	// Parse defaults with fallbacks.
	cfg.Defaults = models.TargetDefaults{
		BroadcastIP:   p.v.GetString("defaults.broadcast_ip"),
		Port:          p.v.GetInt("defaults.port"),
		Parallel:      p.v.GetBool("defaults.parallel"),
		Timeout:       p.v.GetDuration("defaults.timeout"),
		PollInterval:  p.v.GetDuration("defaults.poll_interval"),
		StabilizeWait: p.v.GetDuration("defaults.stabilize_wait"),
	}

	if cfg.Defaults.BroadcastIP == "" {
		cfg.Defaults.BroadcastIP = wol.DefaultBroadcastIP
	}
	if cfg.Defaults.Port == 0 {
		cfg.Defaults.Port = wol.DefaultPort
	}
	if cfg.Defaults.Timeout == 0 {
		cfg.Defaults.Timeout = 5 * time.Minute
	}
	if cfg.Defaults.PollInterval == 0 {
		cfg.Defaults.PollInterval = 10 * time.Second
	}

	// Parse targets (required).
	var raw []rawTarget
	if err := p.v.UnmarshalKey("targets", &raw); err != nil {
		return nil, fmt.Errorf("parsing targets: %w", err)
	}
	if len(raw) == 0 {
		return nil, fmt.Errorf("targets is required")
	}

	for i, t := range raw {
		if t.MACAddress == "" {
			return nil, fmt.Errorf("targets[%d]: mac_address is required", i)
		}
		cfg.Targets = append(cfg.Targets, models.Target{
			Name:        t.Name,
			MACAddress:  p.expandEnv(t.MACAddress),
			BroadcastIP: t.BroadcastIP,
			Port:        t.Port,
			PollURL:     p.expandEnv(t.PollURL),
		})
	}

	return cfg, nil
}

// expandEnv expands environment variables in the format ${VAR} or $VAR.
func (p *Parser) expandEnv(s string) string {
	return os.ExpandEnv(s)
}

// Validate performs validation on the loaded configuration.
func Validate(cfg *models.WakeConfig) error {
	if cfg == nil {
		return fmt.Errorf("configuration is nil")
	}

	if len(cfg.Targets) == 0 {
		return fmt.Errorf("targets is required")
	}

	if err := wol.ValidatePort(cfg.Defaults.Port); err != nil {
		return fmt.Errorf("defaults.port: %w", err)
	}

	seen := make(map[string]bool)
	for i, t := range cfg.Targets {
		if _, err := wol.ParseHardwareAddr(t.MACAddress); err != nil {
			return fmt.Errorf("targets[%d]: %w", i, err)
		}
		if t.Port != 0 {
			if err := wol.ValidatePort(t.Port); err != nil {
				return fmt.Errorf("targets[%d]: %w", i, err)
			}
		}
		if t.Name != "" {
			if seen[t.Name] {
				return fmt.Errorf("targets[%d]: duplicate name %q", i, t.Name)
			}
			seen[t.Name] = true
		}
	}

	return nil
}

// FindTarget returns the target with the given name, or false if absent.
func FindTarget(cfg *models.WakeConfig, name string) (models.Target, bool) {
	for _, t := range cfg.Targets {
		if t.Name == name {
			return t, true
		}
	}
	return models.Target{}, false
}
