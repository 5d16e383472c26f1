package models

import "time"

// WakeConfig holds the complete configuration for a batch run.
type WakeConfig struct {
	Defaults TargetDefaults
	Targets  []Target
}

// TargetDefaults are applied to every target that does not override them.
type TargetDefaults struct {
	BroadcastIP   string
	Port          int
	Parallel      bool // send to all targets concurrently
	Timeout       time.Duration
	PollInterval  time.Duration
	StabilizeWait time.Duration
}

// Target is one entry in the host inventory.
type Target struct {
	Name        string
	MACAddress  string
	BroadcastIP string // overrides Defaults.BroadcastIP if set
	Port        int    // overrides Defaults.Port if set
	PollURL     string // optional readiness check
}

// Request builds the WakeRequest for this target with defaults applied.
func (t Target) Request(d TargetDefaults) WakeRequest {
	req := WakeRequest{
		Name:          t.Name,
		MACAddress:    t.MACAddress,
		BroadcastIP:   t.BroadcastIP,
		Port:          t.Port,
		PollURL:       t.PollURL,
		Timeout:       d.Timeout,
		PollInterval:  d.PollInterval,
		StabilizeWait: d.StabilizeWait,
	}
	if req.BroadcastIP == "" {
		req.BroadcastIP = d.BroadcastIP
	}
	if req.Port == 0 {
		req.Port = d.Port
	}
	return req
}
