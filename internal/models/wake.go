// Package models contains the data structures used throughout gowake.
package models

import "time"

// WakeRequest holds the parameters for a single wake operation.
type WakeRequest struct {
	Name        string // optional friendly name from the host inventory
	MACAddress  string
	BroadcastIP string // destination address; limited broadcast if empty
	Port        int    // destination UDP port; 9 if zero

	// Optional readiness polling after the packet is sent.
	PollURL       string        // URL to poll until the target responds
	Timeout       time.Duration // max time to wait for the target
	PollInterval  time.Duration // how often to poll the URL
	StabilizeWait time.Duration // extra wait after the target responds
}

// WakeResult holds the outcome of a single wake operation. It is created
// once per request and never mutated after being returned.
//
// PacketSent only means the datagram was accepted by the local network
// stack. Wake-on-LAN is fire-and-forget over UDP, so there is no way to
// confirm the target actually received the packet or woke up unless a
// PollURL is configured.
type WakeResult struct {
	Name        string
	MACAddress  string
	BroadcastIP string
	Port        int

	PacketSent   bool
	TargetReady  bool
	Timestamp    time.Time
	WaitDuration time.Duration
	Error        error
}
