// Package sender transmits Wake-on-LAN magic packets over UDP.
package sender

import (
	"context"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/fgeck/gowake/internal/wol"
	"github.com/rs/zerolog"
)

// Service defines the interface for magic packet transmission.
type Service interface {
	Send(ctx context.Context, packet wol.MagicPacket, broadcastIP string, port int) error
}

// Dialer opens the network connection used for one send. *net.Dialer
// satisfies this; tests substitute their own.
type Dialer interface {
	DialContext(ctx context.Context, network, address string) (net.Conn, error)
}

// Impl implements the sender Service interface.
type Impl struct {
	dialer Dialer
	logger zerolog.Logger
}

// New creates a new sender service.
func New(logger zerolog.Logger) *Impl {
	return &Impl{
		dialer: &net.Dialer{Timeout: 5 * time.Second},
		logger: logger,
	}
}

// NewWithDialer creates a new sender service with a custom dialer (for testing).
func NewWithDialer(logger zerolog.Logger, dialer Dialer) *Impl {
	return &Impl{
		dialer: dialer,
		logger: logger,
	}
}

// Send transmits the packet as a single UDP datagram to broadcastIP:port.
//
// Success means the datagram was accepted by the local network stack for
// transmission. UDP is fire-and-forget; whether the target actually received
// the packet cannot be observed here. The Go runtime enables SO_BROADCAST on
// UDP sockets, so sending to a broadcast destination needs no extra setup.
func (s *Impl) Send(ctx context.Context, packet wol.MagicPacket, broadcastIP string, port int) error {
	if err := wol.ValidatePort(port); err != nil {
		return err
	}

	ip := net.ParseIP(broadcastIP)
	if ip == nil {
		return fmt.Errorf("invalid destination IP: %q", broadcastIP)
	}

	dest := net.JoinHostPort(ip.String(), strconv.Itoa(port))

	conn, err := s.dialer.DialContext(ctx, "udp4", dest)
	if err != nil {
		return &wol.TransmissionError{Dest: dest, Err: err}
	}
	defer func() { _ = conn.Close() }()

	if _, err := conn.Write(packet[:]); err != nil {
		return &wol.TransmissionError{Dest: dest, Err: err}
	}

	s.logger.Debug().
		Str("dest", dest).
		Int("bytes", len(packet)).
		Msg("magic packet sent")

	return nil
}
