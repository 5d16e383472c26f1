package wol

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddressFormat indicates a hardware address string that does
	// not decode to exactly 6 bytes of hex.
	ErrInvalidAddressFormat = errors.New("invalid hardware address format")

	// ErrInvalidPort indicates a UDP port outside the range [1, 65535].
	ErrInvalidPort = errors.New("invalid port")
)

// TransmissionError wraps a socket or send failure with the destination
// the packet was headed for.
type TransmissionError struct {
	Dest string
	Err  error
}

func (e *TransmissionError) Error() string {
	return fmt.Sprintf("transmission to %s failed: %v", e.Dest, e.Err)
}

func (e *TransmissionError) Unwrap() error {
	return e.Err
}
