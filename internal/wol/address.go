// Package wol implements the Wake-on-LAN wire format: hardware address
// parsing, magic packet construction, and packet validation.
package wol

import (
	"encoding/hex"
	"fmt"
	"strings"
)

// AddrLength is the byte length of a hardware (MAC) address.
const AddrLength = 6

// HardwareAddr is a 6-byte physical network address.
type HardwareAddr [AddrLength]byte

// ParseHardwareAddr parses a hardware address from its textual form.
// Accepted formats are colon-delimited (aa:bb:cc:dd:ee:ff), hyphen-delimited
// (aa-bb-cc-dd-ee-ff), or bare hex (aabbccddeeff), case-insensitive.
func ParseHardwareAddr(s string) (HardwareAddr, error) {
	var addr HardwareAddr

	stripped := strings.ReplaceAll(s, ":", "")
	stripped = strings.ReplaceAll(stripped, "-", "")

	if len(stripped) != AddrLength*2 {
		return addr, fmt.Errorf("%w: %q", ErrInvalidAddressFormat, s)
	}

	b, err := hex.DecodeString(stripped)
	if err != nil {
		return addr, fmt.Errorf("%w: %q", ErrInvalidAddressFormat, s)
	}

	copy(addr[:], b)
	return addr, nil
}

// String returns the lowercase colon-delimited form.
func (a HardwareAddr) String() string {
	return fmt.Sprintf("%02x:%02x:%02x:%02x:%02x:%02x",
		a[0], a[1], a[2], a[3], a[4], a[5])
}

// ValidatePort checks that p is a usable UDP port.
func ValidatePort(p int) error {
	if p < 1 || p > 65535 {
		return fmt.Errorf("%w: %d (must be in [1, 65535])", ErrInvalidPort, p)
	}
	return nil
}
