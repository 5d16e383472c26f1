package wol

const (
	// DefaultPort is the standard Wake-on-LAN UDP port. Port 7 is a common
	// alternative; both are caller-configurable.
	DefaultPort = 9

	// DefaultBroadcastIP is the IPv4 limited broadcast address.
	DefaultBroadcastIP = "255.255.255.255"

	// MagicPacketSize is the size of a WOL magic packet: a 6-byte 0xFF
	// synchronization prefix followed by 16 repetitions of the 6-byte
	// hardware address.
	MagicPacketSize = 6 + 16*AddrLength
)

// MagicPacket is the 102-byte Wake-on-LAN payload for one hardware address.
type MagicPacket [MagicPacketSize]byte

// NewMagicPacket builds the magic packet for addr.
func NewMagicPacket(addr HardwareAddr) MagicPacket {
	var p MagicPacket
	for i := 0; i < 6; i++ {
		p[i] = 0xFF
	}
	for i := 0; i < 16; i++ {
		copy(p[6+i*AddrLength:], addr[:])
	}
	return p
}

// ParseMagicPacket validates a payload against the magic packet layout and
// extracts the target hardware address. Payloads longer than 102 bytes are
// accepted as long as the first 102 bytes are well formed, since some
// senders append a SecureOn password.
func ParseMagicPacket(b []byte) (HardwareAddr, bool) {
	var addr HardwareAddr

	if len(b) < MagicPacketSize {
		return addr, false
	}

	for i := 0; i < 6; i++ {
		if b[i] != 0xFF {
			return addr, false
		}
	}

	copy(addr[:], b[6:6+AddrLength])

	for i := 1; i < 16; i++ {
		offset := 6 + i*AddrLength
		for j := 0; j < AddrLength; j++ {
			if b[offset+j] != addr[j] {
				return HardwareAddr{}, false
			}
		}
	}

	return addr, true
}
