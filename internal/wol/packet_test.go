package wol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMagicPacket_Structure(t *testing.T) {
	addr := HardwareAddr{0x00, 0x1B, 0x44, 0x11, 0x3A, 0xB7}
	packet := NewMagicPacket(addr)

	assert.Len(t, packet, 102)

	for i := 0; i < 6; i++ {
		assert.Equal(t, byte(0xFF), packet[i], "prefix byte %d", i)
	}

	for rep := 0; rep < 16; rep++ {
		offset := 6 + rep*AddrLength
		assert.Equal(t, addr[:], packet[offset:offset+AddrLength], "repetition %d", rep)
	}
}

func TestNewMagicPacket_KnownBytes(t *testing.T) {
	addr, err := ParseHardwareAddr("00:1B:44:11:3A:B7")
	require.NoError(t, err)

	packet := NewMagicPacket(addr)

	want := []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}
	for i := 0; i < 16; i++ {
		want = append(want, 0x00, 0x1B, 0x44, 0x11, 0x3A, 0xB7)
	}

	assert.Equal(t, want, packet[:])
}

func TestParseMagicPacket_RoundTrip(t *testing.T) {
	addr := HardwareAddr{0x52, 0x54, 0x00, 0x12, 0x34, 0x56}
	packet := NewMagicPacket(addr)

	got, ok := ParseMagicPacket(packet[:])
	require.True(t, ok)
	assert.Equal(t, addr, got)
}

func TestParseMagicPacket_TrailingPassword(t *testing.T) {
	// SecureOn-style senders append up to 6 password bytes.
	addr := HardwareAddr{0x52, 0x54, 0x00, 0x12, 0x34, 0x56}
	packet := NewMagicPacket(addr)
	payload := append(packet[:], 0xDE, 0xAD, 0xBE, 0xEF)

	got, ok := ParseMagicPacket(payload)
	require.True(t, ok)
	assert.Equal(t, addr, got)
}

func TestParseMagicPacket_Invalid(t *testing.T) {
	addr := HardwareAddr{0x52, 0x54, 0x00, 0x12, 0x34, 0x56}
	valid := NewMagicPacket(addr)

	short := make([]byte, 50)

	badHeader := valid
	badHeader[3] = 0x00

	badRepetition := valid
	badRepetition[6+7*AddrLength+2] ^= 0x01

	for name, payload := range map[string][]byte{
		"too short":      short,
		"bad header":     badHeader[:],
		"bad repetition": badRepetition[:],
		"empty":          nil,
	} {
		_, ok := ParseMagicPacket(payload)
		assert.False(t, ok, "payload %s", name)
	}
}
