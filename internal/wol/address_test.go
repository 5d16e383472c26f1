package wol

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseHardwareAddr_AllFormats(t *testing.T) {
	want := HardwareAddr{0x00, 0x1B, 0x44, 0x11, 0x3A, 0xB7}

	inputs := []string{
		"00:1B:44:11:3A:B7",
		"00-1B-44-11-3A-B7",
		"001B44113AB7",
		"00:1b:44:11:3a:b7",
		"001b44113ab7",
		"00-1b-44-11-3A-B7",
	}

	for _, input := range inputs {
		addr, err := ParseHardwareAddr(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, want, addr, "input %q", input)
	}
}

func TestParseHardwareAddr_Invalid(t *testing.T) {
	inputs := []string{
		"",
		"00:1B:44:11:3A",          // too short
		"00:1B:44:11:3A:B7:FF",    // too long
		"00:1B:44:11:3A:ZZ",       // non-hex characters
		"001B44113AB",             // 11 hex digits
		"001B44113AB7F",           // 13 hex digits
		"00.1B.44.11.3A.B7",       // unknown delimiter
		"hello world",             //
		"GG:GG:GG:GG:GG:GG",       // hex-length but not hex
		"00:1B:44:11:3A:B7 extra", //
	}

	for _, input := range inputs {
		_, err := ParseHardwareAddr(input)
		require.Error(t, err, "input %q", input)
		assert.ErrorIs(t, err, ErrInvalidAddressFormat, "input %q", input)
	}
}

func TestHardwareAddr_String(t *testing.T) {
	addr, err := ParseHardwareAddr("00-1B-44-11-3A-B7")
	require.NoError(t, err)
	assert.Equal(t, "00:1b:44:11:3a:b7", addr.String())
}

func TestValidatePort(t *testing.T) {
	assert.NoError(t, ValidatePort(1))
	assert.NoError(t, ValidatePort(7))
	assert.NoError(t, ValidatePort(9))
	assert.NoError(t, ValidatePort(65535))

	assert.ErrorIs(t, ValidatePort(0), ErrInvalidPort)
	assert.ErrorIs(t, ValidatePort(65536), ErrInvalidPort)
	assert.ErrorIs(t, ValidatePort(-1), ErrInvalidPort)
}
