package idgen

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMachineIDFromEnv(t *testing.T) {

	cases := []struct {
		value    string
		expected uint16
	}{
		{"5", 5},
		{"1023", 1023},
		{"2000", 2000},
		{"0", 0},
		{"", 0},
		{"abc", 0},
		{"-1", 0},
		{"70000", 0},
		{" 7", 0},
	}

	for _, c := range cases {
		t.Setenv(MachineIDEnv, c.value)
		assert.Equal(t, c.expected, MachineIDFromEnv(), "value %q", c.value)
	}
}

func TestMachineIDFromEnvUnset(t *testing.T) {
	t.Setenv(MachineIDEnv, "9")
	require.NoError(t, os.Unsetenv(MachineIDEnv))
	assert.Equal(t, uint16(0), MachineIDFromEnv())
}

func TestMachineIDIsMasked(t *testing.T) {
	g := New(WithMachineID(2000))
	assert.Equal(t, uint16(2000&1023), g.MachineID())
}
