package idgen

import (
	"math/rand"
	"testing"
	"time"

	"github.com/bwmarrin/snowflake"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeDecompose(t *testing.T) {

	cases := []Components{
		{Millis: 0, MachineID: 0, Sequence: 0},
		{Millis: 1, MachineID: 1, Sequence: 1},
		{Millis: 1700000000000, MachineID: 5, Sequence: 4095},
		{Millis: timestampMask, MachineID: MaxMachineID, Sequence: MaxSequence},
	}

	for _, c := range cases {
		id := Compose(c.Millis, c.MachineID, c.Sequence)
		assert.Equal(t, c, Decompose(id))
	}

	r := rand.New(rand.NewSource(1))
	for i := 0; i < 10000; i++ {
		millis := r.Uint64() & timestampMask
		machineID := uint16(r.Intn(int(MaxMachineID) + 1))
		sequence := uint16(r.Intn(int(MaxSequence) + 1))

		c := Decompose(Compose(millis, machineID, sequence))
		require.Equal(t, millis, c.Millis)
		require.Equal(t, machineID, c.MachineID)
		require.Equal(t, sequence, c.Sequence)
	}
}

func TestComposeMasksInputs(t *testing.T) {
	id := Compose(timestampMask+2, 1024+7, 4096+9)
	assert.Equal(t, Components{Millis: 1, MachineID: 7, Sequence: 9}, Decompose(id))
}

func TestComposeNeverSetsSignBit(t *testing.T) {

	id := Compose(^uint64(0), ^uint16(0), ^uint16(0))
	assert.Zero(t, id>>63)
	assert.True(t, int64(id) > 0)

	r := rand.New(rand.NewSource(2))
	for i := 0; i < 10000; i++ {
		id := Compose(r.Uint64(), uint16(r.Uint32()), uint16(r.Uint32()))
		require.Zero(t, id>>63)
	}
}

func TestComposeLayout(t *testing.T) {
	// arrange
	millis := uint64(1700000000123)
	// act
	first := Compose(millis, 5, 0)
	second := Compose(millis, 5, 1)
	// assert
	assert.Equal(t, uint64(0), first&0xFFF)
	assert.Equal(t, uint64(1), second&0xFFF)
	assert.Equal(t, uint64(5), (first>>12)&0x3FF)
	assert.Equal(t, millis, first>>22)
}

func TestComposeMatchesSnowflakeLayout(t *testing.T) {

	// Same 41/10/12 split as the twitter layout snowflake uses by default
	_, err := snowflake.NewNode(0)
	require.NoError(t, err)

	r := rand.New(rand.NewSource(3))
	for i := 0; i < 1000; i++ {
		millis := r.Uint64() & timestampMask
		machineID := uint16(r.Intn(int(MaxMachineID) + 1))
		sequence := uint16(r.Intn(int(MaxSequence) + 1))

		sf := snowflake.ParseInt64(int64(Compose(millis, machineID, sequence)))
		require.Equal(t, int64(machineID), sf.Node())
		require.Equal(t, int64(sequence), sf.Step())
		require.Equal(t, int64(millis), sf.Int64()>>22)
	}
}

func TestComponentsTime(t *testing.T) {
	now := time.Date(2024, 3, 1, 12, 30, 0, 250*int(time.Millisecond), time.UTC)
	c := Decompose(Compose(uint64(now.UnixNano()/int64(time.Millisecond)), 1, 1))
	assert.True(t, now.Equal(c.Time()))
}

func TestLaterBucketsSortHigher(t *testing.T) {
	earlier := Compose(1000, MaxMachineID, MaxSequence)
	later := Compose(1001, 0, 0)
	assert.Greater(t, later, earlier)
	assert.Greater(t, int64(later), int64(earlier))
}
