package idgen

import (
	"time"

	"github.com/d3ce1t/flakeid/utils"
)

// Bit layout, most significant bit first:
//
//	| 1 bit: 0 | 41 bits: millis | 10 bits: machine id | 12 bits: sequence |
//
// The leading bit stays 0 so every ID is also a non-negative int64.
const (
	timestampBits = 41
	machineIDBits = 10
	sequenceBits  = 12

	machineIDShift = sequenceBits
	timestampShift = sequenceBits + machineIDBits

	timestampMask = uint64(1)<<timestampBits - 1 // 0x1FF_FFFF_FFFF
	machineIDMask = uint16(1)<<machineIDBits - 1 // 0x3FF
	sequenceMask  = uint16(1)<<sequenceBits - 1  // 0xFFF

	// MaxMachineID is the largest machine id that survives masking.
	MaxMachineID = machineIDMask

	// MaxSequence is the last sequence number available in a millisecond bucket.
	MaxSequence = sequenceMask
)

// Compose packs millis, machineID and sequence into an ID. Every input is
// masked to its field width, so out of range values wrap instead of failing.
func Compose(millis uint64, machineID uint16, sequence uint16) uint64 {
	return (millis&timestampMask)<<timestampShift |
		uint64(machineID&machineIDMask)<<machineIDShift |
		uint64(sequence&sequenceMask)
}

// Components are the fields of a decoded ID.
type Components struct {
	Millis    uint64 `yaml:"millis"`
	MachineID uint16 `yaml:"machine_id"`
	Sequence  uint16 `yaml:"sequence"`
}

// Decompose is the inverse of Compose.
func Decompose(id uint64) Components {
	return Components{
		Millis:    (id >> timestampShift) & timestampMask,
		MachineID: uint16(id>>machineIDShift) & machineIDMask,
		Sequence:  uint16(id) & sequenceMask,
	}
}

// Time returns the wall clock instant of the millisecond field. IDs issued
// after the 41-bit field wrapped map back into the first era.
func (c Components) Time() time.Time {
	return utils.UnixMillisToTimeUTC(int64(c.Millis))
}
