package idgen

import (
	"os"
	"strconv"

	"go.uber.org/zap"
)

// MachineIDEnv is the environment variable read by MachineIDFromEnv.
const MachineIDEnv = "MACHINE_ID"

// MachineIDFromEnv parses MACHINE_ID as an unsigned decimal number. A missing
// or invalid value yields 0. Values above MaxMachineID are accepted here and
// masked when IDs are composed.
func MachineIDFromEnv() uint16 {

	value, ok := os.LookupEnv(MachineIDEnv)
	if !ok {
		return 0
	}

	id, err := strconv.ParseUint(value, 10, 16)
	if err != nil {
		zap.L().Warn("invalid machine id, using 0",
			zap.String("env", MachineIDEnv),
			zap.String("value", value),
			zap.Error(err))
		return 0
	}

	return uint16(id)
}
