package idgen

import (
	"time"

	"go.uber.org/zap"
)

const (
	defaultTickInterval    = 1 * time.Millisecond
	defaultInactivityTicks = 1000
)

// Option configures a Generator built with New.
type Option func(*Generator)

// WithMachineID sets the machine id stamped into every ID. Only the low 10
// bits are used.
func WithMachineID(id uint16) Option {
	return func(g *Generator) {
		g.machineID = id
	}
}

// WithLogger sets the logger for maintenance lifecycle messages.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		g.logger = logger
	}
}

func withClock(clock Clock) Option {
	return func(g *Generator) {
		g.clock = clock
	}
}

func withTickInterval(d time.Duration) Option {
	return func(g *Generator) {
		g.tick = d
	}
}

func withInactivityTicks(n int) Option {
	return func(g *Generator) {
		g.inactivityTicks = n
	}
}
