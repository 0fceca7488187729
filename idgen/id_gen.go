// Package idgen generates Snowflake style 64-bit IDs.
//
// An ID is made of the current time in milliseconds since the Unix epoch
// (41 bits), the id of the machine that generated it (10 bits) and a
// per-millisecond sequence number (12 bits). Processes that run with different
// machine ids never produce the same ID, so no coordination between them is
// needed.
//
// The clock is not read on every call. A maintenance goroutine advances the
// millisecond bucket once per tick and resets the sequence. It is started by
// the first request and stops by itself after a period without requests.
package idgen

import (
	"runtime"
	"sync"
	"time"

	observer "github.com/imkira/go-observer"
	"go.uber.org/atomic"
	"go.uber.org/zap"
)

type Generator struct {
	state     atomic.Int64
	machineID uint16

	clock           Clock
	tick            time.Duration
	inactivityTicks int

	lifecycleMu sync.Mutex
	lifecycle   observer.Property
	logger      *zap.Logger

	activations atomic.Uint64
	retirements atomic.Uint64
	overflows   atomic.Uint64
}

// New returns a stopped generator. The maintenance goroutine is started by
// the first call to NextID.
func New(opts ...Option) *Generator {
	g := &Generator{
		clock:           time.Now,
		tick:            defaultTickInterval,
		inactivityTicks: defaultInactivityTicks,
		lifecycle:       observer.NewProperty(Stopped),
		logger:          zap.L(),
	}
	g.state.Store(notRunning)

	for _, opt := range opts {
		opt(g)
	}

	return g
}

// NextID returns a new ID. It is safe for concurrent use and only blocks in
// two cases: the caller that restarts the maintenance goroutine samples the
// clock itself, and callers that find the current millisecond exhausted
// (more than 4096 IDs) wait for the next one.
func (g *Generator) NextID() uint64 {
	for {
		prev := g.state.Inc() - 1

		if prev == notRunning {
			g.coldStart()
			continue
		}

		millis := stateMillis(prev)
		if millis == 0 {
			// Drawn before the cold start seeded the bucket
			g.waitForBucketChange(0)
			continue
		}

		seq := stateCount(prev)
		if seq > int64(MaxSequence) {
			g.overflows.Inc()
			g.waitForBucketChange(millis)
			continue
		}

		return Compose(millis, g.machineID, uint16(seq))
	}
}

// NewID is NextID as a signed integer. The value is never negative.
func (g *Generator) NewID() int64 {
	return int64(g.NextID())
}

func (g *Generator) MachineID() uint16 {
	return g.machineID & machineIDMask
}

// Running reports whether the maintenance goroutine owns the state.
func (g *Generator) Running() bool {
	return g.state.Load() != notRunning
}

// coldStart is run by the single caller whose increment moved the state off
// notRunning. Callers racing with it only add to the draw count, which is
// kept while the bucket is installed.
func (g *Generator) coldStart() {

	millis := millis41(g.clock)

	for {
		curr := g.state.Load()
		if g.state.CompareAndSwap(curr, packState(millis, stateCount(curr))) {
			break
		}
	}

	g.activations.Inc()
	g.publishState()
	g.logger.Debug("generator maintenance starting",
		zap.Uint64("millis", millis),
		zap.Uint16("machine_id", g.MachineID()))

	go g.maintain()
}

func (g *Generator) waitForBucketChange(millis uint64) {
	for {
		curr := g.state.Load()
		if curr == notRunning || stateMillis(curr) != millis {
			return
		}
		runtime.Gosched()
	}
}

var (
	defaultOnce      sync.Once
	defaultGenerator *Generator
)

// Default returns the process wide generator. Its machine id is read from the
// MACHINE_ID environment variable the first time Default is called.
func Default() *Generator {
	defaultOnce.Do(func() {
		defaultGenerator = New(WithMachineID(MachineIDFromEnv()))
	})
	return defaultGenerator
}

// NextID returns a new ID from the default generator.
func NextID() uint64 {
	return Default().NextID()
}

// NewID returns a new ID from the default generator as an int64.
func NewID() int64 {
	return Default().NewID()
}
