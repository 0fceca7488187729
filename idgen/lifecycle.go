package idgen

import (
	observer "github.com/imkira/go-observer"
)

// State of the maintenance goroutine.
type State int

const (
	Stopped State = iota
	Running
)

func (s State) String() string {
	switch s {
	case Stopped:
		return "stopped"
	case Running:
		return "running"
	}
	return "unknown"
}

// Observe returns a stream of State values, starting with the current one.
// A stop immediately followed by a restart may be reported as no change.
func (g *Generator) Observe() observer.Stream {
	return g.lifecycle.Observe()
}

// publishState pushes the state the generator is in right now. Starts and
// stops publish from different goroutines, so the value is read under the
// lock instead of being passed in, otherwise a late stop could overwrite a
// newer start.
func (g *Generator) publishState() {

	g.lifecycleMu.Lock()
	defer g.lifecycleMu.Unlock()

	state := Stopped
	if g.Running() {
		state = Running
	}

	if g.lifecycle.Value().(State) != state {
		g.lifecycle.Update(state)
	}
}

// Stats are counters kept over the lifetime of a generator.
type Stats struct {
	// Times the maintenance goroutine was started
	Activations uint64 `yaml:"activations"`
	// Times it stopped after being idle
	Retirements uint64 `yaml:"retirements"`
	// Requests that found their millisecond exhausted and waited for the next
	Overflows uint64 `yaml:"overflows"`
}

func (g *Generator) Stats() Stats {
	return Stats{
		Activations: g.activations.Load(),
		Retirements: g.retirements.Load(),
		Overflows:   g.overflows.Load(),
	}
}
