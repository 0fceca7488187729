package idgen

import (
	"time"

	"go.uber.org/zap"
)

// maintain runs while the generator is active. Every tick it first looks for
// activity since the previous tick and retires once inactivityTicks idle
// ticks have passed, then moves the state to a new bucket if the clock has
// advanced.
func (g *Generator) maintain() {

	ticker := time.NewTicker(g.tick)
	defer ticker.Stop()

	inactivity := 0

	for range ticker.C {

		curr := g.state.Load()

		if stateCount(curr) > 0 {
			inactivity = 0
		} else {
			inactivity++
			// The CAS only succeeds if nobody drew from the bucket since curr
			// was loaded. A caller that did so saw a running generator and
			// will not start another one, so we must stay.
			if inactivity >= g.inactivityTicks && g.state.CompareAndSwap(curr, notRunning) {
				g.retire(stateMillis(curr))
				return
			}
		}

		g.advance(millis41(g.clock))
	}
}

// advance installs millis as the current bucket with an empty sequence if it
// is newer than the bucket in use.
func (g *Generator) advance(millis uint64) {
	for {
		curr := g.state.Load()
		if curr == notRunning || millis <= stateMillis(curr) {
			return
		}
		if g.state.CompareAndSwap(curr, packState(millis, 0)) {
			return
		}
	}
}

func (g *Generator) retire(millis uint64) {
	g.retirements.Inc()
	g.publishState()
	g.logger.Debug("generator maintenance ending",
		zap.Uint64("millis", millis),
		zap.Uint16("machine_id", g.MachineID()))
}
