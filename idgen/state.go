package idgen

// The generator state is a single word so that one atomic increment hands out
// a bucket and a sequence number that belong together:
//
//	| 1 bit: 0 | 41 bits: millis bucket | 22 bits: draw count |
//
// The draw count is wider than the 12-bit sequence field. Draws past
// MaxSequence are refused by NextID and never reach an ID, the extra width
// only keeps them from carrying into the bucket.
const (
	countBits = 22
	countMask = int64(1)<<countBits - 1

	// notRunning is the state while no maintenance goroutine exists.
	notRunning int64 = -1
)

func packState(millis uint64, count int64) int64 {
	return int64(millis&timestampMask)<<countBits | count&countMask
}

func stateMillis(state int64) uint64 {
	return uint64(state) >> countBits
}

func stateCount(state int64) int64 {
	return state & countMask
}
