package utils

import (
	"time"
)

// Get current time in millis
func GetCurrentTimeMillis() int64 {
	return TimeToMillis(time.Now())
}

// Return time as millis
func TimeToMillis(t time.Time) int64 {
	return t.UnixNano() / int64(time.Millisecond)
}

func UnixMillisToTime(timestamp int64) time.Time {
	seconds := timestamp / 1000
	millis := timestamp % 1000
	return time.Unix(seconds, millis*int64(time.Millisecond))
}

func UnixMillisToTimeUTC(timestamp int64) time.Time {
	return UnixMillisToTime(timestamp).UTC()
}

func MinInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}

func MaxInt64(a, b int64) int64 {
	if a > b {
		return a
	}
	return b
}

// Split total work into numWorkers chunks whose sizes differ at most by one.
// Earlier chunks take the remainder.
func SplitWork(total int, numWorkers int) []int {

	if numWorkers <= 0 {
		return nil
	}

	chunks := make([]int, numWorkers)
	remaining := total

	for i := 0; i < numWorkers; i++ {
		available := numWorkers - i
		size := remaining / available
		if remaining%available > 0 {
			size++
		}
		chunks[i] = size
		remaining -= size
	}

	return chunks
}
