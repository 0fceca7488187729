package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestUnixMillisToTime(t *testing.T) {
	current := time.Now()
	restored := UnixMillisToTime(TimeToMillis(current))
	assert.Equal(t, current.Truncate(time.Millisecond).UnixNano(), restored.UnixNano())
}

func TestMinMaxInt64(t *testing.T) {
	assert.Equal(t, int64(-3), MinInt64(-3, 7))
	assert.Equal(t, int64(7), MaxInt64(-3, 7))
}

func TestSplitWork(t *testing.T) {
	assert.Equal(t, []int{4, 3, 3}, SplitWork(10, 3))
	assert.Equal(t, []int{1, 1, 0, 0}, SplitWork(2, 4))
	assert.Equal(t, []int{5}, SplitWork(5, 1))
	assert.Nil(t, SplitWork(5, 0))
}
