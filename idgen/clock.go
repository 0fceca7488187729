package idgen

import (
	"time"

	"github.com/d3ce1t/flakeid/utils"
)

// Clock returns the current wall clock time.
type Clock func() time.Time

// millis41 samples clock as milliseconds since the Unix epoch truncated to the
// timestamp field. The value rolls over every ~69.7 years; rollover is not
// handled.
func millis41(clock Clock) uint64 {
	return uint64(utils.TimeToMillis(clock())) & timestampMask
}
