package system

import (
	"sync/atomic"
	"time"
)

var seedCounter atomic.Int64

// Seed returns a seed for a call-local random source. Mixing a process-wide
// counter with the clock keeps concurrent callers from seeding identical
// sources within one clock tick.
func Seed() int64 {
	return time.Now().UnixNano() + seedCounter.Add(1)*10007
}
