package engine

import (
	"math"
	"sync/atomic"
)

// Clock is the animation clock: seconds elapsed since the engine first ticked.
// It never runs backwards. Safe for concurrent reads while one goroutine advances it.
type Clock struct {
	bits atomic.Uint64
}

// Advance adds dt seconds to the clock. Negative, NaN and infinite deltas are
// ignored.
//
// Parameters:
//   - dt: seconds since the previous tick
//
// Returns:
//   - float64: the elapsed time after advancing
func (c *Clock) Advance(dt float64) float64 {
	elapsed := c.Elapsed()
	if !validDelta(dt) {
		return elapsed
	}
	elapsed += dt
	c.bits.Store(math.Float64bits(elapsed))
	return elapsed
}

// Elapsed returns the seconds accumulated so far.
func (c *Clock) Elapsed() float64 {
	return math.Float64frombits(c.bits.Load())
}

// Reset rewinds the clock to zero.
func (c *Clock) Reset() {
	c.bits.Store(0)
}

func validDelta(dt float64) bool {
	return dt >= 0 && !math.IsInf(dt, 1)
}
