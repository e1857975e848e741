package sim

// TickRate is the default simulation rate in ticks per wall-clock second.
const TickRate = 50.0

// Clock converts wall time into whole simulation ticks. The target tick is
// floor(activeSeconds * rate), so a slow frame produces several back-to-back
// ticks with no upper bound: the simulation may stutter but never drifts
// from wall time. Pausing freezes active time without losing alignment.
type Clock struct {
	rate     float64
	ticks    int64
	paused   bool
	pausedAt float64
	deadTime float64
}

// NewClock returns a clock at tick zero.
func NewClock(rate float64) *Clock {
	return &Clock{rate: rate}
}

// Advance returns how many whole ticks are owed at wall time now (seconds).
// It never returns a negative count.
func (c *Clock) Advance(now float64) int {
	if c.paused {
		return 0
	}
	target := int64((now - c.deadTime) * c.rate)
	n := target - c.ticks
	if n <= 0 {
		return 0
	}
	c.ticks = target
	return int(n)
}

// Pause freezes the clock at wall time now.
func (c *Clock) Pause(now float64) {
	if c.paused {
		return
	}
	c.paused = true
	c.pausedAt = now
}

// Resume unfreezes the clock; time spent paused is discounted.
func (c *Clock) Resume(now float64) {
	if !c.paused {
		return
	}
	c.paused = false
	c.deadTime += now - c.pausedAt
}

// Paused reports whether the clock is frozen.
func (c *Clock) Paused() bool { return c.paused }

// Ticks returns how many ticks the clock has issued.
func (c *Clock) Ticks() int64 { return c.ticks }
