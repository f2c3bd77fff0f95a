package core

import "time"

// Interval converts elapsed time into whole ticks of a fixed period. Leftover
// time carries over, so uneven frame times still average to the period.
type Interval struct {
	period      time.Duration
	accumulator time.Duration
}

// NewInterval constructs an Interval firing once per period.
func NewInterval(period time.Duration) *Interval {
	if period <= 0 {
		period = time.Second / 60
	}
	return &Interval{period: period}
}

// Remainder returns the time accumulated toward the next tick.
func (i *Interval) Remainder() time.Duration { return i.accumulator }

// Advance adds dt and returns how many ticks elapsed.
func (i *Interval) Advance(dt time.Duration) int {
	if dt <= 0 {
		return 0
	}
	i.accumulator += dt
	n := int(i.accumulator / i.period)
	i.accumulator -= time.Duration(n) * i.period
	return n
}

// Reset drops any accumulated time.
func (i *Interval) Reset() { i.accumulator = 0 }

// FrameDuration returns the length of one frame at the given ticks per second.
func FrameDuration(tps int) time.Duration {
	if tps <= 0 {
		tps = 60
	}
	return time.Second / time.Duration(tps)
}
