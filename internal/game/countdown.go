package game

import "time"

// countdown is a one-shot timer advanced by explicit ticks.
type countdown struct {
	remaining time.Duration
	running   bool
}

func (c *countdown) start(d time.Duration) {
	c.remaining = d
	c.running = true
}

func (c *countdown) stop() {
	c.remaining = 0
	c.running = false
}

// advance consumes delta. When the countdown reaches zero it stops and
// returns true together with the part of delta that was not needed.
func (c *countdown) advance(delta time.Duration) (bool, time.Duration) {
	if !c.running || delta <= 0 {
		return false, 0
	}
	c.remaining -= delta
	if c.remaining > 0 {
		return false, 0
	}
	leftover := -c.remaining
	c.remaining = 0
	c.running = false
	return true, leftover
}
