package app

import (
	"time"

	"github.com/loov/hrtime"
)

// frameClock measures time since the loop started and between frames.
type frameClock struct {
	now func() time.Duration

	start   time.Duration
	last    time.Duration
	elapsed float64
	delta   float64
	frames  uint64
}

func newFrameClock() *frameClock {
	return &frameClock{now: hrtime.Now}
}

func (c *frameClock) reset() {
	c.start = c.now()
	c.last = c.start
	c.elapsed, c.delta, c.frames = 0, 0, 0
}

// tick is called once per iteration, before update.
func (c *frameClock) tick() {
	t := c.now()
	c.delta = (t - c.last).Seconds()
	c.elapsed = (t - c.start).Seconds()
	c.last = t
}
