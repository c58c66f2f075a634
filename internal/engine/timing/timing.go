// Package timing decouples fixed-rate updates from the display frame rate.
package timing

import "time"

// Ticker decides which display frames carry a fixed-rate step. A frame
// carries at most one step; time owed beyond that is dropped.
type Ticker struct {
	interval time.Duration
	acc      time.Duration
}

// NewTicker creates a ticker firing rate times per second. A non-positive
// rate fires once per frame.
func NewTicker(rate int) *Ticker {
	t := &Ticker{}
	if rate > 0 {
		t.interval = time.Second / time.Duration(rate)
	}
	return t
}

// Interval returns the step length, zero for once per frame.
func (t *Ticker) Interval() time.Duration {
	return t.interval
}

// Due adds dt and reports whether this frame carries a step.
func (t *Ticker) Due(dt time.Duration) bool {
	if t.interval <= 0 {
		return true
	}
	t.acc += dt
	if t.acc < t.interval {
		return false
	}
	t.acc %= t.interval
	return true
}

// Reset drops accumulated time.
func (t *Ticker) Reset() {
	t.acc = 0
}

// FPSCounter counts frames over one-second windows.
type FPSCounter struct {
	frames int
	window time.Duration
	last   int
}

// Frame records one frame of length dt. It reports true when a window
// closed, and the frame count of that window is then available from FPS.
func (c *FPSCounter) Frame(dt time.Duration) bool {
	c.frames++
	c.window += dt
	if c.window < time.Second {
		return false
	}
	c.last = c.frames
	c.frames = 0
	c.window -= time.Second
	return true
}

// FPS returns the frame count of the last completed window.
func (c *FPSCounter) FPS() int {
	return c.last
}
