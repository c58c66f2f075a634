package timing

import (
	"testing"
	"time"
)

func TestTickerDueAtRate(t *testing.T) {
	tk := NewTicker(30)
	frame := time.Second / 60

	// A 60 Hz display carries a 30 Hz step every other frame.
	due := 0
	for i := 0; i < 60; i++ {
		if tk.Due(frame) {
			due++
		}
	}
	if due < 29 || due > 30 {
		t.Errorf("due frames over one second = %d, want 30", due)
	}
}

func TestTickerSlowDisplayDropsBacklog(t *testing.T) {
	tk := NewTicker(30)
	if !tk.Due(100 * time.Millisecond) {
		t.Fatal("Due(100ms) = false, want true")
	}
	// The two extra intervals owed by the long frame are not replayed.
	if tk.Due(time.Millisecond) {
		t.Error("backlog carried into the next frame")
	}
}

func TestTickerStall(t *testing.T) {
	tk := NewTicker(30)
	if !tk.Due(10 * time.Second) {
		t.Fatal("Due(10s) = false, want true")
	}
	if tk.Due(0) {
		t.Error("Due(0) after stall = true, want false")
	}
}

func TestTickerUnlimited(t *testing.T) {
	tk := NewTicker(0)
	if tk.Interval() != 0 {
		t.Errorf("Interval() = %v, want 0", tk.Interval())
	}
	if !tk.Due(time.Millisecond) {
		t.Error("Due() = false, want true")
	}
}

func TestTickerReset(t *testing.T) {
	tk := NewTicker(10)
	tk.Due(90 * time.Millisecond)
	tk.Reset()
	if tk.Due(20 * time.Millisecond) {
		t.Error("Due() after Reset = true, want false")
	}
}

func TestFPSCounter(t *testing.T) {
	var c FPSCounter
	frame := 10 * time.Millisecond

	closed := 0
	for i := 0; i < 250; i++ {
		if c.Frame(frame) {
			closed++
			if c.FPS() != 100 {
				t.Errorf("FPS() = %d, want 100", c.FPS())
			}
		}
	}
	if closed != 2 {
		t.Errorf("closed %d windows, want 2", closed)
	}
}
