package session

import (
	"testing"

	"github.com/Faultbox/robotarm/internal/config"
	"github.com/Faultbox/robotarm/internal/controls"
	"github.com/Faultbox/robotarm/internal/figure"
)

func newSession(t *testing.T) *Session {
	t.Helper()
	cfg := config.Default()
	cfg.Controls.PositionX = 1.5
	cfg.Animation.Enabled = true
	return New(cfg)
}

func TestNewAppliesConfig(t *testing.T) {
	s := newSession(t)
	if got := s.Panel.ControlValue(controls.PositionX); got != 1.5 {
		t.Errorf("PositionX = %v, want 1.5", got)
	}
	if !s.Animating() {
		t.Error("expected animating from config")
	}
}

func TestHandlePanelActions(t *testing.T) {
	s := newSession(t)

	if out := s.Handle(controls.ActionMoveRight); out != (Outcome{}) {
		t.Errorf("MoveRight outcome = %+v, want none", out)
	}
	if got := s.Panel.ControlValue(controls.PositionX); got < 1.59 || got > 1.61 {
		t.Errorf("PositionX after MoveRight = %v, want 1.6", got)
	}

	s.Handle(controls.ActionToggleVariant)
	if s.Inputs().BodyVariant != figure.VariantBoxy {
		t.Error("ToggleVariant did not select the boxy body")
	}
}

func TestHandleHostActions(t *testing.T) {
	s := newSession(t)

	if out := s.Handle(controls.ActionSnapshot); !out.Snapshot || out.Quit {
		t.Errorf("Snapshot outcome = %+v", out)
	}
	if out := s.Handle(controls.ActionQuit); !out.Quit || out.Snapshot {
		t.Errorf("Quit outcome = %+v", out)
	}

	s.Handle(controls.ActionToggleAnimation)
	if s.Animating() {
		t.Error("ToggleAnimation did not stop the animation")
	}
}

func TestHandleReset(t *testing.T) {
	s := newSession(t)
	s.Handle(controls.ActionMoveRight)
	s.Handle(controls.ActionToggleVariant)
	s.Frame(true)
	s.Frame(true)

	s.Handle(controls.ActionReset)

	if got := s.Panel.ControlValue(controls.PositionX); got != 1.5 {
		t.Errorf("PositionX after Reset = %v, want 1.5", got)
	}
	if s.Inputs().BodyVariant != figure.VariantRound {
		t.Error("Reset kept the boxy body")
	}
	if got := s.Figure.Animation().Offsets(); got != (figure.JointOffsets{}) {
		t.Errorf("offsets after Reset = %+v, want initial pose", got)
	}
}

func TestFrameAdvancesOnce(t *testing.T) {
	s := newSession(t)

	s.Frame(true)
	want := figure.NewAnimationState()
	want.Advance()
	if got := s.Figure.Animation().Offsets(); got != want.Offsets() {
		t.Errorf("offsets after one due frame = %+v, want %+v", got, want.Offsets())
	}
	if got := s.Figure.Animation().Offsets().Head; got != figure.HeadStep {
		t.Errorf("head offset = %v, want %v", got, figure.HeadStep)
	}

	before := s.Figure.Animation().Offsets()
	s.Frame(false)
	if s.Figure.Animation().Offsets() != before {
		t.Error("frame without a due tick advanced the animation")
	}
}

func TestFrameHoldsWhenPaused(t *testing.T) {
	s := newSession(t)
	s.SetAnimating(false)
	cmds := s.Frame(true)
	if len(cmds) == 0 {
		t.Fatal("paused frame composed nothing")
	}
	if got := s.Figure.Animation().Offsets(); got != (figure.JointOffsets{}) {
		t.Errorf("paused offsets = %+v, want initial pose", got)
	}
}

func TestCaptureRestore(t *testing.T) {
	s := newSession(t)
	s.Handle(controls.ActionToggleVariant)
	s.Handle(controls.ActionTurnRight)
	s.SetAnimating(false)
	st := s.Capture()

	other := New(config.Default())
	other.Restore(st)

	if other.Panel.Values() != s.Panel.Values() {
		t.Errorf("restored values = %v, want %v", other.Panel.Values(), s.Panel.Values())
	}
	if other.Animating() {
		t.Error("restored session is animating")
	}
}

func TestRememberNilStore(t *testing.T) {
	s := newSession(t)
	before := s.Panel.Values()

	var store *Store
	save := s.Remember(store)
	save()

	if s.Panel.Values() != before {
		t.Error("nil store changed the panel")
	}
}

func TestSettings(t *testing.T) {
	base := config.Default()
	base.Controls.PositionX = 1.5
	base.Animation.Enabled = true
	s := New(base)
	s.Handle(controls.ActionTurnLeft)
	s.Handle(controls.ActionToggleVariant)
	s.SetAnimating(false)

	got := s.Settings(base)
	want := config.ControlsConfig{PositionX: 1.5, Turn: -10, BodyVariant: 1}
	if got.Controls != want {
		t.Errorf("Controls = %+v, want %+v", got.Controls, want)
	}
	if got.Animation.Enabled {
		t.Error("Animation.Enabled = true, want false")
	}
	if got.Window != base.Window {
		t.Error("Settings changed unrelated sections")
	}
	// The base config is left alone so Reset still uses it.
	if base.Controls.Turn != 0 || !base.Animation.Enabled {
		t.Errorf("base modified: %+v", base)
	}
}
