package controls

import (
	"math"
	"testing"
)

func TestDeclarations(t *testing.T) {
	tests := []struct {
		id                      ID
		label                   string
		min, max, step, initial float64
	}{
		{PositionX, "X Position", -5, 5, 0.1, 0},
		{PositionY, "Y Position", 0, 5, 0.1, 0},
		{PositionZ, "Z Position", -5, 5, 0.1, 0},
		{Turn, "Turn", -90, 90, 10, 0},
		{BodyVariant, "State", 0, 1, 1, 0},
	}

	for _, tt := range tests {
		t.Run(tt.id.String(), func(t *testing.T) {
			d := Declarations[tt.id]
			if d.ID != tt.id {
				t.Errorf("ID = %d, want %d", d.ID, tt.id)
			}
			if d.Label != tt.label || d.Min != tt.min || d.Max != tt.max || d.Step != tt.step || d.Default != tt.initial {
				t.Errorf("declaration = %+v", d)
			}
		})
	}
}

func TestLookup(t *testing.T) {
	d, ok := Lookup("turn")
	if !ok || d.ID != Turn {
		t.Errorf("Lookup(turn) = %+v, %v", d, ok)
	}
	if _, ok := Lookup("elbow"); ok {
		t.Error("Lookup(elbow) should fail")
	}
	if got := ID(42).String(); got != "control(42)" {
		t.Errorf("String() = %q", got)
	}
}

func TestPanelSetClampsAndSnaps(t *testing.T) {
	tests := []struct {
		name string
		id   ID
		in   float64
		want float64
	}{
		{"in range", PositionX, 1.2, 1.2},
		{"snaps to step", PositionX, 1.234, 1.2},
		{"clamps high", PositionX, 12, 5},
		{"clamps low", PositionY, -1, 0},
		{"turn snaps to tens", Turn, 44, 40},
		{"turn clamps", Turn, 200, 90},
		{"variant rounds up", BodyVariant, 0.7, 1},
		{"variant rounds down", BodyVariant, 0.2, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPanel()
			got := p.Set(tt.id, tt.in)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Set(%v) = %v, want %v", tt.in, got, tt.want)
			}
			if p.ControlValue(tt.id) != got {
				t.Errorf("ControlValue = %v, want %v", p.ControlValue(tt.id), got)
			}
		})
	}
}

func TestPanelNudgeAndToggle(t *testing.T) {
	p := NewPanel()

	p.Nudge(Turn, 3)
	if got := p.ControlValue(Turn); got != 30 {
		t.Errorf("Turn after +3 steps = %v, want 30", got)
	}
	p.Nudge(Turn, -20)
	if got := p.ControlValue(Turn); got != -90 {
		t.Errorf("Turn after -20 steps = %v, want -90", got)
	}

	if got := p.Toggle(BodyVariant); got != 1 {
		t.Errorf("first Toggle = %v, want 1", got)
	}
	if got := p.Toggle(BodyVariant); got != 0 {
		t.Errorf("second Toggle = %v, want 0", got)
	}
}

func TestPanelReset(t *testing.T) {
	p := NewPanel()
	p.Set(PositionZ, 3)
	p.Set(BodyVariant, 1)
	p.Reset()

	for _, d := range Declarations {
		if got := p.ControlValue(d.ID); got != d.Default {
			t.Errorf("%s after Reset = %v, want %v", d.Key, got, d.Default)
		}
	}
}

func TestPanelIgnoresUnknownID(t *testing.T) {
	p := NewPanel()
	if got := p.Set(Count, 3); got != 0 {
		t.Errorf("Set(unknown) = %v, want 0", got)
	}
	if got := p.ControlValue(-1); got != 0 {
		t.Errorf("ControlValue(-1) = %v, want 0", got)
	}
}

func TestPanelApply(t *testing.T) {
	tests := []struct {
		action  Action
		id      ID
		want    float64
		handled bool
	}{
		{ActionMoveLeft, PositionX, -0.1, true},
		{ActionMoveRight, PositionX, 0.1, true},
		{ActionMoveDown, PositionY, 0, true}, // clamped at the floor
		{ActionMoveUp, PositionY, 0.1, true},
		{ActionMoveNear, PositionZ, 0.1, true},
		{ActionMoveFar, PositionZ, -0.1, true},
		{ActionTurnLeft, Turn, -10, true},
		{ActionTurnRight, Turn, 10, true},
		{ActionToggleVariant, BodyVariant, 1, true},
		{ActionToggleAnimation, BodyVariant, 0, false},
		{ActionQuit, PositionX, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.action.String(), func(t *testing.T) {
			p := NewPanel()
			if got := p.Apply(tt.action); got != tt.handled {
				t.Errorf("Apply(%v) handled = %v, want %v", tt.action, got, tt.handled)
			}
			if got := p.ControlValue(tt.id); math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("%v = %v, want %v", tt.id, got, tt.want)
			}
		})
	}
}

func TestActionString(t *testing.T) {
	if ActionToggleVariant.String() != "toggle-variant" {
		t.Errorf("String() = %q", ActionToggleVariant.String())
	}
	if Action(99).String() != "unknown" {
		t.Errorf("String() = %q", Action(99).String())
	}
}
