package controls

// Panel holds the current value of every control. Writes are snapped to the
// control's step and clamped to its range, so readers always observe valid
// values.
type Panel struct {
	values [Count]float64
}

// NewPanel returns a panel with every control at its declared default.
func NewPanel() *Panel {
	p := &Panel{}
	p.Reset()
	return p
}

// Reset restores all declared defaults.
func (p *Panel) Reset() {
	for i, d := range Declarations {
		p.values[i] = d.Default
	}
}

// ControlValue returns the current value of id.
func (p *Panel) ControlValue(id ID) float64 {
	if id < 0 || id >= Count {
		return 0
	}
	return p.values[id]
}

// Set stores v for id after snapping and clamping. It returns the stored
// value.
func (p *Panel) Set(id ID, v float64) float64 {
	if id < 0 || id >= Count {
		return 0
	}
	p.values[id] = Declarations[id].Snap(v)
	return p.values[id]
}

// Nudge moves id by the given number of steps.
func (p *Panel) Nudge(id ID, steps int) float64 {
	if id < 0 || id >= Count {
		return 0
	}
	d := Declarations[id]
	return p.Set(id, p.values[id]+float64(steps)*d.Step)
}

// Toggle flips a two-valued control between its minimum and maximum.
func (p *Panel) Toggle(id ID) float64 {
	if id < 0 || id >= Count {
		return 0
	}
	d := Declarations[id]
	if p.values[id] == d.Max {
		return p.Set(id, d.Min)
	}
	return p.Set(id, d.Max)
}

// Values returns a copy of all current values in declaration order.
func (p *Panel) Values() [Count]float64 {
	return p.values
}
