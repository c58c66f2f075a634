// Package controls declares the figure's slider controls and holds their
// current values the way a control panel would.
package controls

import (
	"fmt"
	gomath "math"
)

// ID identifies one control.
type ID int

const (
	PositionX ID = iota
	PositionY
	PositionZ
	Turn
	BodyVariant
	Count
)

// Declaration describes a control's range, step and default value.
type Declaration struct {
	ID      ID
	Key     string // config / CLI key
	Label   string // panel label
	Min     float64
	Max     float64
	Step    float64
	Default float64
}

// Declarations lists every control in panel order.
var Declarations = [Count]Declaration{
	{PositionX, "position_x", "X Position", -5, 5, 0.1, 0},
	{PositionY, "position_y", "Y Position", 0, 5, 0.1, 0},
	{PositionZ, "position_z", "Z Position", -5, 5, 0.1, 0},
	{Turn, "turn", "Turn", -90, 90, 10, 0},
	{BodyVariant, "body_variant", "State", 0, 1, 1, 0},
}

// String returns the control's key.
func (id ID) String() string {
	if id < 0 || id >= Count {
		return fmt.Sprintf("control(%d)", int(id))
	}
	return Declarations[id].Key
}

// Lookup finds a declaration by key.
func Lookup(key string) (Declaration, bool) {
	for _, d := range Declarations {
		if d.Key == key {
			return d, true
		}
	}
	return Declaration{}, false
}

// Clamp limits v to the declared range.
func (d Declaration) Clamp(v float64) float64 {
	if v < d.Min {
		return d.Min
	}
	if v > d.Max {
		return d.Max
	}
	return v
}

// Snap rounds v to the nearest step from Min and clamps it.
func (d Declaration) Snap(v float64) float64 {
	if d.Step > 0 {
		v = d.Min + gomath.Round((v-d.Min)/d.Step)*d.Step
	}
	return d.Clamp(v)
}

// Contains reports whether v lies within the declared range.
func (d Declaration) Contains(v float64) bool {
	return v >= d.Min && v <= d.Max
}
