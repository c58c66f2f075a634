// Package figure composes and animates the articulated figure: a torso,
// chest and head stacked from primitives, two swinging arms and a spinning
// head, in a round or boxy body.
//
// Each frame the host calls Figure.Render with the current control values.
// The result is a flat draw list that a Canvas replays.
package figure

import "github.com/Faultbox/robotarm/internal/controls"

// Variant selects the body style.
type Variant int

const (
	VariantRound Variant = iota // sphere body
	VariantBoxy                 // box body
)

func (v Variant) String() string {
	if v == VariantRound {
		return "round"
	}
	return "boxy"
}

// ControlInputs are the externally supplied values for one frame.
type ControlInputs struct {
	PositionX   float64
	PositionY   float64
	PositionZ   float64
	Turn        float64 // yaw in degrees
	BodyVariant Variant
}

// ControlSource supplies control values by id.
type ControlSource interface {
	ControlValue(id controls.ID) float64
}

// ReadControls snapshots a source into ControlInputs. Any non-zero
// variant value selects the boxy body.
func ReadControls(src ControlSource) ControlInputs {
	in := ControlInputs{
		PositionX: src.ControlValue(controls.PositionX),
		PositionY: src.ControlValue(controls.PositionY),
		PositionZ: src.ControlValue(controls.PositionZ),
		Turn:      src.ControlValue(controls.Turn),
	}
	if src.ControlValue(controls.BodyVariant) != 0 {
		in.BodyVariant = VariantBoxy
	}
	return in
}

// Renderable produces a frame's draw list.
type Renderable interface {
	Render(in ControlInputs, animating bool) []Command
}

// Figure owns the animation state and composes frames from it.
type Figure struct {
	anim     AnimationState
	composer *Composer
}

var _ Renderable = (*Figure)(nil)

// New returns a figure in its initial pose.
func New(opts Options) *Figure {
	return &Figure{composer: NewComposer(opts)}
}

// Render advances the animation by one step when animating, then composes
// the frame.
func (f *Figure) Render(in ControlInputs, animating bool) []Command {
	if animating {
		f.anim.Advance()
	}
	return f.composer.Compose(in, f.anim.Offsets())
}

// Animation exposes the figure's animation state.
func (f *Figure) Animation() *AnimationState {
	return &f.anim
}
