package figure

import "github.com/Faultbox/robotarm/pkg/math"

// Recorder builds a draw list while tracking the current transform.
// Nesting is only possible through Scope, so every push has its pop.
type Recorder struct {
	cmds  []Command
	stack *math.Stack
}

// NewRecorder returns an empty recorder at the identity transform.
func NewRecorder() *Recorder {
	return &Recorder{stack: math.NewStack()}
}

// Reset discards recorded commands and returns to the identity, keeping the
// allocated capacity.
func (r *Recorder) Reset() {
	r.cmds = r.cmds[:0]
	r.stack.Reset(math.Identity())
}

// Commands returns a copy of the recorded list.
func (r *Recorder) Commands() []Command {
	out := make([]Command, len(r.cmds))
	copy(out, r.cmds)
	return out
}

// Depth returns the current scope nesting.
func (r *Recorder) Depth() int {
	return r.stack.Depth()
}

// Scope runs body inside a nested transform. Transforms applied in body do
// not leak to commands recorded after Scope returns, even if body panics.
func (r *Recorder) Scope(body func()) {
	r.stack.Push()
	r.emit(Command{Op: OpPush})
	defer func() {
		r.stack.Pop()
		r.emit(Command{Op: OpPop})
	}()
	body()
}

// Translate moves the local origin.
func (r *Recorder) Translate(x, y, z float64) {
	r.stack.Translate(float32(x), float32(y), float32(z))
	r.emit(Command{Op: OpTranslate, XYZ: [3]float64{x, y, z}})
}

// TranslateBy is Translate for a packed offset.
func (r *Recorder) TranslateBy(v [3]float64) {
	r.Translate(v[0], v[1], v[2])
}

// Rotate turns the local frame by degrees about axis.
func (r *Recorder) Rotate(degrees float64, axis math.Vec3) {
	r.stack.Rotate(degrees, axis)
	r.emit(Command{Op: OpRotate, Angle: degrees, Axis: axis})
}

// Ambient sets the ambient light color.
func (r *Recorder) Ambient(c Color) {
	r.emit(Command{Op: OpAmbient, Color: c})
}

// Diffuse sets the material color for following primitives.
func (r *Recorder) Diffuse(c Color) {
	r.emit(Command{Op: OpDiffuse, Color: c})
}

// Sphere draws a sphere centered on the local origin.
func (r *Recorder) Sphere(radius float64) {
	r.emit(Command{Op: OpSphere, Radius: radius, World: r.stack.Top()})
}

// Box draws a box spanning the local origin to (dx, dy, dz).
func (r *Recorder) Box(dx, dy, dz float64) {
	r.emit(Command{Op: OpBox, XYZ: [3]float64{dx, dy, dz}, World: r.stack.Top()})
}

// Cylinder draws a capped, possibly tapered cylinder along local +Z.
func (r *Recorder) Cylinder(height, r1, r2 float64) {
	r.emit(Command{Op: OpCylinder, Height: height, Radius: r1, Top: r2, World: r.stack.Top()})
}

func (r *Recorder) emit(c Command) {
	r.cmds = append(r.cmds, c)
}
