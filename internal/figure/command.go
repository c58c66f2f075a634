package figure

import (
	"fmt"

	"github.com/Faultbox/robotarm/pkg/math"
)

// Op is the kind of a draw command.
type Op uint8

const (
	OpAmbient Op = iota
	OpDiffuse
	OpPush
	OpPop
	OpTranslate
	OpRotate
	OpSphere
	OpBox
	OpCylinder
)

var opNames = [...]string{
	OpAmbient:   "ambient",
	OpDiffuse:   "diffuse",
	OpPush:      "push",
	OpPop:       "pop",
	OpTranslate: "translate",
	OpRotate:    "rotate",
	OpSphere:    "sphere",
	OpBox:       "box",
	OpCylinder:  "cylinder",
}

func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return fmt.Sprintf("op(%d)", uint8(op))
}

// IsPrimitive reports whether op draws geometry.
func (op Op) IsPrimitive() bool {
	return op == OpSphere || op == OpBox || op == OpCylinder
}

// Color is a linear RGB material color.
type Color struct {
	R, G, B float32
}

// Material colors used by the figure.
var (
	AmbientGray = Color{0.1, 0.1, 0.1}
	White       = Color{1, 1, 1}
	Black       = Color{0, 0, 0}
	Red         = Color{1, 0, 0}
	LimbBrown   = Color{0.65, 0.16, 0.16}
)

// Command is one step of a frame's draw list.
//
// Field use depends on Op:
//   - OpAmbient, OpDiffuse: Color
//   - OpTranslate: XYZ is the offset
//   - OpRotate: Angle in degrees about Axis
//   - OpSphere: Radius
//   - OpBox: XYZ is the extent from the local origin
//   - OpCylinder: Height along +Z, Radius at the base, Top at the far end
//
// Primitive commands carry World, the accumulated transform at the moment
// they were emitted.
type Command struct {
	Op     Op
	Color  Color
	XYZ    [3]float64
	Axis   math.Vec3
	Angle  float64
	Radius float64
	Top    float64
	Height float64
	World  math.Mat4
}

func (c Command) String() string {
	switch c.Op {
	case OpAmbient, OpDiffuse:
		return fmt.Sprintf("%s(%g, %g, %g)", c.Op, c.Color.R, c.Color.G, c.Color.B)
	case OpTranslate:
		return fmt.Sprintf("translate(%g, %g, %g)", c.XYZ[0], c.XYZ[1], c.XYZ[2])
	case OpRotate:
		return fmt.Sprintf("rotate(%g about %s)", c.Angle, axisName(c.Axis))
	case OpSphere:
		return fmt.Sprintf("sphere(r=%g)", c.Radius)
	case OpBox:
		return fmt.Sprintf("box(%g x %g x %g)", c.XYZ[0], c.XYZ[1], c.XYZ[2])
	case OpCylinder:
		return fmt.Sprintf("cylinder(h=%g, r1=%g, r2=%g)", c.Height, c.Radius, c.Top)
	default:
		return c.Op.String()
	}
}

func axisName(a math.Vec3) string {
	switch a {
	case math.AxisX:
		return "X"
	case math.AxisY:
		return "Y"
	case math.AxisZ:
		return "Z"
	}
	return fmt.Sprintf("(%g, %g, %g)", a.X, a.Y, a.Z)
}

// Primitives filters the geometry commands out of a draw list.
func Primitives(cmds []Command) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Op.IsPrimitive() {
			out = append(out, c)
		}
	}
	return out
}

// Rotations returns every rotate command in order.
func Rotations(cmds []Command) []Command {
	var out []Command
	for _, c := range cmds {
		if c.Op == OpRotate {
			out = append(out, c)
		}
	}
	return out
}
