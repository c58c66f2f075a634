package figure

import "github.com/Faultbox/robotarm/pkg/math"

// Canvas draws primitives. Each draw call receives the primitive's world
// transform, so implementations need no matrix stack of their own.
type Canvas interface {
	SetAmbientColor(c Color)
	SetDiffuseColor(c Color)
	DrawSphere(world math.Mat4, radius float64)
	DrawBox(world math.Mat4, dx, dy, dz float64)
	DrawCylinder(world math.Mat4, height, r1, r2 float64)
}

// Replay sends a draw list to a canvas. Transform and scope commands are
// already folded into each primitive's World and are skipped.
func Replay(cmds []Command, c Canvas) {
	for i := range cmds {
		cmd := &cmds[i]
		switch cmd.Op {
		case OpAmbient:
			c.SetAmbientColor(cmd.Color)
		case OpDiffuse:
			c.SetDiffuseColor(cmd.Color)
		case OpSphere:
			c.DrawSphere(cmd.World, cmd.Radius)
		case OpBox:
			c.DrawBox(cmd.World, cmd.XYZ[0], cmd.XYZ[1], cmd.XYZ[2])
		case OpCylinder:
			c.DrawCylinder(cmd.World, cmd.Height, cmd.Radius, cmd.Top)
		}
	}
}
