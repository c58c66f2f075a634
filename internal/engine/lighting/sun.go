// Package lighting provides the directional light shared by the GPU and
// software renderers.
package lighting

import (
	gomath "math"

	"github.com/Faultbox/robotarm/pkg/math"
)

// Sun is a directional light placed by compass angles in degrees.
// Azimuth rotates around +Y starting at +Z, elevation rises from the
// horizon.
type Sun struct {
	Azimuth   float64
	Elevation float64
}

// DefaultSun lights the figure from the front, upper right.
var DefaultSun = Sun{Azimuth: 30, Elevation: 45}

// Direction returns the unit vector pointing towards the sun.
func (s Sun) Direction() math.Vec3 {
	az := math.Radians(s.Azimuth)
	el := math.Radians(s.Elevation)

	// Spherical to Cartesian conversion
	return math.Vec3{
		X: float32(gomath.Cos(el) * gomath.Sin(az)),
		Y: float32(gomath.Sin(el)),
		Z: float32(gomath.Cos(el) * gomath.Cos(az)),
	}
}

// Lambert returns the diffuse factor for a surface normal. Surfaces facing
// away from the light get nothing unless twoSided is set, in which case the
// back side is lit as if it faced the light.
func Lambert(normal, toLight math.Vec3, twoSided bool) float32 {
	d := normal.Normalize().Dot(toLight)
	if twoSided && d < 0 {
		return -d
	}
	if d < 0 {
		return 0
	}
	return d
}

// FillLevel is the share of diffuse color a surface keeps when it faces
// away from the sun.
const FillLevel = 0.25

// Shade combines ambient and diffuse material colors for a lambert factor.
// Channels saturate at 1.
func Shade(ambient, diffuse [3]float32, lambert float32) [3]float32 {
	k := FillLevel + (1-FillLevel)*lambert
	var out [3]float32
	for i := range out {
		v := ambient[i] + diffuse[i]*k
		if v > 1 {
			v = 1
		}
		out[i] = v
	}
	return out
}
