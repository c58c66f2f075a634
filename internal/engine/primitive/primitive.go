// Package primitive tessellates the figure's building blocks into indexed
// triangle meshes.
//
// Conventions: spheres are centered on the origin; boxes span the origin to
// (dx, dy, dz); cylinders run along +Z from z=0 to z=height.
package primitive

import (
	"fmt"
	gomath "math"
)

// Vertex is a mesh vertex with position and normal.
type Vertex struct {
	Position [3]float32
	Normal   [3]float32
}

// Mesh is an indexed triangle list.
type Mesh struct {
	Vertices []Vertex
	Indices  []uint32
}

// TriangleCount returns the number of triangles.
func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

// Bounds returns the axis-aligned bounding box of the mesh.
func (m *Mesh) Bounds() (lo, hi [3]float32) {
	if len(m.Vertices) == 0 {
		return lo, hi
	}
	lo = m.Vertices[0].Position
	hi = lo
	for _, v := range m.Vertices[1:] {
		for k := 0; k < 3; k++ {
			if v.Position[k] < lo[k] {
				lo[k] = v.Position[k]
			}
			if v.Position[k] > hi[k] {
				hi[k] = v.Position[k]
			}
		}
	}
	return lo, hi
}

// Detail controls tessellation density.
type Detail struct {
	Slices int // segments around the axis
	Stacks int // sphere segments pole to pole
}

// Detail presets.
var (
	DetailLow    = Detail{Slices: 8, Stacks: 6}
	DetailMedium = Detail{Slices: 16, Stacks: 12}
	DetailHigh   = Detail{Slices: 32, Stacks: 24}
)

// ParseDetail maps a preset name to its Detail.
func ParseDetail(name string) (Detail, error) {
	switch name {
	case "low":
		return DetailLow, nil
	case "medium", "":
		return DetailMedium, nil
	case "high":
		return DetailHigh, nil
	default:
		return Detail{}, fmt.Errorf("unknown detail level %q", name)
	}
}

func (d Detail) clamp() Detail {
	if d.Slices < 3 {
		d.Slices = 3
	}
	if d.Stacks < 2 {
		d.Stacks = 2
	}
	return d
}

// Sphere builds a UV sphere with poles on the Z axis.
func Sphere(radius float64, d Detail) *Mesh {
	d = d.clamp()
	m := &Mesh{}
	r := float32(radius)

	for i := 0; i <= d.Stacks; i++ {
		phi := gomath.Pi * float64(i) / float64(d.Stacks)
		sinPhi, cosPhi := gomath.Sincos(phi)
		for j := 0; j <= d.Slices; j++ {
			theta := 2 * gomath.Pi * float64(j) / float64(d.Slices)
			sinTheta, cosTheta := gomath.Sincos(theta)
			n := [3]float32{
				float32(sinPhi * cosTheta),
				float32(sinPhi * sinTheta),
				float32(cosPhi),
			}
			m.Vertices = append(m.Vertices, Vertex{
				Position: [3]float32{n[0] * r, n[1] * r, n[2] * r},
				Normal:   n,
			})
		}
	}

	ring := uint32(d.Slices + 1)
	for i := 0; i < d.Stacks; i++ {
		for j := 0; j < d.Slices; j++ {
			a := uint32(i)*ring + uint32(j)
			b := a + ring
			m.Indices = append(m.Indices, a, b, a+1, a+1, b, b+1)
		}
	}
	return m
}

// Box builds a box from the origin to (dx, dy, dz) with flat face normals.
func Box(dx, dy, dz float64) *Mesh {
	x, y, z := float32(dx), float32(dy), float32(dz)
	faces := []struct {
		normal  [3]float32
		corners [4][3]float32
	}{
		{[3]float32{0, 0, -1}, [4][3]float32{{0, 0, 0}, {0, y, 0}, {x, y, 0}, {x, 0, 0}}},
		{[3]float32{0, 0, 1}, [4][3]float32{{0, 0, z}, {x, 0, z}, {x, y, z}, {0, y, z}}},
		{[3]float32{-1, 0, 0}, [4][3]float32{{0, 0, 0}, {0, 0, z}, {0, y, z}, {0, y, 0}}},
		{[3]float32{1, 0, 0}, [4][3]float32{{x, 0, 0}, {x, y, 0}, {x, y, z}, {x, 0, z}}},
		{[3]float32{0, -1, 0}, [4][3]float32{{0, 0, 0}, {x, 0, 0}, {x, 0, z}, {0, 0, z}}},
		{[3]float32{0, 1, 0}, [4][3]float32{{0, y, 0}, {0, y, z}, {x, y, z}, {x, y, 0}}},
	}

	m := &Mesh{}
	for _, f := range faces {
		base := uint32(len(m.Vertices))
		for _, c := range f.corners {
			m.Vertices = append(m.Vertices, Vertex{Position: c, Normal: f.normal})
		}
		m.Indices = append(m.Indices, base, base+1, base+2, base, base+2, base+3)
	}
	return m
}

// Cylinder builds a capped cylinder along +Z with base radius r1 and top
// radius r2. A zero radius end gets no cap, so r2 = 0 makes a cone.
func Cylinder(height, r1, r2 float64, d Detail) *Mesh {
	d = d.clamp()
	m := &Mesh{}
	h := float32(height)

	// Side normals lean toward +Z when the cylinder narrows.
	slope := 0.0
	if height != 0 {
		slope = (r1 - r2) / height
	}
	nz := float32(slope / gomath.Sqrt(1+slope*slope))
	nxy := float32(1 / gomath.Sqrt(1+slope*slope))

	for j := 0; j <= d.Slices; j++ {
		theta := 2 * gomath.Pi * float64(j) / float64(d.Slices)
		sin, cos := gomath.Sincos(theta)
		c, s := float32(cos), float32(sin)
		n := [3]float32{c * nxy, s * nxy, nz}
		m.Vertices = append(m.Vertices,
			Vertex{Position: [3]float32{c * float32(r1), s * float32(r1), 0}, Normal: n},
			Vertex{Position: [3]float32{c * float32(r2), s * float32(r2), h}, Normal: n},
		)
	}
	for j := 0; j < d.Slices; j++ {
		a := uint32(j * 2)
		m.Indices = append(m.Indices, a, a+2, a+1, a+1, a+2, a+3)
	}

	if r1 > 0 {
		m.cap(0, float32(r1), -1, d.Slices)
	}
	if r2 > 0 {
		m.cap(h, float32(r2), 1, d.Slices)
	}
	return m
}

// cap adds a disk at height z facing dir (+1 or -1 along Z).
func (m *Mesh) cap(z, r float32, dir float32, slices int) {
	n := [3]float32{0, 0, dir}
	center := uint32(len(m.Vertices))
	m.Vertices = append(m.Vertices, Vertex{Position: [3]float32{0, 0, z}, Normal: n})
	for j := 0; j <= slices; j++ {
		theta := 2 * gomath.Pi * float64(j) / float64(slices)
		sin, cos := gomath.Sincos(theta)
		m.Vertices = append(m.Vertices, Vertex{
			Position: [3]float32{float32(cos) * r, float32(sin) * r, z},
			Normal:   n,
		})
	}
	for j := 0; j < slices; j++ {
		a := center + 1 + uint32(j)
		if dir > 0 {
			m.Indices = append(m.Indices, center, a, a+1)
		} else {
			m.Indices = append(m.Indices, center, a+1, a)
		}
	}
}
