package raster

import (
	"github.com/Faultbox/robotarm/internal/engine/lighting"
	"github.com/Faultbox/robotarm/internal/engine/primitive"
	"github.com/Faultbox/robotarm/internal/figure"
	"github.com/Faultbox/robotarm/pkg/math"
)

// nearW is the smallest clip-space w a vertex may have before its triangle
// is dropped as behind the camera.
const nearW = 1e-4

// Canvas is a figure.Canvas that rasterizes into a FrameBuffer.
type Canvas struct {
	fb       *FrameBuffer
	viewProj math.Mat4
	meshes   *primitive.Cache
	toLight  math.Vec3

	ambient [3]float32
	diffuse [3]float32

	triangles int
}

// NewCanvas creates a canvas drawing through viewProj (projection * view)
// into fb.
func NewCanvas(fb *FrameBuffer, viewProj math.Mat4, meshes *primitive.Cache, sun lighting.Sun) *Canvas {
	return &Canvas{
		fb:       fb,
		viewProj: viewProj,
		meshes:   meshes,
		toLight:  sun.Direction(),
		diffuse:  [3]float32{1, 1, 1},
	}
}

// Triangles returns how many triangles reached the rasterizer.
func (c *Canvas) Triangles() int {
	return c.triangles
}

// SetAmbientColor implements figure.Canvas.
func (c *Canvas) SetAmbientColor(col figure.Color) {
	c.ambient = [3]float32{col.R, col.G, col.B}
}

// SetDiffuseColor implements figure.Canvas.
func (c *Canvas) SetDiffuseColor(col figure.Color) {
	c.diffuse = [3]float32{col.R, col.G, col.B}
}

// DrawSphere implements figure.Canvas.
func (c *Canvas) DrawSphere(world math.Mat4, radius float64) {
	c.drawMesh(world, c.meshes.Get(primitive.SphereKey(radius)))
}

// DrawBox implements figure.Canvas.
func (c *Canvas) DrawBox(world math.Mat4, dx, dy, dz float64) {
	c.drawMesh(world, c.meshes.Get(primitive.BoxKey(dx, dy, dz)))
}

// DrawCylinder implements figure.Canvas.
func (c *Canvas) DrawCylinder(world math.Mat4, height, r1, r2 float64) {
	c.drawMesh(world, c.meshes.Get(primitive.CylinderKey(height, r1, r2)))
}

func (c *Canvas) drawMesh(world math.Mat4, mesh *primitive.Mesh) {
	mvp := c.viewProj.Mul(world)

	for i := 0; i+2 < len(mesh.Indices); i += 3 {
		var sv [3]screenVertex
		var normal math.Vec3
		visible := true

		for k := 0; k < 3; k++ {
			v := mesh.Vertices[mesh.Indices[i+k]]
			p, ok := c.project(mvp, v.Position)
			if !ok {
				visible = false
				break
			}
			sv[k] = p
			normal = normal.Add(vec(v.Normal))
		}
		if !visible {
			continue
		}

		n := world.TransformDirection(normal)
		rgb := lighting.Shade(c.ambient, c.diffuse, lighting.Lambert(n, c.toLight, false))
		fillTriangle(c.fb, sv[0], sv[1], sv[2], [4]uint8{to8(rgb[0]), to8(rgb[1]), to8(rgb[2]), 255})
		c.triangles++
	}
}

// project maps a model-space position to the screen. It reports false for
// points at or behind the eye.
func (c *Canvas) project(mvp math.Mat4, p [3]float32) (screenVertex, bool) {
	x := mvp[0]*p[0] + mvp[4]*p[1] + mvp[8]*p[2] + mvp[12]
	y := mvp[1]*p[0] + mvp[5]*p[1] + mvp[9]*p[2] + mvp[13]
	z := mvp[2]*p[0] + mvp[6]*p[1] + mvp[10]*p[2] + mvp[14]
	w := mvp[3]*p[0] + mvp[7]*p[1] + mvp[11]*p[2] + mvp[15]
	if w < nearW {
		return screenVertex{}, false
	}

	ndcX, ndcY, ndcZ := x/w, y/w, z/w
	return screenVertex{
		X: (ndcX + 1) * 0.5 * float32(c.fb.Width),
		Y: (1 - ndcY) * 0.5 * float32(c.fb.Height),
		Z: ndcZ,
	}, true
}

func vec(a [3]float32) math.Vec3 {
	return math.Vec3{X: a[0], Y: a[1], Z: a[2]}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}
