package raster

import (
	gomath "math"
)

// screenVertex is a vertex after the perspective divide, in pixels, with
// NDC depth.
type screenVertex struct {
	X, Y, Z float32
}

// fillTriangle rasterizes one triangle with a constant color and depth
// testing. Winding does not matter.
func fillTriangle(fb *FrameBuffer, v0, v1, v2 screenVertex, rgba [4]uint8) {
	minX := int(gomath.Floor(float64(min(v0.X, v1.X, v2.X))))
	maxX := int(gomath.Ceil(float64(max(v0.X, v1.X, v2.X))))
	minY := int(gomath.Floor(float64(min(v0.Y, v1.Y, v2.Y))))
	maxY := int(gomath.Ceil(float64(max(v0.Y, v1.Y, v2.Y))))

	minX = max(minX, 0)
	minY = max(minY, 0)
	maxX = min(maxX, fb.Width-1)
	maxY = min(maxY, fb.Height-1)
	if minX > maxX || minY > maxY {
		return
	}

	// Barycentric setup
	det := (v1.Y-v2.Y)*(v0.X-v2.X) + (v2.X-v1.X)*(v0.Y-v2.Y)
	if det > -1e-8 && det < 1e-8 {
		return
	}
	invDet := 1 / det

	dy12 := v1.Y - v2.Y
	dx21 := v2.X - v1.X
	dy20 := v2.Y - v0.Y
	dx02 := v0.X - v2.X

	for y := minY; y <= maxY; y++ {
		py := float32(y) + 0.5
		for x := minX; x <= maxX; x++ {
			px := float32(x) + 0.5

			w0 := (dy12*(px-v2.X) + dx21*(py-v2.Y)) * invDet
			w1 := (dy20*(px-v2.X) + dx02*(py-v2.Y)) * invDet
			w2 := 1 - w0 - w1
			if w0 < 0 || w1 < 0 || w2 < 0 {
				continue
			}

			z := w0*v0.Z + w1*v1.Z + w2*v2.Z
			idx := y*fb.Width + x
			if z >= fb.ZBuf[idx] {
				continue
			}
			fb.ZBuf[idx] = z

			ci := idx * 4
			fb.Color[ci] = rgba[0]
			fb.Color[ci+1] = rgba[1]
			fb.Color[ci+2] = rgba[2]
			fb.Color[ci+3] = rgba[3]
		}
	}
}
