package primitive

import (
	gomath "math"
	"testing"
)

func approx(a, b float32) bool {
	return gomath.Abs(float64(a-b)) < 1e-4
}

func length(v [3]float32) float32 {
	return float32(gomath.Sqrt(float64(v[0]*v[0] + v[1]*v[1] + v[2]*v[2])))
}

func TestSphere(t *testing.T) {
	d := Detail{Slices: 8, Stacks: 4}
	m := Sphere(1.7, d)

	if got, want := len(m.Vertices), (4+1)*(8+1); got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
	if got, want := m.TriangleCount(), 4*8*2; got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
	for i, v := range m.Vertices {
		if !approx(length(v.Position), 1.7) {
			t.Fatalf("vertex %d at distance %v, want 1.7", i, length(v.Position))
		}
		if !approx(length(v.Normal), 1) {
			t.Fatalf("normal %d has length %v", i, length(v.Normal))
		}
	}

	lo, hi := m.Bounds()
	if !approx(lo[2], -1.7) || !approx(hi[2], 1.7) {
		t.Errorf("Z bounds = %v..%v, want -1.7..1.7", lo[2], hi[2])
	}
}

func TestBoxSpansFromOrigin(t *testing.T) {
	m := Box(10, 0.01, 10)

	if len(m.Vertices) != 24 || m.TriangleCount() != 12 {
		t.Errorf("got %d vertices, %d triangles, want 24, 12", len(m.Vertices), m.TriangleCount())
	}
	lo, hi := m.Bounds()
	if lo != ([3]float32{0, 0, 0}) {
		t.Errorf("min = %v, want origin", lo)
	}
	if hi != ([3]float32{10, 0.01, 10}) {
		t.Errorf("max = %v, want (10, 0.01, 10)", hi)
	}
}

func TestCylinder(t *testing.T) {
	d := Detail{Slices: 12, Stacks: 2}
	m := Cylinder(1, 0.05, 0.05, d)

	lo, hi := m.Bounds()
	if !approx(lo[2], 0) || !approx(hi[2], 1) {
		t.Errorf("Z span = %v..%v, want 0..1", lo[2], hi[2])
	}
	if !approx(hi[0], 0.05) || !approx(lo[0], -0.05) {
		t.Errorf("X span = %v..%v, want -0.05..0.05", lo[0], hi[0])
	}
	// Side quads plus two capped ends.
	if got, want := m.TriangleCount(), 12*2+12*2; got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
}

func TestConeHasNoTopCap(t *testing.T) {
	d := Detail{Slices: 12, Stacks: 2}
	m := Cylinder(1, 0.2, 0, d)

	if got, want := m.TriangleCount(), 12*2+12; got != want {
		t.Errorf("triangles = %d, want %d", got, want)
	}
	for _, v := range m.Vertices {
		if approx(v.Position[2], 1) && !approx(length([3]float32{v.Position[0], v.Position[1], 0}), 0) {
			t.Fatalf("vertex at the tip off axis: %v", v.Position)
		}
	}
	// Side normals tilt forward on a cone.
	if m.Vertices[0].Normal[2] <= 0 {
		t.Errorf("cone side normal %v should lean toward +Z", m.Vertices[0].Normal)
	}
}

func TestDetailClamp(t *testing.T) {
	m := Sphere(1, Detail{})
	if got, want := len(m.Vertices), (2+1)*(3+1); got != want {
		t.Errorf("vertices = %d, want %d", got, want)
	}
}

func TestParseDetail(t *testing.T) {
	tests := []struct {
		in      string
		want    Detail
		wantErr bool
	}{
		{"low", DetailLow, false},
		{"", DetailMedium, false},
		{"medium", DetailMedium, false},
		{"high", DetailHigh, false},
		{"ultra", Detail{}, true},
	}
	for _, tt := range tests {
		got, err := ParseDetail(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDetail(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
		if got != tt.want {
			t.Errorf("ParseDetail(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestCacheReusesMeshes(t *testing.T) {
	c := NewCache(DetailLow)
	a := c.Get(SphereKey(0.24))
	b := c.Get(SphereKey(0.24))
	if a != b {
		t.Error("same key should return the same mesh")
	}
	c.Get(BoxKey(1, 2, 3))
	c.Get(CylinderKey(1, 0.2, 0))
	if c.Len() != 3 {
		t.Errorf("Len = %d, want 3", c.Len())
	}

	seen := 0
	c.Each(func(Key, *Mesh) { seen++ })
	if seen != 3 {
		t.Errorf("Each visited %d meshes, want 3", seen)
	}
}
