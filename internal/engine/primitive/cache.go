package primitive

// Kind identifies a primitive shape.
type Kind uint8

const (
	KindSphere Kind = iota
	KindBox
	KindCylinder
)

func (k Kind) String() string {
	switch k {
	case KindSphere:
		return "sphere"
	case KindBox:
		return "box"
	case KindCylinder:
		return "cylinder"
	}
	return "unknown"
}

// Key identifies a mesh by shape and parameters.
type Key struct {
	Kind    Kind
	A, B, C float64
}

// SphereKey returns the key for a sphere.
func SphereKey(radius float64) Key { return Key{Kind: KindSphere, A: radius} }

// BoxKey returns the key for a box.
func BoxKey(dx, dy, dz float64) Key { return Key{Kind: KindBox, A: dx, B: dy, C: dz} }

// CylinderKey returns the key for a cylinder.
func CylinderKey(height, r1, r2 float64) Key {
	return Key{Kind: KindCylinder, A: height, B: r1, C: r2}
}

// Cache memoizes meshes by key. The figure reuses a handful of shapes every
// frame, so each is tessellated once.
type Cache struct {
	detail Detail
	meshes map[Key]*Mesh
}

// NewCache returns an empty cache tessellating at d.
func NewCache(d Detail) *Cache {
	return &Cache{detail: d, meshes: make(map[Key]*Mesh)}
}

// Get returns the mesh for k, building it on first use.
func (c *Cache) Get(k Key) *Mesh {
	if m, ok := c.meshes[k]; ok {
		return m
	}
	var m *Mesh
	switch k.Kind {
	case KindSphere:
		m = Sphere(k.A, c.detail)
	case KindBox:
		m = Box(k.A, k.B, k.C)
	default:
		m = Cylinder(k.A, k.B, k.C, c.detail)
	}
	c.meshes[k] = m
	return m
}

// Len returns the number of cached meshes.
func (c *Cache) Len() int {
	return len(c.meshes)
}

// Each visits every cached mesh.
func (c *Cache) Each(fn func(Key, *Mesh)) {
	for k, m := range c.meshes {
		fn(k, m)
	}
}
