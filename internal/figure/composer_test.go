package figure

import (
	gomath "math"
	"reflect"
	"testing"

	"github.com/Faultbox/robotarm/pkg/math"
)

func kinds(cmds []Command) []Op {
	var out []Op
	for _, c := range Primitives(cmds) {
		out = append(out, c.Op)
	}
	return out
}

func TestComposeRoundPrimitives(t *testing.T) {
	cmds := NewComposer(Options{}).Compose(ControlInputs{}, JointOffsets{})

	want := []Op{
		OpBox,      // ground
		OpSphere,   // torso
		OpSphere,   // chest
		OpCylinder, // right arm
		OpSphere,   // right hand
		OpCylinder, // left arm
		OpSphere,   // left hand
		OpSphere,   // head
		OpSphere,   // left eye
		OpSphere,   // right eye
		OpCylinder, // nose
	}
	if got := kinds(cmds); !reflect.DeepEqual(got, want) {
		t.Errorf("primitives = %v, want %v", got, want)
	}
}

func TestComposeBoxyPrimitives(t *testing.T) {
	cmds := NewComposer(Options{}).Compose(ControlInputs{BodyVariant: VariantBoxy}, JointOffsets{})

	want := []Op{
		OpBox,      // ground
		OpBox,      // torso
		OpBox,      // chest
		OpCylinder, // right arm
		OpSphere,   // right hand
		OpCylinder, // left arm
		OpSphere,   // left hand
		OpBox,      // head
		OpSphere,   // left eye
		OpSphere,   // right eye
		OpCylinder, // nose
	}
	if got := kinds(cmds); !reflect.DeepEqual(got, want) {
		t.Errorf("primitives = %v, want %v", got, want)
	}
}

func TestComposeUnknownVariantIsBoxy(t *testing.T) {
	c := NewComposer(Options{})
	boxy := c.Compose(ControlInputs{BodyVariant: VariantBoxy}, JointOffsets{})
	other := c.Compose(ControlInputs{BodyVariant: Variant(7)}, JointOffsets{})
	if !reflect.DeepEqual(boxy, other) {
		t.Error("non-zero variant should compose the boxy body")
	}
}

func TestComposeDimensions(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		want    []string
	}{
		{
			name:    "round",
			variant: VariantRound,
			want: []string{
				"box(10 x 0.01 x 10)",
				"sphere(r=1.7)",
				"sphere(r=1.3)",
				"cylinder(h=1, r1=0.05, r2=0.05)",
				"sphere(r=0.24)",
				"cylinder(h=1, r1=0.05, r2=0.05)",
				"sphere(r=0.24)",
				"sphere(r=0.9)",
				"sphere(r=0.1)",
				"sphere(r=0.1)",
				"cylinder(h=1, r1=0.2, r2=0)",
			},
		},
		{
			name:    "boxy",
			variant: VariantBoxy,
			want: []string{
				"box(10 x 0.01 x 10)",
				"box(2.6 x 2.6 x 2.6)",
				"box(2.1 x 2.1 x 2.1)",
				"cylinder(h=1, r1=0.05, r2=0.05)",
				"sphere(r=0.24)",
				"cylinder(h=1, r1=0.05, r2=0.05)",
				"sphere(r=0.24)",
				"box(1.6 x 1.6 x 1.6)",
				"sphere(r=0.1)",
				"sphere(r=0.1)",
				"cylinder(h=1, r1=0.2, r2=0)",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmds := NewComposer(Options{}).Compose(ControlInputs{BodyVariant: tt.variant}, JointOffsets{})
			var got []string
			for _, c := range Primitives(cmds) {
				got = append(got, c.String())
			}
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("primitives:\n got %v\nwant %v", got, tt.want)
			}
		})
	}
}

func TestComposeIsIdempotent(t *testing.T) {
	c := NewComposer(Options{})
	in := ControlInputs{PositionX: 1.5, PositionY: 2, PositionZ: -3, Turn: 40}
	offsets := JointOffsets{LeftArm: -12.1, RightArm: 33, Head: 97.5}

	first := c.Compose(in, offsets)
	second := c.Compose(in, offsets)
	if !reflect.DeepEqual(first, second) {
		t.Error("Compose produced different lists for identical inputs")
	}

	// A fresh composer agrees too.
	third := NewComposer(Options{}).Compose(in, offsets)
	if !reflect.DeepEqual(first, third) {
		t.Error("Compose depends on composer history")
	}
}

func TestComposeRestPoseRotations(t *testing.T) {
	cmds := NewComposer(Options{}).Compose(ControlInputs{}, JointOffsets{})

	type rot struct {
		angle float64
		axis  math.Vec3
	}
	want := []rot{
		{0, math.AxisY},   // figure yaw
		{90, math.AxisY},  // right arm mount
		{160, math.AxisX}, // right arm swing
		{90, math.AxisY},  // left arm mount
		{20, math.AxisX},  // left arm swing
		{0, math.AxisY},   // head follows yaw
		{0, math.AxisY},   // head spin
	}

	var got []rot
	for _, c := range Rotations(cmds) {
		got = append(got, rot{c.Angle, c.Axis})
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("rotations = %v, want %v", got, want)
	}
}

func TestComposeAnimatedRoundArms(t *testing.T) {
	offsets := JointOffsets{LeftArm: -30, RightArm: 45, Head: 120}
	cmds := NewComposer(Options{}).Compose(ControlInputs{Turn: 30}, offsets)

	rots := Rotations(cmds)
	if len(rots) != 7 {
		t.Fatalf("got %d rotations, want 7", len(rots))
	}
	if rots[2].Angle != 205 {
		t.Errorf("right arm swing = %v, want 205", rots[2].Angle)
	}
	if rots[4].Angle != -10 {
		t.Errorf("left arm swing = %v, want -10", rots[4].Angle)
	}
	if rots[5].Angle != 30 || rots[6].Angle != 120 {
		t.Errorf("head rotations = %v, %v, want 30, 120", rots[5].Angle, rots[6].Angle)
	}
}

func TestComposeBoxyArmsHoldRestAngles(t *testing.T) {
	offsets := JointOffsets{LeftArm: -30, RightArm: 45, Head: 120}
	in := ControlInputs{Turn: 30, BodyVariant: VariantBoxy}

	rots := Rotations(NewComposer(Options{}).Compose(in, offsets))
	// Figure yaw, then two arms; the boxy head never rotates.
	if len(rots) != 5 {
		t.Fatalf("got %d rotations, want 5", len(rots))
	}
	if rots[2].Angle != RightArmRest || rots[4].Angle != LeftArmRest {
		t.Errorf("boxy arm swings = %v, %v, want %v, %v", rots[2].Angle, rots[4].Angle, RightArmRest, LeftArmRest)
	}

	rots = Rotations(NewComposer(Options{AnimateBoxyArms: true}).Compose(in, offsets))
	if rots[2].Angle != 205 || rots[4].Angle != -10 {
		t.Errorf("animated boxy arm swings = %v, %v, want 205, -10", rots[2].Angle, rots[4].Angle)
	}
}

func TestComposeScopesBalanced(t *testing.T) {
	for _, v := range []Variant{VariantRound, VariantBoxy} {
		cmds := NewComposer(Options{}).Compose(ControlInputs{BodyVariant: v}, JointOffsets{})
		depth, maxDepth := 0, 0
		for _, c := range cmds {
			switch c.Op {
			case OpPush:
				depth++
				if depth > maxDepth {
					maxDepth = depth
				}
			case OpPop:
				depth--
				if depth < 0 {
					t.Fatalf("%s: pop without push", v)
				}
			}
		}
		if depth != 0 {
			t.Errorf("%s: unbalanced scopes, depth %d at end", v, depth)
		}
		// model > torso > chest > arm > hand
		if maxDepth != 5 {
			t.Errorf("%s: max depth %d, want 5", v, maxDepth)
		}
	}
}

func TestComposeColors(t *testing.T) {
	want := []Color{
		Red,       // ground
		White,     // torso
		White,     // chest
		LimbBrown, // right arm
		White,     // right hand
		LimbBrown, // left arm
		White,     // left hand
		White,     // head
		Black,     // left eye
		Black,     // right eye
		Red,       // nose
	}

	for _, v := range []Variant{VariantRound, VariantBoxy} {
		cmds := NewComposer(Options{}).Compose(ControlInputs{BodyVariant: v}, JointOffsets{})
		if cmds[0].Op != OpAmbient || cmds[0].Color != AmbientGray {
			t.Errorf("%s: first command = %v, want ambient gray", v, cmds[0])
		}

		var current Color
		var got []Color
		for _, c := range cmds {
			switch {
			case c.Op == OpDiffuse:
				current = c.Color
			case c.Op.IsPrimitive():
				got = append(got, current)
			}
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("%s: colors = %v, want %v", v, got, want)
		}
	}
}

func TestComposeWorldPlacement(t *testing.T) {
	in := ControlInputs{PositionX: 1, PositionY: 2, PositionZ: 3}
	prims := Primitives(NewComposer(Options{}).Compose(in, JointOffsets{}))

	checks := []struct {
		name string
		idx  int
		want math.Vec3
	}{
		{"ground ignores position", 0, math.Vec3{X: -5, Y: -3.5, Z: -5}},
		{"torso", 1, math.Vec3{X: 1, Y: 0.2, Z: 3}},
		{"chest", 2, math.Vec3{X: 1, Y: 2.7, Z: 3}},
		{"right arm", 3, math.Vec3{X: -0.1, Y: 3.1, Z: 3}},
		{"left arm", 5, math.Vec3{X: 2.1, Y: 3.1, Z: 3}},
		{"head", 7, math.Vec3{X: 1, Y: 4.5, Z: 3}},
	}
	for _, c := range checks {
		t.Run(c.name, func(t *testing.T) {
			if got := prims[c.idx].World.Origin(); !nearVec(got, c.want) {
				t.Errorf("origin = %v, want %v", got, c.want)
			}
		})
	}

	// The right hand sits at the end of an arm swung 160 degrees about X
	// after a 90 degree yaw: it ends up on the -X side, below the shoulder.
	rad := 160 * gomath.Pi / 180
	wantHand := math.V3(-0.1+1.05*gomath.Cos(rad), 3.1-1.05*gomath.Sin(rad), 3)
	if got := prims[4].World.Origin(); !nearVec(got, wantHand) {
		t.Errorf("right hand origin = %v, want %v", got, wantHand)
	}
}

func TestComposeTurnRotatesFigure(t *testing.T) {
	in := ControlInputs{Turn: 90}
	prims := Primitives(NewComposer(Options{}).Compose(in, JointOffsets{}))

	// Yawing 90 degrees carries the left shoulder (+X) to -Z.
	got := prims[5].World.Origin()
	want := math.Vec3{X: 0, Y: 1.1, Z: -1.1}
	if !nearVec(got, want) {
		t.Errorf("left arm origin = %v, want %v", got, want)
	}
}

func nearVec(a, b math.Vec3) bool {
	const tol = 1e-4
	d := a.Sub(b)
	return gomath.Abs(float64(d.X)) < tol && gomath.Abs(float64(d.Y)) < tol && gomath.Abs(float64(d.Z)) < tol
}
