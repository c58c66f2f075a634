package figure

// Scene dimensions shared by both body variants.
const (
	groundWidth  = 10.0
	groundHeight = 0.01
	groundDepth  = 10.0

	armLength = 1.0
	armRadius = 0.05

	handRadius = 0.24
	eyeRadius  = 0.1

	noseLength     = 1.0
	noseBaseRadius = 0.2
	noseTipRadius  = 0.0

	armMount = 90.0 // yaw applied before the swing angle
)

var (
	groundAt = [3]float64{-5, -3.5, -5}
	handAt   = [3]float64{0, 0, 1.05}
)

// solid is a body segment: a sphere of the given radius or a cube of the
// given edge.
type solid struct {
	box  bool
	size float64
}

func (s solid) draw(r *Recorder) {
	if s.box {
		r.Box(s.size, s.size, s.size)
		return
	}
	r.Sphere(s.size)
}

// segment is a solid positioned relative to its parent.
type segment struct {
	at    [3]float64
	solid solid
}

// bodyLayout holds everything that differs between body variants.
type bodyLayout struct {
	torso, chest, head segment

	rightArmAt, leftArmAt [3]float64

	leftEyeAt, rightEyeAt, noseAt [3]float64

	// headFollowsTurn applies the figure yaw and head spin to the head.
	headFollowsTurn bool
	// animatedArms drives arm angles from the animation offsets; otherwise
	// the arms stay at their rest angles.
	animatedArms bool
}

// roundBody stacks spheres.
var roundBody = bodyLayout{
	torso: segment{[3]float64{0, -1.8, 0}, solid{size: 1.7}},
	chest: segment{[3]float64{0, 2.5, 0}, solid{size: 1.3}},
	head:  segment{[3]float64{0, 1.8, 0}, solid{size: 0.9}},

	rightArmAt: [3]float64{-1.1, 0.4, 0},
	leftArmAt:  [3]float64{1.1, 0.4, 0},

	leftEyeAt:  [3]float64{0.4, 0.3, 0.8},
	rightEyeAt: [3]float64{-0.4, 0.3, 0.8},
	noseAt:     [3]float64{0, 0, 0.8},

	headFollowsTurn: true,
	animatedArms:    true,
}

// boxyBody stacks cubes. Boxes grow from their corner, so every offset is
// measured from the parent's corner rather than its center.
var boxyBody = bodyLayout{
	torso: segment{[3]float64{-1.3, -3.3, -1.5}, solid{box: true, size: 2.6}},
	chest: segment{[3]float64{0.25, 2.6, 0.25}, solid{box: true, size: 2.1}},
	head:  segment{[3]float64{0.25, 2.1, 0.25}, solid{box: true, size: 1.6}},

	rightArmAt: [3]float64{0, 1, 1},
	leftArmAt:  [3]float64{2.1, 1, 1},

	leftEyeAt:  [3]float64{1.2, 1.1, 1.6},
	rightEyeAt: [3]float64{0.4, 1.1, 1.6},
	noseAt:     [3]float64{0.8, 0.7, 1.4},
}
