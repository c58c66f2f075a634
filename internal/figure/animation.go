package figure

// Joint oscillation limits in degrees.
const (
	LeftArmMin  = -60.0
	LeftArmMax  = 0.0
	RightArmMin = 0.0
	RightArmMax = 60.0

	ArmStep  = 1.1 // degrees per animated frame
	HeadStep = 2.5 // degrees per animated frame

	fullTurn = 360.0
)

// Rest angles the arm offsets are added to.
const (
	LeftArmRest  = 20.0
	RightArmRest = 160.0
	HeadRest     = 0.0
)

// JointOffsets are the animated deviations from each joint's rest angle.
type JointOffsets struct {
	LeftArm  float64
	RightArm float64
	Head     float64
}

// JointAngles are the effective joint rotations in degrees.
type JointAngles struct {
	LeftArm  float64
	RightArm float64
	Head     float64
}

// Angles adds the offsets to the rest angles.
func (o JointOffsets) Angles() JointAngles {
	return JointAngles{
		LeftArm:  LeftArmRest + o.LeftArm,
		RightArm: RightArmRest + o.RightArm,
		Head:     HeadRest + o.Head,
	}
}

// AnimationState owns the idle animation phase. Arms swing as triangle
// waves between their limits; the head spins continuously.
//
// The zero value is the initial pose: all offsets 0, the left arm about to
// swing toward LeftArmMin and the right arm toward RightArmMax.
type AnimationState struct {
	offsets  JointOffsets
	leftDir  float64
	rightDir float64
}

// NewAnimationState returns the initial pose.
func NewAnimationState() *AnimationState {
	return &AnimationState{}
}

// Offsets returns the current joint offsets.
func (s *AnimationState) Offsets() JointOffsets {
	return s.offsets
}

// Angles returns the current effective joint angles.
func (s *AnimationState) Angles() JointAngles {
	return s.offsets.Angles()
}

// Reset returns to the initial pose.
func (s *AnimationState) Reset() {
	*s = AnimationState{}
}

// Advance moves every joint by one animation step. Each arm reverses when
// it sits on a limit before the step is applied, and the step is clamped so
// an offset lands exactly on a limit instead of passing it.
func (s *AnimationState) Advance() {
	s.offsets.LeftArm, s.leftDir = swing(s.offsets.LeftArm, s.leftDir, LeftArmMin, LeftArmMax)
	s.offsets.RightArm, s.rightDir = swing(s.offsets.RightArm, s.rightDir, RightArmMin, RightArmMax)

	s.offsets.Head += HeadStep
	if s.offsets.Head >= fullTurn {
		s.offsets.Head -= fullTurn
	}
}

// swing advances a bounded offset by one ArmStep and returns the new offset
// and direction.
func swing(offset, dir, lo, hi float64) (float64, float64) {
	if offset <= lo {
		dir = 1
	} else if offset >= hi {
		dir = -1
	}

	offset += dir * ArmStep
	if offset < lo {
		offset = lo
	} else if offset > hi {
		offset = hi
	}
	return offset, dir
}
