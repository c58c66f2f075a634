package figure

import "github.com/Faultbox/robotarm/pkg/math"

// Options tune figure composition.
type Options struct {
	// AnimateBoxyArms lets the boxy body swing its arms like the round one.
	// By default boxy arms hold their rest angles.
	AnimateBoxyArms bool
}

// Composer turns control values and joint offsets into a frame's draw list.
// A Composer reuses its buffer between frames and is not safe for
// concurrent use.
type Composer struct {
	opts Options
	rec  *Recorder
}

// NewComposer returns a composer with the given options.
func NewComposer(opts Options) *Composer {
	return &Composer{opts: opts, rec: NewRecorder()}
}

// Compose builds the draw list for one frame. Inputs are used as given;
// range checking belongs to whoever produced them.
func (c *Composer) Compose(in ControlInputs, offsets JointOffsets) []Command {
	c.rec.Reset()
	c.ComposeInto(c.rec, in, offsets)
	return c.rec.Commands()
}

// ComposeInto records the frame into r.
func (c *Composer) ComposeInto(r *Recorder, in ControlInputs, offsets JointOffsets) {
	r.Ambient(AmbientGray)

	r.Diffuse(Red)
	r.Scope(func() {
		r.TranslateBy(groundAt)
		r.Box(groundWidth, groundHeight, groundDepth)
	})

	r.Diffuse(White)
	r.Scope(func() {
		r.Translate(in.PositionX, in.PositionY, in.PositionZ)
		r.Rotate(in.Turn, math.AxisY)

		layout := &roundBody
		if in.BodyVariant != VariantRound {
			layout = &boxyBody
		}
		c.body(r, layout, in.Turn, offsets)
	})
}

// body draws torso > chest > {right arm, left arm, head > face}.
func (c *Composer) body(r *Recorder, b *bodyLayout, turn float64, offsets JointOffsets) {
	angles := JointOffsets{}.Angles()
	if b.animatedArms || c.opts.AnimateBoxyArms {
		angles = offsets.Angles()
	}

	r.Scope(func() {
		r.TranslateBy(b.torso.at)
		b.torso.solid.draw(r)

		r.Scope(func() {
			r.TranslateBy(b.chest.at)
			b.chest.solid.draw(r)

			arm(r, b.rightArmAt, angles.RightArm)
			arm(r, b.leftArmAt, angles.LeftArm)

			r.Scope(func() {
				r.TranslateBy(b.head.at)
				if b.headFollowsTurn {
					r.Rotate(turn, math.AxisY)
					r.Rotate(offsets.Angles().Head, math.AxisY)
				}
				b.head.solid.draw(r)
				face(r, b)
			})
		})
	})
}

// arm draws one limb with its hand. Both sides share this sub-tree and
// differ only in mount point and swing angle.
func arm(r *Recorder, at [3]float64, swing float64) {
	r.Scope(func() {
		r.Diffuse(LimbBrown)

		r.TranslateBy(at)
		r.Rotate(armMount, math.AxisY)
		r.Rotate(swing, math.AxisX)
		r.Cylinder(armLength, armRadius, armRadius)

		r.Diffuse(White)
		r.Scope(func() {
			r.TranslateBy(handAt)
			r.Sphere(handRadius)
		})
	})
}

func face(r *Recorder, b *bodyLayout) {
	r.Diffuse(Black)
	r.Scope(func() {
		r.TranslateBy(b.leftEyeAt)
		r.Sphere(eyeRadius)
	})
	r.Scope(func() {
		r.TranslateBy(b.rightEyeAt)
		r.Sphere(eyeRadius)
	})

	r.Diffuse(Red)
	r.Scope(func() {
		r.TranslateBy(b.noseAt)
		r.Cylinder(noseLength, noseBaseRadius, noseTipRadius)
	})
}
