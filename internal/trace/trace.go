// Package trace exports figure draw lists for inspection: an indented text
// listing and a YAML document.
package trace

import (
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/Faultbox/robotarm/internal/figure"
)

// Entry is one command in export form.
type Entry struct {
	Depth   int         `yaml:"depth"`
	Command string      `yaml:"command"`
	Origin  *[3]float32 `yaml:"origin,omitempty,flow"` // primitives only
}

// Controls mirrors figure.ControlInputs with YAML keys.
type Controls struct {
	PositionX   float64 `yaml:"position_x"`
	PositionY   float64 `yaml:"position_y"`
	PositionZ   float64 `yaml:"position_z"`
	Turn        float64 `yaml:"turn"`
	BodyVariant string  `yaml:"body_variant"`
}

// Offsets mirrors figure.JointOffsets with YAML keys.
type Offsets struct {
	LeftArm  float64 `yaml:"left_arm"`
	RightArm float64 `yaml:"right_arm"`
	Head     float64 `yaml:"head"`
}

// Frame is a complete exported frame.
type Frame struct {
	Frame      int      `yaml:"frame"`
	Controls   Controls `yaml:"controls"`
	Offsets    Offsets  `yaml:"offsets"`
	Primitives int      `yaml:"primitives"`
	Commands   []Entry  `yaml:"commands"`
}

// NewFrame builds the export form of a frame.
func NewFrame(n int, in figure.ControlInputs, off figure.JointOffsets, cmds []figure.Command) Frame {
	return Frame{
		Frame: n,
		Controls: Controls{
			PositionX:   in.PositionX,
			PositionY:   in.PositionY,
			PositionZ:   in.PositionZ,
			Turn:        in.Turn,
			BodyVariant: in.BodyVariant.String(),
		},
		Offsets:    Offsets{LeftArm: off.LeftArm, RightArm: off.RightArm, Head: off.Head},
		Primitives: len(figure.Primitives(cmds)),
		Commands:   Entries(cmds),
	}
}

// Entries converts a draw list, tracking scope depth. Push and pop
// commands are kept so the export can be replayed by eye.
func Entries(cmds []figure.Command) []Entry {
	out := make([]Entry, 0, len(cmds))
	depth := 0
	for _, c := range cmds {
		if c.Op == figure.OpPop {
			depth--
		}
		e := Entry{Depth: depth, Command: c.String()}
		if c.Op.IsPrimitive() {
			o := c.World.Origin()
			e.Origin = &[3]float32{round(o.X), round(o.Y), round(o.Z)}
		}
		out = append(out, e)
		if c.Op == figure.OpPush {
			depth++
		}
	}
	return out
}

// round trims float noise so exports are stable across platforms.
func round(v float32) float32 {
	const scale = 1e4
	r := float32(int64(v*scale+copysign(0.5, v))) / scale
	if r == 0 {
		return 0
	}
	return r
}

func copysign(a, b float32) float32 {
	if b < 0 {
		return -a
	}
	return a
}

// WriteText prints an indented listing, one command per line, with
// primitives annotated by where their origin lands.
func WriteText(w io.Writer, cmds []figure.Command) error {
	for _, e := range Entries(cmds) {
		line := strings.Repeat("  ", e.Depth) + e.Command
		if e.Origin != nil {
			line += fmt.Sprintf("  @ (%g, %g, %g)", e.Origin[0], e.Origin[1], e.Origin[2])
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// WriteYAML encodes a frame as YAML.
func WriteYAML(w io.Writer, f Frame) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(f); err != nil {
		return fmt.Errorf("encoding frame: %w", err)
	}
	return enc.Close()
}
