package raster

import (
	"image"
	"image/color"

	"github.com/Faultbox/robotarm/internal/engine/lighting"
	"github.com/Faultbox/robotarm/internal/engine/primitive"
	"github.com/Faultbox/robotarm/internal/figure"
	"github.com/Faultbox/robotarm/pkg/math"
)

// Options configures an offline render of a draw list.
type Options struct {
	Width, Height int
	ViewProj      math.Mat4
	Detail        primitive.Detail
	Sun           lighting.Sun
	Background    color.NRGBA
}

// Render rasterizes a draw list into a new image.
func Render(cmds []figure.Command, o Options) *image.NRGBA {
	fb := NewFrameBuffer(o.Width, o.Height)
	fb.Clear(o.Background)

	c := NewCanvas(fb, o.ViewProj, primitive.NewCache(o.Detail), o.Sun)
	figure.Replay(cmds, c)
	return fb.Image()
}
