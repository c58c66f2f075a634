package snapshot

import (
	"image"

	"golang.org/x/image/draw"
)

// Downsample scales img down to width x height with CatmullRom filtering.
// x/image/draw filters in premultiplied space, so transparent edges keep their
// colour. Images already within the target size are returned as is.
func Downsample(img *image.NRGBA, width, height int) *image.NRGBA {
	b := img.Bounds()
	if b.Dx() <= width && b.Dy() <= height {
		return img
	}

	dst := image.NewNRGBA(image.Rect(0, 0, width, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), img, b, draw.Src, nil)
	return dst
}
