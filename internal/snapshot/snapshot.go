// Package snapshot writes rendered frames of the figure to image files.
package snapshot

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/HugoSmits86/nativewebp"
	"github.com/ftrvxmtrx/tga"
)

// Format is an image file format.
type Format string

// Supported formats.
const (
	FormatPNG  Format = "png"
	FormatWebP Format = "webp"
	FormatTGA  Format = "tga"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(name string) (Format, error) {
	switch f := Format(strings.ToLower(name)); f {
	case FormatPNG, FormatWebP, FormatTGA:
		return f, nil
	}
	return "", fmt.Errorf("unknown snapshot format %q (want png, webp or tga)", name)
}

// Ext returns the file extension including the dot.
func (f Format) Ext() string {
	return "." + string(f)
}

// Encode writes img to out in the given format.
func Encode(out io.Writer, img image.Image, f Format) error {
	switch f {
	case FormatPNG:
		if err := png.Encode(out, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
	case FormatWebP:
		if err := nativewebp.Encode(out, img, nil); err != nil {
			return fmt.Errorf("encoding WebP: %w", err)
		}
	case FormatTGA:
		if err := tga.Encode(out, img); err != nil {
			return fmt.Errorf("encoding TGA: %w", err)
		}
	default:
		return fmt.Errorf("unknown snapshot format %q", string(f))
	}
	return nil
}

// Writer saves snapshots as timestamped files.
type Writer struct {
	outputDir string
	prefix    string
	format    Format
	now       func() time.Time
}

// NewWriter creates a writer for files named prefix_<timestamp>.<format>
// in outputDir.
func NewWriter(outputDir, prefix string, format Format) *Writer {
	return &Writer{
		outputDir: outputDir,
		prefix:    prefix,
		format:    format,
		now:       time.Now,
	}
}

// Filename generates a snapshot filename without saving.
func (w *Writer) Filename() string {
	timestamp := w.now().Format("2006-01-02_15-04-05.000")
	filename := fmt.Sprintf("%s_%s%s", w.prefix, timestamp, w.format.Ext())
	if w.outputDir != "" {
		filename = filepath.Join(w.outputDir, filename)
	}
	return filename
}

// WriteImage saves img and returns the file path.
func (w *Writer) WriteImage(img image.Image) (string, error) {
	return w.WriteImageTo(w.Filename(), img)
}

// WriteImageTo saves img to an explicit path in the writer's format.
func (w *Writer) WriteImageTo(filename string, img image.Image) (string, error) {
	if dir := filepath.Dir(filename); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return "", fmt.Errorf("creating output dir: %w", err)
		}
	}

	file, err := os.Create(filename)
	if err != nil {
		return "", fmt.Errorf("creating file: %w", err)
	}
	if err := Encode(file, img, w.format); err != nil {
		file.Close()
		return "", err
	}
	if err := file.Close(); err != nil {
		return "", fmt.Errorf("closing file: %w", err)
	}
	return filename, nil
}

// WritePixels saves raw RGBA pixels read back from OpenGL, whose origin is
// the bottom-left corner.
func (w *Writer) WritePixels(pixels []byte, width, height int) (string, error) {
	img, err := FlipRows(pixels, width, height)
	if err != nil {
		return "", err
	}
	return w.WriteImage(img)
}

// FlipRows copies bottom-up RGBA rows into a top-down image.
func FlipRows(pixels []byte, width, height int) (*image.NRGBA, error) {
	if len(pixels) != width*height*4 {
		return nil, fmt.Errorf("pixel data size mismatch: expected %d, got %d", width*height*4, len(pixels))
	}

	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	rowSize := width * 4
	for y := 0; y < height; y++ {
		srcOffset := (height - 1 - y) * rowSize
		dstOffset := y * img.Stride
		copy(img.Pix[dstOffset:dstOffset+rowSize], pixels[srcOffset:srcOffset+rowSize])
	}
	return img, nil
}
