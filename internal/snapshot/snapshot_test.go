package snapshot

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ftrvxmtrx/tga"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		name    string
		want    Format
		wantErr bool
	}{
		{"png", FormatPNG, false},
		{"PNG", FormatPNG, false},
		{"webp", FormatWebP, false},
		{"WebP", FormatWebP, false},
		{"tga", FormatTGA, false},
		{"jpeg", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseFormat(tt.name)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseFormat(%q) error = %v, wantErr %v", tt.name, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseFormat(%q) = %q, want %q", tt.name, got, tt.want)
			}
		})
	}
}

func solid(w, h int, c color.NRGBA) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetNRGBA(x, y, c)
		}
	}
	return img
}

func TestEncodePNGRoundTrip(t *testing.T) {
	src := solid(3, 2, color.NRGBA{200, 10, 10, 255})
	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatPNG); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := png.Decode(&buf)
	if err != nil {
		t.Fatalf("png.Decode: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Errorf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
}

func TestEncodeWebPHeader(t *testing.T) {
	var buf bytes.Buffer
	if err := Encode(&buf, solid(4, 4, color.NRGBA{0, 0, 255, 255}), FormatWebP); err != nil {
		t.Fatalf("Encode: %v", err)
	}
	b := buf.Bytes()
	if len(b) < 12 || string(b[0:4]) != "RIFF" || string(b[8:12]) != "WEBP" {
		t.Errorf("missing RIFF/WEBP header: % x", b[:min(len(b), 12)])
	}
}

func TestEncodeTGARoundTrip(t *testing.T) {
	src := solid(3, 2, color.NRGBA{10, 200, 30, 255})
	var buf bytes.Buffer
	if err := Encode(&buf, src, FormatTGA); err != nil {
		t.Fatalf("Encode: %v", err)
	}

	got, err := tga.Decode(&buf)
	if err != nil {
		t.Fatalf("tga.Decode: %v", err)
	}
	if got.Bounds() != src.Bounds() {
		t.Fatalf("bounds = %v, want %v", got.Bounds(), src.Bounds())
	}
	r, g, b, _ := got.At(1, 1).RGBA()
	if r>>8 != 10 || g>>8 != 200 || b>>8 != 30 {
		t.Errorf("pixel = (%d, %d, %d), want (10, 200, 30)", r>>8, g>>8, b>>8)
	}
}

func TestEncodeUnknownFormat(t *testing.T) {
	if err := Encode(&bytes.Buffer{}, solid(1, 1, color.NRGBA{}), Format("bmp")); err == nil {
		t.Error("expected error for unknown format")
	}
}

func TestWriterFilename(t *testing.T) {
	w := NewWriter("shots", "figure", FormatWebP)
	w.now = func() time.Time { return time.Date(2026, 1, 2, 3, 4, 5, 6e6, time.UTC) }

	want := filepath.Join("shots", "figure_2026-01-02_03-04-05.006.webp")
	if got := w.Filename(); got != want {
		t.Errorf("Filename() = %q, want %q", got, want)
	}
}

func TestWriteImageCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "snaps")
	w := NewWriter(dir, "figure", FormatPNG)

	path, err := w.WriteImage(solid(2, 2, color.NRGBA{1, 2, 3, 255}))
	if err != nil {
		t.Fatalf("WriteImage: %v", err)
	}
	if !strings.HasPrefix(path, dir) || filepath.Ext(path) != ".png" {
		t.Errorf("path = %q", path)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("snapshot not written: %v", err)
	}
}

func TestFlipRows(t *testing.T) {
	// Two rows, bottom row red, top row green in GL order.
	pixels := []byte{
		255, 0, 0, 255,
		0, 255, 0, 255,
	}
	img, err := FlipRows(pixels, 1, 2)
	if err != nil {
		t.Fatalf("FlipRows: %v", err)
	}
	if got := img.NRGBAAt(0, 0); got.G != 255 {
		t.Errorf("top pixel = %v, want green", got)
	}
	if got := img.NRGBAAt(0, 1); got.R != 255 {
		t.Errorf("bottom pixel = %v, want red", got)
	}
}

func TestFlipRowsSizeMismatch(t *testing.T) {
	if _, err := FlipRows(make([]byte, 7), 1, 2); err == nil {
		t.Error("expected size mismatch error")
	}
}

func TestDownsample(t *testing.T) {
	src := solid(8, 8, color.NRGBA{100, 150, 200, 255})
	got := Downsample(src, 4, 4)

	if got.Bounds().Dx() != 4 || got.Bounds().Dy() != 4 {
		t.Fatalf("bounds = %v", got.Bounds())
	}
	p := got.NRGBAAt(2, 2)
	if p.A != 255 || absDiff(p.R, 100) > 1 || absDiff(p.G, 150) > 1 || absDiff(p.B, 200) > 1 {
		t.Errorf("pixel = %v, want ~{100 150 200 255}", p)
	}
}

func TestDownsampleTransparentEdges(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for y := 0; y < 8; y++ {
		for x := 0; x < 4; x++ {
			src.SetNRGBA(x, y, color.NRGBA{255, 255, 255, 255})
		}
	}

	got := Downsample(src, 4, 4)
	// Partially covered pixels keep their color; only alpha drops.
	for x := 0; x < 4; x++ {
		p := got.NRGBAAt(x, 2)
		if p.A > 1 && p.R < 250 {
			t.Errorf("pixel %d = %v, darkened edge", x, p)
		}
	}
	if p := got.NRGBAAt(0, 2); p.A < 250 {
		t.Errorf("covered pixel = %v, want opaque", p)
	}
	if p := got.NRGBAAt(3, 2); p.A > 5 {
		t.Errorf("uncovered pixel = %v, want transparent", p)
	}
}

func TestDownsampleSmallerIsNoop(t *testing.T) {
	src := solid(2, 2, color.NRGBA{})
	if got := Downsample(src, 4, 4); got != src {
		t.Error("expected the same image back")
	}
}

func absDiff(a, b uint8) int {
	if a > b {
		return int(a - b)
	}
	return int(b - a)
}
