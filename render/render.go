// Package render paints content through a pinchzoom transform.
//
// It is a reference host renderer for offline use (snapshots, tests,
// the zoomreplay command). Interactive hosts usually hand the matrix to
// their own compositor instead.
package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/pinchzoom"
)

// Quality selects the resampling kernel.
type Quality uint8

const (
	// Nearest is nearest-neighbor sampling.
	Nearest Quality = iota

	// Bilinear is bilinear interpolation.
	Bilinear

	// CatmullRom is the Catmull-Rom cubic kernel. Slowest, sharpest.
	CatmullRom
)

// String returns the name of the quality level.
func (q Quality) String() string {
	switch q {
	case Nearest:
		return "Nearest"
	case Bilinear:
		return "Bilinear"
	case CatmullRom:
		return "CatmullRom"
	default:
		return fmt.Sprintf("Quality(%d)", q)
	}
}

func (q Quality) transformer() draw.Transformer {
	switch q {
	case Bilinear:
		return draw.BiLinear
	case CatmullRom:
		return draw.CatmullRom
	default:
		return draw.NearestNeighbor
	}
}

// Aff3 converts a pinchzoom matrix to the x/image affine form, mapping
// src coordinates (relative to src.Bounds().Min) to dst coordinates.
func Aff3(m pinchzoom.Matrix, srcMin image.Point) f64.Aff3 {
	// Shift so that src.Bounds().Min maps like the content origin.
	s := m.Multiply(pinchzoom.Translate(-float64(srcMin.X), -float64(srcMin.Y)))
	return f64.Aff3{
		s.A, s.B, s.C,
		s.D, s.E, s.F,
	}
}

// Draw paints src into dst through m, composited over dst.
func Draw(dst draw.Image, src image.Image, m pinchzoom.Matrix, q Quality) {
	q.transformer().Transform(dst, Aff3(m, src.Bounds().Min), src, src.Bounds(), draw.Over, nil)
}

// Viewport renders src into a new canvas the size of container, filled
// with background first.
func Viewport(src image.Image, container pinchzoom.Size, m pinchzoom.Matrix, background color.Color, q Quality) *image.RGBA {
	w := int(math.Ceil(container.Width))
	h := int(math.Ceil(container.Height))
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(background), image.Point{}, draw.Src)
	Draw(dst, src, m, q)
	return dst
}

// EncodePNG encodes img as PNG to w.
func EncodePNG(w io.Writer, img image.Image) error {
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("render: encode PNG: %w", err)
	}
	return nil
}

// SavePNG writes img as a PNG file at path.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("render: create file: %w", err)
	}

	if err := EncodePNG(f, img); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}
