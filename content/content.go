// Package content discovers the intrinsic size of encoded images so hosts
// can hand it to a pinchzoom.Viewport without decoding pixels.
//
// Supported formats: PNG, JPEG, GIF, BMP, TIFF, WebP.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	_ "image/gif"  // register GIF
	_ "image/jpeg" // register JPEG
	_ "image/png"  // register PNG
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP
	_ "golang.org/x/image/tiff" // register TIFF
	_ "golang.org/x/image/webp" // register WebP

	"github.com/gogpu/pinchzoom"
)

// ErrEmptyData is returned when image data is empty.
var ErrEmptyData = errors.New("content: empty data")

// DecodeSize reads the image header from r and returns its intrinsic
// size and format name. Images with a zero dimension are rejected with
// pinchzoom.ErrInvalidSize.
func DecodeSize(r io.Reader) (pinchzoom.Size, string, error) {
	cfg, format, err := image.DecodeConfig(r)
	if err != nil {
		return pinchzoom.Size{}, "", fmt.Errorf("content: decode config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return pinchzoom.Size{}, format, fmt.Errorf("content: %s image %dx%d: %w",
			format, cfg.Width, cfg.Height, pinchzoom.ErrInvalidSize)
	}
	pinchzoom.Logger().Debug("content: decoded size",
		"format", format, "width", cfg.Width, "height", cfg.Height)
	return pinchzoom.Sz(float64(cfg.Width), float64(cfg.Height)), format, nil
}

// DecodeSizeFromBytes is DecodeSize for an in-memory image.
func DecodeSizeFromBytes(data []byte) (pinchzoom.Size, string, error) {
	if len(data) == 0 {
		return pinchzoom.Size{}, "", ErrEmptyData
	}
	return DecodeSize(bytes.NewReader(data))
}

// LoadSize reads the intrinsic size of the image file at path.
func LoadSize(path string) (pinchzoom.Size, string, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return pinchzoom.Size{}, "", fmt.Errorf("content: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return DecodeSize(f)
}

// Load decodes the image file at path in full. Hosts that paint the
// content offline use it together with the render package.
func Load(path string) (image.Image, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("content: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("content: decode: %w", err)
	}
	return img, nil
}

// SizeOf returns the intrinsic size of an already decoded image.
func SizeOf(img image.Image) pinchzoom.Size {
	b := img.Bounds()
	return pinchzoom.Sz(float64(b.Dx()), float64(b.Dy()))
}
