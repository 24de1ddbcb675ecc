package pinchzoom

import (
	"fmt"
	"math"
)

// FitCase identifies which branch of the fit rule produced a scale.
type FitCase uint8

const (
	// FitEqualEdge covers content that matches the container exactly along
	// at least one axis. None of the strict comparisons apply, so the
	// scale falls back to min(cw/dw, ch/dh).
	FitEqualEdge FitCase = iota

	// FitWider is content wider but shorter than the container.
	// The scale is cw/dw.
	FitWider

	// FitTaller is content narrower but taller than the container.
	// The scale is ch/dh.
	FitTaller

	// FitLarger is content that exceeds the container on both axes.
	// The scale is min(cw/dw, ch/dh), shrinking it to be contained.
	FitLarger

	// FitSmaller is content smaller than the container on both axes.
	// The scale is min(cw/dw, ch/dh), enlarging it to fill.
	FitSmaller
)

// String returns the name of the fit case.
func (c FitCase) String() string {
	switch c {
	case FitEqualEdge:
		return "EqualEdge"
	case FitWider:
		return "Wider"
	case FitTaller:
		return "Taller"
	case FitLarger:
		return "Larger"
	case FitSmaller:
		return "Smaller"
	default:
		return fmt.Sprintf("FitCase(%d)", c)
	}
}

// Fit is the initial placement of content inside a container.
type Fit struct {
	Case FitCase

	// Scale is the fit scale, the floor of the zoom range.
	Scale float64

	// Offset places the unscaled content's top-left corner so that its
	// center coincides with the container center.
	Offset Point
}

// ComputeFit returns the initial scale and centering offset for content
// shown in container. Both sizes must be positive and finite.
func ComputeFit(container, content Size) (Fit, error) {
	if !container.valid() {
		return Fit{}, fmt.Errorf("%w: container %vx%v", ErrInvalidSize, container.Width, container.Height)
	}
	if !content.valid() {
		return Fit{}, fmt.Errorf("%w: content %vx%v", ErrInvalidSize, content.Width, content.Height)
	}

	cw, ch := container.Width, container.Height
	dw, dh := content.Width, content.Height
	minScale := math.Min(cw/dw, ch/dh)

	f := Fit{
		Offset: Pt(cw/2-dw/2, ch/2-dh/2),
	}
	switch {
	case dw > cw && dh < ch:
		f.Case, f.Scale = FitWider, cw/dw
	case dw < cw && dh > ch:
		f.Case, f.Scale = FitTaller, ch/dh
	case dw > cw && dh > ch:
		f.Case, f.Scale = FitLarger, minScale
	case cw > dw && ch > dh:
		f.Case, f.Scale = FitSmaller, minScale
	default:
		f.Case, f.Scale = FitEqualEdge, minScale
	}
	return f, nil
}

// Matrix returns the transform that realizes the fit in container.
// The centering translation is composed first; the scale is then applied
// about the container center, which is where the content center now sits.
func (f Fit) Matrix(container Size) Matrix {
	return Translate(f.Offset.X, f.Offset.Y).PostScale(f.Scale, container.Center())
}
