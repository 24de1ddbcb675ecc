package pinchzoom

import "fmt"

// ThresholdMode selects the comparison used on the vertical axis to decide
// between gap removal and centering when the scaled content matches the
// container height exactly.
type ThresholdMode uint8

const (
	// ThresholdAsymmetric removes horizontal gaps when the content is at
	// least as wide as the container, but removes vertical gaps only when
	// it is strictly taller. Content exactly as tall as the container is
	// centered vertically.
	ThresholdAsymmetric ThresholdMode = iota

	// ThresholdUnified uses the "at least as large" comparison on both
	// axes.
	ThresholdUnified
)

// String returns the name of the threshold mode.
func (m ThresholdMode) String() string {
	switch m {
	case ThresholdAsymmetric:
		return "Asymmetric"
	case ThresholdUnified:
		return "Unified"
	default:
		return fmt.Sprintf("ThresholdMode(%d)", m)
	}
}

// EdgeGuard returns the translation that keeps content mapped by m
// anchored in container. On an axis where the content covers the
// container, a gap at either edge is closed by sliding the content
// toward it. On an axis where the content is smaller than the container,
// the content is centered. The axes are corrected independently.
func EdgeGuard(m Matrix, content, container Size, mode ThresholdMode) Point {
	r := m.MapRect(content.Rect())
	return Point{
		X: guardAxis(r.MinX, r.MaxX, container.Width, r.Width() >= container.Width),
		Y: guardAxis(r.MinY, r.MaxY, container.Height, coversHeight(r.Height(), container.Height, mode)),
	}
}

func coversHeight(h, limit float64, mode ThresholdMode) bool {
	if mode == ThresholdUnified {
		return h >= limit
	}
	return h > limit
}

// guardAxis computes the correction along one axis for content spanning
// [lo, hi] in a container of the given extent.
func guardAxis(lo, hi, extent float64, covers bool) float64 {
	if !covers {
		return extent/2 - hi + (hi-lo)/2
	}
	gapLo, gapHi := lo > 0, hi < extent
	switch {
	case gapLo && gapHi:
		// Content at least as large as the container cannot leave a gap
		// on both sides.
		panic(fmt.Sprintf("pinchzoom: content [%v, %v] covers extent %v but leaves gaps on both edges", lo, hi, extent))
	case gapLo:
		return -lo
	case gapHi:
		return extent - hi
	}
	return 0
}
