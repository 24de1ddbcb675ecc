package pinchzoom

import "fmt"

// Default zoom limits, as multiples of the fit scale.
const (
	DefaultMidMultiplier = 2
	DefaultMaxMultiplier = 4
)

// ScaleBounds holds the zoom range derived from the fit scale.
// Mid is reserved for a double-tap zoom level and is not used by the
// gesture path.
type ScaleBounds struct {
	Init float64
	Mid  float64
	Max  float64
}

// NewScaleBounds returns the default bounds for a fit scale:
// Mid = 2*init and Max = 4*init.
func NewScaleBounds(init float64) ScaleBounds {
	return newScaleBoundsWith(init, DefaultMidMultiplier, DefaultMaxMultiplier)
}

func newScaleBoundsWith(init, midMul, maxMul float64) ScaleBounds {
	return ScaleBounds{
		Init: init,
		Mid:  init * midMul,
		Max:  init * maxMul,
	}
}

// Contains reports whether scale lies in [Init, Max].
func (b ScaleBounds) Contains(scale float64) bool {
	return scale >= b.Init && scale <= b.Max
}

// ClampResult describes what Clamp did with a requested factor.
type ClampResult uint8

const (
	// ClampNone means the requested factor was applied unchanged.
	ClampNone ClampResult = iota

	// ClampFloor means the factor was replaced to land exactly on Init.
	ClampFloor

	// ClampCeiling means the factor was replaced to land exactly on Max.
	ClampCeiling

	// ClampRejected means the sample was dropped: a zoom-out at or below
	// the floor, a zoom-in above the ceiling, or a factor of exactly 1.
	ClampRejected
)

// String returns the name of the clamp result.
func (r ClampResult) String() string {
	switch r {
	case ClampNone:
		return "None"
	case ClampFloor:
		return "Floor"
	case ClampCeiling:
		return "Ceiling"
	case ClampRejected:
		return "Rejected"
	default:
		return fmt.Sprintf("ClampResult(%d)", r)
	}
}

// Clamp returns the relative factor to apply to a transform whose current
// absolute scale is current, given a requested relative factor.
//
// Zoom-out is honored only while current > Init, so a zoom-out at the
// floor is dropped. Zoom-in is honored while current <= Max. When honored,
// a factor that would leave the range is replaced by the one that lands
// exactly on the crossed bound. A rejected sample returns 1.
func (b ScaleBounds) Clamp(current, factor float64) (float64, ClampResult) {
	zoomOut := factor < 1 && current > b.Init
	zoomIn := factor > 1 && current <= b.Max
	if !zoomOut && !zoomIn {
		return 1, ClampRejected
	}
	switch target := current * factor; {
	case target < b.Init:
		return b.Init / current, ClampFloor
	case target > b.Max:
		return b.Max / current, ClampCeiling
	default:
		return factor, ClampNone
	}
}
