package pinchzoom

import "errors"

// Errors returned for invalid input. Callers should treat them as
// programming errors in the host: the engine never coerces bad input.
var (
	// ErrInvalidSize is returned when a container or content dimension is
	// not a positive finite number.
	ErrInvalidSize = errors.New("pinchzoom: invalid size")

	// ErrInvalidScaleFactor is returned when a gesture sample carries a
	// scale factor that is not a positive finite number.
	ErrInvalidScaleFactor = errors.New("pinchzoom: invalid scale factor")

	// ErrInvalidFocalPoint is returned when a gesture sample carries a
	// focal point with a NaN or infinite coordinate.
	ErrInvalidFocalPoint = errors.New("pinchzoom: invalid focal point")

	// ErrInvalidOption is returned by NewViewport when an option value is
	// out of range.
	ErrInvalidOption = errors.New("pinchzoom: invalid option")
)
