package pinchzoom

import (
	"fmt"
	"math"
)

// Option configures a Viewport during creation.
//
// Example:
//
//	vp, err := pinchzoom.NewViewport(
//	    pinchzoom.WithZoomLimits(2, 8),
//	    pinchzoom.WithHistory(64),
//	)
type Option func(*viewportOptions)

// viewportOptions holds optional configuration for Viewport creation.
type viewportOptions struct {
	midMul    float64
	maxMul    float64
	threshold ThresholdMode
	history   int
	onCommit  func(Commit)
}

// defaultOptions returns the default viewport options.
func defaultOptions() viewportOptions {
	return viewportOptions{
		midMul:    DefaultMidMultiplier,
		maxMul:    DefaultMaxMultiplier,
		threshold: ThresholdAsymmetric,
	}
}

func (o viewportOptions) validate() error {
	if !(o.midMul >= 1) || math.IsInf(o.midMul, 0) {
		return fmt.Errorf("%w: mid multiplier %v must be >= 1", ErrInvalidOption, o.midMul)
	}
	if !(o.maxMul >= o.midMul) || math.IsInf(o.maxMul, 0) {
		return fmt.Errorf("%w: max multiplier %v must be >= mid multiplier %v", ErrInvalidOption, o.maxMul, o.midMul)
	}
	if o.threshold > ThresholdUnified {
		return fmt.Errorf("%w: threshold mode %v", ErrInvalidOption, o.threshold)
	}
	if o.history < 0 {
		return fmt.Errorf("%w: history length %d", ErrInvalidOption, o.history)
	}
	return nil
}

// WithZoomLimits sets the mid and max zoom levels as multiples of the fit
// scale. The defaults are 2 and 4. Both must be finite, with
// 1 <= midMul <= maxMul.
func WithZoomLimits(midMul, maxMul float64) Option {
	return func(o *viewportOptions) {
		o.midMul = midMul
		o.maxMul = maxMul
	}
}

// WithThresholdMode selects the vertical gap/centering comparison used by
// the edge guard. The default is ThresholdAsymmetric.
func WithThresholdMode(mode ThresholdMode) Option {
	return func(o *viewportOptions) {
		o.threshold = mode
	}
}

// WithHistory keeps the last n commits, retrievable with
// Viewport.History. Zero disables the log.
func WithHistory(n int) Option {
	return func(o *viewportOptions) {
		o.history = n
	}
}

// WithCommitHook registers fn to be called synchronously after every
// committed transform, including the initial fit.
func WithCommitHook(fn func(Commit)) Option {
	return func(o *viewportOptions) {
		o.onCommit = fn
	}
}
