package pinchzoom

import (
	"fmt"
	"math"
)

// State is the lifecycle state of a Viewport.
type State uint8

const (
	// StateUninitialized means the container or content size is not yet
	// known. Gesture updates are ignored.
	StateUninitialized State = iota

	// StateIdle means the fit has been applied and no gesture is active.
	StateIdle

	// StateScaling means a pinch gesture is in progress.
	StateScaling
)

// String returns the name of the state.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateIdle:
		return "Idle"
	case StateScaling:
		return "Scaling"
	default:
		return fmt.Sprintf("State(%d)", s)
	}
}

// Viewport is the zoom engine for one piece of content shown in one
// container. It owns the transform; hosts read it with CurrentTransform
// and change it only through the gesture methods.
//
// A Viewport is not safe for concurrent use. Hosts deliver layout and
// gesture events serially, in arrival order.
type Viewport struct {
	opts viewportOptions

	state     State
	container Size
	content   Size
	fit       Fit
	bounds    ScaleBounds
	m         Matrix

	seq uint64
	log *commitLog
}

// NewViewport creates an uninitialized viewport.
// It returns ErrInvalidOption if an option value is out of range.
func NewViewport(opts ...Option) (*Viewport, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := o.validate(); err != nil {
		return nil, err
	}
	return &Viewport{
		opts: o,
		m:    Identity(),
		log:  newCommitLog(o.history),
	}, nil
}

// OnContentReady computes the fit for content shown in container and
// applies it. It runs once: after the first successful call, further
// calls are no-ops until Reset. Invalid sizes return ErrInvalidSize and
// leave the viewport uninitialized.
func (v *Viewport) OnContentReady(container, content Size) error {
	if v.state != StateUninitialized {
		return nil
	}
	f, err := ComputeFit(container, content)
	if err != nil {
		Logger().Warn("pinchzoom: content rejected", "err", err)
		return err
	}

	v.container = container
	v.content = content
	v.fit = f
	v.bounds = newScaleBoundsWith(f.Scale, v.opts.midMul, v.opts.maxMul)
	v.state = StateIdle

	Logger().Info("pinchzoom: fit",
		"container", container,
		"content", content,
		"case", f.Case,
		"scale", f.Scale,
		"max", v.bounds.Max)

	v.commit(CauseFit, f.Matrix(container), ClampNone, Point{})
	return nil
}

// OnGestureBegin marks the start of a pinch gesture.
// It has no effect before the content is ready.
func (v *Viewport) OnGestureBegin() {
	if v.state == StateIdle {
		v.state = StateScaling
	}
}

// OnGestureUpdate applies one pinch sample: a scale factor relative to
// the previous sample and the focal point, in container coordinates, that
// must stay visually fixed. It returns the committed transform.
//
// The factor is clamped so the absolute scale stays within Bounds, then
// the edge guard removes gaps or recenters the content. Samples that
// arrive before the content is ready, or that would push the scale
// further past a saturated bound, leave the transform unchanged.
// An update while idle implicitly begins a gesture.
func (v *Viewport) OnGestureUpdate(factor, focalX, focalY float64) (Matrix, error) {
	if !positiveFinite(factor) {
		err := fmt.Errorf("%w: %v", ErrInvalidScaleFactor, factor)
		Logger().Warn("pinchzoom: gesture rejected", "err", err)
		return v.m, err
	}
	if !finite(focalX) || !finite(focalY) {
		err := fmt.Errorf("%w: (%v, %v)", ErrInvalidFocalPoint, focalX, focalY)
		Logger().Warn("pinchzoom: gesture rejected", "err", err)
		return v.m, err
	}

	log := Logger()
	if v.state == StateUninitialized {
		log.Debug("pinchzoom: gesture ignored before content ready", "factor", factor)
		return v.m, nil
	}
	v.state = StateScaling

	current := v.m.ScaleFactor()
	eff, res := v.bounds.Clamp(current, factor)
	if res == ClampRejected {
		log.Debug("pinchzoom: gesture saturated", "factor", factor, "scale", current)
		return v.m, nil
	}

	focal := Pt(focalX, focalY)
	next := v.m.PostScale(eff, focal)
	switch res {
	case ClampFloor:
		next = next.withScale(v.bounds.Init, focal)
	case ClampCeiling:
		next = next.withScale(v.bounds.Max, focal)
	}

	d := EdgeGuard(next, v.content, v.container, v.opts.threshold)
	next = next.PostTranslate(d.X, d.Y)

	log.Debug("pinchzoom: gesture",
		"factor", factor,
		"effective", eff,
		"clamp", res,
		"scale", next.ScaleFactor(),
		"dx", d.X,
		"dy", d.Y)

	v.commit(CauseScale, next, res, d)
	return v.m, nil
}

// OnGestureEnd marks the end of a pinch gesture.
func (v *Viewport) OnGestureEnd() {
	if v.state == StateScaling {
		v.state = StateIdle
	}
}

// Reset discards the content and returns the viewport to the
// uninitialized state with an identity transform. Options and the commit
// hook are kept; the history is cleared.
func (v *Viewport) Reset() {
	v.state = StateUninitialized
	v.container = Size{}
	v.content = Size{}
	v.fit = Fit{}
	v.bounds = ScaleBounds{}
	v.m = Identity()
	v.seq = 0
	v.log.reset()
}

// CurrentTransform returns the committed transform.
func (v *Viewport) CurrentTransform() Matrix {
	return v.m
}

// State returns the lifecycle state.
func (v *Viewport) State() State {
	return v.state
}

// Ready reports whether the fit has been applied.
func (v *Viewport) Ready() bool {
	return v.state != StateUninitialized
}

// Bounds returns the zoom range. It is the zero value before the content
// is ready.
func (v *Viewport) Bounds() ScaleBounds {
	return v.bounds
}

// Fit returns the fit computed when the content became ready.
func (v *Viewport) Fit() Fit {
	return v.fit
}

// Container returns the container size.
func (v *Viewport) Container() Size {
	return v.container
}

// Content returns the content's intrinsic size.
func (v *Viewport) Content() Size {
	return v.content
}

// ContentRect returns where the content currently sits in container
// coordinates.
func (v *Viewport) ContentRect() Rect {
	return v.m.MapRect(v.content.Rect())
}

// History returns the retained commits, oldest first. It is nil unless
// the viewport was created WithHistory.
func (v *Viewport) History() []Commit {
	return v.log.entries()
}

func (v *Viewport) commit(cause Cause, next Matrix, res ClampResult, d Point) {
	v.seq++
	c := Commit{
		Seq:        v.seq,
		Cause:      cause,
		Before:     v.m,
		After:      next,
		Clamp:      res,
		Correction: d,
	}
	v.m = next
	v.log.add(c)
	if v.opts.onCommit != nil {
		v.opts.onCommit(c)
	}
}

func finite(v float64) bool {
	return !math.IsInf(v, 0) && !math.IsNaN(v)
}
