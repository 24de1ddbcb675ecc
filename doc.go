// Package pinchzoom provides the transform engine behind a pinch-zoomable
// image viewport.
//
// # Overview
//
// Given a container (the visible viewport) and content of arbitrary
// intrinsic size, pinchzoom computes an initial fit, then lets the host
// feed pinch samples that zoom around a focal point. The scale is kept
// within a range derived from the fit, and after every update an edge
// guard slides the content so that no gap opens at an edge it covers,
// while content smaller than the container stays centered.
//
// # Quick Start
//
//	vp, err := pinchzoom.NewViewport()
//	if err != nil {
//	    return err
//	}
//	if err := vp.OnContentReady(pinchzoom.Sz(1080, 1920), pinchzoom.Sz(4000, 3000)); err != nil {
//	    return err
//	}
//
//	vp.OnGestureBegin()
//	m, err := vp.OnGestureUpdate(1.1, 540, 960)
//	vp.OnGestureEnd()
//
// # Architecture
//
//   - Matrix, Point, Size, Rect: value-type 2D affine geometry
//   - ComputeFit: container and content size to fit scale and offset
//   - ScaleBounds: zoom range and the clamp applied to each sample
//   - EdgeGuard: post-scale translation correction
//   - Viewport: the state machine tying them together
//
// Host-side adapters live in sub-packages: content reads intrinsic sizes
// from encoded images and render paints content through a viewport
// transform.
//
// # Coordinate System
//
// Container coordinates, with the origin at the top-left corner:
//   - X increases right
//   - Y increases down
//
// # Logging
//
// pinchzoom is silent by default. Use SetLogger to route its diagnostics
// to a [log/slog] handler.
package pinchzoom
