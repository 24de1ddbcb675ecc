package main

import (
	"fmt"
	"io"

	"golang.org/x/text/message"

	"github.com/gogpu/pinchzoom"
)

// replay initializes vp and feeds it the script steps in order.
func replay(vp *pinchzoom.Viewport, container, size pinchzoom.Size, steps []step) error {
	if err := vp.OnContentReady(container, size); err != nil {
		return err
	}
	for _, s := range steps {
		switch s.kind {
		case opBegin:
			vp.OnGestureBegin()
		case opEnd:
			vp.OnGestureEnd()
		case opScale:
			if _, err := vp.OnGestureUpdate(s.factor, s.fx, s.fy); err != nil {
				return fmt.Errorf("line %d: %w", s.line, err)
			}
		}
	}
	return nil
}

func printCommit(w io.Writer, p *message.Printer, c pinchzoom.Commit) {
	tx, ty := c.After.Translation()
	p.Fprintf(w, "#%d %-5s scale=%.4f translate=(%.2f, %.2f) clamp=%v correction=(%.2f, %.2f)\n",
		c.Seq, c.Cause, c.After.ScaleFactor(), tx, ty, c.Clamp, c.Correction.X, c.Correction.Y)
}

func printSummary(w io.Writer, p *message.Printer, vp *pinchzoom.Viewport) {
	f, b := vp.Fit(), vp.Bounds()
	r := vp.ContentRect()
	p.Fprintf(w, "fit: case=%v init=%.4f mid=%.4f max=%.4f\n", f.Case, b.Init, b.Mid, b.Max)
	p.Fprintf(w, "content rect: (%.2f, %.2f)-(%.2f, %.2f) size %.2f x %.2f\n",
		r.MinX, r.MinY, r.MaxX, r.MaxY, r.Width(), r.Height())
}
