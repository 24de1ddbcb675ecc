package pinchzoom

import "fmt"

// Cause identifies what produced a commit.
type Cause uint8

const (
	// CauseFit is the one-time placement when content becomes ready.
	CauseFit Cause = iota

	// CauseScale is a pinch update.
	CauseScale
)

// String returns the name of the cause.
func (c Cause) String() string {
	switch c {
	case CauseFit:
		return "Fit"
	case CauseScale:
		return "Scale"
	default:
		return fmt.Sprintf("Cause(%d)", c)
	}
}

// Commit records one replacement of the viewport transform.
type Commit struct {
	// Seq numbers commits from 1 in the order they were applied.
	Seq    uint64
	Cause  Cause
	Before Matrix
	After  Matrix

	// Clamp is how the scale policy treated the sample. Always ClampNone
	// for CauseFit.
	Clamp ClampResult

	// Correction is the edge-guard translation folded into After.
	Correction Point
}

// commitLog is a fixed-capacity ring of the most recent commits.
type commitLog struct {
	buf  []Commit
	next int
	full bool
}

func newCommitLog(n int) *commitLog {
	if n <= 0 {
		return nil
	}
	return &commitLog{buf: make([]Commit, n)}
}

func (l *commitLog) add(c Commit) {
	if l == nil {
		return
	}
	l.buf[l.next] = c
	l.next++
	if l.next == len(l.buf) {
		l.next = 0
		l.full = true
	}
}

// entries returns the retained commits, oldest first.
func (l *commitLog) entries() []Commit {
	if l == nil {
		return nil
	}
	if !l.full {
		return append([]Commit(nil), l.buf[:l.next]...)
	}
	out := make([]Commit, 0, len(l.buf))
	out = append(out, l.buf[l.next:]...)
	return append(out, l.buf[:l.next]...)
}

func (l *commitLog) reset() {
	if l == nil {
		return
	}
	clear(l.buf)
	l.next = 0
	l.full = false
}
