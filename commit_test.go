package pinchzoom

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func seqs(cs []Commit) []uint64 {
	var out []uint64
	for _, c := range cs {
		out = append(out, c.Seq)
	}
	return out
}

func TestCommitLog(t *testing.T) {
	l := newCommitLog(3)
	if got := l.entries(); len(got) != 0 {
		t.Fatalf("empty log has %d entries", len(got))
	}
	for i := uint64(1); i <= 5; i++ {
		l.add(Commit{Seq: i})
		want := []uint64{}
		for j := max(1, int(i)-2); j <= int(i); j++ {
			want = append(want, uint64(j))
		}
		if diff := cmp.Diff(want, seqs(l.entries())); diff != "" {
			t.Errorf("after %d adds (-want +got):\n%s", i, diff)
		}
	}
	l.reset()
	if got := l.entries(); len(got) != 0 {
		t.Errorf("reset log has %d entries", len(got))
	}
}

func TestCommitLogDisabled(t *testing.T) {
	l := newCommitLog(0)
	l.add(Commit{Seq: 1})
	l.reset()
	if got := l.entries(); got != nil {
		t.Errorf("disabled log entries = %v, want nil", got)
	}
}

func TestViewportHistoryKeepsNewest(t *testing.T) {
	vp := newReadyViewport(t, Sz(1000, 1000), Sz(100, 100), WithHistory(2))
	for range 3 {
		if _, err := vp.OnGestureUpdate(1.1, 500, 500); err != nil {
			t.Fatal(err)
		}
	}
	h := vp.History()
	if diff := cmp.Diff([]uint64{3, 4}, seqs(h)); diff != "" {
		t.Errorf("History() seqs (-want +got):\n%s", diff)
	}
	if h[0].After != h[1].Before {
		t.Errorf("history not chained: %+v then %+v", h[0].After, h[1].Before)
	}
}

func TestCauseString(t *testing.T) {
	if CauseFit.String() != "Fit" || CauseScale.String() != "Scale" {
		t.Errorf("Cause strings = %q, %q", CauseFit, CauseScale)
	}
	if got := Cause(9).String(); got != "Cause(9)" {
		t.Errorf("Cause(9).String() = %q", got)
	}
}
