package pinchzoom

import "testing"

func TestNewScaleBounds(t *testing.T) {
	for _, init := range []float64{0.25, 0.5, 1, 10} {
		b := NewScaleBounds(init)
		if b.Init != init || b.Mid != 2*init || b.Max != 4*init {
			t.Errorf("NewScaleBounds(%v) = %+v", init, b)
		}
		if !(b.Init <= b.Mid && b.Mid <= b.Max) {
			t.Errorf("NewScaleBounds(%v) not ordered: %+v", init, b)
		}
	}
}

func TestClamp(t *testing.T) {
	b := NewScaleBounds(0.5) // [0.5, 2]

	tests := []struct {
		name    string
		current float64
		factor  float64
		want    float64
		result  ClampResult
	}{
		{"zoom in interior", 1, 1.5, 1.5, ClampNone},
		{"zoom out interior", 1, 0.75, 0.75, ClampNone},
		{"zoom in from floor", 0.5, 2, 2, ClampNone},
		{"zoom out at floor", 0.5, 0.5, 1, ClampRejected},
		{"zoom in at ceiling", 2, 3, 1, ClampCeiling},
		{"zoom out at ceiling", 2, 0.5, 0.5, ClampNone},
		{"overshoot ceiling", 1, 10, 2, ClampCeiling},
		{"overshoot floor", 1, 0.1, 0.5, ClampFloor},
		{"unit factor", 1, 1, 1, ClampRejected},
		{"zoom in above ceiling", 2.5, 1.1, 1, ClampRejected},
		{"zoom out below floor", 0.4, 0.9, 1, ClampRejected},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, res := b.Clamp(tt.current, tt.factor)
			if got != tt.want || res != tt.result {
				t.Errorf("Clamp(%v, %v) = (%v, %v), want (%v, %v)",
					tt.current, tt.factor, got, res, tt.want, tt.result)
			}
		})
	}
}

func TestClampNeverOvershoots(t *testing.T) {
	b := NewScaleBounds(0.3)
	factors := []float64{0.01, 0.5, 0.9, 0.999, 1, 1.001, 1.1, 2, 7, 1000}
	for _, cur := range []float64{b.Init, 0.5, b.Mid, 1, b.Max} {
		for _, f := range factors {
			eff, res := b.Clamp(cur, f)
			if res == ClampRejected {
				continue
			}
			if next := cur * eff; next < b.Init*(1-1e-12) || next > b.Max*(1+1e-12) {
				t.Errorf("Clamp(%v, %v) = %v gives scale %v outside [%v, %v]",
					cur, f, eff, next, b.Init, b.Max)
			}
		}
	}
}

func TestContains(t *testing.T) {
	b := NewScaleBounds(1)
	for _, tt := range []struct {
		s    float64
		want bool
	}{{0.99, false}, {1, true}, {2.5, true}, {4, true}, {4.01, false}} {
		if got := b.Contains(tt.s); got != tt.want {
			t.Errorf("Contains(%v) = %v, want %v", tt.s, got, tt.want)
		}
	}
}

func TestClampResultString(t *testing.T) {
	if got := ClampCeiling.String(); got != "Ceiling" {
		t.Errorf("ClampCeiling.String() = %q", got)
	}
	if got := ClampResult(42).String(); got != "ClampResult(42)" {
		t.Errorf("ClampResult(42).String() = %q", got)
	}
}
