package scale

import (
	"math"
	"testing"
)

const tol = 1e-9

func near(a, b float64) bool { return math.Abs(a-b) <= tol*math.Max(1, math.Abs(b)) }

func baseX() Linear { return NewLinear(-1, 16, -1, 801) }
func baseY() Linear { return NewLinear(-1, 501, -1, 501) }

func TestLinearMapInvert(t *testing.T) {
	s := baseX()
	for _, x := range []float64{-1, 0, 5, 7.25, 16, 40} {
		y := s.Map(x)
		if got := s.Invert(y); !near(got, x) {
			t.Errorf("Invert(Map(%v)) = %v", x, got)
		}
	}
	if got := s.Map(-1); !near(got, -1) {
		t.Errorf("Map(-1) = %v, want -1", got)
	}
	if got := s.Map(16); !near(got, 801) {
		t.Errorf("Map(16) = %v, want 801", got)
	}
}

func TestLinearTicks(t *testing.T) {
	s := baseX()
	ticks := s.Ticks(10)
	if len(ticks) == 0 || len(ticks) > 10 {
		t.Fatalf("Ticks(10) returned %d ticks: %v", len(ticks), ticks)
	}
	for i, v := range ticks {
		if v < -1 || v > 16 {
			t.Errorf("tick %v outside domain", v)
		}
		if i > 0 && v <= ticks[i-1] {
			t.Errorf("ticks not increasing: %v", ticks)
		}
	}
	if got := s.Ticks(0); got != nil {
		t.Errorf("Ticks(0) = %v, want nil", got)
	}
}

var transforms = []Transform{
	Identity,
	{X: 10, Y: -20, K: 1},
	{X: -300, Y: -150, K: 2},
	{X: -12345.5, Y: -8000.25, K: 40},
	{X: -42, Y: 17, K: 3.7},
}

func TestRescaleInvert(t *testing.T) {
	bx, by := baseX(), baseY()
	for _, tr := range transforms {
		rx, ry := tr.RescaleX(bx), tr.RescaleY(by)
		for _, v := range []float64{-1, 0, 123.4, 400, 801} {
			if got, want := rx.Invert(v), bx.Invert((v-tr.X)/tr.K); !near(got, want) {
				t.Errorf("%v: RescaleX.Invert(%v) = %v, want %v", tr, v, got, want)
			}
			if got, want := ry.Invert(v), by.Invert((v-tr.Y)/tr.K); !near(got, want) {
				t.Errorf("%v: RescaleY.Invert(%v) = %v, want %v", tr, v, got, want)
			}
		}
		if rx.Range != bx.Range {
			t.Errorf("%v: rescale changed range to %v", tr, rx.Range)
		}
	}
}

func TestRescaleIdentity(t *testing.T) {
	bx := baseX()
	if got := Identity.RescaleX(bx); got != bx {
		t.Errorf("Identity.RescaleX = %v, want %v", got, bx)
	}
	by := baseY()
	if got := Identity.RescaleY(by); got != by {
		t.Errorf("Identity.RescaleY = %v, want %v", got, by)
	}
}

func TestRescaleComposition(t *testing.T) {
	bx, by := baseX(), baseY()
	for _, t1 := range transforms {
		for _, t2 := range transforms {
			c := t2.Compose(t1)
			stepX := t2.RescaleX(t1.RescaleX(bx))
			oneX := c.RescaleX(bx)
			stepY := t2.RescaleY(t1.RescaleY(by))
			oneY := c.RescaleY(by)
			for _, v := range []float64{-1, 250, 801} {
				if a, b := stepX.Invert(v), oneX.Invert(v); !near(a, b) {
					t.Errorf("%v then %v: x %v != %v", t1, t2, a, b)
				}
				if a, b := stepY.Invert(v), oneY.Invert(v); !near(a, b) {
					t.Errorf("%v then %v: y %v != %v", t1, t2, a, b)
				}
			}
			px, py := t2.Apply(t1.Apply(3, 4))
			qx, qy := c.Apply(3, 4)
			if !near(px, qx) || !near(py, qy) {
				t.Errorf("Compose(%v, %v) apply mismatch", t2, t1)
			}
		}
	}
}

func TestTransformAlgebra(t *testing.T) {
	tr := Transform{X: 5, Y: -7, K: 2}
	x, y := tr.Invert(tr.Apply(11, 13))
	if !near(x, 11) || !near(y, 13) {
		t.Errorf("Invert(Apply) = %v,%v", x, y)
	}
	if got := tr.Translate(1, 2); got != (Transform{X: 7, Y: -3, K: 2}) {
		t.Errorf("Translate = %v", got)
	}
	if !Identity.IsIdentity() || tr.IsIdentity() {
		t.Error("IsIdentity mismatch")
	}
}

func TestInterpolate(t *testing.T) {
	a := Transform{X: -400, Y: 120, K: 40}
	b := Identity
	if got := Interpolate(a, b, 1); got != b {
		t.Errorf("Interpolate(1) = %v, want %v", got, b)
	}
	if got := Interpolate(a, b, 0); got != a {
		t.Errorf("Interpolate(0) = %v, want %v", got, a)
	}
	prev := a
	for i := 1; i <= 100; i++ {
		u := EaseCubicInOut(float64(i) / 100)
		cur := Interpolate(a, b, u)
		if math.IsNaN(cur.X) || math.IsNaN(cur.Y) || math.IsNaN(cur.K) {
			t.Fatalf("NaN at step %d", i)
		}
		if cur.X < prev.X || cur.Y > prev.Y || cur.K > prev.K {
			t.Errorf("step %d not monotonic: %v after %v", i, cur, prev)
		}
		prev = cur
	}
}

func TestEaseCubicInOut(t *testing.T) {
	for _, tc := range []struct{ in, want float64 }{
		{-1, 0}, {0, 0}, {0.5, 0.5}, {1, 1}, {2, 1},
	} {
		if got := EaseCubicInOut(tc.in); !near(got, tc.want) {
			t.Errorf("EaseCubicInOut(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
	if a, b := EaseCubicInOut(0.25), EaseCubicInOut(0.75); !near(a+b, 1) {
		t.Errorf("not symmetric: %v + %v", a, b)
	}
}
