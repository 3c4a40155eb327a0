// Package zoom turns pointer and wheel gestures into view transforms.
//
// Behavior holds the geometric constraints (scale extent, translate
// extent and viewport) and the pure transform math. Controller wraps a
// Behavior with the gesture state machine and the reset animation.
package zoom

import (
	"math"

	"scatterplot/internal/scale"
)

// Rect is an axis-aligned rectangle [[X0, Y0], [X1, Y1]].
type Rect struct {
	X0, Y0, X1, Y1 float64
}

// Behavior describes the allowed zoom range and pan region for a
// viewport.
type Behavior struct {
	// MinK and MaxK bound the scale factor.
	MinK, MaxK float64
	// Extent is the viewport in surface units.
	Extent Rect
	// TranslateExtent bounds the region the viewport may show.
	TranslateExtent Rect
}

// NewBehavior returns the behavior used for a width×height surface:
// scale extent [1, 40], translate extent
// [[-100, -100], [width+90, height+100]].
func NewBehavior(width, height float64) Behavior {
	return Behavior{
		MinK:            1,
		MaxK:            40,
		Extent:          Rect{0, 0, width, height},
		TranslateExtent: Rect{-100, -100, width + 90, height + 100},
	}
}

// WheelDelta converts a wheel deltaY (pixels, positive = scroll back)
// into a log2 zoom step. ctrl multiplies the step by ten.
func WheelDelta(deltaY float64, ctrl bool) float64 {
	d := -deltaY * 0.002
	if ctrl {
		d *= 10
	}
	return d
}

// ZoomFactor is the multiplicative scale change for a wheel deltaY.
func ZoomFactor(deltaY float64, ctrl bool) float64 {
	return math.Pow(2, WheelDelta(deltaY, ctrl))
}

// ClampK bounds k to the scale extent.
func (b Behavior) ClampK(k float64) float64 {
	return math.Max(b.MinK, math.Min(b.MaxK, k))
}

// ScaleTo returns t rescaled to factor k (clamped) such that the
// surface point (px, py) shows the same untransformed point before
// and after, then constrained to the translate extent.
func (b Behavior) ScaleTo(t scale.Transform, k, px, py float64) scale.Transform {
	k = b.ClampK(k)
	if k == t.K {
		return b.Constrain(t)
	}
	ux, uy := t.Invert(px, py)
	return b.Constrain(scale.Transform{X: px - ux*k, Y: py - uy*k, K: k})
}

// ScaleBy multiplies the scale factor of t by f around (px, py).
func (b Behavior) ScaleBy(t scale.Transform, f, px, py float64) scale.Transform {
	return b.ScaleTo(t, t.K*f, px, py)
}

// TranslateBy pans t by (dx, dy) surface units and constrains it.
func (b Behavior) TranslateBy(t scale.Transform, dx, dy float64) scale.Transform {
	t.X += dx
	t.Y += dy
	return b.Constrain(t)
}

// Constrain shifts t so the visible window stays inside the translate
// extent. When the window is larger than the extent along an axis it
// is centred on the extent instead.
func (b Behavior) Constrain(t scale.Transform) scale.Transform {
	e, te := b.Extent, b.TranslateExtent
	dx0 := t.InvertX(e.X0) - te.X0
	dx1 := t.InvertX(e.X1) - te.X1
	dy0 := t.InvertY(e.Y0) - te.Y0
	dy1 := t.InvertY(e.Y1) - te.Y1
	return t.Translate(settle(dx0, dx1), settle(dy0, dy1))
}

func settle(d0, d1 float64) float64 {
	if d1 > d0 {
		return (d0 + d1) / 2
	}
	if v := math.Min(0, d0); v != 0 {
		return v
	}
	return math.Max(0, d1)
}
