package zoom

import (
	"time"

	"scatterplot/internal/scale"
)

// State is the gesture state of a Controller.
type State int

const (
	Idle State = iota
	Gesturing
	Animating
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Gesturing:
		return "gesturing"
	case Animating:
		return "animating"
	}
	return "unknown"
}

// DefaultResetDuration is how long the reset animation runs.
const DefaultResetDuration = 500 * time.Millisecond

// WheelEvent is a wheel gesture at surface point (X, Y).
type WheelEvent struct {
	X, Y   float64
	DeltaY float64
	Ctrl   bool
}

// PointerEvent is a pointer position in surface units.
type PointerEvent struct {
	X, Y float64
}

// Animation interpolates between two transforms over a fixed
// duration.
type Animation struct {
	From, To scale.Transform
	Start    time.Time
	Duration time.Duration
}

// At returns the animated transform at now. At or after Start+Duration
// it returns To exactly.
func (a Animation) At(now time.Time) scale.Transform {
	if a.Duration <= 0 {
		return a.To
	}
	u := float64(now.Sub(a.Start)) / float64(a.Duration)
	return scale.Interpolate(a.From, a.To, scale.EaseCubicInOut(u))
}

// Done reports whether the animation has finished at now.
func (a Animation) Done(now time.Time) bool {
	return a.Duration <= 0 || !now.Before(a.Start.Add(a.Duration))
}

// Controller owns the view transform and updates it from gestures.
// Each handler returns the current transform and whether it changed.
//
// While the reset animation runs, gesture events are dropped; the
// animation keeps exclusive ownership of the transform until it
// completes.
type Controller struct {
	Behavior      Behavior
	ResetDuration time.Duration

	t     scale.Transform
	state State

	// last pointer position while gesturing
	px, py float64
	anim   Animation
}

// NewController returns a controller at the identity transform.
func NewController(b Behavior) *Controller {
	return &Controller{Behavior: b, ResetDuration: DefaultResetDuration, t: scale.Identity}
}

func (c *Controller) Transform() scale.Transform { return c.t }
func (c *Controller) State() State               { return c.state }

// Wheel zooms around the event point.
func (c *Controller) Wheel(ev WheelEvent) (scale.Transform, bool) {
	if c.state == Animating || ev.DeltaY == 0 {
		return c.t, false
	}
	return c.set(c.Behavior.ScaleBy(c.t, ZoomFactor(ev.DeltaY, ev.Ctrl), ev.X, ev.Y))
}

// ZoomBy scales by factor f around the viewport centre.
func (c *Controller) ZoomBy(f float64) (scale.Transform, bool) {
	if c.state == Animating {
		return c.t, false
	}
	e := c.Behavior.Extent
	return c.set(c.Behavior.ScaleBy(c.t, f, (e.X0+e.X1)/2, (e.Y0+e.Y1)/2))
}

// PanBy translates by (dx, dy) surface units.
func (c *Controller) PanBy(dx, dy float64) (scale.Transform, bool) {
	if c.state == Animating {
		return c.t, false
	}
	return c.set(c.Behavior.TranslateBy(c.t, dx, dy))
}

// PointerDown starts a drag.
func (c *Controller) PointerDown(ev PointerEvent) {
	if c.state == Animating {
		return
	}
	c.state = Gesturing
	c.px, c.py = ev.X, ev.Y
}

// PointerMove pans by the delta since the previous pointer event of
// the current drag. Moves outside a drag are ignored.
func (c *Controller) PointerMove(ev PointerEvent) (scale.Transform, bool) {
	if c.state != Gesturing {
		return c.t, false
	}
	dx, dy := ev.X-c.px, ev.Y-c.py
	c.px, c.py = ev.X, ev.Y
	return c.set(c.Behavior.TranslateBy(c.t, dx, dy))
}

// PointerUp ends a drag.
func (c *Controller) PointerUp(ev PointerEvent) (scale.Transform, bool) {
	if c.state != Gesturing {
		return c.t, false
	}
	t, changed := c.PointerMove(ev)
	c.state = Idle
	return t, changed
}

// Reset starts animating the transform back to identity. It reports
// false if there is nothing to animate or an animation is already
// running.
func (c *Controller) Reset(now time.Time) bool {
	if c.state == Animating || c.t.IsIdentity() {
		return false
	}
	c.anim = Animation{From: c.t, To: scale.Identity, Start: now, Duration: c.ResetDuration}
	c.state = Animating
	if c.anim.Done(now) {
		c.finish()
	}
	return true
}

// Tick advances the reset animation to now. It reports whether the
// transform changed and whether more frames are needed.
func (c *Controller) Tick(now time.Time) (t scale.Transform, changed, more bool) {
	if c.state != Animating {
		return c.t, false, false
	}
	if c.anim.Done(now) {
		prev := c.t
		c.finish()
		return c.t, c.t != prev, false
	}
	_, changed = c.set(c.anim.At(now))
	return c.t, changed, true
}

func (c *Controller) finish() {
	c.t = c.anim.To
	c.state = Idle
	c.anim = Animation{}
}

func (c *Controller) set(t scale.Transform) (scale.Transform, bool) {
	if t == c.t {
		return c.t, false
	}
	c.t = t
	return c.t, true
}
