package scale

import "math"

// Interpolate returns the transform at fraction u in [0, 1] of the way
// from a to b. Each component moves monotonically; u outside [0, 1] is
// clamped, and u == 1 returns b exactly.
func Interpolate(a, b Transform, u float64) Transform {
	switch {
	case u <= 0 || math.IsNaN(u):
		return a
	case u >= 1:
		return b
	}
	lerp := func(p, q float64) float64 { return p + (q-p)*u }
	return Transform{X: lerp(a.X, b.X), Y: lerp(a.Y, b.Y), K: lerp(a.K, b.K)}
}

// EaseCubicInOut is the default easing of transitions: slow start,
// slow finish, symmetric around 0.5.
func EaseCubicInOut(u float64) float64 {
	switch {
	case u <= 0:
		return 0
	case u >= 1:
		return 1
	}
	u *= 2
	if u <= 1 {
		return u * u * u / 2
	}
	u -= 2
	return (u*u*u + 2) / 2
}
