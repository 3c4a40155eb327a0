package scale

import "fmt"

// Transform is a 2D view transform: a uniform scale K followed by a
// translation (X, Y). A point p maps to (K*p.x + X, K*p.y + Y).
type Transform struct {
	X, Y float64
	K    float64
}

// Identity is the transform that leaves every point in place.
var Identity = Transform{K: 1}

// Apply maps a point through t.
func (t Transform) Apply(x, y float64) (float64, float64) {
	return t.ApplyX(x), t.ApplyY(y)
}

func (t Transform) ApplyX(x float64) float64 { return x*t.K + t.X }
func (t Transform) ApplyY(y float64) float64 { return y*t.K + t.Y }

// Invert maps a screen point back to the untransformed space.
func (t Transform) Invert(x, y float64) (float64, float64) {
	return t.InvertX(x), t.InvertY(y)
}

func (t Transform) InvertX(x float64) float64 { return (x - t.X) / t.K }
func (t Transform) InvertY(y float64) float64 { return (y - t.Y) / t.K }

// Translate returns t translated by (x, y) in untransformed units,
// i.e. by (K*x, K*y) on screen.
func (t Transform) Translate(x, y float64) Transform {
	if x == 0 && y == 0 {
		return t
	}
	return Transform{X: t.X + t.K*x, Y: t.Y + t.K*y, K: t.K}
}

// Compose returns the transform equivalent to applying inner first
// and then t.
func (t Transform) Compose(inner Transform) Transform {
	return Transform{
		X: t.K*inner.X + t.X,
		Y: t.K*inner.Y + t.Y,
		K: t.K * inner.K,
	}
}

// RescaleX returns a copy of s whose domain is what the transformed
// view shows along x: range value v maps to s.Invert((v-X)/K).
func (t Transform) RescaleX(s Linear) Linear {
	return s.WithDomain(s.Invert(t.InvertX(s.Range[0])), s.Invert(t.InvertX(s.Range[1])))
}

// RescaleY is RescaleX for the vertical axis.
func (t Transform) RescaleY(s Linear) Linear {
	return s.WithDomain(s.Invert(t.InvertY(s.Range[0])), s.Invert(t.InvertY(s.Range[1])))
}

func (t Transform) IsIdentity() bool { return t == Identity }

func (t Transform) String() string {
	return fmt.Sprintf("translate(%.2f,%.2f) scale(%.3f)", t.X, t.Y, t.K)
}
