package scale

import (
	"fmt"

	mscale "github.com/aclements/go-moremath/scale"
)

// Linear maps a continuous domain onto a continuous range.
// Both intervals may be given in either order; the mapping is
// monotonic either way.
type Linear struct {
	Domain [2]float64
	Range  [2]float64
}

// NewLinear returns a scale from [d0, d1] to [r0, r1].
func NewLinear(d0, d1, r0, r1 float64) Linear {
	return Linear{Domain: [2]float64{d0, d1}, Range: [2]float64{r0, r1}}
}

func (s Linear) unit() mscale.Linear {
	return mscale.Linear{Min: s.Domain[0], Max: s.Domain[1]}
}

// Map maps domain value x into the range. Values outside the domain
// are extrapolated.
func (s Linear) Map(x float64) float64 {
	t := s.unit().Map(x)
	return s.Range[0] + t*(s.Range[1]-s.Range[0])
}

// Invert maps range value y back into the domain.
func (s Linear) Invert(y float64) float64 {
	t := (y - s.Range[0]) / (s.Range[1] - s.Range[0])
	return s.Domain[0] + t*(s.Domain[1]-s.Domain[0])
}

// WithDomain returns a copy of s with its domain replaced.
func (s Linear) WithDomain(d0, d1 float64) Linear {
	s.Domain = [2]float64{d0, d1}
	return s
}

// Ticks returns at most max major tick values within the domain.
func (s Linear) Ticks(max int) []float64 {
	if max < 1 {
		return nil
	}
	u := s.unit()
	if u.Min > u.Max {
		u.Min, u.Max = u.Max, u.Min
	}
	major, _ := u.Ticks(mscale.TickOptions{Max: max})
	return major
}

// TickLabel formats a tick value the way axis labels show it.
func TickLabel(v float64) string {
	if v == 0 {
		// avoid "-0"
		v = 0
	}
	return fmt.Sprintf("%.6g", v)
}

func (s Linear) String() string {
	return fmt.Sprintf("linear [%g,%g] => [%g,%g]", s.Domain[0], s.Domain[1], s.Range[0], s.Range[1])
}
