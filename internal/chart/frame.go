// Package chart derives everything drawn on screen from the loaded
// records, the base scales and a view transform.
//
// A Frame is a pure function of those three inputs. Nothing in it is
// cached between transforms, so axes and marks always agree on the
// transform they were built from.
package chart

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"scatterplot/internal/data"
	"scatterplot/internal/scale"
)

// Surface is the logical drawing area in surface pixels.
type Surface struct {
	Width, Height float64
}

// DefaultSurface matches the size the chart was laid out for.
var DefaultSurface = Surface{Width: 800, Height: 500}

// BaseScales returns the fixed scales for s. They are chosen from the
// expected value ranges, not the data extent: GDP in [-1, 16] spans
// the width and per-capita consumption maps one to one onto the
// height. Both ranges overflow by one pixel so edge dots are not cut.
func BaseScales(s Surface) (x, y scale.Linear) {
	x = scale.NewLinear(-1, 16, -1, s.Width+1)
	y = scale.NewLinear(-1, s.Height+1, -1, s.Height+1)
	return x, y
}

// Attrs are the per-mark values derived from a record. CX and CY are
// untransformed; the view transform is applied to the whole mark
// group when drawing. R and StrokeWidth are divided by k so that
// group scaling leaves their on-screen size fixed.
type Attrs struct {
	CX, CY      float64
	R           float64
	StrokeWidth float64
}

// MarkAttributes computes the attributes of r under transform t. The
// radius always comes from the base x scale applied to the EC field.
func MarkAttributes(r data.Record, x, y scale.Linear, t scale.Transform) Attrs {
	return Attrs{
		CX:          x.Map(r.GDP),
		CY:          y.Map(r.ECC),
		R:           radius(x, r.EC) / t.K,
		StrokeWidth: 1 / t.K,
	}
}

func radius(x scale.Linear, v float64) float64 { return x.Map(v) / 100 }

// Mark is one drawn circle.
type Mark struct {
	Index  int
	Record data.Record
	Attrs
	Color colorful.Color
}

// Screen returns the on-screen centre and radius of m once the group
// transform is applied.
func (m Mark) Screen(t scale.Transform) (x, y, r float64) {
	x, y = t.Apply(m.CX, m.CY)
	return x, y, m.R * t.K
}

// Tick is one axis tick: its domain value, its position on the
// surface and its label.
type Tick struct {
	Value float64
	Pos   float64
	Label string
}

// Frame is everything needed to draw one view.
type Frame struct {
	Surface   Surface
	Transform scale.Transform
	// X and Y are the base scales rescaled by Transform.
	X, Y   scale.Linear
	XTicks []Tick
	YTicks []Tick
	Marks  []Mark
	Legend []LegendEntry
}

// Chart holds the read-only inputs every frame is derived from.
type Chart struct {
	Surface Surface
	Records []data.Record
	BaseX   scale.Linear
	BaseY   scale.Linear
	Palette *Palette
}

// New builds a chart over records on surface s.
func New(records []data.Record, s Surface) *Chart {
	x, y := BaseScales(s)
	p := NewPalette(Paired)
	for _, r := range records {
		p.Color(r.Country)
	}
	return &Chart{Surface: s, Records: records, BaseX: x, BaseY: y, Palette: p}
}

// XTickCount and YTickCount are the requested axis tick counts.
func (c *Chart) XTickCount() int {
	return int((c.Surface.Width + 2) / (c.Surface.Height + 2) * 10)
}

func (c *Chart) YTickCount() int { return 10 }

// Frame derives the view under t.
func (c *Chart) Frame(t scale.Transform) Frame {
	f := Frame{
		Surface:   c.Surface,
		Transform: t,
		X:         t.RescaleX(c.BaseX),
		Y:         t.RescaleY(c.BaseY),
		Legend:    Legend(c.BaseX),
	}
	f.XTicks = ticks(f.X, c.XTickCount())
	f.YTicks = ticks(f.Y, c.YTickCount())
	f.Marks = make([]Mark, len(c.Records))
	for i, r := range c.Records {
		f.Marks[i] = Mark{
			Index:  i,
			Record: r,
			Attrs:  MarkAttributes(r, c.BaseX, c.BaseY, t),
			Color:  c.Palette.Color(r.Country),
		}
	}
	return f
}

func ticks(s scale.Linear, n int) []Tick {
	vs := s.Ticks(n)
	out := make([]Tick, len(vs))
	for i, v := range vs {
		out[i] = Tick{Value: v, Pos: s.Map(v), Label: scale.TickLabel(v)}
	}
	return out
}

// MarkAt returns the index of the topmost mark whose on-screen circle
// contains surface point (px, py), widened by slop. Later marks are
// drawn over earlier ones, so they win ties. It returns -1 if no mark
// is hit.
func (f Frame) MarkAt(px, py, slop float64) int {
	for i := len(f.Marks) - 1; i >= 0; i-- {
		x, y, r := f.Marks[i].Screen(f.Transform)
		if math.Hypot(px-x, py-y) <= r+slop {
			return i
		}
	}
	return -1
}
