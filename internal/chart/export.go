package chart

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// pxPerInch converts surface pixels to plot lengths.
const pxPerInch = 96

func px(v float64) vg.Length { return vg.Length(v) * vg.Inch / pxPerInch }

// Plot builds a gonum plot of f: the rescaled axis domains, every
// visible mark at its on-screen radius and the size legend.
func Plot(f Frame) (*plot.Plot, error) {
	p := plot.New()
	p.Title.Text = Title
	p.X.Label.Text = XLabel
	p.Y.Label.Text = YLabel
	p.X.Min, p.X.Max = ordered(f.X.Domain)
	p.Y.Min, p.Y.Max = ordered(f.Y.Domain)
	// y grows downward on screen
	p.Y.Scale = plot.InvertedScale{Normalizer: p.Y.Scale}
	p.Add(plotter.NewGrid())

	var xys plotter.XYs
	var visible []Mark
	for _, m := range f.Marks {
		x, y := f.X.Invert(f.Transform.ApplyX(m.CX)), f.Y.Invert(f.Transform.ApplyY(m.CY))
		if x < p.X.Min || x > p.X.Max || y < p.Y.Min || y > p.Y.Max {
			continue
		}
		xys = append(xys, plotter.XY{X: x, Y: y})
		visible = append(visible, m)
	}
	if len(xys) > 0 {
		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return nil, fmt.Errorf("scatter: %w", err)
		}
		sc.GlyphStyleFunc = func(i int) draw.GlyphStyle {
			m := visible[i]
			return draw.GlyphStyle{
				Color:  m.Color,
				Radius: px(m.R * f.Transform.K),
				Shape:  draw.CircleGlyph{},
			}
		}
		p.Add(sc)
	}
	for _, e := range f.Legend {
		p.Legend.Add(e.Label, legendThumb{draw.GlyphStyle{
			Color:  e.Color,
			Radius: px(e.R),
			Shape:  draw.RingGlyph{},
		}})
	}
	p.Legend.Top = true
	return p, nil
}

type legendThumb struct{ style draw.GlyphStyle }

func (l legendThumb) Thumbnail(c *draw.Canvas) {
	c.DrawGlyph(l.style, c.Center())
}

// WriteTo renders f in format (svg, png, pdf, ...) to w.
func WriteTo(w io.Writer, f Frame, format string) error {
	p, err := Plot(f)
	if err != nil {
		return err
	}
	wt, err := p.WriterTo(px(f.Surface.Width), px(f.Surface.Height), format)
	if err != nil {
		return fmt.Errorf("export %s: %w", format, err)
	}
	_, err = wt.WriteTo(w)
	return err
}

// Export saves f to path; the format follows the file extension.
func Export(path string, f Frame) error {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return errors.New("export: missing file extension")
	}
	p, err := Plot(f)
	if err != nil {
		return err
	}
	return p.Save(px(f.Surface.Width), px(f.Surface.Height), path)
}

func ordered(d [2]float64) (float64, float64) {
	if d[0] > d[1] {
		return d[1], d[0]
	}
	return d[0], d[1]
}
