package chart

import (
	"bytes"
	"math"
	"path/filepath"
	"strings"
	"testing"

	"scatterplot/internal/data"
	"scatterplot/internal/scale"
	"scatterplot/internal/zoom"
)

var recA = data.Record{Country: "A", GDP: 5, Population: 100, ECC: 50, EC: 20}

func records() []data.Record {
	return []data.Record{
		recA,
		{Country: "B", GDP: 14.96, Population: 310.38, ECC: 317, EC: 98.16},
		{Country: "C", GDP: 0.5, Population: 10, ECC: 400, EC: 2},
	}
}

func near(a, b, tol float64) bool { return math.Abs(a-b) <= tol }

func TestBaseScales(t *testing.T) {
	x, y := BaseScales(Surface{Width: 800, Height: 500})
	if x.Domain != [2]float64{-1, 16} || x.Range != [2]float64{-1, 801} {
		t.Errorf("x = %v", x)
	}
	if y.Domain != [2]float64{-1, 501} || y.Range != [2]float64{-1, 501} {
		t.Errorf("y = %v", y)
	}
}

func TestScenario(t *testing.T) {
	c := New([]data.Record{recA}, Surface{Width: 800, Height: 500})
	f := c.Frame(scale.Identity)
	m := f.Marks[0]
	if !near(m.CX, c.BaseX.Map(5), 1e-12) {
		t.Errorf("cx = %v, want %v", m.CX, c.BaseX.Map(5))
	}
	r1 := c.BaseX.Map(20) / 100
	if !near(m.R, r1, 1e-12) {
		t.Errorf("r = %v, want %v", m.R, r1)
	}
	sx0, sy0, _ := m.Screen(f.Transform)

	b := zoom.NewBehavior(800, 500)
	t2 := b.ScaleTo(scale.Identity, 2, sx0, sy0)
	if t2.K != 2 {
		t.Fatalf("k = %v", t2.K)
	}
	m2 := c.Frame(t2).Marks[0]
	sx1, sy1, _ := m2.Screen(t2)
	if !near(sx0, sx1, 1) || !near(sy0, sy1, 1) {
		t.Errorf("mark moved from (%v,%v) to (%v,%v)", sx0, sy0, sx1, sy1)
	}
	if !near(m2.R, r1/2, 1e-12) {
		t.Errorf("r at k=2 = %v, want %v", m2.R, r1/2)
	}
}

func TestAttrsScaleInverseK(t *testing.T) {
	x, y := BaseScales(DefaultSurface)
	for _, r := range records() {
		base := MarkAttributes(r, x, y, scale.Identity)
		for _, k := range []float64{1, 1.5, 2, 7.3, 40} {
			tr := scale.Transform{X: -13 * k, Y: 4 * k, K: k}
			a := MarkAttributes(r, x, y, tr)
			if !near(a.R, base.R/k, 1e-12) || !near(a.StrokeWidth, 1/k, 1e-12) {
				t.Errorf("%s k=%v: r=%v sw=%v", r.Country, k, a.R, a.StrokeWidth)
			}
			if a.CX != base.CX || a.CY != base.CY {
				t.Errorf("%s k=%v: centre changed to (%v,%v)", r.Country, k, a.CX, a.CY)
			}
		}
	}
}

func TestIdentityFrameMatchesBase(t *testing.T) {
	c := New(records(), DefaultSurface)
	f := c.Frame(scale.Identity)
	if f.X != c.BaseX || f.Y != c.BaseY {
		t.Errorf("identity frame axes %v %v differ from base", f.X, f.Y)
	}
	for i, m := range f.Marks {
		r := c.Records[i]
		x, y, rad := m.Screen(f.Transform)
		if x != c.BaseX.Map(r.GDP) || y != c.BaseY.Map(r.ECC) || rad != c.BaseX.Map(r.EC)/100 || m.StrokeWidth != 1 {
			t.Errorf("mark %d = (%v,%v,%v)", i, x, y, rad)
		}
	}
}

func TestFrameTicks(t *testing.T) {
	c := New(records(), DefaultSurface)
	f := c.Frame(scale.Transform{X: -400, Y: -250, K: 2})
	if len(f.XTicks) == 0 || len(f.YTicks) == 0 {
		t.Fatal("no ticks")
	}
	if len(f.XTicks) > c.XTickCount() || len(f.YTicks) > c.YTickCount() {
		t.Errorf("too many ticks: %d %d", len(f.XTicks), len(f.YTicks))
	}
	for _, tk := range f.XTicks {
		if !near(f.X.Invert(tk.Pos), tk.Value, 1e-9) {
			t.Errorf("x tick %v at %v", tk.Value, tk.Pos)
		}
	}
}

func TestMarkAt(t *testing.T) {
	c := New([]data.Record{
		{Country: "under", GDP: 5, ECC: 100, EC: 50},
		{Country: "over", GDP: 5, ECC: 100, EC: 10},
	}, DefaultSurface)
	f := c.Frame(scale.Identity)
	x, y, _ := f.Marks[0].Screen(f.Transform)
	if got := f.MarkAt(x, y, 0); got != 1 {
		t.Errorf("MarkAt centre = %d, want topmost 1", got)
	}
	_, _, r0 := f.Marks[0].Screen(f.Transform)
	if got := f.MarkAt(x+r0-0.5, y, 0); got != 0 {
		t.Errorf("MarkAt rim = %d, want 0", got)
	}
	if got := f.MarkAt(-500, -500, 1); got != -1 {
		t.Errorf("MarkAt empty = %d", got)
	}
}

func TestTooltip(t *testing.T) {
	tt := NewTooltip(data.Record{Country: "China", GDP: 5.93, Population: 1340.91, ECC: 73, EC: 98.75})
	want := Tooltip{
		Country:    "China",
		Population: "1340.91 Million",
		GDP:        "$5.93 Trillion",
		ECC:        "73 Million BTU's",
		EC:         "98.75 Trillion BTU's",
	}
	if tt != want {
		t.Errorf("tooltip = %+v, want %+v", tt, want)
	}
	if l := tt.Lines(); len(l) != 5 || l[0] != "China" {
		t.Errorf("Lines = %q", l)
	}

	us := data.Record{Country: "United States", GDP: 14.96, Population: 310.38, ECC: 317, EC: 98.16,
		Text: data.RecordText{GDP: "14.96", Population: "310.38", ECC: "317.0", EC: "98.16"}}
	if got := NewTooltip(us).ECC; got != "317.0 Million BTU's" {
		t.Errorf("ECC = %q, want source spelling kept", got)
	}
}

func TestLegend(t *testing.T) {
	x, _ := BaseScales(DefaultSurface)
	l := Legend(x)
	if len(l) != 3 {
		t.Fatalf("len = %d", len(l))
	}
	for i, v := range []float64{100, 50, 10} {
		if l[i].Value != v || !near(l[i].R, x.Map(v)/100, 1e-12) {
			t.Errorf("entry %d = %+v", i, l[i])
		}
	}
	if l[0].Label != "100 Trillion BTU's" || l[0].Color.Hex() != "#4287f5" {
		t.Errorf("entry 0 = %+v", l[0])
	}
}

func TestPaletteOrdinal(t *testing.T) {
	p := NewPalette(Paired)
	a := p.Color("A")
	b := p.Color("B")
	if a.Hex() != Paired[0] || b.Hex() != Paired[1] {
		t.Errorf("A=%s B=%s", a.Hex(), b.Hex())
	}
	if p.Color("A") != a {
		t.Error("A changed color")
	}
	for i := 0; i < 10; i++ {
		p.Color(string(rune('C' + i)))
	}
	if got := p.Color("wrap"); got.Hex() != Paired[0] {
		t.Errorf("13th key = %s, want %s", got.Hex(), Paired[0])
	}
	h := Highlight(a)
	if h.Hex() == a.Hex() {
		t.Error("Highlight did not change color")
	}
}

func TestWriteSVG(t *testing.T) {
	c := New(records(), DefaultSurface)
	var buf bytes.Buffer
	if err := WriteTo(&buf, c.Frame(scale.Transform{X: -100, Y: -50, K: 1.5}), "svg"); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "<svg") {
		t.Errorf("output is not svg: %.80q", buf.String())
	}
}

func TestExportExtension(t *testing.T) {
	c := New(records(), DefaultSurface)
	dir := t.TempDir()
	if err := Export(filepath.Join(dir, "view"), c.Frame(scale.Identity)); err == nil {
		t.Error("expected error for missing extension")
	}
	if err := Export(filepath.Join(dir, "view.svg"), c.Frame(scale.Identity)); err != nil {
		t.Error(err)
	}
}
