package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"scatterplot/internal/chart"
)

// cell is one terminal cell of the canvas.
type cell struct {
	r    rune
	fg   lipgloss.TerminalColor
	bold bool
}

// grid is a canvas of cells that overlays are drawn into before it is
// serialized, so colored marks, the legend and the tooltip never split
// each other's escape sequences.
type grid struct {
	w, h int
	c    [][]cell
}

func newGrid(w, h int) *grid {
	c := make([][]cell, h)
	for y := range c {
		c[y] = make([]cell, w)
		for x := range c[y] {
			c[y][x] = cell{r: ' '}
		}
	}
	return &grid{w: w, h: h, c: c}
}

func (g *grid) put(x, y int, r rune, fg lipgloss.TerminalColor, bold bool) {
	if x < 0 || y < 0 || x >= g.w || y >= g.h {
		return
	}
	g.c[y][x] = cell{r: r, fg: fg, bold: bold}
}

func (g *grid) text(x, y int, s string, fg lipgloss.TerminalColor, bold bool) {
	for i, r := range []rune(s) {
		g.put(x+i, y, r, fg, bold)
	}
}

// box draws a rounded box whose top-left corner is (x, y) around
// lines. Rows are given as runs so they can mix colors.
func (g *grid) box(x, y int, rows [][]run, border lipgloss.TerminalColor) {
	inner := 0
	for _, row := range rows {
		inner = max(inner, runsWidth(row))
	}
	w := inner + 4
	g.put(x, y, '╭', border, false)
	g.put(x+w-1, y, '╮', border, false)
	g.put(x, y+len(rows)+1, '╰', border, false)
	g.put(x+w-1, y+len(rows)+1, '╯', border, false)
	for i := 1; i < w-1; i++ {
		g.put(x+i, y, '─', border, false)
		g.put(x+i, y+len(rows)+1, '─', border, false)
	}
	for j, row := range rows {
		yy := y + 1 + j
		g.put(x, yy, '│', border, false)
		g.put(x+w-1, yy, '│', border, false)
		g.text(x+1, yy, strings.Repeat(" ", w-2), nil, false)
		xx := x + 2
		for _, r := range row {
			g.text(xx, yy, r.s, r.fg, r.bold)
			xx += len([]rune(r.s))
		}
	}
}

// boxSize returns the outer size of a box around rows.
func boxSize(rows [][]run) (int, int) {
	inner := 0
	for _, row := range rows {
		inner = max(inner, runsWidth(row))
	}
	return inner + 4, len(rows) + 2
}

type run struct {
	s    string
	fg   lipgloss.TerminalColor
	bold bool
}

func runsWidth(rs []run) int {
	n := 0
	for _, r := range rs {
		n += len([]rune(r.s))
	}
	return n
}

// String renders the grid, styling runs of equal color together.
func (g *grid) String() string {
	lines := make([]string, g.h)
	for y := 0; y < g.h; y++ {
		var b strings.Builder
		row := g.c[y]
		for x := 0; x < g.w; {
			start := x
			for x < g.w && row[x].fg == row[start].fg && row[x].bold == row[start].bold {
				x++
			}
			seg := make([]rune, 0, x-start)
			for _, c := range row[start:x] {
				seg = append(seg, c.r)
			}
			if row[start].fg == nil && !row[start].bold {
				b.WriteString(string(seg))
				continue
			}
			st := lipgloss.NewStyle().Bold(row[start].bold)
			if row[start].fg != nil {
				st = st.Foreground(row[start].fg)
			}
			b.WriteString(st.Render(string(seg)))
		}
		lines[y] = b.String()
	}
	return strings.Join(lines, "\n")
}

// renderCanvas draws the frame's marks on a w×h cell canvas with the
// legend and the hover tooltip on top.
func (m Model) renderCanvas(lo layout) string {
	w, h := lo.canvasW, lo.canvasH
	f := m.frame
	g := newGrid(w, h)

	// Faint grid dots where x and y ticks cross
	for _, xt := range f.XTicks {
		mx, _ := m.surfaceToMicro(xt.Pos, 0, lo)
		cx := int(math.Floor(mx / 2))
		for _, yt := range f.YTicks {
			_, my := m.surfaceToMicro(0, yt.Pos, lo)
			g.put(cx, int(math.Floor(my/4)), '·', gridFg, false)
		}
	}

	// Marks: the group transform places each centre, the radius is
	// already counter-scaled so R*K is the on-screen size.
	br := newBrailleBuf(w, h)
	sx, sy := m.microScale(lo)
	for i, mk := range f.Marks {
		x, y, r := mk.Screen(f.Transform)
		col := mk.Color
		if i == m.hoverMark {
			col = chart.Highlight(col)
		}
		br.fillEllipseMicro(x*sx, y*sy, r*sx, r*sy, col.Hex())
	}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			if r := br.glyph(x, y); r != 0 {
				g.put(x, y, r, lipgloss.Color(br.fg[y][x]), false)
			}
		}
	}

	if m.showLegend {
		rows := legendRows(f.Legend, sx, sy)
		bw, bh := boxSize(rows)
		g.box(w-bw-1, h-bh, rows, borderCol)
	}

	if m.hoverMark >= 0 && m.hoverMark < len(f.Marks) {
		mk := f.Marks[m.hoverMark]
		tip := chart.NewTooltip(mk.Record)
		lines := tip.Lines()
		rows := make([][]run, len(lines))
		rows[0] = []run{{s: lines[0], fg: lipgloss.Color(mk.Color.Hex()), bold: true}}
		for i, l := range lines[1:] {
			rows[i+1] = []run{{s: l, fg: baseFg}}
		}
		bw, bh := boxSize(rows)
		// next to the cursor, kept on the canvas
		tx := m.hoverCellX + 2
		if tx+bw > w {
			tx = m.hoverCellX - bw - 1
		}
		ty := clamp(m.hoverCellY-1, 0, max(0, h-bh))
		g.box(max(0, tx), ty, rows, tipFg)
	}
	return g.String()
}

// legendSwatch draws a reference circle of surface radius r, scaled
// to micro-pixels by (sx, sy) exactly like the marks.
func legendSwatch(r, sx, sy float64, col string) *brailleBuf {
	rx, ry := r*sx, r*sy
	b := newBrailleBuf(max(1, int(math.Ceil(rx))), max(1, int(math.Ceil(ry/2))))
	b.fillEllipseMicro(float64(b.w), float64(b.h*2), rx, ry, col)
	return b
}

// legendRows lays the legend out as box rows: a title, then each
// entry's swatch with its label beside the swatch's middle row.
func legendRows(entries []chart.LegendEntry, sx, sy float64) [][]run {
	rows := [][]run{{{s: "Total energy consumption", fg: baseDimFg}}}
	sw := make([]*brailleBuf, len(entries))
	gw := 0
	for i, e := range entries {
		sw[i] = legendSwatch(e.R, sx, sy, e.Color.Hex())
		gw = max(gw, sw[i].w)
	}
	for i, e := range entries {
		b := sw[i]
		c := lipgloss.Color(e.Color.Hex())
		off := (gw - b.w) / 2
		for y := 0; y < b.h; y++ {
			line := []rune(strings.Repeat(" ", gw))
			for x := 0; x < b.w; x++ {
				if g := b.glyph(x, y); g != 0 {
					line[off+x] = g
				}
			}
			row := []run{{s: string(line), fg: c}}
			if y == b.h/2 {
				row = append(row, run{s: " " + e.Label, fg: c})
			}
			rows = append(rows, row)
		}
	}
	return rows
}

// renderXAxis returns the tick label row above the canvas.
func (m Model) renderXAxis(lo layout) string {
	g := newGrid(lo.canvasW, 1)
	next := 0
	for _, t := range m.frame.XTicks {
		mx, _ := m.surfaceToMicro(t.Pos, 0, lo)
		cx := int(math.Floor(mx / 2))
		x := cx - len([]rune(t.Label))/2
		if x < next || x < 0 || x+len([]rune(t.Label)) > lo.canvasW {
			continue
		}
		g.text(x, 0, t.Label, baseDimFg, false)
		next = x + len([]rune(t.Label)) + 1
	}
	return strings.Repeat(" ", gutterWidth) + g.String()
}

// renderYAxis returns the gutter column left of the canvas.
func (m Model) renderYAxis(lo layout) string {
	rows := make([]string, lo.canvasH)
	for i := range rows {
		rows[i] = strings.Repeat(" ", gutterWidth)
	}
	for _, t := range m.frame.YTicks {
		_, my := m.surfaceToMicro(0, t.Pos, lo)
		cy := int(math.Floor(my / 4))
		if cy < 0 || cy >= lo.canvasH {
			continue
		}
		rows[cy] = dimStyle.Render(padLeft(truncate(t.Label, gutterWidth-2), gutterWidth-2)) + dimStyle.Render(" ┤")
	}
	return strings.Join(rows, "\n")
}
