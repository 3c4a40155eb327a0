package tui

import "math"

// brailleBuf is a 2x4 micro-pixel grid per terminal cell. Each cell
// remembers the color of the last pixel drawn into it.
type brailleBuf struct {
	w, h int        // in cells
	m    [][]uint8  // per-cell 8-bit mask
	fg   [][]string // per-cell color
}

func newBrailleBuf(w, h int) *brailleBuf {
	m := make([][]uint8, h)
	fg := make([][]string, h)
	for i := range m {
		m[i] = make([]uint8, w)
		fg[i] = make([]string, w)
	}
	return &brailleBuf{w: w, h: h, m: m, fg: fg}
}

var brailleBits = [2][4]uint8{
	{0x01, 0x02, 0x04, 0x40},
	{0x08, 0x10, 0x20, 0x80},
}

// setPixel sets a micro-pixel at micro coords (2x4 per cell)
func (b *brailleBuf) setPixel(mx, my int, col string) {
	if mx < 0 || my < 0 {
		return
	}
	cx, rx := mx/2, mx%2
	cy, ry := my/4, my%4
	if cy >= b.h || cx >= b.w {
		return
	}
	b.m[cy][cx] |= brailleBits[rx][ry]
	b.fg[cy][cx] = col
}

// fillEllipseMicro fills the ellipse centred at (cx, cy) with radii
// (rx, ry) in micro-pixels. A visible centre always gets at least one
// dot so tiny marks do not vanish.
func (b *brailleBuf) fillEllipseMicro(cx, cy, rx, ry float64, col string) {
	wMic, hMic := b.w*2, b.h*4
	x0 := max(0, int(math.Floor(cx-rx)))
	x1 := min(wMic-1, int(math.Ceil(cx+rx)))
	y0 := max(0, int(math.Floor(cy-ry)))
	y1 := min(hMic-1, int(math.Ceil(cy+ry)))
	for my := y0; my <= y1; my++ {
		for mx := x0; mx <= x1; mx++ {
			dx := (float64(mx) + 0.5 - cx) / rx
			dy := (float64(my) + 0.5 - cy) / ry
			if dx*dx+dy*dy <= 1 {
				b.setPixel(mx, my, col)
			}
		}
	}
	b.setPixel(int(math.Floor(cx)), int(math.Floor(cy)), col)
}

// glyph returns the braille glyph of cell (x, y), or 0 when empty.
func (b *brailleBuf) glyph(x, y int) rune {
	mask := b.m[y][x]
	if mask == 0 {
		return 0
	}
	return rune(0x2800 + int(mask))
}
