package tui

const (
	sidebarWidth = 28
	headerHeight = 1
	axisHeight   = 1
	footerHeight = 2
	gutterWidth  = 7

	resetLabel = "[ reset ]"
)

// layout is the screen geometry shared by View and the mouse handler.
type layout struct {
	contentW, contentH int
	sidebarW           int
	// canvas origin and size in terminal cells
	originX, originY int
	canvasW, canvasH int
	// header cells [resetX0, resetX1) hold the reset button
	resetX0, resetX1 int
}

func (m Model) layout() layout {
	var lo layout
	lo.contentW = max(10, m.width)
	lo.contentH = max(4, m.height-headerHeight-footerHeight)
	if m.showSidebar {
		lo.sidebarW = sidebarWidth
	}
	spacer := 0
	if m.showSidebar {
		spacer = 1
	}
	lo.originX = lo.sidebarW + spacer + gutterWidth
	lo.originY = headerHeight + axisHeight
	lo.canvasW = max(10, lo.contentW-lo.originX)
	lo.canvasH = max(4, lo.contentH-axisHeight)
	lo.resetX1 = lo.contentW
	lo.resetX0 = lo.contentW - len(resetLabel)
	return lo
}

// inCanvas reports whether terminal cell (x, y) lies on the canvas.
func (lo layout) inCanvas(x, y int) bool {
	return x >= lo.originX && x < lo.originX+lo.canvasW && y >= lo.originY && y < lo.originY+lo.canvasH
}

func (lo layout) onReset(x, y int) bool {
	return y == 0 && x >= lo.resetX0 && x < lo.resetX1
}

// cellToSurface returns the surface point at the centre of canvas
// cell (cx, cy).
func (m Model) cellToSurface(cx, cy int, lo layout) (float64, float64) {
	s := m.opts.Surface
	return (float64(cx) + 0.5) * s.Width / float64(lo.canvasW),
		(float64(cy) + 0.5) * s.Height / float64(lo.canvasH)
}

// surfaceToMicro maps a surface point onto the canvas micro-pixel grid.
func (m Model) surfaceToMicro(x, y float64, lo layout) (float64, float64) {
	sx, sy := m.microScale(lo)
	return x * sx, y * sy
}

// microScale is micro-pixels per surface unit along x and y.
func (m Model) microScale(lo layout) (float64, float64) {
	s := m.opts.Surface
	return float64(lo.canvasW*2) / s.Width, float64(lo.canvasH*4) / s.Height
}

// cellSize is the surface extent of one canvas cell.
func (m Model) cellSize(lo layout) (float64, float64) {
	s := m.opts.Surface
	return s.Width / float64(lo.canvasW), s.Height / float64(lo.canvasH)
}
