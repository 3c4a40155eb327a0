package tui

import (
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	key "github.com/charmbracelet/bubbles/key"
	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"scatterplot/internal/chart"
	"scatterplot/internal/data"
	"scatterplot/internal/scale"
	"scatterplot/internal/zoom"
)

// frameInterval paces the reset animation.
const frameInterval = time.Second / 60

// wheelStep is the deltaY of one wheel notch.
const wheelStep = 100

// frameMsg is one tick of the reset animation. id names the animation
// that scheduled it; ticks of a superseded animation are dropped.
type frameMsg struct {
	id int
	t  time.Time
}

type exportedMsg struct {
	path string
	err  error
}

func nextFrame(id int) tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg { return frameMsg{id: id, t: t} })
}

func exportCmd(path string, f chart.Frame) tea.Cmd {
	return func() tea.Msg {
		return exportedMsg{path: path, err: chart.Export(path, f)}
	}
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		if m.showSidebar {
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case frameMsg:
		if msg.id != m.animID || m.ctl.State() != zoom.Animating {
			return m, nil
		}
		_, changed, more := m.ctl.Tick(msg.t)
		if changed {
			m.refreshFrame()
			m.updateHover()
		}
		if more {
			return m, nextFrame(m.animID)
		}
		slog.Debug("reset finished", "transform", m.ctl.Transform())
		m.status = "view reset"
		return m, nil
	case exportedMsg:
		if msg.err != nil {
			slog.Error("export failed", "path", msg.path, "err", msg.err)
			m.status = "export error: " + msg.err.Error()
		} else {
			slog.Info("exported view", "path", msg.path)
			m.status = "exported " + filepath.Base(msg.path)
		}
		return m, nil
	case tea.KeyMsg:
		// If list is visible and filtering, send keys to list and ignore global commands
		if m.showSidebar && m.l.FilterState() == list.Filtering {
			var cmd tea.Cmd
			m.l, cmd = m.l.Update(msg)
			return m, cmd
		}
		if m.pasteMode {
			return m.updatePaste(msg)
		}
		return m.updateKey(msg)
	case tea.MouseMsg:
		return m.updateMouse(msg)
	}
	// Pass messages to list when visible
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updatePaste(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.pasteMode = false
		m.ta.Blur()
		m.status = "view mode"
		return m, nil
	case "enter":
		text := strings.TrimSpace(m.ta.Value())
		if text == "" {
			m.status = "paste: empty"
			return m, nil
		}
		ds, err := data.ParseCSV(strings.NewReader(text))
		if err != nil {
			m.status = "csv error: " + err.Error()
			return m, nil
		}
		ds.Name = "<pasted>"
		m.selPath = ""
		m.setDataset(ds)
		m.status = loadedStatus(ds)
		m.pasteMode = false
		m.ta.Blur()
		m.afterLoad()
		return m, nil
	}
	var cmd tea.Cmd
	m.ta, cmd = m.ta.Update(msg)
	return m, cmd
}

func (m Model) updateKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	lo := m.layout()
	cw, ch := m.cellSize(lo)
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Close):
		m.inspectPopup = ""
		m.showAttrs = false
	case key.Matches(msg, m.keys.ZoomIn):
		m.applyTransform(m.ctl.ZoomBy(zoom.ZoomFactor(-wheelStep, false)))
	case key.Matches(msg, m.keys.ZoomOut):
		m.applyTransform(m.ctl.ZoomBy(zoom.ZoomFactor(wheelStep, false)))
	case key.Matches(msg, m.keys.Up):
		m.applyTransform(m.ctl.PanBy(0, -ch))
	case key.Matches(msg, m.keys.Down):
		m.applyTransform(m.ctl.PanBy(0, ch))
	case key.Matches(msg, m.keys.Left):
		m.applyTransform(m.ctl.PanBy(-cw, 0))
	case key.Matches(msg, m.keys.Right):
		m.applyTransform(m.ctl.PanBy(cw, 0))
	case key.Matches(msg, m.keys.Reset):
		cmd := m.startReset()
		return m, cmd
	case key.Matches(msg, m.keys.Sidebar):
		m.showSidebar = !m.showSidebar
		if m.showSidebar {
			m.refreshDir()
			m.l.SetSize(sidebarWidth-2, m.layout().contentH-2)
		}
	case key.Matches(msg, m.keys.Paste):
		m.pasteMode = true
		m.ta.SetValue("")
		m.status = "paste mode"
		m.ta.Focus()
	case key.Matches(msg, m.keys.Help):
		m.helpVisible = !m.helpVisible
	case key.Matches(msg, m.keys.Legend):
		m.showLegend = !m.showLegend
	case key.Matches(msg, m.keys.Table):
		m.showAttrs = !m.showAttrs
		if m.showAttrs {
			m.refreshAttrsFromCurrent()
		}
	case key.Matches(msg, m.keys.Inspect):
		if m.inspectPopup != "" {
			m.inspectPopup = ""
		} else {
			m.inspectPopup = m.inspectText()
			m.status = "inspect popup"
		}
	case key.Matches(msg, m.keys.Export):
		name := fmt.Sprintf("scatterplot-%d.svg", time.Now().Unix())
		m.status = "exporting " + name
		return m, exportCmd(filepath.Join(m.cwd, name), m.frame)
	case key.Matches(msg, m.keys.Open):
		if m.showSidebar {
			if it, ok := m.l.SelectedItem().(fileItem); ok {
				m.loadPath(it.path)
			}
		}
	}
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m Model) updateMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	lo := m.layout()
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
	}
	if msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft && lo.onReset(msg.X, msg.Y) {
		cmd := m.startReset()
		return m, cmd
	}
	cx, cy := msg.X-lo.originX, msg.Y-lo.originY
	sx, sy := m.cellToSurface(cx, cy, lo)
	inside := lo.inCanvas(msg.X, msg.Y)

	switch {
	case msg.Button == tea.MouseButtonWheelUp || msg.Button == tea.MouseButtonWheelDown:
		if inside {
			dy := float64(wheelStep)
			if msg.Button == tea.MouseButtonWheelUp {
				dy = -dy
			}
			m.applyTransform(m.ctl.Wheel(zoom.WheelEvent{X: sx, Y: sy, DeltaY: dy, Ctrl: msg.Ctrl}))
		}
	case msg.Action == tea.MouseActionPress && msg.Button == tea.MouseButtonLeft:
		if inside {
			m.ctl.PointerDown(zoom.PointerEvent{X: sx, Y: sy})
		}
	case msg.Action == tea.MouseActionMotion && msg.Button == tea.MouseButtonLeft:
		m.applyTransform(m.ctl.PointerMove(zoom.PointerEvent{X: sx, Y: sy}))
	case msg.Action == tea.MouseActionRelease:
		m.applyTransform(m.ctl.PointerUp(zoom.PointerEvent{X: sx, Y: sy}))
	}

	// track hover over the canvas
	if inside {
		m.hovering = true
		m.hoverCellX, m.hoverCellY = cx, cy
	} else {
		m.hovering = false
	}
	m.updateHover()
	if m.showSidebar {
		var cmd tea.Cmd
		m.l, cmd = m.l.Update(msg)
		return m, cmd
	}
	return m, nil
}

// applyTransform rebuilds the frame after a controller update.
func (m *Model) applyTransform(t scale.Transform, changed bool) {
	if !changed {
		return
	}
	m.refreshFrame()
	m.updateHover()
	m.status = fmt.Sprintf("zoom: %.2fx", t.K)
}

func (m *Model) startReset() tea.Cmd {
	from := m.ctl.Transform()
	if !m.ctl.Reset(time.Now()) {
		return nil
	}
	if m.ctl.State() != zoom.Animating {
		// zero duration: already at identity
		slog.Debug("reset", "from", from)
		m.refreshFrame()
		m.updateHover()
		m.status = "view reset"
		return nil
	}
	slog.Debug("reset started", "from", from)
	m.animID++
	m.status = "resetting view"
	return nextFrame(m.animID)
}

// updateHover picks the mark under the pointer for the tooltip. It
// runs after every pointer move and every transform change so the
// tooltip follows pan and zoom.
func (m *Model) updateHover() {
	m.hoverMark = -1
	if !m.hovering {
		return
	}
	lo := m.layout()
	sx, sy := m.cellToSurface(m.hoverCellX, m.hoverCellY, lo)
	cw, ch := m.cellSize(lo)
	m.hoverMark = m.frame.MarkAt(sx, sy, max(cw, ch)/2)
}

func (m *Model) afterLoad() {
	if m.showAttrs {
		m.refreshAttrsFromCurrent()
	}
	m.inspectPopup = ""
}

func loadedStatus(ds *data.Dataset) string {
	s := fmt.Sprintf("loaded: %s  records=%d", ds.Name, ds.Len())
	if ds.Skipped > 0 {
		s += fmt.Sprintf(" skipped=%d", ds.Skipped)
	}
	return s
}

func (m Model) inspectText() string {
	var b strings.Builder
	name := "<none>"
	if m.ds != nil {
		name = m.ds.Name
	}
	fmt.Fprintf(&b, "dataset: %s\n", name)
	if m.selPath != "" {
		fmt.Fprintf(&b, "path: %s\n", m.selPath)
	}
	if m.ds != nil && len(m.ds.Header) > 0 {
		fmt.Fprintf(&b, "columns: %s\n", strings.Join(m.ds.Header, ","))
	}
	fmt.Fprintf(&b, "records: %d", m.ds.Len())
	if m.ds != nil && m.ds.Skipped > 0 {
		fmt.Fprintf(&b, " (skipped %d)", m.ds.Skipped)
	}
	b.WriteString("\n")
	if m.ds != nil {
		for _, s := range m.ds.Summarize() {
			b.WriteString(s.String() + "\n")
		}
	}
	f := m.frame
	fmt.Fprintf(&b, "view: %s\n", f.Transform)
	fmt.Fprintf(&b, "gdp: [%.4g, %.4g]  ecc: [%.4g, %.4g]", f.X.Domain[0], f.X.Domain[1], f.Y.Domain[0], f.Y.Domain[1])
	return b.String()
}
