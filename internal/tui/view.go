package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"scatterplot/internal/chart"
	"scatterplot/internal/zoom"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	lo := m.layout()

	// Header: title, axis captions and the reset button at the right edge
	title := titleStyle.Render(" scatterplot ")
	button := buttonStyle.Render(resetLabel)
	captionW := max(0, lo.contentW-lipgloss.Width(title)-len(resetLabel)-1)
	caption := dimStyle.Render(truncate("x: "+chart.XLabel+"  y: "+chart.YLabel, captionW))
	gap := max(0, lo.contentW-lipgloss.Width(title)-lipgloss.Width(caption)-len(resetLabel))
	header := lipgloss.JoinHorizontal(lipgloss.Top, title, caption, lipgloss.NewStyle().Width(gap).Render(""), button)

	// Sidebar
	var sidebar string
	if m.showSidebar {
		m.l.SetSize(sidebarWidth-2, lo.contentH-2)
		sidebar = lipgloss.NewStyle().Width(lo.sidebarW).Render(m.l.View())
	}

	// Plot area: x axis row over (y gutter | canvas)
	var plotView string
	plotW := lo.canvasW + gutterWidth
	switch {
	case m.showAttrs:
		colW := 0
		for _, c := range m.tbl.Columns() {
			colW += c.Width + 3
		}
		maxW := min(plotW, max(32, colW))
		m.tbl.SetWidth(maxW - 4)
		m.tbl.SetHeight(min(lo.contentH-2, 20))
		attrsBox := boxStyle.Width(maxW).Render(m.tbl.View())
		plotView = lipgloss.Place(plotW, lo.contentH, lipgloss.Center, lipgloss.Center, attrsBox)
	case m.pasteMode:
		m.ta.SetWidth(plotW)
		m.ta.SetHeight(min(lo.contentH, 12))
		plotView = lipgloss.NewStyle().Width(plotW).Height(lo.contentH).Render(m.ta.View())
	default:
		canvas := m.renderCanvas(lo)
		body := lipgloss.JoinHorizontal(lipgloss.Top, m.renderYAxis(lo), canvas)
		plotView = lipgloss.JoinVertical(lipgloss.Left, m.renderXAxis(lo), body)
	}

	// Inspect popup replaces the plot while open
	if m.inspectPopup != "" && !m.showAttrs {
		box := boxStyle.MaxWidth(plotW).Render(m.inspectPopup)
		plotView = lipgloss.Place(plotW, lo.contentH, lipgloss.Center, lipgloss.Center, box)
	}

	var body string
	if m.showSidebar {
		body = lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", plotView)
	} else {
		body = plotView
	}

	// Footer: status, data coordinates under the pointer, help
	status := dimStyle.Render(" " + m.status + " ")
	if m.ctl.State() == zoom.Animating {
		status = activeStyle.Render(" " + m.status + " ")
	}
	coords := ""
	if m.hovering {
		sx, sy := m.cellToSurface(m.hoverCellX, m.hoverCellY, lo)
		gdp, ecc := m.frame.X.Invert(sx), m.frame.Y.Invert(sy)
		coords = dimStyle.Render(fmt.Sprintf("  gdp=%.3f ecc=%.2f  k=%.2f  ", gdp, ecc, m.frame.Transform.K))
	}
	spacerW := max(0, lo.contentW-lipgloss.Width(status)-lipgloss.Width(coords))
	line1 := lipgloss.JoinHorizontal(lipgloss.Bottom, status, lipgloss.NewStyle().Width(spacerW).Render(""), coords)
	line2 := ""
	if m.helpVisible {
		line2 = " " + m.help.ShortHelpView(m.keys.ShortHelp())
	}
	footer := lipgloss.JoinVertical(lipgloss.Left, line1, line2)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(lo.contentW).Height(m.height).MaxHeight(m.height).Render(ui)
}
