package tui

import (
	"os"
	"time"

	help "github.com/charmbracelet/bubbles/help"
	list "github.com/charmbracelet/bubbles/list"
	table "github.com/charmbracelet/bubbles/table"
	textarea "github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"scatterplot/internal/chart"
	"scatterplot/internal/data"
	"scatterplot/internal/zoom"
)

// Options configures a Model.
type Options struct {
	Surface       chart.Surface
	// ResetDuration is the length of the reset animation; zero
	// resets instantly.
	ResetDuration time.Duration
	// Dir is where the file sidebar lists CSV files and where
	// snapshots are written. Empty means the working directory.
	Dir string
}

// DefaultOptions returns the options used when no flags are given.
func DefaultOptions() Options {
	return Options{Surface: chart.DefaultSurface, ResetDuration: zoom.DefaultResetDuration}
}

type Model struct {
	opts Options

	width  int
	height int

	showSidebar bool
	helpVisible bool
	showLegend  bool

	status string

	// File explorer
	cwd     string
	l       list.Model
	selPath string

	// Data
	ds    *data.Dataset
	chart *chart.Chart

	// View transform and the frame derived from it. frame is rebuilt
	// whenever the controller's transform changes.
	ctl   *zoom.Controller
	frame chart.Frame
	// animID identifies the running reset animation's frame chain.
	animID int

	// paste mode
	pasteMode bool
	ta        textarea.Model

	// inspect popup
	inspectPopup string

	// hover state
	hovering   bool
	hoverCellX int
	hoverCellY int
	hoverMark  int

	// records table
	showAttrs bool
	tbl       table.Model

	keys keyMap
	help help.Model
}

func New(opts Options) Model {
	if opts.Surface.Width <= 0 || opts.Surface.Height <= 0 {
		opts.Surface = chart.DefaultSurface
	}
	m := Model{
		opts:        opts,
		helpVisible: true,
		showLegend:  true,
		status:      "scatterplot ready",
		hoverMark:   -1,
		keys:        defaultKeyMap(),
		help:        help.New(),
	}
	m.cwd = opts.Dir
	if m.cwd == "" {
		m.cwd, _ = os.Getwd()
	}
	m.ctl = zoom.NewController(zoom.NewBehavior(opts.Surface.Width, opts.Surface.Height))
	if opts.ResetDuration >= 0 {
		m.ctl.ResetDuration = opts.ResetDuration
	}
	m.setDataset(nil)
	// list setup
	d := list.NewDefaultDelegate()
	d.ShowDescription = false
	m.l = list.New(nil, d, 0, 0)
	m.l.Title = "CSV files"
	m.l.SetShowHelp(false)
	m.l.SetShowStatusBar(false)
	m.l.SetFilteringEnabled(true)
	// textarea setup
	m.ta = textarea.New()
	m.ta.Placeholder = "Paste CSV here (country,gdp,population,ecc,ec). Press Enter to render; Esc to cancel."
	m.ta.CharLimit = 0
	m.ta.SetWidth(50)
	m.ta.SetHeight(6)
	m.tbl = table.New(table.WithFocused(true))
	m.tbl.SetHeight(12)
	m.refreshDir()
	return m
}

// NewWithPath preloads a CSV file at launch.
func NewWithPath(opts Options, path string) Model {
	m := New(opts)
	m.loadPath(path)
	return m
}

func (m Model) Init() tea.Cmd { return nil }

// setDataset replaces the records, rebuilds the base scales and
// returns the view to identity.
func (m *Model) setDataset(ds *data.Dataset) {
	m.ds = ds
	var recs []data.Record
	if ds != nil {
		recs = ds.Records
	}
	m.chart = chart.New(recs, m.opts.Surface)
	b := m.ctl.Behavior
	dur := m.ctl.ResetDuration
	m.ctl = zoom.NewController(b)
	m.ctl.ResetDuration = dur
	// a pending frame belongs to the old controller
	m.animID++
	m.hoverMark = -1
	m.refreshFrame()
}

// refreshFrame derives the frame from the controller's current
// transform. Axes and marks come from the same transform value.
func (m *Model) refreshFrame() {
	m.frame = m.chart.Frame(m.ctl.Transform())
}
