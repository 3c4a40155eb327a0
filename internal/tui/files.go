package tui

import (
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"

	"scatterplot/internal/data"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.ToLower(filepath.Ext(name)) != ".csv" {
			continue
		}
		items = append(items, fileItem{title: name, desc: ".csv", path: filepath.Join(m.cwd, name)})
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no csv files in current directory"
	}
}

// loadPath loads a CSV dataset into the model. On error the current
// dataset stays loaded.
func (m *Model) loadPath(p string) {
	if ext := strings.ToLower(filepath.Ext(p)); ext != ".csv" {
		m.status = "unsupported file: " + ext
		return
	}
	ds, err := data.LoadCSV(p)
	if err != nil {
		slog.Warn("load failed", "path", p, "err", err)
		m.status = "load error: " + err.Error()
		return
	}
	slog.Info("loaded dataset", "path", p, "records", ds.Len(), "skipped", ds.Skipped)
	m.selPath = p
	m.setDataset(ds)
	m.status = loadedStatus(ds)
	m.afterLoad()
}
