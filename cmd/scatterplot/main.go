package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"log/slog"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"scatterplot/internal/chart"
	"scatterplot/internal/tui"
)

func main() {
	opts := tui.DefaultOptions()
	flag.Float64Var(&opts.Surface.Width, "width", chart.DefaultSurface.Width, "logical surface `width` in pixels")
	flag.Float64Var(&opts.Surface.Height, "height", chart.DefaultSurface.Height, "logical surface `height` in pixels")
	flag.DurationVar(&opts.ResetDuration, "reset-duration", opts.ResetDuration, "reset animation `duration` (0 resets instantly)")
	logPath := flag.String("log", "", "write debug log to `file`")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [file.csv]\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if opts.Surface.Width <= 0 || opts.Surface.Height <= 0 {
		log.Fatalf("surface must be positive, got %gx%g", opts.Surface.Width, opts.Surface.Height)
	}
	if opts.ResetDuration < 0 {
		log.Fatalf("reset duration must not be negative, got %v", opts.ResetDuration)
	}
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	// The terminal belongs to the UI, so logs go to a file or nowhere.
	var logOut io.Writer = io.Discard
	if *logPath != "" {
		f, err := tea.LogToFile(*logPath, "scatterplot")
		if err != nil {
			log.Fatal(err)
		}
		defer f.Close()
		logOut = f
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(logOut, &slog.HandlerOptions{Level: slog.LevelDebug})))

	var m tea.Model
	if flag.NArg() == 1 {
		m = tui.NewWithPath(opts, flag.Arg(0))
	} else {
		m = tui.New(opts)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		// the log package now writes through slog, so report directly
		fmt.Fprintln(os.Stderr, "scatterplot:", err)
		os.Exit(1)
	}
}
