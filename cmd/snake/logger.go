package main

import (
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// newLogger creates the CLI logger. Unknown levels fall back to info.
func newLogger(w io.Writer, level string) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          "snake",
	})

	if lvl, err := log.ParseLevel(level); err == nil {
		logger.SetLevel(lvl)
	}

	styles := log.DefaultStyles()
	styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
		SetString("WARN").
		Bold(true).
		Foreground(lipgloss.Color("214"))
	styles.Keys["tick"] = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
	styles.Values["cell"] = lipgloss.NewStyle().Bold(true)
	logger.SetStyles(styles)

	return logger
}
