// Package logging builds the application logger.
package logging

import (
	"io"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
)

// New returns a logger writing to w. Without debug only errors are reported.
func New(w io.Writer, debug bool) *log.Logger {
	level := log.ErrorLevel
	if debug {
		level = log.DebugLevel
	}
	logger := log.NewWithOptions(w, log.Options{
		Level:           level,
		Prefix:          "multisim",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	})
	logger.SetStyles(styles())
	return logger
}

func styles() *log.Styles {
	s := log.DefaultStyles()
	s.Levels[log.ErrorLevel] = lipgloss.NewStyle().
		SetString("ERROR").
		Padding(0, 1).
		Background(lipgloss.Color("196")).
		Foreground(lipgloss.Color("231"))
	s.Levels[log.FatalLevel] = lipgloss.NewStyle().
		SetString("PANIC").
		Padding(0, 1).
		Background(lipgloss.Color("201")).
		Foreground(lipgloss.Color("231"))
	s.Keys["location"] = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	s.Values["location"] = lipgloss.NewStyle().Bold(true)
	s.Keys["err"] = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	s.Keys["sim"] = lipgloss.NewStyle().Foreground(lipgloss.Color("86"))
	return s
}
