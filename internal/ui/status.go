// Package ui renders console and in-window status information.
package ui

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"langton-ant/internal/core"
)

// Status is the information reported once per refresh.
type Status struct {
	Iteration  uint64
	Ant        core.Point
	Camera     core.Point
	Refresh    time.Duration
	Cycle      time.Duration
	Follow     bool
	SquareSize int
}

// StatusLine rewrites a single console line in place.
type StatusLine struct {
	w      io.Writer
	arrow  lipgloss.Style
	label  lipgloss.Style
	banner lipgloss.Style
	dirty  bool
}

// NewStatusLine styles output for w's terminal capabilities.
func NewStatusLine(w io.Writer) *StatusLine {
	r := lipgloss.NewRenderer(w)
	return &StatusLine{
		w:      w,
		arrow:  r.NewStyle().Foreground(lipgloss.Color("86")).Bold(true),
		label:  r.NewStyle().Foreground(lipgloss.Color("245")),
		banner: r.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("240")).Padding(1, 4),
	}
}

// Print overwrites the current line with s.
func (l *StatusLine) Print(s Status) error {
	l.dirty = true
	_, err := fmt.Fprint(l.w, "\r"+l.format(s))
	return err
}

func (l *StatusLine) format(s Status) string {
	return fmt.Sprintf("%s %s %d | %s (%d,%d) | %s (%d,%d) | %s %dms | %s %dms",
		l.arrow.Render("=>"),
		l.label.Render("iteration:"), s.Iteration,
		l.label.Render("ant:"), s.Ant.X, s.Ant.Y,
		l.label.Render("camera:"), s.Camera.X, s.Camera.Y,
		l.label.Render("refresh_interval:"), s.Refresh.Milliseconds(),
		l.label.Render("cycle_interval:"), s.Cycle.Milliseconds(),
	)
}

// Finish ends the status line so later output starts on a fresh line.
func (l *StatusLine) Finish() {
	if l.dirty {
		fmt.Fprintln(l.w)
		l.dirty = false
	}
}

var helpLines = []string{
	"keyboard control",
	"",
	"      [+]       : zoom +",
	"      [-]       : zoom -",
	"      [F]       : enable/disable follow-ant mode",
	"      [I]       : show/hide info overlay",
	"[^],[v],[<],[>] : move camera (if follow-ant disabled)",
	"     [ESC]      : exit",
}

// Help prints the keyboard controls.
func (l *StatusLine) Help() {
	fmt.Fprintln(l.w, l.banner.Render(strings.Join(helpLines, "\n")))
	fmt.Fprintln(l.w)
}
