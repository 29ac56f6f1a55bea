// Package ui renders colored status lines for the setup pipeline.
package ui

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
)

var (
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("12")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Faint(true)
)

// Printer writes styled status lines. The zero value writes to os.Stdout.
type Printer struct {
	Out io.Writer
}

func (p Printer) out() io.Writer {
	if p.Out != nil {
		return p.Out
	}
	return os.Stdout
}

// Step announces the start of a pipeline step.
func (p Printer) Step(format string, args ...any) {
	fmt.Fprintln(p.out(), stepStyle.Render("▸ ")+fmt.Sprintf(format, args...))
}

// Success reports a completed step.
func (p Printer) Success(format string, args ...any) {
	fmt.Fprintln(p.out(), successStyle.Render("✓ ")+fmt.Sprintf(format, args...))
}

// Warn reports a non-fatal problem.
func (p Printer) Warn(format string, args ...any) {
	fmt.Fprintln(p.out(), warnStyle.Render("! ")+fmt.Sprintf(format, args...))
}

// Error reports a fatal problem.
func (p Printer) Error(format string, args ...any) {
	fmt.Fprintln(p.out(), errorStyle.Render("✗ ")+fmt.Sprintf(format, args...))
}

// Detail prints supplementary dimmed output, such as a command line.
func (p Printer) Detail(format string, args ...any) {
	fmt.Fprintln(p.out(), dimStyle.Render(fmt.Sprintf(format, args...)))
}
