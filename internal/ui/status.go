package ui

import "github.com/charmbracelet/lipgloss"

var (
	okStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))
	warnStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	failStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
)

// OK renders a success marker.
func OK(label string) string { return okStyle.Render("ok") + " " + label }

// Warn renders a warning marker.
func Warn(label string) string { return warnStyle.Render("warning:") + " " + label }

// Fail renders a failure marker.
func Fail(label string) string { return failStyle.Render("error:") + " " + label }
