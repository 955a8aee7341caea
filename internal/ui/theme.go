// Package ui holds the small lipgloss theme used by the status command.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	cGold   = lipgloss.Color("220")
	cSilver = lipgloss.Color("250")
	cGems   = lipgloss.Color("78")
	cBase   = lipgloss.Color("75")
	cMuted  = lipgloss.Color("244")
	cBad    = lipgloss.Color("196")
)

var (
	Title  = lipgloss.NewStyle().Bold(true).Foreground(cBase)
	Gold   = lipgloss.NewStyle().Foreground(cGold)
	Silver = lipgloss.NewStyle().Foreground(cSilver)
	Gems   = lipgloss.NewStyle().Foreground(cGems)
	Base   = lipgloss.NewStyle().Foreground(cBase)
	Muted  = lipgloss.NewStyle().Foreground(cMuted)
	Bad    = lipgloss.NewStyle().Bold(true).Foreground(cBad)
)

// TextBar renders a fixed-width progress bar like "████████░░░░".
// A goal of zero or less reads as complete.
func TextBar(style lipgloss.Style, value, goal int64, width int) string {
	filled := width
	if goal > 0 {
		filled = int(float64(width) * float64(value) / float64(goal))
		if filled > width {
			filled = width
		}
		if filled < 0 {
			filled = 0
		}
	}
	return style.Render(strings.Repeat("█", filled)) + Muted.Render(strings.Repeat("░", width-filled))
}
