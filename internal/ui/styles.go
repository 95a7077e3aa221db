// Package ui holds the shared terminal palette and output helpers.
package ui

import (
	"fmt"
	"os"

	"github.com/charmbracelet/lipgloss"
)

// ─── Palette ─────────────────────────────────────────────────────────────────

var (
	ColorPrimary   = lipgloss.AdaptiveColor{Light: "#7c3aed", Dark: "#a78bfa"}
	ColorSecondary = lipgloss.AdaptiveColor{Light: "#0891b2", Dark: "#22d3ee"}
	ColorSuccess   = lipgloss.AdaptiveColor{Light: "#16a34a", Dark: "#4ade80"}
	ColorWarning   = lipgloss.AdaptiveColor{Light: "#ca8a04", Dark: "#facc15"}
	ColorError     = lipgloss.AdaptiveColor{Light: "#dc2626", Dark: "#f87171"}
	ColorMuted     = lipgloss.AdaptiveColor{Light: "#6b7280", Dark: "#9ca3af"}
)

// ─── Icons ───────────────────────────────────────────────────────────────────

const (
	IconOK    = "✓"
	IconError = "✗"
	IconArrow = "→"
	IconPipe  = "│"
)

// ─── Shared styles ───────────────────────────────────────────────────────────

var (
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	StepStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorSecondary)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// ─── Output helpers ──────────────────────────────────────────────────────────

// Debug controls whether Debugf writes anything. Set from the root
// command's --debug flag.
var Debug bool

// Debugf prints a muted trace line when --debug is active. Used for the
// best-effort cleanup failures that are otherwise swallowed.
func Debugf(format string, args ...any) {
	if !Debug {
		return
	}
	fmt.Fprintln(os.Stderr, MutedStyle.Render("  [debug] "+fmt.Sprintf(format, args...)))
}

// Errorf prints a styled error line to stderr.
func Errorf(format string, args ...any) {
	fmt.Fprintln(os.Stderr, ErrorStyle.Render("  "+IconError+" "+fmt.Sprintf(format, args...)))
}
