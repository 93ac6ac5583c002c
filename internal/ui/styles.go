package ui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
)

// Layout constants - single source of truth for all viewport dimensions
const (
	MinViewportWidth = 100
	MaxViewportWidth = 150
	DefaultWidth     = 110 // Used when terminal size is unknown
	DefaultHeight    = 32
	TableHeight      = 18
)

// Layout holds computed dimensions for the current terminal size
type Layout struct {
	ViewportWidth  int // clamped terminal width
	ViewportHeight int // terminal height as reported
	InnerWidth     int // exact width for content inside borders (ViewportWidth - 2)
	TableWidth     int // sum of column widths + separators
	TableHeight    int // rows visible in tables
}

// NewLayout creates a Layout from the terminal size, clamping the width
func NewLayout(width, height int) Layout {
	w := clamp(width, MinViewportWidth, MaxViewportWidth)
	if height <= 0 {
		height = DefaultHeight
	}
	tableHeight := TableHeight
	// Leave room for title, status line, pager footer, and help box
	if height-12 < tableHeight {
		tableHeight = height - 12
	}
	if tableHeight < 5 {
		tableHeight = 5
	}
	return Layout{
		ViewportWidth:  w,
		ViewportHeight: height,
		InnerWidth:     w - 2,
		TableWidth:     w - 4,
		TableHeight:    tableHeight,
	}
}

// DefaultLayout returns a layout using the default dimensions
func DefaultLayout() Layout {
	return NewLayout(DefaultWidth, DefaultHeight)
}

// clamp restricts a value to the given range
func clamp(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}

// Color palette - centralized color definitions
var (
	ColorBorder    = lipgloss.Color("39")  // blue
	ColorHighlight = lipgloss.Color("24")  // dark blue background
	ColorText      = lipgloss.Color("15")  // bright white
	ColorAccent    = lipgloss.Color("86")  // cyan
	ColorWarn      = lipgloss.Color("214") // orange
	ColorError     = lipgloss.Color("196") // red
	ColorOK        = lipgloss.Color("42")  // green
	ColorTextDim   = lipgloss.Color("241") // gray
)

// Common styles - reusable style definitions
var (
	// Border style for the main viewport box
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(ColorBorder)

	// Title style for section headers
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorText).
			MarginBottom(1)

	// Selected row/item style
	SelectedStyle = lipgloss.NewStyle().
			Foreground(ColorText).
			Background(ColorHighlight).
			Bold(true)

	// Normal text style
	NormalStyle = lipgloss.NewStyle().
			Foreground(ColorText)

	// Hint/help text style
	HintStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim).
			Italic(true)

	// Accent style for highlighted text (cyan)
	AccentStyle = lipgloss.NewStyle().
			Foreground(ColorAccent).
			Bold(true)

	// Error message style
	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	// Success message style
	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorOK)

	// Disabled pagination control style
	DimStyle = lipgloss.NewStyle().
			Foreground(ColorTextDim)
)

// NewAppSpinner returns the spinner used across all pages
func NewAppSpinner() spinner.Model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = lipgloss.NewStyle().Foreground(ColorAccent)
	return s
}

// ApplyTableStyles applies the shared bubbles table look
func ApplyTableStyles(t *table.Model) {
	styles := table.DefaultStyles()
	styles.Header = styles.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(ColorBorder).
		BorderBottom(true).
		Bold(true).
		Foreground(ColorAccent)
	styles.Selected = SelectedStyle
	t.SetStyles(styles)
}

// RenderNormal renders text in the normal style
func RenderNormal(s string) string {
	return NormalStyle.Render(s)
}
