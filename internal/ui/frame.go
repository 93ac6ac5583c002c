package ui

import (
	"strings"
)

// frame.go renders the two-box page layout: a bordered main box padded to
// fill the viewport, and a one-line help box underneath.

// RenderFrame wraps page content in the standard bordered layout.
func RenderFrame(layout Layout, content, helpText string) string {
	// Subtract the footer box (3 lines), spacing (1), and border overhead (2)
	mainAvailableHeight := layout.ViewportHeight - 6
	if mainAvailableHeight < 10 {
		mainAvailableHeight = 10
	}

	// Pad content to fill available height so the border stays put
	contentLines := strings.Count(content, "\n")
	if contentLines < mainAvailableHeight {
		content += strings.Repeat("\n", mainAvailableHeight-contentLines)
	}

	var result strings.Builder

	mainBordered := BorderStyle.
		Width(layout.InnerWidth).
		Height(mainAvailableHeight).
		Render(content)
	result.WriteString(mainBordered)
	result.WriteString("\n")

	// Center the help text in its own box
	padding := (layout.InnerWidth - len(helpText)) / 2
	var footer strings.Builder
	if padding > 0 {
		footer.WriteString(strings.Repeat(" ", padding))
	}
	footer.WriteString(helpText)
	result.WriteString(BorderStyle.
		Width(layout.InnerWidth).
		Render(HintStyle.Render(footer.String())))

	return result.String()
}

// RenderTitle renders a page title with a divider line under it.
func RenderTitle(layout Layout, title string) string {
	var b strings.Builder
	b.WriteString(TitleStyle.Render(title))
	b.WriteString("\n")
	b.WriteString(strings.Repeat("─", layout.InnerWidth))
	b.WriteString("\n\n")
	return b.String()
}

// truncate shortens a string to width runes with an ellipsis.
func truncate(s string, width int) string {
	if width <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width == 1 {
		return "…"
	}
	return string(runes[:width-1]) + "…"
}
