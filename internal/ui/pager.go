package ui

// pager.go renders the pagination footer shared by the browser pages and
// maps navigation keys to cursors. It is a read-only projection of one
// response's paging state: no page cache, no prefetch. Pressing a key just
// yields the cursor for a brand-new fetch.

import (
	"fmt"
	"strings"

	"github.com/avtools/tamscout/internal/paging"
)

// CursorForKey maps a pagination key to the cursor it should fetch.
// Returns ok=false when the key is not a pagination key or the direction
// has no cursor in the current page.
func CursorForKey(p paging.Page, key string) (cursor string, ok bool) {
	switch key {
	case "n", "right":
		cursor = p.NextCursor()
	case "p", "left":
		cursor = p.PrevCursor()
	case "f", "home":
		cursor = p.FirstCursor()
	case "l", "end":
		cursor = p.LastCursor()
	default:
		return "", false
	}
	return cursor, cursor != ""
}

// RenderPager renders the pagination footer for the current page. Controls
// whose direction has no cursor are dimmed; the middle section shows the
// store-declared page size, item count, and echoed timerange when present.
func RenderPager(p paging.Page) string {
	var b strings.Builder

	b.WriteString(control("⇤ first", p.FirstCursor() != ""))
	b.WriteString("  ")
	b.WriteString(control("← prev", p.HasPrev()))
	b.WriteString("   ")
	b.WriteString(HintStyle.Render(pageSummary(p.Meta)))
	b.WriteString("   ")
	b.WriteString(control("next →", p.HasNext()))
	b.WriteString("  ")
	b.WriteString(control("last ⇥", p.LastCursor() != ""))

	return b.String()
}

func control(label string, enabled bool) string {
	if enabled {
		return AccentStyle.Render(label)
	}
	return DimStyle.Render(label)
}

// pageSummary builds the middle section of the footer from the paging
// metadata. Absent fields are simply left out.
func pageSummary(m paging.Meta) string {
	var parts []string
	if m.Count != nil {
		parts = append(parts, fmt.Sprintf("%d items", *m.Count))
	}
	if m.Limit != nil {
		parts = append(parts, fmt.Sprintf("page size %d", *m.Limit))
	}
	if m.Timerange != "" {
		parts = append(parts, m.Timerange)
	}
	if m.ReverseOrder {
		parts = append(parts, "reverse order")
	}
	if len(parts) == 0 {
		return "single page"
	}
	return strings.Join(parts, " · ")
}
