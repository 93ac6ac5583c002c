package ui

import (
	"time"
)

// page_state.go provides shared state for the dashboard pages.
// Embed PageState in a page model to get status message handling.

// PageState contains common state that all pages need.
type PageState struct {
	Layout       Layout
	StatusMsg    string
	StatusIsErr  bool
	StatusExpiry time.Time
	Quitting     bool
	ReturnToMenu bool
}

// NewPageState creates a new PageState with the given layout.
func NewPageState(layout Layout) PageState {
	return PageState{Layout: layout}
}

// SetStatus sets a status message that expires after the given duration.
// A zero duration keeps the message until replaced.
func (p *PageState) SetStatus(msg string, duration time.Duration) {
	p.StatusMsg = msg
	p.StatusIsErr = false
	if duration > 0 {
		p.StatusExpiry = time.Now().Add(duration)
	} else {
		p.StatusExpiry = time.Time{}
	}
}

// SetError sets an error status message that stays until replaced.
func (p *PageState) SetError(msg string) {
	p.StatusMsg = msg
	p.StatusIsErr = true
	p.StatusExpiry = time.Time{}
}

// ClearExpiredStatus clears the status message if it has expired.
// Call this from the page's Update.
func (p *PageState) ClearExpiredStatus() {
	if !p.StatusExpiry.IsZero() && time.Now().After(p.StatusExpiry) {
		p.StatusMsg = ""
		p.StatusExpiry = time.Time{}
	}
}

// RenderStatus renders the current status message, or "" when there is none.
func (p *PageState) RenderStatus() string {
	if p.StatusMsg == "" {
		return ""
	}
	if p.StatusIsErr {
		return ErrorStyle.Render(p.StatusMsg)
	}
	return SuccessStyle.Render(p.StatusMsg)
}

// UpdateLayout updates the layout and returns true if it changed.
// Use this in the WindowSizeMsg handler.
func (p *PageState) UpdateLayout(width, height int) bool {
	newLayout := NewLayout(width, height)
	if newLayout != p.Layout {
		p.Layout = newLayout
		return true
	}
	return false
}
