package paging

import (
	"net/http"
	"testing"
)

// TestCursorLinkWinsOverKey verifies the Link header cursor takes precedence
// over the X-Paging-*Key fallback when both are present.
func TestCursorLinkWinsOverKey(t *testing.T) {
	h := http.Header{}
	h.Set("Link", `<https://x/y?page=L1>; rel="next"`)
	h.Set("X-Paging-NextKey", "L2")

	p := ParsePage(h)
	if got := p.NextCursor(); got != "L1" {
		t.Errorf("NextCursor() = %q, want %q", got, "L1")
	}
}

// TestCursorFallsBackToKey verifies the X-Paging-*Key headers apply when the
// Link header has no cursor for that direction.
func TestCursorFallsBackToKey(t *testing.T) {
	tests := []struct {
		name    string
		link    string
		keyName string
		key     string
		get     func(Page) string
		want    string
	}{
		{
			name:    "no link header at all",
			keyName: "X-Paging-NextKey",
			key:     "nk",
			get:     Page.NextCursor,
			want:    "nk",
		},
		{
			name:    "link present for other direction only",
			link:    `<https://x/y?page=n1>; rel="next"`,
			keyName: "X-Paging-PrevKey",
			key:     "pk",
			get:     Page.PrevCursor,
			want:    "pk",
		},
		{
			name:    "link entry without page param",
			link:    `<https://x/y>; rel="next"`,
			keyName: "X-Paging-NextKey",
			key:     "nk",
			get:     Page.NextCursor,
			want:    "nk",
		},
		{
			name:    "nothing available",
			get:     Page.LastCursor,
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			if tt.link != "" {
				h.Set("Link", tt.link)
			}
			if tt.keyName != "" {
				h.Set(tt.keyName, tt.key)
			}
			if got := tt.get(ParsePage(h)); got != tt.want {
				t.Errorf("cursor = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestCursorAllDirections verifies each direction resolves independently.
func TestCursorAllDirections(t *testing.T) {
	h := http.Header{}
	h.Set("Link", `<https://s/f?page=n1>; rel="next", <https://s/f?page=p1>; rel="prev", `+
		`<https://s/f?page=f1>; rel="first", <https://s/f?page=l1>; rel="last"`)

	p := ParsePage(h)
	if got := p.NextCursor(); got != "n1" {
		t.Errorf("NextCursor() = %q, want n1", got)
	}
	if got := p.PrevCursor(); got != "p1" {
		t.Errorf("PrevCursor() = %q, want p1", got)
	}
	if got := p.FirstCursor(); got != "f1" {
		t.Errorf("FirstCursor() = %q, want f1", got)
	}
	if got := p.LastCursor(); got != "l1" {
		t.Errorf("LastCursor() = %q, want l1", got)
	}
}

// TestHasNextHasPrev verifies the derived predicates track cursor presence.
func TestHasNextHasPrev(t *testing.T) {
	tests := []struct {
		name     string
		headers  map[string]string
		wantNext bool
		wantPrev bool
	}{
		{
			name:     "middle page",
			headers:  map[string]string{"X-Paging-NextKey": "n", "X-Paging-PrevKey": "p"},
			wantNext: true,
			wantPrev: true,
		},
		{
			name:     "first page",
			headers:  map[string]string{"X-Paging-NextKey": "n"},
			wantNext: true,
		},
		{
			name:     "last page via link",
			headers:  map[string]string{"Link": `<https://s/f?page=p1>; rel="prev"`},
			wantPrev: true,
		},
		{
			name: "single page",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			p := ParsePage(h)
			if got := p.HasNext(); got != tt.wantNext {
				t.Errorf("HasNext() = %v, want %v", got, tt.wantNext)
			}
			if got := p.HasPrev(); got != tt.wantPrev {
				t.Errorf("HasPrev() = %v, want %v", got, tt.wantPrev)
			}
		})
	}
}

// TestQueryCursorRoundTrip verifies a cursor emitted by Encode survives a
// trip through a Link header back out of NextCursor.
func TestQueryCursorRoundTrip(t *testing.T) {
	opts := FilterOptions{Page: "abc123"}
	if got := opts.Encode(); got != "?page=abc123" {
		t.Fatalf("Encode() = %q, want %q", got, "?page=abc123")
	}

	h := http.Header{}
	h.Set("Link", `<https://store/flows?page=abc123>; rel="next"`)
	if got := ParsePage(h).NextCursor(); got != "abc123" {
		t.Errorf("NextCursor() = %q, want %q", got, "abc123")
	}
}
