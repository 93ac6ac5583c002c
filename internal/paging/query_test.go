package paging

import "testing"

// TestEncode verifies parameter emission, ordering, and escaping.
func TestEncode(t *testing.T) {
	tests := []struct {
		name string
		opts FilterOptions
		want string
	}{
		{
			name: "empty options",
			opts: FilterOptions{},
			want: "",
		},
		{
			name: "cursor only",
			opts: FilterOptions{Page: "abc123"},
			want: "?page=abc123",
		},
		{
			name: "cursor and limit",
			opts: FilterOptions{Page: "abc", Limit: 25},
			want: "?page=abc&limit=25",
		},
		{
			name: "zero limit omitted",
			opts: FilterOptions{Page: "abc", Limit: 0},
			want: "?page=abc",
		},
		{
			name: "timerange escaped",
			opts: FilterOptions{Timerange: "[0:0_10:0)"},
			want: "?timerange=%5B0%3A0_10%3A0%29",
		},
		{
			name: "format and codec",
			opts: FilterOptions{Format: "urn:x-nmos:format:video", Codec: "video/h264"},
			want: "?format=urn%3Ax-nmos%3Aformat%3Avideo&codec=video%2Fh264",
		},
		{
			name: "tags and tag existence",
			opts: FilterOptions{
				Tags:      map[string]string{"category": "news"},
				TagExists: map[string]bool{"archived": false},
			},
			want: "?tag.category=news&tag_exists.archived=false",
		},
		{
			name: "tag exists true is a bare literal",
			opts: FilterOptions{TagExists: map[string]bool{"flagged": true}},
			want: "?tag_exists.flagged=true",
		},
		{
			name: "map keys sorted",
			opts: FilterOptions{Tags: map[string]string{"b": "2", "a": "1", "c": "3"}},
			want: "?tag.a=1&tag.b=2&tag.c=3",
		},
		{
			name: "custom passthrough",
			opts: FilterOptions{Custom: map[string]string{"source_id": "0e8f", "frame_width": "1920"}},
			want: "?frame_width=1920&source_id=0e8f",
		},
		{
			name: "full ordering",
			opts: FilterOptions{
				Page:      "cur",
				Limit:     10,
				Timerange: "t",
				Format:    "f",
				Codec:     "c",
				Tags:      map[string]string{"k": "v"},
				TagExists: map[string]bool{"e": true},
				Custom:    map[string]string{"z": "9"},
			},
			want: "?page=cur&limit=10&timerange=t&format=f&codec=c&tag.k=v&tag_exists.e=true&z=9",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.opts.Encode(); got != tt.want {
				t.Errorf("Encode() = %q, want %q", got, tt.want)
			}
		})
	}
}

// TestEncodeDeterministic verifies repeated encoding of the same options
// yields the same string.
func TestEncodeDeterministic(t *testing.T) {
	opts := FilterOptions{
		Page:   "abc",
		Tags:   map[string]string{"x": "1", "y": "2", "z": "3"},
		Custom: map[string]string{"m": "1", "n": "2"},
	}
	first := opts.Encode()
	for i := 0; i < 20; i++ {
		if got := opts.Encode(); got != first {
			t.Fatalf("Encode() = %q on iteration %d, want %q", got, i, first)
		}
	}
}

// TestWithPage verifies cursor replacement leaves the receiver untouched.
func TestWithPage(t *testing.T) {
	opts := FilterOptions{Page: "old", Limit: 5}
	next := opts.WithPage("new")

	if next.Page != "new" || next.Limit != 5 {
		t.Errorf("WithPage() = %+v", next)
	}
	if opts.Page != "old" {
		t.Errorf("receiver mutated: %+v", opts)
	}
}
