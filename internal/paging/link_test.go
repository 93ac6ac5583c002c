package paging

import (
	"reflect"
	"testing"
)

// TestParseLinkHeaderRelations verifies all four relations come back in
// header order.
func TestParseLinkHeaderRelations(t *testing.T) {
	raw := `<https://store/flows?page=n1>; rel="next", ` +
		`<https://store/flows?page=p1>; rel="prev", ` +
		`<https://store/flows?page=f1>; rel="first", ` +
		`<https://store/flows?page=l1>; rel="last"`

	links := ParseLinkHeader(raw)
	if len(links) != 4 {
		t.Fatalf("ParseLinkHeader() returned %d links, want 4", len(links))
	}

	wantRels := []string{"next", "prev", "first", "last"}
	wantPages := []string{"n1", "p1", "f1", "l1"}
	for i, l := range links {
		if l.Rel != wantRels[i] {
			t.Errorf("links[%d].Rel = %q, want %q", i, l.Rel, wantRels[i])
		}
		if l.Params["page"] != wantPages[i] {
			t.Errorf("links[%d].Params[page] = %q, want %q", i, l.Params["page"], wantPages[i])
		}
	}
}

// TestParseLinkHeaderMalformed verifies broken fragments are skipped without
// affecting valid ones in the same header.
func TestParseLinkHeaderMalformed(t *testing.T) {
	tests := []struct {
		name     string
		raw      string
		wantLen  int
		wantRels []string
	}{
		{
			name:    "empty header",
			raw:     "",
			wantLen: 0,
		},
		{
			name:    "no angle brackets",
			raw:     `https://store/flows; rel="next"`,
			wantLen: 0,
		},
		{
			name:    "missing rel",
			raw:     `<https://store/flows?page=abc>; title="flows"`,
			wantLen: 0,
		},
		{
			name:    "empty url",
			raw:     `<>; rel="next"`,
			wantLen: 0,
		},
		{
			name:     "garbage between valid fragments",
			raw:      `<https://a/b?page=1>; rel="next", garbage here, <https://a/b?page=2>; rel="prev"`,
			wantLen:  2,
			wantRels: []string{"next", "prev"},
		},
		{
			name:     "rel with no url does not eat the next fragment",
			raw:      `; rel="next", <https://a/b?page=2>; rel="prev"`,
			wantLen:  1,
			wantRels: []string{"prev"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			links := ParseLinkHeader(tt.raw)
			if len(links) != tt.wantLen {
				t.Fatalf("ParseLinkHeader(%q) returned %d links, want %d", tt.raw, len(links), tt.wantLen)
			}
			for i, rel := range tt.wantRels {
				if links[i].Rel != rel {
					t.Errorf("links[%d].Rel = %q, want %q", i, links[i].Rel, rel)
				}
			}
		})
	}
}

// TestParseLinkHeaderParams verifies fragment parameters and URL query
// parameters both land in Params, with URL values winning on conflict.
func TestParseLinkHeaderParams(t *testing.T) {
	raw := `<https://store/flows?page=fromurl&limit=25&codec=video/h264>; rel="next"; page="fromheader"; title="next page"`

	links := ParseLinkHeader(raw)
	if len(links) != 1 {
		t.Fatalf("ParseLinkHeader() returned %d links, want 1", len(links))
	}

	want := map[string]string{
		"page":  "fromurl", // URL wins over the fragment parameter
		"limit": "25",
		"codec": "video/h264",
		"title": "next page",
	}
	if !reflect.DeepEqual(links[0].Params, want) {
		t.Errorf("Params = %v, want %v", links[0].Params, want)
	}
}

// TestParseLinkHeaderUnparsableURL verifies a target that url.Parse rejects
// still yields an entry, just without lifted query parameters.
func TestParseLinkHeaderUnparsableURL(t *testing.T) {
	raw := `<http://store/%zz?page=abc>; rel="next"; label="cam1"`

	links := ParseLinkHeader(raw)
	if len(links) != 1 {
		t.Fatalf("ParseLinkHeader() returned %d links, want 1", len(links))
	}
	if links[0].Rel != "next" {
		t.Errorf("Rel = %q, want %q", links[0].Rel, "next")
	}
	if _, ok := links[0].Params["page"]; ok {
		t.Errorf("Params[page] lifted from unparsable URL: %v", links[0].Params)
	}
	if links[0].Params["label"] != "cam1" {
		t.Errorf("Params[label] = %q, want %q", links[0].Params["label"], "cam1")
	}
}

// TestParseLinkHeaderIdempotent verifies parsing the same header twice
// yields structurally equal results.
func TestParseLinkHeaderIdempotent(t *testing.T) {
	raw := `<https://store/sources?page=abc&timerange=%5B0%3A0_10%3A0%29>; rel="next", <https://store/sources?page=xyz>; rel="prev"`

	first := ParseLinkHeader(raw)
	second := ParseLinkHeader(raw)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated parse differs:\nfirst:  %v\nsecond: %v", first, second)
	}
}
