package paging

import "net/http"

// Page bundles everything pagination-related from a single list response:
// the parsed Link relations and the X-Paging-* metadata. It is a short-lived
// value, rebuilt from scratch for every response; navigating re-fetches and
// re-parses rather than mutating state.
type Page struct {
	Links []Link
	Meta  Meta
}

// ParsePage parses a response's headers into a Page.
func ParsePage(h http.Header) Page {
	return Page{
		Links: ParseLinkHeader(h.Get(headerLink)),
		Meta:  ParseHeaders(h),
	}
}

// cursor resolves the page cursor for a relation. The first Link entry with
// a matching rel and a page parameter wins; otherwise the X-Paging-*Key
// fallback applies. Stores are not always consistent between the two header
// families, so the Link header is treated as authoritative.
func (p Page) cursor(rel, fallback string) string {
	for _, l := range p.Links {
		if l.Rel == rel {
			if v, ok := l.Params["page"]; ok {
				return v
			}
			break
		}
	}
	return fallback
}

// NextCursor returns the cursor for the next page, or "" if there is none.
func (p Page) NextCursor() string { return p.cursor(RelNext, p.Meta.NextKey) }

// PrevCursor returns the cursor for the previous page, or "" if there is none.
func (p Page) PrevCursor() string { return p.cursor(RelPrev, p.Meta.PrevKey) }

// FirstCursor returns the cursor for the first page, or "" if there is none.
func (p Page) FirstCursor() string { return p.cursor(RelFirst, p.Meta.FirstKey) }

// LastCursor returns the cursor for the last page, or "" if there is none.
func (p Page) LastCursor() string { return p.cursor(RelLast, p.Meta.LastKey) }

// HasNext reports whether a next page cursor is available.
func (p Page) HasNext() bool { return p.NextCursor() != "" }

// HasPrev reports whether a previous page cursor is available.
func (p Page) HasPrev() bool { return p.PrevCursor() != "" }
