package paging

import (
	"net/http"
	"strconv"
)

// Pagination response headers emitted by TAMS stores alongside Link.
const (
	headerLink         = "Link"
	headerLimit        = "X-Paging-Limit"
	headerNextKey      = "X-Paging-NextKey"
	headerPrevKey      = "X-Paging-PrevKey"
	headerFirstKey     = "X-Paging-FirstKey"
	headerLastKey      = "X-Paging-LastKey"
	headerTimerange    = "X-Paging-Timerange"
	headerCount        = "X-Paging-Count"
	headerReverseOrder = "X-Paging-ReverseOrder"
)

// Meta is the normalized pagination metadata parsed from one response's
// headers. String fields are "" and integer fields nil when the header is
// missing or malformed; ReverseOrder is the only field with a guaranteed
// value (false unless the header is the literal "true").
type Meta struct {
	Link         string // raw Link header, kept for display and debugging
	Limit        *int
	NextKey      string
	PrevKey      string
	FirstKey     string
	LastKey      string
	Timerange    string
	Count        *int
	ReverseOrder bool
}

// ParseHeaders extracts pagination metadata from an HTTP response's headers.
// Header lookup is case-insensitive (http.Header canonicalizes names).
func ParseHeaders(h http.Header) Meta {
	return Meta{
		Link:         h.Get(headerLink),
		Limit:        parseNonNegative(h.Get(headerLimit)),
		NextKey:      h.Get(headerNextKey),
		PrevKey:      h.Get(headerPrevKey),
		FirstKey:     h.Get(headerFirstKey),
		LastKey:      h.Get(headerLastKey),
		Timerange:    h.Get(headerTimerange),
		Count:        parseNonNegative(h.Get(headerCount)),
		ReverseOrder: h.Get(headerReverseOrder) == "true",
	}
}

// parseNonNegative parses a non-negative integer header value.
// Missing, malformed, or negative values come back nil, never zero, so a
// garbage X-Paging-Limit can't render as "page size 0" in the UI.
func parseNonNegative(v string) *int {
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return nil
	}
	return &n
}
