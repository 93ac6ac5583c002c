// Package paging implements the cursor pagination protocol spoken by TAMS
// media stores: RFC 5988 style Link headers with embedded page cursors, the
// X-Paging-* response header family, and the query string format for list
// requests. Everything here is a pure function over strings and headers; the
// HTTP calls live in internal/api.
package paging

import (
	"net/url"
	"regexp"
)

// Relation names used by TAMS stores in Link headers.
const (
	RelNext  = "next"
	RelPrev  = "prev"
	RelFirst = "first"
	RelLast  = "last"
)

// linkRegex matches one Link header fragment: <url> followed by at least one
// ; key="value" parameter. Example: <https://store/flows?page=abc>; rel="next"
var linkRegex = regexp.MustCompile(`<([^>]*)>((?:\s*;\s*[a-zA-Z0-9_.-]+\s*=\s*"[^"]*")+)`)

// paramRegex extracts the individual ; key="value" parameters of a fragment
var paramRegex = regexp.MustCompile(`;\s*([a-zA-Z0-9_.-]+)\s*=\s*"([^"]*)"`)

// liftedParams are the query parameter names copied from a link's target URL
// into its params map. Stores differ on whether the cursor lives in a header
// parameter or in the URL itself; lifting both into one map lets callers not
// care. URL values win when the same key appears in both places.
var liftedParams = []string{"page", "limit", "timerange", "format", "codec", "label"}

// Link is one parsed relation from a Link header.
type Link struct {
	URL    string
	Rel    string
	Params map[string]string
}

// ParseLinkHeader parses a raw Link header value into its relations, in
// header order. Fragments without a <url> part, without a rel parameter, or
// otherwise malformed are skipped. Never returns an error; a header we can't
// make sense of just yields fewer entries.
func ParseLinkHeader(raw string) []Link {
	if raw == "" {
		return nil
	}

	var links []Link
	for _, m := range linkRegex.FindAllStringSubmatch(raw, -1) {
		target := m[1]
		if target == "" {
			continue
		}

		params := make(map[string]string)
		for _, pm := range paramRegex.FindAllStringSubmatch(m[2], -1) {
			params[pm[1]] = pm[2]
		}

		rel := params["rel"]
		if rel == "" {
			continue
		}
		delete(params, "rel")

		// Lift recognized query parameters out of the target URL.
		// A malformed URL only skips this step; the entry is still kept.
		if u, err := url.Parse(target); err == nil {
			q := u.Query()
			for _, name := range liftedParams {
				if q.Has(name) {
					params[name] = q.Get(name)
				}
			}
		}

		links = append(links, Link{URL: target, Rel: rel, Params: params})
	}

	return links
}
