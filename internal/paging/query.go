package paging

import (
	"fmt"
	"net/url"
	"sort"
	"strconv"
	"strings"
)

// FilterOptions describes the query parameters of a paginated list request.
// The zero value means "no filtering, store defaults". Custom carries
// store-specific parameters verbatim; callers stringify values themselves.
type FilterOptions struct {
	Page      string            // resume cursor from a previous response
	Limit     int               // requested page size, 0 = store default
	Timerange string            // TAMS timerange expression, e.g. [0:0_10:0)
	Format    string
	Codec     string
	Tags      map[string]string // emitted as tag.<key>=<value>
	TagExists map[string]bool   // emitted as tag_exists.<key>=true|false
	Custom    map[string]string // emitted as <key>=<value>
}

// WithPage returns a copy of the options with the resume cursor replaced.
// Tag and custom maps are shared, not copied; options are treated as
// immutable once built.
func (o FilterOptions) WithPage(cursor string) FilterOptions {
	o.Page = cursor
	return o
}

// Encode serializes the options as a query string with a leading "?", or ""
// when nothing is set. Parameter order is fixed (page, limit, timerange,
// format, codec, tags, tag_exists, custom) and map keys are emitted sorted,
// so the same options always produce the same string. Values are percent
// encoded except the tag_exists booleans, which are literal true/false.
func (o FilterOptions) Encode() string {
	var parts []string

	if o.Page != "" {
		parts = append(parts, "page="+url.QueryEscape(o.Page))
	}
	if o.Limit > 0 {
		parts = append(parts, "limit="+strconv.Itoa(o.Limit))
	}
	if o.Timerange != "" {
		parts = append(parts, "timerange="+url.QueryEscape(o.Timerange))
	}
	if o.Format != "" {
		parts = append(parts, "format="+url.QueryEscape(o.Format))
	}
	if o.Codec != "" {
		parts = append(parts, "codec="+url.QueryEscape(o.Codec))
	}
	for _, k := range sortedKeys(o.Tags) {
		parts = append(parts, "tag."+k+"="+url.QueryEscape(o.Tags[k]))
	}
	for _, k := range sortedKeys(o.TagExists) {
		parts = append(parts, fmt.Sprintf("tag_exists.%s=%t", k, o.TagExists[k]))
	}
	for _, k := range sortedKeys(o.Custom) {
		parts = append(parts, k+"="+url.QueryEscape(o.Custom[k]))
	}

	if len(parts) == 0 {
		return ""
	}
	return "?" + strings.Join(parts, "&")
}

func sortedKeys[V any](m map[string]V) []string {
	if len(m) == 0 {
		return nil
	}
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
