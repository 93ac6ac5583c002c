package paging

import (
	"net/http"
	"testing"
)

// TestParseHeadersFull verifies all X-Paging-* headers land in Meta.
func TestParseHeadersFull(t *testing.T) {
	h := http.Header{}
	h.Set("Link", `<https://store/flows?page=abc>; rel="next"`)
	h.Set("X-Paging-Limit", "25")
	h.Set("X-Paging-NextKey", "nk")
	h.Set("X-Paging-PrevKey", "pk")
	h.Set("X-Paging-FirstKey", "fk")
	h.Set("X-Paging-LastKey", "lk")
	h.Set("X-Paging-Timerange", "[0:0_10:0)")
	h.Set("X-Paging-Count", "142")
	h.Set("X-Paging-ReverseOrder", "true")

	m := ParseHeaders(h)

	if m.Link == "" {
		t.Error("Link not retained")
	}
	if m.Limit == nil || *m.Limit != 25 {
		t.Errorf("Limit = %v, want 25", m.Limit)
	}
	if m.NextKey != "nk" || m.PrevKey != "pk" || m.FirstKey != "fk" || m.LastKey != "lk" {
		t.Errorf("cursor keys = %q %q %q %q", m.NextKey, m.PrevKey, m.FirstKey, m.LastKey)
	}
	if m.Timerange != "[0:0_10:0)" {
		t.Errorf("Timerange = %q", m.Timerange)
	}
	if m.Count == nil || *m.Count != 142 {
		t.Errorf("Count = %v, want 142", m.Count)
	}
	if !m.ReverseOrder {
		t.Error("ReverseOrder = false, want true")
	}
}

// TestParseHeadersEmpty verifies an empty header set yields only the
// ReverseOrder default.
func TestParseHeadersEmpty(t *testing.T) {
	m := ParseHeaders(http.Header{})

	if m.Link != "" || m.NextKey != "" || m.PrevKey != "" || m.FirstKey != "" ||
		m.LastKey != "" || m.Timerange != "" {
		t.Errorf("string fields not empty: %+v", m)
	}
	if m.Limit != nil {
		t.Errorf("Limit = %v, want nil", m.Limit)
	}
	if m.Count != nil {
		t.Errorf("Count = %v, want nil", m.Count)
	}
	if m.ReverseOrder {
		t.Error("ReverseOrder = true, want false")
	}
}

// TestParseHeadersMalformedNumbers verifies garbage numeric headers are
// treated as absent, never as zero.
func TestParseHeadersMalformedNumbers(t *testing.T) {
	tests := []struct {
		name  string
		limit string
		count string
	}{
		{"non-numeric", "not-a-number", "also-not"},
		{"negative", "-1", "-42"},
		{"float", "2.5", "1e3"},
		{"trailing junk", "25x", "142 items"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			h.Set("X-Paging-Limit", tt.limit)
			h.Set("X-Paging-Count", tt.count)

			m := ParseHeaders(h)
			if m.Limit != nil {
				t.Errorf("Limit = %d, want nil for %q", *m.Limit, tt.limit)
			}
			if m.Count != nil {
				t.Errorf("Count = %d, want nil for %q", *m.Count, tt.count)
			}
		})
	}
}

// TestParseHeadersReverseOrder verifies only the literal "true" enables
// reverse order.
func TestParseHeadersReverseOrder(t *testing.T) {
	tests := []struct {
		value string
		want  bool
	}{
		{"true", true},
		{"TRUE", false},
		{"True", false},
		{"1", false},
		{"false", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run("value="+tt.value, func(t *testing.T) {
			h := http.Header{}
			if tt.value != "" {
				h.Set("X-Paging-ReverseOrder", tt.value)
			}
			if got := ParseHeaders(h).ReverseOrder; got != tt.want {
				t.Errorf("ReverseOrder = %v for %q, want %v", got, tt.value, tt.want)
			}
		})
	}
}

// TestParseHeadersCaseInsensitive verifies header names are matched without
// regard to case, as HTTP requires.
func TestParseHeadersCaseInsensitive(t *testing.T) {
	h := http.Header{}
	h.Set("x-paging-limit", "10")
	h.Set("X-PAGING-NEXTKEY", "abc")

	m := ParseHeaders(h)
	if m.Limit == nil || *m.Limit != 10 {
		t.Errorf("Limit = %v, want 10", m.Limit)
	}
	if m.NextKey != "abc" {
		t.Errorf("NextKey = %q, want %q", m.NextKey, "abc")
	}
}
