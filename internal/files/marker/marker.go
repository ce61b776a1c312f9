// Package marker classifies directory entry names against the active header
// marker and derives sample prefixes from header names.
package marker

import (
	"strings"

	"github.com/JichouP/csvcat/pkg/csvcat"
)

// Matcher applies one csvcat.HeaderMarker. The zero value is not usable; build one with New.
type Matcher struct {
	marker csvcat.HeaderMarker
}

// New validates m and returns a Matcher for it.
func New(m csvcat.HeaderMarker) (Matcher, error) {
	if err := m.Validate(); err != nil {
		return Matcher{}, err
	}
	return Matcher{marker: m}, nil
}

// Default returns the Matcher for the "_Header.txt" suffix convention.
func Default() Matcher {
	return Matcher{marker: csvcat.DefaultMarker()}
}

// Marker returns the marker this Matcher applies.
func (m Matcher) Marker() csvcat.HeaderMarker {
	return m.marker
}

// IsHeader reports whether name is a header file under the active policy.
// Comparison is case-sensitive.
func (m Matcher) IsHeader(name string) bool {
	switch m.marker.Policy {
	case csvcat.MatchContains:
		return strings.Contains(name, m.marker.Pattern)
	default:
		return strings.HasSuffix(name, m.marker.Pattern)
	}
}

// Prefix derives the sample prefix from a header name.
//
// Under the suffix policy only a trailing marker is removed, so
// "run_Header.txt_Header.txt" yields "run_Header.txt". Under the contains
// policy the prefix is everything before the first occurrence of the marker.
// A name that does not carry the marker is returned unchanged.
func (m Matcher) Prefix(name string) string {
	switch m.marker.Policy {
	case csvcat.MatchContains:
		if i := strings.Index(name, m.marker.Pattern); i >= 0 {
			return name[:i]
		}
		return name
	default:
		return strings.TrimSuffix(name, m.marker.Pattern)
	}
}
