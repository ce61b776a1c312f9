package csvcat

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// Entry is a snapshot of one directory entry taken from a single listing.
type Entry struct {
	Name  string `json:"name" yaml:"name"`
	IsDir bool   `json:"is_dir" yaml:"is_dir"`
}

// MatchPolicy selects how a header marker is compared against entry names.
type MatchPolicy string

const (
	// MatchSuffix treats a name as a header when it ends with the marker.
	MatchSuffix MatchPolicy = "suffix"
	// MatchContains treats a name as a header when it contains the marker anywhere.
	MatchContains MatchPolicy = "contains"
)

// IsValid returns true if the MatchPolicy is a defined value.
func (p MatchPolicy) IsValid() bool {
	return p == MatchSuffix || p == MatchContains
}

// ParseMatchPolicy converts user input into a MatchPolicy.
// Matching is case-insensitive and ignores surrounding whitespace.
func ParseMatchPolicy(s string) (MatchPolicy, error) {
	p := MatchPolicy(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown match policy %q (want suffix or contains): %w", s, ErrInvalidConfig)
	}
	return p, nil
}

// DuplicatePolicy decides what happens when two headers yield the same prefix.
type DuplicatePolicy string

const (
	// DuplicatesKeep emits one group per header occurrence.
	DuplicatesKeep DuplicatePolicy = "keep"
	// DuplicatesMerge folds groups sharing a prefix into the first occurrence.
	DuplicatesMerge DuplicatePolicy = "merge"
)

// IsValid returns true if the DuplicatePolicy is a defined value.
func (p DuplicatePolicy) IsValid() bool {
	return p == DuplicatesKeep || p == DuplicatesMerge
}

// ParseDuplicatePolicy converts user input into a DuplicatePolicy.
func ParseDuplicatePolicy(s string) (DuplicatePolicy, error) {
	p := DuplicatePolicy(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown duplicate policy %q (want keep or merge): %w", s, ErrInvalidConfig)
	}
	return p, nil
}

// MalformedRowPolicy decides how the column reader reacts to an undecodable row.
type MalformedRowPolicy string

const (
	// MalformedAbort fails the whole read on the first malformed row.
	MalformedAbort MalformedRowPolicy = "abort"
	// MalformedSkip drops malformed rows and keeps reading.
	MalformedSkip MalformedRowPolicy = "skip"
)

// IsValid returns true if the MalformedRowPolicy is a defined value.
func (p MalformedRowPolicy) IsValid() bool {
	return p == MalformedAbort || p == MalformedSkip
}

// ParseMalformedRowPolicy converts user input into a MalformedRowPolicy.
func ParseMalformedRowPolicy(s string) (MalformedRowPolicy, error) {
	p := MalformedRowPolicy(strings.ToLower(strings.TrimSpace(s)))
	if !p.IsValid() {
		return "", fmt.Errorf("unknown malformed row policy %q (want abort or skip): %w", s, ErrInvalidConfig)
	}
	return p, nil
}

// HeaderMarker identifies header files. Exactly one marker is active per scan.
type HeaderMarker struct {
	// Pattern is the marker text, e.g. "_Header.txt".
	Pattern string

	// Policy selects suffix or substring matching of Pattern.
	Policy MatchPolicy
}

// DefaultMarker returns the built-in marker: suffix "_Header.txt".
func DefaultMarker() HeaderMarker {
	return HeaderMarker{Pattern: DefaultHeaderMarker, Policy: MatchSuffix}
}

// Validate checks that the marker can classify names unambiguously.
func (m HeaderMarker) Validate() error {
	if m.Pattern == "" {
		return fmt.Errorf("header marker pattern is empty: %w", ErrInvalidConfig)
	}
	if !m.Policy.IsValid() {
		return fmt.Errorf("unknown match policy %q: %w", m.Policy, ErrInvalidConfig)
	}
	return nil
}

// FileGroup is one sample: its prefix, the header(s) that named it, and the
// data files whose names start with the prefix.
type FileGroup struct {
	// ID is a deterministic identity derived from the directory and prefix.
	ID uuid.UUID `json:"id" yaml:"id"`

	// Prefix is the sample identifier derived from the header name.
	Prefix string `json:"prefix" yaml:"prefix"`

	// Headers lists the header file names that produced this group.
	// It has one element unless duplicate prefixes were merged.
	Headers []string `json:"headers" yaml:"headers"`

	// Files lists matching data file names in listing order. Never contains a header.
	Files []string `json:"files" yaml:"files"`
}

// ColumnRow is the per-row outcome of a column read: either a value or a parse error.
type ColumnRow struct {
	// Line is the 1-based line on which the record starts.
	Line int

	// Value is the cell at the requested index. Empty when Err is set.
	Value string

	// Err is non-nil when the row could not be decoded.
	Err error
}
