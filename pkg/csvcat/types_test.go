package csvcat_test

import (
	"errors"
	"testing"

	"github.com/JichouP/csvcat/pkg/csvcat"
)

func TestParseMatchPolicy(t *testing.T) {
	tests := []struct {
		input   string
		want    csvcat.MatchPolicy
		wantErr bool
	}{
		{"suffix", csvcat.MatchSuffix, false},
		{"contains", csvcat.MatchContains, false},
		{" Suffix ", csvcat.MatchSuffix, false},
		{"CONTAINS", csvcat.MatchContains, false},
		{"prefix", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := csvcat.ParseMatchPolicy(tt.input)
			if tt.wantErr {
				if !errors.Is(err, csvcat.ErrInvalidConfig) {
					t.Errorf("ParseMatchPolicy(%q) error = %v, want ErrInvalidConfig", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseMatchPolicy(%q) unexpected error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseMatchPolicy(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestParseDuplicatePolicy(t *testing.T) {
	for _, in := range []string{"keep", "merge", "MERGE"} {
		if _, err := csvcat.ParseDuplicatePolicy(in); err != nil {
			t.Errorf("ParseDuplicatePolicy(%q) unexpected error: %v", in, err)
		}
	}
	if _, err := csvcat.ParseDuplicatePolicy("dedupe"); !errors.Is(err, csvcat.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestParseMalformedRowPolicy(t *testing.T) {
	for _, in := range []string{"abort", "skip", "Skip"} {
		if _, err := csvcat.ParseMalformedRowPolicy(in); err != nil {
			t.Errorf("ParseMalformedRowPolicy(%q) unexpected error: %v", in, err)
		}
	}
	if _, err := csvcat.ParseMalformedRowPolicy("ignore"); !errors.Is(err, csvcat.ErrInvalidConfig) {
		t.Errorf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestHeaderMarker_Validate(t *testing.T) {
	tests := []struct {
		name    string
		marker  csvcat.HeaderMarker
		wantErr bool
	}{
		{"default", csvcat.DefaultMarker(), false},
		{"contains", csvcat.HeaderMarker{Pattern: "Header", Policy: csvcat.MatchContains}, false},
		{"empty pattern", csvcat.HeaderMarker{Pattern: "", Policy: csvcat.MatchSuffix}, true},
		{"unknown policy", csvcat.HeaderMarker{Pattern: "_Header.txt", Policy: "regex"}, true},
		{"zero value", csvcat.HeaderMarker{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.marker.Validate()
			if tt.wantErr && !errors.Is(err, csvcat.ErrInvalidConfig) {
				t.Errorf("Validate() error = %v, want ErrInvalidConfig", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("Validate() unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultMarker(t *testing.T) {
	m := csvcat.DefaultMarker()
	if m.Pattern != "_Header.txt" {
		t.Errorf("Pattern = %q, want _Header.txt", m.Pattern)
	}
	if m.Policy != csvcat.MatchSuffix {
		t.Errorf("Policy = %q, want suffix", m.Policy)
	}
}
