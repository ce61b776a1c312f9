package marker

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JichouP/csvcat/pkg/csvcat"
)

func TestNew_RejectsInvalidMarker(t *testing.T) {
	_, err := New(csvcat.HeaderMarker{Pattern: "", Policy: csvcat.MatchSuffix})
	require.True(t, errors.Is(err, csvcat.ErrInvalidConfig))

	_, err = New(csvcat.HeaderMarker{Pattern: "Header", Policy: "glob"})
	require.True(t, errors.Is(err, csvcat.ErrInvalidConfig))
}

func TestMatcher_SuffixPolicy(t *testing.T) {
	m := Default()

	tests := []struct {
		name       string
		isHeader   bool
		wantPrefix string
	}{
		{"sample_Header.txt", true, "sample"},
		{"a_Header.txt", true, "a"},
		{"_Header.txt", true, ""},
		{"a_1.csv", false, "a_1.csv"},
		{"a_header.txt", false, "a_header.txt"},
		{"a_Header.txt.bak", false, "a_Header.txt.bak"},
		{"x_Header.txt_y_Header.txt", true, "x_Header.txt_y"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isHeader, m.IsHeader(tt.name))
			assert.Equal(t, tt.wantPrefix, m.Prefix(tt.name))
		})
	}
}

func TestMatcher_ContainsPolicy(t *testing.T) {
	m, err := New(csvcat.HeaderMarker{Pattern: "Header", Policy: csvcat.MatchContains})
	require.NoError(t, err)

	tests := []struct {
		name       string
		isHeader   bool
		wantPrefix string
	}{
		{"sample_Header.txt", true, "sample_"},
		{"Header.md", true, ""},
		{"run2_Header_v2.txt", true, "run2_"},
		{"run2_1.csv", false, "run2_1.csv"},
		{"run2_header.txt", false, "run2_header.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.isHeader, m.IsHeader(tt.name))
			assert.Equal(t, tt.wantPrefix, m.Prefix(tt.name))
		})
	}
}

func TestMatcher_Marker(t *testing.T) {
	want := csvcat.HeaderMarker{Pattern: ".hdr", Policy: csvcat.MatchSuffix}
	m, err := New(want)
	require.NoError(t, err)
	assert.Equal(t, want, m.Marker())
}
