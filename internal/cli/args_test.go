package cli

import (
	"errors"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/JichouP/csvcat/pkg/csvcat"
)

func TestRequireDirectory(t *testing.T) {
	cmd := &cobra.Command{
		Use: "groups <dir>",
	}

	t.Run("returns error when no args", func(t *testing.T) {
		err := RequireDirectory(cmd, []string{})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <dir>") {
			t.Errorf("expected error to contain 'missing required argument: <dir>', got: %s", err.Error())
		}
		if !strings.Contains(err.Error(), "Example:") {
			t.Errorf("expected error to contain 'Example:', got: %s", err.Error())
		}
		if code := csvcat.ExitCodeForError(err); code != csvcat.ExitUsageError {
			t.Errorf("expected usage exit code, got %d", code)
		}
	})

	t.Run("returns nil when arg provided", func(t *testing.T) {
		err := RequireDirectory(cmd, []string{"./samples"})
		if err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireDirectory(cmd, []string{"a", "b"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "accepts 1 arg") {
			t.Errorf("expected error to contain 'accepts 1 arg', got: %s", err.Error())
		}
	})
}

func TestRequireFileAndIndex(t *testing.T) {
	cmd := &cobra.Command{
		Use: "column <file> <index>",
	}

	t.Run("returns error when index missing", func(t *testing.T) {
		err := RequireFileAndIndex(cmd, []string{"a.csv"})
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !strings.Contains(err.Error(), "missing required argument: <file> <index>") {
			t.Errorf("unexpected error: %s", err.Error())
		}
	})

	t.Run("returns nil for two args", func(t *testing.T) {
		if err := RequireFileAndIndex(cmd, []string{"a.csv", "0"}); err != nil {
			t.Errorf("expected nil, got: %v", err)
		}
	})

	t.Run("returns error when too many args", func(t *testing.T) {
		err := RequireFileAndIndex(cmd, []string{"a.csv", "0", "1"})
		if err == nil || !strings.Contains(err.Error(), "accepts 2 arg") {
			t.Errorf("expected 'accepts 2 arg' error, got: %v", err)
		}
	})
}

func TestParseColumnIndex(t *testing.T) {
	tests := []struct {
		in       string
		want     int
		wantCode int
	}{
		{"0", 0, csvcat.ExitSuccess},
		{"12", 12, csvcat.ExitSuccess},
		{"-1", 0, csvcat.ExitUsageError},
		{"two", 0, csvcat.ExitUsageError},
		{"", 0, csvcat.ExitUsageError},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseColumnIndex(tt.in)
			if code := csvcat.ExitCodeForError(err); code != tt.wantCode {
				t.Errorf("parseColumnIndex(%q) exit code = %d, want %d (err: %v)", tt.in, code, tt.wantCode, err)
			}
			if err == nil && got != tt.want {
				t.Errorf("parseColumnIndex(%q) = %d, want %d", tt.in, got, tt.want)
			}
		})
	}

	_, err := parseColumnIndex("-3")
	if !errors.Is(err, csvcat.ErrInvalidColumn) {
		t.Errorf("expected ErrInvalidColumn for negative index, got %v", err)
	}
}
