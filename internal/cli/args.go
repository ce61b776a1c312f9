package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/JichouP/csvcat/pkg/csvcat"
)

// RequireDirectory validates that exactly one <dir> argument is provided.
// Returns a helpful error message with usage and examples if missing or too many.
func RequireDirectory(cmd *cobra.Command, args []string) error {
	if len(args) < 1 {
		return fmt.Errorf(`missing required argument: <dir>

Usage: %s

Example:
  %s ./samples`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 1 {
		return fmt.Errorf("accepts 1 arg(s), received %d", len(args))
	}
	return nil
}

// RequireFileAndIndex validates the <file> <index> argument pair.
func RequireFileAndIndex(cmd *cobra.Command, args []string) error {
	if len(args) < 2 {
		return fmt.Errorf(`missing required argument: <file> <index>

Usage: %s

Example:
  %s ./samples/a_1.csv 2`, cmd.UseLine(), cmd.CommandPath())
	}
	if len(args) > 2 {
		return fmt.Errorf("accepts 2 arg(s), received %d", len(args))
	}
	return nil
}

// parseColumnIndex converts the <index> argument. Negative values are
// reported as csvcat.ErrInvalidColumn; non-numbers as a usage error.
func parseColumnIndex(s string) (int, error) {
	index, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("invalid argument %q for <index>: must be a non-negative integer", s)
	}
	if index < 0 {
		return 0, fmt.Errorf("column index %d is negative: %w", index, csvcat.ErrInvalidColumn)
	}
	return index, nil
}
