package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "csvcat",
	Short: "Group sample data files by header and extract CSV columns",
	Long: `csvcat organises a flat directory of sample files.

Every file whose name carries the header marker (default suffix
"_Header.txt") names a sample: the text before the marker is the sample
prefix, and every other entry whose name starts with that prefix belongs
to the sample's group. csvcat can also pull a single column out of a
delimited data file.

Configuration is read from csvcat.yaml in the working directory (or
--config), then CSVCAT_* environment variables, then command-line flags.

Exit Codes:
  0  - Success
  1  - General error
  2  - CLI usage error (invalid arguments or flags)
  3  - Panic or unexpected system error
  10 - Invalid configuration
  11 - Directory not found
  12 - Directory not readable
  13 - File not found
  14 - Malformed row in a data file`,
	SilenceUsage: true,
}

// Execute runs the root command
func Execute() error {
	if len(os.Args) > 1 && os.Args[1] == "--version" {
		printVersionInfo(os.Stdout)
		return nil
	}
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose output for all commands")
	rootCmd.PersistentFlags().String("config", "", "Path to a csvcat.yaml file (default: ./csvcat.yaml if present)")
}

// getVerboseFlag safely retrieves the verbose flag value
func getVerboseFlag(cmd *cobra.Command) bool {
	verbose, err := cmd.Flags().GetBool("verbose")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Failed to get verbose flag: %v\n", err)
		return false
	}
	return verbose
}

func getConfigFlag(cmd *cobra.Command) string {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return ""
	}
	return path
}
