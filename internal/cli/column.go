package cli

import (
	"github.com/spf13/cobra"
)

var columnCmd = &cobra.Command{
	Use:   "column <file> <index>",
	Short: "Print one column of a delimited data file",
	Long: `Print the value at a zero-based column index for every row of a delimited
file, in file order.

There is no header row. Rows with fewer fields than index+1 are skipped
silently. A leading UTF-8 byte-order mark is ignored.

A row that cannot be decoded (for example a stray quote) aborts the read with
exit code 14 and no output, unless --on-malformed skip is given, in which case
the row is dropped and reported with --verbose.

With --lines every row is printed with its line number, and malformed rows
are shown with their error instead of being applied to the policy.

Examples:
  # Third column of a comma-separated file
  csvcat column ./samples/a_1.csv 2

  # Semicolon-separated, ignoring lines starting with '#'
  csvcat column data.csv 0 --delimiter ';' --comment '#'

  # Tab-separated, as JSON
  csvcat column data.tsv 1 --delimiter tab -o json`,
	Args:              RequireFileAndIndex,
	ValidArgsFunction: completeDataFile,
	RunE:              runColumn,
}

var colFlags columnFlags

func init() {
	rootCmd.AddCommand(columnCmd)

	addFormatFlag(columnCmd, &colFlags.format)
	columnCmd.Flags().StringVarP(&colFlags.delimiter, "delimiter", "d", "", "Field delimiter, a single character or \"tab\" (default \",\")")
	columnCmd.Flags().StringVar(&colFlags.comment, "comment", "", "Ignore lines starting with this character")
	columnCmd.Flags().BoolVar(&colFlags.lazyQuotes, "lazy-quotes", false, "Tolerate quotes inside unquoted and quoted fields")
	columnCmd.Flags().BoolVar(&colFlags.trimLeadingSpace, "trim-leading-space", false, "Drop leading white space in each field")
	columnCmd.Flags().StringVar(&colFlags.onMalformed, "on-malformed", "", "Malformed rows: abort or skip (default abort)")
	columnCmd.Flags().BoolVar(&colFlags.lines, "lines", false, "Print every row with its line number, including malformed rows")
	_ = columnCmd.RegisterFlagCompletionFunc("on-malformed", completeMalformedPolicies)
}

func runColumn(cmd *cobra.Command, args []string) error {
	path := args[0]
	index, err := parseColumnIndex(args[1])
	if err != nil {
		return err
	}

	logger := newLogger(cmd)
	logger.Verbose("Reading column %d of %s", index, path)

	r, err := newRenderer(cmd, colFlags.format)
	if err != nil {
		return err
	}
	cfg, err := loadProjectConfig(cmd)
	if err != nil {
		return err
	}
	applyColumnFlags(cmd, cfg, colFlags)

	reader, err := newColumnReaderFromConfig(cfg, logger)
	if err != nil {
		return err
	}

	if colFlags.lines {
		rows, err := reader.ReadRows(path, index)
		if err != nil {
			return err
		}
		return r.Rows(rows)
	}

	values, err := reader.ReadColumn(path, index)
	if err != nil {
		return err
	}
	return r.Column(values)
}
