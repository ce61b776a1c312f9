package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/JichouP/csvcat/internal/config"
	"github.com/JichouP/csvcat/internal/files/column"
	"github.com/JichouP/csvcat/internal/files/scanner"
	"github.com/JichouP/csvcat/internal/logging"
	"github.com/JichouP/csvcat/internal/render"
	"github.com/JichouP/csvcat/pkg/csvcat"
)

// scanFlags holds the flag values shared by groups, headers and prefixes.
type scanFlags struct {
	format     string
	marker     string
	match      string
	duplicates string
}

// columnFlags holds the flag values of the column command.
type columnFlags struct {
	format           string
	delimiter        string
	comment          string
	lazyQuotes       bool
	trimLeadingSpace bool
	onMalformed      string
	lines            bool
}

// addFormatFlag registers --format with completion.
func addFormatFlag(cmd *cobra.Command, target *string) {
	cmd.Flags().StringVarP(target, "format", "o", string(render.FormatText), "Output format: text, json or yaml")
	_ = cmd.RegisterFlagCompletionFunc("format", completeFormats)
}

// addMarkerFlags registers --marker and --match with completion.
func addMarkerFlags(cmd *cobra.Command, f *scanFlags) {
	cmd.Flags().StringVar(&f.marker, "marker", "", "Header marker text (default \""+csvcat.DefaultHeaderMarker+"\")")
	cmd.Flags().StringVar(&f.match, "match", "", "How the marker is matched: suffix or contains (default suffix)")
	_ = cmd.RegisterFlagCompletionFunc("match", completeMatchPolicies)
}

// loadProjectConfig loads godotenv, the project configuration and
// environment overrides. A missing ./csvcat.yaml yields the defaults;
// a missing file named by --config is an error.
func loadProjectConfig(cmd *cobra.Command) (*config.ProjectConfig, error) {
	_ = godotenv.Load()

	path := getConfigFlag(cmd)
	var (
		cfg *config.ProjectConfig
		err error
	)
	if path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, err = config.Load(".")
		if errors.Is(err, config.ErrConfigNotFound) {
			cfg, err = config.Default(), nil
		}
	}
	if err != nil {
		if path == "" {
			path = csvcat.ConfigFileName
		}
		return nil, fmt.Errorf("%w: failed to load %s: %w", csvcat.ErrInvalidConfig, path, err)
	}

	cfg.ApplyEnv(os.LookupEnv)
	return cfg, nil
}

// applyScanFlags overrides configuration with explicitly set scan flags.
func applyScanFlags(cmd *cobra.Command, cfg *config.ProjectConfig, f scanFlags) {
	if cmd.Flags().Changed("marker") {
		cfg.Header.Marker = f.marker
	}
	if cmd.Flags().Changed("match") {
		cfg.Header.Match = f.match
	}
	if cmd.Flags().Changed("duplicates") {
		cfg.Grouping.Duplicates = f.duplicates
	}
}

// applyColumnFlags overrides configuration with explicitly set column flags.
func applyColumnFlags(cmd *cobra.Command, cfg *config.ProjectConfig, f columnFlags) {
	if cmd.Flags().Changed("delimiter") {
		cfg.Column.Delimiter = f.delimiter
	}
	if cmd.Flags().Changed("comment") {
		cfg.Column.Comment = f.comment
	}
	if cmd.Flags().Changed("lazy-quotes") {
		cfg.Column.LazyQuotes = f.lazyQuotes
	}
	if cmd.Flags().Changed("trim-leading-space") {
		cfg.Column.TrimLeadingSpace = f.trimLeadingSpace
	}
	if cmd.Flags().Changed("on-malformed") {
		cfg.Column.MalformedRows = f.onMalformed
	}
}

// newScannerFromConfig validates cfg and builds a Scanner from it.
func newScannerFromConfig(cfg *config.ProjectConfig, logger csvcat.Logger) (*scanner.Scanner, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	m, err := cfg.HeaderMarker()
	if err != nil {
		return nil, err
	}
	dup, err := cfg.DuplicatePolicy()
	if err != nil {
		return nil, err
	}
	return scanner.NewScanner(scanner.Options{Marker: m, Duplicates: dup, Logger: logger})
}

// newColumnReaderFromConfig validates cfg and builds a column Reader from it.
func newColumnReaderFromConfig(cfg *config.ProjectConfig, logger csvcat.Logger) (*column.Reader, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	delim, err := cfg.Delimiter()
	if err != nil {
		return nil, err
	}
	comment, err := cfg.Comment()
	if err != nil {
		return nil, err
	}
	policy, err := cfg.MalformedRowPolicy()
	if err != nil {
		return nil, err
	}
	return column.NewReader(column.Options{
		Delimiter:        delim,
		Comment:          comment,
		LazyQuotes:       cfg.Column.LazyQuotes,
		TrimLeadingSpace: cfg.Column.TrimLeadingSpace,
		OnMalformed:      policy,
		Logger:           logger,
	})
}

// newRenderer parses the --format value and builds a renderer on cmd's output.
func newRenderer(cmd *cobra.Command, format string) (*render.Renderer, error) {
	f, err := render.ParseFormat(format)
	if err != nil {
		return nil, err
	}
	return render.New(cmd.OutOrStdout(), f), nil
}

// newLogger returns a console logger on cmd's error stream.
func newLogger(cmd *cobra.Command) *logging.ConsoleLogger {
	return logging.NewConsoleLoggerWithWriter(cmd.ErrOrStderr(), getVerboseFlag(cmd))
}
