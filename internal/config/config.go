package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/JichouP/csvcat/pkg/csvcat"
)

// ErrConfigNotFound is returned when the config file does not exist.
// Callers can check for this with errors.Is(err, config.ErrConfigNotFound).
var ErrConfigNotFound = errors.New("config file not found")

type HeaderConfig struct {
	Marker string `yaml:"marker"`
	Match  string `yaml:"match"`
}

type GroupingConfig struct {
	Duplicates string `yaml:"duplicates"`
}

type ColumnConfig struct {
	Delimiter        string `yaml:"delimiter"`
	Comment          string `yaml:"comment,omitempty"`
	LazyQuotes       bool   `yaml:"lazy_quotes"`
	TrimLeadingSpace bool   `yaml:"trim_leading_space"`
	MalformedRows    string `yaml:"malformed_rows"`
}

type ProjectConfig struct {
	Header   HeaderConfig   `yaml:"header"`
	Grouping GroupingConfig `yaml:"grouping"`
	Column   ColumnConfig   `yaml:"column"`
}

// Environment variables that override file values.
const (
	EnvHeaderMarker  = csvcat.EnvPrefix + "HEADER_MARKER"
	EnvHeaderMatch   = csvcat.EnvPrefix + "HEADER_MATCH"
	EnvDuplicates    = csvcat.EnvPrefix + "DUPLICATES"
	EnvDelimiter     = csvcat.EnvPrefix + "DELIMITER"
	EnvMalformedRows = csvcat.EnvPrefix + "MALFORMED_ROWS"
)

// Default returns the built-in configuration: "_Header.txt" suffix headers,
// duplicate prefixes kept, comma-separated columns, abort on malformed rows.
func Default() *ProjectConfig {
	return &ProjectConfig{
		Header: HeaderConfig{
			Marker: csvcat.DefaultHeaderMarker,
			Match:  string(csvcat.MatchSuffix),
		},
		Grouping: GroupingConfig{
			Duplicates: string(csvcat.DuplicatesKeep),
		},
		Column: ColumnConfig{
			Delimiter:     string(csvcat.DefaultDelimiter),
			MalformedRows: string(csvcat.MalformedAbort),
		},
	}
}

// Load reads csvcat.yaml from dir, layered over Default().
func Load(dir string) (*ProjectConfig, error) {
	return LoadFile(filepath.Join(dir, csvcat.ConfigFileName))
}

// LoadFile reads the config file at path, layered over Default().
// Keys absent from the file keep their default values.
func LoadFile(path string) (*ProjectConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return cfg, nil
}

// Save writes cfg as YAML to path.
func Save(path string, cfg *ProjectConfig) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to serialize config: %w", err)
	}
	return os.WriteFile(path, data, 0644)
}

// ApplyEnv overrides fields from environment variables found by lookup
// (normally os.LookupEnv). Unset variables leave the field unchanged.
func (c *ProjectConfig) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvHeaderMarker); ok {
		c.Header.Marker = v
	}
	if v, ok := lookup(EnvHeaderMatch); ok {
		c.Header.Match = v
	}
	if v, ok := lookup(EnvDuplicates); ok {
		c.Grouping.Duplicates = v
	}
	if v, ok := lookup(EnvDelimiter); ok {
		c.Column.Delimiter = v
	}
	if v, ok := lookup(EnvMalformedRows); ok {
		c.Column.MalformedRows = v
	}
}

// HeaderMarker returns the validated header marker.
func (c *ProjectConfig) HeaderMarker() (csvcat.HeaderMarker, error) {
	policy, err := csvcat.ParseMatchPolicy(c.Header.Match)
	if err != nil {
		return csvcat.HeaderMarker{}, err
	}
	m := csvcat.HeaderMarker{Pattern: c.Header.Marker, Policy: policy}
	if err := m.Validate(); err != nil {
		return csvcat.HeaderMarker{}, err
	}
	return m, nil
}

// DuplicatePolicy returns the validated duplicate-prefix policy.
func (c *ProjectConfig) DuplicatePolicy() (csvcat.DuplicatePolicy, error) {
	return csvcat.ParseDuplicatePolicy(c.Grouping.Duplicates)
}

// MalformedRowPolicy returns the validated malformed-row policy.
func (c *ProjectConfig) MalformedRowPolicy() (csvcat.MalformedRowPolicy, error) {
	return csvcat.ParseMalformedRowPolicy(c.Column.MalformedRows)
}

// Delimiter returns the column delimiter as a rune.
func (c *ProjectConfig) Delimiter() (rune, error) {
	r, err := ParseRune(c.Column.Delimiter)
	if err != nil {
		return 0, fmt.Errorf("column.delimiter: %w", err)
	}
	if r == 0 {
		return 0, fmt.Errorf("column.delimiter is empty: %w", csvcat.ErrInvalidConfig)
	}
	return r, nil
}

// Comment returns the comment rune, or 0 when comments are disabled.
func (c *ProjectConfig) Comment() (rune, error) {
	r, err := ParseRune(c.Column.Comment)
	if err != nil {
		return 0, fmt.Errorf("column.comment: %w", err)
	}
	return r, nil
}

// Validate checks every field that has a restricted set of values.
func (c *ProjectConfig) Validate() error {
	var errs []error
	if _, err := c.HeaderMarker(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.DuplicatePolicy(); err != nil {
		errs = append(errs, err)
	}
	if _, err := c.MalformedRowPolicy(); err != nil {
		errs = append(errs, err)
	}
	delim, err := c.Delimiter()
	if err != nil {
		errs = append(errs, err)
	}
	comment, err := c.Comment()
	if err != nil {
		errs = append(errs, err)
	}
	if comment != 0 && comment == delim {
		errs = append(errs, fmt.Errorf("column.comment equals column.delimiter: %w", csvcat.ErrInvalidConfig))
	}
	return errors.Join(errs...)
}

// ParseRune converts a single-character setting into a rune.
// The empty string yields 0. "tab" and the two-character escape `\t`
// both mean a horizontal tab.
func ParseRune(s string) (rune, error) {
	switch s {
	case "":
		return 0, nil
	case "tab", `\t`:
		return '\t', nil
	}
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("%q must be a single character: %w", s, csvcat.ErrInvalidConfig)
	}
	r, _ := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return 0, fmt.Errorf("%q is not valid UTF-8: %w", s, csvcat.ErrInvalidConfig)
	}
	return r, nil
}
