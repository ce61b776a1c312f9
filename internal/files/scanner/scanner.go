package scanner

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"strings"

	"github.com/JichouP/csvcat/internal/files/filesystem"
	"github.com/JichouP/csvcat/internal/files/marker"
	"github.com/JichouP/csvcat/internal/logging"
	"github.com/JichouP/csvcat/pkg/csvcat"
)

// Options configures a Scanner.
type Options struct {
	// Marker identifies header files. The zero value selects csvcat.DefaultMarker().
	Marker csvcat.HeaderMarker

	// Duplicates decides how headers sharing a prefix are grouped.
	// Empty means csvcat.DuplicatesKeep.
	Duplicates csvcat.DuplicatePolicy

	// Logger receives verbose diagnostics. Nil discards them.
	Logger csvcat.Logger
}

// Scanner locates header files and groups data files by prefix.
// Scanner is safe for concurrent use by multiple goroutines as long as
// the provided fsProvider and logger are also thread-safe.
type Scanner struct {
	matcher    marker.Matcher
	duplicates csvcat.DuplicatePolicy
	fsProvider filesystem.FileSystemProvider
	logger     csvcat.Logger
}

// NewScanner creates a new sample scanner over the OS filesystem.
func NewScanner(opts Options) (*Scanner, error) {
	return NewScannerWithFS(opts, filesystem.NewOSFileSystem())
}

// NewScannerWithFS creates a new sample scanner with a custom filesystem provider.
// This is primarily useful for testing with in-memory filesystems.
// Panics if fsProvider is nil.
func NewScannerWithFS(opts Options, fsProvider filesystem.FileSystemProvider) (*Scanner, error) {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}

	if opts.Marker == (csvcat.HeaderMarker{}) {
		opts.Marker = csvcat.DefaultMarker()
	}
	m, err := marker.New(opts.Marker)
	if err != nil {
		return nil, err
	}

	if opts.Duplicates == "" {
		opts.Duplicates = csvcat.DuplicatesKeep
	}
	if !opts.Duplicates.IsValid() {
		return nil, fmt.Errorf("unknown duplicate policy %q: %w", opts.Duplicates, csvcat.ErrInvalidConfig)
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}

	return &Scanner{
		matcher:    m,
		duplicates: opts.Duplicates,
		fsProvider: fsProvider,
		logger:     logger,
	}, nil
}

// Marker returns the header marker the scanner applies.
func (s *Scanner) Marker() csvcat.HeaderMarker {
	return s.matcher.Marker()
}

// LocateHeaders returns the entries of dir recognised as header files,
// in listing order. An empty directory yields an empty, non-nil slice.
func (s *Scanner) LocateHeaders(dir string) ([]csvcat.Entry, error) {
	entries, err := s.list(dir)
	if err != nil {
		return nil, err
	}
	headers, _ := s.classify(entries)
	return headers, nil
}

// Prefixes returns one prefix per header file of dir, in header order.
func (s *Scanner) Prefixes(dir string) ([]string, error) {
	headers, err := s.LocateHeaders(dir)
	if err != nil {
		return nil, err
	}
	return ExtractPrefixes(s.matcher, entryNames(headers)), nil
}

// GroupFiles partitions the entries of dir into one group per header file.
//
// The directory is listed once and each entry classified as header or data
// from that single snapshot. For every prefix, in header order, the group
// holds the data entries whose names start with it, in listing order. A
// header with no matching data still yields an empty group, a data entry may
// belong to several groups, and header files never appear as data.
func (s *Scanner) GroupFiles(dir string) ([]csvcat.FileGroup, error) {
	entries, err := s.list(dir)
	if err != nil {
		return nil, err
	}
	headers, data := s.classify(entries)

	groupDir := dir
	if abs, err := filepath.Abs(dir); err == nil {
		groupDir = abs
	}

	groups := make([]csvcat.FileGroup, 0, len(headers))
	byPrefix := make(map[string]int, len(headers))

	for _, header := range headers {
		prefix := s.matcher.Prefix(header.Name)

		if s.duplicates == csvcat.DuplicatesMerge {
			if i, seen := byPrefix[prefix]; seen {
				groups[i].Headers = append(groups[i].Headers, header.Name)
				s.logger.Verbose("Merged header %s into group %q", header.Name, prefix)
				continue
			}
			byPrefix[prefix] = len(groups)
		}

		files := []string{}
		for _, entry := range data {
			if strings.HasPrefix(entry.Name, prefix) {
				files = append(files, entry.Name)
			}
		}

		groups = append(groups, csvcat.FileGroup{
			ID:      GroupID(groupDir, prefix),
			Prefix:  prefix,
			Headers: []string{header.Name},
			Files:   files,
		})
	}

	s.logger.Verbose("Grouped %d data entries under %d group(s) in %s", len(data), len(groups), dir)
	return groups, nil
}

// ExtractPrefixes maps header names to prefixes, one per name, preserving
// order and duplicates.
func ExtractPrefixes(m marker.Matcher, names []string) []string {
	prefixes := make([]string, 0, len(names))
	for _, name := range names {
		prefixes = append(prefixes, m.Prefix(name))
	}
	return prefixes
}

// list reads dir once and converts the listing into entry snapshots.
func (s *Scanner) list(dir string) ([]csvcat.Entry, error) {
	dirEntries, err := s.fsProvider.ReadDir(dir)
	if err != nil {
		return nil, classifyListError(dir, err)
	}

	entries := make([]csvcat.Entry, 0, len(dirEntries))
	for _, e := range dirEntries {
		entries = append(entries, csvcat.Entry{Name: e.Name(), IsDir: e.IsDir()})
	}

	s.logger.Verbose("Listed %d entries in %s", len(entries), dir)
	return entries, nil
}

// classify splits a listing into header entries and data entries.
func (s *Scanner) classify(entries []csvcat.Entry) (headers, data []csvcat.Entry) {
	headers = []csvcat.Entry{}
	for _, e := range entries {
		if s.matcher.IsHeader(e.Name) {
			headers = append(headers, e)
		} else {
			data = append(data, e)
		}
	}
	s.logger.Verbose("Found %d header file(s) matching %s %q", len(headers), s.matcher.Marker().Policy, s.matcher.Marker().Pattern)
	return headers, data
}

func classifyListError(dir string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist), errors.Is(err, filesystem.ErrNotDirectory):
		return fmt.Errorf("%w: %s: %w", csvcat.ErrDirectoryNotFound, dir, err)
	default:
		return fmt.Errorf("%w: %s: %w", csvcat.ErrNotReadable, dir, err)
	}
}

func entryNames(entries []csvcat.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.Name)
	}
	return out
}

// Verify Scanner implements the interface at compile time
var _ csvcat.SampleScanner = (*Scanner)(nil)
