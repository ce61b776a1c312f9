package csvcat

// SampleScanner defines the directory-side operations of csvcat.
// Implementations must be safe for concurrent use by multiple goroutines.
type SampleScanner interface {
	// LocateHeaders returns the entries recognised as header files.
	LocateHeaders(dir string) ([]Entry, error)

	// Prefixes returns one prefix per header file, in header order.
	Prefixes(dir string) ([]string, error)

	// GroupFiles partitions the directory's data files by header prefix.
	GroupFiles(dir string) ([]FileGroup, error)
}

// ColumnReader extracts one column from a delimited text file.
type ColumnReader interface {
	// ReadRows returns per-row results for every row that has the column or failed to parse.
	ReadRows(path string, index int) ([]ColumnRow, error)

	// ReadColumn returns the column values, applying the malformed-row policy.
	ReadColumn(path string, index int) ([]string, error)
}
