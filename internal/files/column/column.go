package column

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/JichouP/csvcat/internal/files/filesystem"
	"github.com/JichouP/csvcat/internal/logging"
	"github.com/JichouP/csvcat/pkg/csvcat"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// errStop ends iteration early without being reported to the caller.
var errStop = errors.New("stop")

// Options configures a Reader. The zero value reads comma-separated files
// and aborts on the first malformed row.
type Options struct {
	// Delimiter separates fields. Zero means csvcat.DefaultDelimiter.
	Delimiter rune

	// Comment, if non-zero, marks lines to ignore when it is the first character.
	Comment rune

	// LazyQuotes tolerates quotes in unquoted fields and stray quotes in quoted ones.
	LazyQuotes bool

	// TrimLeadingSpace drops leading white space in each field.
	TrimLeadingSpace bool

	// OnMalformed selects abort (default) or skip for undecodable rows.
	OnMalformed csvcat.MalformedRowPolicy

	// Logger receives verbose diagnostics. Nil discards them.
	Logger csvcat.Logger
}

// Reader extracts a single column from delimited text files.
// Reader is safe for concurrent use when its filesystem provider and logger are.
type Reader struct {
	opts       Options
	fsProvider filesystem.FileSystemProvider
	logger     csvcat.Logger
}

// NewReader creates a column reader over the OS filesystem.
func NewReader(opts Options) (*Reader, error) {
	return NewReaderWithFS(opts, filesystem.NewOSFileSystem())
}

// NewReaderWithFS creates a column reader with a custom filesystem provider.
// Panics if fsProvider is nil.
func NewReaderWithFS(opts Options, fsProvider filesystem.FileSystemProvider) (*Reader, error) {
	if fsProvider == nil {
		panic("fsProvider cannot be nil")
	}
	if opts.Delimiter == 0 {
		opts.Delimiter = csvcat.DefaultDelimiter
	}
	if opts.OnMalformed == "" {
		opts.OnMalformed = csvcat.MalformedAbort
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	logger := opts.Logger
	if logger == nil {
		logger = logging.NewNullLogger()
	}
	return &Reader{opts: opts, fsProvider: fsProvider, logger: logger}, nil
}

func (o Options) validate() error {
	if !validDelim(o.Delimiter) {
		return fmt.Errorf("invalid delimiter %q: %w", o.Delimiter, csvcat.ErrInvalidConfig)
	}
	if o.Comment != 0 {
		if !validDelim(o.Comment) {
			return fmt.Errorf("invalid comment character %q: %w", o.Comment, csvcat.ErrInvalidConfig)
		}
		if o.Comment == o.Delimiter {
			return fmt.Errorf("comment character equals delimiter %q: %w", o.Comment, csvcat.ErrInvalidConfig)
		}
	}
	if !o.OnMalformed.IsValid() {
		return fmt.Errorf("unknown malformed row policy %q: %w", o.OnMalformed, csvcat.ErrInvalidConfig)
	}
	return nil
}

// validDelim mirrors the rune restrictions encoding/csv enforces at read time.
func validDelim(r rune) bool {
	return r != 0 && r != '"' && r != '\r' && r != '\n' && utf8.ValidRune(r) && r != utf8.RuneError
}

// ReadRows returns one result per row that either holds the requested column
// or failed to decode, in file order. Rows with too few fields are omitted.
// Only open and I/O failures are returned as errors; malformed rows are
// reported through ColumnRow.Err.
func (r *Reader) ReadRows(path string, index int) ([]csvcat.ColumnRow, error) {
	rows := []csvcat.ColumnRow{}
	err := r.each(path, index, func(row csvcat.ColumnRow) error {
		rows = append(rows, row)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}

// ReadColumn returns the value at index for every row long enough to have
// it, in file order. Malformed rows either abort the read with
// csvcat.ErrRowParse (no partial output) or are skipped, per OnMalformed.
func (r *Reader) ReadColumn(path string, index int) ([]string, error) {
	values := []string{}
	var malformed error

	err := r.each(path, index, func(row csvcat.ColumnRow) error {
		if row.Err == nil {
			values = append(values, row.Value)
			return nil
		}
		if r.opts.OnMalformed == csvcat.MalformedSkip {
			r.logger.Verbose("Skipping malformed row in %s at line %d: %v", path, row.Line, row.Err)
			return nil
		}
		malformed = row.Err
		return errStop
	})
	if err != nil {
		return nil, err
	}
	if malformed != nil {
		return nil, fmt.Errorf("failed to read column %d from %s: %w", index, path, malformed)
	}
	return values, nil
}

// each streams column results for path to fn. fn may return errStop to end early.
func (r *Reader) each(path string, index int, fn func(csvcat.ColumnRow) error) error {
	if index < 0 {
		return fmt.Errorf("column index %d is negative: %w", index, csvcat.ErrInvalidColumn)
	}

	f, err := r.fsProvider.Open(path)
	if err != nil {
		return fmt.Errorf("%w: %s: %w", csvcat.ErrFileNotFound, path, err)
	}
	defer f.Close()

	cr := r.newCSVReader(f)

	var read, short int
	for {
		record, err := cr.Read()
		if err == io.EOF {
			break
		}

		var row csvcat.ColumnRow
		var parseErr *csv.ParseError
		switch {
		case errors.As(err, &parseErr):
			row = csvcat.ColumnRow{Line: parseErr.StartLine, Err: fmt.Errorf("%w: %w", csvcat.ErrRowParse, err)}
		case err != nil:
			return fmt.Errorf("failed to read %s: %w", path, err)
		case len(record) <= index:
			short++
			continue
		default:
			line, _ := cr.FieldPos(index)
			row = csvcat.ColumnRow{Line: line, Value: record[index]}
		}

		read++
		if err := fn(row); err != nil {
			if errors.Is(err, errStop) {
				return nil
			}
			return err
		}
	}

	r.logger.Verbose("Read %d row(s) from %s, %d too short for column %d", read, path, short, index)
	return nil
}

func (r *Reader) newCSVReader(src io.Reader) *csv.Reader {
	br := bufio.NewReader(src)
	if head, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(head, utf8BOM) {
		br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.Comma = r.opts.Delimiter
	cr.Comment = r.opts.Comment
	cr.LazyQuotes = r.opts.LazyQuotes
	cr.TrimLeadingSpace = r.opts.TrimLeadingSpace
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true
	return cr
}

// Verify Reader implements the interface at compile time
var _ csvcat.ColumnReader = (*Reader)(nil)
