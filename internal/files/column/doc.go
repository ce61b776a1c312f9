// Package column extracts a single column from delimited text files.
//
// Files are parsed with encoding/csv with no header row and a variable number
// of fields per record. Rows too short to hold the requested column are left
// out of the result; they are a normal case, not an error. Rows that cannot be
// decoded are surfaced as per-row results so the caller's policy decides
// whether they abort the read or are skipped.
package column
