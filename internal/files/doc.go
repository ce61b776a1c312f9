// Package files provides file-related functionality organized into sub-packages.
//
//   - filesystem: Filesystem abstraction interfaces and implementations (OS and in-memory)
//   - marker: Header-marker matching and prefix derivation
//   - scanner: Header discovery and prefix-based grouping of a sample directory
//   - column: Single-column extraction from delimited data files
//
// # Usage
//
//	import (
//	    "github.com/JichouP/csvcat/internal/files/column"
//	    "github.com/JichouP/csvcat/internal/files/scanner"
//	)
//
//	s, err := scanner.NewScanner(scanner.Options{})
//	groups, err := s.GroupFiles("./samples")
//
//	r, err := column.NewReader(column.Options{Delimiter: ';'})
//	values, err := r.ReadColumn("./samples/a_1.csv", 2)
package files
