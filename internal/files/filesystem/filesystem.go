package filesystem

import (
	"errors"
	"io"
	"io/fs"
)

// FileInfo is an alias for fs.FileInfo from the standard library.
// This provides compatibility with the fs.FS ecosystem while maintaining
// a stable local type for our abstraction layer.
type FileInfo = fs.FileInfo

// DirEntry is an alias for fs.DirEntry, one element of a directory listing.
type DirEntry = fs.DirEntry

// ErrNotDirectory is returned when a listing is requested for a path that is not a directory.
var ErrNotDirectory = errors.New("not a directory")

// FileSystemProvider lists directories and opens files.
type FileSystemProvider interface {
	// ReadDir returns the immediate entries of the directory at path, sorted by name.
	// It does not descend into subdirectories.
	ReadDir(path string) ([]DirEntry, error)

	// Open opens the regular file at path for reading.
	Open(path string) (io.ReadCloser, error)

	// ReadFile reads a specific file at the given path
	ReadFile(path string) ([]byte, error)

	// Stat returns file information for the given path
	Stat(path string) (FileInfo, error)
}
