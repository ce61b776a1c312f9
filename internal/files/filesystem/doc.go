// Package filesystem provides filesystem abstraction interfaces and implementations.
//
// This package defines the directory-listing and file-opening primitives the
// sample scanner and column reader build on, enabling testability through an
// in-memory implementation while maintaining compatibility with the OS
// filesystem.
//
// Key interfaces:
//   - FileSystemProvider: flat directory listing, file opening and metadata
//   - DirEntry: a single listed entry (alias of fs.DirEntry)
//   - FileInfo: file metadata (alias of fs.FileInfo)
//
// Implementations:
//   - OSFileSystem: Production implementation using the OS filesystem
//   - MemoryFileSystem: In-memory implementation for testing
//
// Errors wrap fs.ErrNotExist, fs.ErrPermission or ErrNotDirectory so callers
// can classify them with errors.Is regardless of the implementation.
package filesystem
