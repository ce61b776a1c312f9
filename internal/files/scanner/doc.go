// Package scanner discovers sample groups in a flat directory.
//
// The scanner package is responsible for:
//   - Locating header files by the active header marker
//   - Deriving one sample prefix per header file
//   - Partitioning the remaining entries into groups by prefix
//
// Every operation lists the directory exactly once, so headers and data
// files are always classified from the same snapshot. The scanner does not
// descend into subdirectories; a subdirectory is just another entry name.
//
// The scanner is designed to be filesystem-agnostic through the use of
// filesystem.FileSystemProvider interface, enabling both production use
// with the OS filesystem and testing with in-memory filesystems.
package scanner
