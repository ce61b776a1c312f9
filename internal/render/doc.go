// Package render writes scan and column results as text, JSON or YAML.
//
// Text output is styled with lipgloss only when the destination is a
// terminal; pipes and files always receive plain text.
package render
