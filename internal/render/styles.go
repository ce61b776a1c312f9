package render

import "github.com/charmbracelet/lipgloss"

// Color palette - keeping it minimal and accessible.
var (
	ColorPrimary   = lipgloss.Color("39")  // Blue
	ColorSecondary = lipgloss.Color("245") // Gray
	ColorError     = lipgloss.Color("196") // Red
	ColorMuted     = lipgloss.Color("240") // Dark gray
)

// Styles for text output.
var (
	// Group prefix line
	PrefixStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// Header names next to a prefix
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorSecondary)

	// Placeholder for groups without data files
	EmptyStyle = lipgloss.NewStyle().
			Foreground(ColorMuted).
			Italic(true)

	LineNumberStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(ColorError)
)

// Symbols for visual feedback.
const (
	SymbolBullet     = "•"
	SymbolArrowRight = "→"
	SymbolCross      = "✗"
)
