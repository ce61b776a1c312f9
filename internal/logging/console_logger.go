package logging

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ConsoleLogger writes log messages to stderr.
// Tags are coloured when the destination is a terminal and NO_COLOR is unset.
// Safe for concurrent use by multiple goroutines.
type ConsoleLogger struct {
	verbose    bool
	out        io.Writer
	verboseTag string
	errorTag   string
	mu         sync.Mutex
}

// NewConsoleLogger creates a new ConsoleLogger writing to os.Stderr.
// If verbose is true, Verbose() calls will produce output.
// If verbose is false, Verbose() calls are no-ops.
func NewConsoleLogger(verbose bool) *ConsoleLogger {
	return NewConsoleLoggerWithWriter(os.Stderr, verbose)
}

// NewConsoleLoggerWithWriter creates a ConsoleLogger writing to w.
func NewConsoleLoggerWithWriter(w io.Writer, verbose bool) *ConsoleLogger {
	verboseTag := color.New(color.FgCyan)
	errorTag := color.New(color.FgRed, color.Bold)
	if !colorEnabled(w) {
		verboseTag.DisableColor()
		errorTag.DisableColor()
	}

	return &ConsoleLogger{
		verbose:    verbose,
		out:        w,
		verboseTag: verboseTag.Sprint("[VERBOSE]") + " ",
		errorTag:   errorTag.Sprint("[ERROR]") + " ",
	}
}

func colorEnabled(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || color.NoColor {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Verbose logs detailed diagnostic information if verbose mode is enabled.
func (l *ConsoleLogger) Verbose(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.write(l.verboseTag, format, args)
}

// Info logs informational messages about normal operations.
func (l *ConsoleLogger) Info(format string, args ...interface{}) {
	l.write("", format, args)
}

// Error logs error messages.
func (l *ConsoleLogger) Error(format string, args ...interface{}) {
	l.write(l.errorTag, format, args)
}

func (l *ConsoleLogger) write(tag, format string, args []interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if len(args) > 0 {
		fmt.Fprintf(l.out, tag+format+"\n", args...)
	} else {
		fmt.Fprint(l.out, tag+format+"\n")
	}
}
