package render

import (
	"io"
	"os"

	"golang.org/x/term"
)

// EnvNoStyle disables styled text output when set to "1".
const EnvNoStyle = "CSVCAT_NO_STYLE"

// StyleEnabled reports whether text written to w should be styled.
//
// Returns false if:
//   - CSVCAT_NO_STYLE=1 is set
//   - CI is set (common CI/CD convention)
//   - NO_COLOR is set
//   - w is not a terminal (pipes, files, buffers)
func StyleEnabled(w io.Writer) bool {
	if os.Getenv(EnvNoStyle) == "1" {
		return false
	}
	if os.Getenv("CI") != "" {
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}

	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}
