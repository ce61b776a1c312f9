package main

import (
	"fmt"
	"os"
	"runtime/debug"

	"github.com/JichouP/csvcat/internal/cli"
	"github.com/JichouP/csvcat/pkg/csvcat"
)

func main() {
	// Recover from panics to ensure graceful exits with stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "panic: %v\n%s\n", r, debug.Stack())
			os.Exit(csvcat.ExitPanic)
		}
	}()

	if os.Getenv("CSVCAT_TEST_PANIC") == "1" {
		panic("intentional test panic")
	}

	if err := cli.Execute(); err != nil {
		os.Exit(csvcat.ExitCodeForError(err))
	}
}
