// SPDX-License-Identifier: EPL-2.0

// Package crashlog appends panic reports to a log file before the process
// dies.
//
//	func main() {
//	    defer crashlog.Recover("crash.log", version.Current())
//	    ...
//	}
//
// Recover only sees panics of the goroutine it is deferred in, so every
// long-lived goroutine needs its own deferred call.
package crashlog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"time"
)

// now is replaced in tests.
var now = time.Now

// Recover writes the report for an in-flight panic to path and panics again
// with the same value. Failing to write the log never hides the panic.
func Recover(path, version string) {
	r := recover()
	if r == nil {
		return
	}

	_ = appendReport(path, version, r, debug.Stack())
	panic(r)
}

func appendReport(path, version string, value any, stack []byte) error {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if err := Write(f, version, value, stack); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

// Write formats one crash report.
func Write(w io.Writer, version string, value any, stack []byte) error {
	_, err := fmt.Fprintf(w, "\n=== crash at %s (version %s) ===\nmessage: %v\n",
		now().UTC().Format(time.RFC3339), version, value)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if loc := location(); loc != "" {
		if _, err := fmt.Fprintf(w, "location: %s\n", loc); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	if len(stack) > 0 {
		if _, err := fmt.Fprintf(w, "%s\n", stack); err != nil {
			return fmt.Errorf("%w", err)
		}
	}

	return nil
}

// location finds the frame that called panic by walking past the runtime
// and this package.
func location() string {
	pcs := make([]uintptr, 32)
	n := runtime.Callers(2, pcs)
	frames := runtime.CallersFrames(pcs[:n])

	afterPanic := false
	for {
		frame, more := frames.Next()
		if frame.Function == "runtime.gopanic" {
			afterPanic = true
		} else if afterPanic {
			return fmt.Sprintf("%s:%d", frame.File, frame.Line)
		}
		if !more {
			return ""
		}
	}
}
