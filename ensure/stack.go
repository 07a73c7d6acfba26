package ensure

import (
	"runtime"
	"strconv"
	"strings"
)

// Frame represents a single call site in a cleaned stack trace.
type Frame struct {
	PC       uintptr
	File     string
	Line     int
	Function string
}

// Stack is a slice of Frames from most recent call outward.
type Stack []Frame

// String renders the stack one frame per line, file:line first.
func (s Stack) String() string {
	var sb strings.Builder

	for i, fr := range s {
		if i > 0 {
			sb.WriteString("\n")
		}

		sb.WriteString(fr.Function)
		sb.WriteString("\n\t")
		sb.WriteString(fr.File)
		sb.WriteString(":")
		sb.WriteString(strconv.Itoa(fr.Line))
	}

	return sb.String()
}

// cleaner is the optional stack-trimming capability. The pipeline selects
// an implementation once; absence of the capability is a no-op, never an
// error.
type cleaner interface {
	capture(skip int) Stack
}

// nopCleaner is selected when stack cleaning is not requested.
type nopCleaner struct{}

func (nopCleaner) capture(int) Stack { return nil }

// runtimeCleaner captures and resolves frames via runtime.Callers and
// runtime.CallersFrames, which handles inlined calls correctly.
type runtimeCleaner struct{}

// maxStackDepth bounds capture work on the failing path.
const maxStackDepth = 32

// enginePrefix identifies this package's own frames so cleaned traces
// start at the caller's call site.
const enginePrefix = "github.com/zerocity/define-ensure/ensure."

// engineFrame reports whether fn is one of the engine's own call frames.
// Matching by function name rather than a fixed skip count keeps trimming
// correct under inlining, where physical skip counts drift.
func engineFrame(fn string) bool {
	if !strings.HasPrefix(fn, enginePrefix) {
		return false
	}

	rest := fn[len(enginePrefix):]

	switch {
	case strings.HasPrefix(rest, "fail"),
		strings.HasPrefix(rest, "Assert"),
		strings.HasPrefix(rest, "Present["),
		strings.HasPrefix(rest, "As["),
		strings.HasPrefix(rest, "(*Validator)"),
		strings.HasPrefix(rest, "runtimeCleaner"):
		return true
	}

	return false
}

func (runtimeCleaner) capture(skip int) Stack {
	pc := make([]uintptr, maxStackDepth)

	// +2 skips runtime.Callers and capture itself.
	n := runtime.Callers(skip+2, pc)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pc[:n])
	out := make(Stack, 0, n)
	engineDone := false

	for {
		fr, more := frames.Next()

		// Drop the engine's own leading frames; everything from the first
		// caller frame onward is kept verbatim.
		if !engineDone && engineFrame(fr.Function) {
			if !more {
				break
			}

			continue
		}

		engineDone = true

		out = append(out, Frame{
			PC:       fr.PC,
			File:     fr.File,
			Line:     fr.Line,
			Function: fr.Function,
		})

		if !more {
			break
		}
	}

	return out
}

var activeCleaner cleaner = runtimeCleaner{}

func selectCleaner(clean bool) cleaner {
	if clean {
		return activeCleaner
	}

	return nopCleaner{}
}
