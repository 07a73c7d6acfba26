package ensure

import "context"

// Arg is the per-call argument accepted by every check: either a bare
// Message (shorthand for Options{Message: m}) or a full Options record.
// The union is sealed; both variants live in this package.
type Arg interface {
	callOptions() Options
}

// Options carries the per-call overrides for a failing check. Every field
// except Message is optional; unset fields defer to the validator family's
// configuration.
type Options struct {
	// Message is the diagnostic text or thunk for the failure.
	Message Message

	// Class overrides the family's error class for this call only.
	Class *Class

	// Cause is attached verbatim to the raised error and exposed through
	// Unwrap. It is never inspected or transformed.
	Cause error

	// Format overrides the family's message formatter for this call.
	Format func(string) string

	// Strip overrides the family's default stripping policy. Nil means
	// "use the family default".
	Strip *bool

	// CleanStack requests that the raised error carry a stack trace
	// trimmed to the caller's call site. Honored by Assert only; validator
	// families do not expose stack cleaning.
	CleanStack bool

	// Context, when set, lets the failure be recorded on the active
	// OpenTelemetry span. It has no effect on the raised error.
	Context context.Context
}

func (o Options) callOptions() Options {
	return o
}

// normalize collapses the Arg union into an Options record. It is pure and
// never panics; a nil Arg yields the zero Options, whose zero Message
// resolves to the fallback literal downstream.
func normalize(arg Arg) Options {
	if arg == nil {
		return Options{}
	}

	return arg.callOptions()
}

// Bool returns a pointer to v, for the tri-state Strip field.
func Bool(v bool) *bool {
	return &v
}
