package ensure

// fallbackMessage is raised when no usable message was supplied, and
// stands in for the family name when a stripped family has none.
const fallbackMessage = "assertion failed"

// Message is the diagnostic text for a failed check: either literal text
// or a deferred thunk evaluated only when the check fails.
//
// The zero value is valid and resolves to a generic fallback.
type Message struct {
	text  string
	thunk func() string
	lit   bool
}

// Text creates a literal message.
func Text(s string) Message {
	return Message{text: s, lit: true}
}

// Lazy creates a deferred message. fn runs only on the failing path, so
// expensive diagnostic formatting costs nothing when the check passes.
func Lazy(fn func() string) Message {
	return Message{thunk: fn}
}

// resolve computes the message string. Literal text is returned unchanged;
// a thunk is invoked exactly once. A zero-value Message resolves to the
// fallback literal rather than an empty diagnostic.
func (m Message) resolve() string {
	if m.thunk != nil {
		return m.thunk()
	}

	if m.lit {
		return m.text
	}

	return fallbackMessage
}

// callOptions makes Message usable directly as a call Arg, shorthand for
// Options{Message: m}.
func (m Message) callOptions() Options {
	return Options{Message: m}
}
