package ensure

// Class is an immutable error-class descriptor. Each validator family is
// bound to exactly one Class; identity is pointer identity, so two classes
// created with the same name are still distinct families.
type Class struct {
	name string
}

// NewClass creates a new error class with the given name. The name appears
// in Error output and serves as the stripped-message label for families
// that do not configure their own name.
func NewClass(name string) *Class {
	return &Class{name: name}
}

// Name returns the class name.
func (c *Class) Name() string {
	if c == nil {
		return ""
	}

	return c.name
}

// Default classes for the two primitives. Callers normally define their
// own classes; these apply when a Config or call supplies none.
var (
	// AssertionClass is the default class raised by Assert.
	AssertionClass = NewClass("AssertionError")

	// EnsureClass is the default class for validator families that do not
	// configure one.
	EnsureClass = NewClass("EnsureError")
)

// Error is the value raised on a failed check.
type Error struct {
	class   *Class
	message string
	cause   error
	stack   Stack
}

// Error returns the class-qualified failure message.
func (e *Error) Error() string {
	if e == nil {
		return fallbackMessage
	}

	if name := e.class.Name(); name != "" {
		return name + ": " + e.message
	}

	return e.message
}

// Message returns the resolved failure message without the class prefix.
func (e *Error) Message() string {
	if e == nil {
		return fallbackMessage
	}

	return e.message
}

// Name returns the name of the error's class.
func (e *Error) Name() string {
	if e == nil {
		return ""
	}

	return e.class.Name()
}

// Class returns the error's class.
func (e *Error) Class() *Class {
	if e == nil {
		return nil
	}

	return e.class
}

// Unwrap returns the cause supplied at the failing call, unmodified.
func (e *Error) Unwrap() error {
	if e == nil {
		return nil
	}

	return e.cause
}

// StackTrace returns the trimmed stack captured at the raise site, or nil
// when stack cleaning was not requested.
func (e *Error) StackTrace() Stack {
	if e == nil {
		return nil
	}

	return e.stack
}

// Is reports whether v is an *Error of exactly the given class. It matches
// on class identity only: an error of a different class, a wrapped error,
// a nil, or any non-error value all report false. It never panics, which
// makes it safe to call on a recover() result.
func Is(v any, class *Class) bool {
	if class == nil {
		return false
	}

	err, ok := v.(*Error)

	return ok && err != nil && err.class == class
}
