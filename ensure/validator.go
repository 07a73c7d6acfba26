package ensure

import (
	"github.com/zerocity/define-ensure/internal/nilcheck"
	"github.com/zerocity/define-ensure/log"
)

// Config parameterizes a validator family. It is copied at Define time;
// later mutation of the caller's value has no effect on the family.
type Config struct {
	// Class is the error class raised by this family. Defaults to
	// EnsureClass when nil.
	Class *Class

	// Name labels the family. It replaces the diagnostic message when
	// stripping applies in production mode.
	Name string

	// Format, when set, is applied exactly once to every resolved message.
	Format func(string) string

	// DefaultStrip enables message stripping for this family unless a call
	// overrides it.
	DefaultStrip bool

	// Logger, when set, receives an error-level entry for every failure.
	Logger log.Logger
}

// Validator is one configured family: a presence checker, an instance
// checker, and a type guard, all bound to the same immutable Config.
// Families are independent; there is no shared registry, and a Validator
// is safe for concurrent use.
type Validator struct {
	cfg Config
}

// Define creates a validator family from cfg.
func Define(cfg Config) *Validator {
	if cfg.Class == nil {
		cfg.Class = EnsureClass
	}

	return &Validator{cfg: cfg}
}

// Name returns the family's configured name.
func (v *Validator) Name() string {
	return v.cfg.Name
}

// Class returns the family's error class.
func (v *Validator) Class() *Class {
	return v.cfg.Class
}

// IsError reports whether value is an error raised by this family: an
// *Error of exactly the family's class. It never panics, so it is safe on
// a recover() result, nil, or any non-error value.
func (v *Validator) IsError(value any) bool {
	return Is(value, v.cfg.Class)
}

// Check is the non-generic presence check for call sites holding an `any`.
// It fails for nil (untyped or typed) and the boolean false, and returns
// the value unchanged otherwise. Zero, empty string, NaN, and empty
// containers are present values, not failures.
func (v *Validator) Check(value any, arg Arg) any {
	if absent(value) {
		v.fail(arg)
	}

	return value
}

// fail runs the failure pipeline with this family's configuration.
// Validator families do not expose stack cleaning; the per-call flag is
// ignored on this path.
func (v *Validator) fail(arg Arg) {
	opt := normalize(arg)
	opt.CleanStack = false

	fail(v.cfg, opt, EnsureClass)
}

// Present returns value unchanged when it is present, and raises the
// family's error otherwise. Only nil (untyped or typed) and the boolean
// false count as absent; zero, empty string, NaN, and empty-but-non-nil
// containers pass. The returned value can be used without re-checking.
//
// Present is a function rather than a method because methods cannot carry
// their own type parameters.
func Present[T any](v *Validator, value T, arg Arg) T {
	if absent(value) {
		v.fail(arg)
	}

	return value
}

// As returns value narrowed to T when the assertion holds, and raises the
// family's error otherwise. Interface targets follow Go's usual dynamic
// satisfaction rules, so a value whose type implements T passes.
func As[T any](v *Validator, value any, arg Arg) T {
	narrowed, ok := value.(T)
	if !ok {
		v.fail(arg)
	}

	return narrowed
}

// absent implements the presence rule shared by Present and Check.
func absent(value any) bool {
	if b, ok := value.(bool); ok {
		return !b
	}

	return nilcheck.Interface(value)
}
