package ensure

import (
	"fmt"
	"math"
	"reflect"

	"github.com/zerocity/define-ensure/internal/nilcheck"
)

// Assert raises an AssertionClass error when condition is falsy. Unlike a
// validator family's presence check, Assert uses general truthiness: nil,
// false, numeric zero, NaN, and the empty string all fail. A truthy
// condition returns without any further work, so a Lazy message thunk
// costs nothing on the passing path.
//
// Assert takes the same Arg union as family checkers and additionally
// honors Options.CleanStack, since there is no pre-bound family to
// configure stack cleaning on.
func Assert(condition any, arg Arg) {
	if truthy(condition) {
		return
	}

	fail(Config{}, normalize(arg), AssertionClass)
}

// Assertf is printf shorthand over Assert. The message is formatted
// eagerly; use Assert with a Lazy message when formatting is expensive.
func Assertf(condition any, format string, args ...any) {
	if truthy(condition) {
		return
	}

	fail(Config{}, Options{Message: Text(fmt.Sprintf(format, args...))}, AssertionClass)
}

// truthy implements general truthiness: false for nil (untyped or typed),
// the boolean false, numeric zero, NaN, and the empty string; true for
// everything else, including empty containers.
func truthy(value any) bool {
	if nilcheck.Interface(value) {
		return false
	}

	switch v := value.(type) {
	case bool:
		return v
	case string:
		return v != ""
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.Bool:
		return rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() != 0
	case reflect.Float32, reflect.Float64:
		f := rv.Float()

		return f != 0 && !math.IsNaN(f)
	case reflect.Complex64, reflect.Complex128:
		return rv.Complex() != 0
	case reflect.String:
		return rv.String() != ""
	default:
		return true
	}
}
