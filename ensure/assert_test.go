//go:build unit

package ensure

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

// errTestCause is a plain error used as an opaque cause in tests.
var errTestCause = errors.New("test cause")

// TestAssert_TruthyPasses verifies Assert returns silently for every
// truthy value, including empty containers.
func TestAssert_TruthyPasses(t *testing.T) {
	t.Parallel()

	Assert(true, Text("should not fail"))
	Assert(1, Text("should not fail"))
	Assert(-1, Text("should not fail"))
	Assert(0.5, Text("should not fail"))
	Assert("x", Text("should not fail"))
	Assert([]int{}, Text("should not fail"))
	Assert(map[string]int{}, Text("should not fail"))
	Assert(struct{}{}, Text("should not fail"))
	Assert(new(int), Text("should not fail"))
}

// TestAssert_FalsyFails verifies Assert raises for every falsy value,
// including zero and the empty string.
func TestAssert_FalsyFails(t *testing.T) {
	t.Parallel()

	falsy := map[string]any{
		"false":      false,
		"zero int":   0,
		"zero uint":  uint(0),
		"zero float": 0.0,
		"NaN":        math.NaN(),
		"empty str":  "",
		"nil":        nil,
	}

	for name, value := range falsy {
		err := catchFailure(t, func() {
			Assert(value, Text("boom"))
		})
		require.Equal(t, "boom", err.Message(), "case %s", name)
		require.True(t, Is(err, AssertionClass), "case %s", name)
	}

	var ptr *int

	catchFailure(t, func() { Assert(ptr, Text("typed nil")) })
}

// TestAssert_DefaultClass verifies ad-hoc failures raise AssertionClass
// unless overridden.
func TestAssert_DefaultClass(t *testing.T) {
	t.Parallel()

	err := catchFailure(t, func() {
		Assert(false, Text("boom"))
	})
	require.Equal(t, "AssertionError", err.Name())

	custom := NewClass("Custom")
	err = catchFailure(t, func() {
		Assert(false, Options{Message: Text("boom"), Class: custom})
	})
	require.True(t, Is(err, custom))
	require.False(t, Is(err, AssertionClass))
}

// TestAssert_LazyInvocationCounts verifies thunk laziness on the ad-hoc
// path matches the family path.
func TestAssert_LazyInvocationCounts(t *testing.T) {
	t.Parallel()

	calls := 0
	msg := Lazy(func() string {
		calls++
		return "computed"
	})

	Assert(true, msg)
	require.Zero(t, calls)

	err := catchFailure(t, func() {
		Assert(false, msg)
	})
	require.Equal(t, 1, calls)
	require.Equal(t, "computed", err.Message())
}

// TestAssert_Cause verifies cause attachment on the ad-hoc path.
func TestAssert_Cause(t *testing.T) {
	t.Parallel()

	underlying := errTestCause

	err := catchFailure(t, func() {
		Assert(false, Options{Message: Text("boom"), Cause: underlying})
	})
	require.Same(t, underlying, err.Unwrap())
}

// TestAssertf_FormatsEagerly verifies the printf shorthand.
func TestAssertf_FormatsEagerly(t *testing.T) {
	t.Parallel()

	Assertf(true, "should not fail %d", 1)

	err := catchFailure(t, func() {
		Assertf(false, "want %d items, got %d", 3, 0)
	})
	require.Equal(t, "want 3 items, got 0", err.Message())
	require.True(t, Is(err, AssertionClass))
}

// TestNormalize_ArgUnion verifies both Arg shapes collapse to the same
// Options record and nil is total.
func TestNormalize_ArgUnion(t *testing.T) {
	t.Parallel()

	fromMessage := normalize(Text("hi"))
	require.Equal(t, "hi", fromMessage.Message.resolve())
	require.Nil(t, fromMessage.Class)
	require.Nil(t, fromMessage.Strip)

	custom := NewClass("X")
	fromOptions := normalize(Options{Message: Text("hi"), Class: custom})
	require.Equal(t, "hi", fromOptions.Message.resolve())
	require.Same(t, custom, fromOptions.Class)

	fromNil := normalize(nil)
	require.Equal(t, fallbackMessage, fromNil.Message.resolve())
}

// TestAssert_NoArgFallback verifies a nil Arg still raises with a safe
// message.
func TestAssert_NoArgFallback(t *testing.T) {
	t.Parallel()

	err := catchFailure(t, func() {
		Assert(false, nil)
	})
	require.Equal(t, fallbackMessage, err.Message())
}
