// Package ensure provides a small, configurable assertion engine:
// presence and truthiness checks that raise a caller-selected error class
// with a computed message, and return the checked value on success.
//
// Unlike test assertions, these checks are intended to stay enabled in
// production code. They are for invariant violations and impossible
// states, not for input validation or expected error conditions.
//
// # Validator families
//
// Define binds a configuration once and yields a reusable family:
//
//	var errValidation = ensure.NewClass("ValidationError")
//
//	var validate = ensure.Define(ensure.Config{
//		Class: errValidation,
//		Name:  "validation",
//	})
//
//	// Raises a ValidationError when cfg is nil; otherwise cfg flows
//	// through with no further checks needed at the call sites below.
//	cfg = ensure.Present(validate, cfg, ensure.Text("config must be loaded"))
//
// Each family is independent: its own error class, optional name, message
// formatter, and default stripping policy, fixed at Define time. The
// family's type guard discriminates its own failures at a recover
// boundary:
//
//	defer func() {
//		if r := recover(); validate.IsError(r) {
//			// handle exactly this family's failures
//		}
//	}()
//
// # Presence versus truthiness
//
// Family checkers test presence: only nil (untyped or typed) and the
// boolean false fail. Zero, the empty string, NaN, and empty containers
// are legitimate domain values and pass. The ad-hoc Assert tests general
// truthiness instead, where all of those fail:
//
//	ensure.Assert(len(items) > 0, ensure.Text("processItems called with empty slice"))
//
// # Messages
//
// Every check takes either a literal message or a deferred one. A Lazy
// thunk runs only when the check fails, so expensive diagnostics cost
// nothing on the passing path:
//
//	ensure.Present(validate, account, ensure.Lazy(func() string {
//		return "missing account: " + describeRequest(req)
//	}))
//
// Per-call options can override the family's class, formatter, and
// stripping policy, and attach an opaque cause:
//
//	ensure.Present(validate, account, ensure.Options{
//		Message: ensure.Text("account lookup failed"),
//		Cause:   err,
//	})
//
// # Stripping
//
// A family with DefaultStrip (or a call with Options.Strip) replaces the
// diagnostic message with the family name whenever
// runtime.IsProductionMode reports true. The original message is never
// resolved in that case, so sensitive diagnostic text cannot leak into a
// production build.
package ensure
