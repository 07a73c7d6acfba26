// Package log defines the minimal structured logging surface consumed by
// the assertion engine.
//
// The package intentionally contains no logging backend. It defines the
// Logger interface, severity levels, and typed fields; the zap subpackage
// provides the production implementation, and NopLogger is available where
// no output is wanted.
//
// A validator family logs through this interface only when one is
// configured; the engine never writes to stderr on its own.
package log
