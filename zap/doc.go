// Package zap provides the zap-backed implementation of log.Logger.
//
// The Logger emits JSON to stderr with an ISO8601 timestamp and carries a
// runtime-adjustable AtomicLevel. When a context with an active
// OpenTelemetry span is passed to Log, trace_id and span_id fields are
// appended automatically.
package zap
