// Package trace provides the tracing subsystem of stringslint.
//
// Tracing is the tool's debug log: it records the check pipeline (load, scan,
// render) and, at the most verbose level, every diagnostic as it is reported.
// It is off by default and never writes to stdout, which belongs to
// diagnostics.
//
// # Usage
//
//	stringslint --trace=phase Localizable.strings
//	stringslint --trace=debug --trace-output=check.ndjson Localizable.strings
//
// # Levels
//
//   - LevelOff: No tracing
//   - LevelError: Reserved for fatal failures
//   - LevelPhase: Driver and pass boundaries
//   - LevelDetail: Per-file events
//   - LevelDebug: Everything including single diagnostics
//
// # Context Propagation
//
//	ctx = trace.WithTracer(ctx, tracer)
//	t := trace.FromContext(ctx)
//
//	span := trace.Begin(t, trace.ScopePass, "scan", parentID)
//	defer span.End("")
package trace
