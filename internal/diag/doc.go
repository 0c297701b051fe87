// Package diag defines the diagnostic model shared by the loader, the scanner
// and the renderers.
//
// # Data model
//
// Diagnostic is the central record. It contains:
//
//   - Severity – Note, Warning or Error (severity.go).
//   - Code – compact numeric identifier (codes.go) with a stable string form.
//   - Message – short, human oriented text.
//   - Primary – the source.Pos the diagnostic points at.
//   - Notes – optional secondary positions, e.g. “related key is here”.
//
// Notes never make a run fail; only Error severity does.
//
// # Emitting diagnostics
//
// Producers talk to a Reporter and never to storage directly. The scanner
// builds reports through NewReportBuilder / ReportError and chains WithNote
// before calling Emit. BagReporter collects everything into a Bag, which
// also keeps the run's failure flag.
//
// Package diag does no formatting of source excerpts and no IO; rendering
// lives in internal/diagfmt.
package diag
