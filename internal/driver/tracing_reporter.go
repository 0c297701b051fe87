package driver

import (
	"fmt"

	"stringslint/internal/diag"
	"stringslint/internal/source"
	"stringslint/internal/trace"
)

// tracingReporter forwards to next and mirrors every diagnostic as a trace point.
type tracingReporter struct {
	next   diag.Reporter
	tracer trace.Tracer
	parent uint64
}

func (r tracingReporter) Report(code diag.Code, sev diag.Severity, primary source.Pos, msg string, notes []diag.Note) {
	r.next.Report(code, sev, primary, msg, notes)
	if !r.tracer.Enabled() {
		return
	}
	trace.Point(r.tracer, trace.ScopeDiagnostic, code.ID(), msg, r.parent, map[string]string{
		"pos":      fmt.Sprintf("%d:%d", primary.Line, primary.Col),
		"severity": sev.Label(),
	})
}
