package driver

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"stringslint/internal/diag"
	"stringslint/internal/lexer"
	"stringslint/internal/observ"
	"stringslint/internal/source"
	"stringslint/internal/trace"
)

// StdinPath is the path argument that makes Check read standard input.
const StdinPath = "-"

// CheckOptions controls a single check run.
type CheckOptions struct {
	MaxDiagnostics int // 0 = unlimited; the failure flag counts dropped errors too
	StrictComments bool
	Timer          *observ.Timer // nil disables phase timings
	Stdin          io.Reader     // read when path is StdinPath; defaults to os.Stdin
}

// CheckResult holds everything a renderer needs after a check.
type CheckResult struct {
	FileSet *source.FileSet
	File    *source.File
	Bag     *diag.Bag
	Scan    lexer.Result
}

// Failed reports whether any error was reported.
func (r *CheckResult) Failed() bool {
	return r != nil && r.Bag.HasErrors()
}

// Check loads path and validates it. The returned error is non-nil only when
// the file cannot be read or decoded; it wraps source.ErrFileUnreadable.
// Syntax problems are reported through CheckResult.Bag.
func Check(ctx context.Context, path string, opts CheckOptions) (*CheckResult, error) {
	tracer := trace.FromContext(ctx)
	root := trace.Begin(tracer, trace.ScopeDriver, "check", 0)

	fs := source.NewFileSet()

	loadIdx := opts.Timer.Begin("load")
	loadSpan := trace.Begin(tracer, trace.ScopePass, "load", root.ID())
	fileID, err := load(fs, path, opts.Stdin)
	if err != nil {
		loadSpan.End(err.Error())
		opts.Timer.End(loadIdx, "failed")
		root.End("unreadable")
		return nil, err
	}
	file := fs.Get(fileID)
	loadSpan.End("")
	opts.Timer.End(loadIdx, fmt.Sprintf("%d bytes", len(file.Content)))
	trace.Point(tracer, trace.ScopeFile, "file", file.Path, root.ID(), fileFacts(file))

	bag := diag.NewBag(opts.MaxDiagnostics)

	scanIdx := opts.Timer.Begin("scan")
	scanSpan := trace.Begin(tracer, trace.ScopePass, "scan", root.ID())
	adapter := &lexer.ReporterAdapter{Bag: bag}
	res := lexer.Scan(file, lexer.Options{
		Reporter:       tracingReporter{next: adapter.Reporter(), tracer: tracer, parent: scanSpan.ID()},
		StrictComments: opts.StrictComments,
	})
	scanSpan.
		WithExtra("entries", strconv.Itoa(res.Entries)).
		WithExtra("errors", strconv.Itoa(res.Errors)).
		End(res.Final.String())
	opts.Timer.End(scanIdx, fmt.Sprintf("entries=%d errors=%d", res.Entries, res.Errors))

	bag.Sort()

	status := "ok"
	if bag.HasErrors() {
		status = "failed"
	}
	root.End(status)

	return &CheckResult{
		FileSet: fs,
		File:    file,
		Bag:     bag,
		Scan:    res,
	}, nil
}

func load(fs *source.FileSet, path string, stdin io.Reader) (source.FileID, error) {
	if path != StdinPath {
		return fs.Load(path)
	}
	if stdin == nil {
		stdin = os.Stdin
	}
	return fs.LoadReader("<stdin>", stdin)
}

func fileFacts(f *source.File) map[string]string {
	facts := map[string]string{
		"bytes": strconv.Itoa(len(f.Content)),
		"lines": strconv.Itoa(len(f.Lines)),
	}
	if f.Flags&source.FileDecodedUTF16 != 0 {
		facts["utf16"] = "true"
	}
	if f.Flags&source.FileHadBOM != 0 {
		facts["bom"] = "true"
	}
	if f.Flags&source.FileNormalizedCRLF != 0 {
		facts["crlf"] = "true"
	}
	return facts
}
