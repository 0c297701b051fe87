package observ

import (
	"strings"
	"testing"
	"time"
)

func fakeClock(step time.Duration) func() time.Time {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	n := 0
	return func() time.Time {
		n++
		return base.Add(time.Duration(n) * step)
	}
}

func TestTimerReport(t *testing.T) {
	tm := NewTimer()
	tm.now = fakeClock(time.Millisecond)

	load := tm.Begin("load")
	tm.End(load, "42 bytes")
	scan := tm.Begin("scan")
	tm.End(scan, "")

	report := tm.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("expected 2 phases, got %d", len(report.Phases))
	}
	if report.Phases[0].DurationMS != 1 || report.Phases[1].DurationMS != 1 {
		t.Fatalf("unexpected durations: %+v", report.Phases)
	}
	if report.TotalMS != 2 {
		t.Fatalf("total = %v, want 2", report.TotalMS)
	}

	summary := tm.Summary()
	if !strings.HasPrefix(summary, "timings:\n") {
		t.Fatalf("unexpected summary header: %q", summary)
	}
	if !strings.Contains(summary, "// 42 bytes") {
		t.Fatalf("summary misses phase note: %q", summary)
	}
	if !strings.Contains(summary, "total") {
		t.Fatalf("summary misses total: %q", summary)
	}
}

func TestTimerIgnoresBadIndex(t *testing.T) {
	tm := NewTimer()
	tm.End(3, "nothing")
	tm.End(-1, "nothing")
	if got := tm.Report(); len(got.Phases) != 0 || got.TotalMS != 0 {
		t.Fatalf("expected empty report, got %+v", got)
	}
}

func TestNilTimer(t *testing.T) {
	var tm *Timer
	idx := tm.Begin("load")
	tm.End(idx, "")
	if idx != -1 {
		t.Fatalf("nil timer Begin = %d, want -1", idx)
	}
	if len(tm.Report().Phases) != 0 {
		t.Fatal("nil timer must report nothing")
	}
}
