package diag

import (
	"testing"

	"stringslint/internal/source"
)

func TestBagFailureFlagSurvivesLimit(t *testing.T) {
	bag := NewBag(1)
	r := BagReporter{Bag: bag}

	r.Report(StrExpectKey, SevNote, source.Pos{Off: 4}, "just a note", nil)
	if bag.HasErrors() {
		t.Fatal("note must not set the failure flag")
	}

	ReportError(r, StrExpectEquals, source.Pos{Off: 9}, "expected '='").Emit()
	if !bag.HasErrors() {
		t.Fatal("dropped error must still set the failure flag")
	}
	if bag.Len() != 1 || bag.Dropped() != 1 {
		t.Fatalf("expected 1 stored and 1 dropped, got %d/%d", bag.Len(), bag.Dropped())
	}
	if got := bag.Items()[0].Severity; got != SevNote {
		t.Fatalf("stored item severity = %s, want note", got)
	}
}

func TestBagUnlimited(t *testing.T) {
	bag := NewBag(0)
	for i := range 200 {
		bag.Add(NewError(StrExpectKey, source.Pos{Off: uint32(i)}, "expected key"))
	}
	if bag.Len() != 200 || bag.Dropped() != 0 || !bag.HasErrors() {
		t.Fatalf("unexpected bag state: len=%d dropped=%d failed=%v", bag.Len(), bag.Dropped(), bag.HasErrors())
	}
}

func TestBagSortKeepsReportOrderAtSameOffset(t *testing.T) {
	bag := NewBag(0)
	bag.Add(NewError(StrExpectKey, source.Pos{Off: 20}, "expected key"))
	bag.Add(NewError(StrExpectSemicolon, source.Pos{Off: 10}, "expected ';'"))
	bag.Add(NewError(StrExpectKey, source.Pos{Off: 10}, "expected key"))
	bag.Add(NewError(StrExpectEquals, source.Pos{Off: 3}, "expected '='"))
	bag.Sort()

	want := []Code{StrExpectEquals, StrExpectSemicolon, StrExpectKey, StrExpectKey}
	items := bag.Items()
	for i, code := range want {
		if items[i].Code != code {
			t.Fatalf("position %d: got %s, want %s", i, items[i].Code.ID(), code.ID())
		}
	}
	if items[2].Primary.Off != 10 || items[3].Primary.Off != 20 {
		t.Fatalf("unexpected offsets: %d %d", items[2].Primary.Off, items[3].Primary.Off)
	}
}

func TestReportBuilderEmitsOnce(t *testing.T) {
	bag := NewBag(0)
	b := ReportError(BagReporter{Bag: bag}, StrExpectValue, source.Pos{}, "expected value string").
		WithNote(source.Pos{Off: 1}, "related key is here")
	b.Emit()
	b.Emit()

	if bag.Len() != 1 {
		t.Fatalf("expected exactly one diagnostic, got %d", bag.Len())
	}
	if got := bag.Items()[0].Notes; len(got) != 1 || got[0].Msg != "related key is here" {
		t.Fatalf("unexpected notes: %+v", got)
	}

	var nilBuilder *ReportBuilder
	nilBuilder.WithNote(source.Pos{}, "x").Emit()
}

func TestCodeID(t *testing.T) {
	tests := map[Code]string{
		StrExpectKey:        "STR1001",
		EOFExpectCommentEnd: "EOF1107",
		IOFileUnreadable:    "IO4001",
		Code(9999):          "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %q, want %q", code, got, want)
		}
	}
	if got := Code(9999).Title(); got != "Unknown error" {
		t.Errorf("unexpected fallback title %q", got)
	}
}
