package diag

import (
	"testing"

	"typeset/internal/source"
)

func TestBagLimitAndErrors(t *testing.T) {
	bag := NewBag(2)
	if !bag.Add(New(SevWarning, LexBadNumber, source.Span{Start: 4, End: 5}, "w")) {
		t.Fatalf("first Add must succeed")
	}
	if bag.HasErrors() {
		t.Fatalf("warnings are not errors")
	}
	if !bag.HasWarnings() {
		t.Fatalf("expected warnings")
	}
	bag.Add(NewError(LexUnknownChar, source.Span{Start: 1, End: 2}, "unknown character"))
	if bag.Add(NewError(LexUnknownChar, source.Span{Start: 9, End: 10}, "dropped")) {
		t.Fatalf("Add over the limit must fail")
	}
	if bag.Len() != 2 || !bag.HasErrors() {
		t.Fatalf("unexpected bag state: len=%d errors=%v", bag.Len(), bag.HasErrors())
	}

	bag.Sort()
	if bag.Items()[0].Code != LexUnknownChar {
		t.Fatalf("Sort must order by start offset, got %v first", bag.Items()[0].Code)
	}
	if err := bag.Err(); err == nil || err.Error() != "LEX1001 unknown character" {
		t.Fatalf("Err() = %v", err)
	}
}

func TestBagReporter(t *testing.T) {
	bag := NewBag(8)
	var r Reporter = BagReporter{Bag: bag}
	r.Report(LexUnterminatedString, SevError, source.Span{}, "unterminated string literal", nil)
	if bag.Len() != 1 {
		t.Fatalf("expected one diagnostic, got %d", bag.Len())
	}
	NopReporter{}.Report(LexInfo, SevInfo, source.Span{}, "ignored", nil)
}

func TestCodeStrings(t *testing.T) {
	if LexBadNumber.ID() != "LEX1004" {
		t.Fatalf("ID() = %q", LexBadNumber.ID())
	}
	if IOLoadFileError.String() != "[IO4001]: I/O load file error" {
		t.Fatalf("String() = %q", IOLoadFileError.String())
	}
	if Code(42).Title() != "Unknown error" {
		t.Fatalf("unknown codes fall back to UnknownCode title")
	}
}

func TestBagDroppedAndUnlimited(t *testing.T) {
	bag := NewBag(1)
	bag.Add(NewError(LexBadNumber, source.Span{}, "a"))
	bag.Add(NewError(LexBadNumber, source.Span{}, "b"))
	bag.Add(NewError(LexBadNumber, source.Span{}, "c"))
	if bag.Len() != 1 || bag.Dropped() != 2 {
		t.Fatalf("len=%d dropped=%d, want 1 and 2", bag.Len(), bag.Dropped())
	}

	unlimited := NewBag(0)
	for range 300 {
		unlimited.Add(New(SevInfo, LexInfo, source.Span{}, "i"))
	}
	if unlimited.Len() != 300 || unlimited.Dropped() != 0 {
		t.Fatalf("len=%d dropped=%d, want 300 and 0", unlimited.Len(), unlimited.Dropped())
	}
}

func TestWithNoteDoesNotAlias(t *testing.T) {
	base := NewError(LexBadNumber, source.Span{}, "bad").WithNote(source.Span{Start: 1}, "first")
	a := base.WithNote(source.Span{Start: 2}, "a")
	b := base.WithNote(source.Span{Start: 3}, "b")
	if a.Notes[1].Msg != "a" || b.Notes[1].Msg != "b" || len(base.Notes) != 1 {
		t.Fatalf("notes alias: a=%v b=%v base=%v", a.Notes, b.Notes, base.Notes)
	}
}
