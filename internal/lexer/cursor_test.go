package lexer

import (
	"testing"

	"typeset/internal/source"
)

func createFile(content string) *source.File {
	fs := source.NewFileSet()
	id := fs.AddVirtual("test.rs", []byte(content))
	return fs.Get(id)
}

// TestSequentialReading проверяет последовательное чтение: "a\nb" → a, \n, b, EOF
func TestSequentialReading(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	for _, want := range []byte{'a', '\n', 'b'} {
		if cursor.EOF() {
			t.Fatalf("unexpected EOF before %q", want)
		}
		if got := cursor.Peek(); got != want {
			t.Errorf("Peek: want %q, got %q", want, got)
		}
		if got := cursor.Bump(); got != want {
			t.Errorf("Bump: want %q, got %q", want, got)
		}
	}

	if !cursor.EOF() {
		t.Error("Expected EOF at end")
	}
	if cursor.Peek() != 0 || cursor.Bump() != 0 {
		t.Error("Expected zero bytes at EOF")
	}
}

func TestPeekAtAndPeek2(t *testing.T) {
	cursor := NewCursor(createFile("abc"))

	if got := cursor.PeekAt(2); got != 'c' {
		t.Errorf("PeekAt(2): want 'c', got %q", got)
	}
	if got := cursor.PeekAt(3); got != 0 {
		t.Errorf("PeekAt past end: want 0, got %q", got)
	}

	b0, b1, ok := cursor.Peek2()
	if !ok || b0 != 'a' || b1 != 'b' {
		t.Errorf("Peek2 at start: got (%q, %q, %v)", b0, b1, ok)
	}

	cursor.BumpN(2)
	if _, _, ok = cursor.Peek2(); ok {
		t.Error("Expected Peek2 to fail on the last byte")
	}
}

func TestBumpNStopsAtLimit(t *testing.T) {
	cursor := NewCursor(createFile("abc"))
	cursor.BumpN(10)
	if cursor.Off != 3 || !cursor.EOF() {
		t.Errorf("BumpN past end: off=%d", cursor.Off)
	}
}

// TestSpanFrom проверяет SpanFrom на многобайтовом символе
func TestSpanFrom(t *testing.T) {
	file := createFile("α\nβ")
	cursor := NewCursor(file)

	mark := cursor.Mark()
	cursor.BumpN(2) // α занимает 2 байта
	span := cursor.SpanFrom(mark)

	if span.Start != 0 || span.End != 2 {
		t.Errorf("Expected span (0,2), got (%d,%d)", span.Start, span.End)
	}
	if span.File != file.ID {
		t.Errorf("Expected file id %d, got %d", file.ID, span.File)
	}
	if got := file.Snippet(span); got != "α" {
		t.Errorf("Expected snippet α, got %q", got)
	}
}

func TestEat(t *testing.T) {
	cursor := NewCursor(createFile("a\nb"))

	if cursor.Eat('x') {
		t.Error("Expected Eat('x') to fail when current char is 'a'")
	}
	if !cursor.Eat('a') || !cursor.Eat('\n') || !cursor.Eat('b') {
		t.Fatal("Expected Eat to consume a, \\n, b")
	}
	if cursor.Eat('x') {
		t.Error("Expected Eat at EOF to fail")
	}
}

// TestMarkReset проверяет работу Mark, Reset и SkipToEnd
func TestMarkReset(t *testing.T) {
	cursor := NewCursor(createFile("abc"))

	mark1 := cursor.Mark()
	cursor.Bump()
	mark2 := cursor.Mark()
	cursor.SkipToEnd()
	if !cursor.EOF() {
		t.Fatal("Expected EOF after SkipToEnd")
	}

	cursor.Reset(mark2)
	if cursor.Peek() != 'b' {
		t.Errorf("Expected peek 'b' after reset to mark2, got %c", cursor.Peek())
	}
	cursor.Reset(mark1)
	if cursor.Peek() != 'a' {
		t.Errorf("Expected peek 'a' after reset to mark1, got %c", cursor.Peek())
	}
}

func TestEatPairAndRest(t *testing.T) {
	cursor := NewCursor(createFile("*/x"))
	if cursor.EatPair('/', '*') {
		t.Error("EatPair must not match reversed bytes")
	}
	if !cursor.EatPair('*', '/') {
		t.Fatal("EatPair('*', '/') failed")
	}
	if got := string(cursor.Rest()); got != "x" {
		t.Errorf("Rest() = %q, want %q", got, "x")
	}
	cursor.Bump()
	if cursor.EatPair('x', 'x') || len(cursor.Rest()) != 0 {
		t.Error("EatPair and Rest at EOF")
	}
}
