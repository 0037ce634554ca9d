package format

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestRewrapBreaksAtLastWhitespace(t *testing.T) {
	a, b := other(strings.Repeat("a", 60)), other(strings.Repeat("b", 50))
	in := []Word{a, space(1), b, eof}
	want := []Word{a, lb, space(IndentWidth), b, eof}
	if diff := cmp.Diff(want, Rewrap(in)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrapEachWhitespaceOnce(t *testing.T) {
	a := other(strings.Repeat("a", 60))
	b := other(strings.Repeat("b", 50))
	c := other(strings.Repeat("c", 50))
	in := []Word{a, space(1), b, space(1), c, eof}
	want := []Word{a, lb, space(IndentWidth), b, lb, space(IndentWidth), c, eof}
	if diff := cmp.Diff(want, Rewrap(in)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrapLeavesWideWordsOverlong(t *testing.T) {
	in := []Word{other("x"), space(1), other(strings.Repeat("w", 120)), eof}
	if diff := cmp.Diff(in, Rewrap(in)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrapWithoutWhitespaceKeepsLine(t *testing.T) {
	in := []Word{other(strings.Repeat("a", 60)), slim("."), other(strings.Repeat("b", 60)), eof}
	if diff := cmp.Diff(in, Rewrap(in)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrapCountsIndent(t *testing.T) {
	a, b := other(strings.Repeat("a", 50)), other(strings.Repeat("b", 40))
	// с отступом 12 строка 12+50+1+40 = 103 не помещается
	in := []Word{
		marker(IndentPlus), marker(IndentPlus), marker(IndentPlus),
		a, space(1), b, eof,
	}
	want := []Word{
		marker(IndentPlus), marker(IndentPlus), marker(IndentPlus),
		a, lb, space(IndentWidth), b, eof,
	}
	if diff := cmp.Diff(want, Rewrap(in)); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestRewrapUsesDisplayWidth(t *testing.T) {
	// 40 широких рун занимают 80 колонок
	wide := other(strings.Repeat("界", 40))
	in := []Word{wide, space(1), other(strings.Repeat("b", 30)), eof}
	got := Rewrap(in)
	if len(got) != len(in)+1 {
		t.Fatalf("expected a wrap, got %v", got)
	}
}
