package token

import (
	"testing"
)

func TestLookupKeyword_Positive(t *testing.T) {
	cases := map[string]Kind{
		"fn":     KwFn,
		"let":    KwLet,
		"return": KwReturn,
		"as":     KwAs,
		"else":   KwElse,
		"match":  KwMatch,
		"Self":   KwSelfType,
		"self":   KwSelf,
	}

	for lexeme, want := range cases {
		got, ok := LookupKeyword(lexeme)
		if !ok {
			t.Fatalf("LookupKeyword(%q) = !ok, want %v", lexeme, want)
		}
		if got != want {
			t.Fatalf("LookupKeyword(%q) = %v, want %v", lexeme, got, want)
		}
	}
}

func TestLookupKeyword_Negative(t *testing.T) {
	notKw := []string{
		"Fn", "LET", "Match", // регистр важен
		"i32", "u8", "String", "Vec", // имена типов: Ident
		"println", "macro_rules",
	}
	for _, s := range notKw {
		if _, ok := LookupKeyword(s); ok {
			t.Fatalf("LookupKeyword(%q) returned ok=true, want false", s)
		}
	}
}

func TestEveryKeywordIsInRange(t *testing.T) {
	for lexeme, k := range keywords {
		if !k.IsKeyword() {
			t.Fatalf("%q maps to %v outside the keyword range", lexeme, k)
		}
		if k.String() != "Kw("+lexeme+")" {
			t.Fatalf("String() = %q for %q", k.String(), lexeme)
		}
	}
}

func TestLookupOperator(t *testing.T) {
	cases := map[string]Kind{
		"..=": DotDotEq,
		"::":  ColonColon,
		"=>":  FatArrow,
		"?":   Question,
		"}":   RBrace,
	}
	for lexeme, want := range cases {
		if got, ok := LookupOperator(lexeme); !ok || got != want {
			t.Errorf("LookupOperator(%q) = %v, %v; want %v", lexeme, got, ok, want)
		}
	}
	for _, bad := range []string{"", "<-", "===", "a"} {
		if _, ok := LookupOperator(bad); ok {
			t.Errorf("LookupOperator(%q) must fail", bad)
		}
	}
	for lexeme := range operators {
		if len(lexeme) > MaxOperatorLen {
			t.Errorf("%q is longer than MaxOperatorLen", lexeme)
		}
	}
}
