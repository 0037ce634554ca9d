package token

// Kind represents the category of a source token.
type Kind uint8

const (
	// Invalid indicates an erroneous token.
	Invalid Kind = iota
	// EOF marks the end of the source input.
	EOF

	// Whitespace is a run of spaces, tabs and newlines.
	Whitespace
	// LineComment is a // comment without its trailing newline.
	LineComment
	// BlockComment is a /* */ comment, nesting included.
	BlockComment
	// DocComment is a ///, //!, /** or /*! comment.
	DocComment

	// Ident represents an identifier token.
	Ident
	// Lifetime represents a 'label or 'a lifetime.
	Lifetime
	// Underscore represents the wildcard identifier.
	Underscore // _

	keywordBeg
	KwAs       // as
	KwAsync    // async
	KwAwait    // await
	KwBreak    // break
	KwConst    // const
	KwContinue // continue
	KwCrate    // crate
	KwDyn      // dyn
	KwElse     // else
	KwEnum     // enum
	KwExtern   // extern
	KwFalse    // false
	KwFn       // fn
	KwFor      // for
	KwIf       // if
	KwImpl     // impl
	KwIn       // in
	KwLet      // let
	KwLoop     // loop
	KwMatch    // match
	KwMod      // mod
	KwMove     // move
	KwMut      // mut
	KwPub      // pub
	KwRef      // ref
	KwReturn   // return
	KwSelf     // self
	KwSelfType // Self
	KwStatic   // static
	KwStruct   // struct
	KwSuper    // super
	KwTrait    // trait
	KwTrue     // true
	KwType     // type
	KwUnsafe   // unsafe
	KwUse      // use
	KwWhere    // where
	KwWhile    // while
	keywordEnd

	literalBeg
	// IntLit represents an integer literal, suffix included.
	IntLit
	// FloatLit represents a float literal, suffix included.
	FloatLit
	// CharLit represents 'c'.
	CharLit
	// ByteLit represents b'c'.
	ByteLit
	// StringLit represents "s".
	StringLit
	// RawStringLit represents r#"s"#.
	RawStringLit
	// ByteStringLit represents b"s".
	ByteStringLit
	// RawByteStringLit represents br#"s"#.
	RawByteStringLit
	literalEnd

	Plus      // +
	Minus     // -
	Star      // *
	Slash     // /
	Percent   // %
	Caret     // ^
	Bang      // !
	Tilde     // ~
	Amp       // &
	Pipe      // |
	AndAnd    // &&
	OrOr      // ||
	Shl       // <<
	Shr       // >>
	PlusEq    // +=
	MinusEq   // -=
	StarEq    // *=
	SlashEq   // /=
	PercentEq // %=
	CaretEq   // ^=
	AmpEq     // &=
	PipeEq    // |=
	ShlEq     // <<=
	ShrEq     // >>=
	Assign    // =
	EqEq      // ==
	BangEq    // !=
	Lt        // <
	LtEq      // <=
	Gt        // >
	GtEq      // >=
	At        // @
	Dot       // .
	DotDot    // ..
	DotDotDot // ...
	DotDotEq  // ..=
	Comma     // ,
	Semicolon // ;
	Colon     // :
	ColonColon
	Arrow    // ->
	FatArrow // =>
	Pound    // #
	Dollar   // $
	Question // ?
	LParen   // (
	RParen   // )
	LBrace   // {
	RBrace   // }
	LBracket // [
	RBracket // ]
)

var kindNames = map[Kind]string{
	Invalid:          "Invalid",
	EOF:              "EOF",
	Whitespace:       "Whitespace",
	LineComment:      "LineComment",
	BlockComment:     "BlockComment",
	DocComment:       "DocComment",
	Ident:            "Ident",
	Lifetime:         "Lifetime",
	Underscore:       "Underscore",
	IntLit:           "IntLit",
	FloatLit:         "FloatLit",
	CharLit:          "CharLit",
	ByteLit:          "ByteLit",
	StringLit:        "StringLit",
	RawStringLit:     "RawStringLit",
	ByteStringLit:    "ByteStringLit",
	RawByteStringLit: "RawByteStringLit",
	Plus:             "Plus",
	Minus:            "Minus",
	Star:             "Star",
	Slash:            "Slash",
	Percent:          "Percent",
	Caret:            "Caret",
	Bang:             "Bang",
	Tilde:            "Tilde",
	Amp:              "Amp",
	Pipe:             "Pipe",
	AndAnd:           "AndAnd",
	OrOr:             "OrOr",
	Shl:              "Shl",
	Shr:              "Shr",
	PlusEq:           "PlusEq",
	MinusEq:          "MinusEq",
	StarEq:           "StarEq",
	SlashEq:          "SlashEq",
	PercentEq:        "PercentEq",
	CaretEq:          "CaretEq",
	AmpEq:            "AmpEq",
	PipeEq:           "PipeEq",
	ShlEq:            "ShlEq",
	ShrEq:            "ShrEq",
	Assign:           "Assign",
	EqEq:             "EqEq",
	BangEq:           "BangEq",
	Lt:               "Lt",
	LtEq:             "LtEq",
	Gt:               "Gt",
	GtEq:             "GtEq",
	At:               "At",
	Dot:              "Dot",
	DotDot:           "DotDot",
	DotDotDot:        "DotDotDot",
	DotDotEq:         "DotDotEq",
	Comma:            "Comma",
	Semicolon:        "Semicolon",
	Colon:            "Colon",
	ColonColon:       "ColonColon",
	Arrow:            "Arrow",
	FatArrow:         "FatArrow",
	Pound:            "Pound",
	Dollar:           "Dollar",
	Question:         "Question",
	LParen:           "LParen",
	RParen:           "RParen",
	LBrace:           "LBrace",
	RBrace:           "RBrace",
	LBracket:         "LBracket",
	RBracket:         "RBracket",
}

// String returns the kind name; keywords render as Kw<Lexeme>.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	if k.IsKeyword() {
		for lexeme, kw := range keywords {
			if kw == k {
				return "Kw(" + lexeme + ")"
			}
		}
	}
	return "Kind(?)"
}

// IsKeyword reports whether k is a reserved word.
func (k Kind) IsKeyword() bool { return k > keywordBeg && k < keywordEnd }

// IsLiteral reports whether k is a literal kind.
func (k Kind) IsLiteral() bool { return k > literalBeg && k < literalEnd }

// IsTrivia reports whether k carries no syntax: whitespace or a comment.
func (k Kind) IsTrivia() bool {
	switch k {
	case Whitespace, LineComment, BlockComment, DocComment:
		return true
	default:
		return false
	}
}
