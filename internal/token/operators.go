package token

// operators maps every operator and punctuation lexeme to its kind.
var operators = map[string]Kind{
	"...": DotDotDot, "..=": DotDotEq, "<<=": ShlEq, ">>=": ShrEq,

	"..": DotDot, "::": ColonColon, "->": Arrow, "=>": FatArrow,
	"&&": AndAnd, "||": OrOr, "==": EqEq, "!=": BangEq,
	"<=": LtEq, ">=": GtEq, "<<": Shl, ">>": Shr,
	"+=": PlusEq, "-=": MinusEq, "*=": StarEq, "/=": SlashEq,
	"%=": PercentEq, "^=": CaretEq, "&=": AmpEq, "|=": PipeEq,

	"+": Plus, "-": Minus, "*": Star, "/": Slash, "%": Percent, "^": Caret,
	"!": Bang, "~": Tilde, "&": Amp, "|": Pipe, "=": Assign, "<": Lt, ">": Gt,
	"@": At, ".": Dot, ",": Comma, ";": Semicolon, ":": Colon, "#": Pound,
	"$": Dollar, "?": Question,
	"(": LParen, ")": RParen, "{": LBrace, "}": RBrace, "[": LBracket, "]": RBracket,
}

// MaxOperatorLen is the length of the longest operator lexeme.
const MaxOperatorLen = 3

// LookupOperator returns the kind of an exact operator lexeme.
func LookupOperator(lexeme string) (Kind, bool) {
	k, ok := operators[lexeme]
	return k, ok
}
