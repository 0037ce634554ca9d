package format

// Context is the syntactic nesting category that selects a decision table.
type Context uint8

const (
	// CodeBlock is a brace block of statements; an empty stack is a CodeBlock.
	CodeBlock Context = iota
	// CurlyList is a brace block that turned out to hold a comma list (struct literal, match arms).
	CurlyList
	// List is an inline bracket, paren or angle list.
	List
	// ListExploded is a bracket or paren list with one element per line.
	ListExploded
)

func (c Context) String() string {
	switch c {
	case CodeBlock:
		return "CodeBlock"
	case CurlyList:
		return "CurlyList"
	case List:
		return "List"
	case ListExploded:
		return "ListExploded"
	default:
		return "Context(?)"
	}
}

// contextStack follows brace, bracket, paren and angle nesting.
type contextStack []Context

func (s contextStack) top() Context {
	if len(s) == 0 {
		return CodeBlock
	}
	return s[len(s)-1]
}

func (s *contextStack) push(c Context) {
	*s = append(*s, c)
}

// pop на пустом стеке ничего не делает: лишние закрывающие скобки не паникуют.
func (s *contextStack) pop() {
	if len(*s) > 0 {
		*s = (*s)[:len(*s)-1]
	}
}

func (s contextStack) replaceTop(c Context) {
	if len(s) > 0 {
		s[len(s)-1] = c
	}
}
