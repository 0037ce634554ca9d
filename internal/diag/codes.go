package diag

import "fmt"

// Code identifies a kind of diagnostic. The thousands digit selects the family.
type Code uint16

const (
	UnknownCode Code = 0

	LexInfo                     Code = 1000
	LexUnknownChar              Code = 1001
	LexUnterminatedString       Code = 1002
	LexUnterminatedBlockComment Code = 1003
	LexBadNumber                Code = 1004
	LexTokenTooLong             Code = 1005
	LexUnterminatedChar         Code = 1006
	LexBadRawString             Code = 1007

	IOLoadFileError  Code = 4001
	IOWriteFileError Code = 4002
)

var codeTitles = map[Code]string{
	UnknownCode:                 "Unknown error",
	LexInfo:                     "Lexical information",
	LexUnknownChar:              "Unknown character",
	LexUnterminatedString:       "Unterminated string",
	LexUnterminatedBlockComment: "Unterminated block comment",
	LexBadNumber:                "Bad number",
	LexTokenTooLong:             "Token too long",
	LexUnterminatedChar:         "Unterminated character literal",
	LexBadRawString:             "Malformed raw string",
	IOLoadFileError:             "I/O load file error",
	IOWriteFileError:            "I/O write file error",
}

// семейства кодов по тысячам
var codeFamilies = map[int]string{1: "LEX", 4: "IO"}

// ID is the stable short form, e.g. LEX1002.
func (c Code) ID() string {
	if prefix, ok := codeFamilies[int(c)/1000]; ok {
		return fmt.Sprintf("%s%04d", prefix, int(c))
	}
	return "E0000"
}

func (c Code) Title() string {
	if title, ok := codeTitles[c]; ok {
		return title
	}
	return codeTitles[UnknownCode]
}

func (c Code) String() string {
	return "[" + c.ID() + "]: " + c.Title()
}
