package source

// FileID indexes a File inside its FileSet.
type FileID uint32

// FileFlags records what was done to the raw bytes before they became Content.
type FileFlags uint8

const (
	FileVirtual        FileFlags = 1 << iota // не с диска: stdin, тесты
	FileHadBOM                               // BOM снят
	FileNormalizedCRLF                       // \r\n заменены на \n
	FileDecodedUTF16                         // перекодирован из UTF-16
)

// File is one loaded source. Content is already decoded and uses \n line endings.
type File struct {
	ID      FileID
	Path    string
	Content []byte
	LineIdx []uint32 // смещения всех '\n' по возрастанию
	Flags   FileFlags
}

// LineCol is a 1-based position. Col counts bytes.
type LineCol struct {
	Line uint32
	Col  uint32
}
