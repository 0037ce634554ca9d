package source

import (
	"fmt"
	"os"

	"fortio.org/safecast"
)

// FileSet owns every file loaded during a run. Adding the same path again
// creates a new version; spans of earlier versions stay resolvable.
type FileSet struct {
	files []*File
}

func NewFileSet() *FileSet {
	return &FileSet{}
}

// Add registers content that is already normalized.
func (fs *FileSet) Add(path string, content []byte, flags FileFlags) FileID {
	n, err := safecast.Conv[uint32](len(fs.files))
	if err != nil {
		panic(fmt.Errorf("too many files: %w", err))
	}
	id := FileID(n)
	fs.files = append(fs.files, &File{
		ID:      id,
		Path:    normalizePath(path),
		Content: content,
		LineIdx: buildLineIndex(content),
		Flags:   flags,
	})
	return id
}

// Load reads path from disk and adds it via AddBytes.
func (fs *FileSet) Load(path string) (FileID, error) {
	// #nosec G304 -- path is provided by the caller
	raw, err := os.ReadFile(path)
	if err != nil {
		return 0, err
	}
	return fs.AddBytes(path, raw)
}

// AddBytes strips a BOM, decodes UTF-16 and turns CRLF into LF before adding.
func (fs *FileSet) AddBytes(path string, raw []byte) (FileID, error) {
	content, flags, err := decodeText(raw)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}
	if normalized, changed := normalizeCRLF(content); changed {
		content = normalized
		flags |= FileNormalizedCRLF
	}
	return fs.Add(path, content, flags), nil
}

// AddVirtual adds in-memory content (stdin, tests) as is.
func (fs *FileSet) AddVirtual(name string, content []byte) FileID {
	return fs.Add(name, content, FileVirtual)
}

func (fs *FileSet) Get(id FileID) *File {
	return fs.files[id]
}

func (fs *FileSet) Len() int {
	return len(fs.files)
}

// Latest returns the newest version of path.
func (fs *FileSet) Latest(path string) (FileID, bool) {
	path = normalizePath(path)
	for i := len(fs.files) - 1; i >= 0; i-- {
		if fs.files[i].Path == path {
			return fs.files[i].ID, true
		}
	}
	return 0, false
}

// Resolve converts both ends of span into line/column positions.
func (fs *FileSet) Resolve(span Span) (start, end LineCol) {
	f := fs.files[span.File]
	return f.Position(span.Start), f.Position(span.End)
}

// Position converts a byte offset into a line/column position.
func (f *File) Position(off uint32) LineCol {
	return toLineCol(f.LineIdx, off)
}

// Snippet returns the text under span, clamped to the file.
func (f *File) Snippet(span Span) string {
	n := uint32(len(f.Content)) // #nosec G115 -- длина проверена в Add через LineIdx
	start, end := min(span.Start, n), min(span.End, n)
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}

// GetLine возвращает строку lineNum (с единицы) без '\n'; пустую строку, если её нет.
func (f *File) GetLine(lineNum uint32) string {
	if lineNum == 0 || int(lineNum) > len(f.LineIdx)+1 {
		return ""
	}
	start := 0
	if lineNum > 1 {
		start = int(f.LineIdx[lineNum-2]) + 1
	}
	end := len(f.Content)
	if int(lineNum) <= len(f.LineIdx) {
		end = int(f.LineIdx[lineNum-1])
	}
	if start >= end {
		return ""
	}
	return string(f.Content[start:end])
}
