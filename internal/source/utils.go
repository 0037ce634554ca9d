package source

import (
	"bytes"
	"path/filepath"
	"sort"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// decodeText снимает BOM и перекодирует UTF-16 в UTF-8.
// Файлы без BOM возвращаются как есть, байт в байт.
func decodeText(raw []byte) ([]byte, FileFlags, error) {
	var flags FileFlags
	switch {
	case bytes.HasPrefix(raw, []byte{0xEF, 0xBB, 0xBF}):
		flags = FileHadBOM
	case bytes.HasPrefix(raw, []byte{0xFF, 0xFE}), bytes.HasPrefix(raw, []byte{0xFE, 0xFF}):
		flags = FileHadBOM | FileDecodedUTF16
	default:
		return raw, 0, nil
	}
	out, _, err := transform.Bytes(unicode.BOMOverride(unicode.UTF8.NewDecoder()), raw)
	if err != nil {
		return nil, 0, err
	}
	return out, flags, nil
}

// normalizeCRLF заменяет \r\n на \n; одиночный \r остаётся.
func normalizeCRLF(content []byte) ([]byte, bool) {
	if bytes.IndexByte(content, '\r') < 0 {
		return content, false
	}
	out := bytes.ReplaceAll(content, []byte("\r\n"), []byte("\n"))
	return out, len(out) != len(content)
}

func buildLineIndex(content []byte) []uint32 {
	idx := make([]uint32, 0, bytes.Count(content, []byte{'\n'}))
	for off := 0; ; {
		i := bytes.IndexByte(content[off:], '\n')
		if i < 0 {
			return idx
		}
		off += i
		idx = append(idx, uint32(off)) // #nosec G115 -- файлы больше 4 GiB не поддерживаются
		off++
	}
}

func toLineCol(lineIdx []uint32, off uint32) LineCol {
	// число переводов строки строго до off и есть номер строки с нуля
	line := sort.Search(len(lineIdx), func(i int) bool { return lineIdx[i] >= off })
	var lineStart uint32
	if line > 0 {
		lineStart = lineIdx[line-1] + 1
	}
	return LineCol{Line: uint32(line) + 1, Col: off - lineStart + 1} // #nosec G115
}

func normalizePath(p string) string {
	return filepath.ToSlash(filepath.Clean(p))
}
