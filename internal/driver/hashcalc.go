package driver

import (
	"crypto/sha256"

	"typeset/internal/version"
)

// Digest is a SHA-256 sum.
type Digest [32]byte

// cacheKey: H(raw content || rewrap flag || formatter version).
// Смена версии форматтера инвалидирует все записи.
func cacheKey(raw []byte, rewrap bool) Digest {
	h := sha256.New()
	content := sha256.Sum256(raw)
	_, _ = h.Write(content[:])
	if rewrap {
		_, _ = h.Write([]byte{1})
	} else {
		_, _ = h.Write([]byte{0})
	}
	_, _ = h.Write([]byte(version.Plain()))
	var out Digest
	copy(out[:], h.Sum(nil))
	return out
}
