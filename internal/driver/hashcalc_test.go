package driver

import (
	"testing"

	"typeset/internal/version"
)

func TestCacheKey_DeterministicAndSensitive(t *testing.T) {
	raw := []byte("fn f() {}\n")

	a := cacheKey(raw, false)
	if a != cacheKey(append([]byte(nil), raw...), false) {
		t.Fatal("cacheKey is not deterministic")
	}
	if a == cacheKey(raw, true) {
		t.Error("rewrap flag must change the key")
	}
	if a == cacheKey([]byte("fn g() {}\n"), false) {
		t.Error("content must change the key")
	}

	old := version.Version
	version.Version = "9.9.9-test"
	defer func() { version.Version = old }()
	if a == cacheKey(raw, false) {
		t.Error("formatter version must change the key")
	}
}
