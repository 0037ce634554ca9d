package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB, ограничение для тестового корпуса
)

var snippetSeeds = []string{
	"",
	"fn main() {}\n",
	"fn f(){return}",
	"let x = *y;",
	"Point{x: 1, y: 2}",
	"foo(\na,\nb)",
	"if a {\nb\n}\nelse {\nc\n}",
	"match x {\n1 => a,\n2 => b,\n}",
	"use a::{b, c};",
	"#[derive(Debug)]\nstruct S<'a> {\n    r: &'a str,\n}\n",
	"let s = r#\"raw \"quoted\"\"#; let b = b'x'; let n = 0x1f_u8 + 1e3f32;",
	"/* outer /* nested */ still */ fn f() {} // tail\n",
	"/// doc\n//! inner\nfn g() -> Option<Vec<u8>> { None }",
	"impl<T: Clone> Trait for Box<T> where T: Send { fn m(&self) -> T { self.0.clone() } }",
	"let v = vec![1, 2, 3].iter().map(|x| x * 2).collect::<Vec<_>>();",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range snippetSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.rs файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".rs" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}
