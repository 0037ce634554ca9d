package driver

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
)

// DefaultExtensions lists the file extensions formatted when none are configured.
var DefaultExtensions = []string{".rs"}

// CollectSourceFiles expands paths into a sorted, de-duplicated list of source files.
// Directories are walked recursively; files are kept when their extension is listed
// in extensions and neither their base name nor their path matches an exclude pattern.
// Paths named explicitly are kept regardless of extension.
func CollectSourceFiles(ctx context.Context, paths, extensions, exclude []string) ([]string, error) {
	if len(extensions) == 0 {
		extensions = DefaultExtensions
	}

	var files []string
	seen := make(map[string]struct{})
	addFile := func(path string) {
		path = filepath.Clean(path)
		if _, ok := seen[path]; ok {
			return
		}
		seen[path] = struct{}{}
		files = append(files, path)
	}

	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		info, err := os.Stat(p)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			addFile(p)
			continue
		}

		err = filepath.WalkDir(p, func(path string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}
			if err := ctx.Err(); err != nil {
				return err
			}
			if excluded(path, exclude) {
				if d.IsDir() {
					return filepath.SkipDir
				}
				return nil
			}
			if d.IsDir() {
				return nil
			}
			if hasExtension(path, extensions) {
				addFile(path)
			}
			return nil
		})
		if err != nil {
			return nil, err
		}
	}

	slices.Sort(files)
	return files, nil
}

func hasExtension(path string, extensions []string) bool {
	ext := filepath.Ext(path)
	for _, want := range extensions {
		if !strings.HasPrefix(want, ".") {
			want = "." + want
		}
		if ext == want {
			return true
		}
	}
	return false
}

// excluded сопоставляет шаблон и с базовым именем, и с путём целиком.
func excluded(path string, patterns []string) bool {
	base := filepath.Base(path)
	slashed := filepath.ToSlash(path)
	for _, pat := range patterns {
		if ok, _ := filepath.Match(pat, base); ok {
			return true
		}
		if ok, _ := filepath.Match(pat, slashed); ok {
			return true
		}
	}
	return false
}
