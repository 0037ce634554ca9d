package diagfmt

import (
	"os"
	"path/filepath"
)

// autoPathLimit is the length above which PathModeAuto shortens absolute paths.
const autoPathLimit = 40

func displayPath(path string, mode PathMode, baseDir string) string {
	switch mode {
	case PathModeAbsolute:
		if abs, err := filepath.Abs(path); err == nil {
			return filepath.ToSlash(abs)
		}
		return path
	case PathModeRelative:
		if baseDir == "" {
			if wd, err := os.Getwd(); err == nil {
				baseDir = wd
			}
		}
		if rel, err := filepath.Rel(baseDir, path); err == nil {
			return filepath.ToSlash(rel)
		}
		return path
	case PathModeBasename:
		return filepath.Base(path)
	default:
		if filepath.IsAbs(path) && len(path) > autoPathLimit {
			return filepath.Base(path)
		}
		return path
	}
}
