package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

const configFileName = "typeset.toml"

type fileConfig struct {
	Format formatConfig `toml:"format"`
	Run    runConfig    `toml:"run"`
}

type formatConfig struct {
	Wrap       bool     `toml:"wrap"`
	Extensions []string `toml:"extensions"`
	Exclude    []string `toml:"exclude"`
}

type runConfig struct {
	Jobs  int  `toml:"jobs"`
	Cache bool `toml:"cache"`
}

func findConfig(startDir string) (string, bool, error) {
	if startDir == "" {
		startDir = "."
	}
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", false, fmt.Errorf("failed to resolve start directory: %w", err)
	}
	for {
		candidate := filepath.Join(dir, configFileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, true, nil
		} else if !errors.Is(err, os.ErrNotExist) {
			return "", false, fmt.Errorf("failed to stat %q: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	return "", false, nil
}

// loadConfig reads an explicit config path, or looks for typeset.toml from startDir upwards.
// A missing file is not an error: the zero config is returned.
func loadConfig(explicit, startDir string) (fileConfig, error) {
	path := explicit
	if path == "" {
		found, ok, err := findConfig(startDir)
		if err != nil || !ok {
			return fileConfig{}, err
		}
		path = found
	}

	var cfg fileConfig
	meta, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return fileConfig{}, fmt.Errorf("%s: failed to parse TOML: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return fileConfig{}, fmt.Errorf("%s: unknown key %s", path, undecoded[0])
	}
	if cfg.Run.Jobs < 0 {
		return fileConfig{}, fmt.Errorf("%s: [run].jobs must not be negative", path)
	}
	return cfg, nil
}
