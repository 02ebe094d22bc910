package utils

import (
	"os"
	"path/filepath"
)

// FindUpward walks from dir toward the filesystem root looking for a file
// with the given name and returns its path. The walk is bounded so a cyclic
// or degenerate path cannot loop forever.
func FindUpward(dir, name string) (string, bool) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return "", false
	}

	const maxIterations = 32
	for i := 0; i < maxIterations; i++ {
		candidate := filepath.Join(abs, name)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, true
		}

		parent := filepath.Dir(abs)
		if parent == abs {
			break
		}
		abs = parent
	}
	return "", false
}
