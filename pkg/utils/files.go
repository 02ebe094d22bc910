package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// sourceExtensions lists the JavaScript/TypeScript file extensions the tool
// processes
var sourceExtensions = map[string]bool{
	".js":  true,
	".jsx": true,
	".ts":  true,
	".tsx": true,
	".mjs": true,
	".cjs": true,
	".mts": true,
	".cts": true,
}

// IsSourceFile checks if a file is a JavaScript/TypeScript source file.
// Declaration files (.d.ts) are excluded: they hold no runtime import block
// worth rewriting.
func IsSourceFile(filename string) bool {
	if strings.HasSuffix(filename, ".d.ts") || strings.HasSuffix(filename, ".d.mts") || strings.HasSuffix(filename, ".d.cts") {
		return false
	}
	return sourceExtensions[filepath.Ext(filename)]
}

// FindSourceFiles recursively finds all JavaScript/TypeScript source files
// in a directory, skipping node_modules and hidden directories
func FindSourceFiles(root string) ([]string, error) {
	var files []string

	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() && path != root {
			name := filepath.Base(path)
			if name == "node_modules" || strings.HasPrefix(name, ".") {
				return filepath.SkipDir
			}
			return nil
		}

		if !info.IsDir() && IsSourceFile(filepath.Base(path)) {
			files = append(files, path)
		}

		return nil
	})

	return files, err
}

// IsDirectory checks if the given path is a directory
func IsDirectory(path string) (bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		return false, err
	}
	return info.IsDir(), nil
}
