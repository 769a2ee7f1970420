package utils

import (
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// FileExists reports whether a path exists.
func FileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// EnsureDir creates a directory if it doesn't exist
func EnsureDir(dirPath string) error {
	return os.MkdirAll(dirPath, 0755)
}

// EnsureWritableDir creates the directory when missing and probes that it
// accepts writes. Config init walks its candidate locations with this until
// one answers true.
func EnsureWritableDir(dirPath string) bool {
	if err := os.MkdirAll(dirPath, 0755); err != nil {
		log.Warnf("Cannot create directory %s: %v", dirPath, err)
		return false
	}
	probe := filepath.Join(dirPath, ".write_test")
	file, err := os.Create(probe)
	if err != nil {
		log.Warnf("Cannot write to directory %s: %v", dirPath, err)
		return false
	}
	file.Close()
	os.Remove(probe)
	return true
}

// GetAbsolutePath resolves a path for display in logs; relative paths that
// cannot be resolved are returned as-is.
func GetAbsolutePath(path string) string {
	if path == "" {
		return "unknown"
	}
	if !filepath.IsAbs(path) {
		if abs, err := filepath.Abs(path); err == nil {
			return abs
		}
	}
	return path
}

// GetExecutableDir returns the directory of the current executable.
// Fallback for when the user config dir cannot be resolved; if this fails
// too, config init falls back to builtin defaults.
func GetExecutableDir() (string, error) {
	execPath, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(execPath), nil
}
