package webvtt

import (
	"fmt"
	"os"
	"path/filepath"
)

// writes text to path, creating parent directories as needed
func WriteText(path, text string) error {
	if err := ensureDir(path); err != nil {
		return fmt.Errorf("failed to create directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0755)
}
