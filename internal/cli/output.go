package cli

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/mgpai22/webvtt/internal/webvtt"
)

// default .vtt path for an SRT input, never the input itself
func convertedPath(srtPath string) string {
	derived := webvtt.VTTPath(srtPath)
	if derived == srtPath {
		derived = srtPath + ".vtt"
	}
	return cfg.OutputPath(derived)
}

// <base>.<suffix><ext>, e.g. movie.offset.vtt
func suffixedPath(path, suffix string) string {
	ext := filepath.Ext(path)
	baseName := strings.TrimSuffix(path, ext)
	if ext == "" || strings.EqualFold(ext, ".srt") {
		ext = ".vtt"
	}
	return cfg.OutputPath(fmt.Sprintf("%s.%s%s", baseName, suffix, ext))
}

func checkOverwrite(path string, force bool) error {
	if force || cfg.Output.Overwrite {
		return nil
	}
	_, err := os.Stat(path)
	if err == nil {
		return fmt.Errorf(
			"output file already exists: %s (use --force to overwrite)",
			path,
		)
	}
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("failed to check output file: %w", err)
}

// reads a subtitle file as a document, converting SRT input first
func loadDocument(path string) (*webvtt.Document, error) {
	content, err := webvtt.ReadText(path)
	if err != nil {
		return nil, err
	}

	if strings.EqualFold(filepath.Ext(path), ".srt") {
		logger.Debugw("Converting SRT input", "input", path)
		content = webvtt.ConvertSRT(content)
	}

	doc, err := webvtt.ParseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return doc, nil
}
