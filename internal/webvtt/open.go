package webvtt

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// WebVTT file on disk: a path paired with its parsed document
type File struct {
	Path     string
	Document *Document
}

func Open(path string) (*File, error) {
	content, err := ReadText(path)
	if err != nil {
		return nil, err
	}

	doc, err := ParseDocument(content)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	return &File{Path: path, Document: doc}, nil
}

// reads a text file as UTF-8. A leading byte order mark is stripped and
// switches decoding to UTF-16 when it says so.
func ReadText(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrInputMissing, path)
		}
		return "", fmt.Errorf("failed to read %s: %w", path, err)
	}

	decoder := unicode.BOMOverride(unicode.UTF8.NewDecoder())
	decoded, _, err := transform.Bytes(decoder, data)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s: %w", path, err)
	}

	return string(decoded), nil
}

func (f *File) Filename() string {
	return filepath.Base(f.Path)
}

// writes the document to output, or next to the source with a .vtt
// extension when output is empty. Returns the path written.
func (f *File) Save(output string) (string, error) {
	if output == "" {
		output = VTTPath(f.Path)
	}

	if err := WriteText(output, f.Document.String()); err != nil {
		return "", err
	}
	return output, nil
}

// reads an SRT file, converts it to WebVTT and writes the result to output
// (default: the source path with a .vtt extension)
func ConvertSRTFile(srtPath, output string) (*File, error) {
	srt, err := ReadText(srtPath)
	if err != nil {
		return nil, err
	}

	if output == "" {
		output = VTTPath(srtPath)
	}

	vtt := ConvertSRT(srt)
	doc, err := ParseDocument(vtt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse converted %s: %w", srtPath, err)
	}

	if err := WriteText(output, vtt); err != nil {
		return nil, err
	}

	return &File{Path: output, Document: doc}, nil
}

// swaps a trailing .srt extension for .vtt; other paths are returned as is
func VTTPath(path string) string {
	ext := filepath.Ext(path)
	if !strings.EqualFold(ext, ".srt") {
		return path
	}
	return strings.TrimSuffix(path, ext) + ".vtt"
}
