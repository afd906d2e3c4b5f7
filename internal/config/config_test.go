package config_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"

	"github.com/mgpai22/webvtt/internal/config"
)

func TestLoadDefaultConfigWhenFileAbsent(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	cfg, resolved, exists, err := config.Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if exists {
		t.Fatal("expected config file to be absent in temp HOME")
	}
	wantPath := filepath.Join(tempHome, ".config", "webvtt", "config.toml")
	if resolved != wantPath {
		t.Fatalf("unexpected resolved path: got %q want %q", resolved, wantPath)
	}
	if *cfg != config.Default() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadFromFile(t *testing.T) {
	tempHome := t.TempDir()
	t.Setenv("HOME", tempHome)

	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[output]
dir = "~/subs"
overwrite = true

[convert]
concurrency = 8

[logging]
format = "json"
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, resolved, exists, err := config.Load(path)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if !exists || resolved != path {
		t.Fatalf("expected existing config at %q, got %q (exists=%v)", path, resolved, exists)
	}
	if cfg.Output.Dir != filepath.Join(tempHome, "subs") {
		t.Fatalf("expected expanded output dir, got %q", cfg.Output.Dir)
	}
	if !cfg.Output.Overwrite {
		t.Fatal("expected overwrite enabled")
	}
	if cfg.Convert.Concurrency != 8 {
		t.Fatalf("expected concurrency 8, got %d", cfg.Convert.Concurrency)
	}
	if cfg.Logging.Format != "json" || cfg.Logging.Level != "debug" {
		t.Fatalf("unexpected logging config %+v", cfg.Logging)
	}
}

func TestLoadExplicitMissingFile(t *testing.T) {
	_, _, _, err := config.Load(filepath.Join(t.TempDir(), "missing.toml"))
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Fatalf("expected not found error, got %v", err)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{name: "concurrency", content: "[convert]\nconcurrency = 0\n", wantErr: "concurrency"},
		{name: "level", content: "[logging]\nlevel = \"loud\"\n", wantErr: "logging.level"},
		{name: "format", content: "[logging]\nformat = \"xml\"\n", wantErr: "logging.format"},
		{name: "unknown key", content: "[output]\nsuffix = \".x\"\n", wantErr: "parse config"},
		{name: "syntax", content: "[output\n", wantErr: "parse config"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, _, _, err := config.Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestDefaultConfigEncodesAsTOML(t *testing.T) {
	data, err := toml.Marshal(config.Default())
	if err != nil {
		t.Fatalf("marshal default config: %v", err)
	}
	var decoded config.Config
	if err := toml.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal default config: %v", err)
	}
	if decoded != config.Default() {
		t.Fatalf("default config changed after encoding: %+v", decoded)
	}
}

func TestOutputPath(t *testing.T) {
	cfg := config.Default()
	if got := cfg.OutputPath("in/movie.vtt"); got != "in/movie.vtt" {
		t.Errorf("expected derived path unchanged, got %q", got)
	}

	cfg.Output.Dir = "/out"
	if got := cfg.OutputPath("in/movie.vtt"); got != filepath.Join("/out", "movie.vtt") {
		t.Errorf("expected path inside output dir, got %q", got)
	}
}
