package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "reader.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return path
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeConfig(t, "sblgnt_dir: /data/sblgnt\nformat: markdown\n")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	want := Default()
	want.SBLGNTDir = "/data/sblgnt"
	want.Format = FormatMarkdown
	if cfg != want {
		t.Errorf("Load() = %+v, want %+v", cfg, want)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Load() of a named missing file should fail")
	}

	wd, _ := os.Getwd()
	defer os.Chdir(wd)
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load(\"\") without %s error: %v", DefaultFile, err)
	}
	if cfg != Default() {
		t.Errorf("Load(\"\") = %+v, want defaults", cfg)
	}
}

func TestLoadErrors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"unknown key", "sblgnt: x\n", "sblgnt"},
		{"bad format", "format: html\n", "format must be"},
		{"bad level", "log_level: loud\n", "loud"},
		{"bad log format", "log_format: xml\n", "xml"},
		{"not yaml", "format: [\n", "parse config"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load() error = %v, want it to mention %q", err, tt.want)
			}
		})
	}
}

func TestLoadEmptyFile(t *testing.T) {
	cfg, err := Load(writeConfig(t, ""))
	if err != nil || cfg != Default() {
		t.Errorf("Load(empty) = %+v, %v", cfg, err)
	}
}

func TestMerge(t *testing.T) {
	file := Default()
	file.Typeface = "Gentium Plus"
	file.Locale = "de"

	got := file.Merge(Config{Typeface: "SBL Greek", LogLevel: "debug"})
	if got.Typeface != "SBL Greek" || got.LogLevel != "debug" {
		t.Errorf("flags did not take precedence: %+v", got)
	}
	if got.Locale != "de" || got.SBLGNTDir != "../sblgnt" {
		t.Errorf("unset flags overrode file values: %+v", got)
	}
}

func TestInitLogging(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "info"
	cfg.LogFormat = "json"
	if err := cfg.InitLogging(); err != nil {
		t.Errorf("InitLogging() error: %v", err)
	}
	cfg.LogLevel = "nope"
	if err := cfg.InitLogging(); err == nil {
		t.Error("InitLogging() should reject an unknown level")
	}
	Default().InitLogging()
}
