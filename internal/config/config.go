// Package config loads the optional reader.yaml settings file.
//
// Settings come from three places, highest precedence first: command-line
// flags and READER_* environment variables, the config file, and the
// defaults below.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/FocuswithJustin/JuniperReader/internal/logging"
	"github.com/FocuswithJustin/JuniperReader/internal/validation"
)

// DefaultFile is read from the working directory when no file is named.
const DefaultFile = "reader.yaml"

// Output formats.
const (
	FormatLaTeX    = "latex"
	FormatMarkdown = "markdown"
)

// Config holds the settings shared by all commands.
type Config struct {
	SBLGNTDir string `yaml:"sblgnt_dir"`
	Lexicon   string `yaml:"lexicon"`
	Typeface  string `yaml:"typeface"`
	Format    string `yaml:"format"`
	Locale    string `yaml:"locale"`
	LogLevel  string `yaml:"log_level"`
	LogFormat string `yaml:"log_format"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		SBLGNTDir: "../sblgnt",
		Lexicon:   "../morphological-lexicon/lexemes.yaml",
		Typeface:  "Times New Roman",
		Format:    FormatLaTeX,
		Locale:    "en",
		LogLevel:  "warn",
		LogFormat: "text",
	}
}

// Load returns the defaults overlaid with the file at path. An empty path
// means DefaultFile, which may be absent; a named file must exist.
func Load(path string) (Config, error) {
	cfg := Default()
	named := path != ""
	if !named {
		path = DefaultFile
	}
	if err := validation.ValidatePath(path); err != nil {
		return cfg, fmt.Errorf("config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !named && errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	if err := decode(bytes.NewReader(data), &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	logging.Debug("config_loaded", "path", path)
	return cfg, cfg.Validate()
}

// decode rejects unknown keys so that typos are reported.
func decode(r io.Reader, cfg *Config) error {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// Merge returns c with every non-empty field of o taking precedence.
func (c Config) Merge(o Config) Config {
	set := func(dst *string, src string) {
		if src != "" {
			*dst = src
		}
	}
	set(&c.SBLGNTDir, o.SBLGNTDir)
	set(&c.Lexicon, o.Lexicon)
	set(&c.Typeface, o.Typeface)
	set(&c.Format, o.Format)
	set(&c.Locale, o.Locale)
	set(&c.LogLevel, o.LogLevel)
	set(&c.LogFormat, o.LogFormat)
	return c
}

// Validate checks the enumerated settings.
func (c Config) Validate() error {
	switch c.Format {
	case FormatLaTeX, FormatMarkdown:
	default:
		return fmt.Errorf("format must be %q or %q, got %q", FormatLaTeX, FormatMarkdown, c.Format)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if _, err := logging.ParseFormat(c.LogFormat); err != nil {
		return err
	}
	return nil
}

// InitLogging applies the log settings to the global logger.
func (c Config) InitLogging() error {
	level, err := logging.ParseLevel(c.LogLevel)
	if err != nil {
		return err
	}
	format, err := logging.ParseFormat(c.LogFormat)
	if err != nil {
		return err
	}
	logging.InitLogger(level, format)
	return nil
}
