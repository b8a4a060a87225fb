// Package config loads settings for the huffcode command.
package config

import (
	"bytes"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/chronos-tachyon/huffcode/internal/log"
)

// Config holds the file naming and logging settings.
type Config struct {
	// CodeExt is the extension of code table files.
	CodeExt string `yaml:"code_ext"`

	// ShortExt is the extension of compressed bit files.
	ShortExt string `yaml:"short_ext"`

	// NewExt is the extension of decompressed output files.
	NewExt string `yaml:"new_ext"`

	// LogLevel is one of "none", "warn", "info", "debug".
	LogLevel string `yaml:"log_level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		CodeExt:  ".code",
		ShortExt: ".short",
		NewExt:   ".new",
		LogLevel: "info",
	}
}

// Load returns Default overlaid with the YAML file at path.  An empty path
// returns Default unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return Config{}, errors.Wrapf(err, "failed to read config %s", path)
	}
	if err := Parse(raw, &cfg); err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Parse overlays the YAML document raw onto cfg and validates the result.
func Parse(raw []byte, cfg *Config) error {
	dec := yaml.NewDecoder(bytes.NewReader(raw))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return errors.Wrap(err, "invalid YAML")
	}
	return cfg.Validate()
}

// Validate checks that every field holds a usable value.
func (cfg Config) Validate() error {
	exts := []struct {
		name, value string
	}{
		{"code_ext", cfg.CodeExt},
		{"short_ext", cfg.ShortExt},
		{"new_ext", cfg.NewExt},
	}
	for _, ext := range exts {
		if len(ext.value) < 2 || !strings.HasPrefix(ext.value, ".") {
			return errors.Errorf("%s must start with '.' and name an extension, got %q", ext.name, ext.value)
		}
	}
	if cfg.CodeExt == cfg.ShortExt || cfg.CodeExt == cfg.NewExt || cfg.ShortExt == cfg.NewExt {
		return errors.New("code_ext, short_ext and new_ext must differ")
	}
	if _, err := log.ParseLevel(cfg.LogLevel); err != nil {
		return errors.Wrap(err, "log_level")
	}
	return nil
}
