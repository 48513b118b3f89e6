// Package config loads, validates and persists the disk farm configuration.
package config

import (
	"bytes"
	"fmt"

	"diskfarm/internal/shared"
	"diskfarm/internal/storage"

	"github.com/BurntSushi/toml"
)

// Load parses a TOML document and validates it. Capacity strings are not
// parsed here; call Resolve when byte counts are needed.
func Load(raw string) (*Config, error) {
	var config Config
	md, err := toml.Decode(raw, &config)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrConfigSyntax, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%w: unknown key %q", shared.ErrConfigSyntax, undecoded[0].String())
	}

	for i, entry := range config.StorageEntries {
		if entry.Directory == "" {
			return nil, fmt.Errorf("%w: storage entry %d: %w", shared.ErrConfigSyntax, i, shared.ErrMissingStorageDirectory)
		}
	}

	if err := config.Validate(); err != nil {
		return nil, err
	}

	return &config, nil
}

// LoadFrom reads the document at path from r and loads it.
// Read errors are returned unchanged.
func LoadFrom(r storage.TextReader, path string) (*Config, error) {
	raw, err := r.ReadText(path)
	if err != nil {
		return nil, err
	}
	return Load(raw)
}

// Encode serializes cfg to TOML. Load(Encode(cfg)) reproduces cfg.
func Encode(cfg *Config) (string, error) {
	buf := new(bytes.Buffer)
	if err := toml.NewEncoder(buf).Encode(cfg); err != nil {
		return "", fmt.Errorf("encoding config: %w", err)
	}
	return buf.String(), nil
}

// SaveTo validates cfg and writes it to path through w.
// Write errors are returned unchanged.
func SaveTo(w storage.TextWriter, path string, cfg *Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	text, err := Encode(cfg)
	if err != nil {
		return err
	}

	return w.WriteText(path, text)
}
