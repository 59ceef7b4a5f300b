// Package config loads symdump settings from a YAML file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the settings file looked up in the working directory.
const FileName = ".symdump.yaml"

// Config holds the settings every symdump command shares.
type Config struct {
	// Index is the SQLite database the index and lookup commands use
	Index string `yaml:"index"`

	// Unparse makes bind print the annotated declarations after the table
	Unparse bool `yaml:"unparse"`

	// Plain disables styled output
	Plain bool `yaml:"plain"`

	// Verbose enables the diagnostic logger
	Verbose bool `yaml:"verbose"`
}

// Default returns the settings used when no file is present.
func Default() Config {
	return Config{Index: "symbols.db"}
}

// Path returns the settings file inside dir.
func Path(dir string) string {
	if dir == "" {
		dir = "."
	}
	return filepath.Join(dir, FileName)
}

// Load reads the settings at path over the defaults. A missing file is not
// an error; the defaults are returned.
func Load(path string) (Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.Index == "" {
		cfg.Index = Default().Index
	}
	return cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
