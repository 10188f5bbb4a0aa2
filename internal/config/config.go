package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// ErrNotFound is returned by LoadLocal and LoadGlobal when no config file
// exists in the places they search.
var ErrNotFound = errors.New("no config file")

// LocalNames are the repo-local config file names, in search order.
var LocalNames = []string{".secretguard.yml", ".secretguard.yaml", "secretguard.yml", "secretguard.yaml"}

// FileConfig is the on-disk YAML configuration shape. Unset keys stay nil so
// callers can tell them apart from zero values when layering.
type FileConfig struct {
	Include *string `yaml:"include"`
	Exclude *string `yaml:"exclude"`
	NoColor *bool   `yaml:"no_color"`
	Timeout *string `yaml:"timeout"`
	Backend *string `yaml:"backend"`
}

// TimeoutDuration parses Timeout. It returns zero when the key is unset.
func (fc FileConfig) TimeoutDuration() (time.Duration, error) {
	if fc.Timeout == nil || *fc.Timeout == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(*fc.Timeout)
	if err != nil {
		return 0, fmt.Errorf("timeout: %w", err)
	}
	if d < 0 {
		return 0, fmt.Errorf("timeout: negative duration %s", d)
	}
	return d, nil
}

// LoadFile reads a YAML config file from the provided path. Unknown keys are
// rejected so typos surface instead of being silently ignored.
func LoadFile(path string) (FileConfig, error) {
	var cfg FileConfig
	f, err := os.Open(path)
	if err != nil {
		return cfg, err
	}
	defer f.Close()
	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// LoadLocal searches for a repo-local config file in the given root.
func LoadLocal(repoRoot string) (FileConfig, error) {
	for _, name := range LocalNames {
		p := filepath.Join(repoRoot, name)
		if _, err := os.Stat(p); err == nil {
			return LoadFile(p)
		}
	}
	return FileConfig{}, ErrNotFound
}

// GlobalPath returns the global config location under XDG_CONFIG_HOME, or
// ~/.config when that is unset. It is empty when neither can be determined.
func GlobalPath() string {
	base := os.Getenv("XDG_CONFIG_HOME")
	if base == "" {
		home, _ := os.UserHomeDir()
		if home != "" {
			base = filepath.Join(home, ".config")
		}
	}
	if base == "" {
		return ""
	}
	return filepath.Join(base, "secretguard", "config.yml")
}

// LoadGlobal loads the global config file.
func LoadGlobal() (FileConfig, error) {
	p := GlobalPath()
	if p == "" {
		return FileConfig{}, ErrNotFound
	}
	if _, err := os.Stat(p); err != nil {
		return FileConfig{}, ErrNotFound
	}
	return LoadFile(p)
}
