package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the default configuration file name.
const DefaultConfigFile = ".passcheck.yaml"

// ErrConfigNotFound is returned when the configuration file does not exist.
var ErrConfigNotFound = errors.New("configuration file not found")

// File is the on-disk YAML representation of the tunable settings.
// Zero values mean "keep the default": a file may set any subset of the
// fields.
type File struct {
	// HashRate is the assumed attacker throughput in guesses per second.
	HashRate float64 `yaml:"hash_rate"`

	// Thresholds are the four ascending tier boundaries in seconds.
	// When present, exactly four values are required.
	Thresholds []float64 `yaml:"thresholds"`

	// Batch is the number of concurrent analyses in list audits.
	Batch int `yaml:"batch"`
}

// LoadConfigFile loads settings from a YAML file.
// If the file does not exist, it returns ErrConfigNotFound. Callers
// should handle this error based on whether the config file path was
// explicitly specified by the user.
func LoadConfigFile(path string) (*File, error) {
	data, err := os.ReadFile(path) //nolint:gosec // User-provided config path is intentional
	if err != nil {
		if os.IsNotExist(err) {
			return nil, ErrConfigNotFound
		}
		return nil, err
	}

	var cf File
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, err
	}

	if len(cf.Thresholds) != 0 && len(cf.Thresholds) != 4 {
		return nil, fmt.Errorf("invalid thresholds in %s: expected 4 values, got %d",
			path, len(cf.Thresholds))
	}

	return &cf, nil
}

// Apply merges the file settings into the config. Unset fields (zero
// values) leave the config untouched, so flag and default values survive
// a partial file.
func (f *File) Apply(cfg *Config) {
	if f.HashRate > 0 {
		cfg.HashRate = f.HashRate
	}
	if len(f.Thresholds) == 4 {
		copy(cfg.Thresholds[:], f.Thresholds)
	}
	if f.Batch > 0 {
		cfg.BatchSize = f.Batch
	}
}

// FindConfigFile searches for the configuration file in the following order:
//  1. If configPath is specified, use it directly
//  2. Look for .passcheck.yaml in the current directory
//  3. Look for passcheck.yaml in the XDG config directory
//  4. Look for .passcheck.yaml in the user's home directory
//
// Returns the path to the configuration file if found, or empty string
// if not found.
func FindConfigFile(configPath string) string {
	if configPath != "" {
		if _, err := os.Stat(configPath); err == nil {
			return configPath
		}
		return ""
	}

	if cwd, err := os.Getwd(); err == nil {
		cwdConfig := filepath.Join(cwd, DefaultConfigFile)
		if _, err := os.Stat(cwdConfig); err == nil {
			return cwdConfig
		}
	}

	xdgConfig := filepath.Join(XDGConfigDir(), "passcheck.yaml")
	if _, err := os.Stat(xdgConfig); err == nil {
		return xdgConfig
	}

	if home, err := os.UserHomeDir(); err == nil {
		homeConfig := filepath.Join(home, DefaultConfigFile)
		if _, err := os.Stat(homeConfig); err == nil {
			return homeConfig
		}
	}

	return ""
}
