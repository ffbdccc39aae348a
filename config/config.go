/*
File    : go-graph/config/config.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package config loads and saves the optional Go-Graph configuration
// file. The file is TOML, lives under the platform's per-user config
// directory, and every field has a default so a missing file or a
// partial file both work.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the Go-Graph configuration
type Config struct {
	// Interactive session settings
	Repl struct {
		Prompt      string `toml:"prompt"`
		ColorOutput bool   `toml:"color_output"`
		ShowBanner  bool   `toml:"show_banner"`
	} `toml:"repl"`

	// Default plotting interval for .plot commands without arguments
	Plot struct {
		XMin       float64 `toml:"x_min"`
		XMax       float64 `toml:"x_max"`
		Dx         float64 `toml:"dx"`
		MaxSamples int     `toml:"max_samples"`
	} `toml:"plot"`
}

// DefaultConfig returns a configuration with default values
func DefaultConfig() *Config {
	cfg := &Config{}

	// Repl defaults
	cfg.Repl.Prompt = "Go-Graph >>> "
	cfg.Repl.ColorOutput = true
	cfg.Repl.ShowBanner = true

	// Plot defaults
	cfg.Plot.XMin = -10
	cfg.Plot.XMax = 10
	cfg.Plot.Dx = 0.5
	cfg.Plot.MaxSamples = 100

	return cfg
}

// GetConfigPath returns the platform-specific config file path
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\go-graph\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "go-graph")

	default:
		// macOS/Linux: ~/.config/go-graph/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "go-graph")
	}

	return filepath.Join(configDir, "config.toml")
}

// Load reads the config file at path, merging it over the defaults.
// A missing file is not an error: the defaults are returned as-is.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the config as TOML to path, creating the directory if
// needed.
func Save(cfg *Config, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(cfg); err != nil {
		return err
	}
	return os.WriteFile(path, buf.Bytes(), 0644)
}
