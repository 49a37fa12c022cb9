// Package config handles loading the optional opencmd config file.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/adrg/xdg"
)

// Config is the top-level configuration. All fields are optional: opencmd
// works without a config file, and never writes one.
type Config struct {
	Handlers HandlersConfig `toml:"handlers"`
}

// HandlersConfig names preferred handler programs. Each value is an
// executable name or path used instead of the platform default when the
// corresponding environment variable is not set.
type HandlersConfig struct {
	// Browser is used for --browser targets when $BROWSER is unset.
	Browser string `toml:"browser"`
	// Editor is used for --editor targets when $EDITOR is unset.
	Editor string `toml:"editor"`
	// Default replaces the platform default opener for plain targets.
	Default string `toml:"default"`
}

// DefaultPath returns the conventional config file location,
// $XDG_CONFIG_HOME/opencmd/config.toml.
func DefaultPath() string {
	return filepath.Join(xdg.ConfigHome, "opencmd", "config.toml")
}

// Load reads a config file. A missing file is not an error and yields an
// empty Config.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	cfg.Handlers.Browser = strings.TrimSpace(cfg.Handlers.Browser)
	cfg.Handlers.Editor = strings.TrimSpace(cfg.Handlers.Editor)
	cfg.Handlers.Default = strings.TrimSpace(cfg.Handlers.Default)

	return cfg, nil
}
