package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Config holds user preferences loaded from the optional config file at
// ~/.config/ledgerstats/config.toml. Command-line flags override it.
type Config struct {
	// SkipValidation disables structural validation by default.
	SkipValidation bool `toml:"skip_validation"`

	// Seed is the default seed for the gen command.
	Seed uint64 `toml:"seed"`

	// ExportFormat is the default format for the export command ("dot" or "svg").
	ExportFormat string `toml:"export_format"`
}

// defaultConfig returns the built-in defaults.
func defaultConfig() Config {
	return Config{
		Seed:         42,
		ExportFormat: "dot",
	}
}

// configPath returns the config file path using the XDG convention
// (~/.config/ledgerstats/config.toml).
func configPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, "config.toml"), nil
}

// loadConfig reads the config file if it exists. A missing file yields the
// defaults; a malformed file is an error so typos don't silently vanish.
func loadConfig() (Config, error) {
	cfg := defaultConfig()

	path, err := configPath()
	if err != nil {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config %s: %w", path, err)
	}
	return cfg, nil
}
