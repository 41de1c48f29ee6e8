// Package config loads and stores the cardstock configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/lmeunier/cardstock/internal/card"
)

// Config represents the application configuration. AceLow and ShortForm
// feed the ordering rules and the card renderer; Decks and Jokers describe
// the composition the CLI starts from.
type Config struct {
	AceLow    bool `toml:"ace_low"`
	ShortForm bool `toml:"short_form"`
	Decks     int  `toml:"decks"`
	Jokers    bool `toml:"jokers"`
}

// Default returns the built-in configuration: ace high, long-form display,
// one deck with jokers.
func Default() *Config {
	return &Config{Decks: 1, Jokers: true}
}

// Rules converts the configuration into ordering rules.
func (c *Config) Rules() card.Rules {
	return card.Rules{AceLow: c.AceLow}
}

// GetXDGConfigHome returns XDG_CONFIG_HOME or default path
func GetXDGConfigHome() string {
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		return xdgConfig
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(homeDir, ".config")
}

// GetConfigFilePath returns the path to the config file
func GetConfigFilePath() string {
	return filepath.Join(GetXDGConfigHome(), "cardstock", "config.toml")
}

// Load reads the config file, creating it with defaults on first use.
func Load() (*Config, error) {
	configPath := GetConfigFilePath()

	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return createDefaultConfig()
	}

	var config Config
	if _, err := toml.DecodeFile(configPath, &config); err != nil {
		return nil, fmt.Errorf("error decoding config file: %v", err)
	}
	if config.Decks < 1 {
		config.Decks = 1
	}

	return &config, nil
}

// createDefaultConfig creates a default config file
func createDefaultConfig() (*Config, error) {
	configPath := GetConfigFilePath()
	configDir := filepath.Dir(configPath)

	if err := os.MkdirAll(configDir, 0755); err != nil {
		return nil, fmt.Errorf("error creating config directory: %v", err)
	}

	config := Default()
	if err := write(config); err != nil {
		return nil, err
	}

	return config, nil
}

// write encodes the config to its file, replacing any previous contents.
func write(config *Config) error {
	configPath := GetConfigFilePath()
	file, err := os.Create(configPath)
	if err != nil {
		return fmt.Errorf("error creating config file: %v", err)
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	if err := encoder.Encode(config); err != nil {
		return fmt.Errorf("error encoding config: %v", err)
	}

	return nil
}

// SetAceLow updates the ace_low toggle in the config file.
func SetAceLow(aceLow bool) error {
	config, err := Load()
	if err != nil {
		return err
	}
	config.AceLow = aceLow
	return write(config)
}

// SetShortForm updates the short_form toggle in the config file.
func SetShortForm(shortForm bool) error {
	config, err := Load()
	if err != nil {
		return err
	}
	config.ShortForm = shortForm
	return write(config)
}
