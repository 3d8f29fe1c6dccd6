package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/thenoetrevino/manpower/internal/config/colors"
	"gopkg.in/yaml.v3"
)

// ThemeFileEnv names a YAML file whose theme section overrides the config file
const ThemeFileEnv = "MANPOWER_THEME_FILE"

// Config represents the application configuration.
// It only affects presentation; tanks and tasks are compiled in.
type Config struct {
	KeyMappings KeyMappings        `yaml:"key_mappings"`
	ColorScheme colors.ColorScheme `yaml:"theme"`
}

// Default returns the configuration used when no file exists
func Default() *Config {
	return &Config{
		KeyMappings: DefaultKeyMappings(),
		ColorScheme: *colors.Default(),
	}
}

// loadThemeFile merges the theme from MANPOWER_THEME_FILE, if set and readable
func loadThemeFile(config *Config) {
	themeFile := os.Getenv(ThemeFileEnv)
	if themeFile == "" {
		return
	}

	themeData, err := os.ReadFile(themeFile)
	if err != nil {
		return
	}

	var themeConfig struct {
		Theme colors.ColorScheme `yaml:"theme"`
	}

	if yaml.Unmarshal(themeData, &themeConfig) == nil {
		config.ColorScheme.MergeFrom(themeConfig.Theme)
	}
}

// Load loads config from the user's config directory
// Returns default config if file doesn't exist
func Load() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}

	data, err := os.ReadFile(configPath)
	if errors.Is(err, os.ErrNotExist) {
		config := Default()
		loadThemeFile(config)
		return config, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", configPath, err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("parsing %s: %w", configPath, err)
	}

	loadThemeFile(&config)

	// Fill in any missing values with defaults
	config.applyDefaults()

	return &config, nil
}

// Path returns the location Load reads from
func Path() (string, error) {
	return getConfigPath()
}

// getConfigPath returns the path to the config file
func getConfigPath() (string, error) {
	// Try XDG_CONFIG_HOME first
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, "manpower", "config.yaml"), nil
	}

	// Fall back to ~/.config
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(homeDir, ".config", "manpower", "config.yaml"), nil
}

// applyDefaults fills in missing configuration with defaults
func (c *Config) applyDefaults() {
	c.KeyMappings.applyDefaults()
	c.ColorScheme.ApplyDefaults()
}
