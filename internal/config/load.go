package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"liblog/pkg/logging"

	"gopkg.in/yaml.v3"
)

const (
	userConfigDir  = ".config/logwrite"
	configFileName = "config.yaml"
)

// DefaultConfigPath returns the per-user config file location.
func DefaultConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not determine user config directory: %w", err)
	}
	return filepath.Join(homeDir, userConfigDir, configFileName), nil
}

// Load loads configuration from the given file, starting from defaults.
// A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			logging.Info("Config", "No config found at %s, using defaults", path)
			return cfg, nil
		}
		return Config{}, err
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		// config malformed
		return Config{}, fmt.Errorf("error loading config from %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config %s: %w", path, err)
	}
	logging.Info("Config", "Loaded configuration from %s", path)
	return cfg, nil
}

func (c Config) validate() error {
	switch c.Transport {
	case TransportDevice, TransportJournal, TransportFake:
	default:
		return fmt.Errorf("unknown transport %q", c.Transport)
	}
	paths := c.Paths()
	for i, p := range paths {
		if p == "" {
			return fmt.Errorf("channel path %d is empty", i)
		}
	}
	return nil
}
