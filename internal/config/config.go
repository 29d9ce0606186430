package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config is the top-level application configuration.
type Config struct {
	// API holds the backend connection settings.
	API APIConfig `mapstructure:"api" yaml:"api"`

	// Notify holds the notification poller settings.
	Notify NotifyConfig `mapstructure:"notify" yaml:"notify"`

	// LogFile is where diagnostic output goes; the terminal itself is
	// owned by the UI. Empty means the default path under ~/.config.
	LogFile string `mapstructure:"log_file" yaml:"log_file"`

	// SnapshotPath is the SQLite file holding the reference-data
	// snapshot. Empty means the default path under ~/.config.
	SnapshotPath string `mapstructure:"snapshot_path" yaml:"snapshot_path"`
}

// APIConfig holds the backend connection settings.
type APIConfig struct {
	// BaseURL is the root of the farm backend. Defaults to the local
	// development server; production deployments set their own.
	BaseURL string `mapstructure:"base_url" yaml:"base_url"`
}

// NotifyConfig holds the notification poller settings.
type NotifyConfig struct {
	// PollIntervalSec is the fixed poll period. It is started once and
	// never reset on user activity.
	PollIntervalSec int `mapstructure:"poll_interval_sec" yaml:"poll_interval_sec"`
}

// DefaultConfigPath returns the default path for the configuration
// file, located at ~/.config/avicontrol/config.yaml.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", "config.yaml")
	}
	return filepath.Join(home, ".config", "avicontrol", "config.yaml")
}

// defaultConfig returns a sensible default configuration.
func defaultConfig() *Config {
	return &Config{
		API:    APIConfig{BaseURL: "http://localhost:5000"},
		Notify: NotifyConfig{PollIntervalSec: 30},
	}
}

// Load reads configuration from the given YAML file path using Viper.
// If the file does not exist, it returns a default configuration.
func Load(path string) (*Config, error) {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	// Set defaults so missing keys resolve to sensible values.
	v.SetDefault("api.base_url", "http://localhost:5000")
	v.SetDefault("notify.poll_interval_sec", 30)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(*os.PathError); ok {
			return defaultConfig(), nil
		}
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return defaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	cfg := defaultConfig()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}

	if cfg.Notify.PollIntervalSec <= 0 {
		cfg.Notify.PollIntervalSec = 30
	}

	return cfg, nil
}

// Save writes the given configuration to a YAML file at path, creating
// parent directories if needed.
func Save(path string, cfg *Config) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}

	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("yaml")

	v.Set("api", cfg.API)
	v.Set("notify", cfg.Notify)
	v.Set("log_file", cfg.LogFile)
	v.Set("snapshot_path", cfg.SnapshotPath)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("writing config to %s: %w", path, err)
	}

	return nil
}
