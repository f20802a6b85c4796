// Package config holds the startup configuration surface: where the
// dataset lives, where exports go, and whether the mock source is used.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/viper"
)

const (
	DefaultConfigPath   = "framepick.yaml"
	DefaultServiceURL   = "http://localhost:8000"
	DefaultDatabasePath = "database"
	DefaultOutputDir    = "."
)

// Settings is collected once at startup. ServiceURL is kept for a
// future remote backend; no local code path exercises it.
type Settings struct {
	ServiceURL   string `mapstructure:"service_url" json:"service_url"`
	DatabasePath string `mapstructure:"database_path" json:"database_path"`
	OutputDir    string `mapstructure:"output_dir" json:"output_dir"`
	UseMockData  bool   `mapstructure:"use_mock_data" json:"use_mock_data"`
}

// DefaultSettings is the starting configuration written by init.
func DefaultSettings() Settings {
	return Settings{
		ServiceURL:   DefaultServiceURL,
		DatabasePath: DefaultDatabasePath,
		OutputDir:    DefaultOutputDir,
		UseMockData:  true,
	}
}

func normalizeSettings(raw Settings) Settings {
	norm := raw
	norm.ServiceURL = strings.TrimSpace(norm.ServiceURL)
	norm.DatabasePath = strings.TrimSpace(norm.DatabasePath)
	norm.OutputDir = strings.TrimSpace(norm.OutputDir)
	if norm.ServiceURL == "" {
		norm.ServiceURL = DefaultServiceURL
	}
	if norm.DatabasePath == "" {
		norm.DatabasePath = DefaultDatabasePath
	}
	if norm.OutputDir == "" {
		norm.OutputDir = DefaultOutputDir
	}
	return norm
}

// Load reads the YAML config at path, falling back to defaults when the
// file does not exist. FRAMEPICK_* environment variables override file
// values.
func Load(path string) (Settings, error) {
	v := viper.New()
	v.SetDefault("service_url", DefaultServiceURL)
	v.SetDefault("database_path", DefaultDatabasePath)
	v.SetDefault("output_dir", DefaultOutputDir)
	v.SetDefault("use_mock_data", true)

	v.SetEnvPrefix("FRAMEPICK")
	v.AutomaticEnv()

	configPath := strings.TrimSpace(path)
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	v.SetConfigFile(configPath)
	v.SetConfigType("yaml")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Settings{}, fmt.Errorf("read config %s: %w", configPath, err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return Settings{}, fmt.Errorf("parse config %s: %w", configPath, err)
	}
	return normalizeSettings(s), nil
}

// Save writes the settings as YAML to path. Used by init and
// settings --set.
func Save(path string, s Settings) error {
	configPath := strings.TrimSpace(path)
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	norm := normalizeSettings(s)

	v := viper.New()
	v.Set("service_url", norm.ServiceURL)
	v.Set("database_path", norm.DatabasePath)
	v.Set("output_dir", norm.OutputDir)
	v.Set("use_mock_data", norm.UseMockData)
	v.SetConfigType("yaml")

	if err := v.WriteConfigAs(configPath); err != nil {
		return fmt.Errorf("write config %s: %w", configPath, err)
	}
	return nil
}
