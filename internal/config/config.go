package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds the application settings.
type Config struct {
	// DBPath is the SQLite database file.
	DBPath string `yaml:"db_path"`
	// ExportSheet names the sheet in XLSX exports.
	ExportSheet string `yaml:"export_sheet"`
	// LogPath optionally mirrors logs to a file.
	LogPath string `yaml:"log_path"`
}

// Load returns the configuration: defaults, overridden by the YAML file at
// path (if it exists), overridden by environment variables. A missing file is
// not an error; a malformed one is.
func Load(path string) (*Config, error) {
	cfg := &Config{
		DBPath:      "assets.db",
		ExportSheet: "Assets",
	}

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return nil, fmt.Errorf("reading config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("parsing config file: %w", err)
			}
		}
	}

	cfg.DBPath = getEnv("ASSETTRACKER_DB", cfg.DBPath)
	cfg.ExportSheet = getEnv("ASSETTRACKER_EXPORT_SHEET", cfg.ExportSheet)
	cfg.LogPath = getEnv("ASSETTRACKER_LOG", cfg.LogPath)

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
