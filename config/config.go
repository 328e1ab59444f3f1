package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is looked up in the working directory when no explicit
// config path is given.
const DefaultConfigFile = ".time-tracker.yaml"

// Config holds all application configuration
type Config struct {
	SaveFilePath  string `yaml:"save_file" json:"save_file"`
	CacheFilePath string `yaml:"cache_file" json:"cache_file"`
	LogLevel      string `yaml:"log_level" json:"log_level"`
	Persist       bool   `yaml:"persist" json:"persist"`
}

// LoadConfig builds the configuration in three layers: built-in defaults,
// then an optional YAML file, then environment variables. A path argument of
// "" means "use the default file if it exists"; a non-empty path must exist.
func LoadConfig(path string) (*Config, error) {
	cfg := &Config{
		SaveFilePath:  "time_tracker_save",
		CacheFilePath: "time_tracker_cache",
		LogLevel:      "INFO",
		Persist:       true,
	}

	explicit := path != ""
	if !explicit {
		path = DefaultConfigFile
	}

	if err := loadFile(path, cfg); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	cfg.SaveFilePath = getEnvString("SAVE_FILE_PATH", cfg.SaveFilePath)
	cfg.CacheFilePath = getEnvString("CACHE_FILE_PATH", cfg.CacheFilePath)
	cfg.LogLevel = getEnvString("LOG_LEVEL", cfg.LogLevel)
	cfg.Persist = getEnvBool("PERSIST", cfg.Persist)

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func loadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return yaml.Unmarshal(data, cfg)
}

// Helper functions for environment variable parsing
func getEnvString(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return defaultValue
}

// validate performs basic validation of the configuration
func (c *Config) validate() error {
	// Validate and normalize LogLevel
	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
	}
	upperLevel := strings.ToUpper(strings.TrimSpace(c.LogLevel))
	if !validLevels[upperLevel] {
		return fmt.Errorf("invalid log level '%s': must be DEBUG, INFO, WARN, or ERROR", c.LogLevel)
	}
	c.LogLevel = upperLevel

	if c.Persist {
		if strings.TrimSpace(c.SaveFilePath) == "" {
			return fmt.Errorf("save file path cannot be empty when persistence is enabled")
		}
		if strings.TrimSpace(c.CacheFilePath) == "" {
			return fmt.Errorf("cache file path cannot be empty when persistence is enabled")
		}
		if c.SaveFilePath == c.CacheFilePath {
			return fmt.Errorf("save file and cache file must be distinct paths")
		}
	}

	return nil
}
