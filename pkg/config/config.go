package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"gopkg.in/yaml.v3"
)

// DefaultMemtoolPath is the build-time location of the Infineon Memtool
// executable. Override it when building for a machine with a non-standard
// vendor install:
//
//	go build -ldflags "-X aurixflash/pkg/config.DefaultMemtoolPath=D:\tools\IMTMemtool.exe"
var DefaultMemtoolPath = `C:\Program Files (x86)\Infineon\Memtool 2021\IMTMemtool.exe`

// Config holds the complete application configuration
type Config struct {
	Flasher FlasherConfig `yaml:"flasher" json:"flasher"`
	Logging LoggingConfig `yaml:"logging" json:"logging"`
}

// FlasherConfig holds everything needed to drive the vendor flasher
type FlasherConfig struct {
	// MemtoolPath is the Memtool executable used for every flash session.
	MemtoolPath string `yaml:"memtoolPath" json:"memtoolPath"`
	// DefaultPort is the DAS port selector used when no --port flag is given.
	DefaultPort int `yaml:"defaultPort" json:"defaultPort"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level string `yaml:"level" json:"level"`
}

// DefaultConfig Default configuration values
var DefaultConfig = Config{
	Flasher: FlasherConfig{
		MemtoolPath: DefaultMemtoolPath,
		DefaultPort: 0,
	},
	Logging: LoggingConfig{
		Level: "INFO",
	},
}

// LoadConfig loads configuration from multiple sources in order of precedence:
// 1. Environment variables (highest precedence)
// 2. Configuration file
// 3. Default values (lowest precedence)
func LoadConfig() (*Config, string, error) {
	config := DefaultConfig

	path, err := loadFromFile(&config)
	if err != nil {
		return nil, "", fmt.Errorf("failed to load config file: %w", err)
	}

	loadFromEnv(&config)

	if e := config.Validate(); e != nil {
		return nil, "", fmt.Errorf("configuration validation failed: %w", e)
	}

	return &config, path, nil
}

// loadFromFile loads configuration from YAML file
func loadFromFile(config *Config) (string, error) {
	configPaths := []string{
		os.Getenv("AURIXFLASH_CONFIG_PATH"), // Custom path from environment
		"./aurixflash.yaml",                 // Current directory
		userConfigPath(),                    // Per-user configuration
	}

	for _, path := range configPaths {
		if path == "" {
			continue
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			continue
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read config file %s: %w", path, err)
		}

		if err := yaml.Unmarshal(data, config); err != nil {
			return "", fmt.Errorf("failed to parse config file %s: %w", path, err)
		}

		return path, nil
	}

	return "built-in defaults (no config file found)", nil
}

func userConfigPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "aurixflash", "config.yaml")
}

// loadFromEnv loads configuration from environment variables
func loadFromEnv(config *Config) {
	if val := os.Getenv("AURIXFLASH_MEMTOOL_PATH"); val != "" {
		config.Flasher.MemtoolPath = val
	}
	if val := os.Getenv("AURIXFLASH_DAS_PORT"); val != "" {
		if port, err := strconv.Atoi(val); err == nil {
			config.Flasher.DefaultPort = port
		}
	}
	if val := os.Getenv("LOG_LEVEL"); val != "" {
		config.Logging.Level = val
	}
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if c.Flasher.MemtoolPath == "" {
		return fmt.Errorf("memtool path must not be empty")
	}

	if c.Flasher.DefaultPort < 0 {
		return fmt.Errorf("invalid DAS port selector: %d", c.Flasher.DefaultPort)
	}

	validLevels := map[string]bool{
		"DEBUG": true, "INFO": true, "WARN": true, "ERROR": true,
		"debug": true, "info": true, "warn": true, "error": true,
	}
	if !validLevels[c.Logging.Level] {
		return fmt.Errorf("invalid log level: %s", c.Logging.Level)
	}

	return nil
}

func (c *Config) ToYAML() ([]byte, error) {
	return yaml.Marshal(c)
}

func (c *Config) SaveToFile(path string) error {
	data, err := c.ToYAML()
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// LoadFromFile loads a specific configuration file
func LoadFromFile(path string) (*Config, error) {
	config := DefaultConfig

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// GenerateDefaultConfig creates a default configuration file
func GenerateDefaultConfig(path string) error {
	config := DefaultConfig
	return config.SaveToFile(path)
}
