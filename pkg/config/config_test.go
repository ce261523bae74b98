package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig

	if cfg.Flasher.MemtoolPath != DefaultMemtoolPath {
		t.Errorf("Expected Flasher MemtoolPath '%s', got '%s'", DefaultMemtoolPath, cfg.Flasher.MemtoolPath)
	}
	if cfg.Flasher.DefaultPort != 0 {
		t.Errorf("Expected Flasher DefaultPort 0, got %d", cfg.Flasher.DefaultPort)
	}
	if cfg.Logging.Level != "INFO" {
		t.Errorf("Expected Logging Level 'INFO', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadConfig_WithConfigFile(t *testing.T) {
	testConfig := `
flasher:
  memtoolPath: "/opt/memtool/IMTMemtool.exe"
  defaultPort: 3
logging:
  level: "DEBUG"
`
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte(testConfig), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv("AURIXFLASH_CONFIG_PATH", configFile)
	t.Setenv("AURIXFLASH_MEMTOOL_PATH", "")
	t.Setenv("AURIXFLASH_DAS_PORT", "")
	t.Setenv("LOG_LEVEL", "")

	cfg, path, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if path != configFile {
		t.Errorf("Expected config source '%s', got '%s'", configFile, path)
	}
	if cfg.Flasher.MemtoolPath != "/opt/memtool/IMTMemtool.exe" {
		t.Errorf("Expected MemtoolPath '/opt/memtool/IMTMemtool.exe', got '%s'", cfg.Flasher.MemtoolPath)
	}
	if cfg.Flasher.DefaultPort != 3 {
		t.Errorf("Expected DefaultPort 3, got %d", cfg.Flasher.DefaultPort)
	}
	if cfg.Logging.Level != "DEBUG" {
		t.Errorf("Expected Logging Level 'DEBUG', got '%s'", cfg.Logging.Level)
	}
}

func TestLoadConfig_EnvironmentOverridesFile(t *testing.T) {
	testConfig := `
flasher:
  memtoolPath: "/from/file/IMTMemtool.exe"
  defaultPort: 1
`
	configFile := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configFile, []byte(testConfig), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}
	t.Setenv("AURIXFLASH_CONFIG_PATH", configFile)
	t.Setenv("AURIXFLASH_MEMTOOL_PATH", "/from/env/IMTMemtool.exe")
	t.Setenv("AURIXFLASH_DAS_PORT", "9")
	t.Setenv("LOG_LEVEL", "WARN")

	cfg, _, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}
	if cfg.Flasher.MemtoolPath != "/from/env/IMTMemtool.exe" {
		t.Errorf("Expected MemtoolPath '/from/env/IMTMemtool.exe', got '%s'", cfg.Flasher.MemtoolPath)
	}
	if cfg.Flasher.DefaultPort != 9 {
		t.Errorf("Expected DefaultPort 9, got %d", cfg.Flasher.DefaultPort)
	}
	if cfg.Logging.Level != "WARN" {
		t.Errorf("Expected Logging Level 'WARN', got '%s'", cfg.Logging.Level)
	}
}

func TestValidate(t *testing.T) {
	cases := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{"defaults are valid", func(c *Config) {}, false},
		{"empty memtool path", func(c *Config) { c.Flasher.MemtoolPath = "" }, true},
		{"negative port", func(c *Config) { c.Flasher.DefaultPort = -1 }, true},
		{"bad log level", func(c *Config) { c.Logging.Level = "LOUD" }, true},
		{"lowercase log level", func(c *Config) { c.Logging.Level = "debug" }, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.wantErr && err == nil {
				t.Errorf("Expected validation error, got nil")
			}
			if !tc.wantErr && err != nil {
				t.Errorf("Expected no validation error, got %v", err)
			}
		})
	}
}

func TestGenerateDefaultConfig_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "generated.yaml")
	if err := GenerateDefaultConfig(path); err != nil {
		t.Fatalf("GenerateDefaultConfig failed: %v", err)
	}

	cfg, err := LoadFromFile(path)
	if err != nil {
		t.Fatalf("LoadFromFile failed: %v", err)
	}
	if cfg.Flasher.MemtoolPath != DefaultConfig.Flasher.MemtoolPath {
		t.Errorf("Round-tripped MemtoolPath mismatch: got '%s'", cfg.Flasher.MemtoolPath)
	}
	if cfg.Logging.Level != DefaultConfig.Logging.Level {
		t.Errorf("Round-tripped Logging Level mismatch: got '%s'", cfg.Logging.Level)
	}
}
