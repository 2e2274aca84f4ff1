package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// FileName is the config file looked up in the repository root.
const FileName = "ofxparse.yaml"

// Config represents the top-level ofxparse.yaml configuration.
type Config struct {
	Import ImportConfig `yaml:"import"`
	Export ExportConfig `yaml:"export"`
	Log    LogConfig    `yaml:"log"`
}

// ImportConfig controls where statement files are picked up.
type ImportConfig struct {
	Dir          string   `yaml:"dir"`
	ProcessedDir string   `yaml:"processed_dir"`
	Extensions   []string `yaml:"extensions"`
}

// ExportConfig controls where flattened transactions are written.
type ExportConfig struct {
	Path string `yaml:"path"`
}

// LogConfig configures the CLI logger.
type LogConfig struct {
	Level       string `yaml:"level"`
	Format      string `yaml:"format"` // "console" or "json"
	Caller      bool   `yaml:"caller,omitempty"`
	Development bool   `yaml:"development,omitempty"`
}

// Load reads an ofxparse.yaml file from disk. Fields the file leaves out
// keep their default values.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return cfg, nil
}

// LoadOrDefault is Load, except a missing file yields Default.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Default(), nil
	}
	return cfg, err
}

// Save writes a Config to a YAML file.
func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}
	return nil
}

// Default returns a Config with sensible defaults for a new project.
func Default() *Config {
	return &Config{
		Import: ImportConfig{
			Dir:          "import",
			ProcessedDir: "import/processed",
			Extensions:   []string{".ofx", ".qfx"},
		},
		Export: ExportConfig{
			Path: "exports/transactions.csv",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
