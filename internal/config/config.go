package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/iancoleman/strcase"
	"gopkg.in/yaml.v3"

	"github.com/typeforge/typeforge/internal/models"
)

// Defaults applied when neither a config file nor a CLI flag says otherwise.
const (
	DefaultFormat   = string(models.FormatTypeScript)
	DefaultRootName = "RootType"
	DefaultMaxDepth = 200
)

// Config represents the complete configuration for typeforge
type Config struct {
	Format         string `yaml:"format"`
	RootName       string `yaml:"root_name"`
	OptionalFields bool   `yaml:"optional_fields"`
	MaxDepth       int    `yaml:"max_depth"`
	Output         string `yaml:"output"`
}

// NewConfig creates a new Config with default values
func NewConfig() *Config {
	return &Config{
		Format:         DefaultFormat,
		RootName:       DefaultRootName,
		OptionalFields: true,
		MaxDepth:       DefaultMaxDepth,
	}
}

// LoadConfig loads configuration from a YAML file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	// Start with defaults
	cfg := NewConfig()

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if cfg.Format != "" && !models.Format(cfg.Format).Valid() {
		return nil, fmt.Errorf("unsupported format %q in config file", cfg.Format)
	}
	if cfg.MaxDepth <= 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}

	return cfg, nil
}

// FindConfigFile searches for a config file in current directory and parents
func FindConfigFile() string {
	configNames := []string{".typeforge.yml", ".typeforge.yaml", "typeforge.yml", "typeforge.yaml"}

	currentDir, err := os.Getwd()
	if err != nil {
		return ""
	}

	// Search up the directory tree
	for {
		for _, name := range configNames {
			configPath := filepath.Join(currentDir, name)
			if _, err := os.Stat(configPath); err == nil {
				return configPath
			}
		}

		parentDir := filepath.Dir(currentDir)
		if parentDir == currentDir {
			// Reached root directory
			break
		}
		currentDir = parentDir
	}

	return ""
}

// LoadConfigWithCLI loads config with CLI argument precedence. CLI values
// equal to the built-in defaults do not override config file values, which
// lets a config file win when the flag was simply left unset.
func LoadConfigWithCLI(configPath, cliFormat, cliRootName string, cliMaxDepth int) (*Config, error) {
	cfg := NewConfig()

	if configPath != "" {
		fileConfig, err := LoadConfig(configPath)
		if err != nil {
			return nil, err
		}
		cfg = fileConfig
	}

	if cliFormat != "" && cliFormat != DefaultFormat {
		if !models.Format(cliFormat).Valid() {
			return nil, fmt.Errorf("unsupported format %q", cliFormat)
		}
		cfg.Format = cliFormat
	}
	if cliRootName != "" && cliRootName != DefaultRootName {
		cfg.RootName = cliRootName
	}
	if cliMaxDepth > 0 && cliMaxDepth != DefaultMaxDepth {
		cfg.MaxDepth = cliMaxDepth
	}

	return cfg, nil
}

// NormalizeRootName converts a user-supplied root name into a PascalCase
// type identifier, falling back to the default for unconvertible input
// (e.g. purely symbolic names).
func NormalizeRootName(name string) string {
	normalized := strcase.ToCamel(name)
	if normalized == "" {
		return DefaultRootName
	}
	return normalized
}
