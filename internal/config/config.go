// internal/config/config.go
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	defaultWorkers = 4
	defaultSamples = 10
)

type InputConfig struct {
	// Dir holds one SVG per flag, named by its two-letter identifier.
	Dir string `yaml:"dir"`
}

type OutputConfig struct {
	Artifact string `yaml:"artifact"`
	Samples  int    `yaml:"samples"`
}

type BatchConfig struct {
	Workers int `yaml:"workers"`
}

type Config struct {
	App struct {
		Name        string `yaml:"name"`
		Environment string `yaml:"environment"`
	} `yaml:"app"`

	Input  InputConfig  `yaml:"input"`
	Output OutputConfig `yaml:"output"`
	Batch  BatchConfig  `yaml:"batch"`
}

// Load loads both .env and yaml configuration
func Load(configPath string) (*Config, error) {
	// Load .env file if it exists
	envPath := filepath.Join(filepath.Dir(configPath), ".env")
	if err := godotenv.Load(envPath); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("error loading .env file: %w", err)
	}

	// Read and parse YAML config
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Environment overrides for paths, so one config file serves
	// local runs and CI.
	if dir := os.Getenv("FLAGCOLORS_INPUT_DIR"); dir != "" {
		cfg.Input.Dir = dir
	}
	if artifact := os.Getenv("FLAGCOLORS_ARTIFACT"); artifact != "" {
		cfg.Output.Artifact = artifact
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

func (c *Config) Validate() error {
	if c.App.Name == "" {
		return fmt.Errorf("app name is required")
	}
	if c.Input.Dir == "" {
		return fmt.Errorf("input dir is required")
	}
	if c.Output.Artifact == "" {
		return fmt.Errorf("output artifact path is required")
	}

	if c.Batch.Workers <= 0 {
		c.Batch.Workers = defaultWorkers
	}
	if c.Output.Samples <= 0 {
		c.Output.Samples = defaultSamples
	}

	return nil
}
