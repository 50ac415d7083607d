// Package config provides configuration management for the catalogue
// ETL pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Configuration validation errors.
var (
	ErrMissingInputFile = errors.New("input_file is required")
	ErrMissingOutputDir = errors.New("output_dir is required")
	ErrInvalidBatchSize = errors.New("batch_size must be at least 1")
	ErrInvalidLogLevel  = errors.New("log_level must be one of: debug, info, warn, error")
)

// Config holds the process-wide settings for one pipeline invocation.
// It is fixed at startup and passed explicitly into the pipeline.
type Config struct {
	InputFile          string   `yaml:"input_file"`
	OutputDir          string   `yaml:"output_dir"`
	BatchSize          int      `yaml:"batch_size"`
	LogLevel           string   `yaml:"log_level"`
	ExcludedCategories []string `yaml:"excluded_categories"`
	HistoryDB          string   `yaml:"history_db"`
	ListenAddr         string   `yaml:"listen_addr"`
}

// Default returns the built-in configuration, matching the catalogue
// feed layout this pipeline was written for.
func Default() Config {
	return Config{
		InputFile: "data_input/o2-product-set.json",
		OutputDir: "output",
		BatchSize: 1000,
		LogLevel:  "info",
		ExcludedCategories: []string{
			"insurance", "accessories", "simo", "sim only",
			"protection", "case", "charger", "cable",
		},
		HistoryDB:  "",
		ListenAddr: ":8080",
	}
}

// Load reads configuration from an optional YAML file, then applies
// environment overrides. An empty path skips the file entirely.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// applyEnv overlays environment variables on top of the file values.
// A .env file in the working directory is honored when present.
func (c *Config) applyEnv() {
	_ = godotenv.Load()

	if v := os.Getenv("INPUT_FILE"); v != "" {
		c.InputFile = v
	}
	if v := os.Getenv("OUTPUT_DIR"); v != "" {
		c.OutputDir = v
	}
	if v := os.Getenv("BATCH_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.BatchSize = n
		}
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.LogLevel = v
	}
	if v := os.Getenv("HISTORY_DB"); v != "" {
		c.HistoryDB = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		c.ListenAddr = v
	}
}

// Validate checks the configuration for values the pipeline cannot
// run with.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InputFile) == "" {
		return ErrMissingInputFile
	}
	if strings.TrimSpace(c.OutputDir) == "" {
		return ErrMissingOutputDir
	}
	if c.BatchSize < 1 {
		return ErrInvalidBatchSize
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	return nil
}
