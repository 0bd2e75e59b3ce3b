// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// Config represents the application configuration.
type Config struct {
	// Default settings
	Defaults struct {
		Format  string `yaml:"format"`
		Verbose bool   `yaml:"verbose"`
		Debug   bool   `yaml:"debug"`
		NoColor bool   `yaml:"no_color"`
	} `yaml:"defaults"`

	// Scoring factor weights. Must sum to 1.0; a zero value means
	// "use the built-in default".
	Scoring struct {
		OCR          float64 `yaml:"ocr"`
		Pattern      float64 `yaml:"pattern"`
		Format       float64 `yaml:"format"`
		Jurisdiction float64 `yaml:"jurisdiction"`
		Context      float64 `yaml:"context"`
	} `yaml:"scoring"`

	// Thresholds maps field names to acceptance-threshold overrides.
	Thresholds map[string]float64 `yaml:"thresholds"`

	// Preprocessor configurations
	Preprocessors struct {
		PDF struct {
			Enabled           bool    `yaml:"enabled"`
			DefaultConfidence float64 `yaml:"default_confidence"`
			MaxPages          int     `yaml:"max_pages"`
		} `yaml:"pdf"`
	} `yaml:"preprocessors"`
}

// LoadConfig loads configuration from the specified file path. An
// empty path returns the default configuration.
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{
		Thresholds: make(map[string]float64),
	}

	// Set default values
	config.Defaults.Format = "text"
	config.Preprocessors.PDF.Enabled = true
	config.Preprocessors.PDF.DefaultConfidence = 0.9
	config.Preprocessors.PDF.MaxPages = 10

	if configPath == "" {
		return config, nil
	}

	cleanPath := filepath.Clean(configPath)
	data, err := os.ReadFile(cleanPath)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	if err := yaml.Unmarshal(data, config); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	if err := ValidateConfig(config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return config, nil
}

// FindConfigFile looks for a configuration file in standard locations.
func FindConfigFile() string {
	for _, name := range []string{"config.yaml", "license-scan.yaml", "license-scan.yml", ".license-scan.yaml"} {
		if fileExists(name) {
			return name
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	if xdgConfig == "" {
		xdgConfig = filepath.Join(home, ".config")
	}
	for _, name := range []string{"config.yaml", "config.yml"} {
		candidate := filepath.Join(xdgConfig, "license-scan", name)
		if fileExists(candidate) {
			return candidate
		}
	}

	return ""
}

// LoadConfigOrDefault loads configuration from configFile (or searches
// standard locations when configFile is empty). If loading fails, it
// returns the default configuration: callers should not crash on a
// missing or bad config file.
func LoadConfigOrDefault(configFile string) *Config {
	configPath := configFile
	if configPath == "" {
		configPath = FindConfigFile()
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		cfg, _ = LoadConfig("")
	}
	return cfg
}

// ValidateConfig validates threshold and weight ranges.
func ValidateConfig(config *Config) error {
	if config == nil {
		return fmt.Errorf("configuration cannot be nil")
	}

	for field, threshold := range config.Thresholds {
		if threshold < 0 || threshold > 1 {
			return fmt.Errorf("threshold for %q must be in [0,1], got %v", field, threshold)
		}
	}

	for name, w := range map[string]float64{
		"ocr":          config.Scoring.OCR,
		"pattern":      config.Scoring.Pattern,
		"format":       config.Scoring.Format,
		"jurisdiction": config.Scoring.Jurisdiction,
		"context":      config.Scoring.Context,
	} {
		if w < 0 || w > 1 {
			return fmt.Errorf("scoring weight %q must be in [0,1], got %v", name, w)
		}
	}

	if c := config.Preprocessors.PDF.DefaultConfidence; c < 0 || c > 1 {
		return fmt.Errorf("pdf default confidence must be in [0,1], got %v", c)
	}

	return nil
}

// fileExists checks if a file exists and is not a directory.
func fileExists(filename string) bool {
	info, err := os.Stat(filename)
	if os.IsNotExist(err) {
		return false
	}
	return err == nil && !info.IsDir()
}
