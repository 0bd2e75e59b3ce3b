// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected default format=text, got %q", cfg.Defaults.Format)
	}
	if !cfg.Preprocessors.PDF.Enabled {
		t.Error("expected PDF preprocessing enabled by default")
	}
	if cfg.Preprocessors.PDF.DefaultConfidence != 0.9 {
		t.Errorf("expected default PDF confidence 0.9, got %v", cfg.Preprocessors.PDF.DefaultConfidence)
	}
	if cfg.Preprocessors.PDF.MaxPages != 10 {
		t.Errorf("expected default max pages 10, got %d", cfg.Preprocessors.PDF.MaxPages)
	}
}

func TestLoadConfig_ValidFile(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")

	content := `
defaults:
  format: json
  verbose: true
scoring:
  ocr: 0.4
  pattern: 0.2
thresholds:
  licenseNumber: 0.85
preprocessors:
  pdf:
    enabled: true
    max_pages: 3
`
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Defaults.Format != "json" {
		t.Errorf("format = %q, want json", cfg.Defaults.Format)
	}
	if !cfg.Defaults.Verbose {
		t.Error("expected verbose=true")
	}
	if cfg.Scoring.OCR != 0.4 {
		t.Errorf("scoring.ocr = %v", cfg.Scoring.OCR)
	}
	if cfg.Thresholds["licenseNumber"] != 0.85 {
		t.Errorf("threshold override = %v", cfg.Thresholds["licenseNumber"])
	}
	if cfg.Preprocessors.PDF.MaxPages != 3 {
		t.Errorf("max pages = %d", cfg.Preprocessors.PDF.MaxPages)
	}
}

func TestLoadConfig_MissingFile(t *testing.T) {
	if _, err := LoadConfig("/nonexistent/config.yaml"); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestLoadConfigOrDefault_FallsBack(t *testing.T) {
	cfg := LoadConfigOrDefault("/nonexistent/config.yaml")
	if cfg == nil {
		t.Fatal("expected non-nil config")
	}
	if cfg.Defaults.Format != "text" {
		t.Errorf("expected fallback defaults, got format %q", cfg.Defaults.Format)
	}
}

func TestLoadConfigOrDefault_InvalidYAML(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(configPath, []byte(":::invalid yaml:::"), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := LoadConfigOrDefault(configPath)
	if cfg == nil {
		t.Fatal("expected non-nil config (fallback to defaults on parse error)")
	}
}

func TestValidateConfig(t *testing.T) {
	cfg, _ := LoadConfig("")
	if err := ValidateConfig(cfg); err != nil {
		t.Errorf("default config must validate, got %v", err)
	}

	cfg.Thresholds = map[string]float64{"licenseNumber": 1.5}
	if err := ValidateConfig(cfg); err == nil {
		t.Error("out-of-range threshold must fail validation")
	}

	cfg, _ = LoadConfig("")
	cfg.Scoring.OCR = -0.1
	if err := ValidateConfig(cfg); err == nil {
		t.Error("negative weight must fail validation")
	}

	if err := ValidateConfig(nil); err == nil {
		t.Error("nil config must fail validation")
	}
}

func TestLoadConfig_RejectsInvalidValues(t *testing.T) {
	dir := t.TempDir()
	configPath := filepath.Join(dir, "config.yaml")
	content := "thresholds:\n  licenseNumber: 2.0\n"
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Error("expected validation error for out-of-range threshold")
	}
}
