// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/term"

	"license-scan/internal/config"
	"license-scan/internal/core"
	"license-scan/internal/license"
	"license-scan/internal/observability"
	"license-scan/internal/ocr"
	"license-scan/internal/preprocessors"
	"license-scan/internal/version"

	"license-scan/internal/formatters"
	_ "license-scan/internal/formatters/csv"
	_ "license-scan/internal/formatters/json"
	_ "license-scan/internal/formatters/text"
	_ "license-scan/internal/formatters/yaml"
)

const (
	exitOK    = 0
	exitParse = 1
	exitUsage = 2
)

func main() {
	inputFile := flag.String("file", "", "Path to the input file (barcode payload, OCR token JSON, or PDF)")
	mode := flag.String("mode", "", "Input mode: barcode, ocr, or pdf (default: inferred from file extension)")
	configFile := flag.String("config", "", "Path to configuration file (YAML)")
	outputFormat := flag.String("format", "", "Output format: text, json, csv, yaml (default: text)")
	outputFile := flag.String("output", "", "Path to output file (if not specified, output to stdout)")
	verbose := flag.Bool("verbose", false, "Include rejected fields and extraction detail in output")
	debug := flag.Bool("debug", false, "Enable debug logging of pipeline stage timings")
	noColor := flag.Bool("no-color", false, "Disable colored output")
	listFormats := flag.Bool("list-formats", false, "List available output formats and exit")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersionInfo())
		os.Exit(exitOK)
	}

	if *listFormats {
		fmt.Println("Available output formats:")
		for _, name := range formatters.List() {
			f, _ := formatters.Get(name)
			fmt.Printf("  - %s: %s\n", name, f.Description())
		}
		os.Exit(exitOK)
	}

	if *inputFile == "" {
		fmt.Fprintln(os.Stderr, "Error: -file is required")
		flag.Usage()
		os.Exit(exitUsage)
	}

	cfg := config.LoadConfigOrDefault(*configFile)

	// Flags override config defaults.
	format := cfg.Defaults.Format
	if *outputFormat != "" {
		format = *outputFormat
	}
	useVerbose := *verbose || cfg.Defaults.Verbose
	useDebug := *debug || cfg.Defaults.Debug
	useNoColor := *noColor || cfg.Defaults.NoColor
	if *outputFile != "" || !isTerminal(os.Stdout) {
		useNoColor = true
	}

	formatter, err := formatters.Get(format)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintf(os.Stderr, "Available formats: %s\n", strings.Join(formatters.List(), ", "))
		os.Exit(exitUsage)
	}

	resolvedMode, err := resolveMode(*mode, *inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitUsage)
	}

	level := observability.LevelOff
	if useDebug {
		level = observability.LevelDebug
	}
	observer := observability.NewStandardObserver(level, os.Stderr)

	pipeline := core.New(
		core.WithObserver(observer),
		core.WithConfig(cfg),
	)

	record, err := runPipeline(pipeline, cfg, resolvedMode, *inputFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(exitParse)
	}

	output, err := formatter.Format(record, formatters.FormatterOptions{
		Verbose: useVerbose,
		NoColor: useNoColor,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error formatting output: %v\n", err)
		os.Exit(exitParse)
	}

	if *outputFile != "" {
		if err := os.WriteFile(*outputFile, []byte(output), 0o600); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing output file: %v\n", err)
			os.Exit(exitParse)
		}
	} else {
		fmt.Print(output)
		if !strings.HasSuffix(output, "\n") {
			fmt.Println()
		}
	}

	os.Exit(exitOK)
}

// resolveMode returns the effective input mode, inferring from the
// file extension when no mode flag is given.
func resolveMode(mode, inputFile string) (string, error) {
	switch mode {
	case "barcode", "ocr", "pdf":
		return mode, nil
	case "":
	default:
		return "", fmt.Errorf("unknown mode: %s (expected barcode, ocr, or pdf)", mode)
	}

	switch strings.ToLower(filepath.Ext(inputFile)) {
	case ".pdf":
		return "pdf", nil
	case ".json":
		return "ocr", nil
	default:
		return "barcode", nil
	}
}

// runPipeline reads the input for the given mode and runs the parse.
func runPipeline(pipeline *core.Pipeline, cfg *config.Config, mode, inputFile string) (*license.Record, error) {
	switch mode {
	case "barcode":
		data, err := os.ReadFile(filepath.Clean(inputFile))
		if err != nil {
			return nil, fmt.Errorf("error reading input file: %w", err)
		}
		return pipeline.ParseBarcode(string(data))

	case "ocr":
		tokens, err := readTokenFile(inputFile)
		if err != nil {
			return nil, err
		}
		return pipeline.ParseOCR(tokens)

	case "pdf":
		if !cfg.Preprocessors.PDF.Enabled {
			return nil, fmt.Errorf("PDF preprocessing is disabled in configuration")
		}
		extractor := preprocessors.NewPDFExtractor(
			cfg.Preprocessors.PDF.MaxPages,
			cfg.Preprocessors.PDF.DefaultConfidence,
		)
		tokens, err := extractor.ExtractTokens(inputFile)
		if err != nil {
			return nil, err
		}
		return pipeline.ParseOCR(tokens)
	}

	return nil, fmt.Errorf("unknown mode: %s", mode)
}

// readTokenFile parses an OCR token dump: a JSON array of objects
// with text, confidence, and bbox keys.
func readTokenFile(path string) ([]ocr.Token, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("error reading token file: %w", err)
	}

	var tokens []ocr.Token
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, fmt.Errorf("error parsing token file: %w", err)
	}
	return tokens, nil
}

// isTerminal checks if the file descriptor is a terminal
func isTerminal(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}
