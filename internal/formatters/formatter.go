// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

// Package formatters defines the output-formatter registry shared by
// the CLI. Concrete formatters register themselves during package
// initialization.
package formatters

import (
	"fmt"
	"sort"
	"sync"

	"license-scan/internal/license"
)

// FormatterOptions carries presentation settings.
type FormatterOptions struct {
	Verbose bool
	NoColor bool
}

// Formatter converts a parsed record into one output format.
type Formatter interface {
	Name() string
	Description() string
	FileExtension() string
	Format(record *license.Record, options FormatterOptions) (string, error)
}

var (
	mu       sync.RWMutex
	registry = map[string]Formatter{}
)

// Register adds a formatter to the registry. Later registrations with
// the same name win; this only matters for tests that stub formatters.
func Register(f Formatter) {
	mu.Lock()
	defer mu.Unlock()
	registry[f.Name()] = f
}

// Get returns the named formatter.
func Get(name string) (Formatter, error) {
	mu.RLock()
	defer mu.RUnlock()
	f, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown output format: %s", name)
	}
	return f, nil
}

// List returns the registered formatter names, sorted.
func List() []string {
	mu.RLock()
	defer mu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
