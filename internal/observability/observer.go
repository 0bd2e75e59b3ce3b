// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"encoding/json"
	"io"
	"time"
)

// StandardObserver implements observability for the pipeline stages.
type StandardObserver struct {
	level  Level
	writer io.Writer
}

type Level int

const (
	LevelOff     Level = 0
	LevelMetrics Level = 1
	LevelDebug   Level = 2
)

// NewStandardObserver creates the observability component.
func NewStandardObserver(level Level, writer io.Writer) *StandardObserver {
	return &StandardObserver{
		level:  level,
		writer: writer,
	}
}

// StartTiming returns a function to complete timing for one stage.
func (o *StandardObserver) StartTiming(component, operation string) func(success bool, metadata map[string]interface{}) {
	start := time.Now()

	return func(success bool, metadata map[string]interface{}) {
		duration := time.Since(start)

		o.LogOperation(StageData{
			Component:  component,
			Operation:  operation,
			DurationMs: duration.Milliseconds(),
			Success:    success,
			Metadata:   metadata,
		})
	}
}

// LogOperation logs one stage record.
func (o *StandardObserver) LogOperation(data StageData) {
	if o == nil || o.level == LevelOff {
		return
	}

	data.RequestID = "req-" + time.Now().Format("20060102-150405")

	// Only emit JSON in debug mode
	if o.level == LevelDebug {
		json.NewEncoder(o.writer).Encode(data)
	}
}

// StageData describes one pipeline stage execution.
type StageData struct {
	Component  string                 `json:"component"`
	Operation  string                 `json:"operation"`
	RequestID  string                 `json:"request_id"`
	DurationMs int64                  `json:"duration_ms,omitempty"`
	Success    bool                   `json:"success"`
	Error      string                 `json:"error,omitempty"`
	FieldCount int                    `json:"field_count,omitempty"`
	Metadata   map[string]interface{} `json:"metadata,omitempty"`
}
