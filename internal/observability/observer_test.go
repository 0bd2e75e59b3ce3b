// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package observability

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestStartTiming_EmitsInDebug(t *testing.T) {
	var buf bytes.Buffer
	observer := NewStandardObserver(LevelDebug, &buf)

	finish := observer.StartTiming("pipeline", "parse_ocr")
	finish(true, map[string]interface{}{"token_count": 3})

	line := strings.TrimSpace(buf.String())
	if line == "" {
		t.Fatal("expected a debug record")
	}

	var data StageData
	if err := json.Unmarshal([]byte(line), &data); err != nil {
		t.Fatalf("debug record is not JSON: %v", err)
	}
	if data.Component != "pipeline" || data.Operation != "parse_ocr" {
		t.Errorf("unexpected stage identity: %+v", data)
	}
	if !data.Success {
		t.Error("expected success=true")
	}
	if data.Metadata["token_count"] != float64(3) {
		t.Errorf("metadata = %v", data.Metadata)
	}
}

func TestLogOperation_SilentBelowDebug(t *testing.T) {
	var buf bytes.Buffer
	for _, level := range []Level{LevelOff, LevelMetrics} {
		observer := NewStandardObserver(level, &buf)
		observer.LogOperation(StageData{Component: "pipeline", Operation: "parse"})
	}
	if buf.Len() != 0 {
		t.Errorf("expected no output below debug level, got %q", buf.String())
	}
}

func TestLogOperation_NilSafe(t *testing.T) {
	var observer *StandardObserver
	// Must not panic.
	observer.LogOperation(StageData{Component: "pipeline"})
}
