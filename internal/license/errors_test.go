// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package license

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestParseError_Message(t *testing.T) {
	err := NewParseError(ErrMissingSubfile, "payload has no DL subfile")
	if !strings.Contains(err.Error(), "missing_subfile") {
		t.Errorf("error string should carry the kind, got %q", err.Error())
	}
	if !strings.Contains(err.Error(), "payload has no DL subfile") {
		t.Errorf("error string should carry the message, got %q", err.Error())
	}
}

func TestIsKind(t *testing.T) {
	err := NewParseError(ErrInvalidHeader, "bad header")
	if !IsKind(err, ErrInvalidHeader) {
		t.Error("expected kind match")
	}
	if IsKind(err, ErrInvalidFormat) {
		t.Error("unexpected kind match")
	}
	if IsKind(nil, ErrInvalidHeader) {
		t.Error("nil error matches no kind")
	}
	if IsKind(errors.New("plain"), ErrInvalidHeader) {
		t.Error("untyped error matches no kind")
	}
}

func TestIsKind_Wrapped(t *testing.T) {
	inner := NewParseError(ErrUnsupportedVersion, "version 99")
	wrapped := fmt.Errorf("parsing document: %w", inner)
	if !IsKind(wrapped, ErrUnsupportedVersion) {
		t.Error("IsKind must see through error wrapping")
	}
}

func TestParseError_Unwrap(t *testing.T) {
	cause := errors.New("root cause")
	err := &ParseError{Kind: ErrInvalidFormat, Message: "outer", Cause: cause}
	if !errors.Is(err, cause) {
		t.Error("errors.Is must reach the cause")
	}
	if !strings.Contains(err.Error(), "root cause") {
		t.Errorf("error string should include the cause, got %q", err.Error())
	}
}

func TestErrorKindString(t *testing.T) {
	kinds := map[ErrorKind]string{
		ErrInvalidFormat:      "invalid_format",
		ErrInvalidHeader:      "invalid_header",
		ErrMissingSubfile:     "missing_subfile",
		ErrUnsupportedVersion: "unsupported_version",
		ErrNoFieldsExtracted:  "no_fields_extracted",
		ErrorKind(99):         "unknown",
	}
	for kind, want := range kinds {
		if kind.String() != want {
			t.Errorf("%d.String() = %q, want %q", kind, kind.String(), want)
		}
	}
}
