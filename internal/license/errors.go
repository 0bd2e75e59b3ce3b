// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package license

import (
	"errors"
	"fmt"
)

// ErrorKind classifies a terminal parse failure. All kinds are
// terminal for a single parse call; the caller decides whether to
// re-invoke with a fresh frame or barcode.
type ErrorKind int

const (
	// ErrInvalidFormat means the payload is not an AAMVA barcode at
	// all (missing "@" prefix or "ANSI" marker).
	ErrInvalidFormat ErrorKind = iota

	// ErrInvalidHeader means the fixed-grammar header scan failed.
	ErrInvalidHeader

	// ErrMissingSubfile means no mandatory DL subfile was found.
	ErrMissingSubfile

	// ErrUnsupportedVersion means the header declares a format version
	// outside the known AAMVA revisions.
	ErrUnsupportedVersion

	// ErrNoFieldsExtracted means the OCR path produced zero fields
	// meeting their acceptance threshold.
	ErrNoFieldsExtracted
)

// String returns the string representation of the error kind.
func (k ErrorKind) String() string {
	switch k {
	case ErrInvalidFormat:
		return "invalid_format"
	case ErrInvalidHeader:
		return "invalid_header"
	case ErrMissingSubfile:
		return "missing_subfile"
	case ErrUnsupportedVersion:
		return "unsupported_version"
	case ErrNoFieldsExtracted:
		return "no_fields_extracted"
	default:
		return "unknown"
	}
}

// ParseError is the typed error returned by both parse entry points.
type ParseError struct {
	Kind    ErrorKind
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Kind, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error for error unwrapping.
func (e *ParseError) Unwrap() error {
	return e.Cause
}

// NewParseError creates a new ParseError.
func NewParseError(kind ErrorKind, message string) *ParseError {
	return &ParseError{Kind: kind, Message: message}
}

// IsKind reports whether err is a ParseError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	var pe *ParseError
	return errors.As(err, &pe) && pe.Kind == kind
}
