// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package apperr defines the centralized error handling framework for vubib.

It provides a rich error type that bridges the gap between low-level storage or
transport errors and the per-record outcomes reported by the exporter.

Architecture:

  - AppError: A struct containing a machine-readable Code and a readable message.
  - Kinds: Hierarchy, transport, not-found, validation and internal failures.
  - Inspection: [Is] lets callers branch on the code without string matching.

Every error that leaves a repository or transport should be wrapped as an
[AppError] so the indexer can log a consistent code per failed record.
*/
package apperr

import (
	"errors"
	"fmt"
)

// Machine-readable error codes.
const (
	CodeNotFound   = "NOT_FOUND"
	CodeValidation = "VALIDATION_ERROR"
	CodeHierarchy  = "HIERARCHY_ERROR"
	CodeTransport  = "TRANSPORT_ERROR"
	CodeInternal   = "INTERNAL_ERROR"
)

// AppError is the canonical error type for the exporter.
type AppError struct {
	// Code is a machine-readable error identifier (e.g. "NOT_FOUND").
	Code string `json:"code"`
	// Message is a human-readable description.
	Message string `json:"error"`
	// Cause is the underlying error, kept for logging and [errors.Is].
	Cause error `json:"-"`
	// Details holds per-field validation errors for VALIDATION_ERROR.
	Details []FieldError `json:"details,omitempty"`
}

// FieldError represents a single field-level validation failure.
type FieldError struct {
	// Field is the option or flag name that failed validation.
	Field string `json:"field"`
	// Message is the human-readable description of the failure.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *AppError) Error() string {
	if len(e.Details) > 0 {
		return fmt.Sprintf("%s: %s: %s", e.Message, e.Details[0].Field, e.Details[0].Message)
	}
	if e.Cause != nil {
		return e.Message + ": " + e.Cause.Error()
	}
	return e.Message
}

// Unwrap allows [errors.Is] and [errors.As] to traverse the cause chain.
func (e *AppError) Unwrap() error { return e.Cause }

// # Constructors

// NotFound creates a NOT_FOUND [AppError] for a named resource.
//
// Example:
//
//	apperr.NotFound("Folder") // Returns "Folder not found"
func NotFound(resource string) *AppError {
	return &AppError{
		Code:    CodeNotFound,
		Message: resource + " not found",
	}
}

// ValidationError creates a VALIDATION_ERROR [AppError] with optional per-field details.
func ValidationError(msg string, details ...FieldError) *AppError {
	return &AppError{
		Code:    CodeValidation,
		Message: msg,
		Details: details,
	}
}

// Hierarchy creates a HIERARCHY_ERROR for a broken classification tree.
func Hierarchy(msg string, cause error) *AppError {
	return &AppError{
		Code:    CodeHierarchy,
		Message: msg,
		Cause:   cause,
	}
}

// Transport creates a TRANSPORT_ERROR for a failed search index round-trip.
func Transport(msg string, cause error) *AppError {
	return &AppError{
		Code:    CodeTransport,
		Message: msg,
		Cause:   cause,
	}
}

// Internal creates an INTERNAL_ERROR wrapping an unexpected failure.
func Internal(cause error) *AppError {
	return &AppError{
		Code:    CodeInternal,
		Message: "unexpected error",
		Cause:   cause,
	}
}

// # Helpers

// As extracts the [*AppError] from err's chain. It returns nil if not found.
func As(err error) *AppError {
	var ae *AppError
	if errors.As(err, &ae) {
		return ae
	}
	return nil
}

// Is reports whether err (or any error in its chain) is an [*AppError] with code.
func Is(err error, code string) bool {
	ae := As(err)
	return ae != nil && ae.Code == code
}

// CodeOf returns the code of the first [*AppError] in err's chain, or
// CodeInternal when there is none.
func CodeOf(err error) string {
	if ae := As(err); ae != nil {
		return ae.Code
	}
	return CodeInternal
}
