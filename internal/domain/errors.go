package domain

import (
	"errors"
	"fmt"
)

// Error codes for the analysis pipeline's failure taxonomy.
const (
	ErrCodeFileNotFound  = "FILE_NOT_FOUND"  // input path missing, fatal to the parse
	ErrCodeEmptyResult   = "EMPTY_RESULT"    // zero usable records, likely wrong file format
	ErrCodeMalformedLine = "MALFORMED_LINE"  // per-line, non-fatal, counted and skipped
	ErrCodeUnknownTrait  = "UNKNOWN_TRAIT"   // requested PRS model key not registered
)

// AnalysisError is a standardized error for the analysis core. The Code
// field carries the failure kind so callers can branch without string
// matching on messages.
type AnalysisError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Details string `json:"details,omitempty"`
	cause   error
}

// Error implements the error interface.
func (e *AnalysisError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap exposes the underlying cause for errors.Is/As chains.
func (e *AnalysisError) Unwrap() error {
	return e.cause
}

// NewFileNotFoundError reports a missing input file.
func NewFileNotFoundError(path string, cause error) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeFileNotFound,
		Message: fmt.Sprintf("input file not found: %s", path),
		cause:   cause,
	}
}

// NewEmptyResultError reports that parsing produced zero usable records.
// This distinguishes "wrong file format" from "genuinely no data": a
// non-trivial file yielding nothing almost always means the wrong file was
// supplied.
func NewEmptyResultError(linesRead int) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeEmptyResult,
		Message: "no valid genotype records parsed",
		Details: fmt.Sprintf("%d lines read without a single usable record; the file is likely not a 23andMe/Ancestry export", linesRead),
	}
}

// NewUnknownTraitError reports a PRS model key that is not registered.
func NewUnknownTraitError(traitKey string) *AnalysisError {
	return &AnalysisError{
		Code:    ErrCodeUnknownTrait,
		Message: fmt.Sprintf("no PRS model registered for trait %q", traitKey),
	}
}

// IsCode reports whether err (or anything it wraps) is an AnalysisError
// with the given code.
func IsCode(err error, code string) bool {
	var ae *AnalysisError
	if errors.As(err, &ae) {
		return ae.Code == code
	}
	return false
}
