// Copyright (c) 2025, NVIDIA CORPORATION.  All rights reserved.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package errors

import (
	stderrors "errors"
	"fmt"
	"sort"
	"strings"
)

// ErrorCode represents a structured error classification.
type ErrorCode string

// Validation verdicts. Each one terminates a validation run.
const (
	// ErrCodeSchema indicates an option name unknown to the schema.
	ErrCodeSchema ErrorCode = "SCHEMA"
	// ErrCodeType indicates a value failing the option's primitive type check.
	ErrCodeType ErrorCode = "TYPE"
	// ErrCodeValue indicates a value outside the option's legal set or range.
	ErrCodeValue ErrorCode = "VALUE"
	// ErrCodeIdentity indicates an empty or malformed candidate name or link.
	ErrCodeIdentity ErrorCode = "IDENTITY"
	// ErrCodeDuplicate indicates a non-unique candidate name or link.
	ErrCodeDuplicate ErrorCode = "DUPLICATE"
	// ErrCodeSizingConflict indicates max-investment and unit-size/max-units
	// were combined illegally.
	ErrCodeSizingConflict ErrorCode = "SIZING_CONFLICT"
	// ErrCodeCoherence indicates a has-*-profile flag contradicting its profile.
	ErrCodeCoherence ErrorCode = "COHERENCE"
	// ErrCodeFileAccess indicates a required file is missing or unreadable.
	ErrCodeFileAccess ErrorCode = "FILE_ACCESS"
	// ErrCodeCutTypeConflict indicates yearly_weights used with cut_type=average.
	ErrCodeCutTypeConflict ErrorCode = "CUT_TYPE_CONFLICT"
)

// Tool failures, not verdicts about the input.
const (
	// ErrCodeInternal indicates an internal system error.
	ErrCodeInternal ErrorCode = "INTERNAL"
	// ErrCodeInvalidRequest indicates malformed or invalid invocation.
	ErrCodeInvalidRequest ErrorCode = "INVALID_REQUEST"
)

var validationCodes = map[ErrorCode]bool{
	ErrCodeSchema:          true,
	ErrCodeType:            true,
	ErrCodeValue:           true,
	ErrCodeIdentity:        true,
	ErrCodeDuplicate:       true,
	ErrCodeSizingConflict:  true,
	ErrCodeCoherence:       true,
	ErrCodeFileAccess:      true,
	ErrCodeCutTypeConflict: true,
}

// IsValidation reports whether the code is one of the validation verdicts.
func (c ErrorCode) IsValidation() bool {
	return validationCodes[c]
}

// StructuredError provides structured error information for better observability.
// It includes an error code for programmatic handling, a human-readable message,
// the underlying cause, and optional context for locating the offending input.
type StructuredError struct {
	Code    ErrorCode
	Message string
	Cause   error
	Context map[string]any
}

// Error implements the error interface.
func (e *StructuredError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause for errors.Is and errors.As support.
func (e *StructuredError) Unwrap() error {
	return e.Cause
}

// ContextString renders the context as sorted key=value pairs.
func (e *StructuredError) ContextString() string {
	if len(e.Context) == 0 {
		return ""
	}
	keys := make([]string, 0, len(e.Context))
	for k := range e.Context {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, fmt.Sprintf("%s=%v", k, e.Context[k]))
	}
	return strings.Join(parts, " ")
}

// New creates a new StructuredError with the given code and message.
func New(code ErrorCode, message string) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
	}
}

// NewWithContext creates a new StructuredError with context information.
func NewWithContext(code ErrorCode, message string, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Context: context,
	}
}

// Wrap wraps an existing error with additional context.
func Wrap(code ErrorCode, message string, cause error) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WrapWithContext wraps an error with additional context information.
func WrapWithContext(code ErrorCode, message string, cause error, context map[string]any) *StructuredError {
	return &StructuredError{
		Code:    code,
		Message: message,
		Cause:   cause,
		Context: context,
	}
}

// As returns the outermost StructuredError in err's chain.
func As(err error) (*StructuredError, bool) {
	var se *StructuredError
	if stderrors.As(err, &se) {
		return se, true
	}
	return nil, false
}

// CodeOf returns the code of the outermost StructuredError in err's chain,
// or an empty code when there is none.
func CodeOf(err error) ErrorCode {
	if se, ok := As(err); ok {
		return se.Code
	}
	return ""
}

// IsCode reports whether err carries the given code.
func IsCode(err error, code ErrorCode) bool {
	return err != nil && CodeOf(err) == code
}

// IsValidation reports whether err is a verdict about the input rather than
// a failure of the tool itself.
func IsValidation(err error) bool {
	return CodeOf(err).IsValidation()
}
