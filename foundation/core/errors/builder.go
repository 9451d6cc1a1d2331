// File: builder.go
// Title: Fluent Error Builder
// Description: ErrorBuilder assembles a structured error from module,
//              operation, message, cause, details, code and severity.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2025-10-18 v0.2.0: Typed codes, default code per module

package errors

import (
	"fmt"
	"strings"

	skerror "github.com/msto63/strkit/foundation/core/error"
)

// ErrorBuilder provides a fluent interface for building standardized errors
type ErrorBuilder struct {
	module    string
	operation string
	message   string
	cause     error
	details   map[string]interface{}
	severity  skerror.Severity
	code      skerror.Code
}

// NewErrorBuilder creates a new error builder for the specified module
func NewErrorBuilder(module string) *ErrorBuilder {
	return &ErrorBuilder{
		module:   module,
		details:  make(map[string]interface{}),
		severity: skerror.SeverityMedium,
	}
}

// Operation sets the operation name for the error
func (eb *ErrorBuilder) Operation(operation string) *ErrorBuilder {
	eb.operation = operation
	return eb
}

// Message sets the error message
func (eb *ErrorBuilder) Message(message string) *ErrorBuilder {
	eb.message = message
	return eb
}

// Messagef sets the error message with formatting
func (eb *ErrorBuilder) Messagef(format string, args ...interface{}) *ErrorBuilder {
	eb.message = fmt.Sprintf(format, args...)
	return eb
}

// Cause sets the underlying cause of the error
func (eb *ErrorBuilder) Cause(cause error) *ErrorBuilder {
	eb.cause = cause
	return eb
}

// Detail adds a detail key-value pair to the error
func (eb *ErrorBuilder) Detail(key string, value interface{}) *ErrorBuilder {
	eb.details[key] = value
	return eb
}

// Severity sets the error severity
func (eb *ErrorBuilder) Severity(severity skerror.Severity) *ErrorBuilder {
	eb.severity = severity
	return eb
}

// Code sets the error code
func (eb *ErrorBuilder) Code(code skerror.Code) *ErrorBuilder {
	eb.code = code
	return eb
}

// Build creates the final error
func (eb *ErrorBuilder) Build() *skerror.Error {
	if eb.code == "" {
		eb.code = moduleFailureCode(eb.module)
	}

	if eb.message == "" {
		if eb.operation != "" {
			eb.message = fmt.Sprintf("%s.%s failed", eb.module, eb.operation)
		} else {
			eb.message = fmt.Sprintf("%s operation failed", eb.module)
		}
	}

	eb.details["module"] = eb.module
	if eb.operation != "" {
		eb.details["operation"] = eb.operation
	}

	var err *skerror.Error
	if eb.cause != nil {
		err = skerror.Wrap(eb.cause, eb.message)
	} else {
		err = skerror.New(eb.message)
	}

	err = err.
		WithCode(eb.code).
		WithDetails(eb.details).
		WithSeverity(eb.severity)
	if eb.operation != "" {
		err = err.WithOperation(eb.operation)
	}
	return err
}

// moduleFailureCode derives MODULE_OPERATION_FAILED for errors built without a code
func moduleFailureCode(module string) skerror.Code {
	if module == "" {
		return skerror.CodeUnknown
	}
	return skerror.Code(strings.ToUpper(module) + "_OPERATION_FAILED")
}
