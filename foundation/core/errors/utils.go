// File: utils.go
// Title: Shared Error Handling Utilities
// Description: Standard constructors used by every strkit package so that
//              failures share codes, severities and detail keys, plus the
//              module-specific shortcuts for stringx and config.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-07-26 v0.1.1: OutOfRange message carries the "validation failed:" prefix
// - 2025-10-18 v0.2.0: Stringx index, decode, pattern and format constructors
// - 2026-10-18 v0.2.0: Separate constructor for payloads that are not UTF-8

package errors

import (
	"fmt"

	skerror "github.com/msto63/strkit/foundation/core/error"
)

// =============================================================================
// STANDARD ERROR CREATION FUNCTIONS
// =============================================================================

// InvalidInput creates a standardized invalid input error
func InvalidInput(module, operation string, input interface{}, expected string) *skerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid input for %s.%s", module, operation)).
		Code(skerror.CodeInvalidInput).
		Detail("input", input).
		Detail("expected", expected).
		Severity(skerror.SeverityLow).
		Build()
}

// InvalidFormat creates a standardized format error
func InvalidFormat(module, operation string, input interface{}, expectedFormat string) *skerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("invalid format in %s.%s: expected %s", module, operation, expectedFormat)).
		Code(skerror.CodeInvalidFormat).
		Detail("input", input).
		Detail("expected_format", expectedFormat).
		Severity(skerror.SeverityLow).
		Build()
}

// OperationFailed creates a standardized operation failure error
func OperationFailed(module, operation string, cause error) *skerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("%s.%s operation failed", module, operation)).
		Cause(cause).
		Severity(skerror.SeverityHigh).
		Build()
}

// OutOfRange creates a standardized out of range error
func OutOfRange(module, operation string, value, min, max interface{}) *skerror.Error {
	return NewErrorBuilder(module).
		Operation(operation).
		Message(fmt.Sprintf("validation failed: value out of range in %s.%s", module, operation)).
		Code(skerror.CodeValueOutOfRange).
		Detail("value", value).
		Detail("min", min).
		Detail("max", max).
		Severity(skerror.SeverityLow).
		Build()
}

// =============================================================================
// ERROR ANALYSIS
// =============================================================================

// ExtractDetails extracts all details from a strkit error
func ExtractDetails(err error) map[string]interface{} {
	if e, ok := err.(*skerror.Error); ok {
		return e.Details()
	}
	return nil
}

// ExtractModule extracts the module name from an error
func ExtractModule(err error) string {
	if module, ok := ExtractDetails(err)["module"].(string); ok {
		return module
	}
	return ""
}

// ExtractOperation extracts the operation name from an error
func ExtractOperation(err error) string {
	if operation, ok := ExtractDetails(err)["operation"].(string); ok {
		return operation
	}
	return ""
}

// IsModuleOperation checks if error is from specific module and operation
func IsModuleOperation(err error, module, operation string) bool {
	return ExtractModule(err) == module && ExtractOperation(err) == operation
}

// =============================================================================
// MODULE-SPECIFIC CONVENIENCE FUNCTIONS
// =============================================================================

// StringxIndexOutOfRange reports a character index outside [0, length].
func StringxIndexOutOfRange(operation string, index, length int) *skerror.Error {
	return NewErrorBuilder("stringx").
		Operation(operation).
		Messagef("index %d out of range [0,%d] in stringx.%s", index, length, operation).
		Code(skerror.CodeIndexOutOfRange).
		Detail("index", index).
		Detail("length", length).
		Severity(skerror.SeverityLow).
		Build()
}

// StringxRangeOutOfBounds reports a [start, end) range that does not fit in [0, length].
func StringxRangeOutOfBounds(operation string, start, end, length int) *skerror.Error {
	return NewErrorBuilder("stringx").
		Operation(operation).
		Messagef("range [%d,%d) out of range [0,%d] in stringx.%s", start, end, length, operation).
		Code(skerror.CodeIndexOutOfRange).
		Detail("start", start).
		Detail("end", end).
		Detail("length", length).
		Severity(skerror.SeverityLow).
		Build()
}

// StringxDecodeError reports input that cannot be decoded.
func StringxDecodeError(operation, input string, cause error) *skerror.Error {
	b := NewErrorBuilder("stringx").
		Operation(operation).
		Messagef("stringx.%s: malformed input", operation).
		Code(skerror.CodeDecodeError).
		Detail("input", input).
		Severity(skerror.SeverityLow)
	if cause != nil {
		b.Cause(cause)
	}
	return b.Build()
}

// StringxInvalidUTF8 reports input that decodes cleanly but whose payload is
// not valid UTF-8. offset is the byte position of the first invalid sequence
// in the decoded payload.
func StringxInvalidUTF8(operation, input string, offset int) *skerror.Error {
	return NewErrorBuilder("stringx").
		Operation(operation).
		Messagef("stringx.%s: decoded payload is not valid UTF-8 at byte %d", operation, offset).
		Code(skerror.CodeDecodeError).
		Detail("input", input).
		Detail("reason", "invalid_utf8").
		Detail("offset", offset).
		Severity(skerror.SeverityLow).
		Build()
}

// StringxPatternError reports a regular expression that does not compile.
func StringxPatternError(pattern string, cause error) *skerror.Error {
	return NewErrorBuilder("stringx").
		Operation("replace_with_regex").
		Messagef("invalid pattern %q", pattern).
		Code(skerror.CodePatternError).
		Cause(cause).
		Detail("pattern", pattern).
		Severity(skerror.SeverityLow).
		Build()
}

// StringxFormatError reports input that does not have the expected layout.
func StringxFormatError(operation, input, expectedFormat string) *skerror.Error {
	return InvalidFormat("stringx", operation, input, expectedFormat)
}

// ConfigLoadFailed reports a configuration source that could not be read or parsed.
func ConfigLoadFailed(operation, source string, cause error) *skerror.Error {
	return NewErrorBuilder("config").
		Operation(operation).
		Messagef("failed to load configuration from %s", source).
		Code(skerror.CodeConfigError).
		Cause(cause).
		Detail("source", source).
		Severity(skerror.SeverityHigh).
		Build()
}

// ConfigInvalidValue reports a configuration key holding an unusable value.
func ConfigInvalidValue(key string, value interface{}, expected string) *skerror.Error {
	return NewErrorBuilder("config").
		Operation("validate").
		Messagef("invalid value for %s: expected %s", key, expected).
		Code(skerror.CodeInvalidConfig).
		Detail("key", key).
		Detail("value", value).
		Detail("expected", expected).
		Severity(skerror.SeverityHigh).
		Build()
}
