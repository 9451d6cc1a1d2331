// Package errors provides the shared error constructors of the strkit foundation.
//
// Package: errors
// Title: Standard Error Constructors
// Description: A fluent ErrorBuilder plus constructors for the recurring
//              failure shapes (invalid input, invalid format, out of range,
//              operation failed) and module-specific shortcuts, so that every
//              package reports failures with the same codes and details.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of shared error utilities
// - 2025-10-18 v0.2.0: Stringx constructors for index, decode, pattern and format errors
//
// Every error carries the details "module" and, when known, "operation":
//
//	err := errors.StringxIndexOutOfRange("substring_from_index", 9, 4)
//	errors.ExtractModule(err)    // "stringx"
//	errors.ExtractOperation(err) // "substring_from_index"
package errors
