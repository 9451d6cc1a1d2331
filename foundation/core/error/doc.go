// Package error provides the structured error type used across strkit.
//
// Package: error
// Title: strkit Error Handling
// Description: Structured errors carrying a machine-readable code, a severity,
//              free-form details and a captured stack trace. Errors stay
//              compatible with the standard error interface and with
//              errors.Is / errors.As through Unwrap.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2025-10-18 v0.2.0: Reduced code set to the string utility domain, chain-aware HasCode
//
// Usage:
//   import skerror "github.com/msto63/strkit/foundation/core/error"
//
//   err := skerror.New("index 12 is out of range").
//     WithCode(skerror.CodeIndexOutOfRange).
//     WithDetail("length", 5)
//
//   if skerror.HasCode(err, skerror.CodeIndexOutOfRange) {
//     // handle the bad index
//   }
package error
