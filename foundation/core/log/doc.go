// Package log provides structured logging for strkit.
//
// Package: log
// Title: strkit Structured Logging
// Description: Leveled, structured logging with JSON, text, console and
//              logfmt output, persistent context fields, operation timers and
//              severity-aware reporting of strkit errors.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-10-18 v0.2.0: Removed async and request context, sorted field output
//
// Usage:
//   import sklog "github.com/msto63/strkit/foundation/core/log"
//
//   logger := sklog.NewWithConfig(sklog.Config{
//     Level:  sklog.LevelDebug,
//     Format: sklog.FormatText,
//     Output: os.Stderr,
//     Name:   "strkit",
//   })
//
//   timer := logger.StartTimer("search")
//   result := stringx.SearchInString(text, '(', ')')
//   timer.WithField("result_length", len(result)).Stop()
//
//   if err != nil {
//     logger.LogError(err) // level follows the error severity
//   }
package log
