// File: example_test.go
// Title: Error Module Examples
// Description: Example usage of the strkit error type.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive examples
// - 2025-10-18 v0.2.0: Examples rewritten for string utility errors

package error

import (
	"encoding/base64"
	"fmt"
)

// ExampleNew demonstrates creating a new error with context
func ExampleNew() {
	err := New("index 12 out of range").
		WithCode(CodeIndexOutOfRange).
		WithDetail("length", 5)

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())
	fmt.Println("Severity:", err.Severity())

	// Output:
	// Error: index 12 out of range
	// Code: INDEX_OUT_OF_RANGE
	// Severity: low
}

// ExampleWrap demonstrates wrapping a standard library error
func ExampleWrap() {
	_, cause := base64.StdEncoding.DecodeString("@@@@")

	err := Wrap(cause, "base64 decode failed").
		WithCode(CodeDecodeError).
		WithOperation("decode_base64")

	fmt.Println("Error:", err.Error())
	fmt.Println("Code:", err.Code())

	// Output:
	// Error: base64 decode failed: illegal base64 data at input byte 0
	// Code: DECODE_ERROR
}

// ExampleHasCode demonstrates checking a code through a wrap chain
func ExampleHasCode() {
	inner := New("missing parenthesis").WithCode(CodePatternError)
	outer := fmt.Errorf("replace: %w", inner)

	fmt.Println(HasCode(outer, CodePatternError))
	fmt.Println(HasCode(outer, CodeDecodeError))

	// Output:
	// true
	// false
}
