// File: index.go
// Title: Rune-Indexed Slicing
// Description: Length, single-character access and substring extraction by
//              rune index. Out-of-range indices are reported, never clamped.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Unicode-safe truncation helpers
// - 2025-10-18 v0.3.0: Replaced by checked index and range slicing

package stringx

import (
	"unicode/utf8"

	"github.com/msto63/strkit/foundation/core/errors"
)

// Length returns the number of runes in s.
func Length(s string) int {
	return utf8.RuneCountInString(s)
}

// CharacterAt returns the rune at index i. Valid indices are 0 <= i < Length(s).
func CharacterAt(s string, i int) (rune, error) {
	runes := []rune(s)
	if i < 0 || i >= len(runes) {
		return 0, errors.StringxIndexOutOfRange("character_at", i, len(runes))
	}
	return runes[i], nil
}

// SubstringFromIndex returns the runes from i to the end of s.
func SubstringFromIndex(s string, i int) (string, error) {
	runes := []rune(s)
	if i < 0 || i > len(runes) {
		return "", errors.StringxIndexOutOfRange("substring_from_index", i, len(runes))
	}
	return string(runes[i:]), nil
}

// SubstringToIndex returns the runes before index i.
func SubstringToIndex(s string, i int) (string, error) {
	runes := []rune(s)
	if i < 0 || i > len(runes) {
		return "", errors.StringxIndexOutOfRange("substring_to_index", i, len(runes))
	}
	return string(runes[:i]), nil
}

// SubstringWithRange returns the runes in [start, end).
// It requires 0 <= start <= end <= Length(s).
func SubstringWithRange(s string, start, end int) (string, error) {
	runes := []rune(s)
	if start < 0 || end < start || end > len(runes) {
		return "", errors.StringxRangeOutOfBounds("substring_with_range", start, end, len(runes))
	}
	return string(runes[start:end]), nil
}
