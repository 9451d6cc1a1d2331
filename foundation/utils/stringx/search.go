// File: search.go
// Title: Character Search and Delimited Extraction
// Description: Locates a rune inside a string and extracts text relative to
//              it, including the start/end delimiter scan of SearchInString.
// Author: msto63
// Version: v0.3.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.3.0: Initial implementation

package stringx

// IndexOfCharacter returns the rune index of the first occurrence of c.
// The boolean is false when c does not occur in s.
func IndexOfCharacter(s string, c rune) (int, bool) {
	i := 0
	for _, r := range s {
		if r == c {
			return i, true
		}
		i++
	}
	return -1, false
}

// SubstringFromCharacter returns s starting at the first occurrence of c,
// c included.
func SubstringFromCharacter(s string, c rune) (string, bool) {
	for pos, r := range s {
		if r == c {
			return s[pos:], true
		}
	}
	return "", false
}

// SubstringToCharacter returns s up to the first occurrence of c, c excluded.
func SubstringToCharacter(s string, c rune) (string, bool) {
	for pos, r := range s {
		if r == c {
			return s[:pos], true
		}
	}
	return "", false
}

// SearchInString returns the text between the start and end delimiters.
//
// The scan runs left to right. Each start delimiter moves the beginning of
// the result to the rune after it, and that rune is then only compared with
// the end delimiter. The first end delimiter ends the scan. Without a start
// delimiter the result begins at 0; without an end delimiter it runs to the
// end of s. With equal delimiters every occurrence counts as a start, so the
// result is the text after the last one unless two occurrences are adjacent:
// then the second ends the scan and the result is empty ("a||b" yields "").
func SearchInString(s string, start, end rune) string {
	runes := []rune(s)
	n := len(runes)
	from, to := 0, n

	for i := 0; i < n; i++ {
		if runes[i] == start {
			from = i + 1
			i++
		}
		if i < n && runes[i] == end {
			to = i
			break
		}
	}

	return string(runes[from:to])
}
