// File: regex.go
// Title: Regular Expression Replacement
// Author: msto63
// Version: v0.3.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.3.0: Initial implementation

package stringx

import (
	"regexp"

	"github.com/msto63/strkit/foundation/core/errors"
)

// ReplaceWithRegex replaces every case-insensitive match of pattern in s with
// template. The template may reference groups as $1 or ${name}. A pattern
// that does not compile yields a PATTERN_ERROR.
func ReplaceWithRegex(s, pattern, template string) (string, error) {
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return "", errors.StringxPatternError(pattern, err)
	}
	return re.ReplaceAllString(s, template), nil
}
