// File: predicate.go
// Title: String Predicates
// Description: Containment with optional case folding and e-mail address
//              validation against a fixed pattern.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: ContainsIgnoreCase and blank checks
// - 2025-10-18 v0.3.0: HasString via x/text cases, IsEmail

package stringx

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// emailPattern accepts a dot-atom local part and a hostname of labels of at
// most 63 characters. Single-label domains are valid.
var emailPattern = regexp.MustCompile(
	`^[a-zA-Z0-9.!#$%&'*+/=?^_` + "`" + `{|}~-]+@[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?(?:\.[a-zA-Z0-9](?:[a-zA-Z0-9-]{0,61}[a-zA-Z0-9])?)*$`,
)

// HasString reports whether sub occurs in s. When caseSensitive is false
// both operands are lower-cased with the root locale first.
func HasString(s, sub string, caseSensitive bool) bool {
	if caseSensitive {
		return strings.Contains(s, sub)
	}
	lower := cases.Lower(language.Und)
	return strings.Contains(lower.String(s), lower.String(sub))
}

// IsEmail reports whether s is a syntactically valid e-mail address.
func IsEmail(s string) bool {
	return emailPattern.MatchString(cases.Lower(language.Und).String(s))
}
