// File: format.go
// Title: Formatting Transforms
// Description: Sentence capitalisation, fixed-width timestamp re-rendering
//              and float parsing.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Title case conversion
// - 2025-10-18 v0.3.0: SentenceCapitalized, DateFromTimestamp, FloatValue

package stringx

import (
	"strconv"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/msto63/strkit/foundation/core/errors"
)

const timestampLayout = "YYYY-MM-DDTHH:MM"

// SentenceCapitalized upper-cases the first rune of s and lower-cases the rest.
func SentenceCapitalized(s string) string {
	if s == "" {
		return ""
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}

// DateFromTimestamp renders a timestamp beginning with YYYY-MM-DDTHH:MM as
// DD/MM/YYYY HH:MM. Anything after the minutes is ignored.
func DateFromTimestamp(s string) (string, error) {
	r := []rune(s)
	if len(r) < len(timestampLayout) ||
		r[4] != '-' || r[7] != '-' || r[10] != 'T' || r[13] != ':' {
		return "", errors.StringxFormatError("date_from_timestamp", s, timestampLayout)
	}

	_, ok1 := digits(r[0:4])
	month, ok2 := digits(r[5:7])
	day, ok3 := digits(r[8:10])
	hour, ok4 := digits(r[11:13])
	minute, ok5 := digits(r[14:16])
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 ||
		month < 1 || month > 12 || day < 1 || day > 31 || hour > 23 || minute > 59 {
		return "", errors.StringxFormatError("date_from_timestamp", s, timestampLayout)
	}

	var b strings.Builder
	b.Grow(16)
	b.WriteString(string(r[8:10]))
	b.WriteByte('/')
	b.WriteString(string(r[5:7]))
	b.WriteByte('/')
	b.WriteString(string(r[0:4]))
	b.WriteByte(' ')
	b.WriteString(string(r[11:13]))
	b.WriteByte(':')
	b.WriteString(string(r[14:16]))
	return b.String(), nil
}

// FloatValue parses s, ignoring surrounding white space, as a 64-bit float.
func FloatValue(s string) (float64, error) {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, errors.StringxFormatError("float_value", s, "decimal number")
	}
	return f, nil
}

// digits parses an ASCII decimal field.
func digits(field []rune) (int, bool) {
	n := 0
	for _, r := range field {
		if r < '0' || r > '9' {
			return 0, false
		}
		n = n*10 + int(r-'0')
	}
	return n, true
}
