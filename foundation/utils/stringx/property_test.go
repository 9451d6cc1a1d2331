// File: property_test.go
// Title: Property Tests for stringx
// Description: Randomised checks with testing/quick for the invariants that
//              hold for every input: slicing round trips, Base64 round trips
//              and SearchInString staying inside its input.
// Author: msto63
// Version: v0.3.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.3.0: Initial implementation

package stringx

import (
	"strings"
	"testing"
	"testing/quick"
)

func TestSliceRoundTripProperty(t *testing.T) {
	property := func(s string, k uint16) bool {
		i := int(k) % (Length(s) + 1)
		head, err := SubstringToIndex(s, i)
		if err != nil {
			return false
		}
		tail, err := SubstringFromIndex(s, i)
		if err != nil {
			return false
		}
		whole, err := SubstringWithRange(s, 0, Length(s))
		return err == nil && head+tail == s && whole == s && Length(head) == i
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestBase64RoundTripProperty(t *testing.T) {
	property := func(s string) bool {
		decoded, err := DecodeBase64(EncodeToBase64(s))
		return err == nil && decoded == s
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestSearchInStringProperty(t *testing.T) {
	property := func(s string, start, end rune) bool {
		return strings.Contains(s, SearchInString(s, start, end))
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}

func TestURLEncodeProperty(t *testing.T) {
	property := func(s string) bool {
		encoded := URLEncode(s)
		for i := 0; i < len(encoded); i++ {
			if encoded[i] != '%' && !isHostSafe(encoded[i]) {
				return false
			}
		}
		return len(encoded) >= len(s)
	}

	if err := quick.Check(property, nil); err != nil {
		t.Error(err)
	}
}
