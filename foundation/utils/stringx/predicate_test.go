// File: predicate_test.go
// Title: Unit Tests for String Predicates
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: ContainsIgnoreCase tests
// - 2025-10-18 v0.3.0: HasString and IsEmail

package stringx

import "testing"

func TestHasString(t *testing.T) {
	tests := []struct {
		name          string
		input         string
		sub           string
		caseSensitive bool
		expected      bool
	}{
		{"exact match", "Hello World", "World", true, true},
		{"case mismatch sensitive", "Hello World", "world", true, false},
		{"case mismatch insensitive", "Hello World", "world", false, true},
		{"unicode insensitive", "ÄPFEL und Birnen", "äpfel", false, true},
		{"absent", "Hello World", "planet", false, false},
		{"empty needle", "abc", "", true, true},
		{"empty haystack", "", "a", false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := HasString(tt.input, tt.sub, tt.caseSensitive); result != tt.expected {
				t.Errorf("HasString(%q, %q, %v) = %v; want %v",
					tt.input, tt.sub, tt.caseSensitive, result, tt.expected)
			}
		})
	}
}

func TestIsEmail(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"user@example.com", true},
		{"User.Name+tag@Example.CO.uk", true},
		{"o'brien@mail.example.org", true},
		{"a@b", true},
		{"x@sub-domain.example", true},
		{"", false},
		{"no-at-sign", false},
		{"@example.com", false},
		{"user@", false},
		{"user@-example.com", false},
		{"user@example-.com", false},
		{"user@example..com", false},
		{"two words@example.com", false},
		{"ünïcode@example.com", false},
		{"a@b@c", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := IsEmail(tt.input); result != tt.expected {
				t.Errorf("IsEmail(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}
