// File: identifier_test.go
// Title: Unit Tests for UUID Helpers
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Random string tests
// - 2025-10-18 v0.3.0: IsUUID and NewUUID

package stringx

import "testing"

func TestIsUUID(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"f47ac10b-58cc-4372-a567-0e02b2c3d479", true},
		{"F47AC10B-58CC-4372-A567-0E02B2C3D479", true},
		{"00000000-0000-0000-0000-000000000000", true},
		{"", false},
		{"f47ac10b58cc4372a5670e02b2c3d479", false},
		{"{f47ac10b-58cc-4372-a567-0e02b2c3d479}", false},
		{"urn:uuid:f47ac10b-58cc-4372-a567-0e02b2c3d479", false},
		{"f47ac10b-58cc-4372-a567-0e02b2c3d47g", false},
		{"f47ac10b-58cc-4372-a567_0e02b2c3d479", false},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := IsUUID(tt.input); result != tt.expected {
				t.Errorf("IsUUID(%q) = %v; want %v", tt.input, result, tt.expected)
			}
		})
	}
}

func TestNewUUID(t *testing.T) {
	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		id := NewUUID()
		if !IsUUID(id) {
			t.Fatalf("NewUUID() = %q is not a canonical UUID", id)
		}
		if id[14] != '4' {
			t.Errorf("NewUUID() = %q is not version 4", id)
		}
		if seen[id] {
			t.Fatalf("NewUUID() repeated %q", id)
		}
		seen[id] = true
	}
}
