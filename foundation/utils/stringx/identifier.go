// File: identifier.go
// Title: UUID Helpers
// Description: Validation and generation of RFC 4122 identifiers in their
//              canonical textual form, replacing the former random string
//              helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Random string generation
// - 2025-10-18 v0.3.0: Reduced to IsUUID and NewUUID on google/uuid

package stringx

import "github.com/google/uuid"

const canonicalUUIDLength = 36

// IsUUID reports whether s is a UUID in the canonical
// xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx form. Braced, URN and unhyphenated
// forms are rejected.
func IsUUID(s string) bool {
	if len(s) != canonicalUUIDLength {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// NewUUID returns a random version 4 UUID in canonical lower-case form.
func NewUUID() string {
	return uuid.NewString()
}
