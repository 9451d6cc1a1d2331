// File: hash.go
// Title: Digest Helpers
// Description: Lowercase hexadecimal digests of the UTF-8 bytes of a string.
// Author: msto63
// Version: v0.3.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.3.0: Initial implementation

package stringx

import (
	"crypto/md5"
	"crypto/sha1"
	"crypto/sha256"
	"crypto/sha512"
	"encoding/hex"
)

// MD5 returns the hex MD5 digest of s.
func MD5(s string) string {
	sum := md5.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA1 returns the hex SHA-1 digest of s.
func SHA1(s string) string {
	sum := sha1.Sum([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA256 returns the hex SHA-256 digest of s.
func SHA256(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}

// SHA512 returns the hex SHA-512 digest of s.
func SHA512(s string) string {
	sum := sha512.Sum512([]byte(s))
	return hex.EncodeToString(sum[:])
}
