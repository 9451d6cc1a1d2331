// File: codec.go
// Title: Base64 and URL Encoding
// Description: Standard padded Base64 over the UTF-8 bytes of a string and
//              percent-encoding with the URL host-safe character set.
// Author: msto63
// Version: v0.3.0
// Created: 2025-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2025-10-18 v0.3.0: Initial implementation
// - 2026-10-18 v0.3.0: Distinct error detail for non-UTF-8 payloads

package stringx

import (
	"encoding/base64"
	"strings"
	"unicode/utf8"

	"github.com/msto63/strkit/foundation/core/errors"
)

const upperHex = "0123456789ABCDEF"

// EncodeToBase64 returns the padded standard Base64 encoding of s.
func EncodeToBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64 decodes padded standard Base64. Malformed input and payloads
// that are not valid UTF-8 yield a DECODE_ERROR; the latter carries the
// detail reason=invalid_utf8 and the offset of the first bad byte.
func DecodeBase64(s string) (string, error) {
	data, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", errors.StringxDecodeError("decode_base64", s, err)
	}
	if offset := invalidUTF8Offset(data); offset >= 0 {
		return "", errors.StringxInvalidUTF8("decode_base64", s, offset)
	}
	return string(data), nil
}

// invalidUTF8Offset returns the index of the first invalid sequence in data,
// or -1 if data is valid UTF-8.
func invalidUTF8Offset(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size == 1 {
			return i
		}
		i += size
	}
	return -1
}

// URLEncode percent-encodes every byte of s outside
// A-Z a-z 0-9 ! $ & ' ( ) * + , - . : ; = [ ] _ ~
// using upper-case hex digits.
func URLEncode(s string) string {
	var b strings.Builder
	b.Grow(len(s))

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isHostSafe(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperHex[c>>4])
		b.WriteByte(upperHex[c&0x0f])
	}
	return b.String()
}

func isHostSafe(c byte) bool {
	switch {
	case 'a' <= c && c <= 'z', 'A' <= c && c <= 'Z', '0' <= c && c <= '9':
		return true
	}
	switch c {
	case '!', '$', '&', '\'', '(', ')', '*', '+', ',', '-', '.', ':', ';', '=', '[', ']', '_', '~':
		return true
	}
	return false
}
