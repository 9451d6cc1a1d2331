// File: codec_test.go
// Title: Unit Tests for Base64 and URL Encoding
// Author: msto63
// Version: v0.3.0
// Created: 2025-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2025-10-18 v0.3.0: Initial test implementation
// - 2026-10-18 v0.3.0: Non-UTF-8 payload details

package stringx

import (
	stderrors "errors"
	"strings"
	"testing"

	skerror "github.com/msto63/strkit/foundation/core/error"
)

func TestEncodeToBase64(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"hello", "aGVsbG8="},
		{"hello, world", "aGVsbG8sIHdvcmxk"},
		{"héllo", "aMOpbGxv"},
		{"日本", "5pel5pys"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if result := EncodeToBase64(tt.input); result != tt.expected {
				t.Errorf("EncodeToBase64(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDecodeBase64(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
		wantErr  bool
	}{
		{"empty", "", "", false},
		{"ascii", "aGVsbG8=", "hello", false},
		{"utf8", "aMOpbGxv", "héllo", false},
		{"missing padding", "aGVsbG8", "", true},
		{"illegal character", "@@@@", "", true},
		{"url alphabet", "-_-_", "", true},
		{"invalid utf8 payload", "/w==", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := DecodeBase64(tt.input)
			if tt.wantErr {
				if !skerror.HasCode(err, skerror.CodeDecodeError) {
					t.Errorf("DecodeBase64(%q) error = %v; want DECODE_ERROR", tt.input, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("DecodeBase64(%q) unexpected error: %v", tt.input, err)
			}
			if result != tt.expected {
				t.Errorf("DecodeBase64(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDecodeBase64InvalidUTF8(t *testing.T) {
	// "aGn/" decodes to "hi\xff"
	_, err := DecodeBase64("aGn/")

	var e *skerror.Error
	if !stderrors.As(err, &e) {
		t.Fatalf("DecodeBase64 error = %v; want *skerror.Error", err)
	}
	if reason, _ := e.Detail("reason"); reason != "invalid_utf8" {
		t.Errorf("reason detail = %v; want invalid_utf8", reason)
	}
	if offset, _ := e.Detail("offset"); offset != 2 {
		t.Errorf("offset detail = %v; want 2", offset)
	}
	if !strings.Contains(err.Error(), "UTF-8") {
		t.Errorf("error %q does not name the UTF-8 failure", err.Error())
	}

	_, malformed := DecodeBase64("@@@@")
	if !stderrors.As(malformed, &e) {
		t.Fatalf("DecodeBase64(@@@@) error = %v", malformed)
	}
	if _, ok := e.Detail("reason"); ok {
		t.Error("malformed Base64 reported as a UTF-8 failure")
	}
	if e.Unwrap() == nil {
		t.Error("malformed Base64 lost its decoder cause")
	}
}

func TestURLEncode(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"empty", "", ""},
		{"safe set untouched", "AZaz09!$&'()*+,-.:;=[]_~", "AZaz09!$&'()*+,-.:;=[]_~"},
		{"space", "a b", "a%20b"},
		{"path and query", "a/b?c#d", "a%2Fb%3Fc%23d"},
		{"percent", "100%", "100%25"},
		{"utf8 bytes", "é", "%C3%A9"},
		{"at sign", "user@host", "user%40host"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := URLEncode(tt.input); result != tt.expected {
				t.Errorf("URLEncode(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}
