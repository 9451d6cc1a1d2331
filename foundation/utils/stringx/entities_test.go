// File: entities_test.go
// Title: Unit Tests for Entity Normalisation
// Author: msto63
// Version: v0.3.0
// Created: 2025-10-18
// Modified: 2025-10-18
//
// Change History:
// - 2025-10-18 v0.3.0: Initial test implementation

package stringx

import "testing"

func TestConvertToUTF8Entities(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"no entities", "plain text", "plain text"},
		{"lower case tokens", "caf%c3%a9%20cr%c3%a8me", "café crème"},
		{"upper case tokens", "CAF%C3%89", "CAFÉ"},
		{"mixed case token", "%C3%a0 la carte", "à la carte"},
		{"apostrophes", "l%27h%E2%80%99tel", "l'h’tel"},
		{"guillemets", "%c2%abbonjour%c2%bb", "«bonjour»"},
		{"hyphen", "re%2Dentry", "re-entry"},
		{"unknown token kept", "100%25 sure", "100%25 sure"},
		{"truncated token kept", "end%c3%a", "end%c3%a"},
		{"lone percent", "100%", "100%"},
		{"adjacent", "%20%20", "  "},
		{"umlauts", "%c3%84%c3%96%c3%9c%c3%a4%c3%b6%c3%bc", "ÄÖÜäöü"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ConvertToUTF8Entities(tt.input); result != tt.expected {
				t.Errorf("ConvertToUTF8Entities(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestDefaultEntities(t *testing.T) {
	table := DefaultEntities()
	if table.Len() != 34 {
		t.Fatalf("DefaultEntities().Len() = %d; want 34", table.Len())
	}

	entries := table.Entries()
	if entries[0].Token != "%27" || entries[33].Token != "%20" {
		t.Errorf("default order broken: first %q, last %q", entries[0].Token, entries[33].Token)
	}

	entries[0].Replacement = "changed"
	if r, _ := DefaultEntities().Lookup("%27"); r != "'" {
		t.Errorf("Entries() exposed internal state: %%27 -> %q", r)
	}
}

func TestEntityTableWith(t *testing.T) {
	base := DefaultEntities()
	extended := base.With("%26", "&")

	if base.Len() != 34 {
		t.Errorf("With modified the receiver: Len() = %d", base.Len())
	}
	if extended.Len() != 35 {
		t.Errorf("extended.Len() = %d; want 35", extended.Len())
	}
	if got := ConvertEntities("a%26b%20c", extended); got != "a&b c" {
		t.Errorf("ConvertEntities with extra token = %q; want %q", got, "a&b c")
	}
	if got := ConvertToUTF8Entities("a%26b"); got != "a%26b" {
		t.Errorf("default table picked up extension: %q", got)
	}

	overridden := base.With("%20", "_")
	if overridden.Len() != 34 {
		t.Errorf("override appended an entry: Len() = %d", overridden.Len())
	}
	if got := ConvertEntities("a%20b", overridden); got != "a_b" {
		t.Errorf("ConvertEntities with override = %q; want %q", got, "a_b")
	}
}

func TestEntityTableWithMap(t *testing.T) {
	table := DefaultEntities().WithMap(map[string]string{
		"%26":    "&",
		"%3C":    "<",
		"%c3%b1": "ñ",
	})
	if table.Len() != 37 {
		t.Errorf("Len() = %d; want 37", table.Len())
	}
	if got := ConvertEntities("%3c%26%3e espa%C3%B1a", table); got != "<&%3e españa" {
		t.Errorf("ConvertEntities = %q", got)
	}
	if same := DefaultEntities().WithMap(nil); same.Len() != 34 {
		t.Errorf("WithMap(nil).Len() = %d", same.Len())
	}
}

func TestConvertEntitiesCustomTable(t *testing.T) {
	tests := []struct {
		name     string
		table    EntityTable
		input    string
		expected string
	}{
		{"zero table", EntityTable{}, "a%20b", "a%20b"},
		{"non percent token", NewEntityTable(Entity{"&amp;", "&"}), "fish &AMP; chips", "fish & chips"},
		{"table order", NewEntityTable(Entity{"ab", "1"}, Entity{"abc", "2"}), "abcab", "1c1"},
		{"table order reversed", NewEntityTable(Entity{"abc", "2"}, Entity{"ab", "1"}), "abcab", "21"},
		{"earlier output feeds later token", NewEntityTable(Entity{"%25", "%"}, Entity{"%20", " "}), "%2520", " "},
		{"later output not revisited", NewEntityTable(Entity{"%20", " "}, Entity{"%25", "%"}), "%2520", "%20"},
		{"non overlapping", NewEntityTable(Entity{"aa", "b"}), "aaa", "ba"},
		{"non ascii token", NewEntityTable(Entity{"Ä", "Ae"}), "Äpfel", "Aepfel"},
		{"empty token skipped", NewEntityTable(Entity{"", "x"}), "abc", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if result := ConvertEntities(tt.input, tt.table); result != tt.expected {
				t.Errorf("ConvertEntities(%q) = %q; want %q", tt.input, result, tt.expected)
			}
		})
	}
}
