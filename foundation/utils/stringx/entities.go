// File: entities.go
// Title: Percent-Encoded Entity Normalisation
// Description: Replaces percent-encoded tokens such as %c3%a9 with the
//              characters they stand for, using an ordered, case-insensitive
//              entity table.
// Author: msto63
// Version: v0.3.0
// Created: 2025-10-18
// Modified: 2026-10-18
//
// Change History:
// - 2025-10-18 v0.3.0: Initial implementation
// - 2026-10-18 v0.3.0: Entities are applied in table order

package stringx

import (
	"sort"
	"strings"
)

// Entity maps one token to its replacement.
type Entity struct {
	Token       string
	Replacement string
}

// EntityTable is an ordered set of entities. Tokens match case-insensitively.
// The zero value is an empty table. Tables are immutable; With returns a copy.
type EntityTable struct {
	entries []Entity
	lookup  map[string]string
}

var defaultEntities = NewEntityTable(
	Entity{"%27", "'"},
	Entity{"%e2%80%99", "’"},
	Entity{"%2d", "-"},
	Entity{"%c2%ab", "«"},
	Entity{"%c2%bb", "»"},
	Entity{"%c3%80", "À"},
	Entity{"%c3%82", "Â"},
	Entity{"%c3%84", "Ä"},
	Entity{"%c3%86", "Æ"},
	Entity{"%c3%87", "Ç"},
	Entity{"%c3%88", "È"},
	Entity{"%c3%89", "É"},
	Entity{"%c3%8a", "Ê"},
	Entity{"%c3%8b", "Ë"},
	Entity{"%c3%8f", "Ï"},
	Entity{"%c3%91", "Ñ"},
	Entity{"%c3%94", "Ô"},
	Entity{"%c3%96", "Ö"},
	Entity{"%c3%9b", "Û"},
	Entity{"%c3%9c", "Ü"},
	Entity{"%c3%a0", "à"},
	Entity{"%c3%a2", "â"},
	Entity{"%c3%a4", "ä"},
	Entity{"%c3%a6", "æ"},
	Entity{"%c3%a7", "ç"},
	Entity{"%c3%a8", "è"},
	Entity{"%c3%a9", "é"},
	Entity{"%c3%af", "ï"},
	Entity{"%c3%b4", "ô"},
	Entity{"%c3%b6", "ö"},
	Entity{"%c3%bb", "û"},
	Entity{"%c3%bc", "ü"},
	Entity{"%c3%bf", "ÿ"},
	Entity{"%20", " "},
)

// NewEntityTable builds a table from entities in order. Empty tokens are
// skipped; a repeated token overrides the earlier replacement.
func NewEntityTable(entities ...Entity) EntityTable {
	var t EntityTable
	t.entries = make([]Entity, 0, len(entities))
	t.lookup = make(map[string]string, len(entities))

	for _, e := range entities {
		t.add(e)
	}
	return t
}

// DefaultEntities returns the built-in table of 34 entities.
func DefaultEntities() EntityTable {
	return defaultEntities
}

// With returns a copy of t extended by token. An existing token keeps its
// position and takes the new replacement.
func (t EntityTable) With(token, replacement string) EntityTable {
	return NewEntityTable(append(t.Entries(), Entity{token, replacement})...)
}

// WithMap returns a copy of t extended by every pair of m, added in sorted
// token order so the result does not depend on map iteration.
func (t EntityTable) WithMap(m map[string]string) EntityTable {
	if len(m) == 0 {
		return t
	}
	tokens := make([]string, 0, len(m))
	for token := range m {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)

	entries := t.Entries()
	for _, token := range tokens {
		entries = append(entries, Entity{token, m[token]})
	}
	return NewEntityTable(entries...)
}

// Entries returns a copy of the table in order.
func (t EntityTable) Entries() []Entity {
	result := make([]Entity, len(t.entries))
	copy(result, t.entries)
	return result
}

// Len returns the number of entities.
func (t EntityTable) Len() int {
	return len(t.entries)
}

// Lookup returns the replacement for token, ignoring case.
func (t EntityTable) Lookup(token string) (string, bool) {
	r, ok := t.lookup[strings.ToLower(token)]
	return r, ok
}

func (t *EntityTable) add(e Entity) {
	if e.Token == "" {
		return
	}
	key := strings.ToLower(e.Token)

	if _, exists := t.lookup[key]; exists {
		for i := range t.entries {
			if strings.ToLower(t.entries[i].Token) == key {
				t.entries[i].Replacement = e.Replacement
				break
			}
		}
	} else {
		t.entries = append(t.entries, e)
	}
	t.lookup[key] = e.Replacement
}

// ConvertToUTF8Entities replaces the default entities in s.
func ConvertToUTF8Entities(s string) string {
	return ConvertEntities(s, defaultEntities)
}

// ConvertEntities applies the entities of table to s one after another, in
// table order. Each entity replaces all of its occurrences before the next
// one runs, so text produced by an earlier replacement is visible to later
// tokens ("%2520" becomes " " with %25 listed before %20).
func ConvertEntities(s string, table EntityTable) string {
	for _, e := range table.entries {
		s = replaceFold(s, e.Token, e.Replacement)
	}
	return s
}

// replaceFold replaces every non-overlapping occurrence of token in s,
// ignoring case.
func replaceFold(s, token, replacement string) string {
	n := len(token)
	if n == 0 || n > len(s) {
		return s
	}

	var b strings.Builder
	found := false
	last := 0
	for i := 0; i+n <= len(s); {
		if strings.EqualFold(s[i:i+n], token) {
			if !found {
				b.Grow(len(s))
				found = true
			}
			b.WriteString(s[last:i])
			b.WriteString(replacement)
			i += n
			last = i
			continue
		}
		i++
	}
	if !found {
		return s
	}
	b.WriteString(s[last:])
	return b.String()
}
