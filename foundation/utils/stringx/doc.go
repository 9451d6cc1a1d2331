// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the strkit string helpers: rune-indexed
//              slicing, delimiter extraction, predicates, codecs, entity
//              normalisation and small formatting transforms.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation with comprehensive structure and examples
// - 2025-10-18 v0.3.0: Rebuilt around indexed slicing, SearchInString and entity tables

// Package stringx provides stateless string helpers for strkit.
//
// Package: stringx
// Title: String Helpers for strkit
// Description: Pure functions over UTF-8 strings. Every index is a rune index,
//              failures are structured errors from foundation/core/error, and
//              "not found" is reported through a boolean, never an error.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Overview
//
// The package is organized into functional groups:
//
//   - Indexed slicing: Length, CharacterAt, SubstringFromIndex,
//     SubstringToIndex, SubstringWithRange (index.go)
//   - Character search: IndexOfCharacter, SubstringFromCharacter,
//     SubstringToCharacter, SearchInString (search.go)
//   - Predicates: HasString, IsEmail (predicate.go)
//   - Codecs: EncodeToBase64, DecodeBase64, URLEncode (codec.go)
//   - Entities: ConvertToUTF8Entities, ConvertEntities, EntityTable (entities.go)
//   - Formatting: SentenceCapitalized, DateFromTimestamp, FloatValue (format.go)
//   - Regular expressions: ReplaceWithRegex (regex.go)
//   - Digests: MD5, SHA1, SHA256, SHA512 (hash.go)
//
// Indices
//
// Slicing functions accept indices in [0, Length(s)]. A zero-length result is
// valid; an index outside that range is an INDEX_OUT_OF_RANGE error and is
// never clamped:
//
//	s, err := stringx.SubstringWithRange("héllo", 1, 3) // "él"
//	_, err = stringx.SubstringFromIndex("abc", 4)       // INDEX_OUT_OF_RANGE
//
// Delimited extraction
//
// SearchInString returns the text between a start and an end delimiter rune.
// When the end delimiter is missing the remainder of the string is returned:
//
//	stringx.SearchInString("This is a test", 'h', 't') // "is is a "
//	stringx.SearchInString("key=value", '=', ';')      // "value"
//
// Error Handling
//
// Errors carry a code that can be tested anywhere in a wrap chain:
//
//	if _, err := stringx.DecodeBase64(input); skerror.HasCode(err, skerror.CodeDecodeError) {
//	    // malformed input
//	}
//
// Thread Safety
//
// All functions are safe for concurrent use. The only package state is the
// compiled e-mail pattern and the default entity table, both read-only.
package stringx
