// File: example_test.go
// Title: Example Tests for stringx Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2025-10-18 v0.3.0: Examples for the strkit operations

package stringx_test

import (
	"fmt"

	skerror "github.com/msto63/strkit/foundation/core/error"
	"github.com/msto63/strkit/foundation/utils/stringx"
)

func ExampleSearchInString() {
	fmt.Printf("%q\n", stringx.SearchInString("This is a test", 'h', 't'))
	fmt.Printf("%q\n", stringx.SearchInString("key=value", '=', ';'))
	// Output:
	// "is is a "
	// "value"
}

func ExampleSubstringWithRange() {
	s, _ := stringx.SubstringWithRange("héllo", 1, 3)
	fmt.Println(s)

	_, err := stringx.SubstringWithRange("héllo", 0, 9)
	fmt.Println(skerror.GetCode(err))
	// Output:
	// él
	// INDEX_OUT_OF_RANGE
}

func ExampleIndexOfCharacter() {
	i, found := stringx.IndexOfCharacter("héllo", 'l')
	fmt.Println(i, found)

	_, found = stringx.IndexOfCharacter("héllo", 'z')
	fmt.Println(found)
	// Output:
	// 2 true
	// false
}

func ExampleIsEmail() {
	fmt.Println(stringx.IsEmail("user@example.com"))
	fmt.Println(stringx.IsEmail("not an address"))
	// Output:
	// true
	// false
}

func ExampleDecodeBase64() {
	s, _ := stringx.DecodeBase64(stringx.EncodeToBase64("héllo"))
	fmt.Println(s)

	_, err := stringx.DecodeBase64("@@@@")
	fmt.Println(skerror.GetCode(err))
	// Output:
	// héllo
	// DECODE_ERROR
}

func ExampleSentenceCapitalized() {
	fmt.Println(stringx.SentenceCapitalized("this IS a TEST"))
	// Output: This is a test
}

func ExampleDateFromTimestamp() {
	s, _ := stringx.DateFromTimestamp("2024-03-15T09:45:00Z")
	fmt.Println(s)
	// Output: 15/03/2024 09:45
}

func ExampleReplaceWithRegex() {
	s, _ := stringx.ReplaceWithRegex("John SMITH", `(\w+)\s(smith)`, "$2, $1")
	fmt.Println(s)
	// Output: SMITH, John
}

func ExampleURLEncode() {
	fmt.Println(stringx.URLEncode("a b/é"))
	// Output: a%20b%2F%C3%A9
}

func ExampleConvertToUTF8Entities() {
	fmt.Println(stringx.ConvertToUTF8Entities("caf%C3%A9%20cr%c3%a8me"))
	// Output: café crème
}

func ExampleEntityTable_With() {
	table := stringx.DefaultEntities().With("%26", "&")
	fmt.Println(stringx.ConvertEntities("fish%20%26%20chips", table))
	// Output: fish & chips
}

func ExampleSHA256() {
	fmt.Println(stringx.SHA256("abc"))
	// Output: ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad
}
