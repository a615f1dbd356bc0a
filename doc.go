// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package strsplit provides a lazy, zero-copy splitter for strings.
//
// A Splitter produces the tokens of a source string that lie between
// occurrences of a Delimiter, one at a time and in order. Every token is
// a sub-string of the source and so shares its backing array; no bytes
// are copied. Callers that construct the source from a byte slice without
// copying it (eg. via unsafe.String) must not modify that slice whilst
// the Splitter or any of its tokens are in use.
//
//	sp := strsplit.New("a b c d ", strsplit.String(" "))
//	for tok := range sp.All() {
//	  fmt.Printf("%q\n", tok)
//	}
//
// Prints "a", "b", "c", "d" and finally "", since a trailing delimiter
// yields exactly one trailing empty token. A source that does not contain
// the delimiter yields a single token equal to the source, and an empty
// source yields a single empty token.
//
// Delimiters are located by the single method Delimiter interface.
// String, Rune, Byte, AnyOf and Func are provided and any other type that
// can report the byte offsets of its first occurrence in a string may be
// used with a Splitter. Delimiters that can never match, such as an empty
// string, yield the entire source as a single token.
package strsplit
