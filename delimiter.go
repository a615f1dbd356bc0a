// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strsplit

import (
	"fmt"
	"strings"
	"unicode/utf8"
)

// Delimiter is implemented by types that can locate the first occurrence
// of themselves in a string. Find returns the half open byte range
// [start, end) of that occurrence and true, or false if there is none.
// end must be greater than start when ok is true.
type Delimiter interface {
	Find(haystack string) (start, end int, ok bool)
}

// String returns a Delimiter that matches the first exact occurrence of s.
// An empty string never matches.
func String(s string) Delimiter {
	return stringDelim(s)
}

type stringDelim string

func (d stringDelim) Find(haystack string) (int, int, bool) {
	if len(d) == 0 {
		return 0, 0, false
	}
	idx := strings.Index(haystack, string(d))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + len(d), true
}

func (d stringDelim) String() string {
	return fmt.Sprintf("string(%q)", string(d))
}

// Rune returns a Delimiter that matches the first occurrence of r. The
// width of the match is the length of r's UTF-8 encoding. A rune that
// has no valid encoding never matches. utf8.RuneError matches either
// U+FFFD or the first invalid UTF-8 sequence, whose width is that
// reported by utf8.DecodeRuneInString.
func Rune(r rune) Delimiter {
	return runeDelim(r)
}

type runeDelim rune

func (d runeDelim) Find(haystack string) (int, int, bool) {
	r := rune(d)
	if r == utf8.RuneError {
		for i, c := range haystack {
			if c == utf8.RuneError {
				_, n := utf8.DecodeRuneInString(haystack[i:])
				return i, i + n, true
			}
		}
		return 0, 0, false
	}
	n := utf8.RuneLen(r)
	if n < 0 {
		return 0, 0, false
	}
	idx := strings.IndexRune(haystack, r)
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + n, true
}

func (d runeDelim) String() string {
	return fmt.Sprintf("rune(%q)", rune(d))
}

// Byte returns a Delimiter that matches the first occurrence of b. It
// makes no attempt to respect UTF-8 boundaries.
func Byte(b byte) Delimiter {
	return byteDelim(b)
}

type byteDelim byte

func (d byteDelim) Find(haystack string) (int, int, bool) {
	idx := strings.IndexByte(haystack, byte(d))
	if idx < 0 {
		return 0, 0, false
	}
	return idx, idx + 1, true
}

func (d byteDelim) String() string {
	return fmt.Sprintf("byte(%#02x)", byte(d))
}

// AnyOf returns a Delimiter that matches the first rune in a string that
// is also contained in chars. An empty chars never matches.
func AnyOf(chars string) Delimiter {
	return anyOfDelim(chars)
}

type anyOfDelim string

func (d anyOfDelim) Find(haystack string) (int, int, bool) {
	idx := strings.IndexAny(haystack, string(d))
	if idx < 0 {
		return 0, 0, false
	}
	_, n := utf8.DecodeRuneInString(haystack[idx:])
	return idx, idx + n, true
}

func (d anyOfDelim) String() string {
	return fmt.Sprintf("any(%q)", string(d))
}

// Func returns a Delimiter that matches the first rune for which
// f returns true. A nil f never matches.
func Func(f func(rune) bool) Delimiter {
	return funcDelim(f)
}

type funcDelim func(rune) bool

func (d funcDelim) Find(haystack string) (int, int, bool) {
	if d == nil {
		return 0, 0, false
	}
	idx := strings.IndexFunc(haystack, d)
	if idx < 0 {
		return 0, 0, false
	}
	_, n := utf8.DecodeRuneInString(haystack[idx:])
	return idx, idx + n, true
}

func (d funcDelim) String() string {
	return "func"
}
