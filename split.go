// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strsplit

import (
	"fmt"
	"iter"

	"cloudeng.io/errors"
)

// ErrNoToken is the error that Until panics with should a Splitter fail
// to produce at least one token, which can only occur if the Splitter
// itself is broken.
var ErrNoToken = errors.New("strsplit: splitter produced no tokens")

// ErrInvalidMatch is the error that Next panics with when a Delimiter
// reports a match that is empty or lies outside of the text searched.
var ErrInvalidMatch = errors.New("strsplit: delimiter returned an invalid match")

// Splitter lazily splits a source string into the tokens separated by a
// Delimiter. It is not safe for concurrent use, though the tokens it
// returns may be shared freely.
type Splitter struct {
	remainder string
	exhausted bool
	delim     Delimiter
}

// New returns a Splitter for source and delim. Neither is copied.
func New(source string, delim Delimiter) *Splitter {
	return &Splitter{remainder: source, delim: delim}
}

// Next returns the next token and true, or "" and false once all tokens
// have been returned. The final token is the text following the last
// occurrence of the delimiter and it is returned even when empty.
// Next panics with ErrInvalidMatch if the Delimiter violates its contract
// since the Splitter could otherwise never finish.
func (s *Splitter) Next() (string, bool) {
	if s.exhausted {
		return "", false
	}
	if start, end, ok := s.delim.Find(s.remainder); ok {
		if start < 0 || end <= start || end > len(s.remainder) {
			panic(errors.Caller(fmt.Errorf("%v: [%d, %d) in %q: %w", s.delim, start, end, s.remainder, ErrInvalidMatch)))
		}
		token := s.remainder[:start]
		s.remainder = s.remainder[end:]
		return token, true
	}
	token := s.remainder
	s.remainder = ""
	s.exhausted = true
	return token, true
}

// Done returns true once the Splitter has returned its final token.
func (s *Splitter) Done() bool {
	return s.exhausted
}

// All returns an iterator over the tokens not yet returned by the
// Splitter. Terminating a range loop early leaves the tokens that
// follow available to subsequent calls to Next or All.
func (s *Splitter) All() iter.Seq[string] {
	return func(yield func(string) bool) {
		for {
			token, ok := s.Next()
			if !ok || !yield(token) {
				return
			}
		}
	}
}

// Collect returns all of the tokens of source as a slice.
func Collect(source string, delim Delimiter) []string {
	var tokens []string
	sp := New(source, delim)
	for token := range sp.All() {
		tokens = append(tokens, token)
	}
	return tokens
}

// Until returns the text in source that precedes the first occurrence
// of delim, or all of source if delim does not occur in it.
func Until(source string, delim Delimiter) string {
	token, ok := New(source, delim).Next()
	if !ok {
		panic(errors.Caller(ErrNoToken))
	}
	return token
}

// UntilRune is like Until for a Rune delimiter.
func UntilRune(source string, r rune) string {
	return Until(source, Rune(r))
}

func indexed(source string, delim Delimiter) iter.Seq2[int, string] {
	return func(yield func(int, string) bool) {
		i := 0
		for token := range New(source, delim).All() {
			if !yield(i, token) {
				return
			}
			i++
		}
	}
}

// SplitString splits a string into components separated by the given rune.
// It returns an iterator that yields the components in order and the 0-based
// index of the component in the string.
// It is functionally equivalent to strings.Split but returns an iterator
// instead of a slice, i.e. create a slice by iterating over SplitString
// and appending the components to the slice is identical to the output of
// strings.Split. As with strings.Split, a sep that is not a valid rune is
// replaced by U+FFFD and U+FFFD does not match invalid UTF-8 in s.
//
//	var expected []string
//	for i, s := range SplitString(input, sep) {
//	  expected = append(expected, s)
//	}
//	if !slices.Equal(expected, strings.Split(input, string(sep))) {
//	  t.Errorf("SplitString(%q, %q) = %v, want %v", input, sep, expected, strings.Split(input, string(sep)))
//	}
func SplitString(s string, sep rune) iter.Seq2[int, string] {
	return indexed(s, String(string(sep)))
}

// Fields is like SplitString but for a separator that may be more than
// one rune long. Unlike strings.Split an empty sep does not split s into
// its runes, rather s is returned unchanged as the only component.
func Fields(s, sep string) iter.Seq2[int, string] {
	return indexed(s, String(sep))
}
