// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Package testtext generates random text, containing runes of all UTF-8
// encoded lengths, for use in tests of the splitter.
package testtext

import (
	"math/rand"
	"strings"
	"unicode"
)

// Random generates strings of randomly selected runes.
type Random struct {
	r *rand.Rand
}

// NewRandom returns a new instance of Random whose output is determined
// by seed.
func NewRandom(seed int64) *Random {
	return &Random{r: rand.New(rand.NewSource(seed))}
}

// runeRange is a range of code points that all have the same encoded length.
type runeRange struct {
	lo, hi rune
}

var runeRanges = []runeRange{
	{0x20, 0x7e},       // ASCII, 1 byte
	{0xf8, 0x2b8},      // Latin, 2 byte
	{0x1e00, 0x1eff},   // Latin, 3 byte
	{0x1d000, 0x1d0f5}, // Common, 4 byte
}

// Rune returns a random printable rune whose UTF-8 encoding is nBytes
// (1-4) long.
func (r *Random) Rune(nBytes int) rune {
	rr := runeRanges[nBytes-1]
	for {
		c := r.r.Int31n(rr.hi-rr.lo) + rr.lo
		if !unicode.IsControl(c) {
			return c
		}
	}
}

// Token returns a string of up to maxRunes runes, of all encoded lengths,
// none of which occur in exclude. The returned string may be empty.
func (r *Random) Token(maxRunes int, exclude string) string {
	n := r.r.Intn(maxRunes + 1)
	sb := &strings.Builder{}
	for n > 0 {
		c := r.Rune(r.r.Intn(4) + 1)
		if strings.ContainsRune(exclude, c) {
			continue
		}
		sb.WriteRune(c)
		n--
	}
	return sb.String()
}

// Tokens returns between 1 and maxTokens tokens as per Token. The tokens
// contain none of the runes in sep and so joining them with sep yields a
// string that a splitter using sep must split back into the same tokens.
func (r *Random) Tokens(maxTokens, maxRunes int, sep string) []string {
	n := r.r.Intn(maxTokens) + 1
	tokens := make([]string, n)
	for i := range tokens {
		tokens[i] = r.Token(maxRunes, sep)
	}
	return tokens
}
