// Copyright 2026 cloudeng llc. All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

package strsplit_test

import (
	"slices"
	"strings"
	"testing"
	"unicode/utf8"

	"pgregory.net/rapid"

	"cloudeng.io/strsplit"
)

func TestSplitMatchesStringsSplit(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.String().Draw(rt, "src")
		sep := rapid.StringN(1, 3, -1).Draw(rt, "sep")
		got := strsplit.Collect(src, strsplit.String(sep))
		if want := strings.Split(src, sep); !slices.Equal(got, want) {
			rt.Fatalf("Collect(%q, %q): got %q, want %q", src, sep, got, want)
		}
	})
}

func TestRoundTrip(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		sep := rapid.SampledFrom([]string{",", "::", "⌘", "<->", " "}).Draw(rt, "sep")
		src := rapid.StringMatching(`[a-z ,:⌘<>-]{0,40}`).Draw(rt, "src")
		tokens := strsplit.Collect(src, strsplit.String(sep))
		if got := strings.Join(tokens, sep); got != src {
			rt.Fatalf("join(%q, %q): got %q, want %q", tokens, sep, got, src)
		}
		for _, tok := range tokens {
			if !isView(src, tok) {
				rt.Fatalf("%q: token %q is not a view of the source", src, tok)
			}
			if strings.Contains(tok, sep) {
				rt.Fatalf("%q: token %q contains %q", src, tok, sep)
			}
		}
	})
}

func TestAbsentDelimiter(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.StringMatching(`[a-z ]{1,30}`).Draw(rt, "src")
		sep := rapid.StringMatching(`[,;⌘]{1,3}`).Draw(rt, "sep")
		got := strsplit.Collect(src, strsplit.String(sep))
		if len(got) != 1 || got[0] != src {
			rt.Fatalf("Collect(%q, %q): got %q, want a single token", src, sep, got)
		}
	})
}

func TestTrailingDelimiter(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		r := rapid.Rune().Filter(func(r rune) bool { return r != utf8.RuneError }).Draw(rt, "sep")
		sep := string(r)
		tokens := rapid.SliceOfN(rapid.String(), 1, 5).Draw(rt, "tokens")
		src := strings.Join(tokens, sep) + sep
		got := strsplit.Collect(src, strsplit.Rune(r))
		if len(got) < 2 {
			rt.Fatalf("Collect(%q, %q): got %q, want at least two tokens", src, sep, got)
		}
		if last := got[len(got)-1]; last != "" {
			rt.Fatalf("Collect(%q, %q): last token: got %q, want empty", src, sep, last)
		}
		if got, want := len(got), strings.Count(src, sep)+1; got != want {
			rt.Fatalf("Collect(%q, %q): got %v tokens, want %v", src, sep, got, want)
		}
	})
}

func TestExhaustion(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.String().Draw(rt, "src")
		sep := rapid.StringN(0, 2, -1).Draw(rt, "sep")
		sp := strsplit.New(src, strsplit.String(sep))
		n := 0
		for range sp.All() {
			n++
		}
		if n < 1 || n > len(src)+1 {
			rt.Fatalf("Collect(%q, %q): %v tokens", src, sep, n)
		}
		calls := rapid.IntRange(1, 5).Draw(rt, "calls")
		for i := 0; i < calls; i++ {
			if tok, ok := sp.Next(); ok || tok != "" || !sp.Done() {
				rt.Fatalf("Next after exhaustion: got %q, %v", tok, ok)
			}
		}
	})
}

func TestUntilProperty(t *testing.T) {
	rapid.Check(t, func(rt *rapid.T) {
		src := rapid.String().Draw(rt, "src")
		r := rapid.Rune().Filter(func(r rune) bool { return r != utf8.RuneError }).Draw(rt, "r")
		got := strsplit.UntilRune(src, r)
		want, _, _ := strings.Cut(src, string(r))
		if got != want {
			rt.Fatalf("UntilRune(%q, %q): got %q, want %q", src, r, got, want)
		}
	})
}
