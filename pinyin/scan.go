// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinyin

import "iter"

// A syllable is at most two vowels and two finals followed by a tone digit.
const maxLetters = 4

// A Syllable is a tone-numbered syllable found in a text.
type Syllable struct {
	Text  string // the syllable including its tone digit
	Start int    // byte offset of the first letter
	End   int    // byte offset just past the tone digit
}

// Syllables returns the tone-numbered syllables of s from left to right.
// Syllables never overlap. Scanning resumes after the end of each match and
// one byte further after each failed attempt, so that the syllables reported
// are exactly those Convert replaces.
//
// The sequence is evaluated lazily and can be ranged over more than once.
func Syllables(s string) iter.Seq[Syllable] {
	return func(yield func(Syllable) bool) {
		for p := 0; p < len(s); {
			if n, st := matchAt(s, p, true); st == matched {
				if !yield(Syllable{Text: s[p : p+n], Start: p, End: p + n}) {
					return
				}
				p += n
				continue
			}
			p++
		}
	}
}

type matchState int

const (
	noMatch matchState = iota
	matched
	needMore // s ends before a match at p can be decided
)

// matchAt reports whether a syllable starts at byte p of s and, if so, its
// length in bytes. If atEOF is false, s may be a prefix of a longer text and
// matchAt reports needMore when the outcome depends on bytes beyond s.
func matchAt[S ~string | ~[]byte](s S, p int, atEOF bool) (n int, st matchState) {
	if !isVowel(s[p]) {
		return 0, noMatch
	}
	q := p + 1
	for q < len(s) && isLetter(s[q]) {
		if q-p == maxLetters {
			return 0, noMatch
		}
		q++
	}
	if q == len(s) {
		if atEOF {
			return 0, noMatch
		}
		return 0, needMore
	}
	if !isToneDigit(s[q]) || !validBody(s, p, q) {
		return 0, noMatch
	}
	return q + 1 - p, matched
}

// validBody reports whether s[p:q], a run of letters starting with a vowel,
// splits into one or two vowels followed by at most two finals.
func validBody[S ~string | ~[]byte](s S, p, q int) bool {
	for nv := min(2, q-p); nv >= 1; nv-- {
		if q-p-nv > 2 {
			break
		}
		ok := true
		for i := p; i < q && ok; i++ {
			if i < p+nv {
				ok = isVowel(s[i])
			} else {
				ok = isFinal(s[i])
			}
		}
		if ok {
			return true
		}
	}
	return false
}

func isVowel(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u', 'v', 'A', 'E', 'I', 'O', 'U', 'V':
		return true
	}
	return false
}

// isFinal reports whether c may follow the vowels of a syllable. Only
// lowercase consonants qualify; v is both a vowel and a final.
func isFinal(c byte) bool {
	switch c {
	case 'a', 'e', 'i', 'o', 'u':
		return false
	}
	return 'a' <= c && c <= 'z'
}

func isLetter(c byte) bool {
	return isVowel(c) || isFinal(c)
}

func isToneDigit(c byte) bool {
	return '1' <= c && c <= '4'
}
