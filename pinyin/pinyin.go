// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:generate go run gen.go

// Package pinyin rewrites tone-numbered pinyin, such as "ni3 hao3", into
// pinyin with tone marks, such as "nǐ hǎo".
//
// A convertible syllable is one or two vowels, at most two lowercase final
// consonants and a tone digit from 1 to 4, for example "zhong1" or "lv4".
// The letter v stands for ü. All other text, including syllables without a
// digit or with the neutral tone digits 0 and 5, is copied unchanged.
//
// The tone mark goes on the a if there is one, otherwise on the e, otherwise
// on the o of ou, otherwise on the last vowel.
package pinyin

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/transform"
)

const (
	// NumVariants is the number of forms stored for each vowel.
	NumVariants = 5

	// Neutral is the index of the bare vowel. None of the tone digits
	// accepted by the converter selects it.
	Neutral = NumVariants - 1
)

// Mark returns the form of vowel at the given index. Indexes 0 through 3 are
// tones 1 through 4 and Neutral is the unmarked vowel. The vowel is one of
// the ASCII letters a, e, i, o, u and v, in either case, where v yields the
// forms of ü. It reports false for any other rune or index.
func Mark(vowel rune, index int) (r rune, ok bool) {
	if vowel >= utf8.RuneSelf || index < 0 || index >= NumVariants {
		return 0, false
	}
	i := strings.IndexByte(vowels, byte(vowel))
	if i < 0 {
		return 0, false
	}
	return toneTable[i][index], true
}

// Convert returns s with every tone-numbered syllable replaced by its form
// with a tone mark. It is equivalent to ToneMarks().String(s).
func Convert(s string) string {
	return ToneMarks().String(s)
}

// Transformer implements the transform.Transformer interface.
type Transformer struct {
	t transform.Transformer
}

// Reset implements the transform.Transformer interface.
func (t Transformer) Reset() { t.t.Reset() }

// Transform implements the transform.Transformer interface.
func (t Transformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	return t.t.Transform(dst, src, atEOF)
}

// Bytes returns a new byte slice with the result of applying t to b.
func (t Transformer) Bytes(b []byte) []byte {
	b, _, _ = transform.Bytes(t, b)
	return b
}

// String returns a string with the result of applying t to s.
func (t Transformer) String(s string) string {
	s, _, _ = transform.String(t, s)
	return s
}

// ToneMarks returns a transform that replaces tone-numbered syllables with
// their marked forms. The transform holds no state and may be used from
// multiple goroutines.
func ToneMarks() Transformer {
	return Transformer{toneTransform{}}
}
