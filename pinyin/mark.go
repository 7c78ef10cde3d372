// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinyin

// place returns the position in syl of the letter that takes the tone mark
// and the marked rune that replaces it. syl must be a syllable as matched by
// matchAt; the result is undefined for any other input.
func place(syl []byte) (pos int, r rune) {
	body := syl[:len(syl)-1]
	pos = markPos(body)
	r, _ = Mark(rune(body[pos]), int(syl[len(syl)-1]-'1'))
	return pos, r
}

// markPos picks the vowel of body, the syllable without its tone digit, that
// takes the tone mark.
func markPos(body []byte) int {
	if len(body) == 1 {
		return 0
	}
	if i := indexFold(body, 'a'); i >= 0 {
		return i
	}
	if i := indexFold(body, 'e'); i >= 0 {
		return i
	}
	for i := 0; i+1 < len(body); i++ {
		if lower(body[i]) == 'o' && lower(body[i+1]) == 'u' {
			return i
		}
	}
	// Only the last three letters are inspected. With at most two finals
	// one of them is always a vowel.
	for i := len(body) - 1; i >= 0 && i >= len(body)-3; i-- {
		if isVowel(body[i]) {
			return i
		}
	}
	return max(0, len(body)-3)
}

// indexFold returns the index of the first occurrence of the lowercase ASCII
// letter c in b, ignoring case, or -1.
func indexFold(b []byte, c byte) int {
	for i, x := range b {
		if lower(x) == c {
			return i
		}
	}
	return -1
}

func lower(c byte) byte {
	if 'A' <= c && c <= 'Z' {
		return c + 'a' - 'A'
	}
	return c
}
