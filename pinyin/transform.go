// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinyin

import (
	"unicode/utf8"

	"golang.org/x/text/transform"
)

type toneTransform struct {
	transform.NopResetter
}

func (toneTransform) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		// Copy everything up to the next vowel in one go.
		end := nSrc
		for end < len(src) && !isVowel(src[end]) {
			end++
		}
		if end > nSrc {
			n := copy(dst[nDst:], src[nSrc:end])
			nDst += n
			nSrc += n
			if nSrc < end {
				return nDst, nSrc, transform.ErrShortDst
			}
			continue
		}

		n, st := matchAt(src, nSrc, atEOF)
		switch st {
		case needMore:
			return nDst, nSrc, transform.ErrShortSrc
		case noMatch:
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = src[nSrc]
			nDst++
			nSrc++
			continue
		}

		syl := src[nSrc : nSrc+n]
		pos, r := place(syl)
		// The marked rune replaces one letter and the digit is dropped.
		if n-2+utf8.RuneLen(r) > len(dst)-nDst {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], syl[:pos])
		nDst += utf8.EncodeRune(dst[nDst:], r)
		nDst += copy(dst[nDst:], syl[pos+1:n-1])
		nSrc += n
	}
	return nDst, nSrc, nil
}
