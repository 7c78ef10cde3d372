// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build ignore

// This program generates the tone table for the pinyin package. Each marked
// vowel is obtained by composing the bare vowel with a combining tone mark.
package main

import (
	"flag"
	"fmt"
	"log"
	"unicode/utf8"

	"github.com/storypractice/tonemark/internal/gen"
	"golang.org/x/text/unicode/norm"
)

var outputFile = flag.String("output", "tables.go", "output file for generated tables")

// Combining marks for tones 1 through 4.
var marks = []rune{
	'\u0304', // macron
	'\u0301', // acute
	'\u030C', // caron
	'\u0300', // grave
}

// letters maps the ASCII input letters to the vowels they represent.
var letters = []struct {
	key  byte
	base string
}{
	{'a', "a"},
	{'A', "A"},
	{'e', "e"},
	{'E', "E"},
	{'i', "i"},
	{'I', "I"},
	{'o', "o"},
	{'O', "O"},
	{'u', "u"},
	{'U', "U"},
	{'v', "u\u0308"},
	{'V', "U\u0308"},
}

func main() {
	flag.Parse()

	keys := make([]byte, 0, len(letters))
	for _, l := range letters {
		keys = append(keys, l.key)
	}

	w := gen.NewCodeWriter()
	w.WriteComment(`
		vowels lists the letters that can carry a tone mark, in the order of the
		rows of toneTable.`)
	w.WriteConst("vowels", string(keys))

	w.WriteComment(`
		toneTable holds the variants of each letter in vowels: tones 1 to 4
		followed by the bare vowel.`)
	fmt.Fprintf(w, "var toneTable = [%d][NumVariants]rune{\n", len(letters))
	for _, l := range letters {
		fmt.Fprint(w, "\t{")
		for _, m := range marks {
			fmt.Fprintf(w, "0x%04X, ", compose(l.base+string(m)))
		}
		fmt.Fprintf(w, "0x%04X}, // %c\n", compose(l.base), l.key)
	}
	fmt.Fprintln(w, "}")
	w.Size += len(letters) * (len(marks) + 1) * 4

	w.WriteGoFile(*outputFile, "pinyin")
}

// compose returns the single precomposed rune for s.
func compose(s string) rune {
	c := norm.NFC.String(s)
	r, size := utf8.DecodeRuneInString(c)
	if size != len(c) {
		log.Fatalf("%+q does not compose to a single rune", s)
	}
	return r
}
