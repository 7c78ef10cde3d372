// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinyin

import (
	"testing"

	"golang.org/x/text/unicode/norm"
)

// combining tone marks for tones 1 through 4
var toneMarks = []string{"\u0304", "\u0301", "\u030C", "\u0300"}

func TestTables(t *testing.T) {
	if len(vowels) != len(toneTable) {
		t.Fatalf("%d vowels for %d table rows", len(vowels), len(toneTable))
	}
	for i := 0; i < len(vowels); i++ {
		v := rune(vowels[i])
		bare := string(v)
		switch v {
		case 'v':
			bare = "ü"
		case 'V':
			bare = "Ü"
		}
		if got, _ := Mark(v, Neutral); string(got) != bare {
			t.Errorf("Mark(%q, Neutral) = %q; want %q", v, got, bare)
		}
		for tone, m := range toneMarks {
			got, ok := Mark(v, tone)
			if !ok {
				t.Errorf("Mark(%q, %d) not found", v, tone)
				continue
			}
			if want := norm.NFC.String(bare + m); string(got) != want {
				t.Errorf("Mark(%q, %d) = %+q; want %+q", v, tone, got, want)
			}
			if !norm.NFC.IsNormalString(string(got)) {
				t.Errorf("Mark(%q, %d) = %+q is not in NFC", v, tone, got)
			}
		}
	}
}
