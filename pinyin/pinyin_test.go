// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pinyin

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestConvert(t *testing.T) {
	for _, tc := range []struct {
		desc string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"no digit", "hello", "hello"},
		{"greeting", "ni3 hao3", "nǐ hǎo"},
		{"final consonants", "zheng4", "zhèng"},
		{"adjacent syllables", "hen3hao3", "hěnhǎo"},
		{"sentence", "Ni3 hao3! Hen3hao3 zheng4", "Nǐ hǎo! Hěnhǎo zhèng"},
		{"a before i and o", "xiao3", "xiǎo"},
		{"a in final cluster", "zhuang4", "zhuàng"},
		{"a after u and i", "huai4", "huài"},
		{"e before i", "xie4", "xiè"},
		{"ou", "dou1", "dōu"},
		{"ou alone", "ou3", "ǒu"},
		{"uppercase ou", "Ou1", "Ōu"},
		{"iu", "liu2", "liú"},
		{"ui", "shui3", "shuǐ"},
		{"ong", "zhong1", "zhōng"},
		{"iong", "xiong2", "xióng"},
		{"ing", "ying1", "yīng"},
		{"er", "er2", "ér"},
		{"v for ü", "lv4 nv3", "lǜ nǚ"},
		{"ve keeps v", "lve4", "lvè"},
		{"uppercase vowel", "Ai4", "Ài"},
		{"uppercase V", "LV4", "LǛ"},
		{"uppercase finals are not finals", "ZHONG1", "ZHONG1"},
		{"capitalized", "Zhong1guo2", "Zhōngguó"},
		{"neutral tone digits", "ma5 ma0 ma", "ma5 ma0 ma"},
		{"other digits", "a6 e9 i12", "a6 e9 ī2"},
		{"vowel after letters", "hello3", "hellǒ"},
		{"too many vowels", "aaaa1", "aaāa"},
		{"too many finals", "uangg1", "uangg1"},
		{"v as final", "av1", "āv"},
		{"no vowel", "ng3 m2", "ng3 m2"},
		{"punctuation kept", "(ma1), [ma2]; ma3? ma4!", "(mā), [má]; mǎ? mà!"},
		{"han and pinyin", "你好 ni3hao3", "你好 nǐhǎo"},
		{"ü is not a tone letter", "lü4", "lü4"},
		{"multiline", "wo3\nai4\tni3\r\n", "wǒ\nài\tnǐ\r\n"},
	} {
		if got := Convert(tc.in); got != tc.want {
			t.Errorf("%s: Convert(%q) = %q; want %q", tc.desc, tc.in, got, tc.want)
		}
	}
}

func TestConvertSingleVowels(t *testing.T) {
	for i := 0; i < len(vowels); i++ {
		v := rune(vowels[i])
		for tone := 1; tone <= 4; tone++ {
			want, _ := Mark(v, tone-1)
			in := string(v) + string(rune('0'+tone))
			if got := Convert(in); got != string(want) {
				t.Errorf("Convert(%q) = %q; want %q", in, got, string(want))
			}
		}
	}
}

func TestMarkLowercaseA(t *testing.T) {
	// Whatever else the syllable holds, an a always takes the mark.
	for _, body := range []string{"iao", "uai", "ao", "ai", "an", "ang", "uan", "ua"} {
		for tone := 1; tone <= 4; tone++ {
			in := body + string(rune('0'+tone))
			got := Convert(in)
			want, _ := Mark('a', tone-1)
			if !strings.ContainsRune(got, want) {
				t.Errorf("Convert(%q) = %q; want mark on a", in, got)
			}
		}
	}
}

func TestConvertIdempotent(t *testing.T) {
	for _, s := range []string{
		"Ni3 hao3! Hen3hao3 zheng4",
		"Zhong1guo2 ren2 xi3huan1 he1 cha2.",
		"lv4 nv3 lve4",
	} {
		once := Convert(s)
		if strings.ContainsAny(once, "1234") {
			t.Fatalf("Convert(%q) = %q still holds tone digits", s, once)
		}
		if twice := Convert(once); twice != once {
			t.Errorf("Convert(%q) = %q; want %q", once, twice, once)
		}
	}
}

func TestMark(t *testing.T) {
	for _, tc := range []struct {
		vowel rune
		index int
		want  rune
		ok    bool
	}{
		{'a', 0, 'ā', true},
		{'A', 3, 'À', true},
		{'v', 2, 'ǚ', true},
		{'V', 1, 'Ǘ', true},
		{'e', Neutral, 'e', true},
		{'v', Neutral, 'ü', true},
		{'a', -1, 0, false},
		{'a', NumVariants, 0, false},
		{'b', 0, 0, false},
		{'ü', 0, 0, false},
		{'ā', 0, 0, false},
	} {
		got, ok := Mark(tc.vowel, tc.index)
		if got != tc.want || ok != tc.ok {
			t.Errorf("Mark(%q, %d) = %q, %v; want %q, %v", tc.vowel, tc.index, got, ok, tc.want, tc.ok)
		}
	}
}

func TestConvertConcurrent(t *testing.T) {
	const s = "Wo3 de5 peng2you3 xi3huan1 he1 cha2."
	want := Convert(s)
	done := make(chan string)
	for i := 0; i < 8; i++ {
		go func() { done <- Convert(s) }()
	}
	for i := 0; i < 8; i++ {
		if got := <-done; got != want {
			t.Errorf("concurrent Convert = %q; want %q", got, want)
		}
	}
}

func FuzzConvert(f *testing.F) {
	for _, s := range []string{
		"",
		"hello",
		"ni3 hao3",
		"Zhong1guo2",
		"uangg1 aaaa1 hello3",
		"lv4 LV4 ZHONG1",
		"你好 ni3hao3",
		"\xffa2\xc0",
	} {
		f.Add(s)
	}
	f.Fuzz(func(t *testing.T, s string) {
		got := Convert(s)

		// Rebuild the output from the scanner and the placement rule.
		var b []byte
		prev := 0
		for syl := range Syllables(s) {
			b = append(b, s[prev:syl.Start]...)
			pos, r := place([]byte(syl.Text))
			b = append(b, syl.Text[:pos]...)
			b = utf8.AppendRune(b, r)
			b = append(b, syl.Text[pos+1:len(syl.Text)-1]...)
			prev = syl.End
		}
		b = append(b, s[prev:]...)
		if string(b) != got {
			t.Fatalf("Convert(%q) = %q; syllables give %q", s, got, b)
		}

		if !strings.ContainsAny(s, "1234") && got != s {
			t.Errorf("Convert(%q) = %q; want input unchanged", s, got)
		}
		if utf8.ValidString(s) && !utf8.ValidString(got) {
			t.Errorf("Convert(%q) = %q is not valid UTF-8", s, got)
		}
		if !strings.ContainsAny(got, "1234") {
			if again := Convert(got); again != got {
				t.Errorf("Convert(%q) = %q; want %q", got, again, got)
			}
		}
	})
}
