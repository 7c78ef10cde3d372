// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lesson

import (
	"context"
	"os"

	"github.com/pkg/errors"
	"github.com/storypractice/tonemark/internal/fileutil"
	"github.com/storypractice/tonemark/pinyin"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// A Result describes the normalization of one text file.
type Result struct {
	File      string // path of the file
	Syllables int    // number of tone-numbered syllables replaced
	Changed   bool   // whether the file was rewritten
}

// Normalize rewrites the story and homework texts of l with tone marks in
// place of tone numbers. The texts are put in NFC first so that text pasted
// in decomposed form is stored the same way as converted text. Files that
// would not change are left untouched. Each file is rewritten while holding
// its lock file, the same one "tonemark convert -w" takes.
func (l *Lesson) Normalize(ctx context.Context) ([]Result, error) {
	var results []Result
	for _, name := range []string{StoryFile, HomeworkFile} {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		var r Result
		err := l.lock(ctx, name, func() error {
			var err error
			r, err = normalizeFile(l.Path(name))
			return err
		})
		if err != nil {
			return results, err
		}
		results = append(results, r)
	}
	return results, nil
}

func normalizeFile(path string) (Result, error) {
	r := Result{File: path}
	src, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return r, nil
	}
	if err != nil {
		return r, errors.Wrapf(err, "failed to read %q", path)
	}
	nfc := norm.NFC.Bytes(src)
	for range pinyin.Syllables(string(nfc)) {
		r.Syllables++
	}
	dst, _, err := transform.Bytes(pinyin.ToneMarks(), nfc)
	if err != nil {
		return r, errors.Wrapf(err, "converting %q", path)
	}
	if string(dst) == string(src) {
		return r, nil
	}
	if err := fileutil.WriteAtomic(path, dst); err != nil {
		return r, err
	}
	r.Changed = true
	return r, nil
}
