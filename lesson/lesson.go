// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lesson manages lesson folders: a directory marked by a .lesson
// file that holds the story and homework texts, a practice log and
// optionally an audio recording and a PDF.
//
// The texts are written in tone-numbered pinyin and can be normalized to
// pinyin with tone marks in place.
package lesson

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
	"github.com/storypractice/tonemark/internal/fileutil"
)

// Names of the files in a lesson folder.
const (
	MarkerFile   = ".lesson"
	StoryFile    = "story.txt"
	HomeworkFile = "homework.txt"
	LogFile      = "log.txt"
)

// ErrNotLesson is returned when a directory has no marker file.
var ErrNotLesson = errors.New("not a lesson folder")

var (
	audioExts = []string{".m4a", ".mp3"}
	pdfExts   = []string{".pdf"}
)

// Text files created with this content when missing.
var defaults = []struct{ name, content string }{
	{StoryFile, "# Story"},
	{HomeworkFile, "# Homework"},
	{LogFile, ""},
}

// A Lesson is an opened lesson folder.
type Lesson struct {
	Dir   string
	Audio string // path of the audio recording, or ""
	PDF   string // path of the PDF, or ""
}

// Path returns the path of the named file in the lesson folder.
func (l *Lesson) Path(name string) string {
	return filepath.Join(l.Dir, name)
}

// Create marks dir, creating it if needed, as a lesson folder.
func Create(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.Wrapf(err, "failed to create lesson directory %q", dir)
	}
	marker := filepath.Join(dir, MarkerFile)
	if fileutil.Exists(marker) {
		return nil
	}
	if err := os.WriteFile(marker, nil, 0o644); err != nil {
		return errors.Wrapf(err, "failed to create %q", marker)
	}
	return nil
}

// IsLesson reports whether dir holds a marker file.
func IsLesson(dir string) bool {
	return fileutil.Exists(filepath.Join(dir, MarkerFile))
}

// Open opens the lesson folder dir. Missing text files are created with
// their default content.
func Open(dir string) (*Lesson, error) {
	if !IsLesson(dir) {
		return nil, errors.Wrapf(ErrNotLesson, "%q", dir)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read lesson directory %q", dir)
	}
	l := &Lesson{Dir: dir}
	if name := firstWithExt(entries, audioExts); name != "" {
		l.Audio = l.Path(name)
	}
	if name := firstWithExt(entries, pdfExts); name != "" {
		l.PDF = l.Path(name)
	}
	for _, d := range defaults {
		path := l.Path(d.name)
		if fileutil.Exists(path) {
			continue
		}
		if err := os.WriteFile(path, []byte(d.content), 0o644); err != nil {
			return nil, errors.Wrapf(err, "failed to create %q", path)
		}
	}
	return l, nil
}

// firstWithExt returns the first regular file in entries with one of the
// given extensions, ignoring case.
func firstWithExt(entries []os.DirEntry, exts []string) string {
	for _, e := range entries {
		if !e.Type().IsRegular() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(e.Name()))
		for _, x := range exts {
			if ext == x {
				return e.Name()
			}
		}
	}
	return ""
}

// List returns the lesson folders directly below home, sorted by name.
func List(home string) ([]string, error) {
	entries, err := os.ReadDir(home)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read home directory %q", home)
	}
	var lessons []string
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		if dir := filepath.Join(home, e.Name()); IsLesson(dir) {
			lessons = append(lessons, dir)
		}
	}
	sort.Strings(lessons)
	return lessons, nil
}

// lock runs fn while holding the lock of the named file of the lesson.
func (l *Lesson) lock(ctx context.Context, name string, fn func() error) error {
	return fileutil.WithLock(ctx, fileutil.LockPath(l.Path(name)), fn)
}
