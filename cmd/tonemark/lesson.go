// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/storypractice/tonemark/lesson"
)

// LessonGroup contains the lesson folder operations.
type LessonGroup struct {
	Init      LessonInitCmd      `cmd:"" help:"Mark a directory as a lesson folder"`
	List      LessonListCmd      `cmd:"" help:"List the lesson folders in the home directory"`
	Info      LessonInfoCmd      `cmd:"" help:"Show the files of a lesson"`
	Normalize LessonNormalizeCmd `cmd:"" help:"Convert the story and homework texts in place"`
	Log       LessonLogCmd       `cmd:"" help:"Record a practice time in the lesson log"`
}

// LessonInitCmd creates a lesson folder.
type LessonInitCmd struct {
	Dir string `arg:"" help:"Lesson directory" type:"path"`
}

func (c *LessonInitCmd) Run(env *Env) error {
	if err := lesson.Create(c.Dir); err != nil {
		return err
	}
	l, err := lesson.Open(c.Dir)
	if err != nil {
		return err
	}
	env.Log.Info("lesson", "created lesson", map[string]interface{}{"dir": l.Dir})
	fmt.Fprintln(env.Stdout, l.Dir)
	return nil
}

// LessonListCmd lists lesson folders.
type LessonListCmd struct {
	Home string `help:"Directory to search (default: configured home directory)" type:"path"`
}

func (c *LessonListCmd) Run(env *Env) error {
	home := c.Home
	if home == "" {
		cfg, _, err := env.Config()
		if err != nil {
			return err
		}
		home = cfg.General.HomeDirectory
	}
	lessons, err := lesson.List(home)
	if err != nil {
		return err
	}
	if len(lessons) == 0 {
		env.Log.Warning("lesson", "no lessons found", map[string]interface{}{"home": home})
		return nil
	}
	for _, dir := range lessons {
		fmt.Fprintln(env.Stdout, filepath.Base(dir))
	}
	return nil
}

// LessonInfoCmd prints the files that make up a lesson.
type LessonInfoCmd struct {
	Dir string `arg:"" help:"Lesson directory" type:"existingdir"`
}

func (c *LessonInfoCmd) Run(env *Env) error {
	l, err := lesson.Open(c.Dir)
	if err != nil {
		return err
	}
	for _, f := range []struct{ label, path string }{
		{"audio", l.Audio},
		{"pdf", l.PDF},
		{"story", l.Path(lesson.StoryFile)},
		{"homework", l.Path(lesson.HomeworkFile)},
		{"log", l.Path(lesson.LogFile)},
	} {
		if f.path == "" {
			f.path = "-"
		}
		fmt.Fprintf(env.Stdout, "%-8s %s\n", f.label, f.path)
	}
	return nil
}

// LessonNormalizeCmd converts lesson texts in place.
type LessonNormalizeCmd struct {
	Dirs []string `arg:"" help:"Lesson directories"`
}

func (c *LessonNormalizeCmd) Run(env *Env) error {
	for _, dir := range c.Dirs {
		l, err := lesson.Open(dir)
		if err != nil {
			return err
		}
		results, err := l.Normalize(env.Ctx)
		if err != nil {
			return err
		}
		for _, r := range results {
			env.Log.Info("lesson", "normalized", map[string]interface{}{
				"file":      r.File,
				"syllables": r.Syllables,
				"changed":   r.Changed,
			})
			fmt.Fprintf(env.Stdout, "%s: %d syllables\n", r.File, r.Syllables)
		}
	}
	return nil
}

// LessonLogCmd records a practice time.
type LessonLogCmd struct {
	Dir     string        `arg:"" help:"Lesson directory" type:"existingdir"`
	Elapsed time.Duration `arg:"" help:"Practice time, such as 1m23.4s"`
}

func (c *LessonLogCmd) Run(env *Env) error {
	l, err := lesson.Open(c.Dir)
	if err != nil {
		return err
	}
	entry, err := l.RecordTime(env.Ctx, c.Elapsed)
	if err != nil {
		return err
	}
	fmt.Fprintln(env.Stdout, entry)
	return nil
}
