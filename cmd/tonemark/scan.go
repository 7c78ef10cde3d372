// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/pkg/errors"
	"github.com/storypractice/tonemark/pinyin"
)

// ScanCmd lists every tone-numbered syllable with its position and the form
// it converts to.
type ScanCmd struct {
	Files []string `arg:"" optional:"" help:"Files to scan (default: standard input)"`
	Color bool     `help:"Highlight the converted syllables"`
}

var highlight = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("2"))

func (c *ScanCmd) Run(env *Env) error {
	if len(c.Files) == 0 {
		n, err := c.scan(env.Stdout, "-", env.Stdin)
		env.Log.Debug("scan", "scanned", map[string]interface{}{"file": "-", "syllables": n})
		return err
	}
	for _, name := range c.Files {
		f, err := os.Open(name)
		if err != nil {
			return errors.Wrapf(err, "failed to open %q", name)
		}
		n, err := c.scan(env.Stdout, name, f)
		f.Close()
		if err != nil {
			return err
		}
		env.Log.Debug("scan", "scanned", map[string]interface{}{"file": name, "syllables": n})
	}
	return nil
}

// scan writes one line per syllable of r as name:line:column, where column
// is a 1-based byte offset.
func (c *ScanCmd) scan(w io.Writer, name string, r io.Reader) (n int, err error) {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for line := 1; s.Scan(); line++ {
		text := s.Text()
		for syl := range pinyin.Syllables(text) {
			marked := pinyin.Convert(syl.Text)
			if c.Color {
				marked = highlight.Render(marked)
			}
			fmt.Fprintf(w, "%s:%d:%d: %s %s\n", name, line, syl.Start+1, syl.Text, marked)
			n++
		}
	}
	if err := s.Err(); err != nil {
		return n, errors.Wrapf(err, "reading %q", name)
	}
	return n, nil
}
