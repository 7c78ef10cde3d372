// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"context"
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/storypractice/tonemark/internal/fileutil"
	"github.com/storypractice/tonemark/pinyin"
	"golang.org/x/text/transform"
)

// ConvertCmd writes its input with tone marks in place of tone numbers.
type ConvertCmd struct {
	Files []string `arg:"" optional:"" help:"Files to convert (default: standard input)"`
	Write bool     `short:"w" help:"Rewrite the files in place instead of printing them"`
}

func (c *ConvertCmd) Run(env *Env) error {
	if len(c.Files) == 0 {
		if c.Write {
			return errors.New("-w requires at least one file")
		}
		_, err := io.Copy(env.Stdout, transform.NewReader(env.Stdin, pinyin.ToneMarks()))
		return errors.Wrap(err, "converting standard input")
	}
	for _, name := range c.Files {
		if err := env.Ctx.Err(); err != nil {
			return err
		}
		if c.Write {
			changed, err := rewrite(env.Ctx, name)
			if err != nil {
				return err
			}
			env.Log.Info("convert", "converted file", map[string]interface{}{"file": name, "changed": changed})
			continue
		}
		if err := printConverted(env.Stdout, name); err != nil {
			return err
		}
	}
	return nil
}

func printConverted(w io.Writer, name string) error {
	f, err := os.Open(name)
	if err != nil {
		return errors.Wrapf(err, "failed to open %q", name)
	}
	defer f.Close()
	if _, err := io.Copy(w, transform.NewReader(f, pinyin.ToneMarks())); err != nil {
		return errors.Wrapf(err, "converting %q", name)
	}
	return nil
}

// rewrite converts the file in place while holding its lock file.
func rewrite(ctx context.Context, name string) (changed bool, err error) {
	err = fileutil.WithLock(ctx, fileutil.LockPath(name), func() error {
		src, err := os.ReadFile(name)
		if err != nil {
			return errors.Wrapf(err, "failed to read %q", name)
		}
		dst := pinyin.ToneMarks().Bytes(src)
		if bytes.Equal(dst, src) {
			return nil
		}
		changed = true
		return fileutil.WriteAtomic(name, dst)
	})
	return changed, err
}
