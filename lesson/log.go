// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lesson

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/pkg/errors"
	"github.com/storypractice/tonemark/internal/fileutil"
)

// FormatElapsed formats d as mm:ss.cc. Minutes wrap at an hour and
// hundredths are truncated.
func FormatElapsed(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	cs := int64(d / (10 * time.Millisecond))
	return fmt.Sprintf("%02d:%02d.%02d", cs/6000%60, cs/100%60, cs%100)
}

// RecordTime adds a practice time to the top of the lesson log. Entries are
// numbered from the bottom: the new entry gets the number of lines already in
// the log plus one.
func (l *Lesson) RecordTime(ctx context.Context, d time.Duration) (entry string, err error) {
	path := l.Path(LogFile)
	err = l.lock(ctx, LogFile, func() error {
		content, err := os.ReadFile(path)
		if err != nil && !os.IsNotExist(err) {
			return errors.Wrapf(err, "failed to read %q", path)
		}
		lines := strings.Count(string(content), "\n") + 1
		entry = fmt.Sprintf("%d: %s", lines, FormatElapsed(d))
		return fileutil.WriteAtomic(path, append([]byte(entry+"\n"), content...))
	})
	if err != nil {
		return "", err
	}
	return entry, nil
}
