// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package fileutil holds the file locking and file replacement helpers used
// when rewriting text files that an editor may have open.
package fileutil

import (
	"context"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/pkg/errors"
)

// LockRetryDelay is how often WithLock polls a lock held by someone else.
var LockRetryDelay = 100 * time.Millisecond

// Exists reports whether path exists.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// LockPath returns the path of the lock file guarding path. Every writer of
// path locks the same file.
func LockPath(path string) string {
	return path + ".lock"
}

// WithLock opens lockPath (creating it if needed), locks it and runs fn. If
// the lock is held elsewhere it polls until it gets the lock or ctx is done.
//
// The lock file is not removed.
func WithLock(ctx context.Context, lockPath string, fn func() error) (err error) {
	fileLock := flock.New(lockPath)
	locked, err := fileLock.TryLockContext(ctx, LockRetryDelay)
	if err != nil {
		return errors.Wrapf(err, "while trying to lock %q", lockPath)
	}
	if !locked {
		return errors.Errorf("could not lock %q", lockPath)
	}
	defer func() {
		if unlockErr := fileLock.Unlock(); unlockErr != nil && err == nil {
			err = errors.Wrapf(unlockErr, "unlocking file %q", lockPath)
		}
	}()
	return fn()
}

// WriteAtomic replaces the contents of path with data. The data is written
// to a temporary file in the same directory which is then renamed over path,
// so readers see either the old or the new contents. An existing file keeps
// its permissions.
func WriteAtomic(path string, data []byte) (err error) {
	perm := os.FileMode(0o644)
	if info, err := os.Stat(path); err == nil {
		perm = info.Mode().Perm()
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return errors.Wrapf(err, "creating temporary file for %q", path)
	}
	tmpPath := tmpFile.Name()
	defer func() {
		if err != nil {
			tmpFile.Close()
			os.Remove(tmpPath)
		}
	}()

	if _, err = tmpFile.Write(data); err != nil {
		return errors.Wrapf(err, "writing temporary file %q", tmpPath)
	}
	if err = tmpFile.Chmod(perm); err != nil {
		return errors.Wrapf(err, "setting permissions of %q", tmpPath)
	}
	if err = tmpFile.Close(); err != nil {
		return errors.Wrapf(err, "failed to close temporary file %q", tmpPath)
	}
	if err = os.Rename(tmpPath, path); err != nil {
		return errors.Wrapf(err, "failed to move %q to %q", tmpPath, path)
	}
	return nil
}
