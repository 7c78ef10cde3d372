// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package config reads and writes the tonemark configuration file.
//
// The file is TOML:
//
//	[general]
//	home_directory = "/home/me/chinese"
package config

import (
	"bytes"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/storypractice/tonemark/internal/fileutil"
)

// FileName is the base name of the configuration file.
const FileName = "config.toml"

// General holds the [general] table.
type General struct {
	// HomeDirectory is the directory holding the lesson folders.
	HomeDirectory string `toml:"home_directory"`
}

// Config is the contents of the configuration file.
type Config struct {
	General General `toml:"general"`
}

// DefaultPath returns the location of the configuration file in the user's
// configuration directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "locating user configuration directory")
	}
	return filepath.Join(dir, "tonemark", FileName), nil
}

// Default returns the configuration used when no file exists yet: the home
// directory is the current working directory.
func Default() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, errors.Wrap(err, "reading working directory")
	}
	return &Config{General: General{HomeDirectory: wd}}, nil
}

// Load reads the configuration at path. If the file does not exist, it is
// created with the default configuration.
func Load(path string) (*Config, error) {
	if !fileutil.Exists(path) {
		c, err := Default()
		if err != nil {
			return nil, err
		}
		if err := c.Save(path); err != nil {
			return nil, err
		}
		return c, nil
	}
	var c Config
	md, err := toml.DecodeFile(path, &c)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse config file %q", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, errors.Errorf("config file %q: unknown key %q", path, undecoded[0].String())
	}
	return &c, nil
}

// Save writes c to path, creating the parent directory if needed.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrapf(err, "failed to create directory for config file %q", path)
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(c); err != nil {
		return errors.Wrap(err, "encoding config")
	}
	return fileutil.WriteAtomic(path, buf.Bytes())
}

// SetHome stores dir, which must be an existing directory, as the home
// directory in the configuration at path and returns the updated
// configuration.
func SetHome(path, dir string) (*Config, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "resolving %q", dir)
	}
	info, err := os.Stat(abs)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid home directory %q", dir)
	}
	if !info.IsDir() {
		return nil, errors.Errorf("invalid home directory %q: not a directory", dir)
	}
	c, err := Load(path)
	if err != nil {
		return nil, err
	}
	c.General.HomeDirectory = abs
	if err := c.Save(path); err != nil {
		return nil, err
	}
	return c, nil
}
