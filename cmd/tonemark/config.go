// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
	"github.com/storypractice/tonemark/internal/config"
)

// ConfigGroup contains the configuration operations.
type ConfigGroup struct {
	Show    ConfigShowCmd    `cmd:"" help:"Print the configuration"`
	SetHome ConfigSetHomeCmd `cmd:"" name:"set-home" help:"Set the directory holding the lesson folders"`
}

// ConfigShowCmd prints the configuration file.
type ConfigShowCmd struct{}

func (c *ConfigShowCmd) Run(env *Env) error {
	cfg, path, err := env.Config()
	if err != nil {
		return err
	}
	fmt.Fprintf(env.Stdout, "# %s\n", path)
	return errors.Wrap(toml.NewEncoder(env.Stdout).Encode(cfg), "encoding config")
}

// ConfigSetHomeCmd changes the home directory.
type ConfigSetHomeCmd struct {
	Dir string `arg:"" help:"Home directory" type:"existingdir"`
}

func (c *ConfigSetHomeCmd) Run(env *Env) error {
	_, path, err := env.Config()
	if err != nil {
		return err
	}
	cfg, err := config.SetHome(path, c.Dir)
	if err != nil {
		return err
	}
	env.Log.Info("config", "home directory set", map[string]interface{}{"home": cfg.General.HomeDirectory, "file": path})
	return nil
}
