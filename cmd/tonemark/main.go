// Copyright 2026 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command tonemark converts tone-numbered pinyin such as "ni3 hao3" into
// pinyin with tone marks such as "nǐ hǎo", and keeps the texts of lesson
// folders in that form.
//
// Usage:
//
//	tonemark convert [-w] [FILE...]
//	tonemark scan [--color] [FILE...]
//	tonemark lesson init DIR
//	tonemark lesson list [--home DIR]
//	tonemark lesson info DIR
//	tonemark lesson normalize DIR...
//	tonemark lesson log DIR DURATION
//	tonemark config show
//	tonemark config set-home DIR
//	tonemark version
//
// Without files, convert and scan read standard input.
package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/alecthomas/kong"
	"github.com/storypractice/tonemark/internal/config"
	"github.com/storypractice/tonemark/internal/logger"
)

const version = "0.1.0"

// CLI defines the command-line interface of tonemark.
type CLI struct {
	ConfigFile string `name:"config-file" help:"Configuration file (default: user configuration directory)" type:"path"`
	LogLevel   string `name:"log-level" help:"Log level" enum:"debug,info,warn,error" default:"info"`
	LogJSON    bool   `name:"log-json" help:"Write logs as JSON lines"`

	Convert ConvertCmd  `cmd:"" help:"Replace tone numbers with tone marks"`
	Scan    ScanCmd     `cmd:"" help:"List tone-numbered syllables"`
	Lesson  LessonGroup `cmd:"" help:"Lesson folder operations"`
	Config  ConfigGroup `cmd:"" help:"Show or change the configuration"`
	Version VersionCmd  `cmd:"" help:"Print version information"`
}

// Env is passed to the Run method of every command.
type Env struct {
	Ctx    context.Context
	Stdin  io.Reader
	Stdout io.Writer
	Log    *logger.Logger

	configPath string
}

// Config loads the configuration file, creating it if needed.
func (e *Env) Config() (*config.Config, string, error) {
	path := e.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(); err != nil {
			return nil, "", err
		}
	}
	c, err := config.Load(path)
	return c, path, err
}

// VersionCmd prints the version.
type VersionCmd struct{}

func (c *VersionCmd) Run(env *Env) error {
	fmt.Fprintf(env.Stdout, "tonemark %s\n", version)
	return nil
}

type exitCode int

// run executes the command line args and returns the process exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) (code int) {
	defer func() {
		if r := recover(); r != nil {
			c, ok := r.(exitCode)
			if !ok {
				panic(r)
			}
			code = int(c)
		}
	}()

	var cli CLI
	parser, err := kong.New(&cli,
		kong.Name("tonemark"),
		kong.Description("Convert tone-numbered pinyin to pinyin with tone marks."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(c int) { panic(exitCode(c)) }),
	)
	if err != nil {
		fmt.Fprintf(stderr, "tonemark: %v\n", err)
		return 2
	}
	kctx, err := parser.Parse(args)
	if err != nil {
		fmt.Fprintf(stderr, "tonemark: error: %v\n", err)
		return 2
	}

	level, err := logger.ParseLevel(cli.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "tonemark: %v\n", err)
		return 2
	}
	log := logger.NewConsole(stderr, level)
	if cli.LogJSON {
		log = logger.New(stderr, level)
	}

	env := &Env{
		Ctx:        ctx,
		Stdin:      stdin,
		Stdout:     stdout,
		Log:        log,
		configPath: cli.ConfigFile,
	}
	if err := kctx.Run(env); err != nil {
		log.Error(kctx.Command(), err, nil)
		return 1
	}
	return 0
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}
