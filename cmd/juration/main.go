package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/nmeilick/juration/common"
	"github.com/nmeilick/juration/convert"
	"github.com/nmeilick/juration/server"
	"github.com/nmeilick/juration/setup"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:    common.AppName,
		Usage:   "Convert between seconds and Norwegian durations",
		Version: common.Version,
		Commands: []*cli.Command{
			convert.ParseCommand(),
			convert.StringifyCommand(),
			convert.UnitsCommand(),
			server.Commands(),
			setup.Commands(),
		},
	}

	// Check if we're being called via a symlink (jparse, jhumanize)
	var single *cli.Command
	switch execName := filepath.Base(os.Args[0]); {
	case strings.HasSuffix(execName, "parse"):
		single = convert.ParseCommand()
	case strings.HasSuffix(execName, "humanize"), strings.HasSuffix(execName, "stringify"):
		single = convert.StringifyCommand()
	}
	if single != nil {
		app.Name = filepath.Base(os.Args[0])
		app.Usage = single.Usage
		app.Commands = nil
		app.Flags = single.Flags
		app.Action = single.Action
	}

	if err := app.Run(os.Args); err != nil {
		common.ExitWithError(err)
	}
}
