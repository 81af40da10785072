package main

import (
	"os"

	"github.com/i2cjak/durrrrrenv/internal/cli"
	"github.com/i2cjak/durrrrrenv/internal/cmdexec"
)

func main() {
	app := &cli.App{
		Commander: &cmdexec.RealCommander{},
		Prompter:  &cli.HuhPrompter{},
	}
	if err := app.NewRootCmd().Execute(); err != nil {
		os.Exit(int(cli.MapExitCode(err)))
	}
}
