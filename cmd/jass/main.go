package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Config   string           `short:"c" default:"jass.hcl" help:"Path to HCL configuration file"`
	Play     PlayCmd          `cmd:"" default:"1" help:"Play against three bots in the terminal"`
	Simulate SimulateCmd      `cmd:"" help:"Run bot-only games and report statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("jass"),
		kong.Description("Jass card game for the terminal, with bots"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
