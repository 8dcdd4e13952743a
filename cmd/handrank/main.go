package main

import (
	"github.com/alecthomas/kong"

	"github.com/lox/handrank/internal/config"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Globals

	Version kong.VersionFlag `short:"v" help:"Show version"`
	Eval    EvalCmd          `cmd:"" help:"Evaluate one or more seven-card hands"`
	Compare CompareCmd       `cmd:"" help:"Compare two seven-card hands"`
	Quiz    QuizCmd          `cmd:"" help:"Guess which of two random hands wins"`
	Bench   BenchCmd         `cmd:"" help:"Evaluate and sort random hands to measure throughput"`
	Tables  TablesCmd        `cmd:"" help:"Build the lookup tables and report their statistics"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("handrank"),
		kong.Description("Constant-time seven-card poker hand evaluator"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultFile,
		},
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
