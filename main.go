package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/log"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version   kong.VersionFlag `short:"v" help:"Show version"`
	Debug     bool             `help:"Enable debug logging" env:"SHOWDOWN_DEBUG"`
	LogFormat string           `help:"Log output format" enum:"text,json,logfmt" default:"text" env:"SHOWDOWN_LOG_FORMAT"`

	Eval     EvalCmd     `cmd:"" help:"Find the best hand in a set of cards"`
	Compare  CompareCmd  `cmd:"" help:"Compare the best hands of two sets of cards"`
	Resolve  ResolveCmd  `cmd:"" help:"Settle a showdown between several players"`
	Simulate SimulateCmd `cmd:"" help:"Deal random hands and report how often each hand wins"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("showdown"),
		kong.Description("Poker hand evaluation and showdown resolution"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)

	logger := newLogger(cli.Debug, cli.LogFormat)
	err := ctx.Run(logger)
	ctx.FatalIfErrorf(err)
}

// newLogger builds the logger shared by every command
func newLogger(debug bool, format string) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}

	formatter := log.TextFormatter
	switch format {
	case "json":
		formatter = log.JSONFormatter
	case "logfmt":
		formatter = log.LogfmtFormatter
	}

	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
		Formatter:       formatter,
		Prefix:          "showdown",
	})
}
