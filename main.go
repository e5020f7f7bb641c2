package main

import (
	"os"

	"github.com/alecthomas/kong"
	"github.com/posener/complete"
	"github.com/willabides/kongplete"

	"github.com/hangxie/csv-browser/cmd"
)

var cli struct {
	View               cmd.ViewCmd                  `cmd:"" default:"withargs" help:"View a CSV with the built-in pager."`
	Tui                cmd.TUICmd                   `cmd:"" help:"View a CSV in the full-screen TUI."`
	InstallCompletions kongplete.InstallCompletions `cmd:"" help:"Install shell completions."`
}

func main() {
	parser := kong.Must(
		&cli,
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
		kong.Description("Interactive CSV viewer for the terminal, for full usage see https://github.com/hangxie/csv-browser/blob/main/README.md"),
	)
	kongplete.Complete(parser, kongplete.WithPredictor("file", complete.PredictFiles("*")))

	ctx, err := parser.Parse(os.Args[1:])
	parser.FatalIfErrorf(err)
	ctx.FatalIfErrorf(ctx.Run())
}
