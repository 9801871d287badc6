package main

import (
	"github.com/alecthomas/kong"
	"github.com/fbressa/nomes/internal/commands"
)

func main() {
	var cli commands.CLI
	ctx := kong.Parse(&cli,
		kong.Name("nomes"),
		kong.Description("Terminal-native viewer for Brazilian name popularity, backed by the IBGE census names API."),
	)
	err := ctx.Run(&commands.Context{Timeout: cli.Timeout, APIURL: cli.APIURL})
	ctx.FatalIfErrorf(err)
}
