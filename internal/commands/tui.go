package commands

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fbressa/nomes/internal/ibge"
)

// TUICmd is the Kong command for the interactive TUI mode.
type TUICmd struct {
	Sex      string `name:"sex" help:"Filter by sex." enum:",M,F" default:""`
	Locality string `name:"locality" help:"Filter by IBGE locality code."`
}

// Run starts the interactive TUI.
func (t *TUICmd) Run(ctx *Context) error {
	client, err := ibge.NewClient(ctx.APIURL)
	if err != nil {
		return err
	}

	opts := ibge.Options{Sex: t.Sex, Locality: t.Locality}
	model := NewTUIModel(client, opts, ctx.Timeout)
	p := tea.NewProgram(model, tea.WithAltScreen())

	_, err = p.Run()
	return err
}
