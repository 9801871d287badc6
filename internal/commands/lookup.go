package commands

import (
	"errors"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fbressa/nomes/internal/ibge"
)

type LookupCmd struct {
	Name     string `arg:"" name:"name" help:"Name to look up." required:"true"`
	Sex      string `name:"sex" help:"Filter by sex." enum:",M,F" default:""`
	Locality string `name:"locality" help:"Filter by IBGE locality code."`
	Output   string `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,table,json,yaml"`
}

func (l *LookupCmd) Run(ctx *Context) error {
	if strings.TrimSpace(l.Name) == "" {
		// The fetch is never attempted for a blank name.
		return errors.New("enter a name to look up")
	}

	client, err := ibge.NewClient(ctx.APIURL)
	if err != nil {
		return err
	}

	opts := ibge.Options{Sex: l.Sex, Locality: l.Locality}
	lookupModel := NewLookupModel(client, l.Name, opts, l.Output, ctx.Timeout)

	p := tea.NewProgram(lookupModel)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	// Extract the final model to check for errors. An empty result is not a
	// failure: the model already showed the guidance text.
	if lm, ok := finalModel.(LookupModel); ok {
		if lm.err != nil && !errors.Is(lm.err, ibge.ErrNoData) {
			return lm.err
		}
	}

	return nil
}

func formatCounts(name string, counts []ibge.DecadeCount, err error) map[string]any {
	data := make([]map[string]any, 0)
	for _, count := range counts {
		data = append(data, map[string]any{
			"decade": count.Decade,
			"count":  count.Count,
		})
	}

	if err != nil {
		return map[string]any{
			"name":    name,
			"decades": data,
			"error":   err.Error(),
		}
	}
	return map[string]any{
		"name":    name,
		"decades": data,
		"error":   nil,
	}
}
