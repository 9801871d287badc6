package commands

import (
	"errors"
	"strings"
	"unicode"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fbressa/nomes/internal/ibge"
)

type CompareCmd struct {
	Names    []string `arg:"" name:"names" help:"Names to compare." required:"true"`
	Sex      string   `name:"sex" help:"Filter by sex." enum:",M,F" default:""`
	Locality string   `name:"locality" help:"Filter by IBGE locality code."`
	Output   string   `name:"output" short:"o" help:"Output format." default:"graph" enum:"graph,json,yaml"`
}

func (c *CompareCmd) Run(ctx *Context) error {
	names := make([]string, 0, len(c.Names))
	for _, name := range c.Names {
		if strings.TrimSpace(name) != "" {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return errors.New("enter at least one name to compare")
	}

	client, err := ibge.NewClient(ctx.APIURL)
	if err != nil {
		return err
	}

	opts := ibge.Options{Sex: c.Sex, Locality: c.Locality}
	compareModel := NewCompareModel(client, names, opts, c.Output, ctx.Timeout)

	p := tea.NewProgram(compareModel)
	finalModel, err := p.Run()
	if err != nil {
		return err
	}

	if cm, ok := finalModel.(CompareModel); ok {
		if cm.err != nil && !errors.Is(cm.err, ibge.ErrNoData) {
			return cm.err
		}
	}

	return nil
}

// parseNames splits a free-form compare input on commas, pipes, and whitespace.
func parseNames(input string) []string {
	return strings.FieldsFunc(input, func(r rune) bool {
		return r == ',' || r == '|' || unicode.IsSpace(r)
	})
}

func formatSeries(series []ibge.NameSeries, err error) map[string]any {
	data := make([]map[string]any, 0)
	for _, s := range series {
		decades := make([]map[string]any, 0)
		for _, count := range s.Decades {
			decades = append(decades, map[string]any{
				"decade": count.Decade,
				"count":  count.Count,
			})
		}
		data = append(data, map[string]any{
			"name":    s.Name,
			"decades": decades,
		})
	}

	if err != nil {
		return map[string]any{
			"data":  data,
			"error": err.Error(),
		}
	}
	return map[string]any{
		"data":  data,
		"error": nil,
	}
}
