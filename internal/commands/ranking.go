package commands

import (
	"encoding/json"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fbressa/nomes/internal/ibge"
	"github.com/fbressa/nomes/internal/tables"
	"gopkg.in/yaml.v2"
)

type RankingCmd struct {
	Sex      string `name:"sex" help:"Filter by sex." enum:",M,F" default:""`
	Locality string `name:"locality" help:"Filter by IBGE locality code."`
	Limit    int    `name:"limit" help:"Limit the number of names." default:"20"`
	Output   string `name:"output" short:"o" help:"Output format." default:"table" enum:"table,json,yaml"`
}

func (r *RankingCmd) Run(ctx *Context) error {
	client, err := ibge.NewClient(ctx.APIURL)
	if err != nil {
		return err
	}

	opts := ibge.Options{Sex: r.Sex, Locality: r.Locality}
	entries, err := client.Ranking(opts, r.Limit, ctx.Timeout)
	if err != nil {
		if errors.Is(err, ibge.ErrNoData) {
			fmt.Println("No Data")
			return nil
		}
		return err
	}

	switch r.Output {
	case "table":
		tableModel, err := tables.Ranking(entries)
		if err != nil {
			return err
		}
		p := tea.NewProgram(tableModel)
		_, err = p.Run()
		return err
	case "json":
		jsonBytes, err := json.MarshalIndent(entries, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling ranking to JSON: %w", err)
		}
		fmt.Println(string(jsonBytes))
	case "yaml":
		yamlBytes, err := yaml.Marshal(entries)
		if err != nil {
			return fmt.Errorf("marshalling ranking to YAML: %w", err)
		}
		fmt.Println(string(yamlBytes))
	}
	return nil
}
