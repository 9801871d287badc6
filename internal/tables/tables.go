package tables

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/evertras/bubble-table/table"
	"github.com/fbressa/nomes/internal/ibge"
)

type Model struct {
	table           table.Model
	filterTextInput textinput.Model
}

// Decades builds an interactive table of decade/count rows.
func Decades(counts []ibge.DecadeCount) (Model, error) {
	return decadesModel(counts)
}

func decadesModel(counts []ibge.DecadeCount) (Model, error) {
	var maxCount int64
	rows := make([]table.Row, 0, len(counts))
	for _, count := range counts {
		if count.Count > maxCount {
			maxCount = count.Count
		}
		rows = append(rows, table.NewRow(table.RowData{
			"decade": count.Label(),
			"count":  strconv.FormatInt(count.Count, 10),
		}))
	}

	columns := []table.Column{
		table.NewColumn("decade", "Decade", 8).WithFiltered(true),
		table.NewColumn("count", "Count", max(len(strconv.FormatInt(maxCount, 10))+1, 6)).WithFiltered(true),
	}

	return newModel(columns, rows), nil
}

// Ranking builds an interactive table of the most frequent names.
func Ranking(entries []ibge.RankingEntry) (Model, error) {
	var maxCount int64
	longestName := 0
	rows := make([]table.Row, 0, len(entries))
	for _, entry := range entries {
		if entry.Count > maxCount {
			maxCount = entry.Count
		}
		if len(entry.Name) > longestName {
			longestName = len(entry.Name)
		}
		rows = append(rows, table.NewRow(table.RowData{
			"rank":  strconv.Itoa(entry.Rank),
			"name":  entry.Name,
			"count": strconv.FormatInt(entry.Count, 10),
		}))
	}

	columns := []table.Column{
		table.NewColumn("rank", "Rank", 6),
		table.NewColumn("name", "Name", max(longestName+1, 6)).WithFiltered(true),
		table.NewColumn("count", "Count", max(len(strconv.FormatInt(maxCount, 10))+1, 6)).WithFiltered(true),
	}

	return newModel(columns, rows), nil
}

func newModel(columns []table.Column, rows []table.Row) Model {
	return Model{
		table: table.
			New(columns).
			Filtered(true).
			Focused(true).
			WithFooterVisibility(true).
			WithPageSize(10).
			WithRows(rows),
		filterTextInput: textinput.New(),
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var (
		cmd  tea.Cmd
		cmds []tea.Cmd
	)

	switch msg := msg.(type) {
	case tea.KeyMsg:
		// global
		if msg.String() == "ctrl+c" {
			cmds = append(cmds, tea.Quit)

			return m, tea.Batch(cmds...)
		}
		// event to filter
		if m.filterTextInput.Focused() {
			if msg.String() == "enter" {
				m.filterTextInput.Blur()
			} else {
				m.filterTextInput, _ = m.filterTextInput.Update(msg)
			}
			m.table = m.table.WithFilterInput(m.filterTextInput)

			return m, tea.Batch(cmds...)
		}

		// others component
		switch msg.String() {
		case "/":
			m.filterTextInput.Focus()
		case "q":
			cmds = append(cmds, tea.Quit)
			return m, tea.Batch(cmds...)
		default:
			m.table, cmd = m.table.Update(msg)
			cmds = append(cmds, cmd)
		}
	}

	return m, tea.Batch(cmds...)
}

func (m Model) View() string {
	body := strings.Builder{}

	body.WriteString(m.table.View())
	body.WriteString("\nPress / + letters to start filtering, and q or ctrl+c to quit")

	return body.String()
}
