package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/fbressa/nomes/internal/charts"
	"github.com/fbressa/nomes/internal/ibge"
	"gopkg.in/yaml.v2"
)

type compareState int

const (
	stateCompareLoading compareState = iota
	stateCompareSuccess
	stateCompareNoData
	stateCompareError
)

type compareResultMsg struct {
	series []ibge.NameSeries
	err    error
}

type CompareModel struct {
	client        ibge.Client
	names         []string
	opts          ibge.Options
	timeout       time.Duration
	output        string
	state         compareState
	spinner       spinner.Model
	series        []ibge.NameSeries
	err           error
	width         int
	height        int
	chartContent  string
	legendEntries []charts.LegendEntry
	quitting      bool
}

func NewCompareModel(client ibge.Client, names []string, opts ibge.Options, output string, timeout time.Duration) CompareModel {
	return CompareModel{
		client:  client,
		names:   names,
		opts:    opts,
		timeout: timeout,
		output:  output,
		state:   stateCompareLoading,
		spinner: NewLoadingSpinner(),
	}
}

func (m CompareModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.executeCompare(),
	)
}

func (m CompareModel) executeCompare() tea.Cmd {
	return func() tea.Msg {
		series, err := m.client.Compare(m.names, m.opts, m.timeout)
		return compareResultMsg{
			series: series,
			err:    err,
		}
	}
}

func (m CompareModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleCompareWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleCompareKeyMsg(msg)
	case compareResultMsg:
		return m.handleCompareResult(msg)
	case spinner.TickMsg:
		return m.handleCompareSpinnerTick(msg)
	}

	return m, nil
}

func (m CompareModel) handleCompareWindowSize(msg tea.WindowSizeMsg) CompareModel {
	m.width = msg.Width
	m.height = msg.Height
	return m
}

func (m CompareModel) handleCompareKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "q" || msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

func (m CompareModel) handleCompareResult(msg compareResultMsg) (tea.Model, tea.Cmd) {
	m.series = msg.series
	m.err = msg.err

	if m.err != nil {
		if errors.Is(m.err, ibge.ErrNoData) {
			m.state = stateCompareNoData
		} else {
			m.state = stateCompareError
		}
		return m, tea.Quit
	}

	return m.handleCompareOutputFormat()
}

func (m CompareModel) handleCompareOutputFormat() (tea.Model, tea.Cmd) {
	switch m.output {
	case "graph":
		return m.handleCompareGraphOutput()
	default:
		// For json/yaml, we'll just transition to success state
		m.state = stateCompareSuccess
		return m, tea.Quit
	}
}

func (m CompareModel) handleCompareGraphOutput() (tea.Model, tea.Cmd) {
	m.state = stateCompareSuccess
	chartWidth := m.width - ChartWidthPadding
	if chartWidth <= 0 {
		chartWidth = DefaultTerminalWidth - ChartWidthPadding
	}
	m.chartContent, m.legendEntries = charts.DecadeSplit(m.series, chartWidth)
	return m, nil
}

func (m CompareModel) handleCompareSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.state == stateCompareLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m CompareModel) View() string {
	var s strings.Builder

	switch m.state {
	case stateCompareLoading:
		s.WriteString(fmt.Sprintf("\n%s Comparing: %s\n\n", m.spinner.View(), strings.Join(m.names, ", ")))

	case stateCompareError:
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render("Error: ") + m.err.Error() + "\n")

	case stateCompareNoData:
		s.WriteString("\n")
		s.WriteString(WarningStyle.Render(noDataMessage(strings.Join(m.names, ", "))) + "\n")

	case stateCompareSuccess:
		switch m.output {
		case "graph":
			chartStyle := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1)

			legendStyle := lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(lipgloss.Color("63")).
				Padding(0, 1).
				MarginTop(1)

			var legendBuilder strings.Builder
			legendBuilder.WriteString("Legend:")
			for _, entry := range m.legendEntries {
				legendBuilder.WriteString("\n")
				legendBuilder.WriteString(charts.SeriesStyle(entry.ColorIndex).Render("█ " + entry.Name))
			}

			layout := lipgloss.JoinVertical(
				lipgloss.Bottom,
				chartStyle.Render(m.chartContent),
				legendStyle.Render(legendBuilder.String()),
			)

			s.WriteString("\n")
			s.WriteString(layout)
			s.WriteString("\n")
			s.WriteString(GuidanceStyle.Render(guidanceText))
			if !m.quitting {
				s.WriteString("\n\n")
				s.WriteString("Press q or ctrl+c to quit\n")
			} else {
				s.WriteString("\n")
			}
		case "json":
			output := formatSeries(m.series, m.err)
			jsonBytes, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error formatting JSON: %v\n", err)))
			} else {
				s.Write(jsonBytes)
				s.WriteString("\n")
			}
		case "yaml":
			output := formatSeries(m.series, m.err)
			yamlBytes, err := yaml.Marshal(output)
			if err != nil {
				s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error formatting YAML: %v\n", err)))
			} else {
				s.Write(yamlBytes)
				s.WriteString("\n")
			}
		}
	}

	return s.String()
}

// GetResult returns the final result for non-interactive outputs
func (m CompareModel) GetResult() (series []ibge.NameSeries, err error) {
	return m.series, m.err
}
