package commands

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/fbressa/nomes/internal/charts"
	"github.com/fbressa/nomes/internal/ibge"
	"github.com/fbressa/nomes/internal/tables"
	"golang.org/x/term"
	"gopkg.in/yaml.v2"
)

type lookupState int

const (
	stateLoading lookupState = iota
	stateSuccess
	stateNoData
	stateError
	stateShowingTable
)

type lookupResultMsg struct {
	counts []ibge.DecadeCount
	err    error
}

type LookupModel struct {
	client       ibge.Client
	name         string
	opts         ibge.Options
	timeout      time.Duration
	output       string
	state        lookupState
	spinner      spinner.Model
	counts       []ibge.DecadeCount
	err          error
	width        int
	height       int
	tableModel   *tables.Model
	chartContent string
	quitting     bool
}

func NewLookupModel(client ibge.Client, name string, opts ibge.Options, output string, timeout time.Duration) LookupModel {
	return LookupModel{
		client:  client,
		name:    name,
		opts:    opts,
		timeout: timeout,
		output:  output,
		state:   stateLoading,
		spinner: NewLoadingSpinner(),
	}
}

func (m LookupModel) Init() tea.Cmd {
	return tea.Batch(
		m.spinner.Tick,
		m.executeLookup(),
	)
}

func (m LookupModel) executeLookup() tea.Cmd {
	return func() tea.Msg {
		counts, err := m.client.Frequencies(m.name, m.opts, m.timeout)
		return lookupResultMsg{
			counts: counts,
			err:    err,
		}
	}
}

func (m LookupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		return m.handleWindowSize(msg), nil
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)
	case lookupResultMsg:
		return m.handleLookupResult(msg)
	case spinner.TickMsg:
		return m.handleSpinnerTick(msg)
	}

	// Update table if we're showing it
	if m.state == stateShowingTable && m.tableModel != nil {
		return m.updateTableModel(msg)
	}

	return m, nil
}

func (m LookupModel) handleWindowSize(msg tea.WindowSizeMsg) LookupModel {
	m.width = msg.Width
	m.height = msg.Height
	return m
}

func (m LookupModel) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.state == stateShowingTable && m.tableModel != nil {
		// Let the table handle the key if we're in table mode
		if msg.String() != "q" && msg.String() != "ctrl+c" {
			updated, cmd := m.tableModel.Update(msg)
			if tableModel, ok := updated.(tables.Model); ok {
				*m.tableModel = tableModel
				return m, cmd
			}
		}
	}

	if msg.String() == "q" || msg.String() == "ctrl+c" {
		m.quitting = true
		return m, tea.Quit
	}

	return m, nil
}

func (m LookupModel) handleLookupResult(msg lookupResultMsg) (tea.Model, tea.Cmd) {
	m.counts = msg.counts
	m.err = msg.err

	if m.err != nil {
		if errors.Is(m.err, ibge.ErrNoData) {
			m.state = stateNoData
		} else {
			m.state = stateError
		}
		return m, tea.Quit
	}

	return m.handleOutputFormat()
}

func (m LookupModel) handleOutputFormat() (tea.Model, tea.Cmd) {
	switch m.output {
	case "graph":
		return m.handleGraphOutput()
	case "table":
		return m.handleTableOutput()
	default:
		// For json/yaml, we'll just transition to success state
		m.state = stateSuccess
		return m, tea.Quit
	}
}

func (m LookupModel) handleGraphOutput() (tea.Model, tea.Cmd) {
	m.state = stateSuccess
	width := m.width
	if width == 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil {
			width = termWidth
		} else {
			width = DefaultTerminalWidth
		}
	}
	m.chartContent = charts.Barchart(m.counts, width)
	return m, nil
}

func (m LookupModel) handleTableOutput() (tea.Model, tea.Cmd) {
	tableModel, err := tables.Decades(m.counts)
	if err != nil {
		m.err = err
		m.state = stateError
		return m, tea.Quit
	}
	m.tableModel = &tableModel
	m.state = stateShowingTable
	return m, m.tableModel.Init()
}

func (m LookupModel) handleSpinnerTick(msg spinner.TickMsg) (tea.Model, tea.Cmd) {
	if m.state == stateLoading {
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m LookupModel) updateTableModel(msg tea.Msg) (tea.Model, tea.Cmd) {
	updated, cmd := m.tableModel.Update(msg)
	if tableModel, ok := updated.(tables.Model); ok {
		*m.tableModel = tableModel
		return m, cmd
	}
	return m, nil
}

func (m LookupModel) View() string {
	var s strings.Builder

	switch m.state {
	case stateLoading:
		s.WriteString(fmt.Sprintf("\n%s Looking up: %s\n\n", m.spinner.View(), m.name))

	case stateError:
		s.WriteString("\n")
		s.WriteString(ErrorStyle.Render("Error: ") + m.err.Error() + "\n")

	case stateNoData:
		s.WriteString("\n")
		s.WriteString(WarningStyle.Render(noDataMessage(m.name)) + "\n")

	case stateSuccess:
		switch m.output {
		case "graph":
			s.WriteString(m.chartContent)
			s.WriteString("\n")
			s.WriteString(GuidanceStyle.Render(guidanceText))
			if !m.quitting {
				s.WriteString("\n\n")
				s.WriteString("Press q or ctrl+c to quit\n")
			} else {
				s.WriteString("\n")
			}
		case "json":
			output := formatCounts(m.name, m.counts, m.err)
			jsonBytes, err := json.MarshalIndent(output, "", "  ")
			if err != nil {
				s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error formatting JSON: %v\n", err)))
			} else {
				s.Write(jsonBytes)
				s.WriteString("\n")
			}
		case "yaml":
			output := formatCounts(m.name, m.counts, m.err)
			yamlBytes, err := yaml.Marshal(output)
			if err != nil {
				s.WriteString(ErrorStyle.Render(fmt.Sprintf("Error formatting YAML: %v\n", err)))
			} else {
				s.Write(yamlBytes)
				s.WriteString("\n")
			}
		}

	case stateShowingTable:
		if m.tableModel != nil && !m.quitting {
			s.WriteString(m.tableModel.View())
			s.WriteString("\n")
			s.WriteString(GuidanceStyle.Render(guidanceText))
		}
	}

	return s.String()
}

// GetResult returns the final result for non-interactive outputs
func (m LookupModel) GetResult() (counts []ibge.DecadeCount, err error) {
	return m.counts, m.err
}
