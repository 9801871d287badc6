package commands

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LookupMode handles single-name lookups.
type LookupMode struct{}

func (LookupMode) Name() string {
	return "lookup"
}

func (LookupMode) HandleInteractiveToggle(m *TUIModel) tea.Cmd {
	// Lookup mode has no interactive elements
	return nil
}

func (LookupMode) HandleLegendKey(m *TUIModel, msg tea.KeyMsg) tea.Cmd {
	// Lookup mode has no legend/table navigation
	return nil
}

func (LookupMode) ExecuteQuery(m *TUIModel) tea.Cmd {
	return m.executeLookupQuery()
}

func (LookupMode) RenderStatusParams(m *TUIModel) string {
	// No additional params for lookup mode
	return ""
}

func (LookupMode) RenderResultsContent(m *TUIModel) string {
	var s strings.Builder

	chartStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	if m.focusedPane == PaneResults {
		chartStyle = chartStyle.BorderForeground(lipgloss.Color("205"))
	}

	s.WriteString(chartStyle.Render(m.chartContent))
	s.WriteString("\n")
	s.WriteString(GuidanceStyle.Render(guidanceText))
	return s.String()
}

func (LookupMode) RenderResultsStatusBar(m *TUIModel) string {
	// No additional status bar content for lookup mode
	return ""
}

func (LookupMode) OnSwitchTo(m *TUIModel) {
	if m.currentState() == StateResults {
		*m = m.renderLookupChart()
	}
}
