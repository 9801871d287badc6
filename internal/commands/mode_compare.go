package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// CompareMode handles grouped-name comparisons.
type CompareMode struct{}

func (CompareMode) Name() string {
	return "compare"
}

func (CompareMode) HandleInteractiveToggle(m *TUIModel) tea.Cmd {
	if len(m.legendEntries) == 0 {
		return nil
	}

	m.legendFocused = !m.legendFocused
	if m.legendFocused {
		m.focusedPane = PaneLegend
		m.queryInput.Blur()
		m.legendTable = m.legendTable.Focused(true)
		// Select the first series and redraw chart immediately
		*m = m.updateSelectedFromLegendTable()
		*m = m.regenerateCompareChart()
	} else {
		m.focusedPane = PaneQuery
		// Stay in normal mode - don't focus query input
		m.legendTable = m.legendTable.Focused(false)
		m.selectedIndex = -1
		*m = m.regenerateCompareChart()
	}
	return nil
}

func (CompareMode) HandleLegendKey(m *TUIModel, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case "q":
		return tea.Quit
	case "i", "esc":
		// Exit interactive mode
		m.legendFocused = false
		m.focusedPane = PaneQuery
		m.legendTable = m.legendTable.Focused(false)
		m.selectedIndex = -1
		*m = m.regenerateCompareChart()
		return nil
	case " ":
		// Pin/unpin the selected series
		if m.selectedIndex >= 0 {
			if m.highlightedIndices[m.selectedIndex] {
				delete(m.highlightedIndices, m.selectedIndex)
			} else {
				m.highlightedIndices[m.selectedIndex] = true
			}
			*m = m.createLegendTable()
			*m = m.regenerateCompareChart()
		}
		return nil
	}

	// Handle legend navigation
	oldSelected := m.selectedIndex

	var tableCmd tea.Cmd
	switch key {
	case "j":
		m.legendTable, tableCmd = m.legendTable.Update(tea.KeyMsg{Type: tea.KeyDown})
	case "k":
		m.legendTable, tableCmd = m.legendTable.Update(tea.KeyMsg{Type: tea.KeyUp})
	case "h":
		m.legendTable, tableCmd = m.legendTable.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	case "l":
		m.legendTable, tableCmd = m.legendTable.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	default:
		m.legendTable, tableCmd = m.legendTable.Update(msg)
	}

	*m = m.updateSelectedFromLegendTable()

	if oldSelected != m.selectedIndex {
		*m = m.regenerateCompareChart()
	}

	return tableCmd
}

func (CompareMode) ExecuteQuery(m *TUIModel) tea.Cmd {
	return m.executeCompareQuery()
}

func (CompareMode) RenderStatusParams(m *TUIModel) string {
	if names := parseNames(m.queryInput.Value()); len(names) > 1 {
		return fmt.Sprintf("   Names: %d", len(names))
	}
	return ""
}

func (CompareMode) RenderResultsContent(m *TUIModel) string {
	var s strings.Builder

	// Chart
	chartStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	if m.focusedPane == PaneResults {
		chartStyle = chartStyle.BorderForeground(lipgloss.Color("205"))
	}

	s.WriteString(chartStyle.Render(m.chartContent))

	// Legend
	if len(m.legendEntries) > 0 {
		legendStyle := lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("63")).
			Padding(0, 1).
			MarginTop(1)

		if m.legendFocused {
			legendStyle = legendStyle.BorderForeground(lipgloss.Color("205"))
		}

		s.WriteString("\n")
		s.WriteString(legendStyle.Render(m.legendTable.View()))
	}
	return s.String()
}

func (CompareMode) RenderResultsStatusBar(m *TUIModel) string {
	if len(m.series) > 0 {
		return fmt.Sprintf(" | Names: %d", len(m.series))
	}
	return ""
}

func (CompareMode) OnSwitchTo(m *TUIModel) {
	if m.currentState() == StateResults {
		*m = m.renderCompareChart()
	}
}
