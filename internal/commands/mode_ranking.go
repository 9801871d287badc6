package commands

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RankingMode shows the most frequent names of the census.
type RankingMode struct{}

func (RankingMode) Name() string {
	return "ranking"
}

func (RankingMode) HandleInteractiveToggle(m *TUIModel) tea.Cmd {
	if len(m.entries) == 0 {
		return nil
	}

	m.legendFocused = !m.legendFocused
	if m.legendFocused {
		m.focusedPane = PaneLegend
		m.queryInput.Blur()
		m.rankingTable = m.rankingTable.Focused(true)
	} else {
		m.focusedPane = PaneQuery
		// Stay in normal mode - don't focus query input
		m.rankingTable = m.rankingTable.Focused(false)
	}
	return nil
}

func (RankingMode) HandleLegendKey(m *TUIModel, msg tea.KeyMsg) tea.Cmd {
	key := msg.String()

	switch key {
	case "q":
		return tea.Quit
	case "i", "esc":
		// Exit interactive mode
		m.legendFocused = false
		m.focusedPane = PaneQuery
		m.rankingTable = m.rankingTable.Focused(false)
		return nil
	}

	// Handle table navigation
	var tableCmd tea.Cmd
	switch key {
	case "j":
		m.rankingTable, tableCmd = m.rankingTable.Update(tea.KeyMsg{Type: tea.KeyDown})
	case "k":
		m.rankingTable, tableCmd = m.rankingTable.Update(tea.KeyMsg{Type: tea.KeyUp})
	case "h":
		m.rankingTable, tableCmd = m.rankingTable.Update(tea.KeyMsg{Type: tea.KeyPgUp})
	case "l":
		m.rankingTable, tableCmd = m.rankingTable.Update(tea.KeyMsg{Type: tea.KeyPgDown})
	default:
		m.rankingTable, tableCmd = m.rankingTable.Update(msg)
	}
	return tableCmd
}

func (RankingMode) ExecuteQuery(m *TUIModel) tea.Cmd {
	return m.executeRankingQuery()
}

func (RankingMode) RenderStatusParams(m *TUIModel) string {
	return fmt.Sprintf("   Top: %d", RankingDefaultLimit)
}

func (RankingMode) RenderResultsContent(m *TUIModel) string {
	var s strings.Builder

	tableStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("63")).
		Padding(0, 1)

	if m.legendFocused {
		tableStyle = tableStyle.BorderForeground(lipgloss.Color("205"))
	}

	s.WriteString(tableStyle.Render(m.rankingTable.View()))
	s.WriteString("\n")
	return s.String()
}

func (RankingMode) RenderResultsStatusBar(m *TUIModel) string {
	if len(m.entries) > 0 {
		return fmt.Sprintf(" | Names: %d", len(m.entries))
	}
	return ""
}

func (RankingMode) OnSwitchTo(m *TUIModel) {
	if m.currentState() == StateResults {
		*m = m.renderRankingTable()
	}
}
