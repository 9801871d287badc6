package commands

import (
	"os"

	"github.com/charmbracelet/lipgloss"
	teatable "github.com/evertras/bubble-table/table"
	"github.com/fbressa/nomes/internal/charts"
	"golang.org/x/term"
)

func (m TUIModel) renderLookupChart() TUIModel {
	width := m.getChartWidth()
	m.chartContent = charts.Barchart(m.counts, width)
	return m
}

func (m TUIModel) renderCompareChart() TUIModel {
	width := m.getChartWidth()
	m.chartContent, m.legendEntries = charts.DecadeSplitWithSelection(m.series, width, m.selectedIndex, m.highlightedIndices)
	m = m.createLegendTable()
	return m
}

func (m TUIModel) renderRankingTable() TUIModel {
	if len(m.entries) == 0 {
		return m
	}

	longestName := len("Name")
	maxCountWidth := len("Count")
	for _, entry := range m.entries {
		if len(entry.Name) > longestName {
			longestName = len(entry.Name)
		}
		if w := len(formatCount(entry.Count)); w > maxCountWidth {
			maxCountWidth = w
		}
	}
	if longestName > 40 {
		longestName = 40
	}

	columns := []teatable.Column{
		teatable.NewColumn("rank", "Rank", 6),
		teatable.NewColumn("name", "Name", longestName+1),
		teatable.NewColumn("count", "Count", maxCountWidth+1),
	}

	rows := make([]teatable.Row, 0, len(m.entries))
	for _, entry := range m.entries {
		rows = append(rows, teatable.NewRow(teatable.RowData{
			"rank":  entry.Rank,
			"name":  entry.Name,
			"count": formatCount(entry.Count),
		}))
	}

	m.rankingTable = teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(RankingPageSize).
		Focused(m.legendFocused).
		WithBaseStyle(lipgloss.NewStyle())

	return m
}

func (m TUIModel) regenerateCompareChart() TUIModel {
	width := m.getChartWidth()
	m.chartContent, _ = charts.DecadeSplitWithSelection(m.series, width, m.selectedIndex, m.highlightedIndices)
	return m
}

func (m TUIModel) getChartWidth() int {
	width := m.width - ChartWidthPadding
	if width <= 0 {
		termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
		if err == nil && termWidth > 0 {
			width = termWidth - ChartWidthPadding
		} else {
			width = DefaultTerminalWidth - ChartWidthPadding
		}
	}
	return width
}

func (m TUIModel) getTerminalWidth() int {
	if m.width > 0 {
		return m.width
	}
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err == nil && termWidth > 0 {
		return termWidth
	}
	return DefaultTerminalWidth
}

func (m TUIModel) createLegendTable() TUIModel {
	if len(m.legendEntries) == 0 {
		return m
	}

	rows := make([]teatable.Row, 0, len(m.legendEntries))
	longestName := 0

	for i, entry := range m.legendEntries {
		if len(entry.Name) > longestName {
			longestName = len(entry.Name)
		}

		style := charts.SeriesStyle(entry.ColorIndex)
		colorIndicator := style.Render("█")

		pin := ""
		if m.highlightedIndices[i] {
			pin = "*"
		}

		rows = append(rows, teatable.NewRow(teatable.RowData{
			"color": colorIndicator,
			"pin":   pin,
			"name":  entry.Name,
		}))
	}

	columns := []teatable.Column{
		teatable.NewColumn("color", "", 3),
		teatable.NewColumn("pin", "", 3),
		teatable.NewColumn("name", "Name", max(longestName, 20)),
	}

	m.legendTable = teatable.
		New(columns).
		WithRows(rows).
		WithPageSize(LegendMaxRows).
		Focused(m.legendFocused)

	return m
}

func (m TUIModel) updateSelectedFromLegendTable() TUIModel {
	highlightedRow := m.legendTable.HighlightedRow()
	if highlightedRow.Data == nil {
		m.selectedIndex = -1
		return m
	}

	name, ok := highlightedRow.Data["name"].(string)
	if !ok {
		m.selectedIndex = -1
		return m
	}

	for i, entry := range m.legendEntries {
		if entry.Name == name {
			m.selectedIndex = i
			return m
		}
	}

	m.selectedIndex = -1
	return m
}
