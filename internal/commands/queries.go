package commands

import (
	"errors"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/fbressa/nomes/internal/ibge"
)

func (m TUIModel) executeQuery() (tea.Model, tea.Cmd) {
	// Save query for this mode
	m.modeQueries[m.mode] = m.queryInput.Value()
	m.modeStates[m.mode] = StateLoading
	m.modeErrors[m.mode] = nil
	m.queryInput.Blur()

	cmd := m.currentMode().ExecuteQuery(&m)
	return m, cmd
}

func (m TUIModel) executeLookupQuery() tea.Cmd {
	name := m.queryInput.Value()
	return func() tea.Msg {
		start := time.Now()
		counts, err := m.client.Frequencies(name, m.opts, m.timeout)
		duration := time.Since(start)
		return tuiLookupResultMsg{
			query:    name,
			counts:   counts,
			err:      err,
			duration: duration,
		}
	}
}

func (m TUIModel) executeCompareQuery() tea.Cmd {
	query := m.queryInput.Value()
	return func() tea.Msg {
		start := time.Now()
		series, err := m.client.Compare(parseNames(query), m.opts, m.timeout)
		duration := time.Since(start)
		return tuiCompareResultMsg{
			query:    query,
			series:   series,
			err:      err,
			duration: duration,
		}
	}
}

func (m TUIModel) executeRankingQuery() tea.Cmd {
	return func() tea.Msg {
		start := time.Now()
		entries, err := m.client.Ranking(m.opts, RankingDefaultLimit, m.timeout)
		duration := time.Since(start)
		return tuiRankingResultMsg{
			entries:  entries,
			err:      err,
			duration: duration,
		}
	}
}

// resultState maps a fetch error onto the state the mode should land in.
func resultState(err error) TUIState {
	switch {
	case err == nil:
		return StateResults
	case errors.Is(err, ibge.ErrNoData):
		return StateNoData
	default:
		return StateError
	}
}

func (m TUIModel) handleLookupResult(msg tuiLookupResultMsg) (tea.Model, tea.Cmd) {
	m = m.applyResultCommon(ModeLookup, msg.err, msg.duration)
	m.counts = msg.counts
	m.lookupQuery = msg.query

	m.modeStates[ModeLookup] = resultState(msg.err)
	if m.modeStates[ModeLookup] == StateResults {
		m = m.renderLookupChart()
	}
	return m, nil
}

func (m TUIModel) handleCompareResult(msg tuiCompareResultMsg) (tea.Model, tea.Cmd) {
	m = m.applyResultCommon(ModeCompare, msg.err, msg.duration)
	m.series = msg.series
	m.compareQuery = msg.query

	m.modeStates[ModeCompare] = resultState(msg.err)
	if m.modeStates[ModeCompare] == StateResults {
		m.selectedIndex = -1
		m.highlightedIndices = make(map[int]bool)
		m = m.renderCompareChart()
	}
	return m, nil
}

func (m TUIModel) handleRankingResult(msg tuiRankingResultMsg) (tea.Model, tea.Cmd) {
	m = m.applyResultCommon(ModeRanking, msg.err, msg.duration)
	m.entries = msg.entries

	m.modeStates[ModeRanking] = resultState(msg.err)
	if m.modeStates[ModeRanking] == StateResults {
		m = m.renderRankingTable()
	}
	return m, nil
}
