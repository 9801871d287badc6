package commands

import (
	"time"

	"github.com/fbressa/nomes/internal/ibge"
)

// QueryMode represents which kind of lookup the TUI is performing.
type QueryMode int

const (
	ModeLookup QueryMode = iota
	ModeCompare
	ModeRanking
)

func (m QueryMode) String() string {
	switch m {
	case ModeLookup:
		return "lookup"
	case ModeCompare:
		return "compare"
	case ModeRanking:
		return "ranking"
	default:
		return "Unknown"
	}
}

// TUIState represents the current state of the TUI.
type TUIState int

const (
	StateInput TUIState = iota
	StateLoading
	StateResults
	StateNoData
	StateError
)

// FocusedPane tracks which pane has focus.
type FocusedPane int

const (
	PaneQuery FocusedPane = iota
	PaneResults
	PaneLegend
)

// tuiLookupResultMsg carries the result of a single-name lookup.
type tuiLookupResultMsg struct {
	query    string
	counts   []ibge.DecadeCount
	err      error
	duration time.Duration
}

// tuiCompareResultMsg carries the result of a grouped-name comparison.
type tuiCompareResultMsg struct {
	query    string
	series   []ibge.NameSeries
	err      error
	duration time.Duration
}

// tuiRankingResultMsg carries the result of a ranking fetch.
type tuiRankingResultMsg struct {
	entries  []ibge.RankingEntry
	err      error
	duration time.Duration
}
