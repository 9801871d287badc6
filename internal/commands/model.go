package commands

import (
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	teatable "github.com/evertras/bubble-table/table"
	"github.com/fbressa/nomes/internal/charts"
	"github.com/fbressa/nomes/internal/ibge"
)

// TUIModel is the main Bubble Tea model for the interactive TUI.
type TUIModel struct {
	client  ibge.Client
	opts    ibge.Options
	timeout time.Duration

	// Input
	queryInput textinput.Model

	// Mode
	mode QueryMode

	// Per-mode state (indexed by QueryMode)
	modeQueries   [3]string        // Query string for each mode
	modeStates    [3]TUIState      // State for each mode
	modeErrors    [3]error         // Errors for each mode
	modeDurations [3]time.Duration // Fetch duration for each mode

	// Results (already per-mode by nature)
	counts  []ibge.DecadeCount  // For lookups
	series  []ibge.NameSeries   // For comparisons
	entries []ibge.RankingEntry // For rankings

	// Queries that produced the current results, for empty-result messages
	lookupQuery  string
	compareQuery string

	// Rendered content
	chartContent       string
	legendEntries      []charts.LegendEntry
	legendTable        teatable.Model
	rankingTable       teatable.Model
	selectedIndex      int          // -1 means no selection
	highlightedIndices map[int]bool // pinned series indices for multi-series display

	// UI state
	width                int
	height               int
	focusedPane          FocusedPane
	insertMode           bool // true when editing the name (insert mode), false for normal mode
	spinner              spinner.Model
	legendFocused        bool
	showShortcutsOverlay bool
}

// NewTUIModel creates a new TUI model.
func NewTUIModel(client ibge.Client, opts ibge.Options, timeout time.Duration) TUIModel {
	ti := textinput.New()
	ti.Placeholder = "Enter a name (several names to compare)..."
	ti.Focus()
	ti.Width = 60

	return TUIModel{
		client:             client,
		opts:               opts,
		timeout:            timeout,
		queryInput:         ti,
		mode:               ModeLookup,
		modeStates:         [3]TUIState{StateInput, StateInput, StateInput},
		selectedIndex:      -1,
		highlightedIndices: make(map[int]bool),
		focusedPane:        PaneQuery,
		insertMode:         true, // Start in insert mode so users can immediately type
		spinner:            NewLoadingSpinner(),
	}
}

// Helper methods for accessing current mode's state
func (m TUIModel) currentState() TUIState {
	return m.modeStates[m.mode]
}

func (m TUIModel) currentError() error {
	return m.modeErrors[m.mode]
}

func (m TUIModel) currentDuration() time.Duration {
	return m.modeDurations[m.mode]
}

// applyResultCommon applies common result handling for all query result handlers.
func (m TUIModel) applyResultCommon(mode QueryMode, err error, duration time.Duration) TUIModel {
	m.modeErrors[mode] = err
	m.modeDurations[mode] = duration
	m.queryInput.Blur()
	m.insertMode = false
	m.focusedPane = PaneQuery
	return m
}

// formatDuration formats a duration with appropriate precision.
func formatDuration(d time.Duration) string {
	if d < time.Millisecond {
		return fmt.Sprintf("%dµs", d.Microseconds())
	}
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}
	return fmt.Sprintf("%.1fs", d.Seconds())
}

func (m TUIModel) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.spinner.Tick,
	)
}
