package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/fbressa/nomes/internal/ibge"
)

func TestHandleEnterKey(t *testing.T) {
	newModel := func() TUIModel {
		return NewTUIModel(&ibge.MockClient{}, ibge.Options{}, 10*time.Second)
	}

	t.Run("blank name does not trigger a fetch", func(t *testing.T) {
		m := newModel()

		updated, cmd := m.handleEnterKey()
		if cmd != nil {
			t.Error("handleEnterKey() with blank input returned a command, want nil")
		}
		tm := updated.(TUIModel)
		if tm.currentState() != StateInput {
			t.Errorf("state = %v, want %v", tm.currentState(), StateInput)
		}
	})

	t.Run("non-blank name triggers a fetch", func(t *testing.T) {
		m := newModel()
		m.queryInput.SetValue("maria")

		updated, cmd := m.handleEnterKey()
		if cmd == nil {
			t.Fatal("handleEnterKey() returned nil command, want fetch command")
		}
		tm := updated.(TUIModel)
		if tm.currentState() != StateLoading {
			t.Errorf("state = %v, want %v", tm.currentState(), StateLoading)
		}
	})

	t.Run("ranking mode fetches without a name", func(t *testing.T) {
		m := newModel()
		m.mode = ModeRanking

		updated, cmd := m.handleEnterKey()
		if cmd == nil {
			t.Fatal("handleEnterKey() in ranking mode returned nil command, want fetch command")
		}
		tm := updated.(TUIModel)
		if tm.currentState() != StateLoading {
			t.Errorf("state = %v, want %v", tm.currentState(), StateLoading)
		}
	})
}

func TestHandleLookupResult(t *testing.T) {
	newModel := func() TUIModel {
		return NewTUIModel(&ibge.MockClient{}, ibge.Options{}, 10*time.Second)
	}

	t.Run("successful result renders chart", func(t *testing.T) {
		m := newModel()

		updated, _ := m.handleLookupResult(tuiLookupResultMsg{
			query: "maria",
			counts: []ibge.DecadeCount{
				{Decade: 1930, Count: 336477},
				{Decade: 1940, Count: 749053},
			},
			duration: 120 * time.Millisecond,
		})

		tm := updated.(TUIModel)
		if tm.modeStates[ModeLookup] != StateResults {
			t.Errorf("state = %v, want %v", tm.modeStates[ModeLookup], StateResults)
		}
		if len(tm.chartContent) == 0 {
			t.Error("chartContent is empty after successful lookup")
		}
	})

	t.Run("no data shows guidance instead of chart", func(t *testing.T) {
		m := newModel()

		updated, _ := m.handleLookupResult(tuiLookupResultMsg{
			query: "zzyzx",
			err:   ibge.ErrNoData,
		})

		tm := updated.(TUIModel)
		if tm.modeStates[ModeLookup] != StateNoData {
			t.Errorf("state = %v, want %v", tm.modeStates[ModeLookup], StateNoData)
		}
		view := tm.renderNoDataState()
		if len(view) == 0 {
			t.Error("renderNoDataState() returned empty string")
		}
	})

	t.Run("transport error lands in error state", func(t *testing.T) {
		m := newModel()

		updated, _ := m.handleLookupResult(tuiLookupResultMsg{
			query: "maria",
			err:   errors.New("connection refused"),
		})

		tm := updated.(TUIModel)
		if tm.modeStates[ModeLookup] != StateError {
			t.Errorf("state = %v, want %v", tm.modeStates[ModeLookup], StateError)
		}
	})
}

func TestSwitchToMode(t *testing.T) {
	m := NewTUIModel(&ibge.MockClient{}, ibge.Options{}, 10*time.Second)
	m.queryInput.SetValue("maria")

	updated, _ := m.switchToMode(ModeCompare)
	tm := updated.(TUIModel)

	if tm.mode != ModeCompare {
		t.Errorf("mode = %v, want %v", tm.mode, ModeCompare)
	}
	if tm.queryInput.Value() != "" {
		t.Errorf("compare input = %q, want empty (fresh mode)", tm.queryInput.Value())
	}

	// Switching back restores the saved lookup query.
	updated, _ = tm.switchToMode(ModeLookup)
	tm = updated.(TUIModel)
	if tm.queryInput.Value() != "maria" {
		t.Errorf("restored input = %q, want %q", tm.queryInput.Value(), "maria")
	}
}
