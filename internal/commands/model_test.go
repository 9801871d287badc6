package commands

import (
	"errors"
	"testing"
	"time"

	"github.com/fbressa/nomes/internal/ibge"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"microseconds", 500 * time.Microsecond, "500µs"},
		{"milliseconds", 500 * time.Millisecond, "500ms"},
		{"seconds", 1500 * time.Millisecond, "1.5s"},
		{"boundary - just under ms", 999 * time.Microsecond, "999µs"},
		{"boundary - just under s", 999 * time.Millisecond, "999ms"},
		{"zero", 0, "0µs"},
		{"exactly 1ms", time.Millisecond, "1ms"},
		{"exactly 1s", time.Second, "1.0s"},
		{"large seconds", 10 * time.Second, "10.0s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := formatDuration(tt.duration)
			if got != tt.want {
				t.Errorf("formatDuration(%v) = %q, want %q", tt.duration, got, tt.want)
			}
		})
	}
}

func TestNewTUIModel(t *testing.T) {
	mockClient := &ibge.MockClient{}
	opts := ibge.Options{Sex: "F", Locality: "33"}
	timeout := 10 * time.Second

	m := NewTUIModel(mockClient, opts, timeout)

	t.Run("initial mode is ModeLookup", func(t *testing.T) {
		if m.mode != ModeLookup {
			t.Errorf("mode = %v, want %v", m.mode, ModeLookup)
		}
	})

	t.Run("starts in insert mode", func(t *testing.T) {
		if !m.insertMode {
			t.Error("insertMode = false, want true")
		}
	})

	t.Run("all mode states initialized to StateInput", func(t *testing.T) {
		for i, state := range m.modeStates {
			if state != StateInput {
				t.Errorf("modeStates[%d] = %v, want %v", i, state, StateInput)
			}
		}
	})

	t.Run("selectedIndex starts at -1", func(t *testing.T) {
		if m.selectedIndex != -1 {
			t.Errorf("selectedIndex = %d, want -1", m.selectedIndex)
		}
	})

	t.Run("parameters stored correctly", func(t *testing.T) {
		if m.opts != opts {
			t.Errorf("opts = %v, want %v", m.opts, opts)
		}
		if m.timeout != timeout {
			t.Errorf("timeout = %v, want %v", m.timeout, timeout)
		}
	})

	t.Run("focusedPane starts at PaneQuery", func(t *testing.T) {
		if m.focusedPane != PaneQuery {
			t.Errorf("focusedPane = %v, want %v", m.focusedPane, PaneQuery)
		}
	})
}

func TestCurrentStateAccessors(t *testing.T) {
	mockClient := &ibge.MockClient{}
	m := NewTUIModel(mockClient, ibge.Options{}, 10*time.Second)

	t.Run("currentState returns state for current mode", func(t *testing.T) {
		if m.currentState() != StateInput {
			t.Errorf("currentState() = %v, want %v", m.currentState(), StateInput)
		}

		// Modify state for current mode
		m.modeStates[m.mode] = StateLoading
		if m.currentState() != StateLoading {
			t.Errorf("currentState() = %v, want %v", m.currentState(), StateLoading)
		}
	})

	t.Run("currentError returns error for current mode", func(t *testing.T) {
		// Initially nil
		if m.currentError() != nil {
			t.Errorf("currentError() = %v, want nil", m.currentError())
		}

		// Set error
		err := errors.New("test error")
		m.modeErrors[m.mode] = err
		if m.currentError() != err {
			t.Errorf("currentError() = %v, want %v", m.currentError(), err)
		}
	})

	t.Run("currentDuration returns duration for current mode", func(t *testing.T) {
		// Initially zero
		if m.currentDuration() != 0 {
			t.Errorf("currentDuration() = %v, want 0", m.currentDuration())
		}

		// Set duration
		duration := 500 * time.Millisecond
		m.modeDurations[m.mode] = duration
		if m.currentDuration() != duration {
			t.Errorf("currentDuration() = %v, want %v", m.currentDuration(), duration)
		}
	})

	t.Run("switching modes returns different values", func(t *testing.T) {
		// Set up different values for different modes
		m.modeStates[ModeLookup] = StateResults
		m.modeStates[ModeCompare] = StateError
		m.modeErrors[ModeLookup] = errors.New("lookup error")
		m.modeErrors[ModeCompare] = errors.New("compare error")

		m.mode = ModeLookup
		if m.currentState() != StateResults {
			t.Errorf("currentState() for ModeLookup = %v, want %v", m.currentState(), StateResults)
		}
		if m.currentError().Error() != "lookup error" {
			t.Errorf("currentError() for ModeLookup = %v, want 'lookup error'", m.currentError())
		}

		m.mode = ModeCompare
		if m.currentState() != StateError {
			t.Errorf("currentState() for ModeCompare = %v, want %v", m.currentState(), StateError)
		}
		if m.currentError().Error() != "compare error" {
			t.Errorf("currentError() for ModeCompare = %v, want 'compare error'", m.currentError())
		}
	})
}

func TestResultState(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want TUIState
	}{
		{"nil error", nil, StateResults},
		{"no data", ibge.ErrNoData, StateNoData},
		{"wrapped no data", errorsJoin(ibge.ErrNoData), StateNoData},
		{"transport error", errors.New("connection refused"), StateError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := resultState(tt.err)
			if got != tt.want {
				t.Errorf("resultState(%v) = %v, want %v", tt.err, got, tt.want)
			}
		})
	}
}

func errorsJoin(err error) error {
	return errors.Join(errors.New("fetching"), err)
}
