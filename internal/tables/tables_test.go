package tables

import (
	"testing"

	"github.com/fbressa/nomes/internal/ibge"
)

func TestDecades(t *testing.T) {
	t.Run("empty counts returns model with 0 rows", func(t *testing.T) {
		m, err := Decades(nil)
		if err != nil {
			t.Fatalf("Decades() returned error: %v", err)
		}

		view := m.View()
		if len(view) == 0 {
			t.Error("View() returned empty string")
		}
	})

	t.Run("single decade creates valid model", func(t *testing.T) {
		counts := []ibge.DecadeCount{
			{Decade: 1930, Count: 336477},
		}

		m, err := Decades(counts)
		if err != nil {
			t.Fatalf("Decades() returned error: %v", err)
		}

		view := m.View()
		if len(view) == 0 {
			t.Error("View() returned empty string")
		}
	})

	t.Run("multiple decades with varying counts", func(t *testing.T) {
		counts := []ibge.DecadeCount{
			{Decade: 1930, Count: 336477},
			{Decade: 1940, Count: 749053},
			{Decade: 2000, Count: 1},
		}

		m, err := Decades(counts)
		if err != nil {
			t.Fatalf("Decades() returned error: %v", err)
		}

		view := m.View()
		if len(view) == 0 {
			t.Error("View() returned empty string")
		}
	})

	t.Run("handles very large counts", func(t *testing.T) {
		counts := []ibge.DecadeCount{
			{Decade: 2000, Count: 11734129},
		}

		m, err := Decades(counts)
		if err != nil {
			t.Fatalf("Decades() returned error: %v", err)
		}

		view := m.View()
		if len(view) == 0 {
			t.Error("View() returned empty string")
		}
	})
}

func TestRanking(t *testing.T) {
	t.Run("entries create valid model", func(t *testing.T) {
		entries := []ibge.RankingEntry{
			{Rank: 1, Name: "MARIA", Count: 11734129},
			{Rank: 2, Name: "JOSE", Count: 5754529},
		}

		m, err := Ranking(entries)
		if err != nil {
			t.Fatalf("Ranking() returned error: %v", err)
		}

		view := m.View()
		if len(view) == 0 {
			t.Error("View() returned empty string")
		}
	})

	t.Run("handles long names", func(t *testing.T) {
		entries := []ibge.RankingEntry{
			{Rank: 1, Name: "FRANCISCADASCHAGAS", Count: 1},
		}

		m, err := Ranking(entries)
		if err != nil {
			t.Fatalf("Ranking() returned error: %v", err)
		}

		view := m.View()
		if len(view) == 0 {
			t.Error("View() returned empty string")
		}
	})
}

func TestModelInit(t *testing.T) {
	m, err := Decades(nil)
	if err != nil {
		t.Fatalf("Decades() returned error: %v", err)
	}

	cmd := m.Init()
	if cmd != nil {
		t.Error("Init() should return nil")
	}
}
