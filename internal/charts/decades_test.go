package charts

import (
	"testing"

	"github.com/fbressa/nomes/internal/ibge"
)

func twoNameSeries() []ibge.NameSeries {
	return []ibge.NameSeries{
		{
			Name: "MARIA",
			Decades: []ibge.DecadeCount{
				{Decade: 1930, Count: 336477},
				{Decade: 1940, Count: 749053},
			},
		},
		{
			Name: "ANA",
			Decades: []ibge.DecadeCount{
				{Decade: 1930, Count: 33395},
				{Decade: 1940, Count: 56160},
			},
		},
	}
}

func TestDecadeSplit(t *testing.T) {
	t.Run("empty series returns empty legend", func(t *testing.T) {
		_, legend := DecadeSplit(nil, 80)

		if len(legend) != 0 {
			t.Errorf("len(legend) = %d, want 0", len(legend))
		}
	})

	t.Run("single series returns 1 legend entry", func(t *testing.T) {
		series := twoNameSeries()[:1]
		_, legend := DecadeSplit(series, 80)

		if len(legend) != 1 {
			t.Fatalf("len(legend) = %d, want 1", len(legend))
		}
		if legend[0].ColorIndex != 0 {
			t.Errorf("legend[0].ColorIndex = %d, want 0", legend[0].ColorIndex)
		}
		if legend[0].Name != "MARIA" {
			t.Errorf("legend[0].Name = %q, want %q", legend[0].Name, "MARIA")
		}
	})

	t.Run("multiple series returns legend entries in order", func(t *testing.T) {
		_, legend := DecadeSplit(twoNameSeries(), 80)

		if len(legend) != 2 {
			t.Fatalf("len(legend) = %d, want 2", len(legend))
		}
		for i, entry := range legend {
			if entry.ColorIndex != i {
				t.Errorf("legend[%d].ColorIndex = %d, want %d", i, entry.ColorIndex, i)
			}
		}
	})

	t.Run("chart output is non-empty for valid data", func(t *testing.T) {
		chart, _ := DecadeSplit(twoNameSeries(), 80)

		if len(chart) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})
}

func TestDecadeSplitWithSelection(t *testing.T) {
	series := twoNameSeries()

	t.Run("selectedIndex=-1 shows all series", func(t *testing.T) {
		_, legend := DecadeSplitWithSelection(series, 80, -1, nil)

		if len(legend) != 2 {
			t.Errorf("len(legend) = %d, want 2", len(legend))
		}
	})

	t.Run("selectedIndex=0 highlights first series", func(t *testing.T) {
		chart, legend := DecadeSplitWithSelection(series, 80, 0, nil)

		if len(legend) != 2 {
			t.Errorf("len(legend) = %d, want 2", len(legend))
		}
		if len(chart) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})

	t.Run("selectedIndex out of range is handled", func(t *testing.T) {
		_, legend := DecadeSplitWithSelection(series, 80, 99, nil)

		if len(legend) != 2 {
			t.Errorf("len(legend) = %d, want 2", len(legend))
		}
	})

	t.Run("pinned indices are kept alongside selection", func(t *testing.T) {
		pinned := map[int]bool{0: true}
		chart, legend := DecadeSplitWithSelection(series, 80, 1, pinned)

		if len(legend) != 2 {
			t.Errorf("len(legend) = %d, want 2", len(legend))
		}
		if len(chart) == 0 {
			t.Error("chart output is empty, want non-empty")
		}
	})
}
