package charts

import (
	"time"

	"github.com/NimbleMarkets/ntcharts/canvas/runes"
	"github.com/NimbleMarkets/ntcharts/linechart/timeserieslinechart"
	"github.com/charmbracelet/lipgloss"
	"github.com/fbressa/nomes/internal/ibge"
)

var axisStyle = lipgloss.NewStyle().Foreground(AxisColor)
var labelStyle = lipgloss.NewStyle().Foreground(LabelColor)

// LegendEntry describes one series of a decade chart for legend rendering.
type LegendEntry struct {
	Name       string
	ColorIndex int
}

// DecadeSplit renders one line per name across census decades and returns
// the chart along with its legend entries.
func DecadeSplit(series []ibge.NameSeries, width int) (string, []LegendEntry) {
	return DecadeSplitWithSelection(series, width, -1, nil)
}

// DecadeSplitWithSelection renders a decade line chart where the selected
// and pinned series keep their palette color and all others are dimmed.
// selectedIndex -1 with no pins shows every series in full color.
func DecadeSplitWithSelection(series []ibge.NameSeries, width int, selectedIndex int, pinned map[int]bool) (string, []LegendEntry) {
	var maxCount int64
	for _, s := range series {
		for _, count := range s.Decades {
			if count.Count > maxCount {
				maxCount = count.Count
			}
		}
	}

	height := width / ChartHeightRatio
	if height < MinChartHeight {
		height = MinChartHeight
	}

	lc := timeserieslinechart.New(width, height)
	lc.AxisStyle = axisStyle
	lc.LabelStyle = labelStyle
	lc.XLabelFormatter = decadeLabelFormatter
	lc.SetYRange(0, float64(maxCount))     // set expected Y values before view range
	lc.SetViewYRange(0, float64(maxCount)) // setting display Y values fails unless expected Y values are set first
	lc.SetLineStyle(runes.ThinLineStyle)

	focused := selectedIndex >= 0 || len(pinned) > 0
	legend := make([]LegendEntry, 0, len(series))
	for i, s := range series {
		style := SeriesStyle(i)
		if focused && i != selectedIndex && !pinned[i] {
			style = lipgloss.NewStyle().Foreground(DimmedColor)
		}
		legend = append(legend, LegendEntry{Name: s.Name, ColorIndex: i})
		lc.SetDataSetStyle(s.Name, style)
		for _, count := range s.Decades {
			lc.PushDataSet(s.Name, timeserieslinechart.TimePoint{
				Time:  decadeStart(count.Decade),
				Value: float64(count.Count),
			})
		}
	}

	lc.DrawBrailleAll()

	return lc.View(), legend
}

// decadeStart maps a decade like 1930 onto the time axis.
func decadeStart(decade int) time.Time {
	return time.Date(decade, time.January, 1, 0, 0, 0, 0, time.UTC)
}

func decadeLabelFormatter(_ int, v float64) string {
	return time.Unix(int64(v), 0).UTC().Format("2006")
}
