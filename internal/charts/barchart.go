package charts

import (
	"fmt"

	"github.com/NimbleMarkets/ntcharts/barchart"
	"github.com/fbressa/nomes/internal/ibge"
)

// Barchart renders one horizontal bar per decade, labeled "1930s (336477)".
func Barchart(counts []ibge.DecadeCount, width int) string {
	barData := make([]barchart.BarData, 0, len(counts))
	for i, count := range counts {
		barData = append(barData, barchart.BarData{
			Label: fmt.Sprintf("%s (%d)", count.Label(), count.Count),
			Values: []barchart.BarValue{
				{Name: count.Label(), Value: float64(count.Count), Style: SeriesStyle(i)},
			},
		})
	}

	bc := barchart.New(width, len(barData)*2, barchart.WithDataSet(barData), barchart.WithHorizontalBars())
	bc.Draw()

	return bc.View()
}
