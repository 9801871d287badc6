package charts

const (
	// ChartHeightRatio determines chart height as width/ChartHeightRatio.
	ChartHeightRatio = 8

	// MinChartHeight is the floor for decade chart height.
	MinChartHeight = 8
)
