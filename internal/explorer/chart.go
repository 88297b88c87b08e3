package explorer

import (
	"fmt"
	"strconv"

	"github.com/mpilhlt/hr-insights/internal/models"
)

// Chart types understood by BuildChart.
const (
	ChartLine      = "line"
	ChartBar       = "bar"
	ChartHistogram = "histogram"
)

// HistogramBins is the fixed number of equal-width histogram bins.
const HistogramBins = 10

// BuildChart produces a render-ready chart over a single column of the
// (already filtered) rows. Line and bar charts render the column series
// as-is, one point per row. Histograms are only valid for numeric
// columns; for non-numeric columns the result reports "not applicable"
// instead of failing.
func BuildChart(chartType string, column string, rows [][]string, col int, numeric bool) *models.Chart {
	chart := &models.Chart{
		ChartType:  chartType,
		Title:      column,
		Applicable: true,
	}

	switch chartType {
	case ChartLine, ChartBar:
		chart.XAxis = "Row"
		chart.YAxis = column
		chart.Series = []models.ChartSeries{{
			Name:   column,
			Points: seriesPoints(rows, col),
		}}
	case ChartHistogram:
		if !numeric {
			chart.Applicable = false
			chart.Reason = "Histogram can only be plotted for numeric data."
			return chart
		}
		chart.XAxis = column
		chart.YAxis = "Count"
		chart.Series = []models.ChartSeries{{
			Name:   column,
			Points: histogramPoints(rows, col),
		}}
	default:
		chart.Applicable = false
		chart.Reason = fmt.Sprintf("unknown chart type %q", chartType)
	}

	return chart
}

// seriesPoints renders the column values in row order, labelled by row
// ordinal. Cells that do not parse as numbers (including missing cells)
// are skipped, matching how a plotting library treats a non-numeric
// series.
func seriesPoints(rows [][]string, col int) []models.ChartPoint {
	points := make([]models.ChartPoint, 0, len(rows))
	for i, row := range rows {
		f, err := strconv.ParseFloat(row[col], 64)
		if err != nil {
			continue
		}
		points = append(points, models.ChartPoint{
			Label: strconv.Itoa(i + 1),
			Value: f,
		})
	}
	return points
}

// histogramPoints buckets the column values into HistogramBins
// equal-width bins between the smallest and largest value. The last bin
// is closed on both ends so the maximum lands in it.
func histogramPoints(rows [][]string, col int) []models.ChartPoint {
	var values []float64
	for _, row := range rows {
		if f, err := strconv.ParseFloat(row[col], 64); err == nil {
			values = append(values, f)
		}
	}
	if len(values) == 0 {
		return nil
	}

	min, max := values[0], values[0]
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}

	if min == max {
		return []models.ChartPoint{{
			Label: fmt.Sprintf("[%.4g, %.4g]", min, max),
			Value: float64(len(values)),
		}}
	}

	width := (max - min) / HistogramBins
	counts := make([]int, HistogramBins)
	for _, v := range values {
		bin := int((v - min) / width)
		if bin >= HistogramBins {
			bin = HistogramBins - 1
		}
		counts[bin]++
	}

	points := make([]models.ChartPoint, HistogramBins)
	for i, c := range counts {
		lo := min + float64(i)*width
		hi := lo + width
		label := fmt.Sprintf("[%.4g, %.4g)", lo, hi)
		if i == HistogramBins-1 {
			label = fmt.Sprintf("[%.4g, %.4g]", lo, max)
		}
		points[i] = models.ChartPoint{Label: label, Value: float64(c)}
	}
	return points
}
