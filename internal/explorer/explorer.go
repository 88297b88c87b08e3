// Package explorer holds the derived-view computations of the tabular
// explorer: distinct values, filtering, aggregation and per-column
// summaries. Every function is a pure function of the dataset and the
// selection, so recomputation always yields the same view regardless of
// the order of user interactions.
package explorer

import (
	"math"
	"strconv"

	"github.com/mpilhlt/hr-insights/internal/models"
)

// Distinct returns the distinct non-missing values of a column, in
// order of first appearance.
func Distinct(ds *models.Dataset, col int) []string {
	seen := make(map[string]bool)
	var values []string
	for _, row := range ds.Rows {
		v := row[col]
		if v != "" && !seen[v] {
			seen[v] = true
			values = append(values, v)
		}
	}
	return values
}

// IsNumeric reports whether a column is numeric: it has at least one
// non-missing value and every non-missing value parses as a float.
func IsNumeric(ds *models.Dataset, col int) bool {
	found := false
	for _, row := range ds.Rows {
		v := row[col]
		if v == "" {
			continue
		}
		if _, err := strconv.ParseFloat(v, 64); err != nil {
			return false
		}
		found = true
	}
	return found
}

// Filter returns the subsequence of rows where column col equals value.
// The returned rows are copies, so callers can never mutate the shared
// dataset through them. Idempotent: filtering an already-filtered
// result on the same predicate returns the same set.
func Filter(ds *models.Dataset, col int, value string) [][]string {
	var matched [][]string
	for _, row := range ds.Rows {
		if row[col] == value {
			cp := make([]string, len(row))
			copy(cp, row)
			matched = append(matched, cp)
		}
	}
	return matched
}

// Aggregate computes the derived aggregate of column col across rows:
// the count of non-missing values always, the arithmetic mean only when
// the column is numeric (the explorer only reports a count for
// non-numeric columns).
func Aggregate(rows [][]string, col int, numeric bool) models.Aggregate {
	agg := models.Aggregate{}
	var sum float64
	var parsed int
	for _, row := range rows {
		v := row[col]
		if v == "" {
			continue
		}
		agg.Count++
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			sum += f
			parsed++
		}
	}
	if numeric && parsed > 0 {
		mean := sum / float64(parsed)
		agg.Mean = &mean
	}
	return agg
}

// Summarize produces a describe()-style summary of every column:
// non-missing count, distinct count, and mean/min/max/stddev for
// numeric columns.
func Summarize(ds *models.Dataset) []models.ColumnSummary {
	summaries := make([]models.ColumnSummary, 0, len(ds.Columns))
	for col, name := range ds.Columns {
		s := models.ColumnSummary{
			Column:   name,
			Distinct: len(Distinct(ds, col)),
			Numeric:  IsNumeric(ds, col),
		}

		var values []float64
		for _, row := range ds.Rows {
			v := row[col]
			if v == "" {
				continue
			}
			s.Count++
			if f, err := strconv.ParseFloat(v, 64); err == nil {
				values = append(values, f)
			}
		}

		if s.Numeric && len(values) > 0 {
			mean, min, max := describe(values)
			s.Mean, s.Min, s.Max = &mean, &min, &max
			if len(values) >= 2 {
				sd := stdDev(values, mean)
				s.StdDev = &sd
			}
		}

		summaries = append(summaries, s)
	}
	return summaries
}

func describe(values []float64) (mean, min, max float64) {
	min, max = values[0], values[0]
	var sum float64
	for _, v := range values {
		sum += v
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
	}
	return sum / float64(len(values)), min, max
}

// stdDev is the sample standard deviation (n-1 denominator).
func stdDev(values []float64, mean float64) float64 {
	var sq float64
	for _, v := range values {
		d := v - mean
		sq += d * d
	}
	return math.Sqrt(sq / float64(len(values)-1))
}
