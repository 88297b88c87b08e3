package models

import "net/http"

// FilterSelection is a (column, value) pair chosen from the dataset's
// own domain: the column must be one of Dataset.Columns, the value one
// of the distinct values of that column.
type FilterSelection struct {
	Column string `json:"column" maxLength:"100" minLength:"1" example:"Department" doc:"Column to filter on"`
	Value  string `json:"value" maxLength:"300" example:"Engineering" doc:"Value the column must equal"`
}

// Aggregate holds the derived aggregate of a filtered column. The mean
// is only computed for numeric columns; the count of non-missing values
// is always computed.
type Aggregate struct {
	Count int      `json:"count" doc:"Number of non-missing values"`
	Mean  *float64 `json:"mean,omitempty" doc:"Arithmetic mean of the non-missing values (numeric columns only)"`
}

// ChartPoint is a single labelled value in a chart series.
type ChartPoint struct {
	Label string  `json:"label" doc:"Point label (row ordinal or histogram bin range)"`
	Value float64 `json:"value" doc:"Point value"`
}

// ChartSeries is a named series of chart points.
type ChartSeries struct {
	Name   string       `json:"name" doc:"Series name"`
	Points []ChartPoint `json:"points" doc:"Series data points"`
}

// Chart is a render-ready chart description. When a chart type does not
// apply to the selected column (histogram over a non-numeric column),
// Applicable is false and Reason says why; this is not an error.
type Chart struct {
	ChartType  string        `json:"chart_type" doc:"One of line, bar, histogram"`
	Title      string        `json:"title" doc:"Chart title"`
	XAxis      string        `json:"x_axis,omitempty" doc:"X axis label"`
	YAxis      string        `json:"y_axis,omitempty" doc:"Y axis label"`
	Series     []ChartSeries `json:"series,omitempty" doc:"Chart series"`
	Applicable bool          `json:"applicable" doc:"Whether the chart type applies to the column"`
	Reason     string        `json:"reason,omitempty" doc:"Why the chart is not applicable"`
}

// Request and Response structs for the explorer API

// Filter the dataset and aggregate the active column
// Path: "/v1/explorer/filter"

type PostFilterRequest struct {
	Body FilterSelection `json:"selection" doc:"Column/value pair to filter on"`
}

type PostFilterResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Columns   []string   `json:"columns" doc:"Column names, in file order"`
		Rows      [][]string `json:"rows" doc:"Rows matching the filter"`
		RowCount  int        `json:"row_count" doc:"Number of matching rows"`
		Aggregate Aggregate  `json:"aggregate" doc:"Aggregate of the filtered column"`
	}
}

// Build a chart over the filtered column
// Path: "/v1/explorer/chart"

type PostChartRequest struct {
	Body struct {
		FilterSelection
		ChartType string `json:"chart_type" enum:"line,bar,histogram" example:"bar" doc:"Chart type"`
	}
}

type PostChartResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   Chart
}
