package models

import "net/http"

// Dataset is the in-memory tabular representation of the CSV file.
// Columns are fixed across rows; every row has exactly len(Columns) cells.
// A missing value is the empty string. The dataset is loaded once at
// startup and must be treated as read-only afterwards; derived views
// (filtered rows etc.) are always copies.
type Dataset struct {
	Columns []string   `json:"columns" doc:"Column names, in file order"`
	Rows    [][]string `json:"rows" doc:"Data rows, one slice of cells per row"`
}

// ColumnIndex returns the index of the named column, or -1 if absent.
func (ds *Dataset) ColumnIndex(name string) int {
	for i, c := range ds.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// IsEmpty reports whether the dataset has no data rows.
func (ds *Dataset) IsEmpty() bool {
	return ds == nil || len(ds.Rows) == 0
}

// ColumnSummary describes a single column, in the manner of a
// dataframe describe() call. Mean, Min, Max and StdDev are only
// present for numeric columns.
type ColumnSummary struct {
	Column   string   `json:"column" doc:"Column name"`
	Count    int      `json:"count" doc:"Number of non-missing values"`
	Distinct int      `json:"distinct" doc:"Number of distinct non-missing values"`
	Numeric  bool     `json:"numeric" doc:"Whether all non-missing values are numeric"`
	Mean     *float64 `json:"mean,omitempty" doc:"Arithmetic mean (numeric columns only)"`
	Min      *float64 `json:"min,omitempty" doc:"Smallest value (numeric columns only)"`
	Max      *float64 `json:"max,omitempty" doc:"Largest value (numeric columns only)"`
	StdDev   *float64 `json:"std_dev,omitempty" doc:"Sample standard deviation (numeric columns only)"`
}

// Request and Response structs for the dataset API
// The request structs must be structs with fields for the request path/query/header/cookie parameters and/or body.
// The response structs must be structs with fields for the output headers and body of the operation, if any.

// Get the full dataset
// Path: "/v1/dataset"

type GetDatasetRequest struct{}

type GetDatasetResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Columns  []string   `json:"columns" doc:"Column names, in file order"`
		Rows     [][]string `json:"rows" doc:"Data rows"`
		RowCount int        `json:"row_count" doc:"Number of data rows"`
	}
}

// Get per-column summary statistics
// Path: "/v1/dataset/summary"

type GetSummaryRequest struct{}

type GetSummaryResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Columns []ColumnSummary `json:"columns" doc:"Per-column summary statistics"`
	}
}

// Get the column names
// Path: "/v1/dataset/columns"

type GetColumnsRequest struct{}

type GetColumnsResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Columns []string `json:"columns" doc:"Column names, in file order"`
	}
}

// Get the distinct values of a column
// Path: "/v1/dataset/columns/{column}/values"

type GetColumnValuesRequest struct {
	Column string `json:"column" path:"column" maxLength:"100" minLength:"1" example:"Department" doc:"Column name"`
}

type GetColumnValuesResponse struct {
	Header []http.Header `json:"header,omitempty" doc:"Response headers"`
	Body   struct {
		Column string   `json:"column" doc:"Column name"`
		Values []string `json:"values" doc:"Distinct non-missing values, in order of first appearance"`
	}
}
