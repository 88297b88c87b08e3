package handlers_test

import (
	"net/http"
	"testing"

	"github.com/mpilhlt/hr-insights/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetDataset(t *testing.T) {
	server := startTestServer(t, hrDataset(), &stubChat{})

	var body struct {
		Columns  []string   `json:"columns"`
		Rows     [][]string `json:"rows"`
		RowCount int        `json:"row_count"`
	}
	resp := getJSON(t, server.URL+"/v1/dataset", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []string{"Department", "Salary"}, body.Columns)
	assert.Equal(t, 3, body.RowCount)
	require.Len(t, body.Rows, 3)
}

func TestGetSummary(t *testing.T) {
	server := startTestServer(t, hrDataset(), &stubChat{})

	var body struct {
		Columns []models.ColumnSummary `json:"columns"`
	}
	resp := getJSON(t, server.URL+"/v1/dataset/summary", &body)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	require.Len(t, body.Columns, 2)
	assert.False(t, body.Columns[0].Numeric)
	assert.True(t, body.Columns[1].Numeric)
	require.NotNil(t, body.Columns[1].Mean)
	assert.InDelta(t, 116.6667, *body.Columns[1].Mean, 1e-3)
}

func TestGetColumnValues(t *testing.T) {
	server := startTestServer(t, hrDataset(), &stubChat{})

	t.Run("Known column", func(t *testing.T) {
		var body struct {
			Column string   `json:"column"`
			Values []string `json:"values"`
		}
		resp := getJSON(t, server.URL+"/v1/dataset/columns/Department/values", &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, []string{"Eng", "HR"}, body.Values)
	})

	t.Run("Unknown column", func(t *testing.T) {
		resp := getJSON(t, server.URL+"/v1/dataset/columns/Nope/values", &struct{}{})
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPostFilter(t *testing.T) {
	server := startTestServer(t, hrDataset(), &stubChat{})

	t.Run("Filter on non-numeric column", func(t *testing.T) {
		// Selecting column=Department, value=Eng yields the two Eng
		// rows; no mean for the non-numeric column, count=2.
		var body struct {
			Rows      [][]string       `json:"rows"`
			RowCount  int              `json:"row_count"`
			Aggregate models.Aggregate `json:"aggregate"`
		}
		resp := postJSON(t, server.URL+"/v1/explorer/filter",
			map[string]string{"column": "Department", "value": "Eng"}, &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 2, body.RowCount)
		assert.Equal(t, [][]string{{"Eng", "100"}, {"Eng", "200"}}, body.Rows)
		assert.Equal(t, 2, body.Aggregate.Count)
		assert.Nil(t, body.Aggregate.Mean)
	})

	t.Run("Filter on numeric column", func(t *testing.T) {
		var body struct {
			RowCount  int              `json:"row_count"`
			Aggregate models.Aggregate `json:"aggregate"`
		}
		resp := postJSON(t, server.URL+"/v1/explorer/filter",
			map[string]string{"column": "Salary", "value": "100"}, &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 1, body.RowCount)
		require.NotNil(t, body.Aggregate.Mean)
		assert.Equal(t, 100.0, *body.Aggregate.Mean)
	})

	t.Run("Unknown column", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/v1/explorer/filter",
			map[string]string{"column": "Nope", "value": "Eng"}, &struct{}{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("Value outside the column's domain", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/v1/explorer/filter",
			map[string]string{"column": "Department", "value": "Marketing"}, &struct{}{})
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestPostChart(t *testing.T) {
	server := startTestServer(t, hrDataset(), &stubChat{})

	t.Run("Bar chart over numeric column", func(t *testing.T) {
		var body models.Chart
		resp := postJSON(t, server.URL+"/v1/explorer/chart",
			map[string]string{"column": "Salary", "value": "100", "chart_type": "bar"}, &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.True(t, body.Applicable)
		require.Len(t, body.Series, 1)
		require.Len(t, body.Series[0].Points, 1)
		assert.Equal(t, 100.0, body.Series[0].Points[0].Value)
	})

	t.Run("Histogram over non-numeric column is not applicable", func(t *testing.T) {
		var body models.Chart
		resp := postJSON(t, server.URL+"/v1/explorer/chart",
			map[string]string{"column": "Department", "value": "Eng", "chart_type": "histogram"}, &body)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.False(t, body.Applicable)
		assert.Equal(t, "Histogram can only be plotted for numeric data.", body.Reason)
	})

	t.Run("Unknown chart type is rejected by validation", func(t *testing.T) {
		resp := postJSON(t, server.URL+"/v1/explorer/chart",
			map[string]string{"column": "Salary", "value": "100", "chart_type": "pie"}, &struct{}{})
		assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	})
}

func TestEmptyDatasetAbortsFlows(t *testing.T) {
	server := startTestServer(t, &models.Dataset{}, &stubChat{})

	for _, path := range []string{"/v1/dataset", "/v1/dataset/summary", "/v1/dataset/columns"} {
		resp := getJSON(t, server.URL+path, &struct{}{})
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode, "path %s", path)
	}

	resp := postJSON(t, server.URL+"/v1/explorer/filter",
		map[string]string{"column": "Department", "value": "Eng"}, &struct{}{})
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}
