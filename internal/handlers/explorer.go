package handlers

import (
	"context"
	"fmt"
	"net/http"

	"github.com/mpilhlt/hr-insights/internal/explorer"
	"github.com/mpilhlt/hr-insights/internal/models"

	"github.com/danielgtaylor/huma/v2"
)

// getDatasetFunc returns the full table.
func getDatasetFunc(ctx context.Context, input *models.GetDatasetRequest) (*models.GetDatasetResponse, error) {
	ds, err := requireDataset(ctx)
	if err != nil {
		return nil, err
	}

	response := &models.GetDatasetResponse{}
	response.Body.Columns = ds.Columns
	response.Body.Rows = ds.Rows
	response.Body.RowCount = len(ds.Rows)
	return response, nil
}

// getSummaryFunc returns describe()-style per-column summary statistics.
func getSummaryFunc(ctx context.Context, input *models.GetSummaryRequest) (*models.GetSummaryResponse, error) {
	ds, err := requireDataset(ctx)
	if err != nil {
		return nil, err
	}

	response := &models.GetSummaryResponse{}
	response.Body.Columns = explorer.Summarize(ds)
	return response, nil
}

// getColumnsFunc returns the column names.
func getColumnsFunc(ctx context.Context, input *models.GetColumnsRequest) (*models.GetColumnsResponse, error) {
	ds, err := requireDataset(ctx)
	if err != nil {
		return nil, err
	}

	response := &models.GetColumnsResponse{}
	response.Body.Columns = ds.Columns
	return response, nil
}

// getColumnValuesFunc returns the distinct values of one column. These
// are the only values the filter and chart routes accept.
func getColumnValuesFunc(ctx context.Context, input *models.GetColumnValuesRequest) (*models.GetColumnValuesResponse, error) {
	ds, err := requireDataset(ctx)
	if err != nil {
		return nil, err
	}

	col := ds.ColumnIndex(input.Column)
	if col < 0 {
		return nil, huma.Error404NotFound(fmt.Sprintf("column %q not found in dataset", input.Column))
	}

	response := &models.GetColumnValuesResponse{}
	response.Body.Column = input.Column
	response.Body.Values = explorer.Distinct(ds, col)
	return response, nil
}

// resolveSelection validates a (column, value) pair against the
// dataset's own domain and returns the column index.
func resolveSelection(ds *models.Dataset, sel models.FilterSelection) (int, error) {
	col := ds.ColumnIndex(sel.Column)
	if col < 0 {
		return -1, huma.Error400BadRequest(fmt.Sprintf("column %q not found in dataset", sel.Column))
	}
	for _, v := range explorer.Distinct(ds, col) {
		if v == sel.Value {
			return col, nil
		}
	}
	return -1, huma.Error400BadRequest(fmt.Sprintf("value %q is not a distinct value of column %q", sel.Value, sel.Column))
}

// postFilterFunc filters the dataset on a (column, value) pair and
// aggregates the filtered column.
func postFilterFunc(ctx context.Context, input *models.PostFilterRequest) (*models.PostFilterResponse, error) {
	ds, err := requireDataset(ctx)
	if err != nil {
		return nil, err
	}

	col, err := resolveSelection(ds, input.Body)
	if err != nil {
		return nil, err
	}

	filtered := explorer.Filter(ds, col, input.Body.Value)
	agg := explorer.Aggregate(filtered, col, explorer.IsNumeric(ds, col))

	response := &models.PostFilterResponse{}
	response.Body.Columns = ds.Columns
	response.Body.Rows = filtered
	response.Body.RowCount = len(filtered)
	response.Body.Aggregate = agg
	return response, nil
}

// postChartFunc builds a chart over the filtered column.
func postChartFunc(ctx context.Context, input *models.PostChartRequest) (*models.PostChartResponse, error) {
	ds, err := requireDataset(ctx)
	if err != nil {
		return nil, err
	}

	col, err := resolveSelection(ds, input.Body.FilterSelection)
	if err != nil {
		return nil, err
	}

	filtered := explorer.Filter(ds, col, input.Body.Value)
	chart := explorer.BuildChart(input.Body.ChartType, input.Body.Column, filtered, col, explorer.IsNumeric(ds, col))

	response := &models.PostChartResponse{}
	response.Body = *chart
	return response, nil
}

// RegisterDatasetRoutes registers the read-only dataset routes with the API
func RegisterDatasetRoutes(ds *models.Dataset, api huma.API) error {
	// Define huma.Operations for each route
	getDatasetOp := huma.Operation{
		OperationID: "getDataset",
		Method:      http.MethodGet,
		Path:        "/v1/dataset",
		Summary:     "Get the full dataset",
		Tags:        []string{"dataset"},
	}
	getSummaryOp := huma.Operation{
		OperationID: "getSummary",
		Method:      http.MethodGet,
		Path:        "/v1/dataset/summary",
		Summary:     "Get per-column summary statistics",
		Tags:        []string{"dataset"},
	}
	getColumnsOp := huma.Operation{
		OperationID: "getColumns",
		Method:      http.MethodGet,
		Path:        "/v1/dataset/columns",
		Summary:     "Get the dataset's column names",
		Tags:        []string{"dataset"},
	}
	getColumnValuesOp := huma.Operation{
		OperationID: "getColumnValues",
		Method:      http.MethodGet,
		Path:        "/v1/dataset/columns/{column}/values",
		Summary:     "Get the distinct values of a column",
		Tags:        []string{"dataset"},
	}

	// Register the routes with middleware
	huma.Register(api, getDatasetOp, addDatasetToContext(ds, getDatasetFunc))
	huma.Register(api, getSummaryOp, addDatasetToContext(ds, getSummaryFunc))
	huma.Register(api, getColumnsOp, addDatasetToContext(ds, getColumnsFunc))
	huma.Register(api, getColumnValuesOp, addDatasetToContext(ds, getColumnValuesFunc))
	return nil
}

// RegisterExplorerRoutes registers the filter and chart routes with the API
func RegisterExplorerRoutes(ds *models.Dataset, api huma.API) error {
	// Define huma.Operations for each route
	postFilterOp := huma.Operation{
		OperationID: "postFilter",
		Method:      http.MethodPost,
		Path:        "/v1/explorer/filter",
		Summary:     "Filter the dataset on a column/value pair and aggregate the column",
		Tags:        []string{"explorer"},
	}
	postChartOp := huma.Operation{
		OperationID: "postChart",
		Method:      http.MethodPost,
		Path:        "/v1/explorer/chart",
		Summary:     "Build a chart over the filtered column",
		Tags:        []string{"explorer"},
	}

	// Register the routes with middleware
	huma.Register(api, postFilterOp, addDatasetToContext(ds, postFilterFunc))
	huma.Register(api, postChartOp, addDatasetToContext(ds, postChartFunc))
	return nil
}
