package dataset

import (
	"encoding/csv"
	"fmt"
	"strings"

	"github.com/mpilhlt/hr-insights/internal/models"
)

// Serialize converts a Dataset to its flat CSV text form: a header row
// of column names plus one record per data row, with standard CSV
// quoting for embedded separators, quotes and newlines. Re-parsing the
// output with Parse reproduces columns and rows exactly, order
// preserved. Pure, no side effects.
func Serialize(ds *models.Dataset) (string, error) {
	var sb strings.Builder
	w := csv.NewWriter(&sb)

	if err := w.Write(ds.Columns); err != nil {
		return "", fmt.Errorf("unable to serialize dataset header: %v", err)
	}
	for i, row := range ds.Rows {
		if err := w.Write(row); err != nil {
			return "", fmt.Errorf("unable to serialize dataset row %d: %v", i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", fmt.Errorf("unable to serialize dataset: %v", err)
	}

	return sb.String(), nil
}
