package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mpilhlt/hr-insights/internal/models"
)

// Sentinel errors for the two load failure modes. Load returns an empty
// dataset alongside either of them; callers must check for emptiness and
// abort dependent flows instead of crashing.
var (
	ErrNotFound  = errors.New("dataset file not found")
	ErrMalformed = errors.New("dataset file is not valid CSV")
)

// Load reads the CSV file at path into a Dataset. The file must be
// UTF-8 with a header row followed by data rows. Load is meant to be
// called exactly once at startup; the resulting Dataset is shared
// read-only between all handlers.
func Load(path string) (*models.Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &models.Dataset{}, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		return &models.Dataset{}, fmt.Errorf("unable to open dataset file %s: %v", path, err)
	}
	defer f.Close()

	ds, err := Parse(f)
	if err != nil {
		return ds, fmt.Errorf("unable to parse dataset file %s: %w", path, err)
	}
	return ds, nil
}

// Parse reads CSV content into a Dataset. The csv reader enforces the
// invariant that every row has exactly as many cells as the header.
func Parse(r io.Reader) (*models.Dataset, error) {
	reader := csv.NewReader(r)

	header, err := reader.Read()
	if err == io.EOF {
		return &models.Dataset{}, fmt.Errorf("%w: missing header row", ErrMalformed)
	}
	if err != nil {
		return &models.Dataset{}, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	ds := &models.Dataset{Columns: header}
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return &models.Dataset{Columns: header}, fmt.Errorf("%w: %v", ErrMalformed, err)
		}
		ds.Rows = append(ds.Rows, row)
	}

	return ds, nil
}
