package taxonomy

import (
	"fmt"

	"github.com/parquet-go/parquet-go"
	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
)

// WriteParquet writes the dictionary as a Snappy-compressed Parquet file,
// replacing any existing file.
func WriteParquet(path string, entries []models.TaxonomyEntry) error {
	if err := parquet.WriteFile(path, entries, parquet.Compression(&parquet.Snappy)); err != nil {
		return fmt.Errorf("failed to write parquet %s: %w", path, err)
	}
	return nil
}

// ReadParquet reads a dictionary written by WriteParquet.
func ReadParquet(path string) ([]models.TaxonomyEntry, error) {
	entries, err := parquet.ReadFile[models.TaxonomyEntry](path)
	if err != nil {
		return nil, fmt.Errorf("failed to read parquet %s: %w", path, err)
	}
	return entries, nil
}
