// Package parser provides worksheet loading and row scanning utilities.
package parser

import (
	"fmt"
	"time"

	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
	"github.com/xuri/excelize/v2"
)

// LastPopulatedRow walks the grid bottom-up and returns the first row
// holding a non-blank cell, or headerRow when no row below the header is
// populated. Rows past the stored data are blank, so the walk starts at the
// last stored row whatever extent the sheet reports.
func LastPopulatedRow(g *Grid, headerRow int) int {
	for r := min(g.MaxRow, len(g.Rows)); r > headerRow; r-- {
		if g.RowPopulated(r) {
			return r
		}
	}
	return headerRow
}

// ScanGrid scans an in-memory grid. Elapsed is left for the caller to fill.
func ScanGrid(g *Grid, sheetName string, headerRow int) models.ScanResult {
	return newResult(sheetName, headerRow, g.MaxRow, g.MaxColumn, LastPopulatedRow(g, headerRow))
}

func newResult(sheetName string, headerRow, maxRow, maxColumn, last int) models.ScanResult {
	return models.ScanResult{
		Sheet:            sheetName,
		HeaderRow:        headerRow,
		MaxRow:           maxRow,
		MaxColumn:        maxColumn,
		LastPopulatedRow: last,
		RealRowCount:     max(0, last-headerRow),
	}
}

// sheetExtent is what one forward pass over a sheet's stored rows learns.
type sheetExtent struct {
	storedRows   int
	storedCols   int
	lastNonBlank int
}

// readExtent streams the stored rows of a sheet, holding one row in memory
// at a time.
func readExtent(f *excelize.File, sheetName string) (sheetExtent, error) {
	var ext sheetExtent

	rows, err := f.Rows(sheetName)
	if err != nil {
		return ext, err
	}
	defer rows.Close()

	for rows.Next() {
		ext.storedRows++
		cells, err := rows.Columns()
		if err != nil {
			return ext, err
		}
		ext.storedCols = max(ext.storedCols, len(cells))
		if cellsPopulated(cells, len(cells)) {
			ext.lastNonBlank = ext.storedRows
		}
	}

	return ext, rows.Error()
}

// ScanSheet opens the workbook at path, scans one sheet and closes it again.
// Every call opens its own handle, so calls for different sheets share no
// state. The result equals ScanGrid over the same sheet, but rows are
// streamed instead of loaded.
func ScanSheet(path, sheetName string, headerRow int) (models.ScanResult, error) {
	started := time.Now()

	f, err := excelize.OpenFile(path)
	if err != nil {
		return models.ScanResult{}, err
	}
	defer f.Close()

	dim, err := f.GetSheetDimension(sheetName)
	if err != nil {
		return models.ScanResult{}, fmt.Errorf("read dimension: %w", err)
	}

	ext, err := readExtent(f, sheetName)
	if err != nil {
		return models.ScanResult{}, fmt.Errorf("read rows: %w", err)
	}

	dimRows, dimCols := parseDimension(dim)
	last := headerRow
	if ext.lastNonBlank > headerRow {
		last = ext.lastNonBlank
	}

	result := newResult(sheetName, headerRow, max(dimRows, ext.storedRows), max(dimCols, ext.storedCols), last)
	result.Elapsed = time.Since(started)
	return result, nil
}
