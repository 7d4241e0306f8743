// Package models defines data structures for workbook scanning and taxonomy export.
package models

import "time"

// ScanResult holds the row extent detected for a single sheet.
type ScanResult struct {
	// Index is the sheet position in the workbook (0-based).
	Index int `json:"index"`
	// Sheet is the sheet name.
	Sheet string `json:"sheet"`
	// HeaderRow is the row index below which data rows are counted (1-based).
	HeaderRow int `json:"header_row"`
	// MaxRow is the last row the sheet reports (1-based).
	MaxRow int `json:"max_row"`
	// MaxColumn is the last column the sheet reports (1-based).
	MaxColumn int `json:"max_column"`
	// LastPopulatedRow is the last row holding any non-blank cell.
	// Equals HeaderRow when no data row is populated.
	LastPopulatedRow int `json:"last_populated_row"`
	// RealRowCount is LastPopulatedRow - HeaderRow, floored at zero.
	RealRowCount int `json:"real_row_count"`
	// Elapsed is the time spent opening and scanning the sheet.
	Elapsed time.Duration `json:"elapsed"`
}

// TrailingBlankRows returns how many reported rows lie below the last populated row.
func (r ScanResult) TrailingBlankRows() int {
	if r.MaxRow <= r.LastPopulatedRow {
		return 0
	}
	return r.MaxRow - r.LastPopulatedRow
}
