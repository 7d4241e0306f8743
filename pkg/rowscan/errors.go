package rowscan

import (
	"errors"
	"fmt"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be opened as a workbook.
var ErrInvalidFormat = errors.New("workbook is not a readable xlsx file")

// ScanError represents an error while processing one sheet.
type ScanError struct {
	SheetName string
	Component string // stage that failed, e.g. "scan"
	Err       error
}

func (e *ScanError) Error() string {
	return fmt.Sprintf("scan error in sheet %q (%s): %v", e.SheetName, e.Component, e.Err)
}

func (e *ScanError) Unwrap() error {
	return e.Err
}

// NewScanError creates a new ScanError.
func NewScanError(sheetName, component string, err error) *ScanError {
	return &ScanError{
		SheetName: sheetName,
		Component: component,
		Err:       err,
	}
}
