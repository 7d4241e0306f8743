package parser

import (
	"regexp"
	"strings"

	"github.com/xuri/excelize/v2"
)

var whitespaceRun = regexp.MustCompile(`\s+`)

// IsBlank reports whether a cell value has no content once whitespace is trimmed.
// Cells are compared by their formatted string form, so numbers, dates and
// booleans are never blank.
func IsBlank(value string) bool {
	return strings.TrimSpace(value) == ""
}

// NormalizeCell trims a cell value and collapses every whitespace run,
// newlines and tabs included, to a single space.
func NormalizeCell(value string) string {
	s := strings.TrimSpace(value)
	if s == "" {
		return ""
	}
	s = strings.NewReplacer("\n", " ", "\t", " ").Replace(s)
	return whitespaceRun.ReplaceAllString(s, " ")
}

// ReadRows returns the stored rows of a sheet with every cell normalized.
// Rows keep their position: index 0 is row 1, empty rows stay empty.
func ReadRows(f *excelize.File, sheetName string) ([][]string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return nil, err
	}

	for _, row := range rows {
		for colIdx, cellValue := range row {
			row[colIdx] = NormalizeCell(cellValue)
		}
	}

	return rows, nil
}
