package parser

import (
	"strings"

	"github.com/xuri/excelize/v2"
)

// parseDimension parses a worksheet dimension reference such as $A$1:$D$10
// and returns its last row and column. A single-cell reference yields that
// cell; an empty or malformed reference yields zeros.
func parseDimension(ref string) (rows, cols int) {
	// Remove $ signs
	ref = strings.TrimSpace(strings.ReplaceAll(ref, "$", ""))
	if ref == "" {
		return 0, 0
	}

	parts := strings.Split(ref, ":")
	if len(parts) > 2 {
		return 0, 0
	}

	endCol, endRow, err := excelize.CellNameToCoordinates(parts[len(parts)-1])
	if err != nil {
		return 0, 0
	}

	return endRow, endCol
}
