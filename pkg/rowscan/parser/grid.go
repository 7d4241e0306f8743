package parser

// Grid is an in-memory worksheet: the stored cell values plus the extent
// the sheet reports for itself.
type Grid struct {
	// Rows holds stored cell values; index 0 is row 1.
	Rows [][]string
	// MaxRow is the reported last row (1-based).
	MaxRow int
	// MaxColumn is the reported last column (1-based).
	MaxColumn int
}

// NewGrid builds a Grid from stored rows and the dimension the sheet reports.
// The extent is widened to cover every stored cell, so a dimension that
// understates the content never hides data.
func NewGrid(rows [][]string, dimRows, dimCols int) *Grid {
	g := &Grid{Rows: rows, MaxRow: dimRows, MaxColumn: dimCols}
	if len(rows) > g.MaxRow {
		g.MaxRow = len(rows)
	}
	for _, row := range rows {
		if len(row) > g.MaxColumn {
			g.MaxColumn = len(row)
		}
	}
	return g
}

// Cell returns the value at a 1-based coordinate, or "" outside stored data.
func (g *Grid) Cell(row, col int) string {
	if row < 1 || row > len(g.Rows) {
		return ""
	}
	r := g.Rows[row-1]
	if col < 1 || col > len(r) {
		return ""
	}
	return r[col-1]
}

// RowPopulated reports whether any cell in the row's reported column range
// is non-blank. Only stored cells are visited.
func (g *Grid) RowPopulated(row int) bool {
	if row < 1 || row > len(g.Rows) {
		return false
	}
	return cellsPopulated(g.Rows[row-1], g.MaxColumn)
}

// cellsPopulated reports whether any of the first maxColumn cells is non-blank.
func cellsPopulated(cells []string, maxColumn int) bool {
	for _, v := range cells[:min(len(cells), maxColumn)] {
		if !IsBlank(v) {
			return true
		}
	}
	return false
}
