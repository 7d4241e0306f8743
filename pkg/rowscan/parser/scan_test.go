package parser

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"
)

// gridWithData returns a grid reporting maxRow rows of width cols where
// rows 1..populated hold data and the rest are whitespace only.
func gridWithData(maxRow, cols, populated int) *Grid {
	rows := make([][]string, maxRow)
	for r := range rows {
		rows[r] = make([]string, cols)
		for c := range rows[r] {
			if r < populated {
				rows[r][c] = "v"
			} else {
				rows[r][c] = " "
			}
		}
	}
	return NewGrid(rows, maxRow, cols)
}

func TestLastPopulatedRow(t *testing.T) {
	tests := []struct {
		name      string
		grid      *Grid
		headerRow int
		expected  int
	}{
		{"trailing blank rows", gridWithData(100, 3, 90), 1, 90},
		{"data through last row", gridWithData(5, 2, 5), 1, 5},
		{"header only", gridWithData(10, 2, 1), 1, 1},
		{"empty sheet", NewGrid(nil, 0, 0), 1, 1},
		{"header below extent", gridWithData(3, 1, 3), 5, 5},
		{"no header row", gridWithData(4, 1, 2), 0, 2},
	}

	for _, tt := range tests {
		result := LastPopulatedRow(tt.grid, tt.headerRow)
		if result != tt.expected {
			t.Errorf("%s: LastPopulatedRow = %d, expected %d", tt.name, result, tt.expected)
		}
	}
}

func TestLastPopulatedRowSingleCellInLastColumn(t *testing.T) {
	rows := [][]string{
		{"h1", "h2", "h3"},
		{"a", "", ""},
		{},
		{"", "", "x"},
		{"", " ", ""},
	}
	g := NewGrid(rows, 8, 3)

	if g.MaxRow != 8 {
		t.Errorf("Expected MaxRow 8, got %d", g.MaxRow)
	}
	if got := LastPopulatedRow(g, 1); got != 4 {
		t.Errorf("Expected last populated row 4, got %d", got)
	}
}

func TestNewGridWidensUnderstatedDimension(t *testing.T) {
	rows := [][]string{{"a"}, {"b", "c"}, {"d"}}
	g := NewGrid(rows, 1, 1)

	if g.MaxRow != 3 || g.MaxColumn != 2 {
		t.Errorf("Expected extent (3, 2), got (%d, %d)", g.MaxRow, g.MaxColumn)
	}
}

func TestScanGrid(t *testing.T) {
	result := ScanGrid(gridWithData(100, 3, 90), "A", 1)

	if result.Sheet != "A" {
		t.Errorf("Expected sheet A, got %q", result.Sheet)
	}
	if result.MaxRow != 100 {
		t.Errorf("Expected max row 100, got %d", result.MaxRow)
	}
	if result.LastPopulatedRow != 90 {
		t.Errorf("Expected last populated row 90, got %d", result.LastPopulatedRow)
	}
	if result.RealRowCount != 89 {
		t.Errorf("Expected real row count 89, got %d", result.RealRowCount)
	}
	if result.TrailingBlankRows() != 10 {
		t.Errorf("Expected 10 trailing blank rows, got %d", result.TrailingBlankRows())
	}

	empty := ScanGrid(NewGrid(nil, 0, 0), "Empty", 1)
	if empty.RealRowCount != 0 || empty.LastPopulatedRow != 1 {
		t.Errorf("Expected empty sheet to report (last=1, real=0), got (last=%d, real=%d)",
			empty.LastPopulatedRow, empty.RealRowCount)
	}
}

func TestScanSheet(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header")
	f.SetCellValue(sheetName, "B1", "Value")
	for r := 2; r <= 20; r++ {
		cell, _ := excelize.CoordinatesToCellName(2, r)
		f.SetCellValue(sheetName, cell, r)
	}
	// Whitespace-only leftovers below the data.
	for r := 21; r <= 30; r++ {
		cell, _ := excelize.CoordinatesToCellName(1, r)
		f.SetCellValue(sheetName, cell, " ")
	}
	if err := f.SetSheetDimension(sheetName, "A1:B30"); err != nil {
		t.Fatalf("Failed to set dimension: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "scan.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	result, err := ScanSheet(tmpFile, sheetName, 1)
	if err != nil {
		t.Fatalf("ScanSheet failed: %v", err)
	}

	if result.MaxRow != 30 {
		t.Errorf("Expected max row 30, got %d", result.MaxRow)
	}
	if result.LastPopulatedRow != 20 {
		t.Errorf("Expected last populated row 20, got %d", result.LastPopulatedRow)
	}
	if result.RealRowCount != 19 {
		t.Errorf("Expected real row count 19, got %d", result.RealRowCount)
	}
	if result.Elapsed <= 0 {
		t.Errorf("Expected positive elapsed time, got %v", result.Elapsed)
	}

	if _, err := ScanSheet(tmpFile, "Missing", 1); err == nil {
		t.Error("Expected error for missing sheet")
	}
	if _, err := ScanSheet(filepath.Join(t.TempDir(), "none.xlsx"), sheetName, 1); err == nil {
		t.Error("Expected error for missing workbook")
	}
}

func TestLastPopulatedRowIgnoresStaleExtent(t *testing.T) {
	g := NewGrid([][]string{{"h"}, {"v"}}, 1048576, 16384)

	done := make(chan int, 1)
	go func() { done <- LastPopulatedRow(g, 1) }()

	select {
	case last := <-done:
		if last != 2 {
			t.Errorf("Expected last populated row 2, got %d", last)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("LastPopulatedRow walked the reported extent instead of the stored rows")
	}

	result := ScanGrid(g, "Stale", 1)
	if result.MaxRow != 1048576 || result.MaxColumn != 16384 {
		t.Errorf("Expected reported extent (1048576, 16384), got (%d, %d)", result.MaxRow, result.MaxColumn)
	}
	if result.RealRowCount != 1 {
		t.Errorf("Expected real row count 1, got %d", result.RealRowCount)
	}
}

func TestRowPopulatedRespectsColumnExtent(t *testing.T) {
	g := &Grid{Rows: [][]string{{"", "", "x"}}, MaxRow: 1, MaxColumn: 2}

	if g.RowPopulated(1) {
		t.Error("Expected cells past MaxColumn to be ignored")
	}
	if g.RowPopulated(5) {
		t.Error("Expected rows past stored data to be blank")
	}
}

func TestScanSheetStaleFullDimension(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header")
	f.SetCellValue(sheetName, "A2", "value")
	if err := f.SetSheetDimension(sheetName, "A1:XFD1048576"); err != nil {
		t.Fatalf("Failed to set dimension: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "stale.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	result, err := ScanSheet(tmpFile, sheetName, 1)
	if err != nil {
		t.Fatalf("ScanSheet failed: %v", err)
	}
	if result.MaxRow != 1048576 {
		t.Errorf("Expected max row 1048576, got %d", result.MaxRow)
	}
	if result.LastPopulatedRow != 2 || result.RealRowCount != 1 {
		t.Errorf("Expected (last=2, real=1), got (last=%d, real=%d)",
			result.LastPopulatedRow, result.RealRowCount)
	}
}

func TestScanSheetMatchesScanGrid(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	sheetName := "Sheet1"
	f.SetCellValue(sheetName, "A1", "Header")
	f.SetCellValue(sheetName, "C3", "x")
	f.SetCellValue(sheetName, "B5", 0)
	f.SetCellValue(sheetName, "A7", "\t")
	if err := f.SetSheetDimension(sheetName, "A1:D12"); err != nil {
		t.Fatalf("Failed to set dimension: %v", err)
	}

	tmpFile := filepath.Join(t.TempDir(), "match.xlsx")
	if err := f.SaveAs(tmpFile); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}

	f2, err := excelize.OpenFile(tmpFile)
	if err != nil {
		t.Fatalf("Failed to open test file: %v", err)
	}
	defer f2.Close()
	rows, err := f2.GetRows(sheetName)
	if err != nil {
		t.Fatalf("GetRows failed: %v", err)
	}

	for _, headerRow := range []int{0, 1, 5, 20} {
		want := ScanGrid(NewGrid(rows, 12, 4), sheetName, headerRow)
		got, err := ScanSheet(tmpFile, sheetName, headerRow)
		if err != nil {
			t.Fatalf("ScanSheet failed: %v", err)
		}
		got.Elapsed = 0
		if got != want {
			t.Errorf("header %d: ScanSheet = %+v, expected %+v", headerRow, got, want)
		}
	}
}
