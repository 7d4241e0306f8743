package models

// WorkbookScan represents the scan of a whole workbook, sheets in workbook order.
type WorkbookScan struct {
	// Source is the workbook path as it was given.
	Source string `json:"source"`
	// BookName is the workbook file name (no path).
	BookName string `json:"book_name"`
	// Sheets holds one result per sheet.
	Sheets []ScanResult `json:"sheets"`
}
