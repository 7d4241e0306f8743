// Package report renders scan results as a Markdown report.
package report

import (
	"bytes"
	"fmt"
	"os"

	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
)

// Options configures report rendering.
type Options struct {
	// OmitTimings drops the elapsed line of every sheet block, making the
	// report identical across runs over an unchanged workbook.
	OmitTimings bool
}

// Render formats results as Markdown, one block per sheet in the given order.
// source names the workbook in the heading.
func Render(source string, results []models.ScanResult, opts Options) []byte {
	var buf bytes.Buffer

	fmt.Fprintf(&buf, "# Real row count analysis: %s\n\n", source)
	for _, r := range results {
		fmt.Fprintf(&buf, "## Sheet: **%s**\n", r.Sheet)
		fmt.Fprintf(&buf, "- Header row: **%d**\n", r.HeaderRow)
		fmt.Fprintf(&buf, "- Excel max_row: **%d**\n", r.MaxRow)
		fmt.Fprintf(&buf, "- Last populated row: **%d**\n", r.LastPopulatedRow)
		fmt.Fprintf(&buf, "- Real row count: **%d**\n", r.RealRowCount)
		if !opts.OmitTimings {
			fmt.Fprintf(&buf, "- Elapsed: %.3f s\n", r.Elapsed.Seconds())
		}
		buf.WriteString("\n")
	}

	return buf.Bytes()
}

// Write renders the report and writes it to path, replacing any existing file.
func Write(path, source string, results []models.ScanResult, opts Options) error {
	data := Render(source, results, opts)
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
