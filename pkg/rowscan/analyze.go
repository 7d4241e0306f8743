package rowscan

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
	"github.com/ukaji3/rowscan-go/pkg/rowscan/parser"
	"github.com/xuri/excelize/v2"
	"golang.org/x/sync/errgroup"
)

// scanSheet is the per-sheet task; tests replace it to control timing.
var scanSheet = parser.ScanSheet

// SheetNames returns the sheet names of a workbook in workbook order.
func SheetNames(path string) ([]string, error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidFormat, path, err)
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// Analyze scans every sheet of the workbook at path and returns one result
// per sheet in workbook order.
//
// Sheets are scanned by a pool of opts.WorkerCount() goroutines, each
// opening the workbook on its own. The first failing sheet cancels the
// remaining work and its error is returned without any results.
func Analyze(ctx context.Context, path string, opts Options) ([]models.ScanResult, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	names, err := SheetNames(path)
	if err != nil {
		return nil, err
	}

	completed := make(chan models.ScanResult, len(names))
	collected := make(chan []models.ScanResult, 1)

	go func() {
		results := make([]models.ScanResult, 0, len(names))
		for res := range completed {
			results = append(results, res)
			if opts.Progress != nil {
				opts.Progress(len(results), len(names), res)
			}
		}
		collected <- results
	}()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.WorkerCount())

	for i, name := range names {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			res, err := scanSheet(path, name, opts.HeaderRow)
			if err != nil {
				return NewScanError(name, "scan", err)
			}
			res.Index = i
			completed <- res
			return nil
		})
	}

	err = g.Wait()
	close(completed)
	results := <-collected
	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b models.ScanResult) int {
		return cmp.Compare(a.Index, b.Index)
	})
	return results, nil
}

// Scan runs Analyze and wraps the results with the workbook name.
func Scan(ctx context.Context, path string, opts Options) (*models.WorkbookScan, error) {
	results, err := Analyze(ctx, path, opts)
	if err != nil {
		return nil, err
	}

	return &models.WorkbookScan{
		Source:   path,
		BookName: filepath.Base(path),
		Sheets:   results,
	}, nil
}
