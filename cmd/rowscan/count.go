package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rowscan-go/pkg/rowscan"
	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
	"github.com/ukaji3/rowscan-go/pkg/rowscan/report"
	"go.uber.org/zap"
)

func (a *app) newCountCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "count",
		Short: "Detect the real populated row count of every sheet",
		Args:  cobra.NoArgs,
		RunE:  a.runCount,
	}

	cmd.Flags().StringVarP(&a.flags.input, "input", "i", "", "Workbook to scan (default: Data_Base.xlsx)")
	cmd.Flags().StringVarP(&a.flags.output, "output", "o", "", "Report file (default: real_row_counts.md)")
	cmd.Flags().IntVar(&a.flags.headerRow, "header-row", 1, "Row below which data rows are counted")
	cmd.Flags().IntVarP(&a.flags.workers, "workers", "w", 0, "Sheets scanned in parallel (default: CPU count)")
	cmd.Flags().BoolVar(&a.flags.omitTimings, "omit-timings", false, "Leave elapsed times out of the report")
	return cmd
}

func (a *app) runCount(cmd *cobra.Command, args []string) error {
	started := time.Now()
	defer func() {
		a.logger.Info(fmt.Sprintf("Total runtime: %.2f s", time.Since(started).Seconds()))
	}()

	opts := a.opts
	opts.Progress = func(done, total int, res models.ScanResult) {
		a.logger.Info("Sheet scanned",
			zap.String("sheet", res.Sheet),
			zap.Int("done", done),
			zap.Int("total", total))
	}

	a.logger.Debug("Scanning workbook",
		zap.String("input", opts.InputPath),
		zap.Int("header_row", opts.HeaderRow),
		zap.Int("workers", opts.WorkerCount()))

	wb, err := rowscan.Scan(cmd.Context(), opts.InputPath, opts)
	if err != nil {
		return fmt.Errorf("scan failed: %w", err)
	}

	reportOpts := report.Options{OmitTimings: opts.OmitTimings}
	if err := report.Write(opts.OutputPath, wb.Source, wb.Sheets, reportOpts); err != nil {
		return err
	}

	for _, r := range wb.Sheets {
		a.logger.Info(r.Sheet,
			zap.Int("real_rows", r.RealRowCount),
			zap.Int("last", r.LastPopulatedRow),
			zap.Int("excel", r.MaxRow),
			zap.Int("trailing_blank", r.TrailingBlankRows()))
	}
	a.logger.Info("Report written", zap.String("path", opts.OutputPath))
	return nil
}
