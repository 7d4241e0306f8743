package main

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
	"github.com/ukaji3/rowscan-go/pkg/rowscan/taxonomy"
	"go.uber.org/zap"
)

func (a *app) newFlattenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "flatten",
		Short: "Flatten a Level 1 / Level 2 taxonomy workbook into a Parquet dictionary",
		Args:  cobra.NoArgs,
		RunE:  a.runFlatten,
	}

	cmd.Flags().StringVarP(&a.flags.input, "input", "i", "", "Taxonomy workbook (default: proc_he_codes.xlsx)")
	cmd.Flags().StringVarP(&a.flags.output, "output", "o", "", "Parquet dictionary (default: proc_he_codes.parquet)")
	cmd.Flags().IntVar(&a.flags.flattenPreview, "preview", 20, "Rows to print after writing")
	return cmd
}

func (a *app) runFlatten(cmd *cobra.Command, args []string) error {
	a.logger.Debug("Flattening taxonomy", zap.String("input", a.opts.TaxonomyInput))

	entries, err := taxonomy.BuildDictionary(a.opts.TaxonomyInput)
	if err != nil {
		return fmt.Errorf("flatten failed: %w", err)
	}

	if err := taxonomy.WriteParquet(a.opts.DictionaryPath, entries); err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d Level-2 codes to %s\n\n", len(entries), a.opts.DictionaryPath)
	if a.flags.flattenPreview > 0 && len(entries) > 0 {
		fmt.Fprintf(out, "First %d rows:\n\n", min(a.flags.flattenPreview, len(entries)))
		fmt.Fprintln(out, previewTable(entries, a.flags.flattenPreview))
	}
	return nil
}

// previewTable renders the first n entries as a bordered text table.
func previewTable(entries []models.TaxonomyEntry, n int) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("hepa_id", "level1_code", "level1_name", "level2_code", "level2_name", "comments", "path")

	for _, e := range entries[:min(n, len(entries))] {
		t.Row(
			strconv.FormatInt(e.HepaID, 10),
			e.Level1Code,
			optional(e.Level1Name),
			e.Level2Code,
			e.Level2Name,
			optional(e.Comments),
			e.Path,
		)
	}
	return t.Render()
}

func optional(s *string) string {
	if s == nil {
		return "<NA>"
	}
	return *s
}
