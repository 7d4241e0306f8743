package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/ukaji3/rowscan-go/pkg/rowscan/taxonomy"
	"go.uber.org/zap"
)

func (a *app) newSlimCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "slim",
		Short: "Export the Parquet dictionary as slim JSON Lines (code, name, path)",
		Args:  cobra.NoArgs,
		RunE:  a.runSlim,
	}

	cmd.Flags().StringVarP(&a.flags.input, "input", "i", "", "Parquet dictionary (default: proc_he_codes.parquet)")
	cmd.Flags().StringVarP(&a.flags.output, "output", "o", "", "JSON Lines file (default: hepa_codes_slim.jsonl)")
	cmd.Flags().IntVar(&a.flags.slimPreview, "preview", 10, "Lines to print after writing")
	return cmd
}

func (a *app) runSlim(cmd *cobra.Command, args []string) error {
	a.logger.Debug("Reading dictionary", zap.String("input", a.opts.DictionaryPath))

	entries, err := taxonomy.ReadParquet(a.opts.DictionaryPath)
	if err != nil {
		return err
	}

	n, err := taxonomy.WriteSlimJSONL(a.opts.SlimPath, entries)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Wrote %d records to %s\n", n, a.opts.SlimPath)
	if a.flags.slimPreview <= 0 {
		return nil
	}

	lines, err := taxonomy.PreviewLines(a.opts.SlimPath, a.flags.slimPreview)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "\nFirst %d lines:\n\n", a.flags.slimPreview)
	for _, line := range lines {
		fmt.Fprintln(out, line)
	}
	return nil
}
