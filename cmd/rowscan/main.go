// Package main provides the CLI entry point for rowscan-go.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/ukaji3/rowscan-go/pkg/rowscan"
	"go.uber.org/zap"
)

// app carries state shared by the command tree for one invocation.
type app struct {
	configPath string
	verbose    bool

	flags  flagValues
	opts   rowscan.Options
	logger *zap.Logger
}

// flagValues holds raw flag values; only flags set on the command line
// override the loaded options.
type flagValues struct {
	input       string
	output      string
	headerRow   int
	workers     int
	omitTimings bool

	// Defaults differ per command.
	flattenPreview int
	slimPreview    int
}

func main() {
	if err := configureThreadEnv(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "rowscan",
		Short: "Find real row counts in Excel workbooks and flatten coding taxonomies",
		Long: `rowscan-go scans every sheet of a workbook bottom-up to find the last
populated row, ignoring the inflated extent spreadsheet tools often report.
It also flattens a two-level coding taxonomy workbook into Parquet and JSON Lines.`,
		SilenceUsage:      true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML config file (default: built-in defaults)")
	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(a.newCountCmd(), a.newFlattenCmd(), a.newSlimCmd())
	return rootCmd
}

// setup builds the logger and resolves options: defaults, then the config
// file, then flags set on the command line.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	logger, err := newLogger(a.verbose)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	a.logger = logger

	a.opts = rowscan.DefaultOptions()
	if a.configPath != "" {
		a.opts, err = rowscan.LoadOptions(a.configPath)
		if err != nil {
			return err
		}
		a.logger.Debug("Loaded config", zap.String("path", a.configPath))
	}

	cmd.Flags().Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "input":
			switch cmd.Name() {
			case "flatten":
				a.opts.TaxonomyInput = a.flags.input
			case "slim":
				a.opts.DictionaryPath = a.flags.input
			default:
				a.opts.InputPath = a.flags.input
			}
		case "output":
			switch cmd.Name() {
			case "flatten":
				a.opts.DictionaryPath = a.flags.output
			case "slim":
				a.opts.SlimPath = a.flags.output
			default:
				a.opts.OutputPath = a.flags.output
			}
		case "header-row":
			a.opts.HeaderRow = a.flags.headerRow
		case "workers":
			a.opts.Workers = a.flags.workers
		case "omit-timings":
			a.opts.OmitTimings = a.flags.omitTimings
		}
	})

	return a.opts.Validate()
}
