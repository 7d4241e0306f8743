// Package rowscan finds the real populated extent of every sheet in a workbook.
package rowscan

import (
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/ukaji3/rowscan-go/pkg/rowscan/models"
	"gopkg.in/yaml.v3"
)

// ProgressFunc is called once per finished sheet, in completion order.
// done counts finished sheets including this one.
type ProgressFunc func(done, total int, result models.ScanResult)

// Options configures a scan run and the taxonomy export.
type Options struct {
	// InputPath is the workbook to scan.
	InputPath string `yaml:"input"`
	// OutputPath is the report file, overwritten on every run.
	OutputPath string `yaml:"output"`
	// HeaderRow is the row below which data rows are counted (1-based, 0 for none).
	HeaderRow int `yaml:"header_row"`
	// Workers bounds the number of sheets scanned at once.
	// Zero or less means one worker per CPU.
	Workers int `yaml:"workers"`
	// OmitTimings drops elapsed times from the report.
	OmitTimings bool `yaml:"omit_timings"`

	// TaxonomyInput is the taxonomy workbook read by the flattener.
	TaxonomyInput string `yaml:"taxonomy_input"`
	// DictionaryPath is the Parquet dictionary written by the flattener.
	DictionaryPath string `yaml:"dictionary"`
	// SlimPath is the JSON Lines file written by the slim exporter.
	SlimPath string `yaml:"slim"`

	// Progress receives per-sheet completion events.
	Progress ProgressFunc `yaml:"-"`
}

// DefaultOptions returns default options.
func DefaultOptions() Options {
	return Options{
		InputPath:      "Data_Base.xlsx",
		OutputPath:     "real_row_counts.md",
		HeaderRow:      1,
		TaxonomyInput:  "proc_he_codes.xlsx",
		DictionaryPath: "proc_he_codes.parquet",
		SlimPath:       "hepa_codes_slim.jsonl",
	}
}

// LoadOptions reads a YAML file over the defaults. Keys missing from the
// file keep their default value; unknown keys are rejected.
func LoadOptions(path string) (Options, error) {
	opts := DefaultOptions()

	f, err := os.Open(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return opts, fmt.Errorf("%w: %s", ErrFileNotFound, path)
		}
		return opts, err
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(&opts); err != nil && !errors.Is(err, io.EOF) {
		return opts, fmt.Errorf("decode config %s: %w", path, err)
	}

	return opts, opts.Validate()
}

// Validate checks option values that would make a scan meaningless.
func (o Options) Validate() error {
	if o.HeaderRow < 0 {
		return fmt.Errorf("header row must not be negative: %d", o.HeaderRow)
	}
	return nil
}

// WorkerCount returns the effective worker pool size.
func (o Options) WorkerCount() int {
	if o.Workers > 0 {
		return o.Workers
	}
	return runtime.NumCPU()
}
