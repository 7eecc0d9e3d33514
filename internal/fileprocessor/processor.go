// Package fileprocessor orchestrates the load -> scan -> report workflow
// for one or more ROM files.
package fileprocessor

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/retroenv/n64codescan/internal/app"
	"github.com/retroenv/n64codescan/internal/engine"
	"github.com/retroenv/n64codescan/internal/loader"
	"github.com/retroenv/n64codescan/internal/options"
	"github.com/retroenv/n64codescan/internal/region"
	"github.com/retroenv/n64codescan/internal/report"
	"github.com/retroenv/n64codescan/internal/scanner"
	"github.com/retroenv/retrogolib/log"
)

// ProcessFile loads the ROM named by opts.Input, runs the region discovery
// engine over it, and writes the report to writer.
func ProcessFile(logger *log.Logger, opts options.Program, writer io.Writer) error {
	rom, err := loader.Load(opts.Input)
	if err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	app.PrintInfo(logger, opts, rom.Path, len(rom.Data))

	regions := engine.FindCodeRegions(rom.Data)
	if opts.MinRegion {
		regions = discardSmallRegions(regions)
	}

	app.PrintResult(logger, opts, rom.Path, len(regions))

	if err := report.Write(writer, regions, opts.TrueRanges); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}

	return nil
}

// discardSmallRegions drops regions shorter than scanner.MinRegionInstructions
// words, honoring the -min-region runtime override of spec.md's
// compile-time-disabled-by-default tunable.
func discardSmallRegions(regions []region.Rom) []region.Rom {
	kept := regions[:0]
	for _, r := range regions {
		if r.Len() >= scanner.MinRegionInstructions {
			kept = append(kept, r)
		}
	}
	return kept
}

// GetFilesToProcess returns the list of ROM files to process based on
// options: either the glob matches for -batch, or the single positional
// input file.
func GetFilesToProcess(opts *options.Program) ([]string, error) {
	if opts.Batch != "" {
		matches, err := filepath.Glob(opts.Batch)
		if err != nil {
			return nil, fmt.Errorf("globbing batch pattern: %w", err)
		}
		return matches, nil
	}
	return []string{opts.Input}, nil
}
