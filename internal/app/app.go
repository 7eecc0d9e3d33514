// Package app provides the main application helpers shared by the root
// command: version banner printing and per-ROM info logging.
package app

import (
	"fmt"

	"github.com/retroenv/n64codescan/internal/options"
	"github.com/retroenv/retrogolib/buildinfo"
	"github.com/retroenv/retrogolib/log"
)

// PrintBanner prints application version information, unless quiet mode is
// set.
func PrintBanner(logger *log.Logger, opts options.Program, version, commit, date string) {
	if opts.Quiet {
		return
	}

	logger.Info("n64codescan", log.String("version", buildinfo.Version(version, commit, date)))
}

// PrintInfo logs a summary line for the ROM about to be scanned.
func PrintInfo(logger *log.Logger, opts options.Program, path string, romSize int) {
	if opts.Quiet {
		return
	}

	logger.Info("Scanning ROM",
		log.String("file", path),
		log.Int("size", romSize),
	)
}

// PrintResult logs the "Found N code regions" summary line ahead of the
// per-region detail lines.
func PrintResult(logger *log.Logger, opts options.Program, path string, regionCount int) {
	if opts.Quiet {
		return
	}

	logger.Info(fmt.Sprintf("Found %d code regions", regionCount), log.String("file", path))
}
