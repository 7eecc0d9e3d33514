// Package main implements the main entry point for the N64 ROM code region finder
package main

import (
	"errors"
	"os"

	"github.com/retroenv/n64codescan/internal/app"
	"github.com/retroenv/n64codescan/internal/cli"
	"github.com/retroenv/n64codescan/internal/config"
	"github.com/retroenv/n64codescan/internal/fileprocessor"
	retroapp "github.com/retroenv/retrogolib/app"
	"github.com/retroenv/retrogolib/log"
)

var (
	version = "dev"
	commit  = ""
	date    = ""
)

func main() {
	ctx := retroapp.Context()

	opts, err := cli.ParseFlags()
	if err != nil {
		logger := config.CreateLogger(opts.Debug, opts.Quiet)
		var usageErr *cli.UsageError
		if errors.As(err, &usageErr) {
			app.PrintBanner(logger, opts, version, commit, date)
			usageErr.ShowUsage()
		} else {
			logger.Fatal(err.Error())
		}
		os.Exit(1)
	}

	logger := config.CreateLogger(opts.Debug, opts.Quiet)
	app.PrintBanner(logger, opts, version, commit, date)

	files, err := fileprocessor.GetFilesToProcess(&opts)
	if err != nil {
		logger.Fatal(err.Error())
	}

	for _, file := range files {
		if ctx.Err() != nil {
			logger.Info("Operation cancelled")
			return
		}

		opts.Input = file
		if err := fileprocessor.ProcessFile(logger, opts, os.Stdout); err != nil {
			logger.Error("Scanning failed", log.Err(err))
		}
	}
}
