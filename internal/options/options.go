// Package options contains the program options.
package options

// Parameters contains file path options.
type Parameters struct {
	Input string `flag:"i" usage:"input ROM file"`
	Batch string `flag:"batch" usage:"batch process files matching pattern (e.g. *.z64)"`
}

// Flags contains behavior options.
type Flags struct {
	Debug      bool `flag:"debug" usage:"enable debug logging"`
	Quiet      bool `flag:"q" usage:"quiet mode"`
	TrueRanges bool `flag:"true-ranges" usage:"print unrounded region offsets alongside the 16-byte-aligned ones"`
	MinRegion  bool `flag:"min-region" usage:"discard regions smaller than the minimum instruction count"`
}

// Program options of the code region finder.
type Program struct {
	Parameters
	Flags
}
