// Package report formats discovered code regions for the CLI surface.
package report

import (
	"fmt"
	"io"

	"github.com/retroenv/n64codescan/internal/region"
	"github.com/retroenv/n64codescan/internal/romutil"
)

// Alignment is the byte alignment region bounds are rounded to for display.
const Alignment = 16

// Write emits one line per region to w: the 16-byte-aligned start/end
// (rounded down/up respectively), the length in bytes, and whether
// microcode was detected. When trueRanges is set, the unrounded offsets are
// printed alongside, with a warning when the true start isn't 16-byte
// aligned.
func Write(w io.Writer, regions []region.Rom, trueRanges bool) error {
	for _, r := range regions {
		alignedStart := romutil.RoundDownMultiple(r.Start, Alignment)
		alignedEnd := romutil.RoundUpMultiple(r.End, Alignment)

		line := fmt.Sprintf("0x%06X-0x%06X (%d bytes)", alignedStart, alignedEnd, alignedEnd-alignedStart)
		if r.HasRSP {
			line += " [microcode]"
		}

		if trueRanges {
			line += fmt.Sprintf(" true=0x%06X-0x%06X", r.Start, r.End)
			if r.Start%Alignment != 0 {
				line += " (warning: true start is not 16-byte aligned)"
			}
		}

		if _, err := fmt.Fprintln(w, line); err != nil {
			return fmt.Errorf("writing region line: %w", err)
		}
	}

	return nil
}
