// Package engine drives the region discovery pipeline: it scans a ROM for
// return sites, grows a candidate region around each one, trims its
// boundaries, and merges adjacent regions across gaps of valid CPU or RSP
// code.
package engine

import (
	"github.com/retroenv/n64codescan/internal/arch/mips"
	"github.com/retroenv/n64codescan/internal/region"
	"github.com/retroenv/n64codescan/internal/scanner"
)

// MicrocodeCheckThreshold bounds how large a gap between two regions may be
// before the merge step gives up without even checking its contents.
const MicrocodeCheckThreshold = 1024 * 4

// FindCodeRegions scans rom and returns the code regions it discovers, in
// ascending address order.
func FindCodeRegions(rom []byte) []region.Rom {
	returns := scanner.FindReturnLocations(rom)

	var regions []region.Rom

	i := 0
	for i < len(returns) {
		addr := returns[i]

		cur := region.Rom{
			Start: scanner.FindCodeStart(rom, addr),
			End:   scanner.FindCodeEnd(rom, addr),
		}

		i++
		for i < len(returns) && returns[i] < cur.End {
			i++
		}

		scanner.TrimRegion(rom, &cur)

		merged := false
		if len(regions) > 0 {
			merged = tryMerge(rom, &regions[len(regions)-1], cur)
		}
		if !merged {
			regions = append(regions, cur)
		}

		latest := &regions[len(regions)-1]
		extendRSPTail(rom, latest, len(rom))
		scanner.TrimRegion(rom, latest)
		for i < len(returns) && returns[i] < latest.End {
			i++
		}
	}

	return regions
}

// tryMerge attempts to fold cur into prev across the gap between them. It
// reports whether the merge happened.
func tryMerge(rom []byte, prev *region.Rom, cur region.Rom) bool {
	gap := cur.Start - prev.End
	if gap < 0 || gap >= MicrocodeCheckThreshold {
		return false
	}

	if scanner.CheckRangeCPU(rom, prev.End, cur.Start) {
		prev.End = cur.End
		return true
	}

	if scanner.CheckRangeRSP(rom, prev.End, cur.Start) {
		prev.HasRSP = true
		prev.End = cur.End
		return true
	}

	return false
}

// extendRSPTail, when r carries RSP microcode, advances r.End forward in
// 4-byte steps while the next word is valid RSP code and the buffer has
// bytes left.
func extendRSPTail(rom []byte, r *region.Rom, n int) {
	if !r.HasRSP {
		return
	}

	for r.End+region.InstructionSize <= n {
		if !mips.IsValidRSP(region.Word(rom, r.End)) {
			break
		}
		r.End += region.InstructionSize
	}
}
