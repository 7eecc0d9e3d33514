// Package scanner implements the low-level primitives the region discovery
// engine composes: finding `jr $ra` return sites, growing a region outward
// from one, trimming its boundaries, and validating the gap between two
// regions before they merge.
package scanner

import (
	"github.com/retroenv/n64codescan/internal/arch/mips"
	"github.com/retroenv/n64codescan/internal/region"
	"github.com/retroenv/n64codescan/internal/startanalysis"
)

// jrRaWord is the fixed encoding of `jr $ra`.
const jrRaWord = 0x03E00008

// MinRegionInstructions is the minimum instruction count a region must have
// to be considered real code. The check is disabled by default; engines
// that want it enforce it explicitly against Rom.Len().
const MinRegionInstructions = 4

// FindReturnLocations scans rom for `jr $ra` words whose delay slot passes
// the CPU or RSP validator, and returns their offsets in ascending order.
func FindReturnLocations(rom []byte) []int {
	var sites []int

	last := len(rom) - region.InstructionSize
	for addr := region.HeaderSize; addr <= last-region.InstructionSize; addr += region.InstructionSize {
		if region.Word(rom, addr) != jrRaWord {
			continue
		}
		delaySlot := region.Word(rom, addr+region.InstructionSize)
		if mips.IsValidCPU(delaySlot) || mips.IsValidRSP(delaySlot) {
			sites = append(sites, addr)
		}
	}
	return sites
}

// FindCodeStart walks backward from addr while the preceding word passes
// the CPU validator, and returns the offset of the earliest accepted word.
func FindCodeStart(rom []byte, addr int) int {
	start := addr
	for start > region.HeaderSize {
		prev := start - region.InstructionSize
		if !mips.IsValidCPU(region.Word(rom, prev)) {
			break
		}
		start = prev
	}
	return start
}

// FindCodeEnd walks forward from addr while the word passes the CPU
// validator, and returns the offset of the first rejecting word.
func FindCodeEnd(rom []byte, addr int) int {
	end := addr
	last := len(rom)
	for end < last {
		if !mips.IsValidCPU(region.Word(rom, end)) {
			break
		}
		end += region.InstructionSize
	}
	return end
}

// TrimRegion mutates r in place: it strips invalid/uninitialized-register
// head instructions and zero padding from the start, and walks the end
// back to the delay slot of the region's final unconditional branch.
func TrimRegion(rom []byte, r *region.Rom) {
	r.Start += region.InstructionSize * startanalysis.Count(rom, *r)

	for r.End > r.Start && region.Word(rom, r.Start) == 0 {
		r.Start += region.InstructionSize
	}

	for r.End > r.Start {
		tail := r.End - 2*region.InstructionSize
		if tail < r.Start {
			break
		}
		if endsInBranchDelaySlot(rom, tail) {
			break
		}
		r.End -= region.InstructionSize
	}
}

// endsInBranchDelaySlot reports whether the word at tail decodes to one of
// `b`, `j`, or `jr`: the instructions a well-formed function body ends with,
// immediately before its delay slot.
func endsInBranchDelaySlot(rom []byte, tail int) bool {
	instr := mips.Decode(region.Word(rom, tail))
	switch instr.ID() {
	case mips.IDJ, mips.IDJr:
		return true
	case mips.IDBeq:
		return instr.Rs() == mips.RegZero && instr.Rt() == mips.RegZero
	default:
		return false
	}
}

// CheckRangeCPU reports whether every word in [lo, hi) passes the CPU
// validator, with no run of three or more identical load/store words.
func CheckRangeCPU(rom []byte, lo, hi int) bool {
	return checkRange(rom, lo, hi, mips.IsValidCPU)
}

// CheckRangeRSP reports whether every word in [lo, hi) passes the RSP
// validator, with no run of three or more identical load/store words.
func CheckRangeRSP(rom []byte, lo, hi int) bool {
	return checkRange(rom, lo, hi, mips.IsValidRSP)
}

func checkRange(rom []byte, lo, hi int, valid func(uint32) bool) bool {
	var run int
	var runWord uint32

	for addr := lo; addr < hi; addr += region.InstructionSize {
		word := region.Word(rom, addr)
		if !valid(word) {
			return false
		}

		if word == runWord && isLoadOrStoreWord(word) {
			run++
			if run >= 3 {
				return false
			}
		} else {
			runWord = word
			run = 1
			if !isLoadOrStoreWord(word) {
				run = 0
			}
		}
	}
	return true
}

func isLoadOrStoreWord(word uint32) bool {
	instr := mips.Decode(word)
	return instr.DoesLoad() || instr.DoesStore()
}
