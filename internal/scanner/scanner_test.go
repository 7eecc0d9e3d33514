package scanner

import (
	"testing"

	"github.com/retroenv/n64codescan/internal/region"
	"github.com/retroenv/retrogolib/assert"
)

func putWord(rom []byte, offset int, word uint32) {
	rom[offset] = byte(word)
	rom[offset+1] = byte(word >> 8)
	rom[offset+2] = byte(word >> 16)
	rom[offset+3] = byte(word >> 24)
}

// minimalFunction is `addiu $sp,$sp,-8; sw $ra,0($sp); lw $ra,0($sp);
// jr $ra; addiu $sp,$sp,8`, the scenario 2 function from the spec.
var minimalFunction = []uint32{
	0x27BDFFF8, // addiu $sp, $sp, -8
	0xAFBF0000, // sw $ra, 0($sp)
	0x8FBF0000, // lw $ra, 0($sp)
	0x03E00008, // jr $ra
	0x27BD0008, // addiu $sp, $sp, 8
}

func romWithWordsAt(offset int, words []uint32, total int) []byte {
	rom := make([]byte, total)
	for i, w := range words {
		putWord(rom, offset+i*4, w)
	}
	return rom
}

func TestFindReturnLocations_Empty(t *testing.T) {
	rom := make([]byte, 0x2000)
	assert.Equal(t, 0, len(FindReturnLocations(rom)))
}

func TestFindReturnLocations_FindsMinimalFunction(t *testing.T) {
	rom := romWithWordsAt(region.HeaderSize, minimalFunction, 0x2000)
	sites := FindReturnLocations(rom)
	assert.Equal(t, 1, len(sites))
	assert.Equal(t, region.HeaderSize+3*4, sites[0])
}

func TestFindReturnLocations_RejectsReturnWithInvalidDelaySlot(t *testing.T) {
	rom := make([]byte, 0x2000)
	putWord(rom, region.HeaderSize, jrRaWord)
	putWord(rom, region.HeaderSize+4, 0xFFFFFFFF)
	assert.Equal(t, 0, len(FindReturnLocations(rom)))
}

func TestFindCodeStart_WalksBackToHeaderBoundary(t *testing.T) {
	rom := romWithWordsAt(region.HeaderSize, minimalFunction, 0x2000)
	start := FindCodeStart(rom, region.HeaderSize+3*4)
	assert.Equal(t, region.HeaderSize, start)
}

func TestFindCodeEnd_StopsAtFirstInvalidWord(t *testing.T) {
	rom := romWithWordsAt(region.HeaderSize, minimalFunction, 0x2000)
	// Everything past the function is zero, which decodes to nop and is
	// itself valid CPU, so plant an invalid word right after.
	putWord(rom, region.HeaderSize+len(minimalFunction)*4, 0xFFFFFFFF)
	end := FindCodeEnd(rom, region.HeaderSize)
	assert.Equal(t, region.HeaderSize+len(minimalFunction)*4, end)
}

func TestTrimRegion_MinimalFunction(t *testing.T) {
	rom := romWithWordsAt(region.HeaderSize, minimalFunction, 0x2000)
	// End already sits exactly 8 bytes past jr $ra (its delay slot is the
	// last word), so trimming must leave the region untouched.
	r := region.Rom{Start: region.HeaderSize, End: region.HeaderSize + len(minimalFunction)*4}
	TrimRegion(rom, &r)
	assert.Equal(t, region.HeaderSize, r.Start)
	assert.Equal(t, region.HeaderSize+len(minimalFunction)*4, r.End)
}

func TestTrimRegion_StripsLeadingZeroPadding(t *testing.T) {
	rom := make([]byte, 0x2000)
	for i, w := range minimalFunction {
		putWord(rom, region.HeaderSize+0x10+i*4, w)
	}
	r := region.Rom{Start: region.HeaderSize, End: region.HeaderSize + 0x10 + len(minimalFunction)*4}
	TrimRegion(rom, &r)
	assert.Equal(t, region.HeaderSize+0x10, r.Start)
	assert.Equal(t, region.HeaderSize+0x10+len(minimalFunction)*4, r.End)
}

func TestTrimRegion_WalksBackPastTrailingLinkedJumps(t *testing.T) {
	rom := make([]byte, 0x2000)
	for i, w := range minimalFunction {
		putWord(rom, region.HeaderSize+i*4, w)
	}
	// jr $ra; nop; then a run of valid jal words that happen to be valid
	// CPU but must not be kept as part of the function body.
	putWord(rom, region.HeaderSize+4*4, 0x00000000)
	for i := 0; i < 5; i++ {
		putWord(rom, region.HeaderSize+(5+i)*4, 0x0C000000) // jal 0x0
	}
	r := region.Rom{Start: region.HeaderSize, End: region.HeaderSize + 10*4}
	TrimRegion(rom, &r)
	assert.Equal(t, region.HeaderSize, r.Start)
	assert.Equal(t, region.HeaderSize+5*4, r.End)
}

func TestTrimRegion_Idempotent(t *testing.T) {
	rom := make([]byte, 0x2000)
	for i, w := range minimalFunction {
		putWord(rom, region.HeaderSize+0x10+i*4, w)
	}
	r := region.Rom{Start: region.HeaderSize, End: region.HeaderSize + 0x10 + len(minimalFunction)*4}
	TrimRegion(rom, &r)
	again := r
	TrimRegion(rom, &again)
	assert.Equal(t, r.Start, again.Start)
	assert.Equal(t, r.End, again.End)
}

func TestCheckRangeCPU_AcceptsAllNop(t *testing.T) {
	rom := make([]byte, 0x2000)
	assert.True(t, CheckRangeCPU(rom, region.HeaderSize, region.HeaderSize+0x40))
}

func TestCheckRangeCPU_RejectsInvalidWord(t *testing.T) {
	rom := make([]byte, 0x2000)
	putWord(rom, region.HeaderSize+8, 0xFFFFFFFF)
	assert.False(t, CheckRangeCPU(rom, region.HeaderSize, region.HeaderSize+0x40))
}

func TestCheckRangeCPU_RejectsThreeIdenticalLoads(t *testing.T) {
	rom := make([]byte, 0x2000)
	load := uint32(0x8C880000) // lw $t0, 0($a0)
	for i := 0; i < 3; i++ {
		putWord(rom, region.HeaderSize+i*4, load)
	}
	assert.False(t, CheckRangeCPU(rom, region.HeaderSize, region.HeaderSize+0x10))
}

func TestCheckRangeCPU_AcceptsThreeIdenticalArithmeticWords(t *testing.T) {
	rom := make([]byte, 0x2000)
	addu := uint32(0x00851821) // addu $v1, $a0, $a1
	for i := 0; i < 3; i++ {
		putWord(rom, region.HeaderSize+i*4, addu)
	}
	assert.True(t, CheckRangeCPU(rom, region.HeaderSize, region.HeaderSize+0x10))
}

func TestCheckRangeRSP_RejectsCPUOnlyWords(t *testing.T) {
	rom := make([]byte, 0x2000)
	putWord(rom, region.HeaderSize, 0xC4080000) // lwc1 $f8, 0($zero)
	assert.False(t, CheckRangeRSP(rom, region.HeaderSize, region.HeaderSize+4))
}
