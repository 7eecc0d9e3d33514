package mips

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

// encodeR builds an R-type instruction word.
func encodeR(op, rs, rt, rd, sa, funct uint32) uint32 {
	return (op << 26) | (rs << 21) | (rt << 16) | (rd << 11) | (sa << 6) | funct
}

// encodeI builds an I-type instruction word.
func encodeI(op, rs, rt uint32, imm uint16) uint32 {
	return (op << 26) | (rs << 21) | (rt << 16) | uint32(imm)
}

const nop = uint32(0x00000000)
const jrRa = uint32(0x03E00008)

func TestDecode_Nop(t *testing.T) {
	instr := Decode(nop)
	assert.Equal(t, IDNop, instr.ID())
	assert.True(t, instr.Valid())
}

func TestDecode_JrRa(t *testing.T) {
	instr := Decode(jrRa)
	assert.Equal(t, IDJr, instr.ID())
	assert.Equal(t, RegRa, instr.Rs())
	assert.True(t, instr.IsUnconditionalBranch())
}

func TestDecode_AllOnes(t *testing.T) {
	// 0xFFFFFFFF decodes structurally to `sd $ra, -1($ra)`, a real MIPS III
	// encoding, but 64-bit GPR instructions are never emitted by N64
	// O32-ABI compilers and are treated as unavailable.
	instr := Decode(0xFFFFFFFF)
	assert.False(t, instr.Valid())
	assert.False(t, IsValidCPU(0xFFFFFFFF))
}

func TestDecode_64BitGPRInstructionsAreUnavailable(t *testing.T) {
	words := []uint32{
		encodeI(opDaddi, uint32(RegT0), uint32(RegT1), 1),
		encodeR(opSpecial, uint32(RegT0), uint32(RegT1), uint32(RegT2), 0, fnDadd),
		encodeR(opCop0, copDMT, uint32(RegT0), 0, 0, 0),
	}
	for _, word := range words {
		assert.False(t, Decode(word).Valid())
	}
}

func TestDecode_B_IsBeqZeroZero(t *testing.T) {
	word := encodeI(opBeq, uint32(RegZero), uint32(RegZero), 0x10)
	instr := Decode(word)
	assert.Equal(t, IDBeq, instr.ID())
	assert.True(t, instr.IsUnconditionalBranch())
}

func TestDecode_AddiuSpSp(t *testing.T) {
	word := encodeI(opAddiu, uint32(RegSp), uint32(RegSp), 0xFFF8) // addiu $sp, $sp, -8
	instr := Decode(word)
	assert.Equal(t, IDAddiu, instr.ID())
	assert.Equal(t, RegSp, instr.Rs())
	assert.Equal(t, RegSp, instr.Rt())
	assert.True(t, instr.ModifiesRt())
}

func TestDecode_SwRaSp(t *testing.T) {
	word := encodeI(opSw, uint32(RegSp), uint32(RegRa), 0)
	instr := Decode(word)
	assert.Equal(t, IDSw, instr.ID())
	assert.True(t, instr.DoesStore())
	assert.False(t, instr.DoesLoad())
}

func TestDecode_CacheOpAndType(t *testing.T) {
	// op=4 (hit invalidate), type=1 (data): rt = (4<<2)|1 = 17
	word := encodeI(opCache, uint32(RegT0), 17, 0)
	instr := Decode(word)
	assert.Equal(t, IDCache, instr.ID())
	assert.Equal(t, uint32(4), instr.CacheOp())
	assert.Equal(t, uint32(1), instr.CacheType())
}

func TestDecode_Mtc0RegisterField(t *testing.T) {
	word := encodeR(opCop0, copMT, uint32(RegT0), 7, 0, 0)
	instr := Decode(word)
	assert.Equal(t, IDMtc0, instr.ID())
	assert.Equal(t, 7, instr.Cop0Reg())
}
