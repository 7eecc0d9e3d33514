package mips

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestIsValidRSP_BasicCases(t *testing.T) {
	assert.True(t, IsValidRSP(nop))
	assert.True(t, IsValidRSP(jrRa))
	assert.False(t, IsValidRSP(0xFFFFFFFF))
}

func TestIsValidRSP_RejectsCPUOnlyInstructions(t *testing.T) {
	words := []uint32{
		encodeI(opLwc1, uint32(RegT0), uint32(RegT1), 0),
		encodeI(opSwc1, uint32(RegT0), uint32(RegT1), 0),
		encodeR(opCop0, copCT, uint32(RegT0), 0, 0, 0),
		encodeR(opCop0, copCF, uint32(RegT0), 0, 0, 0),
		encodeI(opCache, uint32(RegT0), (4<<2)|1, 0),
	}
	for _, word := range words {
		assert.False(t, IsValidRSP(word))
	}
}

func TestIsValidRSP_Cop0RegisterRange(t *testing.T) {
	assert.True(t, IsValidRSP(encodeR(opCop0, copMT, uint32(RegT0), 15, 0, 0)))
	assert.False(t, IsValidRSP(encodeR(opCop0, copMT, uint32(RegT0), 16, 0, 0)))
}

func TestIsValidRSP_WriteToZero(t *testing.T) {
	word := encodeR(opSpecial, uint32(RegT0), uint32(RegT1), uint32(RegZero), 0, fnAddu)
	assert.False(t, IsValidRSP(word))
}

func TestIsValidRSP_UnusedOnN64NotRejected(t *testing.T) {
	// the RSP validator has no "unused on N64" list of its own; ll/sc are
	// rejected for the CPU but are architecturally decodable words that the
	// RSP validator does not special-case.
	word := encodeI(opLl, uint32(RegT0), uint32(RegT1), 0)
	assert.True(t, IsValidRSP(word))
}
