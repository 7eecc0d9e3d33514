// Package startanalysis implements the start-boundary analyzer: it walks the
// head of a candidate code region and reports how many leading instructions
// reference registers no real function prologue could have initialized yet.
package startanalysis

import (
	"github.com/retroenv/n64codescan/internal/arch/mips"
	"github.com/retroenv/n64codescan/internal/region"
)

// WeakUninitializedCheck treats $v0 and $fv0/$fv0f as initialized. gcc uses
// these registers for the first reference to an uninitialized local of the
// corresponding type, so without this heuristic such (perfectly valid)
// functions would have their head instructions discarded.
const WeakUninitializedCheck = true

type registerState struct {
	gpr [32]bool
	fpr [32]bool
}

func newRegisterState() registerState {
	var s registerState

	s.gpr[mips.RegZero] = true
	s.gpr[mips.RegSp] = true
	s.gpr[mips.RegRa] = true
	s.gpr[mips.RegA0] = true
	s.gpr[mips.RegA1] = true
	s.gpr[mips.RegA2] = true
	s.gpr[mips.RegA3] = true

	s.fpr[mips.FPRA0] = true
	s.fpr[mips.FPRA0F] = true
	s.fpr[mips.FPRA1] = true
	s.fpr[mips.FPRA1F] = true

	if WeakUninitializedCheck {
		s.gpr[mips.RegV0] = true
		s.fpr[mips.FPRV0] = true
		s.fpr[mips.FPRV0F] = true
	}

	return s
}

// Count returns the number of instructions at the head of r that the
// analyzer considers invalid; the caller strips that many instructions from
// the region's start.
func Count(rom []byte, r region.Rom) int {
	state := newRegisterState()

	index := 0
	for {
		offset := r.Start + index*region.InstructionSize
		instr := mips.Decode(region.Word(rom, offset))
		if !isInvalidStartInstruction(instr, state) {
			return index
		}
		index++
	}
}

func isInvalidStartInstruction(instr mips.Instruction, state registerState) bool {
	if instr.ID() == mips.IDNop {
		return true
	}

	if !mips.IsValidCPU(instr.Word()) {
		return true
	}

	if hasZeroOutput(instr) {
		return true
	}

	if referencesUninitialized(instr, state) {
		return true
	}

	if instr.IsUnconditionalBranch() && instr.ID() != mips.IDJr {
		return true
	}
	if instr.IsLinkedJump() {
		return true
	}
	if instr.ID() == mips.IDJr && instr.Rs() == mips.RegZero {
		return true
	}

	if instr.IsShift() && instr.Rt() == mips.RegZero && instr.Sa() != 0 {
		return true
	}

	if instr.ID() == mips.IDMthi || instr.ID() == mips.IDMtlo {
		return true
	}

	if instr.IsCop1ConditionBranch() {
		return true
	}

	if instr.ID() == mips.IDAdd || instr.ID() == mips.IDSub {
		return true
	}

	return false
}

func hasZeroOutput(instr mips.Instruction) bool {
	if instr.ModifiesRd() && instr.Rd() == mips.RegZero {
		return true
	}
	if instr.ModifiesRt() && instr.Rt() == mips.RegZero {
		return true
	}
	return false
}

func referencesUninitialized(instr mips.Instruction, state registerState) bool {
	if hasOperandInput(instr, operandRs) && !state.gpr[instr.Rs()] {
		return true
	}
	if hasOperandInput(instr, operandRd) && !state.gpr[instr.Rd()] {
		return true
	}
	if hasOperandInput(instr, operandRt) && !state.gpr[instr.Rt()] {
		return true
	}

	// fs/ft/fd only name real floating point registers on COP1
	// instructions; on every other instruction those bit positions carry
	// unrelated fields (immediates, jump targets) that must not be
	// reinterpreted as FPR indices.
	if !instr.IsFloat() {
		return false
	}
	if hasOperandInput(instr, operandFs) && !state.fpr[instr.Fs()] {
		return true
	}
	if hasOperandInput(instr, operandFd) && !state.fpr[instr.Fd()] {
		return true
	}
	if hasOperandInput(instr, operandFt) && !state.fpr[instr.Ft()] {
		return true
	}
	return false
}

type operand int

const (
	operandRs operand = iota
	operandRt
	operandRd
	operandFs
	operandFt
	operandFd
)

// hasOperandInput reports whether instr reads the given operand as an
// input, rather than merely naming it as a destination.
func hasOperandInput(instr mips.Instruction, op operand) bool {
	switch op {
	case operandRs:
		// rs is always an input.
		return true
	case operandRd:
		// mtc0/mfc0/dmtc0/dmfc0 carry a coprocessor-0 register index in the
		// rd field position, not a general purpose register; Cop0Reg reads
		// it instead.
		switch instr.ID() {
		case mips.IDMtc0, mips.IDMfc0, mips.IDDmtc0, mips.IDDmfc0:
			return false
		}
		return !instr.ModifiesRd()
	case operandRt:
		// cache carries its operation/type selector in the rt field
		// position, not a general purpose register.
		if instr.ID() == mips.IDCache {
			return false
		}
		return !instr.ModifiesRt()
	case operandFd:
		// fd is never an input.
		return false
	case operandFt:
		return instr.ID() != mips.IDLwc1 && instr.ID() != mips.IDLdc1
	case operandFs:
		// ctc1/cfc1 carry a floating point control register selector in
		// the fs field position, not a data register; mtc1/dmtc1 name fs
		// as their destination, not an input.
		switch instr.ID() {
		case mips.IDMtc1, mips.IDDmtc1, mips.IDCtc1, mips.IDCfc1:
			return false
		}
		return true
	default:
		return false
	}
}
