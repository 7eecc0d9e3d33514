package mips

// invalidCop0Register reports whether reg does not exist on the N64 CPU's
// coprocessor 0: index 7, 21-25, and 31 are all reserved.
func invalidCop0Register(reg int) bool {
	return reg == 7 || (reg >= 21 && reg <= 25) || reg == 31
}

// unusedOnN64 reports whether id names an instruction that is
// architecturally valid MIPS III but never emitted or executed on the N64.
func unusedOnN64(id ID) bool {
	switch id {
	case IDLl, IDSc, IDLld, IDScd, IDSyscall:
		return true
	default:
		return false
	}
}

// IsValidCPU reports whether word plausibly belongs to real N64 CPU code.
// It is a pure, total, deterministic predicate: it never panics and always
// returns a definite answer for any 32-bit word.
func IsValidCPU(word uint32) bool {
	instr := Decode(word)
	return instr.isValidCPU()
}

func (i Instruction) isValidCPU() bool {
	if !i.Valid() {
		return false
	}

	if (i.DoesLoad() || i.DoesStore()) && i.Rs() == RegZero {
		return false
	}

	if i.ModifiesRd() && i.Rd() == RegZero {
		return false
	}
	if i.ModifiesRt() && i.Rt() == RegZero {
		return false
	}

	if (i.id == IDMtc0 || i.id == IDMfc0) && invalidCop0Register(i.Cop0Reg()) {
		return false
	}

	if unusedOnN64(i.id) {
		return false
	}

	if i.id == IDCache {
		if i.CacheOp() > 6 || i.CacheType() > 1 {
			return false
		}
	}

	switch i.id {
	case IDLwc2, IDLdc2, IDSwc2, IDSdc2:
		return false
	}

	if i.IsTrap() {
		return false
	}

	if i.id == IDCtc0 || i.id == IDCfc0 {
		return false
	}

	if i.id == IDPref {
		return false
	}

	return true
}
