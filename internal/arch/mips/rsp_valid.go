package mips

// invalidRSPCop0Register reports whether reg does not exist on the RSP's
// smaller coprocessor-0 register file.
func invalidRSPCop0Register(reg int) bool {
	return reg > 15
}

// IsValidRSP reports whether word plausibly belongs to real RSP microcode.
// It is a pure, total, deterministic predicate.
func IsValidRSP(word uint32) bool {
	instr := Decode(word)
	return instr.isValidRSP()
}

func (i Instruction) isValidRSP() bool {
	if !i.Valid() {
		return false
	}

	if i.ModifiesRd() && i.Rd() == RegZero {
		return false
	}
	if i.ModifiesRt() && i.Rt() == RegZero {
		return false
	}

	if (i.id == IDMtc0 || i.id == IDMfc0) && invalidRSPCop0Register(i.Cop0Reg()) {
		return false
	}

	switch i.id {
	case IDLwc1, IDSwc1, IDCtc0, IDCfc0, IDCache:
		return false
	}

	return true
}
