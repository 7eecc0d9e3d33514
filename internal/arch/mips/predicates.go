package mips

// ModifiesRd reports whether the instruction writes its result through the
// rd operand.
func (i Instruction) ModifiesRd() bool {
	switch i.id {
	case IDSll, IDSrl, IDSra, IDSllv, IDSrlv, IDSrav,
		IDDsllv, IDDsrlv, IDDsrav, IDAdd, IDAddu, IDSub, IDSubu,
		IDAnd, IDOr, IDXor, IDNor, IDSlt, IDSltu,
		IDDadd, IDDaddu, IDDsub, IDDsubu,
		IDDsll, IDDsrl, IDDsra, IDDsll32, IDDsrl32, IDDsra32,
		IDJalr:
		return true
	default:
		return false
	}
}

// ModifiesRt reports whether the instruction writes its result through the
// rt operand.
func (i Instruction) ModifiesRt() bool {
	switch i.id {
	case IDAddi, IDAddiu, IDSlti, IDSltiu, IDAndi, IDOri, IDXori, IDLui,
		IDDaddi, IDDaddiu,
		IDLb, IDLh, IDLwl, IDLw, IDLbu, IDLhu, IDLwr, IDLwu, IDLl, IDLld, IDLd,
		IDMfc0, IDDmfc0, IDMfc1, IDDmfc1, IDCfc0, IDCfc1:
		return true
	default:
		return false
	}
}

// DoesLoad reports whether the instruction loads a value from memory into a
// general purpose or floating point register.
func (i Instruction) DoesLoad() bool {
	switch i.id {
	case IDLb, IDLbu, IDLh, IDLhu, IDLw, IDLwu, IDLd, IDLwl, IDLwr,
		IDLl, IDLld, IDLwc1, IDLdc1, IDLwc2, IDLdc2:
		return true
	default:
		return false
	}
}

// DoesStore reports whether the instruction stores a register value to
// memory.
func (i Instruction) DoesStore() bool {
	switch i.id {
	case IDSb, IDSh, IDSw, IDSd, IDSwl, IDSwr, IDSdl, IDSdr,
		IDSc, IDScd, IDSwc1, IDSdc1, IDSwc2, IDSdc2:
		return true
	default:
		return false
	}
}

// IsFloat reports whether the instruction operates on the floating point
// coprocessor (COP1) register file.
func (i Instruction) IsFloat() bool {
	switch i.id {
	case IDMfc1, IDDmfc1, IDMtc1, IDDmtc1, IDCfc1, IDCtc1,
		IDBc1f, IDBc1t, IDBc1fl, IDBc1tl,
		IDAddS, IDSubS, IDMulS, IDDivS, IDAddD, IDSubD, IDMulD, IDDivD,
		IDCvtSD, IDCvtSW, IDCvtDS, IDCvtDW, IDCvtWS, IDCvtWD,
		IDCEqS, IDCEqD, IDCLtS, IDCLtD, IDCLeS, IDCLeD,
		IDLwc1, IDLdc1, IDSwc1, IDSdc1:
		return true
	default:
		return false
	}
}

// IsTrap reports whether the instruction is a conditional trap.
func (i Instruction) IsTrap() bool {
	switch i.id {
	case IDTge, IDTgeu, IDTlt, IDTltu, IDTeq, IDTne,
		IDTgei, IDTgeiu, IDTlti, IDTltiu, IDTeqi, IDTnei:
		return true
	default:
		return false
	}
}

// IsUnconditionalBranch reports whether the instruction is a non-linking
// unconditional control transfer: `b` (beq $zero, $zero, offset), `j`, or
// `jr`.
func (i Instruction) IsUnconditionalBranch() bool {
	switch i.id {
	case IDJ, IDJr:
		return true
	case IDBeq:
		return i.Rs() == RegZero && i.Rt() == RegZero
	default:
		return false
	}
}

// IsLinkedJump reports whether the instruction is a call-like jump that
// saves a return address: `jal` or `jalr`.
func (i Instruction) IsLinkedJump() bool {
	return i.id == IDJal || i.id == IDJalr
}

// IsShift reports whether the instruction is a fixed shift-amount shift
// (sll/srl/sra and their 64-bit variants).
func (i Instruction) IsShift() bool {
	switch i.id {
	case IDSll, IDSrl, IDSra, IDDsll, IDDsrl, IDDsra, IDDsll32, IDDsrl32, IDDsra32:
		return true
	default:
		return false
	}
}

// IsCop1ConditionBranch reports whether the instruction branches on the
// COP1 condition flag: bc1t, bc1f, bc1tl, or bc1fl.
func (i Instruction) IsCop1ConditionBranch() bool {
	switch i.id {
	case IDBc1t, IDBc1f, IDBc1tl, IDBc1fl:
		return true
	default:
		return false
	}
}
