package mips

// Instruction is a decoded 32-bit MIPS instruction word. Decoding is total:
// every word produces an Instruction, with unrecognized bit patterns
// carrying IDInvalid.
type Instruction struct {
	word     uint32
	id       ID
	reserved bool // true if fixed/reserved bit fields hold their required value
}

// Decode decodes a raw instruction word into its opcode identity and operand
// fields. It never fails; words with no matching encoding decode to
// IDInvalid.
func Decode(word uint32) Instruction {
	id, reserved := decodeID(word)
	return Instruction{word: word, id: id, reserved: reserved}
}

// Word returns the raw 32-bit instruction word.
func (i Instruction) Word() uint32 {
	return i.word
}

// ID returns the decoded opcode identity.
func (i Instruction) ID() ID {
	return i.id
}

// Valid reports whether the instruction decoded to a known opcode with
// correct reserved-bit fields. It does not apply any of the N64-specific
// heuristics in cpu_valid.go/rsp_valid.go.
func (i Instruction) Valid() bool {
	return i.id != IDInvalid && i.reserved
}

func opcodeField(word uint32) uint32 { return word >> 26 }
func rsField(word uint32) Reg        { return Reg((word >> 21) & 0x1F) }
func rtField(word uint32) Reg        { return Reg((word >> 16) & 0x1F) }
func rdField(word uint32) Reg        { return Reg((word >> 11) & 0x1F) }
func fsField(word uint32) FPR        { return FPR((word >> 11) & 0x1F) }
func ftField(word uint32) FPR        { return FPR((word >> 16) & 0x1F) }
func fdField(word uint32) FPR        { return FPR((word >> 6) & 0x1F) }
func saField(word uint32) uint32     { return (word >> 6) & 0x1F }
func functField(word uint32) uint32  { return word & 0x3F }
func fmtField(word uint32) uint32    { return (word >> 21) & 0x1F }

// Rs returns the rs operand register field.
func (i Instruction) Rs() Reg { return rsField(i.word) }

// Rt returns the rt operand register field.
func (i Instruction) Rt() Reg { return rtField(i.word) }

// Rd returns the rd operand register field.
func (i Instruction) Rd() Reg { return rdField(i.word) }

// Fs returns the fs floating point operand field.
func (i Instruction) Fs() FPR { return fsField(i.word) }

// Ft returns the ft floating point operand field.
func (i Instruction) Ft() FPR { return ftField(i.word) }

// Fd returns the fd floating point operand field.
func (i Instruction) Fd() FPR { return fdField(i.word) }

// Sa returns the shift amount field.
func (i Instruction) Sa() uint32 { return saField(i.word) }

// Cop0Reg returns the coprocessor-0 register index named by a mtc0/mfc0/
// dmtc0/dmfc0 instruction. It is encoded in the rd field.
func (i Instruction) Cop0Reg() int {
	return int(rdField(i.word))
}

// CacheOp returns the cache operation sub-field of a cache instruction: the
// upper 3 bits of the 5-bit cache parameter carried in the rt field.
func (i Instruction) CacheOp() uint32 {
	return uint32(rtField(i.word)) >> 2
}

// CacheType returns the cache selector sub-field of a cache instruction: the
// lower 2 bits of the 5-bit cache parameter carried in the rt field.
func (i Instruction) CacheType() uint32 {
	return uint32(rtField(i.word)) & 0x3
}
