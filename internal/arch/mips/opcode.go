package mips

// ID is a unique identifier for a decoded instruction, analogous to the
// opsym enums used by 8-bit disassemblers but sized for the MIPS III and RSP
// ISAs. IDInvalid is returned for any word that does not decode to a known
// instruction.
type ID uint16

// Instruction identifiers. Unofficial/unused-on-N64 opcodes are still given
// an ID so that the validators can name them explicitly in their rejection
// rules; IDInvalid is reserved for bit patterns with no decoding at all.
const (
	IDInvalid ID = iota

	IDNop
	IDSll
	IDSrl
	IDSra
	IDSllv
	IDSrlv
	IDSrav
	IDJr
	IDJalr
	IDSyscall
	IDBreak
	IDSync
	IDMfhi
	IDMthi
	IDMflo
	IDMtlo
	IDDsllv
	IDDsrlv
	IDDsrav
	IDMult
	IDMultu
	IDDiv
	IDDivu
	IDDmult
	IDDmultu
	IDDdiv
	IDDdivu
	IDAdd
	IDAddu
	IDSub
	IDSubu
	IDAnd
	IDOr
	IDXor
	IDNor
	IDSlt
	IDSltu
	IDDadd
	IDDaddu
	IDDsub
	IDDsubu
	IDDsll
	IDDsrl
	IDDsra
	IDDsll32
	IDDsrl32
	IDDsra32
	IDTge
	IDTgeu
	IDTlt
	IDTltu
	IDTeq
	IDTne

	IDJ
	IDJal
	IDBeq
	IDBne
	IDBlez
	IDBgtz
	IDAddi
	IDAddiu
	IDSlti
	IDSltiu
	IDAndi
	IDOri
	IDXori
	IDLui
	IDBeql
	IDBnel
	IDBlezl
	IDBgtzl
	IDDaddi
	IDDaddiu
	IDLb
	IDLh
	IDLwl
	IDLw
	IDLbu
	IDLhu
	IDLwr
	IDLwu
	IDSb
	IDSh
	IDSwl
	IDSw
	IDSdl
	IDSdr
	IDSwr
	IDCache
	IDLl
	IDLwc1
	IDLwc2
	IDLld
	IDLdc1
	IDLdc2
	IDLd
	IDSc
	IDSwc1
	IDSwc2
	IDScd
	IDSdc1
	IDSdc2
	IDSd
	IDPref

	IDBltz
	IDBgez
	IDBltzl
	IDBgezl
	IDBltzal
	IDBgezal
	IDBltzall
	IDBgezall
	IDTgei
	IDTgeiu
	IDTlti
	IDTltiu
	IDTeqi
	IDTnei

	IDMfc0
	IDDmfc0
	IDMtc0
	IDDmtc0
	IDCfc0
	IDCtc0

	IDMfc1
	IDDmfc1
	IDMtc1
	IDDmtc1
	IDCfc1
	IDCtc1
	IDBc1f
	IDBc1t
	IDBc1fl
	IDBc1tl
	IDAddS
	IDSubS
	IDMulS
	IDDivS
	IDAddD
	IDSubD
	IDMulD
	IDDivD
	IDCvtSD
	IDCvtSW
	IDCvtDS
	IDCvtDW
	IDCvtWS
	IDCvtWD
	IDCEqS
	IDCEqD
	IDCLtS
	IDCLtD
	IDCLeS
	IDCLeD
)

// Primary (bits 31-26) opcode field values.
const (
	opSpecial = 0x00
	opRegimm  = 0x01
	opJ       = 0x02
	opJal     = 0x03
	opBeq     = 0x04
	opBne     = 0x05
	opBlez    = 0x06
	opBgtz    = 0x07
	opAddi    = 0x08
	opAddiu   = 0x09
	opSlti    = 0x0A
	opSltiu   = 0x0B
	opAndi    = 0x0C
	opOri     = 0x0D
	opXori    = 0x0E
	opLui     = 0x0F
	opCop0    = 0x10
	opCop1    = 0x11
	opCop2    = 0x12
	opBeql    = 0x14
	opBnel    = 0x15
	opBlezl   = 0x16
	opBgtzl   = 0x17
	opDaddi   = 0x18
	opDaddiu  = 0x19
	opLb      = 0x20
	opLh      = 0x21
	opLwl     = 0x22
	opLw      = 0x23
	opLbu     = 0x24
	opLhu     = 0x25
	opLwr     = 0x26
	opLwu     = 0x27
	opSb      = 0x28
	opSh      = 0x29
	opSwl     = 0x2A
	opSw      = 0x2B
	opSdl     = 0x2C
	opSdr     = 0x2D
	opSwr     = 0x2E
	opCache   = 0x2F
	opLl      = 0x30
	opLwc1    = 0x31
	opLwc2    = 0x32
	opLld     = 0x34
	opLdc1    = 0x35
	opLdc2    = 0x36
	opLd      = 0x37
	opSc      = 0x38
	opSwc1    = 0x39
	opSwc2    = 0x3A
	opScd     = 0x3C
	opSdc1    = 0x3D
	opSdc2    = 0x3E
	opSd      = 0x3F
	opPref    = 0x33
)

// SPECIAL (opcode 0) function field values.
const (
	fnSll     = 0x00
	fnSrl     = 0x02
	fnSra     = 0x03
	fnSllv    = 0x04
	fnSrlv    = 0x06
	fnSrav    = 0x07
	fnJr      = 0x08
	fnJalr    = 0x09
	fnSyscall = 0x0C
	fnBreak   = 0x0D
	fnSync    = 0x0F
	fnMfhi    = 0x10
	fnMthi    = 0x11
	fnMflo    = 0x12
	fnMtlo    = 0x13
	fnDsllv   = 0x14
	fnDsrlv   = 0x16
	fnDsrav   = 0x17
	fnMult    = 0x18
	fnMultu   = 0x19
	fnDiv     = 0x1A
	fnDivu    = 0x1B
	fnDmult   = 0x1C
	fnDmultu  = 0x1D
	fnDdiv    = 0x1E
	fnDdivu   = 0x1F
	fnAdd     = 0x20
	fnAddu    = 0x21
	fnSub     = 0x22
	fnSubu    = 0x23
	fnAnd     = 0x24
	fnOr      = 0x25
	fnXor     = 0x26
	fnNor     = 0x27
	fnSlt     = 0x2A
	fnSltu    = 0x2B
	fnDadd    = 0x2C
	fnDaddu   = 0x2D
	fnDsub    = 0x2E
	fnDsubu   = 0x2F
	fnTge     = 0x30
	fnTgeu    = 0x31
	fnTlt     = 0x32
	fnTltu    = 0x33
	fnTeq     = 0x34
	fnTne     = 0x36
	fnDsll    = 0x38
	fnDsrl    = 0x3A
	fnDsra    = 0x3B
	fnDsll32  = 0x3C
	fnDsrl32  = 0x3E
	fnDsra32  = 0x3F
)

// REGIMM (opcode 1) rt field values.
const (
	rtBltz     = 0x00
	rtBgez     = 0x01
	rtBltzl    = 0x02
	rtBgezl    = 0x03
	rtTgei     = 0x08
	rtTgeiu    = 0x09
	rtTlti     = 0x0A
	rtTltiu    = 0x0B
	rtTeqi     = 0x0C
	rtTnei     = 0x0E
	rtBltzal   = 0x10
	rtBgezal   = 0x11
	rtBltzall  = 0x12
	rtBgezall  = 0x13
)

// COPz rs field sub-operations, shared between COP0 and COP1.
const (
	copMF  = 0x00
	copDMF = 0x01
	copCF  = 0x02
	copMT  = 0x04
	copDMT = 0x05
	copCT  = 0x06
	copBC  = 0x08
)

// COP1 fmt field values for the BC sub-op and arithmetic funct decode.
const (
	cop1BCf  = 0x00
	cop1BCt  = 0x01
	cop1BCfl = 0x02
	cop1BCtl = 0x03
)

// COP1 arithmetic function field values (single/double fmt).
const (
	fnFAdd  = 0x00
	fnFSub  = 0x01
	fnFMul  = 0x02
	fnFDiv  = 0x03
	fnFCvtS = 0x20
	fnFCvtD = 0x21
	fnFCvtW = 0x24
	fnFCEq  = 0x32
	fnFCLt  = 0x3C
	fnFCLe  = 0x3E
)

// COP1 fmt field values.
const (
	fmtSingle = 16
	fmtDouble = 17
)
