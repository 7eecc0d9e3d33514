// Package mips decodes 32-bit MIPS R4300i (CPU) and RSP instruction words and
// exposes the opcode identity, operand fields, and structural predicates that
// the region discovery engine reasons about. It treats every word as data:
// decoding never fails, it only ever reports an instruction as invalid.
package mips

// Reg identifies one of the 32 general purpose registers using O32 ABI
// numbering.
type Reg uint8

// General purpose registers, O32 ABI numbering.
const (
	RegZero Reg = 0
	RegAt   Reg = 1
	RegV0   Reg = 2
	RegV1   Reg = 3
	RegA0   Reg = 4
	RegA1   Reg = 5
	RegA2   Reg = 6
	RegA3   Reg = 7
	RegT0   Reg = 8
	RegT1   Reg = 9
	RegT2   Reg = 10
	RegT3   Reg = 11
	RegT4   Reg = 12
	RegT5   Reg = 13
	RegT6   Reg = 14
	RegT7   Reg = 15
	RegS0   Reg = 16
	RegS1   Reg = 17
	RegS2   Reg = 18
	RegS3   Reg = 19
	RegS4   Reg = 20
	RegS5   Reg = 21
	RegS6   Reg = 22
	RegS7   Reg = 23
	RegT8   Reg = 24
	RegT9   Reg = 25
	RegK0   Reg = 26
	RegK1   Reg = 27
	RegGp   Reg = 28
	RegSp   Reg = 29
	RegFp   Reg = 30
	RegRa   Reg = 31
)

// FPR identifies one of the 32 floating point registers.
type FPR uint8

// Floating point argument/return registers used by the O32 calling
// convention. gcc begins the first reference to an uninitialized float local
// from $fv0/$fv0f, the float analogue of $v0 for integers.
const (
	FPRV0  FPR = 0
	FPRV0F FPR = 1
	FPRA0  FPR = 12
	FPRA0F FPR = 13
	FPRA1  FPR = 14
	FPRA1F FPR = 15
)
