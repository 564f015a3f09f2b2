// Package table holds the static opcode tables the decoder walks: one slot
// per primary opcode byte (and per secondary/0F-38/0F-3A/3DNow!/VEX byte),
// each either a terminal instruction form or a further extension keyed off
// ModR/M.reg, ModR/M.mod, REX.W, or the active mandatory-prefix channel.
//
// The split between "what does this opcode byte mean" and "how do I walk
// from a byte to an Instruction" is deliberate — the walk itself lives in
// the decoder package; this package only holds data.
package table

import "github.com/keurnel/x64dis/arch/x86"

// Kind discriminates what an Entry does with the bytes/ModR/M it is handed.
type Kind int

const (
	// Blank marks an opcode byte/ModR/M slot with no defined instruction.
	// Reached, it decodes to x86.MInvalid.
	Blank Kind = iota
	// Terminal is a concrete instruction form: no further table lookups
	// are needed, only operand resolution.
	Terminal
	// ExtByReg dispatches on ModR/M.reg (the classic opcode-extension
	// "group" tables, e.g. group 1 ADD/OR/ADC/.../CMP at 0x80-0x83).
	ExtByReg
	// ExtByRm further dispatches on ModR/M.rm, for groups whose reg value
	// alone is ambiguous (e.g. group 7's SGDT/SIDT vs MONITOR/MWAIT,
	// selected by rm once reg has narrowed to one slot).
	ExtByRm
	// ExtByMod dispatches on whether ModR/M.mod == 11 (register form) or
	// not (memory form) — some opcodes mean entirely different
	// instructions depending on which (e.g. certain group 7 subcodes).
	ExtByMod
	// ExtByRexW dispatches on the REX.W bit, independent of operand-size
	// override — used where W changes the instruction identity rather
	// than just its operand width (e.g. CDQ/CQO pairs reached through a
	// shared opcode byte in some tables).
	ExtByRexW
	// ExtByMandatory dispatches on the mandatory-prefix channel (none,
	// 0x66, 0xF2, 0xF3) that a secondary-opcode-table entry resolved to
	// after prefix scanning. This is how 0F opcodes fan out into the
	// packed/scalar SSE variants.
	ExtByMandatory
	// ExtByVEXL dispatches on the VEX vector-length bit (L): 128 vs 256.
	ExtByVEXL
)

// Form describes one terminal instruction shape: its mnemonic, its operand
// kinds in source order, and the encoding bits the operand resolver and
// prefix scanner need to act on.
type Form struct {
	Mnemonic x86.Mnemonic
	Operands []x86.OperandKind

	HasModRM bool

	// ImmSize is the number of immediate bytes this form consumes after
	// the opcode/ModR/M/SIB/displacement, 0 if none. A value of -1 means
	// "Imm8Sx" (one byte, sign-extended) as opposed to a genuine 8-bit
	// immediate that is not sign-extended — the resolver still only reads
	// one byte either way; this only affects Operand.Imm's sign.
	ImmSize int

	// RelSize, if non-zero, marks this as a relative-branch form whose
	// single branch operand is this many bytes wide (1, 2, or 4).
	RelSize int

	// ConditionCoded marks Jcc/SETcc/CMOVcc forms, whose real mnemonic
	// suffix is the low nibble of the opcode byte rather than anything
	// stored in the table.
	ConditionCoded bool

	// DefaultTo64 marks forms that default to 64-bit operand size in Long
	// mode regardless of the operand-size prefix (e.g. PUSH/POP/CALL/
	// near branches) — REX.W has no effect and 0x66 instead toggles a
	// 16-bit encoding exception where the AMD64 manual allows one.
	DefaultTo64 bool

	// NoRexW, if true, means this form ignores REX.W for width purposes:
	// the dispatcher clears both REX.W and VEX.W before operands are
	// resolved. None of the tables in this package set it.
	NoRexW bool

	// ThreeDNowSuffix marks the 0F 0F escape's forms: the mnemonic is not
	// known at dispatch time because the opcode suffix byte trails the
	// operands; the decoder resolves the operands first, then pops one
	// more byte and indexes ThreeDNow with it.
	ThreeDNowSuffix bool
}

// Entry is one slot in an opcode table. Exactly one of the fields implied
// by Kind is meaningful; the rest are left at their zero value.
type Entry struct {
	Kind Kind

	Form Form // Meaningful iff Kind == Terminal.

	// ByReg holds 8 slots (ModR/M.reg 0-7), used when Kind == ExtByReg.
	ByReg [8]*Entry

	// ByRm holds 8 slots (ModR/M.rm 0-7), used when Kind == ExtByRm.
	ByRm [8]*Entry

	// ByMod holds 2 slots: index 0 is the memory form (mod != 11), index
	// 1 is the register form (mod == 11). Used when Kind == ExtByMod.
	ByMod [2]*Entry

	// ByRexW holds 2 slots: index 0 is REX.W==0, index 1 is REX.W==1.
	// Used when Kind == ExtByRexW.
	ByRexW [2]*Entry

	// ByMandatory holds 4 slots indexed by MandatoryPrefix. Used when
	// Kind == ExtByMandatory.
	ByMandatory [4]*Entry

	// ByVEXL holds 2 slots: index 0 is L=0 (128-bit), index 1 is L=1
	// (256-bit). Used when Kind == ExtByVEXL.
	ByVEXL [2]*Entry
}

// MandatoryPrefix identifies which (if any) legacy prefix is being
// consumed as part of the opcode identity, rather than as a true prefix,
// once a 0F/0F38/0F3A escape has been recognised.
type MandatoryPrefix int

const (
	MPNone MandatoryPrefix = iota
	MP66
	MPF2
	MPF3
)

// Lookup walks a single Entry tree node given the decoding state needed to
// resolve every Kind of extension. It returns nil if the table has no
// entry at the requested coordinate (a blank slot one level up, expressed
// as a nil pointer instead of an explicit Blank leaf). The second result
// reports whether any extension along the walk consulted the ModR/M byte —
// the dispatcher must then consume that byte exactly once even when the
// terminal form itself carries no ModR/M-encoded operand (the x87 D9-DF
// register groups are the canonical case).
func (e *Entry) Lookup(modrmReg, modrmRm, modrmMod int, rexW bool, mp MandatoryPrefix, vexL int) (*Entry, bool) {
	cur := e
	usedModRM := false
	for cur != nil {
		switch cur.Kind {
		case Terminal, Blank:
			return cur, usedModRM
		case ExtByReg:
			usedModRM = true
			cur = cur.ByReg[modrmReg&7]
		case ExtByRm:
			usedModRM = true
			cur = cur.ByRm[modrmRm&7]
		case ExtByMod:
			usedModRM = true
			if modrmMod == 3 {
				cur = cur.ByMod[1]
			} else {
				cur = cur.ByMod[0]
			}
		case ExtByRexW:
			if rexW {
				cur = cur.ByRexW[1]
			} else {
				cur = cur.ByRexW[0]
			}
		case ExtByMandatory:
			cur = cur.ByMandatory[mp]
		case ExtByVEXL:
			if vexL == 1 {
				cur = cur.ByVEXL[1]
			} else {
				cur = cur.ByVEXL[0]
			}
		default:
			return nil, usedModRM
		}
	}
	return nil, usedModRM
}
