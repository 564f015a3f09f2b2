package x86

// MemoryRef is a fully-resolved effective-address computation: a segment,
// an optional base and index register, a scale, and a displacement. Any of
// Base/Index may be RNone when the addressing form omits them (e.g. a bare
// disp32, or a SIB byte with index == 100b and no VSIB in play).
//
// RIPRelative is only ever true in Long mode, and only for the mod=00,
// rm=101 encoding that in Compat/Legacy mode instead means "disp32, no
// base".
type MemoryRef struct {
	Bits        int      // Width in bits of the value addressed (8..256), for size-prefix printing.
	Segment     Register // Effective segment, after override and default rules.
	Base        Register // RNone if the encoding has no base register.
	Index       Register // RNone if the encoding has no index register.
	Scale       int      // 1, 2, 4, or 8. Meaningless (left at 0) if Index is RNone.
	Disp        int64    // Sign-extended displacement.
	RIPRelative bool

	// DispIs64 marks a moffs-form absolute address whose displacement was
	// read as a 64-bit immediate (MOV with a moffs64 operand) — AT&T
	// rendering uses this to pick the "movabs" mnemonic form.
	DispIs64 bool
}

// FarPointer is a segment:offset pair, as used by far CALL/JMP/far
// immediate pointer operands.
type FarPointer struct {
	Selector uint16
	Offset   uint64
}

// RelativeOffset is a signed branch displacement, already sign-extended to
// 64 bits; Width records the encoded width (8, 16, or 32) so a printer can
// reproduce the original byte count when rendering a target address.
type RelativeOffset struct {
	Delta int64
	Width int
}

// Operand is a tagged union over every operand shape the decoder can
// produce. Kind says which field(s) are meaningful; the others are left at
// their zero value.
type Operand struct {
	Kind OperandKind

	Reg Register
	Mem MemoryRef
	Far FarPointer
	Rel RelativeOffset

	// Imm holds any immediate value (a moffs address goes in Mem.Disp
	// instead). It is stored sign-extended
	// for signed immediate kinds (Imm8Sx, and Imm8/16/32/64 used as
	// signed) and zero-extended otherwise; the operand Kind and the
	// instruction's knowledge of the source mnemonic tell a caller which
	// interpretation applies.
	Imm int64
}

// Instruction is one fully-decoded x86/x86-64 instruction: the operation,
// its operands in source (not encoding) order, and the prefix/metadata
// state that gave rise to them.
//
// A zero Instruction is not meaningful on its own; always inspect Mnemonic
// first — MInvalid marks a byte sequence the decoder could not resolve to
// any table entry, in which case Length is still set so a caller can skip
// past the bad byte(s) and resynchronise.
type Instruction struct {
	Mnemonic  Mnemonic
	Operands  []Operand
	Condition Condition // CondNone unless Mnemonic is Jcc/Setcc/Cmovcc.

	Length int // Total bytes consumed, including every prefix.
	Mode   Mode

	Lock            bool     // F0 prefix was present and accepted.
	RepPrefix       RepKind  // Decoded REP/REPE/REPNE state, if any.
	SegmentOverride Register // RNone unless a segment-override prefix applied.

	OperandSizeOverride bool // 0x66 changed the effective operand size.
	AddressSizeOverride bool // 0x67 changed the effective address size.

	// VEX records whether a VEX-encoded form was used to reach this
	// instruction and, if so, the vector length it selected. Decoder
	// packages that never emit VEX forms leave this at its zero value.
	VEX        bool
	VectorLen  int // 128 or 256; 0 if VEX is false.

	RawBytes []byte // The exact bytes consumed, Length long.
}

// RepKind distinguishes the three REP-family prefix interpretations a
// given opcode can take on (plain string-op REP, SCAS/CMPS's REPE, and
// REPNE); most opcodes only accept one of these. The decoder does not
// reject the others: a REP-class prefix is kept on whatever opcode it
// precedes, unless it was consumed as a mandatory prefix or turned 0x90
// into PAUSE.
type RepKind int

const (
	RepNone RepKind = iota
	RepPlain
	RepEqual
	RepNotEqual
)

// IsValid reports whether the instruction decoded to a real mnemonic
// rather than the INVALID sentinel.
func (i *Instruction) IsValid() bool {
	return i.Mnemonic.Present()
}
