package x86

// OperandKind classifies what shape a table entry expects an operand to
// take, before the operand resolver has consulted the actual ModR/M byte,
// immediate bytes, or prefixes of the instruction being decoded. The set
// follows the operand-form vocabulary of the AMD64 manual's instruction
// reference (vol. 3), collapsed to the distinctions the decoder actually
// needs.
type OperandKind int

const (
	OpNone OperandKind = iota

	// Register operand, size fixed by the kind.
	OpReg8
	OpReg16
	OpReg32
	OpReg64
	OpRegSegment
	OpRegControl
	OpRegDebug
	OpRegST
	OpRegMMX
	OpRegXMM
	OpRegYMM

	// Register-or-memory (ModR/M with mod != 11 selects the memory form).
	OpRegMem8
	OpRegMem16
	OpRegMem32
	OpRegMem64
	OpRegMemMMX
	OpRegMemXMM
	OpRegMemYMM

	// Size-elastic ("native") forms. These have no width of their own: the
	// operand resolver materialises them at the promoted width — REX.W,
	// then the 0x66 override, then the mode default — and the Operand the
	// decoder emits carries the resolved fixed-width kind, never one of
	// these. Tables use them for every form the AMD manual writes as
	// r/m16/32/64, r16/32/64, imm16/32, or rel16/32.
	OpRegNative
	OpRegMemNative
	OpOpcodeRegNative
	OpImplicitNativeAX
	OpImmNative
	OpRelNative

	// Memory-only (ModR/M mod == 11 is not a legal encoding for these).
	OpMem
	OpMem8
	OpMem16
	OpMem32
	OpMem64
	OpMem80
	OpMem128
	OpMem256
	OpMemMMX
	OpMemXMM
	OpMemYMM

	// VSIB-addressed memory (AVX gather/scatter family; index is XMM/YMM).
	OpMemVSIBXMM
	OpMemVSIBYMM

	// Immediates.
	OpImm8
	OpImm16
	OpImm32
	OpImm64
	OpImm8Sx // 8-bit immediate, sign-extended to the operand's true width

	// Relative branch displacements.
	OpRel8
	OpRel16
	OpRel32

	// Direct (unsegmented) memory offsets from the moffs encoding: the
	// "address" here is an absolute displacement sized to the address
	// width, not a ModR/M-derived effective address.
	OpMoffs8
	OpMoffs16
	OpMoffs32
	OpMoffs64

	// Far (segment:offset) pointer, immediate or memory-indirect.
	OpFarPtrImm
	OpFarPtrMem

	// Implicit single-register operands baked into the opcode itself —
	// these never consult ModR/M or a REX.B/X/R extension bit.
	OpImplicitAL
	OpImplicitAX
	OpImplicitEAX
	OpImplicitRAX
	OpImplicitCL
	OpImplicitDX
	OpImplicitCS
	OpImplicitDS
	OpImplicitES
	OpImplicitFS
	OpImplicitGS
	OpImplicitSS
	OpImplicitST0
	OpImplicitXMM0

	// Implicit memory operands used by the string instruction family
	// (MOVS/STOS/LODS/SCASB/CMPS and the INS/OUTS port-I/O family). The
	// width suffix names the *element* width; the address width (16/32/64)
	// instead comes from the active address-size attribute. Unlike every
	// other memory kind, a DS:SI/ESI/RSI-based one of these accepts a
	// segment override prefix, while the ES:DI/EDI/RDI-based destination
	// form of MOVS/STOS/CMPS/INS never does (AMD64 manual vol. 1,
	// string-instruction segment rules).
	OpImplicitMemSrc8
	OpImplicitMemSrc16
	OpImplicitMemSrc32
	OpImplicitMemSrc64
	OpImplicitMemDst8
	OpImplicitMemDst16
	OpImplicitMemDst32
	OpImplicitMemDst64

	// Fixed literal immediate (the "1" in shift-by-one encodings); doesn't
	// consume any bytes from the stream.
	OpImplicitOne

	// Register number encoded directly in the low 3 bits of the opcode
	// byte (the classic PUSH/POP/XCHG-with-AX "+rd/+rw/+rb" family),
	// extendable by REX.B.
	OpOpcodeReg8
	OpOpcodeReg16
	OpOpcodeReg32
	OpOpcodeReg64

	// A condition code embedded in the opcode's low nibble (Jcc/SETcc/
	// CMOVcc); not a value operand, but the resolver still records it on
	// the Instruction rather than threading it through a side channel.
	OpConditionCode

	// VEX.vvvv-selected register operands (the "extra" operand a VEX
	// prefix's inverted 4-bit vvvv field names, independent of ModR/M).
	OpVvvvXMM
	OpVvvvYMM
	OpVvvvReg32
	OpVvvvReg64

	// VSIB-addressed gather memory operand under a YMM index, sized for a
	// 32-bit element (the 256-bit VPGATHERDD/VGATHERDPS shape); see also
	// OpMemVSIBXMM/OpMemVSIBYMM above, which carry the full 128-/256-bit
	// vector width instead.
	OpMemVSIBYMM32

	// Trailing-imm8-high-nibble register operands (the "is4" encoding used
	// by VBLENDVPS/VBLENDVPD/VPBLENDVB and the FMA4 family): an extra 8-bit
	// immediate follows every other operand, and its high nibble names an
	// XMM/YMM register index. The low nibble is ignored.
	OpImm8HighNibXMM
	OpImm8HighNibYMM
)

var operandKindNames = map[OperandKind]string{
	OpNone: "none",

	OpReg8: "reg8", OpReg16: "reg16", OpReg32: "reg32", OpReg64: "reg64",
	OpRegSegment: "regSegment", OpRegControl: "regControl", OpRegDebug: "regDebug",
	OpRegST: "regST", OpRegMMX: "regMMX", OpRegXMM: "regXMM", OpRegYMM: "regYMM",

	OpRegMem8: "regMem8", OpRegMem16: "regMem16", OpRegMem32: "regMem32", OpRegMem64: "regMem64",
	OpRegMemMMX: "regMemMMX", OpRegMemXMM: "regMemXMM", OpRegMemYMM: "regMemYMM",

	OpRegNative: "regNative", OpRegMemNative: "regMemNative",
	OpOpcodeRegNative: "opcodeRegNative", OpImplicitNativeAX: "nativeAX",
	OpImmNative: "immNative", OpRelNative: "relNative",

	OpMem: "mem", OpMem8: "mem8", OpMem16: "mem16", OpMem32: "mem32", OpMem64: "mem64",
	OpMem80: "mem80", OpMem128: "mem128", OpMem256: "mem256",
	OpMemMMX: "memMMX", OpMemXMM: "memXMM", OpMemYMM: "memYMM",

	OpMemVSIBXMM: "memVSIBXmm", OpMemVSIBYMM: "memVSIBYmm",

	OpImm8: "imm8", OpImm16: "imm16", OpImm32: "imm32", OpImm64: "imm64", OpImm8Sx: "imm8sx",

	OpRel8: "rel8", OpRel16: "rel16", OpRel32: "rel32",

	OpMoffs8: "moffs8", OpMoffs16: "moffs16", OpMoffs32: "moffs32", OpMoffs64: "moffs64",

	OpFarPtrImm: "farPtrImm", OpFarPtrMem: "farPtrMem",

	OpImplicitAL: "AL", OpImplicitAX: "AX", OpImplicitEAX: "EAX", OpImplicitRAX: "RAX",
	OpImplicitCL: "CL", OpImplicitDX: "DX",
	OpImplicitCS: "CS", OpImplicitDS: "DS", OpImplicitES: "ES",
	OpImplicitFS: "FS", OpImplicitGS: "GS", OpImplicitSS: "SS",
	OpImplicitST0: "ST0", OpImplicitXMM0: "XMM0",

	OpImplicitMemSrc8: "implicitMemSrc8", OpImplicitMemSrc16: "implicitMemSrc16",
	OpImplicitMemSrc32: "implicitMemSrc32", OpImplicitMemSrc64: "implicitMemSrc64",
	OpImplicitMemDst8: "implicitMemDst8", OpImplicitMemDst16: "implicitMemDst16",
	OpImplicitMemDst32: "implicitMemDst32", OpImplicitMemDst64: "implicitMemDst64",

	OpImplicitOne: "1",

	OpOpcodeReg8: "opcodeReg8", OpOpcodeReg16: "opcodeReg16",
	OpOpcodeReg32: "opcodeReg32", OpOpcodeReg64: "opcodeReg64",

	OpConditionCode: "cc",

	OpVvvvXMM: "vvvvXmm", OpVvvvYMM: "vvvvYmm",
	OpVvvvReg32: "vvvvReg32", OpVvvvReg64: "vvvvReg64",
	OpMemVSIBYMM32: "memVSIBYmm32",

	OpImm8HighNibXMM: "is4Xmm", OpImm8HighNibYMM: "is4Ymm",
}

func (k OperandKind) String() string {
	if name, ok := operandKindNames[k]; ok {
		return name
	}
	return "??"
}

// IsMemoryOnly reports whether a ModR/M encoding of this kind must resolve
// to a memory operand (mod == 11 is illegal).
func (k OperandKind) IsMemoryOnly() bool {
	switch k {
	case OpMem, OpMem8, OpMem16, OpMem32, OpMem64, OpMem80, OpMem128, OpMem256,
		OpMemMMX, OpMemXMM, OpMemYMM, OpMemVSIBXMM, OpMemVSIBYMM, OpMemVSIBYMM32,
		OpFarPtrMem:
		return true
	default:
		return false
	}
}

// IsRegOrMemory reports whether this kind resolves from a ModR/M byte whose
// mod field may select either a register or a memory form.
func (k OperandKind) IsRegOrMemory() bool {
	switch k {
	case OpRegMem8, OpRegMem16, OpRegMem32, OpRegMem64, OpRegMemMMX, OpRegMemXMM, OpRegMemYMM,
		OpRegMemNative:
		return true
	default:
		return false
	}
}

// IsImplicit reports whether this kind names a fixed register/value baked
// into the opcode, consuming no ModR/M or immediate bytes of its own.
func (k OperandKind) IsImplicit() bool {
	switch k {
	case OpImplicitAL, OpImplicitAX, OpImplicitEAX, OpImplicitRAX,
		OpImplicitCL, OpImplicitDX, OpImplicitCS, OpImplicitDS, OpImplicitES,
		OpImplicitFS, OpImplicitGS, OpImplicitSS, OpImplicitST0, OpImplicitXMM0,
		OpImplicitMemSrc8, OpImplicitMemSrc16, OpImplicitMemSrc32, OpImplicitMemSrc64,
		OpImplicitMemDst8, OpImplicitMemDst16, OpImplicitMemDst32, OpImplicitMemDst64,
		OpImplicitOne:
		return true
	default:
		return false
	}
}
