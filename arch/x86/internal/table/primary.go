package table

import "github.com/keurnel/x64dis/arch/x86"

// term builds a Terminal entry for the common case of a fixed mnemonic
// with a fixed operand list and no ModR/M byte.
func term(m x86.Mnemonic, ops ...x86.OperandKind) *Entry {
	return &Entry{Kind: Terminal, Form: Form{Mnemonic: m, Operands: ops}}
}

func termModRM(m x86.Mnemonic, ops ...x86.OperandKind) *Entry {
	return &Entry{Kind: Terminal, Form: Form{Mnemonic: m, Operands: ops, HasModRM: true}}
}

func termImm(m x86.Mnemonic, immSize int, ops ...x86.OperandKind) *Entry {
	return &Entry{Kind: Terminal, Form: Form{Mnemonic: m, Operands: ops, ImmSize: immSize}}
}

func termModRMImm(m x86.Mnemonic, immSize int, ops ...x86.OperandKind) *Entry {
	return &Entry{Kind: Terminal, Form: Form{Mnemonic: m, Operands: ops, HasModRM: true, ImmSize: immSize}}
}

func termRel(m x86.Mnemonic, relSize int) *Entry {
	var opKind x86.OperandKind
	switch relSize {
	case 1:
		opKind = x86.OpRel8
	case 2:
		opKind = x86.OpRel16
	default:
		opKind = x86.OpRel32
	}
	return &Entry{Kind: Terminal, Form: Form{Mnemonic: m, Operands: []x86.OperandKind{opKind}, RelSize: relSize}}
}

func blank() *Entry { return &Entry{Kind: Blank} }

// aluGroup builds the 6 classic ALU-op row entries a primary table slot
// range like 0x00-0x05 (ADD) always takes: r/m8,r8; r/m16/32/64,r16/32/64;
// r8,r/m8; r16/32/64,r/m16/32/64; AL,imm8; rAX,imm16/32.
func aluGroup(m x86.Mnemonic) [6]*Entry {
	return [6]*Entry{
		termModRM(m, x86.OpRegMem8, x86.OpReg8),
		termModRM(m, x86.OpRegMemNative, x86.OpRegNative),
		termModRM(m, x86.OpReg8, x86.OpRegMem8),
		termModRM(m, x86.OpRegNative, x86.OpRegMemNative),
		termImm(m, 1, x86.OpImplicitAL, x86.OpImm8),
		termImm(m, 4, x86.OpImplicitNativeAX, x86.OpImmNative),
	}
}

// group1 builds the ExtByReg table used by opcodes 0x80-0x83: ADD/OR/ADC/
// SBB/AND/SUB/XOR/CMP on r/m, keyed by ModR/M.reg.
func group1(ops x86.OperandKind, immSize int) *Entry {
	mnems := [8]x86.Mnemonic{x86.MAdd, x86.MOr, x86.MAdc, x86.MSbb, x86.MAnd, x86.MSub, x86.MXor, x86.MCmp}
	// 0x80/0x83 read a single immediate byte (0x83's is sign-extended to
	// the operand's full width); 0x81 reads a full-width immediate.
	immKind := x86.OpImmNative
	effImmSize := immSize
	if immSize == 1 {
		immKind = x86.OpImm8Sx
		effImmSize = -1
	}
	if ops == x86.OpRegMem8 {
		immKind = x86.OpImm8
		effImmSize = 1
	}
	e := &Entry{Kind: ExtByReg}
	for i, m := range mnems {
		e.ByReg[i] = &Entry{Kind: Terminal, Form: Form{
			Mnemonic: m, Operands: []x86.OperandKind{ops, immKind}, HasModRM: true, ImmSize: effImmSize,
		}}
	}
	return e
}

// group2 builds the shift/rotate ExtByReg table (ROL/ROR/RCL/RCR/SHL/SHR/
// SAL/SAR — SAL aliases SHL and is folded into the same slot).
func group2(rmKind x86.OperandKind, shiftBy x86.OperandKind, immSize int) *Entry {
	mnems := [8]x86.Mnemonic{x86.MRol, x86.MRor, x86.MRcl, x86.MRcr, x86.MShl, x86.MShr, x86.MShl, x86.MSar}
	e := &Entry{Kind: ExtByReg}
	for i, m := range mnems {
		ops := []x86.OperandKind{rmKind}
		if shiftBy != x86.OpNone {
			ops = append(ops, shiftBy)
		}
		e.ByReg[i] = &Entry{Kind: Terminal, Form: Form{Mnemonic: m, Operands: ops, HasModRM: true, ImmSize: immSize}}
	}
	return e
}

// group3 is TEST/NOT/NEG/MUL/IMUL/DIV/IDIV on r/m (0xF6/0xF7).
func group3(rmKind x86.OperandKind, immSize int) *Entry {
	e := &Entry{Kind: ExtByReg}
	e.ByReg[0] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MTest, Operands: []x86.OperandKind{rmKind, immOpFor(immSize)}, HasModRM: true, ImmSize: immSize}}
	e.ByReg[1] = e.ByReg[0]
	e.ByReg[2] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MNot, Operands: []x86.OperandKind{rmKind}, HasModRM: true}}
	e.ByReg[3] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MNeg, Operands: []x86.OperandKind{rmKind}, HasModRM: true}}
	e.ByReg[4] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MMul, Operands: []x86.OperandKind{rmKind}, HasModRM: true}}
	e.ByReg[5] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MImul, Operands: []x86.OperandKind{rmKind}, HasModRM: true}}
	e.ByReg[6] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MDiv, Operands: []x86.OperandKind{rmKind}, HasModRM: true}}
	e.ByReg[7] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MIdiv, Operands: []x86.OperandKind{rmKind}, HasModRM: true}}
	return e
}

func immOpFor(size int) x86.OperandKind {
	switch size {
	case 1:
		return x86.OpImm8
	case 2:
		return x86.OpImm16
	default:
		return x86.OpImmNative
	}
}

// group4 is INC/DEC r/m8 (0xFE).
func group4() *Entry {
	e := &Entry{Kind: ExtByReg}
	e.ByReg[0] = termModRM(x86.MInc, x86.OpRegMem8)
	e.ByReg[1] = termModRM(x86.MDec, x86.OpRegMem8)
	for i := 2; i < 8; i++ {
		e.ByReg[i] = blank()
	}
	return e
}

// group5 is INC/DEC/CALL/CALLF/JMP/JMPF/PUSH r/m (0xFF), default-64 in
// Long mode for the control-transfer and PUSH slots.
func group5() *Entry {
	e := &Entry{Kind: ExtByReg}
	e.ByReg[0] = termModRM(x86.MInc, x86.OpRegMemNative)
	e.ByReg[1] = termModRM(x86.MDec, x86.OpRegMemNative)
	e.ByReg[2] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MCall, Operands: []x86.OperandKind{x86.OpRegMemNative}, HasModRM: true, DefaultTo64: true}}
	e.ByReg[3] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MCall, Operands: []x86.OperandKind{x86.OpFarPtrMem}, HasModRM: true}}
	e.ByReg[4] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MJmp, Operands: []x86.OperandKind{x86.OpRegMemNative}, HasModRM: true, DefaultTo64: true}}
	e.ByReg[5] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MJmp, Operands: []x86.OperandKind{x86.OpFarPtrMem}, HasModRM: true}}
	e.ByReg[6] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPush, Operands: []x86.OperandKind{x86.OpRegMemNative}, HasModRM: true, DefaultTo64: true}}
	e.ByReg[7] = blank()
	return e
}

// Primary is the 256-entry table for single-byte (non-0F-escaped)
// opcodes, keyed directly by the opcode byte once prefixes (including any
// REX byte, which in Long mode shares the 0x40-0x4F range with legacy
// INC/DEC) have already been stripped by the decoder's prefix scanner.
var Primary [256]*Entry

func init() {
	for i := range Primary {
		Primary[i] = blank()
	}

	aluMnemonics := [8]x86.Mnemonic{x86.MAdd, x86.MOr, x86.MAdc, x86.MSbb, x86.MAnd, x86.MSub, x86.MXor, x86.MCmp}
	for g, m := range aluMnemonics {
		forms := aluGroup(m)
		for i, f := range forms {
			Primary[g*8+i] = f
		}
	}

	// Legacy segment-register pushes/pops, interleaved with the ALU rows.
	Primary[0x06] = term(x86.MPush, x86.OpImplicitES)
	Primary[0x07] = term(x86.MPop, x86.OpImplicitES)
	Primary[0x0E] = term(x86.MPush, x86.OpImplicitCS)
	Primary[0x16] = term(x86.MPush, x86.OpImplicitSS)
	Primary[0x17] = term(x86.MPop, x86.OpImplicitSS)
	Primary[0x1E] = term(x86.MPush, x86.OpImplicitDS)
	Primary[0x1F] = term(x86.MPop, x86.OpImplicitDS)

	// 0x27-0x3F odd slots: the legacy BCD-adjust row, gone in Long mode but
	// still decoded (a Long-mode stream hitting them is malformed anyway,
	// and the table layer is mode-invariant by design).
	Primary[0x27] = term(x86.MDaa)
	Primary[0x2F] = term(x86.MDas)
	Primary[0x37] = term(x86.MAaa)
	Primary[0x3F] = term(x86.MAas)

	Primary[0x60] = term(x86.MPusha)
	Primary[0x61] = term(x86.MPopa)
	Primary[0x62] = termModRM(x86.MBound, x86.OpRegNative, x86.OpMem)

	// 0x50-0x57 PUSH +rd, 0x58-0x5F POP +rd; 64-bit by default in Long
	// mode, narrowable to 16 with 0x66, REX.B extends the index.
	for r := 0; r < 8; r++ {
		Primary[0x50+r] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPush, Operands: []x86.OperandKind{x86.OpOpcodeRegNative}, DefaultTo64: true}}
		Primary[0x58+r] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPop, Operands: []x86.OperandKind{x86.OpOpcodeRegNative}, DefaultTo64: true}}
	}

	Primary[0x63] = termModRM(x86.MMovsxd, x86.OpRegNative, x86.OpRegMem32)

	Primary[0x68] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPush, Operands: []x86.OperandKind{x86.OpImmNative}, ImmSize: 4, DefaultTo64: true}}
	Primary[0x69] = termModRMImm(x86.MImul, 4, x86.OpRegNative, x86.OpRegMemNative, x86.OpImmNative)
	Primary[0x6A] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPush, Operands: []x86.OperandKind{x86.OpImm8Sx}, ImmSize: -1, DefaultTo64: true}}
	Primary[0x6B] = termModRMImm(x86.MImul, -1, x86.OpRegNative, x86.OpRegMemNative, x86.OpImm8Sx)

	// 0x70-0x7F Jcc rel8; the low nibble is the condition code.
	for cc := 0; cc < 16; cc++ {
		Primary[0x70+cc] = &Entry{Kind: Terminal, Form: Form{
			Mnemonic: x86.MJcc, Operands: []x86.OperandKind{x86.OpRel8}, RelSize: 1, ConditionCoded: true,
		}}
	}

	Primary[0x80] = group1(x86.OpRegMem8, 1)
	Primary[0x81] = group1(x86.OpRegMemNative, 4)
	Primary[0x83] = group1(x86.OpRegMemNative, 1) // imm8, sign-extended — see group1's -1 fixup.

	Primary[0x84] = termModRM(x86.MTest, x86.OpRegMem8, x86.OpReg8)
	Primary[0x85] = termModRM(x86.MTest, x86.OpRegMemNative, x86.OpRegNative)
	Primary[0x86] = termModRM(x86.MXchg, x86.OpRegMem8, x86.OpReg8)
	Primary[0x87] = termModRM(x86.MXchg, x86.OpRegMemNative, x86.OpRegNative)
	Primary[0x88] = termModRM(x86.MMov, x86.OpRegMem8, x86.OpReg8)
	Primary[0x89] = termModRM(x86.MMov, x86.OpRegMemNative, x86.OpRegNative)
	Primary[0x8A] = termModRM(x86.MMov, x86.OpReg8, x86.OpRegMem8)
	Primary[0x8B] = termModRM(x86.MMov, x86.OpRegNative, x86.OpRegMemNative)
	Primary[0x8C] = termModRM(x86.MMov, x86.OpRegMem16, x86.OpRegSegment)
	Primary[0x8D] = termModRM(x86.MLea, x86.OpRegNative, x86.OpMem)
	Primary[0x8E] = termModRM(x86.MMov, x86.OpRegSegment, x86.OpRegMem16)

	// 0xC4/0xC5 LES/LDS only exist in Legacy/Compat mode; in Long mode the
	// prefix scanner's isVexIntroducer always claims these bytes for VEX
	// before the primary table is ever consulted, so these entries are
	// simply unreachable there rather than needing a mode check here.
	Primary[0xC4] = termModRM(x86.MLes, x86.OpRegNative, x86.OpMem)
	Primary[0xC5] = termModRM(x86.MLds, x86.OpRegNative, x86.OpMem)

	Primary[0x8F] = &Entry{Kind: ExtByReg}
	Primary[0x8F].ByReg[0] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPop, Operands: []x86.OperandKind{x86.OpRegMemNative}, HasModRM: true, DefaultTo64: true}}
	for i := 1; i < 8; i++ {
		Primary[0x8F].ByReg[i] = blank()
	}

	// 0x91-0x97 XCHG r,rAX (+rd, REX.B extends); 0x90 is handled as a
	// dispatch-time special case (NOP/PAUSE) rather than as a genuine
	// XCHG-with-self terminal.
	for r := 1; r < 8; r++ {
		Primary[0x90+r] = term(x86.MXchg, x86.OpOpcodeRegNative, x86.OpImplicitNativeAX)
	}
	Primary[0x90] = term(x86.MNop)
	Primary[0x98] = &Entry{Kind: ExtByRexW}
	Primary[0x98].ByRexW[0] = term(x86.MCwde)
	Primary[0x98].ByRexW[1] = term(x86.MCdqe)
	Primary[0x99] = &Entry{Kind: ExtByRexW}
	Primary[0x99].ByRexW[0] = term(x86.MCdq)
	Primary[0x99].ByRexW[1] = term(x86.MCqo)

	Primary[0x9A] = termImm(x86.MCall, 6, x86.OpFarPtrImm)
	Primary[0x9B] = term(x86.MFwait)
	Primary[0x9C] = term(x86.MPushfq)
	Primary[0x9D] = term(x86.MPopfq)
	Primary[0x9E] = term(x86.MSahf)
	Primary[0x9F] = term(x86.MLahf)

	Primary[0xA0] = termImm(x86.MMov, 8, x86.OpImplicitAL, x86.OpMoffs8)
	Primary[0xA1] = termImm(x86.MMov, 8, x86.OpImplicitEAX, x86.OpMoffs32)
	Primary[0xA2] = termImm(x86.MMov, 8, x86.OpMoffs8, x86.OpImplicitAL)
	Primary[0xA3] = termImm(x86.MMov, 8, x86.OpMoffs32, x86.OpImplicitEAX)

	Primary[0xA4] = term(x86.MMovsb, x86.OpImplicitMemDst8, x86.OpImplicitMemSrc8)
	Primary[0xA5] = term(x86.MMovsd, x86.OpImplicitMemDst32, x86.OpImplicitMemSrc32)
	Primary[0xA6] = term(x86.MCmpsb, x86.OpImplicitMemSrc8, x86.OpImplicitMemDst8)
	Primary[0xA7] = term(x86.MCmpsd, x86.OpImplicitMemSrc32, x86.OpImplicitMemDst32)
	Primary[0xA8] = termImm(x86.MTest, 1, x86.OpImplicitAL, x86.OpImm8)
	Primary[0xA9] = termImm(x86.MTest, 4, x86.OpImplicitNativeAX, x86.OpImmNative)
	Primary[0xAA] = term(x86.MStosb, x86.OpImplicitMemDst8, x86.OpImplicitAL)
	Primary[0xAB] = term(x86.MStosd, x86.OpImplicitMemDst32, x86.OpImplicitEAX)
	Primary[0xAC] = term(x86.MLodsb, x86.OpImplicitAL, x86.OpImplicitMemSrc8)
	Primary[0xAD] = term(x86.MLodsd, x86.OpImplicitEAX, x86.OpImplicitMemSrc32)
	Primary[0xAE] = term(x86.MScasb, x86.OpImplicitAL, x86.OpImplicitMemDst8)
	Primary[0xAF] = term(x86.MScasd, x86.OpImplicitEAX, x86.OpImplicitMemDst32)

	// 0xB0-0xB7 MOV r8,imm8; 0xB8-0xBF MOV r32/r64,imm32/imm64 (REX.W widens).
	for r := 0; r < 8; r++ {
		Primary[0xB0+r] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MMov, Operands: []x86.OperandKind{x86.OpOpcodeReg8, x86.OpImm8}, ImmSize: 1}}
		Primary[0xB8+r] = &Entry{Kind: ExtByRexW}
		Primary[0xB8+r].ByRexW[0] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MMov, Operands: []x86.OperandKind{x86.OpOpcodeRegNative, x86.OpImmNative}, ImmSize: 4}}
		Primary[0xB8+r].ByRexW[1] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MMov, Operands: []x86.OperandKind{x86.OpOpcodeReg64, x86.OpImm64}, ImmSize: 8}}
	}

	Primary[0xC0] = group2(x86.OpRegMem8, x86.OpImm8, 1)
	Primary[0xC1] = group2(x86.OpRegMemNative, x86.OpImm8, 1)
	Primary[0xC2] = termImm(x86.MRet, 2, x86.OpImm16)
	Primary[0xC3] = term(x86.MRet)
	Primary[0xC8] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MEnter, Operands: []x86.OperandKind{x86.OpImm16, x86.OpImm8}, ImmSize: 3}}
	Primary[0xC9] = term(x86.MLeave)
	Primary[0xCA] = termImm(x86.MRetf, 2, x86.OpImm16)
	Primary[0xCB] = term(x86.MRetf)

	Primary[0xC6] = &Entry{Kind: ExtByReg}
	Primary[0xC6].ByReg[0] = termModRMImm(x86.MMov, 1, x86.OpRegMem8, x86.OpImm8)
	for i := 1; i < 8; i++ {
		Primary[0xC6].ByReg[i] = blank()
	}
	Primary[0xC7] = &Entry{Kind: ExtByReg}
	Primary[0xC7].ByReg[0] = termModRMImm(x86.MMov, 4, x86.OpRegMemNative, x86.OpImmNative)
	for i := 1; i < 8; i++ {
		Primary[0xC7].ByReg[i] = blank()
	}

	Primary[0xCC] = term(x86.MInt3)
	Primary[0xCD] = termImm(x86.MInt, 1, x86.OpImm8)
	Primary[0xCE] = term(x86.MInto)
	Primary[0xCF] = term(x86.MIret)

	Primary[0xD0] = group2(x86.OpRegMem8, x86.OpImplicitOne, 0)
	Primary[0xD1] = group2(x86.OpRegMemNative, x86.OpImplicitOne, 0)
	Primary[0xD2] = group2(x86.OpRegMem8, x86.OpImplicitCL, 0)
	Primary[0xD3] = group2(x86.OpRegMemNative, x86.OpImplicitCL, 0)
	Primary[0xD4] = termImm(x86.MAam, 1, x86.OpImm8)
	Primary[0xD5] = termImm(x86.MAad, 1, x86.OpImm8)
	Primary[0xD7] = term(x86.MXlat)

	Primary[0x6C] = term(x86.MInsb, x86.OpImplicitMemDst8, x86.OpImplicitDX)
	Primary[0x6D] = term(x86.MInsd, x86.OpImplicitMemDst32, x86.OpImplicitDX)
	Primary[0x6E] = term(x86.MOutsb, x86.OpImplicitDX, x86.OpImplicitMemSrc8)
	Primary[0x6F] = term(x86.MOutsd, x86.OpImplicitDX, x86.OpImplicitMemSrc32)

	Primary[0xE0] = termRel(x86.MLoopne, 1)
	Primary[0xE1] = termRel(x86.MLoope, 1)
	Primary[0xE2] = termRel(x86.MLoop, 1)
	Primary[0xE3] = termRel(x86.MJcxz, 1)

	Primary[0xE4] = termImm(x86.MIn, 1, x86.OpImplicitAL, x86.OpImm8)
	Primary[0xE5] = termImm(x86.MIn, 1, x86.OpImplicitEAX, x86.OpImm8)
	Primary[0xE6] = termImm(x86.MOut, 1, x86.OpImm8, x86.OpImplicitAL)
	Primary[0xE7] = termImm(x86.MOut, 1, x86.OpImm8, x86.OpImplicitEAX)

	Primary[0xE8] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MCall, Operands: []x86.OperandKind{x86.OpRelNative}, RelSize: 4, DefaultTo64: true}}
	Primary[0xE9] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MJmp, Operands: []x86.OperandKind{x86.OpRelNative}, RelSize: 4, DefaultTo64: true}}
	Primary[0xEA] = termImm(x86.MJmp, 6, x86.OpFarPtrImm)
	Primary[0xEB] = termRel(x86.MJmp, 1)

	Primary[0xEC] = term(x86.MIn, x86.OpImplicitAL, x86.OpImplicitDX)
	Primary[0xED] = term(x86.MIn, x86.OpImplicitEAX, x86.OpImplicitDX)
	Primary[0xEE] = term(x86.MOut, x86.OpImplicitDX, x86.OpImplicitAL)
	Primary[0xEF] = term(x86.MOut, x86.OpImplicitDX, x86.OpImplicitEAX)

	Primary[0xF1] = term(x86.MInt1)
	Primary[0xF4] = term(x86.MHlt)
	Primary[0xF5] = term(x86.MCmc)
	Primary[0xF6] = group3(x86.OpRegMem8, 1)
	Primary[0xF7] = group3(x86.OpRegMemNative, 4)
	Primary[0xF8] = term(x86.MClc)
	Primary[0xF9] = term(x86.MStc)
	Primary[0xFA] = term(x86.MCli)
	Primary[0xFB] = term(x86.MSti)
	Primary[0xFC] = term(x86.MCld)
	Primary[0xFD] = term(x86.MStd)
	Primary[0xFE] = group4()
	Primary[0xFF] = group5()
}
