package table

import "github.com/keurnel/x64dis/arch/x86"

// x87Group builds one of the eight D8-DF opcode-byte entries: an ExtByMod
// node whose memory (mod != 3) half is an 8-way ExtByReg table over a fixed
// memory operand kind, and whose register (mod == 3) half is populated
// slot-by-slot by the caller (most x87 ModR/M.mod==3 encodings don't
// follow the reg/rm grouping regularly enough to generate).
func x87Group(memOps [8]*Entry, regForms [8]*Entry) *Entry {
	memExt := &Entry{Kind: ExtByReg}
	for i, e := range memOps {
		if e == nil {
			e = blank()
		}
		memExt.ByReg[i] = e
	}
	regExt := &Entry{Kind: ExtByReg}
	for i, e := range regForms {
		if e == nil {
			e = blank()
		}
		regExt.ByReg[i] = e
	}
	return &Entry{Kind: ExtByMod, ByMod: [2]*Entry{memExt, regExt}}
}

// x87Mem is the common shape for the eight-mnemonic-by-reg memory forms
// that D8, DA, DC, DE (float/int arithmetic) and D9/DB/DD/DF (load/store)
// all use: a single memory operand of the given kind.
func x87Mem(mem x86.OperandKind, mnems [8]x86.Mnemonic) [8]*Entry {
	var out [8]*Entry
	for i, m := range mnems {
		if m == x86.MNone {
			out[i] = blank()
			continue
		}
		out[i] = termModRM(m, mem)
	}
	return out
}

// x87StReg builds a mod==3 slot whose terminal takes ST(i) (from
// ModR/M.rm) as its sole explicit operand, paired with the implicit ST(0)
// the mnemonic always also acts on.
func x87StReg(m x86.Mnemonic) *Entry {
	return termModRM(m, x86.OpRegST)
}

// x87St0Sti is the "fadd st, st(i)" direction (D8 row): ST(0) destination
// named explicitly, ST(i) source from ModR/M.rm.
func x87St0Sti(m x86.Mnemonic) *Entry {
	return termModRM(m, x86.OpImplicitST0, x86.OpRegST)
}

// x87StiSt0 is the reversed "fadd st(i), st" direction (DC/DE rows).
func x87StiSt0(m x86.Mnemonic) *Entry {
	return termModRM(m, x86.OpRegST, x86.OpImplicitST0)
}

func init() {
	// D8: FADD/FMUL/FCOM/FCOMP/FSUB/FSUBR/FDIV/FDIVR m32fp (mod!=3) and
	// the st(0),st(i) register forms (mod==3).
	d8Mnems := [8]x86.Mnemonic{x86.MFadd, x86.MFmul, x86.MFcom, x86.MFcomp, x86.MFsub, x86.MFsubr, x86.MFdiv, x86.MFdivr}
	d8Reg := [8]*Entry{}
	for i, m := range d8Mnems {
		d8Reg[i] = x87St0Sti(m)
	}
	// FCOM/FCOMP take a bare st(i) operand, not the two-operand form.
	d8Reg[2] = x87StReg(x86.MFcom)
	d8Reg[3] = x87StReg(x86.MFcomp)
	Primary[0xD8] = x87Group(x87Mem(x86.OpMem32, d8Mnems), d8Reg)

	// D9: FLD/FST/FSTP m32fp, FLDENV/FLDCW/FNSTENV/FNSTCW (mod!=3); FLD
	// st(i), FXCH st(i), FNOP, and the constant/control/transcendental
	// groups (mod==3).
	d9Mem := [8]*Entry{
		termModRM(x86.MFld, x86.OpMem32), blank(),
		termModRM(x86.MFst, x86.OpMem32), termModRM(x86.MFstp, x86.OpMem32),
		termModRM(x86.MFldenv, x86.OpMem), termModRM(x86.MFldcw, x86.OpMem16),
		termModRM(x86.MFnstenv, x86.OpMem), termModRM(x86.MFnstcw, x86.OpMem16),
	}
	Primary[0xD9] = x87Group(d9Mem, [8]*Entry{
		x87StReg(x86.MFld), x87StReg(x86.MFxch),
		term(x86.MFnop), blank(),
		d9ControlGroup(), d9ConstantGroup(),
		d9TransGroup1(), d9TransGroup2(),
	})

	// DA: integer arithmetic on m32int (mod!=3); FUCOMPP (DA E9, mod==3
	// reg=5 rm=1).
	daMnems := [8]x86.Mnemonic{x86.MFiadd, x86.MFimul, x86.MFicom, x86.MFicomp, x86.MFisub, x86.MFisubr, x86.MFidiv, x86.MFidivr}
	Primary[0xDA] = x87Group(x87Mem(x86.OpMem32, daMnems), [8]*Entry{
		blank(), blank(), blank(), blank(), blank(),
		&Entry{Kind: ExtByRm, ByRm: [8]*Entry{
			blank(), term(x86.MFucompp), blank(), blank(), blank(), blank(), blank(), blank(),
		}},
		blank(), blank(),
	})

	// DB: FILD/FISTTP/FIST/FISTP m32int, FLD/FSTP m80 (mod!=3); FNCLEX/
	// FNINIT in the control group and FUCOMI/FCOMI st(i) (mod==3).
	dbMem := [8]*Entry{
		termModRM(x86.MFild, x86.OpMem32), termModRM(x86.MFisttp, x86.OpMem32),
		termModRM(x86.MFist, x86.OpMem32), termModRM(x86.MFistp, x86.OpMem32),
		blank(), termModRM(x86.MFld, x86.OpMem80),
		blank(), termModRM(x86.MFstp, x86.OpMem80),
	}
	Primary[0xDB] = x87Group(dbMem, [8]*Entry{
		blank(), blank(), blank(), blank(),
		dbControlGroup(), x87StReg(x86.MFucomi), x87StReg(x86.MFcomi), blank(),
	})

	// DC: FADD/FMUL/FCOM/FCOMP/FSUB/FSUBR/FDIV/FDIVR m64fp (mod!=3); the
	// st(i),st(0) reversed register forms (mod==3 — note the subtraction/
	// division slots swap R and plain variants relative to D8).
	dcMnems := [8]x86.Mnemonic{x86.MFadd, x86.MFmul, x86.MFcom, x86.MFcomp, x86.MFsub, x86.MFsubr, x86.MFdiv, x86.MFdivr}
	Primary[0xDC] = x87Group(x87Mem(x86.OpMem64, dcMnems), [8]*Entry{
		x87StiSt0(x86.MFadd), x87StiSt0(x86.MFmul), blank(), blank(),
		x87StiSt0(x86.MFsubr), x87StiSt0(x86.MFsub),
		x87StiSt0(x86.MFdivr), x87StiSt0(x86.MFdiv),
	})

	// DD: FLD/FISTTP/FST/FSTP m64fp, FRSTOR/FNSAVE/FNSTSW (mod!=3);
	// FFREE/FST/FSTP/FUCOM/FUCOMP st(i) (mod==3).
	ddMem := [8]*Entry{
		termModRM(x86.MFld, x86.OpMem64), termModRM(x86.MFisttp, x86.OpMem64),
		termModRM(x86.MFst, x86.OpMem64), termModRM(x86.MFstp, x86.OpMem64),
		termModRM(x86.MFrstor, x86.OpMem), blank(),
		termModRM(x86.MFnsave, x86.OpMem), termModRM(x86.MFnstsw, x86.OpMem16),
	}
	Primary[0xDD] = x87Group(ddMem, [8]*Entry{
		x87StReg(x86.MFfree), blank(), x87StReg(x86.MFst), x87StReg(x86.MFstp),
		x87StReg(x86.MFucom), x87StReg(x86.MFucomp), blank(), blank(),
	})

	// DE: integer arithmetic on m16int (mod!=3); the pop-after-op register
	// forms FADDP/FMULP/.../FDIVP st(i),st and FCOMPP (mod==3).
	deMnems := [8]x86.Mnemonic{x86.MFiadd, x86.MFimul, x86.MFicom, x86.MFicomp, x86.MFisub, x86.MFisubr, x86.MFidiv, x86.MFidivr}
	Primary[0xDE] = x87Group(x87Mem(x86.OpMem16, deMnems), [8]*Entry{
		x87StiSt0(x86.MFaddp), x87StiSt0(x86.MFmulp),
		blank(),
		&Entry{Kind: ExtByRm, ByRm: [8]*Entry{
			blank(), term(x86.MFcompp), blank(), blank(), blank(), blank(), blank(), blank(),
		}},
		x87StiSt0(x86.MFsubrp), x87StiSt0(x86.MFsubp),
		x87StiSt0(x86.MFdivrp), x87StiSt0(x86.MFdivp),
	})

	// DF: FILD/FISTTP/FIST/FISTP m16int, FILD/FISTP m64int (mod!=3);
	// FNSTSW AX (DF E0) and FUCOMIP/FCOMIP st(i) (mod==3).
	dfMem := [8]*Entry{
		termModRM(x86.MFild, x86.OpMem16), termModRM(x86.MFisttp, x86.OpMem16),
		termModRM(x86.MFist, x86.OpMem16), termModRM(x86.MFistp, x86.OpMem16),
		blank(), termModRM(x86.MFild, x86.OpMem64),
		blank(), termModRM(x86.MFistp, x86.OpMem64),
	}
	Primary[0xDF] = x87Group(dfMem, [8]*Entry{
		blank(), blank(), blank(), blank(),
		&Entry{Kind: ExtByRm, ByRm: [8]*Entry{
			term(x86.MFnstsw, x86.OpImplicitAX), blank(), blank(), blank(), blank(), blank(), blank(), blank(),
		}},
		x87StReg(x86.MFucomip), x87StReg(x86.MFcomip), blank(),
	})
}

// d9ControlGroup is D9/E0-E7 (mod==3, reg==4): FCHS, FABS, (reserved),
// (reserved), FTST, FXAM, (reserved), (reserved).
func d9ControlGroup() *Entry {
	return &Entry{Kind: ExtByRm, ByRm: [8]*Entry{
		term(x86.MFchs), term(x86.MFabs), blank(), blank(),
		term(x86.MFtst), term(x86.MFxam), blank(), blank(),
	}}
}

// d9ConstantGroup is D9/E8-EF (mod==3, reg==5): FLD1, FLDL2T, FLDL2E,
// FLDPI, FLDLG2, FLDLN2, FLDZ, (reserved).
func d9ConstantGroup() *Entry {
	return &Entry{Kind: ExtByRm, ByRm: [8]*Entry{
		term(x86.MFld1), term(x86.MFldl2t), term(x86.MFldl2e), term(x86.MFldpi),
		term(x86.MFldlg2), term(x86.MFldln2), term(x86.MFldz), blank(),
	}}
}

// d9TransGroup1 is D9/F0-F7 (mod==3, reg==6): F2XM1, FYL2X, FPTAN,
// FPATAN, FXTRACT, FPREM1, FDECSTP, FINCSTP.
func d9TransGroup1() *Entry {
	return &Entry{Kind: ExtByRm, ByRm: [8]*Entry{
		term(x86.MF2xm1), term(x86.MFyl2x), term(x86.MFptan), term(x86.MFpatan),
		term(x86.MFxtract), term(x86.MFprem1), term(x86.MFdecstp), term(x86.MFincstp),
	}}
}

// d9TransGroup2 is D9/F8-FF (mod==3, reg==7): FPREM, FYL2XP1, FSQRT,
// FSINCOS, FRNDINT, FSCALE, FSIN, FCOS.
func d9TransGroup2() *Entry {
	return &Entry{Kind: ExtByRm, ByRm: [8]*Entry{
		term(x86.MFprem), term(x86.MFyl2xp1), term(x86.MFsqrt), term(x86.MFsincos),
		term(x86.MFrndint), term(x86.MFscale), term(x86.MFsin), term(x86.MFcos),
	}}
}

// dbControlGroup is DB/E0-E7 (mod==3, reg==4): FNCLEX (rm==2) and FNINIT
// (rm==3); FNENI/FNDISI/FNSETPM are legacy-only and left blank.
func dbControlGroup() *Entry {
	return &Entry{Kind: ExtByRm, ByRm: [8]*Entry{
		blank(), blank(), term(x86.MFnclex), term(x86.MFninit), blank(), blank(), blank(), blank(),
	}}
}
