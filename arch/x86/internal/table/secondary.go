package table

import "github.com/keurnel/x64dis/arch/x86"

// byMandatory builds an ExtByMandatory node from up to 4 alternatives; a
// nil alternative is filled in as Blank so Lookup never walks off a nil
// Entry pointer.
func byMandatory(none, p66, pF3, pF2 *Entry) *Entry {
	e := &Entry{Kind: ExtByMandatory}
	e.ByMandatory[MPNone] = orBlank(none)
	e.ByMandatory[MP66] = orBlank(p66)
	e.ByMandatory[MPF3] = orBlank(pF3)
	e.ByMandatory[MPF2] = orBlank(pF2)
	return e
}

func orBlank(e *Entry) *Entry {
	if e == nil {
		return blank()
	}
	return e
}

func mmReg(m x86.Mnemonic, dst, src x86.OperandKind) *Entry {
	return termModRM(m, dst, src)
}

// mmxXmmPair is the classic MMX/SSE2 opcode-sharing shape: the bare opcode
// is the 64-bit MMX form, the 66-prefixed one the 128-bit XMM form, same
// mnemonic either way.
func mmxXmmPair(m x86.Mnemonic) *Entry {
	return byMandatory(
		termModRM(m, x86.OpRegMMX, x86.OpRegMemMMX),
		termModRM(m, x86.OpRegXMM, x86.OpRegMemXMM),
		nil, nil)
}

// mmxXmmPairImm8 is mmxXmmPair with a trailing imm8 (PSHUFW-style).
func mmxXmmPairImm8(m x86.Mnemonic) *Entry {
	return byMandatory(
		termModRMImm(m, 1, x86.OpRegMMX, x86.OpRegMemMMX, x86.OpImm8),
		termModRMImm(m, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
		nil, nil)
}

// ssePacked builds the four-channel packed/scalar arithmetic fan the 0F
// 0x51-0x5F row uses: ps (none), pd (66), ss (F3), sd (F2). A zero
// mnemonic marks a channel with no defined instruction.
func ssePacked(ps, pd, ss, sd x86.Mnemonic) *Entry {
	mk := func(m x86.Mnemonic) *Entry {
		if m == x86.MNone {
			return nil
		}
		return termModRM(m, x86.OpRegXMM, x86.OpRegMemXMM)
	}
	return byMandatory(mk(ps), mk(pd), mk(ss), mk(sd))
}

// shiftGroup builds one of the 0F 71/72/73 immediate-shift group entries:
// ModR/M.reg selects the operation, the operand is the rm-side MMX/XMM
// register (mod == 3 only in well-formed code), followed by an imm8.
func shiftGroup(rm x86.OperandKind, mnems [8]x86.Mnemonic) *Entry {
	e := &Entry{Kind: ExtByReg}
	for i, m := range mnems {
		if m == x86.MNone {
			e.ByReg[i] = blank()
			continue
		}
		e.ByReg[i] = termModRMImm(m, 1, rm, x86.OpImm8)
	}
	return e
}

// Secondary is the 256-entry table for 0x0F-escaped opcodes (the
// "secondary" opcode map), keyed by the byte following 0x0F once any
// 0x38/0x3A tertiary escape has already been ruled out.
var Secondary [256]*Entry

func init() {
	for i := range Secondary {
		Secondary[i] = blank()
	}

	// --- System / control rows. ---

	Secondary[0x00] = &Entry{Kind: ExtByReg}
	Secondary[0x00].ByReg[0] = termModRM(x86.MSldt, x86.OpRegMem16)
	Secondary[0x00].ByReg[1] = termModRM(x86.MStr, x86.OpRegMem16)
	Secondary[0x00].ByReg[2] = termModRM(x86.MLldt, x86.OpRegMem16)
	Secondary[0x00].ByReg[3] = termModRM(x86.MLtr, x86.OpRegMem16)
	Secondary[0x00].ByReg[4] = termModRM(x86.MVerr, x86.OpRegMem16)
	Secondary[0x00].ByReg[5] = termModRM(x86.MVerw, x86.OpRegMem16)
	Secondary[0x00].ByReg[6] = blank()
	Secondary[0x00].ByReg[7] = blank()

	Secondary[0x01] = &Entry{Kind: ExtByReg}
	Secondary[0x01].ByReg[0] = termModRM(x86.MSgdt, x86.OpMem)
	Secondary[0x01].ByReg[1] = &Entry{Kind: ExtByMod, ByMod: [2]*Entry{
		termModRM(x86.MSidt, x86.OpMem),
		&Entry{Kind: ExtByRm, ByRm: [8]*Entry{
			term(x86.MMonitor), term(x86.MMwait), blank(), blank(), blank(), blank(), blank(), blank(),
		}},
	}}
	Secondary[0x01].ByReg[2] = &Entry{Kind: ExtByMod, ByMod: [2]*Entry{
		termModRM(x86.MLgdt, x86.OpMem),
		&Entry{Kind: ExtByRm, ByRm: [8]*Entry{
			term(x86.MXgetbv), term(x86.MXsetbv), blank(), blank(), blank(), blank(), blank(), blank(),
		}},
	}}
	Secondary[0x01].ByReg[3] = termModRM(x86.MLidt, x86.OpMem)
	Secondary[0x01].ByReg[4] = termModRM(x86.MSmsw, x86.OpRegMem16)
	Secondary[0x01].ByReg[5] = blank()
	Secondary[0x01].ByReg[6] = termModRM(x86.MLmsw, x86.OpRegMem16)
	Secondary[0x01].ByReg[7] = &Entry{Kind: ExtByMod, ByMod: [2]*Entry{
		termModRM(x86.MInvlpg, x86.OpMem),
		&Entry{Kind: ExtByRm, ByRm: [8]*Entry{
			term(x86.MSwapgs), term(x86.MRdtscp), blank(), blank(), blank(), blank(), blank(), blank(),
		}},
	}}

	Secondary[0x02] = termModRM(x86.MLar, x86.OpRegNative, x86.OpRegMem16)
	Secondary[0x03] = termModRM(x86.MLsl, x86.OpRegNative, x86.OpRegMem16)
	Secondary[0x05] = term(x86.MSyscall)
	Secondary[0x06] = term(x86.MClts)
	Secondary[0x07] = term(x86.MSysret)
	Secondary[0x08] = term(x86.MInvd)
	Secondary[0x09] = term(x86.MWbinvd)
	Secondary[0x0B] = term(x86.MUd2)
	Secondary[0x0E] = term(x86.MFemms)

	// 0F 0D: the 3DNow! prefetch group.
	Secondary[0x0D] = &Entry{Kind: ExtByReg}
	Secondary[0x0D].ByReg[0] = termModRM(x86.MPrefetch, x86.OpMem8)
	Secondary[0x0D].ByReg[1] = termModRM(x86.MPrefetchw, x86.OpMem8)
	for i := 2; i < 8; i++ {
		Secondary[0x0D].ByReg[i] = blank()
	}

	// 0F 18: SSE prefetch group (group 16); reg values 4-7 decode as
	// multi-byte NOPs on real silicon and are tabulated that way.
	Secondary[0x18] = &Entry{Kind: ExtByReg}
	Secondary[0x18].ByReg[0] = termModRM(x86.MPrefetchnta, x86.OpMem8)
	Secondary[0x18].ByReg[1] = termModRM(x86.MPrefetcht0, x86.OpMem8)
	Secondary[0x18].ByReg[2] = termModRM(x86.MPrefetcht1, x86.OpMem8)
	Secondary[0x18].ByReg[3] = termModRM(x86.MPrefetcht2, x86.OpMem8)
	for i := 4; i < 8; i++ {
		Secondary[0x18].ByReg[i] = termModRM(x86.MNop, x86.OpRegMemNative)
	}

	Secondary[0x1E] = termModRM(x86.MNop, x86.OpRegMemNative) // ENDBR64/32 are specific ModR/M bytes of this slot.
	Secondary[0x1F] = termModRM(x86.MNop, x86.OpRegMemNative)

	// 0F 20-23: MOV to/from control and debug registers. The GPR side is
	// in ModR/M.rm (always register form) and is 64-bit in Long mode.
	Secondary[0x20] = termModRM(x86.MMov, x86.OpRegMem64, x86.OpRegControl)
	Secondary[0x21] = termModRM(x86.MMov, x86.OpRegMem64, x86.OpRegDebug)
	Secondary[0x22] = termModRM(x86.MMov, x86.OpRegControl, x86.OpRegMem64)
	Secondary[0x23] = termModRM(x86.MMov, x86.OpRegDebug, x86.OpRegMem64)

	Secondary[0x30] = term(x86.MWrmsr)
	Secondary[0x31] = term(x86.MRdtsc)
	Secondary[0x32] = term(x86.MRdmsr)
	Secondary[0x33] = term(x86.MRdpmc)
	Secondary[0x34] = term(x86.MSysenter)
	Secondary[0x35] = term(x86.MSysexit)

	// --- SSE/SSE2 data movement (0F 10-17, 28-29, 2B). ---

	Secondary[0x10] = byMandatory(
		mmReg(x86.MMovups, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MMovupd, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MMovss, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MMovsd2, x86.OpRegXMM, x86.OpRegMemXMM),
	)
	Secondary[0x11] = byMandatory(
		mmReg(x86.MMovups, x86.OpRegMemXMM, x86.OpRegXMM),
		mmReg(x86.MMovupd, x86.OpRegMemXMM, x86.OpRegXMM),
		mmReg(x86.MMovss, x86.OpRegMemXMM, x86.OpRegXMM),
		mmReg(x86.MMovsd2, x86.OpRegMemXMM, x86.OpRegXMM),
	)

	// 0F 12: MOVLPS m64 load vs MOVHLPS reg-reg share the bare opcode.
	Secondary[0x12] = byMandatory(
		&Entry{Kind: ExtByMod, ByMod: [2]*Entry{
			termModRM(x86.MMovlps, x86.OpRegXMM, x86.OpMem64),
			termModRM(x86.MMovhlps, x86.OpRegXMM, x86.OpRegMemXMM),
		}},
		termModRM(x86.MMovlpd, x86.OpRegXMM, x86.OpMem64),
		termModRM(x86.MMovsldup, x86.OpRegXMM, x86.OpRegMemXMM),
		termModRM(x86.MMovddup, x86.OpRegXMM, x86.OpRegMemXMM),
	)
	Secondary[0x13] = byMandatory(
		termModRM(x86.MMovlps, x86.OpMem64, x86.OpRegXMM),
		termModRM(x86.MMovlpd, x86.OpMem64, x86.OpRegXMM),
		nil, nil,
	)
	Secondary[0x14] = byMandatory(
		mmReg(x86.MUnpcklps, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MUnpcklpd, x86.OpRegXMM, x86.OpRegMemXMM),
		nil, nil,
	)
	Secondary[0x15] = byMandatory(
		mmReg(x86.MUnpckhps, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MUnpckhpd, x86.OpRegXMM, x86.OpRegMemXMM),
		nil, nil,
	)
	Secondary[0x16] = byMandatory(
		&Entry{Kind: ExtByMod, ByMod: [2]*Entry{
			termModRM(x86.MMovhps, x86.OpRegXMM, x86.OpMem64),
			termModRM(x86.MMovlhps, x86.OpRegXMM, x86.OpRegMemXMM),
		}},
		termModRM(x86.MMovhpd, x86.OpRegXMM, x86.OpMem64),
		termModRM(x86.MMovshdup, x86.OpRegXMM, x86.OpRegMemXMM),
		nil,
	)
	Secondary[0x17] = byMandatory(
		termModRM(x86.MMovhps, x86.OpMem64, x86.OpRegXMM),
		termModRM(x86.MMovhpd, x86.OpMem64, x86.OpRegXMM),
		nil, nil,
	)

	Secondary[0x28] = byMandatory(
		mmReg(x86.MMovaps, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MMovapd, x86.OpRegXMM, x86.OpRegMemXMM),
		nil, nil,
	)
	Secondary[0x29] = byMandatory(
		mmReg(x86.MMovaps, x86.OpRegMemXMM, x86.OpRegXMM),
		mmReg(x86.MMovapd, x86.OpRegMemXMM, x86.OpRegXMM),
		nil, nil,
	)
	Secondary[0x2B] = byMandatory(
		termModRM(x86.MMovntps, x86.OpMemXMM, x86.OpRegXMM),
		termModRM(x86.MMovntpd, x86.OpMemXMM, x86.OpRegXMM),
		nil, nil,
	)

	// --- Converts and compares (0F 2A, 2C-2F). ---

	Secondary[0x2A] = byMandatory(
		termModRM(x86.MCvtpi2ps, x86.OpRegXMM, x86.OpRegMemMMX),
		termModRM(x86.MCvtpi2pd, x86.OpRegXMM, x86.OpRegMemMMX),
		termModRM(x86.MCvtsi2ss, x86.OpRegXMM, x86.OpRegMemNative),
		termModRM(x86.MCvtsi2sd, x86.OpRegXMM, x86.OpRegMemNative),
	)
	Secondary[0x2C] = byMandatory(
		termModRM(x86.MCvttps2pi, x86.OpRegMMX, x86.OpRegMemXMM),
		termModRM(x86.MCvttpd2pi, x86.OpRegMMX, x86.OpRegMemXMM),
		termModRM(x86.MCvttss2si, x86.OpRegNative, x86.OpRegMemXMM),
		termModRM(x86.MCvttsd2si, x86.OpRegNative, x86.OpRegMemXMM),
	)
	Secondary[0x2D] = byMandatory(
		termModRM(x86.MCvtps2pi, x86.OpRegMMX, x86.OpRegMemXMM),
		termModRM(x86.MCvtpd2pi, x86.OpRegMMX, x86.OpRegMemXMM),
		termModRM(x86.MCvtss2si, x86.OpRegNative, x86.OpRegMemXMM),
		termModRM(x86.MCvtsd2si, x86.OpRegNative, x86.OpRegMemXMM),
	)
	Secondary[0x2E] = byMandatory(
		mmReg(x86.MUcomiss, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MUcomisd, x86.OpRegXMM, x86.OpRegMemXMM),
		nil, nil,
	)
	Secondary[0x2F] = byMandatory(
		mmReg(x86.MComiss, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MComisd, x86.OpRegXMM, x86.OpRegMemXMM),
		nil, nil,
	)

	// 0F 40-4F CMOVcc r,r/m.
	for cc := 0; cc < 16; cc++ {
		Secondary[0x40+cc] = &Entry{Kind: Terminal, Form: Form{
			Mnemonic: x86.MCmovcc, Operands: []x86.OperandKind{x86.OpRegNative, x86.OpRegMemNative}, HasModRM: true, ConditionCoded: true,
		}}
	}

	// --- Packed/scalar floating-point arithmetic row (0F 50-5F). ---

	Secondary[0x50] = byMandatory(
		termModRM(x86.MMovmskps, x86.OpReg32, x86.OpRegMemXMM),
		termModRM(x86.MMovmskpd, x86.OpReg32, x86.OpRegMemXMM),
		nil, nil,
	)
	Secondary[0x51] = ssePacked(x86.MSqrtps, x86.MSqrtpd, x86.MSqrtss, x86.MSqrtsd)
	Secondary[0x52] = ssePacked(x86.MRsqrtps, x86.MNone, x86.MRsqrtss, x86.MNone)
	Secondary[0x53] = ssePacked(x86.MRcpps, x86.MNone, x86.MRcpss, x86.MNone)
	Secondary[0x54] = ssePacked(x86.MAndps, x86.MAndpd, x86.MNone, x86.MNone)
	Secondary[0x55] = ssePacked(x86.MAndnps, x86.MAndnpd, x86.MNone, x86.MNone)
	Secondary[0x56] = ssePacked(x86.MOrps, x86.MOrpd, x86.MNone, x86.MNone)
	Secondary[0x57] = ssePacked(x86.MXorps, x86.MXorpd, x86.MNone, x86.MNone)
	Secondary[0x58] = ssePacked(x86.MAddps, x86.MAddpd, x86.MAddss, x86.MAddsd)
	Secondary[0x59] = ssePacked(x86.MMulps, x86.MMulpd, x86.MMulss, x86.MMulsd)
	Secondary[0x5A] = ssePacked(x86.MCvtps2pd, x86.MCvtpd2ps, x86.MCvtss2sd, x86.MCvtsd2ss)
	Secondary[0x5B] = ssePacked(x86.MCvtdq2ps, x86.MCvtps2dq, x86.MCvttps2dq, x86.MNone)
	Secondary[0x5C] = ssePacked(x86.MSubps, x86.MSubpd, x86.MSubss, x86.MSubsd)
	Secondary[0x5D] = ssePacked(x86.MMinps, x86.MMinpd, x86.MMinss, x86.MMinsd)
	Secondary[0x5E] = ssePacked(x86.MDivps, x86.MDivpd, x86.MDivss, x86.MDivsd)
	Secondary[0x5F] = ssePacked(x86.MMaxps, x86.MMaxpd, x86.MMaxss, x86.MMaxsd)

	// --- MMX/SSE2 integer rows (0F 60-76, D0-FE). ---

	Secondary[0x60] = mmxXmmPair(x86.MPunpcklbw)
	Secondary[0x61] = mmxXmmPair(x86.MPunpcklwd)
	Secondary[0x62] = mmxXmmPair(x86.MPunpckldq)
	Secondary[0x63] = mmxXmmPair(x86.MPacksswb)
	Secondary[0x64] = mmxXmmPair(x86.MPcmpgtb)
	Secondary[0x65] = mmxXmmPair(x86.MPcmpgtw)
	Secondary[0x66] = mmxXmmPair(x86.MPcmpgtd)
	Secondary[0x67] = mmxXmmPair(x86.MPackuswb)
	Secondary[0x68] = mmxXmmPair(x86.MPunpckhbw)
	Secondary[0x69] = mmxXmmPair(x86.MPunpckhwd)
	Secondary[0x6A] = mmxXmmPair(x86.MPunpckhdq)
	Secondary[0x6B] = mmxXmmPair(x86.MPackssdw)
	Secondary[0x6C] = byMandatory(nil, termModRM(x86.MPunpcklqdq, x86.OpRegXMM, x86.OpRegMemXMM), nil, nil)
	Secondary[0x6D] = byMandatory(nil, termModRM(x86.MPunpckhqdq, x86.OpRegXMM, x86.OpRegMemXMM), nil, nil)

	Secondary[0x6E] = byMandatory(
		movdMovqPair(x86.OpRegMMX),
		movdMovqPair(x86.OpRegXMM),
		nil, nil,
	)
	Secondary[0x6F] = byMandatory(
		mmReg(x86.MMovq, x86.OpRegMMX, x86.OpRegMemMMX),
		mmReg(x86.MMovdqa, x86.OpRegXMM, x86.OpRegMemXMM),
		mmReg(x86.MMovdqu, x86.OpRegXMM, x86.OpRegMemXMM),
		nil,
	)

	Secondary[0x70] = byMandatory(
		termModRMImm(x86.MPshufw, 1, x86.OpRegMMX, x86.OpRegMemMMX, x86.OpImm8),
		termModRMImm(x86.MPshufd, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
		termModRMImm(x86.MPshufhw, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
		termModRMImm(x86.MPshuflw, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
	)

	// 0F 71/72/73: the immediate-form shift groups (12/13/14).
	Secondary[0x71] = byMandatory(
		shiftGroup(x86.OpRegMemMMX, [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MPsrlw, x86.MNone, x86.MPsraw, x86.MNone, x86.MPsllw, x86.MNone}),
		shiftGroup(x86.OpRegMemXMM, [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MPsrlw, x86.MNone, x86.MPsraw, x86.MNone, x86.MPsllw, x86.MNone}),
		nil, nil)
	Secondary[0x72] = byMandatory(
		shiftGroup(x86.OpRegMemMMX, [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MPsrld, x86.MNone, x86.MPsrad, x86.MNone, x86.MPslld, x86.MNone}),
		shiftGroup(x86.OpRegMemXMM, [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MPsrld, x86.MNone, x86.MPsrad, x86.MNone, x86.MPslld, x86.MNone}),
		nil, nil)
	Secondary[0x73] = byMandatory(
		shiftGroup(x86.OpRegMemMMX, [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MPsrlq, x86.MNone, x86.MNone, x86.MNone, x86.MPsllq, x86.MNone}),
		shiftGroup(x86.OpRegMemXMM, [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MPsrlq, x86.MPsrldq, x86.MNone, x86.MNone, x86.MPsllq, x86.MPslldq}),
		nil, nil)

	Secondary[0x74] = mmxXmmPair(x86.MPcmpeqb)
	Secondary[0x75] = mmxXmmPair(x86.MPcmpeqw)
	Secondary[0x76] = mmxXmmPair(x86.MPcmpeqd)
	Secondary[0x77] = term(x86.MEmms)

	// SSE3 horizontal arithmetic.
	Secondary[0x7C] = byMandatory(nil,
		termModRM(x86.MHaddpd, x86.OpRegXMM, x86.OpRegMemXMM), nil,
		termModRM(x86.MHaddps, x86.OpRegXMM, x86.OpRegMemXMM))
	Secondary[0x7D] = byMandatory(nil,
		termModRM(x86.MHsubpd, x86.OpRegXMM, x86.OpRegMemXMM), nil,
		termModRM(x86.MHsubps, x86.OpRegXMM, x86.OpRegMemXMM))

	Secondary[0x7E] = byMandatory(
		movdMovqStorePair(x86.OpRegMMX),
		movdMovqStorePair(x86.OpRegXMM),
		termModRM(x86.MMovq, x86.OpRegXMM, x86.OpRegMemXMM),
		nil,
	)
	Secondary[0x7F] = byMandatory(
		mmReg(x86.MMovq, x86.OpRegMemMMX, x86.OpRegMMX),
		mmReg(x86.MMovdqa, x86.OpRegMemXMM, x86.OpRegXMM),
		mmReg(x86.MMovdqu, x86.OpRegMemXMM, x86.OpRegXMM),
		nil,
	)

	// 0F 80-8F Jcc rel16/32.
	for cc := 0; cc < 16; cc++ {
		Secondary[0x80+cc] = &Entry{Kind: Terminal, Form: Form{
			Mnemonic: x86.MJcc, Operands: []x86.OperandKind{x86.OpRelNative}, RelSize: 4, ConditionCoded: true, DefaultTo64: true,
		}}
	}
	// 0F 90-9F SETcc r/m8.
	for cc := 0; cc < 16; cc++ {
		Secondary[0x90+cc] = &Entry{Kind: Terminal, Form: Form{
			Mnemonic: x86.MSetcc, Operands: []x86.OperandKind{x86.OpRegMem8}, HasModRM: true, ConditionCoded: true,
		}}
	}

	// --- Bit, shift-double, and atomic rows (0F A0-C7). ---

	Secondary[0xA0] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPush, Operands: []x86.OperandKind{x86.OpImplicitFS}, DefaultTo64: true}}
	Secondary[0xA1] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPop, Operands: []x86.OperandKind{x86.OpImplicitFS}, DefaultTo64: true}}
	Secondary[0xA2] = term(x86.MCpuid)
	Secondary[0xA3] = termModRM(x86.MBt, x86.OpRegMemNative, x86.OpRegNative)
	Secondary[0xA4] = termModRMImm(x86.MShld, 1, x86.OpRegMemNative, x86.OpRegNative, x86.OpImm8)
	Secondary[0xA5] = termModRM(x86.MShld, x86.OpRegMemNative, x86.OpRegNative, x86.OpImplicitCL)
	Secondary[0xA8] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPush, Operands: []x86.OperandKind{x86.OpImplicitGS}, DefaultTo64: true}}
	Secondary[0xA9] = &Entry{Kind: Terminal, Form: Form{Mnemonic: x86.MPop, Operands: []x86.OperandKind{x86.OpImplicitGS}, DefaultTo64: true}}
	Secondary[0xAB] = termModRM(x86.MBts, x86.OpRegMemNative, x86.OpRegNative)
	Secondary[0xAC] = termModRMImm(x86.MShrd, 1, x86.OpRegMemNative, x86.OpRegNative, x86.OpImm8)
	Secondary[0xAD] = termModRM(x86.MShrd, x86.OpRegMemNative, x86.OpRegNative, x86.OpImplicitCL)

	// 0F AE: group 15 — cache/SSE state management on the memory side,
	// fences on the register side.
	Secondary[0xAE] = &Entry{Kind: ExtByMod, ByMod: [2]*Entry{
		group15Mem(),
		&Entry{Kind: ExtByReg, ByReg: [8]*Entry{
			blank(), blank(), blank(), blank(), blank(),
			term(x86.MLfence), term(x86.MMfence), term(x86.MSfence),
		}},
	}}

	Secondary[0xAF] = termModRM(x86.MImul, x86.OpRegNative, x86.OpRegMemNative)
	Secondary[0xB0] = termModRM(x86.MCmpxchg, x86.OpRegMem8, x86.OpReg8)
	Secondary[0xB1] = termModRM(x86.MCmpxchg, x86.OpRegMemNative, x86.OpRegNative)
	Secondary[0xB2] = termModRM(x86.MLss, x86.OpRegNative, x86.OpFarPtrMem)
	Secondary[0xB3] = termModRM(x86.MBtr, x86.OpRegMemNative, x86.OpRegNative)
	Secondary[0xB4] = termModRM(x86.MLfs, x86.OpRegNative, x86.OpFarPtrMem)
	Secondary[0xB5] = termModRM(x86.MLgs, x86.OpRegNative, x86.OpFarPtrMem)
	Secondary[0xB6] = termModRM(x86.MMovzx, x86.OpRegNative, x86.OpRegMem8)
	Secondary[0xB7] = termModRM(x86.MMovzx, x86.OpRegNative, x86.OpRegMem16)
	Secondary[0xB8] = byMandatory(nil, nil, termModRM(x86.MPopcnt, x86.OpRegNative, x86.OpRegMemNative), nil)
	Secondary[0xB9] = termModRM(x86.MUd1, x86.OpRegNative, x86.OpRegMemNative)

	// 0F BA: group 8 — BT/BTS/BTR/BTC with an imm8 bit index.
	Secondary[0xBA] = &Entry{Kind: ExtByReg}
	for i, m := range [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MNone, x86.MNone, x86.MBt, x86.MBts, x86.MBtr, x86.MBtc} {
		if m == x86.MNone {
			Secondary[0xBA].ByReg[i] = blank()
			continue
		}
		Secondary[0xBA].ByReg[i] = termModRMImm(m, 1, x86.OpRegMemNative, x86.OpImm8)
	}

	Secondary[0xBB] = termModRM(x86.MBtc, x86.OpRegMemNative, x86.OpRegNative)
	Secondary[0xBC] = byMandatory(
		termModRM(x86.MBsf, x86.OpRegNative, x86.OpRegMemNative), nil,
		termModRM(x86.MTzcnt, x86.OpRegNative, x86.OpRegMemNative), nil)
	Secondary[0xBD] = byMandatory(
		termModRM(x86.MBsr, x86.OpRegNative, x86.OpRegMemNative), nil,
		termModRM(x86.MLzcnt, x86.OpRegNative, x86.OpRegMemNative), nil)
	Secondary[0xBE] = termModRM(x86.MMovsx, x86.OpRegNative, x86.OpRegMem8)
	Secondary[0xBF] = termModRM(x86.MMovsx, x86.OpRegNative, x86.OpRegMem16)

	Secondary[0xC0] = termModRM(x86.MXadd, x86.OpRegMem8, x86.OpReg8)
	Secondary[0xC1] = termModRM(x86.MXadd, x86.OpRegMemNative, x86.OpRegNative)
	Secondary[0xC2] = byMandatory(
		termModRMImm(x86.MCmpps, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
		termModRMImm(x86.MCmppd, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
		termModRMImm(x86.MCmpss, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
		termModRMImm(x86.MCmpsd2, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
	)
	Secondary[0xC3] = termModRM(x86.MMovnti, x86.OpRegMemNative, x86.OpRegNative)
	Secondary[0xC4] = byMandatory(
		termModRMImm(x86.MPinsrw, 1, x86.OpRegMMX, x86.OpRegMem16, x86.OpImm8),
		termModRMImm(x86.MPinsrw, 1, x86.OpRegXMM, x86.OpRegMem16, x86.OpImm8),
		nil, nil,
	)
	Secondary[0xC5] = byMandatory(
		termModRMImm(x86.MPextrw, 1, x86.OpReg32, x86.OpRegMemMMX, x86.OpImm8),
		termModRMImm(x86.MPextrw, 1, x86.OpReg32, x86.OpRegMemXMM, x86.OpImm8),
		nil, nil,
	)
	// Spec.md §9 flags the original's pinsrw label here as a copy-paste
	// bug; SHUFPS/SHUFPD are the real mnemonics.
	Secondary[0xC6] = byMandatory(
		termModRMImm(x86.MShufps, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
		termModRMImm(x86.MShufpd, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8),
		nil, nil,
	)

	// 0F C7: group 9 — CMPXCHG8B/16B on memory, RDRAND/RDSEED on registers.
	Secondary[0xC7] = &Entry{Kind: ExtByReg}
	for i := range Secondary[0xC7].ByReg {
		Secondary[0xC7].ByReg[i] = blank()
	}
	Secondary[0xC7].ByReg[1] = &Entry{Kind: ExtByRexW, ByRexW: [2]*Entry{
		termModRM(x86.MCmpxchg8b, x86.OpMem64),
		termModRM(x86.MCmpxchg16b, x86.OpMem128),
	}}
	Secondary[0xC7].ByReg[6] = &Entry{Kind: ExtByMod, ByMod: [2]*Entry{
		blank(), termModRM(x86.MRdrand, x86.OpRegMemNative),
	}}
	Secondary[0xC7].ByReg[7] = &Entry{Kind: ExtByMod, ByMod: [2]*Entry{
		blank(), termModRM(x86.MRdseed, x86.OpRegMemNative),
	}}

	// 0F C8-CF BSWAP +rd.
	for r := 0; r < 8; r++ {
		Secondary[0xC8+r] = term(x86.MBswap, x86.OpOpcodeRegNative)
	}

	// --- 0F D0-FE: the SSE2/MMX integer arithmetic block. ---

	Secondary[0xD0] = byMandatory(nil,
		termModRM(x86.MAddsubpd, x86.OpRegXMM, x86.OpRegMemXMM), nil,
		termModRM(x86.MAddsubps, x86.OpRegXMM, x86.OpRegMemXMM))
	Secondary[0xD1] = mmxXmmPair(x86.MPsrlw)
	Secondary[0xD2] = mmxXmmPair(x86.MPsrld)
	Secondary[0xD3] = mmxXmmPair(x86.MPsrlq)
	Secondary[0xD4] = mmxXmmPair(x86.MPaddq)
	Secondary[0xD5] = mmxXmmPair(x86.MPmullw)
	Secondary[0xD6] = byMandatory(nil,
		termModRM(x86.MMovq, x86.OpRegMemXMM, x86.OpRegXMM),
		termModRM(x86.MMovq2dq, x86.OpRegXMM, x86.OpRegMemMMX),
		termModRM(x86.MMovdq2q, x86.OpRegMMX, x86.OpRegMemXMM))
	Secondary[0xD7] = byMandatory(
		termModRM(x86.MPmovmskb, x86.OpReg32, x86.OpRegMemMMX),
		termModRM(x86.MPmovmskb, x86.OpReg32, x86.OpRegMemXMM),
		nil, nil)
	Secondary[0xD8] = mmxXmmPair(x86.MPsubusb)
	Secondary[0xD9] = mmxXmmPair(x86.MPsubusw)
	Secondary[0xDA] = mmxXmmPair(x86.MPminub)
	Secondary[0xDB] = mmxXmmPair(x86.MPand)
	Secondary[0xDC] = mmxXmmPair(x86.MPaddusb)
	Secondary[0xDD] = mmxXmmPair(x86.MPaddusw)
	Secondary[0xDE] = mmxXmmPair(x86.MPmaxub)
	Secondary[0xDF] = mmxXmmPair(x86.MPandn)
	Secondary[0xE0] = mmxXmmPair(x86.MPavgb)
	Secondary[0xE1] = mmxXmmPair(x86.MPsraw)
	Secondary[0xE2] = mmxXmmPair(x86.MPsrad)
	Secondary[0xE3] = mmxXmmPair(x86.MPavgw)
	Secondary[0xE4] = mmxXmmPair(x86.MPmulhuw)
	Secondary[0xE5] = mmxXmmPair(x86.MPmulhw)
	Secondary[0xE6] = byMandatory(nil,
		termModRM(x86.MCvttpd2dq, x86.OpRegXMM, x86.OpRegMemXMM),
		termModRM(x86.MCvtdq2pd, x86.OpRegXMM, x86.OpRegMemXMM),
		termModRM(x86.MCvtpd2dq, x86.OpRegXMM, x86.OpRegMemXMM))
	Secondary[0xE7] = byMandatory(
		termModRM(x86.MMovntq, x86.OpMemMMX, x86.OpRegMMX),
		termModRM(x86.MMovntdq, x86.OpMemXMM, x86.OpRegXMM),
		nil, nil)
	Secondary[0xE8] = mmxXmmPair(x86.MPsubsb)
	Secondary[0xE9] = mmxXmmPair(x86.MPsubsw)
	Secondary[0xEA] = mmxXmmPair(x86.MPminsw)
	Secondary[0xEB] = mmxXmmPair(x86.MPor)
	Secondary[0xEC] = mmxXmmPair(x86.MPaddsb)
	Secondary[0xED] = mmxXmmPair(x86.MPaddsw)
	Secondary[0xEE] = mmxXmmPair(x86.MPmaxsw)
	Secondary[0xEF] = mmxXmmPair(x86.MPxor)
	Secondary[0xF0] = byMandatory(nil, nil, nil,
		termModRM(x86.MLddqu, x86.OpRegXMM, x86.OpMemXMM))
	Secondary[0xF1] = mmxXmmPair(x86.MPsllw)
	Secondary[0xF2] = mmxXmmPair(x86.MPslld)
	Secondary[0xF3] = mmxXmmPair(x86.MPsllq)
	Secondary[0xF4] = mmxXmmPair(x86.MPmuludq)
	Secondary[0xF5] = mmxXmmPair(x86.MPmaddwd)
	Secondary[0xF6] = mmxXmmPair(x86.MPsadbw)
	Secondary[0xF7] = byMandatory(
		termModRM(x86.MMaskmovq, x86.OpRegMMX, x86.OpRegMemMMX),
		termModRM(x86.MMaskmovdqu, x86.OpRegXMM, x86.OpRegMemXMM),
		nil, nil)
	Secondary[0xF8] = mmxXmmPair(x86.MPsubb)
	Secondary[0xF9] = mmxXmmPair(x86.MPsubw)
	Secondary[0xFA] = mmxXmmPair(x86.MPsubd)
	Secondary[0xFB] = mmxXmmPair(x86.MPsubq)
	Secondary[0xFC] = mmxXmmPair(x86.MPaddb)
	Secondary[0xFD] = mmxXmmPair(x86.MPaddw)
	Secondary[0xFE] = mmxXmmPair(x86.MPaddd)
}

// movdMovqPair builds the 0F 6E load entry for one vector register file:
// MOVD from r/m32, widened to MOVQ from r/m64 by REX.W.
func movdMovqPair(dst x86.OperandKind) *Entry {
	return &Entry{Kind: ExtByRexW, ByRexW: [2]*Entry{
		termModRM(x86.MMovd, dst, x86.OpRegMem32),
		termModRM(x86.MMovq, dst, x86.OpRegMem64),
	}}
}

// movdMovqStorePair is the 0F 7E store direction of the same pairing.
func movdMovqStorePair(src x86.OperandKind) *Entry {
	return &Entry{Kind: ExtByRexW, ByRexW: [2]*Entry{
		termModRM(x86.MMovd, x86.OpRegMem32, src),
		termModRM(x86.MMovq, x86.OpRegMem64, src),
	}}
}

// group15Mem is the memory half of group 15 (0F AE, mod != 3).
func group15Mem() *Entry {
	e := &Entry{Kind: ExtByReg}
	e.ByReg[0] = termModRM(x86.MFxsave, x86.OpMem)
	e.ByReg[1] = termModRM(x86.MFxrstor, x86.OpMem)
	e.ByReg[2] = termModRM(x86.MLdmxcsr, x86.OpMem32)
	e.ByReg[3] = termModRM(x86.MStmxcsr, x86.OpMem32)
	e.ByReg[4] = termModRM(x86.MXsave, x86.OpMem)
	e.ByReg[5] = termModRM(x86.MXrstor, x86.OpMem)
	e.ByReg[6] = termModRM(x86.MXsaveopt, x86.OpMem)
	e.ByReg[7] = termModRM(x86.MClflush, x86.OpMem8)
	return e
}
