package table

import "github.com/keurnel/x64dis/arch/x86"

// VexEntry is one opcode-byte slot of a VEX-encoded map: 32 alternatives
// (terminal, blank, or a ModR/M.reg group) indexed by a 5-bit key assembled from (mod != 3),
// the mandatory-prefix channel, W, and L. A nil Slots entry
// behaves as Blank — VEX opcode space is sparse, so maps are built with
// the chaining Set helper rather than an exhaustive literal.
type VexEntry struct {
	Slots [32]*Entry
}

// VexIndex computes the 5-bit slot key: (mod≠3)<<4 | prefix<<2 | W<<1 | L,
// with prefix encoded 00=none, 01=66, 10=F2, 11=F3.
func VexIndex(modIs3 bool, prefix MandatoryPrefix, w, l bool) int {
	key := 0
	if !modIs3 {
		key |= 1 << 4
	}
	key |= vexPrefixBits(prefix) << 2
	if w {
		key |= 1 << 1
	}
	if l {
		key |= 1
	}
	return key
}

// vexPrefixBits maps MandatoryPrefix (numbered None,66,F2,F3) onto the
// 00/01/10/11 = none/66/F2/F3 encoding the VEX slot key uses; the two
// orders coincide.
func vexPrefixBits(p MandatoryPrefix) int {
	switch p {
	case MP66:
		return 1
	case MPF2:
		return 2
	case MPF3:
		return 3
	default:
		return 0
	}
}

// vexSel is a tri-state selector used by VexEntry.Set: nil means "either
// value", a non-nil pointer pins the dimension to that value.
type vexSel struct {
	mod    *bool // true = mod==3 (register form)
	prefix *MandatoryPrefix
	w      *bool
	l      *bool
}

func vexB(v bool) *bool                       { return &v }
func vexP(p MandatoryPrefix) *MandatoryPrefix { return &p }

// Set populates every one of the 32 slots whose coordinates match sel,
// returning the receiver so declarations can chain.
func (v *VexEntry) Set(sel vexSel, e *Entry) *VexEntry {
	for modIs3 := 0; modIs3 < 2; modIs3++ {
		if sel.mod != nil && *sel.mod != (modIs3 == 1) {
			continue
		}
		for _, p := range []MandatoryPrefix{MPNone, MP66, MPF2, MPF3} {
			if sel.prefix != nil && *sel.prefix != p {
				continue
			}
			for w := 0; w < 2; w++ {
				if sel.w != nil && *sel.w != (w == 1) {
					continue
				}
				for l := 0; l < 2; l++ {
					if sel.l != nil && *sel.l != (l == 1) {
						continue
					}
					v.Slots[VexIndex(modIs3 == 1, p, w == 1, l == 1)] = e
				}
			}
		}
	}
	return v
}

// Lookup returns the entry at the given coordinates, or a Blank entry if
// the slot (or the VexEntry itself) is unpopulated.
func (v *VexEntry) Lookup(modIs3 bool, prefix MandatoryPrefix, w, l bool) *Entry {
	if v == nil {
		return blank()
	}
	e := v.Slots[VexIndex(modIs3, prefix, w, l)]
	if e == nil {
		return blank()
	}
	return e
}

// vterm is the VEX-map analogue of term/termModRM: most VEX forms carry a
// ModR/M byte (the rare exceptions, VZEROALL/VZEROUPPER, use vtermNoModRM).
func vterm(m x86.Mnemonic, ops ...x86.OperandKind) *Entry {
	return termModRM(m, ops...)
}

func vtermNoModRM(m x86.Mnemonic, ops ...x86.OperandKind) *Entry {
	return term(m, ops...)
}

func vtermImm8(m x86.Mnemonic, ops ...x86.OperandKind) *Entry {
	ops = append(ops, x86.OpImm8)
	return termModRMImm(m, 1, ops...)
}

// setPacked3 populates one mandatory-prefix channel of a VexEntry with the
// classic 3-operand packed shape at both vector lengths: dst, vvvv, src as
// XMMs when L=0 and as YMMs when L=1.
func setPacked3(v *VexEntry, p MandatoryPrefix, m x86.Mnemonic) *VexEntry {
	v.Set(vexSel{prefix: vexP(p), l: vexB(false)}, vterm(m, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	return v.Set(vexSel{prefix: vexP(p), l: vexB(true)}, vterm(m, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM))
}

// setPacked2 is setPacked3 without the vvvv middle operand (moves,
// converts, and everything else VEX encodes with vvvv == 1111).
func setPacked2(v *VexEntry, p MandatoryPrefix, m x86.Mnemonic) *VexEntry {
	v.Set(vexSel{prefix: vexP(p), l: vexB(false)}, vterm(m, x86.OpRegXMM, x86.OpRegMemXMM))
	return v.Set(vexSel{prefix: vexP(p), l: vexB(true)}, vterm(m, x86.OpRegYMM, x86.OpRegMemYMM))
}

// setPacked2Store is the store direction of setPacked2.
func setPacked2Store(v *VexEntry, p MandatoryPrefix, m x86.Mnemonic) *VexEntry {
	v.Set(vexSel{prefix: vexP(p), l: vexB(false)}, vterm(m, x86.OpRegMemXMM, x86.OpRegXMM))
	return v.Set(vexSel{prefix: vexP(p), l: vexB(true)}, vterm(m, x86.OpRegMemYMM, x86.OpRegYMM))
}

// setScalar3 populates a scalar (ss/sd) channel: always XMM, both L values
// (the hardware ignores L for scalars, and so does the table).
func setScalar3(v *VexEntry, p MandatoryPrefix, m x86.Mnemonic) *VexEntry {
	return v.Set(vexSel{prefix: vexP(p)}, vterm(m, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
}

// setPacked3Imm8 is setPacked3 with a trailing imm8.
func setPacked3Imm8(v *VexEntry, p MandatoryPrefix, m x86.Mnemonic) *VexEntry {
	v.Set(vexSel{prefix: vexP(p), l: vexB(false)}, vtermImm8(m, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	return v.Set(vexSel{prefix: vexP(p), l: vexB(true)}, vtermImm8(m, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM))
}

// setPacked2Imm8 is setPacked2 with a trailing imm8.
func setPacked2Imm8(v *VexEntry, p MandatoryPrefix, m x86.Mnemonic) *VexEntry {
	v.Set(vexSel{prefix: vexP(p), l: vexB(false)}, vtermImm8(m, x86.OpRegXMM, x86.OpRegMemXMM))
	return v.Set(vexSel{prefix: vexP(p), l: vexB(true)}, vtermImm8(m, x86.OpRegYMM, x86.OpRegMemYMM))
}

// vexShiftGroup builds the ModR/M.reg-extended immediate shift groups VEX
// re-encodes at map-1 opcodes 71/72/73: the destination is VEX.vvvv, the
// source register sits in ModR/M.rm, and an imm8 trails.
func vexShiftGroup(mnems [8]x86.Mnemonic, ymm bool) *Entry {
	dst, src := x86.OpVvvvXMM, x86.OpRegMemXMM
	if ymm {
		dst, src = x86.OpVvvvYMM, x86.OpRegMemYMM
	}
	e := &Entry{Kind: ExtByReg}
	for i, m := range mnems {
		if m == x86.MNone {
			e.ByReg[i] = blank()
			continue
		}
		e.ByReg[i] = vtermImm8(m, dst, src)
	}
	return e
}

// VexMap1, VexMap2, VexMap3 are the VEX-encoded analogues of the 0F,
// 0F-38, and 0F-3A secondary maps (selected by VEX.mmmmm == 1/2/3).
var (
	VexMap1 [256]*VexEntry
	VexMap2 [256]*VexEntry
	VexMap3 [256]*VexEntry
)

func init() {
	// --- VexMap1 (implied 0F map): data movement and FP arithmetic. ---

	// VMOVSS/VMOVSD have a 2-operand memory form and a 3-operand (vvvv
	// merge) register form, split on ModR/M.mod; the packed U-moves are
	// plain 2-operand at either length.
	VexMap1[0x10] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPF3), mod: vexB(false)}, vterm(x86.MVmovss, x86.OpRegXMM, x86.OpMem32)).
		Set(vexSel{prefix: vexP(MPF3), mod: vexB(true)}, vterm(x86.MVmovss, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MPF2), mod: vexB(false)}, vterm(x86.MVmovsd, x86.OpRegXMM, x86.OpMem64)).
		Set(vexSel{prefix: vexP(MPF2), mod: vexB(true)}, vterm(x86.MVmovsd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	setPacked2(VexMap1[0x10], MPNone, x86.MVmovups)
	setPacked2(VexMap1[0x10], MP66, x86.MVmovupd)

	VexMap1[0x11] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPF3), mod: vexB(false)}, vterm(x86.MVmovss, x86.OpMem32, x86.OpRegXMM)).
		Set(vexSel{prefix: vexP(MPF3), mod: vexB(true)}, vterm(x86.MVmovss, x86.OpRegMemXMM, x86.OpVvvvXMM, x86.OpRegXMM)).
		Set(vexSel{prefix: vexP(MPF2), mod: vexB(false)}, vterm(x86.MVmovsd, x86.OpMem64, x86.OpRegXMM)).
		Set(vexSel{prefix: vexP(MPF2), mod: vexB(true)}, vterm(x86.MVmovsd, x86.OpRegMemXMM, x86.OpVvvvXMM, x86.OpRegXMM))
	setPacked2Store(VexMap1[0x11], MPNone, x86.MVmovups)
	setPacked2Store(VexMap1[0x11], MP66, x86.MVmovupd)

	VexMap1[0x14] = new(VexEntry)
	setPacked3(VexMap1[0x14], MPNone, x86.MVunpcklps)
	setPacked3(VexMap1[0x14], MP66, x86.MVunpcklpd)
	VexMap1[0x15] = new(VexEntry)
	setPacked3(VexMap1[0x15], MPNone, x86.MVunpckhps)
	setPacked3(VexMap1[0x15], MP66, x86.MVunpckhpd)

	VexMap1[0x28] = new(VexEntry)
	setPacked2(VexMap1[0x28], MPNone, x86.MVmovaps)
	setPacked2(VexMap1[0x28], MP66, x86.MVmovapd)
	VexMap1[0x29] = new(VexEntry)
	setPacked2Store(VexMap1[0x29], MPNone, x86.MVmovaps)
	setPacked2Store(VexMap1[0x29], MP66, x86.MVmovapd)

	VexMap1[0x2B] = new(VexEntry)
	setPacked2Store(VexMap1[0x2B], MPNone, x86.MVmovntps)
	setPacked2Store(VexMap1[0x2B], MP66, x86.MVmovntpd)

	VexMap1[0x2E] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPNone)}, vterm(x86.MVucomiss, x86.OpRegXMM, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MP66)}, vterm(x86.MVucomisd, x86.OpRegXMM, x86.OpRegMemXMM))
	VexMap1[0x2F] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPNone)}, vterm(x86.MVcomiss, x86.OpRegXMM, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MP66)}, vterm(x86.MVcomisd, x86.OpRegXMM, x86.OpRegMemXMM))

	VexMap1[0x50] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPNone), l: vexB(false)}, vterm(x86.MVmovmskps, x86.OpReg32, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MPNone), l: vexB(true)}, vterm(x86.MVmovmskps, x86.OpReg32, x86.OpRegMemYMM)).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vterm(x86.MVmovmskpd, x86.OpReg32, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MP66), l: vexB(true)}, vterm(x86.MVmovmskpd, x86.OpReg32, x86.OpRegMemYMM))

	VexMap1[0x51] = new(VexEntry)
	setPacked2(VexMap1[0x51], MPNone, x86.MVsqrtps)
	setPacked2(VexMap1[0x51], MP66, x86.MVsqrtpd)
	setScalar3(VexMap1[0x51], MPF3, x86.MVsqrtss)
	setScalar3(VexMap1[0x51], MPF2, x86.MVsqrtsd)

	VexMap1[0x54] = new(VexEntry)
	setPacked3(VexMap1[0x54], MPNone, x86.MVandps)
	setPacked3(VexMap1[0x54], MP66, x86.MVandpd)
	VexMap1[0x55] = new(VexEntry)
	setPacked3(VexMap1[0x55], MPNone, x86.MVandnps)
	setPacked3(VexMap1[0x55], MP66, x86.MVandnpd)
	VexMap1[0x56] = new(VexEntry)
	setPacked3(VexMap1[0x56], MPNone, x86.MVorps)
	setPacked3(VexMap1[0x56], MP66, x86.MVorpd)
	VexMap1[0x57] = new(VexEntry)
	setPacked3(VexMap1[0x57], MPNone, x86.MVxorps)
	setPacked3(VexMap1[0x57], MP66, x86.MVxorpd)

	VexMap1[0x58] = new(VexEntry)
	setPacked3(VexMap1[0x58], MPNone, x86.MVaddps)
	setPacked3(VexMap1[0x58], MP66, x86.MVaddpd)
	setScalar3(VexMap1[0x58], MPF3, x86.MVaddss)
	setScalar3(VexMap1[0x58], MPF2, x86.MVaddsd)
	VexMap1[0x59] = new(VexEntry)
	setPacked3(VexMap1[0x59], MPNone, x86.MVmulps)
	setPacked3(VexMap1[0x59], MP66, x86.MVmulpd)
	setScalar3(VexMap1[0x59], MPF3, x86.MVmulss)
	setScalar3(VexMap1[0x59], MPF2, x86.MVmulsd)
	VexMap1[0x5C] = new(VexEntry)
	setPacked3(VexMap1[0x5C], MPNone, x86.MVsubps)
	setPacked3(VexMap1[0x5C], MP66, x86.MVsubpd)
	setScalar3(VexMap1[0x5C], MPF3, x86.MVsubss)
	setScalar3(VexMap1[0x5C], MPF2, x86.MVsubsd)
	VexMap1[0x5D] = new(VexEntry)
	setPacked3(VexMap1[0x5D], MPNone, x86.MVminps)
	setPacked3(VexMap1[0x5D], MP66, x86.MVminpd)
	setScalar3(VexMap1[0x5D], MPF3, x86.MVminss)
	setScalar3(VexMap1[0x5D], MPF2, x86.MVminsd)
	VexMap1[0x5E] = new(VexEntry)
	setPacked3(VexMap1[0x5E], MPNone, x86.MVdivps)
	setPacked3(VexMap1[0x5E], MP66, x86.MVdivpd)
	setScalar3(VexMap1[0x5E], MPF3, x86.MVdivss)
	setScalar3(VexMap1[0x5E], MPF2, x86.MVdivsd)
	VexMap1[0x5F] = new(VexEntry)
	setPacked3(VexMap1[0x5F], MPNone, x86.MVmaxps)
	setPacked3(VexMap1[0x5F], MP66, x86.MVmaxpd)
	setScalar3(VexMap1[0x5F], MPF3, x86.MVmaxss)
	setScalar3(VexMap1[0x5F], MPF2, x86.MVmaxsd)

	// AVX/AVX2 integer rows (66-mandatory 3-operand forms).
	for _, op := range []struct {
		b byte
		m x86.Mnemonic
	}{
		{0x60, x86.MVpunpcklbw}, {0x61, x86.MVpunpcklwd}, {0x62, x86.MVpunpckldq},
		{0x63, x86.MVpacksswb}, {0x64, x86.MVpcmpgtb}, {0x65, x86.MVpcmpgtw},
		{0x66, x86.MVpcmpgtd}, {0x67, x86.MVpackuswb}, {0x68, x86.MVpunpckhbw},
		{0x69, x86.MVpunpckhwd}, {0x6A, x86.MVpunpckhdq}, {0x6B, x86.MVpackssdw},
		{0x6C, x86.MVpunpcklqdq}, {0x6D, x86.MVpunpckhqdq},
		{0x74, x86.MVpcmpeqb}, {0x75, x86.MVpcmpeqw}, {0x76, x86.MVpcmpeqd},
		{0xD1, x86.MVpsrlw}, {0xD2, x86.MVpsrld}, {0xD3, x86.MVpsrlq},
		{0xD4, x86.MVpaddq}, {0xD5, x86.MVpmullw},
		{0xD8, x86.MVpsubusb}, {0xD9, x86.MVpsubusw}, {0xDA, x86.MVpminub},
		{0xDB, x86.MVpand}, {0xDC, x86.MVpaddusb}, {0xDD, x86.MVpaddusw},
		{0xDE, x86.MVpmaxub}, {0xDF, x86.MVpandn},
		{0xE0, x86.MVpavgb}, {0xE1, x86.MVpsraw}, {0xE2, x86.MVpsrad},
		{0xE3, x86.MVpavgw}, {0xE4, x86.MVpmulhuw}, {0xE5, x86.MVpmulhw},
		{0xE8, x86.MVpsubsb}, {0xE9, x86.MVpsubsw}, {0xEA, x86.MVpminsw},
		{0xEB, x86.MVpor}, {0xEC, x86.MVpaddsb}, {0xED, x86.MVpaddsw},
		{0xEE, x86.MVpmaxsw}, {0xEF, x86.MVpxor},
		{0xF1, x86.MVpsllw}, {0xF2, x86.MVpslld}, {0xF3, x86.MVpsllq},
		{0xF4, x86.MVpmuludq}, {0xF5, x86.MVpmaddwd}, {0xF6, x86.MVpsadbw},
		{0xF8, x86.MVpsubb}, {0xF9, x86.MVpsubw}, {0xFA, x86.MVpsubd},
		{0xFB, x86.MVpsubq}, {0xFC, x86.MVpaddb}, {0xFD, x86.MVpaddw},
		{0xFE, x86.MVpaddd},
	} {
		VexMap1[op.b] = setPacked3(new(VexEntry), MP66, op.m)
	}

	// VMOVD/VMOVQ between a GPR and an XMM (W selects the width).
	VexMap1[0x6E] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false)}, vterm(x86.MVmovd, x86.OpRegXMM, x86.OpRegMem32)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true)}, vterm(x86.MVmovq, x86.OpRegXMM, x86.OpRegMem64))
	VexMap1[0x7E] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false)}, vterm(x86.MVmovd, x86.OpRegMem32, x86.OpRegXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true)}, vterm(x86.MVmovq, x86.OpRegMem64, x86.OpRegXMM)).
		Set(vexSel{prefix: vexP(MPF3)}, vterm(x86.MVmovq, x86.OpRegXMM, x86.OpRegMemXMM))

	VexMap1[0x6F] = new(VexEntry)
	setPacked2(VexMap1[0x6F], MP66, x86.MVmovdqa)
	setPacked2(VexMap1[0x6F], MPF3, x86.MVmovdqu)
	VexMap1[0x7F] = new(VexEntry)
	setPacked2Store(VexMap1[0x7F], MP66, x86.MVmovdqa)
	setPacked2Store(VexMap1[0x7F], MPF3, x86.MVmovdqu)

	VexMap1[0x70] = new(VexEntry)
	setPacked2Imm8(VexMap1[0x70], MP66, x86.MVpshufd)
	setPacked2Imm8(VexMap1[0x70], MPF3, x86.MVpshufhw)
	setPacked2Imm8(VexMap1[0x70], MPF2, x86.MVpshuflw)

	// VEX re-encodings of the immediate shift groups: VEX slots that carry
	// a ModR/M-sub-extension instead of a terminal (group 17 in map 2 is
	// the other such slot).
	shift71 := [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MVpsrlw, x86.MNone, x86.MVpsraw, x86.MNone, x86.MVpsllw, x86.MNone}
	shift72 := [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MVpsrld, x86.MNone, x86.MVpsrad, x86.MNone, x86.MVpslld, x86.MNone}
	shift73 := [8]x86.Mnemonic{x86.MNone, x86.MNone, x86.MVpsrlq, x86.MVpsrldq, x86.MNone, x86.MNone, x86.MVpsllq, x86.MVpslldq}
	VexMap1[0x71] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vexShiftGroup(shift71, false)).
		Set(vexSel{prefix: vexP(MP66), l: vexB(true)}, vexShiftGroup(shift71, true))
	VexMap1[0x72] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vexShiftGroup(shift72, false)).
		Set(vexSel{prefix: vexP(MP66), l: vexB(true)}, vexShiftGroup(shift72, true))
	VexMap1[0x73] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vexShiftGroup(shift73, false)).
		Set(vexSel{prefix: vexP(MP66), l: vexB(true)}, vexShiftGroup(shift73, true))

	// VZEROUPPER/VZEROALL share opcode 0x77, differentiated by VEX.L with
	// no ModR/M byte at all.
	VexMap1[0x77] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPNone), l: vexB(false)}, vtermNoModRM(x86.MVzeroupper)).
		Set(vexSel{prefix: vexP(MPNone), l: vexB(true)}, vtermNoModRM(x86.MVzeroall))

	VexMap1[0xC2] = new(VexEntry)
	setPacked3Imm8(VexMap1[0xC2], MPNone, x86.MVcmpps)
	setPacked3Imm8(VexMap1[0xC2], MP66, x86.MVcmppd)
	VexMap1[0xC2].
		Set(vexSel{prefix: vexP(MPF3)}, vtermImm8(x86.MVcmpss, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MPF2)}, vtermImm8(x86.MVcmpsd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	VexMap1[0xC6] = new(VexEntry)
	setPacked3Imm8(VexMap1[0xC6], MPNone, x86.MVshufps)
	setPacked3Imm8(VexMap1[0xC6], MP66, x86.MVshufpd)

	VexMap1[0xD6] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vterm(x86.MVmovq, x86.OpRegMemXMM, x86.OpRegXMM))
	VexMap1[0xD7] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vterm(x86.MVpmovmskb, x86.OpReg32, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MP66), l: vexB(true)}, vterm(x86.MVpmovmskb, x86.OpReg32, x86.OpRegMemYMM))
	VexMap1[0xE7] = new(VexEntry)
	setPacked2Store(VexMap1[0xE7], MP66, x86.MVmovntdq)
	VexMap1[0xF0] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPF2), l: vexB(false)}, vterm(x86.MVlddqu, x86.OpRegXMM, x86.OpMemXMM)).
		Set(vexSel{prefix: vexP(MPF2), l: vexB(true)}, vterm(x86.MVlddqu, x86.OpRegYMM, x86.OpMemYMM))

	// --- VexMap2 (implied 0F-38 map): broadcasts, permutes, AES-NI,
	// gathers, FMA3, BMI1/2. ---

	for _, op := range []struct {
		b byte
		m x86.Mnemonic
	}{
		{0x00, x86.MVpshufb}, {0x01, x86.MVphaddw}, {0x02, x86.MVphaddd},
		{0x03, x86.MVphaddsw}, {0x04, x86.MVpmaddubsw}, {0x05, x86.MVphsubw},
		{0x06, x86.MVphsubd}, {0x07, x86.MVphsubsw},
		{0x08, x86.MVpsignb}, {0x09, x86.MVpsignw}, {0x0A, x86.MVpsignd},
		{0x0B, x86.MVpmulhrsw},
		{0x28, x86.MVpmuldq}, {0x29, x86.MVpcmpeqq}, {0x2B, x86.MVpackusdw},
		{0x37, x86.MVpcmpgtq}, {0x38, x86.MVpminsb}, {0x39, x86.MVpminsd},
		{0x3A, x86.MVpminuw}, {0x3B, x86.MVpminud}, {0x3C, x86.MVpmaxsb},
		{0x3D, x86.MVpmaxsd}, {0x3E, x86.MVpmaxuw}, {0x3F, x86.MVpmaxud},
		{0x40, x86.MVpmulld},
	} {
		VexMap2[op.b] = setPacked3(new(VexEntry), MP66, op.m)
	}

	for _, op := range []struct {
		b byte
		m x86.Mnemonic
	}{
		{0x1C, x86.MVpabsb}, {0x1D, x86.MVpabsw}, {0x1E, x86.MVpabsd},
		{0x20, x86.MVpmovsxbw}, {0x21, x86.MVpmovsxbd}, {0x22, x86.MVpmovsxbq},
		{0x23, x86.MVpmovsxwd}, {0x24, x86.MVpmovsxwq}, {0x25, x86.MVpmovsxdq},
		{0x30, x86.MVpmovzxbw}, {0x31, x86.MVpmovzxbd}, {0x32, x86.MVpmovzxbq},
		{0x33, x86.MVpmovzxwd}, {0x34, x86.MVpmovzxwq}, {0x35, x86.MVpmovzxdq},
	} {
		VexMap2[op.b] = setPacked2(new(VexEntry), MP66, op.m)
	}

	VexMap2[0x0C] = setPacked3(new(VexEntry), MP66, x86.MVpermilps)
	VexMap2[0x0D] = setPacked3(new(VexEntry), MP66, x86.MVpermilpd)
	VexMap2[0x0E] = setPacked2(new(VexEntry), MP66, x86.MVtestps)
	VexMap2[0x0F] = setPacked2(new(VexEntry), MP66, x86.MVtestpd)
	VexMap2[0x17] = setPacked2(new(VexEntry), MP66, x86.MVptest)

	VexMap2[0x18] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVbroadcastss, x86.OpRegXMM, x86.OpMem32)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVbroadcastss, x86.OpRegYMM, x86.OpMem32))
	VexMap2[0x19] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVbroadcastsd, x86.OpRegYMM, x86.OpMem64))
	VexMap2[0x1A] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true), mod: vexB(false)}, vterm(x86.MVbroadcastf128, x86.OpRegYMM, x86.OpMemXMM))

	VexMap2[0x2A] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false), mod: vexB(false)}, vterm(x86.MVmovntdqa, x86.OpRegXMM, x86.OpMemXMM)).
		Set(vexSel{prefix: vexP(MP66), l: vexB(true), mod: vexB(false)}, vterm(x86.MVmovntdqa, x86.OpRegYMM, x86.OpMemYMM))

	// Variable shifts (AVX2).
	VexMap2[0x45] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVpsrlvd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVpsrlvd, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(false)}, vterm(x86.MVpsrlvq, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(true)}, vterm(x86.MVpsrlvq, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM))
	VexMap2[0x47] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVpsllvd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVpsllvd, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(false)}, vterm(x86.MVpsllvq, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(true)}, vterm(x86.MVpsllvq, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM))

	// Gathers (AVX2), VSIB-addressed; memory-only by construction.
	VexMap2[0x90] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false), mod: vexB(false)}, vterm(x86.MVpgatherdd, x86.OpRegXMM, x86.OpMemVSIBXMM, x86.OpVvvvXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true), mod: vexB(false)}, vterm(x86.MVpgatherdd, x86.OpRegYMM, x86.OpMemVSIBYMM32, x86.OpVvvvYMM))
	VexMap2[0x91] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false), mod: vexB(false)}, vterm(x86.MVpgatherqd, x86.OpRegXMM, x86.OpMemVSIBXMM, x86.OpVvvvXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true), mod: vexB(false)}, vterm(x86.MVpgatherqd, x86.OpRegXMM, x86.OpMemVSIBYMM, x86.OpVvvvXMM))
	VexMap2[0x92] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false), mod: vexB(false)}, vterm(x86.MVgatherdps, x86.OpRegXMM, x86.OpMemVSIBXMM, x86.OpVvvvXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true), mod: vexB(false)}, vterm(x86.MVgatherdps, x86.OpRegYMM, x86.OpMemVSIBYMM32, x86.OpVvvvYMM))
	VexMap2[0x93] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false), mod: vexB(false)}, vterm(x86.MVgatherqps, x86.OpRegXMM, x86.OpMemVSIBXMM, x86.OpVvvvXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true), mod: vexB(false)}, vterm(x86.MVgatherqps, x86.OpRegXMM, x86.OpMemVSIBYMM, x86.OpVvvvXMM))

	// FMA3: the 132/213/231 packed rows (ps via W=0, pd via W=1) and their
	// scalar neighbours.
	fmaPacked := func(b byte, ps, pd x86.Mnemonic) {
		e := new(VexEntry).
			Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(ps, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
			Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(ps, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM)).
			Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(false)}, vterm(pd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
			Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(true)}, vterm(pd, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM))
		VexMap2[b] = e
	}
	fmaScalar := func(b byte, ss, sd x86.Mnemonic) {
		VexMap2[b] = new(VexEntry).
			Set(vexSel{prefix: vexP(MP66), w: vexB(false)}, vterm(ss, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM)).
			Set(vexSel{prefix: vexP(MP66), w: vexB(true)}, vterm(sd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	}
	fmaPacked(0x98, x86.MVfmadd132ps, x86.MVfmadd132pd)
	fmaScalar(0x99, x86.MVfmadd132ss, x86.MVfmadd132sd)
	fmaPacked(0x9A, x86.MVfmsub132ps, x86.MVfmsub132pd)
	fmaPacked(0xA8, x86.MVfmadd213ps, x86.MVfmadd213pd)
	fmaScalar(0xA9, x86.MVfmadd213ss, x86.MVfmadd213sd)
	fmaPacked(0xAA, x86.MVfmsub213ps, x86.MVfmsub213pd)
	fmaPacked(0xB8, x86.MVfmadd231ps, x86.MVfmadd231pd)
	fmaScalar(0xB9, x86.MVfmadd231ss, x86.MVfmadd231sd)
	fmaPacked(0xBA, x86.MVfmsub231ps, x86.MVfmsub231pd)

	// AES-NI (VEX re-encodings, 128-bit only).
	VexMap2[0xDB] = new(VexEntry).Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vterm(x86.MVaesimc, x86.OpRegXMM, x86.OpRegMemXMM))
	VexMap2[0xDC] = new(VexEntry).Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vterm(x86.MVaesenc, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	VexMap2[0xDD] = new(VexEntry).Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vterm(x86.MVaesenclast, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	VexMap2[0xDE] = new(VexEntry).Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vterm(x86.MVaesdec, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	VexMap2[0xDF] = new(VexEntry).Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vterm(x86.MVaesdeclast, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))

	// BMI1/BMI2 (GPR forms; W selects the 64-bit variants).
	bmi3 := func(p MandatoryPrefix, m x86.Mnemonic, dst, vvvv, src32, dst64, vvvv64, src64 x86.OperandKind) *VexEntry {
		return new(VexEntry).
			Set(vexSel{prefix: vexP(p), w: vexB(false)}, vterm(m, dst, vvvv, src32)).
			Set(vexSel{prefix: vexP(p), w: vexB(true)}, vterm(m, dst64, vvvv64, src64))
	}
	VexMap2[0xF2] = bmi3(MPNone, x86.MAndn,
		x86.OpReg32, x86.OpVvvvReg32, x86.OpRegMem32,
		x86.OpReg64, x86.OpVvvvReg64, x86.OpRegMem64)

	// Group 17: BLSR/BLSMSK/BLSI — vvvv is the destination, rm the source.
	g17 := func(w bool) *Entry {
		rm, vv := x86.OpRegMem32, x86.OpVvvvReg32
		if w {
			rm, vv = x86.OpRegMem64, x86.OpVvvvReg64
		}
		e := &Entry{Kind: ExtByReg}
		for i, m := range [8]x86.Mnemonic{x86.MNone, x86.MBlsr, x86.MBlsmsk, x86.MBlsi, x86.MNone, x86.MNone, x86.MNone, x86.MNone} {
			if m == x86.MNone {
				e.ByReg[i] = blank()
				continue
			}
			e.ByReg[i] = vterm(m, vv, rm)
		}
		return e
	}
	VexMap2[0xF3] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPNone), w: vexB(false)}, g17(false)).
		Set(vexSel{prefix: vexP(MPNone), w: vexB(true)}, g17(true))

	VexMap2[0xF5] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPNone), w: vexB(false)}, vterm(x86.MBzhi, x86.OpReg32, x86.OpRegMem32, x86.OpVvvvReg32)).
		Set(vexSel{prefix: vexP(MPNone), w: vexB(true)}, vterm(x86.MBzhi, x86.OpReg64, x86.OpRegMem64, x86.OpVvvvReg64)).
		Set(vexSel{prefix: vexP(MPF3), w: vexB(false)}, vterm(x86.MPext, x86.OpReg32, x86.OpVvvvReg32, x86.OpRegMem32)).
		Set(vexSel{prefix: vexP(MPF3), w: vexB(true)}, vterm(x86.MPext, x86.OpReg64, x86.OpVvvvReg64, x86.OpRegMem64)).
		Set(vexSel{prefix: vexP(MPF2), w: vexB(false)}, vterm(x86.MPdep, x86.OpReg32, x86.OpVvvvReg32, x86.OpRegMem32)).
		Set(vexSel{prefix: vexP(MPF2), w: vexB(true)}, vterm(x86.MPdep, x86.OpReg64, x86.OpVvvvReg64, x86.OpRegMem64))
	VexMap2[0xF6] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPF2), w: vexB(false)}, vterm(x86.MMulx, x86.OpReg32, x86.OpVvvvReg32, x86.OpRegMem32)).
		Set(vexSel{prefix: vexP(MPF2), w: vexB(true)}, vterm(x86.MMulx, x86.OpReg64, x86.OpVvvvReg64, x86.OpRegMem64))
	VexMap2[0xF7] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPNone), w: vexB(false)}, vterm(x86.MBextr, x86.OpReg32, x86.OpRegMem32, x86.OpVvvvReg32)).
		Set(vexSel{prefix: vexP(MPNone), w: vexB(true)}, vterm(x86.MBextr, x86.OpReg64, x86.OpRegMem64, x86.OpVvvvReg64)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false)}, vterm(x86.MShlx, x86.OpReg32, x86.OpRegMem32, x86.OpVvvvReg32)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true)}, vterm(x86.MShlx, x86.OpReg64, x86.OpRegMem64, x86.OpVvvvReg64)).
		Set(vexSel{prefix: vexP(MPF3), w: vexB(false)}, vterm(x86.MSarx, x86.OpReg32, x86.OpRegMem32, x86.OpVvvvReg32)).
		Set(vexSel{prefix: vexP(MPF3), w: vexB(true)}, vterm(x86.MSarx, x86.OpReg64, x86.OpRegMem64, x86.OpVvvvReg64)).
		Set(vexSel{prefix: vexP(MPF2), w: vexB(false)}, vterm(x86.MShrx, x86.OpReg32, x86.OpRegMem32, x86.OpVvvvReg32)).
		Set(vexSel{prefix: vexP(MPF2), w: vexB(true)}, vterm(x86.MShrx, x86.OpReg64, x86.OpRegMem64, x86.OpVvvvReg64))

	// --- VexMap3 (implied 0F-3A map): immediates everywhere. ---

	VexMap3[0x00] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(true)}, vtermImm8(x86.MVpermq, x86.OpRegYMM, x86.OpRegMemYMM))
	VexMap3[0x01] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(true)}, vtermImm8(x86.MVpermpd, x86.OpRegYMM, x86.OpRegMemYMM))
	VexMap3[0x02] = setPacked3Imm8(new(VexEntry), MP66, x86.MVpblendd)
	VexMap3[0x04] = setPacked2Imm8(new(VexEntry), MP66, x86.MVpermilps)
	VexMap3[0x05] = setPacked2Imm8(new(VexEntry), MP66, x86.MVpermilpd)
	VexMap3[0x06] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(true)}, vtermImm8(x86.MVperm2f128, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM))

	VexMap3[0x08] = setPacked2Imm8(new(VexEntry), MP66, x86.MVroundps)
	VexMap3[0x09] = setPacked2Imm8(new(VexEntry), MP66, x86.MVroundpd)
	VexMap3[0x0A] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66)}, vtermImm8(x86.MVroundss, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	VexMap3[0x0B] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66)}, vtermImm8(x86.MVroundsd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	VexMap3[0x0C] = setPacked3Imm8(new(VexEntry), MP66, x86.MVblendps)
	VexMap3[0x0D] = setPacked3Imm8(new(VexEntry), MP66, x86.MVblendpd)
	VexMap3[0x0E] = setPacked3Imm8(new(VexEntry), MP66, x86.MVpblendw)
	VexMap3[0x0F] = setPacked3Imm8(new(VexEntry), MP66, x86.MVpalignr)

	VexMap3[0x14] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vtermImm8(x86.MVpextrb, x86.OpRegMem8, x86.OpRegXMM))
	VexMap3[0x15] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vtermImm8(x86.MVpextrw, x86.OpRegMem16, x86.OpRegXMM))
	VexMap3[0x16] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vtermImm8(x86.MVpextrd, x86.OpRegMem32, x86.OpRegXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(false)}, vtermImm8(x86.MVpextrq, x86.OpRegMem64, x86.OpRegXMM))
	VexMap3[0x17] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MVextractps, x86.OpRegMem32, x86.OpRegXMM))

	VexMap3[0x18] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vtermImm8(x86.MVinsertf128, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemXMM))
	VexMap3[0x19] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vtermImm8(x86.MVextractf128, x86.OpRegMemXMM, x86.OpRegYMM))

	VexMap3[0x20] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MVpinsrb, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMem8))
	VexMap3[0x21] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MVinsertps, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMem32))
	VexMap3[0x22] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vtermImm8(x86.MVpinsrd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMem32)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(true), l: vexB(false)}, vtermImm8(x86.MVpinsrq, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMem64))

	VexMap3[0x38] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vtermImm8(x86.MVinserti128, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemXMM))
	VexMap3[0x39] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vtermImm8(x86.MVextracti128, x86.OpRegMemXMM, x86.OpRegYMM))

	VexMap3[0x40] = setPacked3Imm8(new(VexEntry), MP66, x86.MVdpps)
	VexMap3[0x41] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MVdppd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	VexMap3[0x42] = setPacked3Imm8(new(VexEntry), MP66, x86.MVmpsadbw)
	VexMap3[0x44] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MPclmulqdq, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM))
	VexMap3[0x46] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(true)}, vtermImm8(x86.MVperm2i128, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM))

	// The is4 blends: the fourth register operand arrives in the high
	// nibble of a trailing imm8.
	VexMap3[0x4A] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVblendvps, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM, x86.OpImm8HighNibXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVblendvps, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM, x86.OpImm8HighNibYMM))
	VexMap3[0x4B] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVblendvpd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM, x86.OpImm8HighNibXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVblendvpd, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM, x86.OpImm8HighNibYMM))
	VexMap3[0x4C] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVpblendvb, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM, x86.OpImm8HighNibXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVpblendvb, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM, x86.OpImm8HighNibYMM))

	// FMA4 (the four-operand AMD forms; the last source is an is4
	// register). Only the W=0 operand order is tabulated; the W=1 encodings
	// decode as invalid.
	VexMap3[0x68] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVfmaddps, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM, x86.OpImm8HighNibXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVfmaddps, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM, x86.OpImm8HighNibYMM))
	VexMap3[0x69] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVfmaddpd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM, x86.OpImm8HighNibXMM)).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(true)}, vterm(x86.MVfmaddpd, x86.OpRegYMM, x86.OpVvvvYMM, x86.OpRegMemYMM, x86.OpImm8HighNibYMM))
	VexMap3[0x6A] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVfmaddss, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM, x86.OpImm8HighNibXMM))
	VexMap3[0x6B] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), w: vexB(false), l: vexB(false)}, vterm(x86.MVfmaddsd, x86.OpRegXMM, x86.OpVvvvXMM, x86.OpRegMemXMM, x86.OpImm8HighNibXMM))

	// SSE4.2 string compares, VEX-encoded (128-bit only).
	VexMap3[0x60] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MVpcmpestrm, x86.OpRegXMM, x86.OpRegMemXMM))
	VexMap3[0x61] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MVpcmpestri, x86.OpRegXMM, x86.OpRegMemXMM))
	VexMap3[0x62] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MVpcmpistrm, x86.OpRegXMM, x86.OpRegMemXMM))
	VexMap3[0x63] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MVpcmpistri, x86.OpRegXMM, x86.OpRegMemXMM))

	VexMap3[0xDF] = new(VexEntry).
		Set(vexSel{prefix: vexP(MP66), l: vexB(false)}, vtermImm8(x86.MAeskeygenassist, x86.OpRegXMM, x86.OpRegMemXMM))

	// RORX is the one immediate-operand BMI2 form, F2-mandatory.
	VexMap3[0xF0] = new(VexEntry).
		Set(vexSel{prefix: vexP(MPF2), w: vexB(false)}, vtermImm8(x86.MRorx, x86.OpReg32, x86.OpRegMem32)).
		Set(vexSel{prefix: vexP(MPF2), w: vexB(true)}, vtermImm8(x86.MRorx, x86.OpReg64, x86.OpRegMem64))
}
