package table

import "github.com/keurnel/x64dis/arch/x86"

// Ext3A is the 256-entry table for the 0x0F 0x3A tertiary escape (non-VEX
// forms only — VEX.mmmmm==3 instructions live in VexMap3). Every opcode in
// this map carries a trailing imm8 on top of ModR/M.
var Ext3A [256]*Entry

// xmm66Imm8 is the standard 0F-3A shape: 66-mandatory, XMM reg/mem, imm8.
func xmm66Imm8(m x86.Mnemonic) *Entry {
	return byMandatory(nil, termModRMImm(m, 1, x86.OpRegXMM, x86.OpRegMemXMM, x86.OpImm8), nil, nil)
}

func init() {
	for i := range Ext3A {
		Ext3A[i] = blank()
	}

	Ext3A[0x08] = xmm66Imm8(x86.MRoundps)
	Ext3A[0x09] = xmm66Imm8(x86.MRoundpd)
	Ext3A[0x0A] = xmm66Imm8(x86.MRoundss)
	Ext3A[0x0B] = xmm66Imm8(x86.MRoundsd)
	Ext3A[0x0C] = xmm66Imm8(x86.MBlendps)
	Ext3A[0x0D] = xmm66Imm8(x86.MBlendpd)
	Ext3A[0x0E] = xmm66Imm8(x86.MPblendw)

	// PALIGNR keeps its SSSE3 MMX form alongside the 66 XMM form.
	Ext3A[0x0F] = mmxXmmPairImm8(x86.MPalignr)

	// Extracts write through ModR/M.rm (register or memory), the vector
	// source sits in ModR/M.reg.
	Ext3A[0x14] = byMandatory(nil, termModRMImm(x86.MPextrb, 1, x86.OpRegMem8, x86.OpRegXMM, x86.OpImm8), nil, nil)
	Ext3A[0x15] = byMandatory(nil, termModRMImm(x86.MPextrw, 1, x86.OpRegMem16, x86.OpRegXMM, x86.OpImm8), nil, nil)
	Ext3A[0x16] = byMandatory(nil, &Entry{Kind: ExtByRexW, ByRexW: [2]*Entry{
		termModRMImm(x86.MPextrd, 1, x86.OpRegMem32, x86.OpRegXMM, x86.OpImm8),
		termModRMImm(x86.MPextrq, 1, x86.OpRegMem64, x86.OpRegXMM, x86.OpImm8),
	}}, nil, nil)
	Ext3A[0x17] = byMandatory(nil, termModRMImm(x86.MExtractps, 1, x86.OpRegMem32, x86.OpRegXMM, x86.OpImm8), nil, nil)

	Ext3A[0x20] = byMandatory(nil, termModRMImm(x86.MPinsrb, 1, x86.OpRegXMM, x86.OpRegMem8, x86.OpImm8), nil, nil)
	Ext3A[0x21] = byMandatory(nil, termModRMImm(x86.MInsertps, 1, x86.OpRegXMM, x86.OpRegMem32, x86.OpImm8), nil, nil)
	Ext3A[0x22] = byMandatory(nil, &Entry{Kind: ExtByRexW, ByRexW: [2]*Entry{
		termModRMImm(x86.MPinsrd, 1, x86.OpRegXMM, x86.OpRegMem32, x86.OpImm8),
		termModRMImm(x86.MPinsrq, 1, x86.OpRegXMM, x86.OpRegMem64, x86.OpImm8),
	}}, nil, nil)

	Ext3A[0x40] = xmm66Imm8(x86.MDpps)
	Ext3A[0x41] = xmm66Imm8(x86.MDppd)
	Ext3A[0x42] = xmm66Imm8(x86.MMpsadbw)
	Ext3A[0x44] = xmm66Imm8(x86.MPclmulqdq)

	// SSE4.2 string compares.
	Ext3A[0x60] = xmm66Imm8(x86.MPcmpestrm)
	Ext3A[0x61] = xmm66Imm8(x86.MPcmpestri)
	Ext3A[0x62] = xmm66Imm8(x86.MPcmpistrm)
	Ext3A[0x63] = xmm66Imm8(x86.MPcmpistri)

	Ext3A[0xDF] = xmm66Imm8(x86.MAeskeygenassist)
}
