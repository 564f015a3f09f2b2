package table

import "github.com/keurnel/x64dis/arch/x86"

// Ext38 is the 256-entry table for the 0x0F 0x38 tertiary escape
// (non-VEX forms only — VEX.mmmmm==2 instructions live in VexMap2).
// Per-opcode variation by mandatory prefix is expressed the same way as
// in Secondary: an ExtByMandatory node inside the slot rather than four
// separate top-level arrays.
var Ext38 [256]*Entry

// xmm66 is the "66-mandatory, XMM reg/mem" shape nearly every SSE4.1
// opcode in this map takes.
func xmm66(m x86.Mnemonic) *Entry {
	return byMandatory(nil, termModRM(m, x86.OpRegXMM, x86.OpRegMemXMM), nil, nil)
}

func init() {
	for i := range Ext38 {
		Ext38[i] = blank()
	}

	// SSSE3 row: MMX form bare, XMM form under 66.
	Ext38[0x00] = mmxXmmPair(x86.MPshufb)
	Ext38[0x01] = mmxXmmPair(x86.MPhaddw)
	Ext38[0x02] = mmxXmmPair(x86.MPhaddd)
	Ext38[0x03] = mmxXmmPair(x86.MPhaddsw)
	Ext38[0x04] = mmxXmmPair(x86.MPmaddubsw)
	Ext38[0x05] = mmxXmmPair(x86.MPhsubw)
	Ext38[0x06] = mmxXmmPair(x86.MPhsubd)
	Ext38[0x07] = mmxXmmPair(x86.MPhsubsw)
	Ext38[0x08] = mmxXmmPair(x86.MPsignb)
	Ext38[0x09] = mmxXmmPair(x86.MPsignw)
	Ext38[0x0A] = mmxXmmPair(x86.MPsignd)
	Ext38[0x0B] = mmxXmmPair(x86.MPmulhrsw)
	Ext38[0x1C] = mmxXmmPair(x86.MPabsb)
	Ext38[0x1D] = mmxXmmPair(x86.MPabsw)
	Ext38[0x1E] = mmxXmmPair(x86.MPabsd)

	// SSE4.1 variable blends (the XMM0 operand is implicit).
	Ext38[0x10] = xmm66(x86.MPblendvb)
	Ext38[0x14] = xmm66(x86.MBlendvps)
	Ext38[0x15] = xmm66(x86.MBlendvpd)
	Ext38[0x17] = xmm66(x86.MPtest)

	// SSE4.1 PMOVSX/PMOVZX: always 66-mandatory, XMM destination, a
	// narrower memory source than the destination (the source is never
	// wider than the largest element being widened into); the mem operand
	// still decodes through the XMM ModR/M.rm path since the memory width
	// is informational here and not separately modelled.
	Ext38[0x20] = xmm66(x86.MPmovsxbw)
	Ext38[0x21] = xmm66(x86.MPmovsxbd)
	Ext38[0x22] = xmm66(x86.MPmovsxbq)
	Ext38[0x23] = xmm66(x86.MPmovsxwd)
	Ext38[0x24] = xmm66(x86.MPmovsxwq)
	Ext38[0x25] = xmm66(x86.MPmovsxdq)
	Ext38[0x30] = xmm66(x86.MPmovzxbw)
	Ext38[0x31] = xmm66(x86.MPmovzxbd)
	Ext38[0x32] = xmm66(x86.MPmovzxbq)
	Ext38[0x33] = xmm66(x86.MPmovzxwd)
	Ext38[0x34] = xmm66(x86.MPmovzxwq)
	Ext38[0x35] = xmm66(x86.MPmovzxdq)

	Ext38[0x28] = xmm66(x86.MPmuldq)
	Ext38[0x29] = xmm66(x86.MPcmpeqq)
	Ext38[0x2A] = byMandatory(nil, termModRM(x86.MMovntdqa, x86.OpRegXMM, x86.OpMemXMM), nil, nil)
	Ext38[0x2B] = xmm66(x86.MPackusdw)
	Ext38[0x37] = xmm66(x86.MPcmpgtq)
	Ext38[0x38] = xmm66(x86.MPminsb)
	Ext38[0x39] = xmm66(x86.MPminsd)
	Ext38[0x3A] = xmm66(x86.MPminuw)
	Ext38[0x3B] = xmm66(x86.MPminud)
	Ext38[0x3C] = xmm66(x86.MPmaxsb)
	Ext38[0x3D] = xmm66(x86.MPmaxsd)
	Ext38[0x3E] = xmm66(x86.MPmaxuw)
	Ext38[0x3F] = xmm66(x86.MPmaxud)
	Ext38[0x40] = xmm66(x86.MPmulld)
	Ext38[0x41] = xmm66(x86.MPhminposuw)

	// AES-NI.
	Ext38[0xDB] = xmm66(x86.MAesimc)
	Ext38[0xDC] = xmm66(x86.MAesenc)
	Ext38[0xDD] = xmm66(x86.MAesenclast)
	Ext38[0xDE] = xmm66(x86.MAesdec)
	Ext38[0xDF] = xmm66(x86.MAesdeclast)

	// 0F 38 F0/F1 is MOVBE without a REP-class prefix and CRC32 under F2
	// (the one place a mandatory F2 coexists with a GPR instruction).
	Ext38[0xF0] = byMandatory(
		termModRM(x86.MMovbe, x86.OpRegNative, x86.OpRegMemNative),
		termModRM(x86.MMovbe, x86.OpRegNative, x86.OpRegMemNative),
		nil,
		termModRM(x86.MCrc32, x86.OpReg32, x86.OpRegMem8),
	)
	Ext38[0xF1] = byMandatory(
		termModRM(x86.MMovbe, x86.OpRegMemNative, x86.OpRegNative),
		termModRM(x86.MMovbe, x86.OpRegMemNative, x86.OpRegNative),
		nil,
		termModRM(x86.MCrc32, x86.OpReg32, x86.OpRegMemNative),
	)
}
