package table

import "github.com/keurnel/x64dis/arch/x86"

// ThreeDNow is the flat 256-entry 3DNow! suffix map: unlike every other
// escape, the opcode byte here trails the ModR/M (and any SIB/
// displacement) rather than leading it. The decoder pops ModR/M and
// resolves the fixed (MMX, MMX/mem64) operand pair before it ever looks
// at this table — by the time it indexes in here, the only thing left to
// learn is the mnemonic. Unfilled suffixes are MInvalid.
var ThreeDNow [256]x86.Mnemonic

func init() {
	for i := range ThreeDNow {
		ThreeDNow[i] = x86.MInvalid
	}

	ThreeDNow[0x0C] = x86.MPi2fw
	ThreeDNow[0x0D] = x86.MPi2fd
	ThreeDNow[0x1C] = x86.MPf2iw
	ThreeDNow[0x1D] = x86.MPf2id
	ThreeDNow[0x8A] = x86.MPfnacc
	ThreeDNow[0x8E] = x86.MPfpnacc
	ThreeDNow[0x90] = x86.MPfcmpge
	ThreeDNow[0x94] = x86.MPfmin
	ThreeDNow[0x96] = x86.MPfrcp
	ThreeDNow[0x97] = x86.MPfrsqrt
	ThreeDNow[0x9A] = x86.MPfsub
	ThreeDNow[0x9E] = x86.MPfadd
	ThreeDNow[0xA0] = x86.MPfcmpgt
	ThreeDNow[0xA4] = x86.MPfmax
	ThreeDNow[0xA6] = x86.MPfrcpit1
	ThreeDNow[0xA7] = x86.MPfrsqit1
	ThreeDNow[0xAA] = x86.MPfsubr
	ThreeDNow[0xAE] = x86.MPfacc
	ThreeDNow[0xB0] = x86.MPfcmpeq
	ThreeDNow[0xB4] = x86.MPfmul
	ThreeDNow[0xB6] = x86.MPfrcpit2
	ThreeDNow[0xB7] = x86.MPmulhrw
	ThreeDNow[0xBB] = x86.MPswapd
	ThreeDNow[0xBF] = x86.MPavgusb
}
