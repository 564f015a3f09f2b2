package decoder

import "github.com/keurnel/x64dis/arch/x86"

// addressWidth returns the effective address width in bits for the given
// mode, honouring the 0x67 address-size-override prefix.
func addressWidth(mode x86.Mode, addressSizeOverride bool) int {
	switch mode {
	case x86.Long:
		if addressSizeOverride {
			return 32
		}
		return 64
	case x86.Compat:
		if addressSizeOverride {
			return 16
		}
		return 32
	default: // Legacy
		if addressSizeOverride {
			return 32
		}
		return 16
	}
}

func gprOfWidth(index, width int) x86.Register {
	switch width {
	case 16:
		return x86.Get16Bit(index)
	case 32:
		return x86.Get32Bit(index)
	default:
		return x86.Get64Bit(index)
	}
}

// decodeMemory resolves a ModR/M encoding whose mod != 3 into a
// x86.MemoryRef: the full base/index/scale/displacement computation,
// including the SIB byte, RIP-relative addressing, and the
// mod==00,rm==101 disp32-no-base special case. vsib selects the VSIB
// variant, whose index register comes from the vector (XMM/YMM) file
// instead of the GPR file.
func decodeMemory(c *Cursor, m *modifier, bits int, vsib bool, vsibYMM bool) x86.MemoryRef {
	mod := m.modrmMod()
	rm := m.modrmRm()
	addrWidth := addressWidth(m.mode, m.addressSizeOverride)

	ref := x86.MemoryRef{Bits: bits, Segment: effectiveSegment(m, x86.RNone)}

	if addrWidth == 16 {
		decode16BitMemory(c, m, mod, rm, &ref)
		return ref
	}

	baseIdx := rm
	hasSIB := rm == 4
	if hasSIB {
		sib := c.Pop()
		scale := 1 << (sib >> 6)
		idx := int(sib>>3)&7 | boolBit(m.rexX())<<3
		base := int(sib)&7 | boolBit(m.rexB())<<3

		if idx != 4 || vsib {
			ref.Scale = scale
			if vsib {
				if vsibYMM {
					ref.Index = x86.GetYMM(idx)
				} else {
					ref.Index = x86.GetXMM(idx)
				}
			} else {
				ref.Index = gprOfWidth(idx, addrWidth)
			}
		}

		baseIdx = base
		if int(sib)&7 == 5 && mod == 0 {
			ref.Base = x86.RNone
			ref.Disp = int64(int32(c.Pop()) | int32(c.Pop())<<8 | int32(c.Pop())<<16 | int32(c.Pop())<<24)
			return ref
		}
	} else if rm == 5 && mod == 0 {
		ref.Disp = int64(int32(c.Pop()) | int32(c.Pop())<<8 | int32(c.Pop())<<16 | int32(c.Pop())<<24)
		if m.mode == x86.Long {
			ref.Base = x86.RIP
			if addrWidth == 32 {
				ref.Base = x86.EIP
			}
			ref.RIPRelative = true
		} else {
			ref.Base = x86.RNone
		}
		return ref
	}

	ref.Base = gprOfWidth(baseIdx, addrWidth)

	switch mod {
	case 1:
		ref.Disp = int64(int8(c.Pop()))
	case 2:
		ref.Disp = int64(int32(c.Pop()) | int32(c.Pop())<<8 | int32(c.Pop())<<16 | int32(c.Pop())<<24)
	}
	return ref
}

// decode16BitMemory implements the 8 legacy 16-bit ModR/M addressing
// forms (the fixed BX/BP × SI/DI table): no SIB byte exists in this mode.
func decode16BitMemory(c *Cursor, m *modifier, mod, rm int, ref *x86.MemoryRef) {
	type baseIndex struct {
		base, index x86.Register
	}
	table := [8]baseIndex{
		{x86.Get16Bit(3), x86.Get16Bit(6)}, // BX+SI
		{x86.Get16Bit(3), x86.Get16Bit(7)}, // BX+DI
		{x86.Get16Bit(5), x86.Get16Bit(6)}, // BP+SI
		{x86.Get16Bit(5), x86.Get16Bit(7)}, // BP+DI
		{x86.Get16Bit(6), x86.RNone},       // SI
		{x86.Get16Bit(7), x86.RNone},       // DI
		{x86.Get16Bit(5), x86.RNone},       // BP
		{x86.Get16Bit(3), x86.RNone},       // BX
	}

	if mod == 0 && rm == 6 {
		ref.Base = x86.RNone
		ref.Disp = int64(int16(uint16(c.Pop()) | uint16(c.Pop())<<8))
		return
	}

	bi := table[rm]
	ref.Base = bi.base
	if bi.index.Present() {
		ref.Index = bi.index
		ref.Scale = 1
	}

	switch mod {
	case 1:
		ref.Disp = int64(int8(c.Pop()))
	case 2:
		ref.Disp = int64(int16(uint16(c.Pop()) | uint16(c.Pop())<<8))
	}
}

func boolBit(b bool) int {
	if b {
		return 1
	}
	return 0
}
