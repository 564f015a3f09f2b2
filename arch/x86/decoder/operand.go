package decoder

import (
	"github.com/sirupsen/logrus"

	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/internal/diagnostics"
)

// resolver carries the state a single instruction's operand resolution
// needs beyond the modifier record itself: the cursor to keep reading
// immediates/displacements from, and the optional diagnostic sinks fed
// when a recognised-but-unsupported operand kind is hit.
type resolver struct {
	c      *Cursor
	m      *modifier
	log    *logrus.Logger
	record *diagnostics.Recorder
}

// nativeWidth implements the operand-size promotion ladder: REX.W wins
// outright (64), then the operand-size-override flips between the mode's
// default and its alternate, then the mode default applies unmodified.
// defaultTo64 is the stack-op exception (PUSH/POP/CALL/near JMP):
// Long mode defaults to 64 regardless of REX.W, and 0x66 carves out a
// 16-bit exception instead of the usual promotion ladder.
func (r *resolver) nativeWidth(defaultTo64, noRexW bool) int {
	m := r.m
	if defaultTo64 && m.mode == x86.Long {
		if m.operandSizeOverride {
			return 16
		}
		return 64
	}
	if !noRexW && m.rexW() {
		return 64
	}
	if m.mode == x86.Legacy {
		if m.operandSizeOverride {
			return 32
		}
		return 16
	}
	if m.operandSizeOverride {
		return 16
	}
	return 32
}

// effectiveSegment applies the segment-override-prefix rule: an explicit
// override always wins, otherwise fall back to def. def is RNone for the
// ordinary DS-default case, since printing a "ds:" on every memory operand
// that never had an override would be noise a reader didn't ask for; def
// is only a real register (DS) for the string-op source side. The
// string-op destination does not come through here: it is always ES.
func effectiveSegment(m *modifier, def x86.Register) x86.Register {
	if m.segmentOverride.Present() {
		return m.segmentOverride
	}
	return def
}

// modRMRegister resolves a ModR/M.reg-selected register operand of the
// requested kind, folding in REX.R/VEX.R.
func (r *resolver) modRMRegister(kind x86.OperandKind) x86.Register {
	idx := r.m.modrmReg() | boolBit(r.m.rexR())<<3
	return r.registerOfKind(kind, idx)
}

// modRMRmRegister resolves a ModR/M.rm-selected register operand (the
// mod==11 register form of a reg-or-memory operand), folding in REX.B.
func (r *resolver) modRMRmRegister(kind x86.OperandKind) x86.Register {
	idx := r.m.modrmRm() | boolBit(r.m.rexB())<<3
	return r.registerOfKind(kind, idx)
}

func (r *resolver) registerOfKind(kind x86.OperandKind, idx int) x86.Register {
	switch kind {
	case x86.OpReg8, x86.OpRegMem8:
		if r.m.rex.present || r.m.vex.present {
			return x86.Get8BitExtended(idx)
		}
		return x86.Get8BitLegacy(idx)
	case x86.OpReg16, x86.OpRegMem16:
		return x86.Get16Bit(idx)
	case x86.OpReg32, x86.OpRegMem32:
		return x86.Get32Bit(idx)
	case x86.OpReg64, x86.OpRegMem64:
		return x86.Get64Bit(idx)
	case x86.OpRegMMX, x86.OpRegMemMMX:
		return x86.GetMMX(idx & 7)
	case x86.OpRegXMM, x86.OpRegMemXMM:
		return x86.GetXMM(idx)
	case x86.OpRegYMM, x86.OpRegMemYMM:
		return x86.GetYMM(idx)
	case x86.OpRegSegment:
		return x86.GetSegment(idx & 7)
	case x86.OpRegControl:
		return x86.GetControl(idx)
	case x86.OpRegDebug:
		return x86.GetDebug(idx)
	case x86.OpRegST:
		return x86.GetX87(idx & 7)
	default:
		return x86.RInvalid
	}
}

// memoryBits returns the width, in bits, a memory reference of the given
// kind addresses — used to populate MemoryRef.Bits for size-prefix
// printing. (resolveModRM picks decodeMemory's VSIB mode from the kind
// itself.)
func memoryBits(kind x86.OperandKind, native int) int {
	switch kind {
	case x86.OpRegMem8, x86.OpMem8:
		return 8
	case x86.OpRegMem16, x86.OpMem16:
		return 16
	case x86.OpRegMem32, x86.OpMem32, x86.OpMemVSIBYMM32:
		return 32
	case x86.OpRegMem64, x86.OpMem64:
		return 64
	case x86.OpMem80:
		return 80
	case x86.OpMem128, x86.OpRegMemXMM, x86.OpMemXMM, x86.OpMemVSIBXMM:
		return 128
	case x86.OpMem256, x86.OpRegMemYMM, x86.OpMemYMM, x86.OpMemVSIBYMM:
		return 256
	case x86.OpRegMemMMX, x86.OpMemMMX:
		return 64
	case x86.OpMem:
		return native
	default:
		return native
	}
}

// resolveModRM resolves one OperandKind that is driven by the ModR/M byte
// (register-only, memory-only, or either), reading SIB/displacement bytes
// from the cursor as needed.
func (r *resolver) resolveModRM(kind x86.OperandKind, native int) x86.Operand {
	isReg := kind.IsRegOrMemory() && r.m.modrmMod() == 3
	switch {
	case kind.IsMemoryOnly(), kind.IsRegOrMemory() && !isReg:
		vsib := kind == x86.OpMemVSIBXMM || kind == x86.OpMemVSIBYMM || kind == x86.OpMemVSIBYMM32
		vsibYMM := kind == x86.OpMemVSIBYMM || kind == x86.OpMemVSIBYMM32
		mem := decodeMemory(r.c, r.m, memoryBits(kind, native), vsib, vsibYMM)
		return x86.Operand{Kind: kind, Mem: mem}
	case kind.IsRegOrMemory():
		return x86.Operand{Kind: kind, Reg: r.modRMRmRegister(kind)}
	case kind == x86.OpRegSegment, kind == x86.OpRegControl, kind == x86.OpRegDebug,
		kind == x86.OpRegST, kind == x86.OpRegMMX, kind == x86.OpRegXMM, kind == x86.OpRegYMM,
		kind == x86.OpReg8, kind == x86.OpReg16, kind == x86.OpReg32, kind == x86.OpReg64:
		return x86.Operand{Kind: kind, Reg: r.modRMRegister(kind)}
	default:
		return r.unsupported(kind)
	}
}

// readImmediate pops n little-endian bytes from the cursor and returns
// them as a sign-extended (for signed kinds) or zero-extended int64.
func (r *resolver) readImmediate(n int, signed bool) int64 {
	var v uint64
	for i := 0; i < n; i++ {
		v |= uint64(r.c.Pop()) << (8 * i)
	}
	if !signed {
		return int64(v)
	}
	switch n {
	case 1:
		return int64(int8(v))
	case 2:
		return int64(int16(v))
	case 4:
		return int64(int32(v))
	default:
		return int64(v)
	}
}

// concreteNativeKind lowers a size-elastic operand kind onto the
// fixed-width kind the promotion policy selects, so the Operand the
// decoder emits always carries a concrete width. Kinds that are not
// size-elastic pass through unchanged.
func concreteNativeKind(kind x86.OperandKind, native int) x86.OperandKind {
	switch kind {
	case x86.OpRegNative:
		switch native {
		case 16:
			return x86.OpReg16
		case 64:
			return x86.OpReg64
		default:
			return x86.OpReg32
		}
	case x86.OpRegMemNative:
		switch native {
		case 16:
			return x86.OpRegMem16
		case 64:
			return x86.OpRegMem64
		default:
			return x86.OpRegMem32
		}
	case x86.OpOpcodeRegNative:
		switch native {
		case 16:
			return x86.OpOpcodeReg16
		case 64:
			return x86.OpOpcodeReg64
		default:
			return x86.OpOpcodeReg32
		}
	case x86.OpImplicitNativeAX:
		switch native {
		case 16:
			return x86.OpImplicitAX
		case 64:
			return x86.OpImplicitRAX
		default:
			return x86.OpImplicitEAX
		}
	default:
		return kind
	}
}

// resolveOperand turns one table-declared OperandKind into a concrete
// x86.Operand, consulting the cursor for any bytes the kind still needs
// to consume (ModR/M-driven memory/displacement, immediates, moffs,
// relative offsets) and the modifier for everything already scanned.
func (r *resolver) resolveOperand(kind x86.OperandKind, immSigned bool, vvvvReg int) x86.Operand {
	native := r.nativeWidth(r.m.defaultTo64, false)
	kind = concreteNativeKind(kind, native)

	switch {
	case kind.IsMemoryOnly() || kind.IsRegOrMemory():
		return r.resolveModRM(kind, native)

	// ST(i) is the one register file indexed by ModR/M.rm even in pure
	// register position: the reg field is the x87 opcode extension, never
	// an operand.
	case kind == x86.OpRegST:
		return x86.Operand{Kind: kind, Reg: x86.GetX87(r.m.modrmRm())}

	case kind == x86.OpRegSegment, kind == x86.OpRegControl, kind == x86.OpRegDebug,
		kind == x86.OpRegMMX, kind == x86.OpRegXMM, kind == x86.OpRegYMM,
		kind == x86.OpReg8, kind == x86.OpReg16, kind == x86.OpReg32, kind == x86.OpReg64:
		return x86.Operand{Kind: kind, Reg: r.modRMRegister(kind)}

	case kind == x86.OpImm8:
		return x86.Operand{Kind: kind, Imm: r.readImmediate(1, false)}
	case kind == x86.OpImm8Sx:
		return x86.Operand{Kind: kind, Imm: r.readImmediate(1, true)}
	case kind == x86.OpImm16:
		return x86.Operand{Kind: kind, Imm: r.readImmediate(2, immSigned)}
	case kind == x86.OpImm32:
		return x86.Operand{Kind: kind, Imm: r.readImmediate(4, immSigned)}
	case kind == x86.OpImm64:
		return x86.Operand{Kind: kind, Imm: r.readImmediate(8, immSigned)}
	case kind == x86.OpImmNative:
		// A native immediate is never wider than 32 bits: REX.W promotes
		// the destination but the encoding still carries imm32 (MOV
		// r64,imm64 is the one true imm64 form and is tabulated as such).
		if native == 16 {
			return x86.Operand{Kind: x86.OpImm16, Imm: r.readImmediate(2, immSigned)}
		}
		return x86.Operand{Kind: x86.OpImm32, Imm: r.readImmediate(4, immSigned)}

	case kind == x86.OpRel8:
		return x86.Operand{Kind: kind, Rel: x86.RelativeOffset{Delta: r.readImmediate(1, true), Width: 8}}
	case kind == x86.OpRel16:
		return x86.Operand{Kind: kind, Rel: x86.RelativeOffset{Delta: r.readImmediate(2, true), Width: 16}}
	case kind == x86.OpRel32:
		return x86.Operand{Kind: kind, Rel: x86.RelativeOffset{Delta: r.readImmediate(4, true), Width: 32}}
	case kind == x86.OpRelNative:
		// Near-branch displacements are 32-bit in 32-/64-bit modes and
		// 16-bit in Legacy mode; the 0x66 override flips either choice.
		// REX.W has no effect on the encoded width.
		wide := r.m.mode != x86.Legacy
		if r.m.operandSizeOverride {
			wide = !wide
		}
		if wide {
			return x86.Operand{Kind: x86.OpRel32, Rel: x86.RelativeOffset{Delta: r.readImmediate(4, true), Width: 32}}
		}
		return x86.Operand{Kind: x86.OpRel16, Rel: x86.RelativeOffset{Delta: r.readImmediate(2, true), Width: 16}}

	case kind == x86.OpMoffs8, kind == x86.OpMoffs16, kind == x86.OpMoffs32, kind == x86.OpMoffs64:
		return r.resolveMoffs(kind, native)

	case kind == x86.OpFarPtrImm:
		offWidth := 4
		if native == 16 {
			offWidth = 2
		}
		off := r.readImmediate(offWidth, false)
		sel := r.readImmediate(2, false)
		return x86.Operand{Kind: kind, Far: x86.FarPointer{Selector: uint16(sel), Offset: uint64(off)}}
	case kind == x86.OpFarPtrMem:
		return r.resolveModRM(kind, native)

	case kind == x86.OpImplicitAL:
		return x86.Operand{Kind: kind, Reg: x86.AL}
	case kind == x86.OpImplicitCL:
		return x86.Operand{Kind: kind, Reg: x86.CL}
	case kind == x86.OpImplicitAX:
		return x86.Operand{Kind: kind, Reg: x86.AX}
	case kind == x86.OpImplicitDX:
		return x86.Operand{Kind: kind, Reg: x86.DX}
	case kind == x86.OpImplicitEAX:
		return x86.Operand{Kind: kind, Reg: x86.Get32Bit(0)}
	case kind == x86.OpImplicitRAX:
		return x86.Operand{Kind: kind, Reg: x86.RAX}
	case kind == x86.OpImplicitCS:
		return x86.Operand{Kind: kind, Reg: x86.CS}
	case kind == x86.OpImplicitDS:
		return x86.Operand{Kind: kind, Reg: x86.DS}
	case kind == x86.OpImplicitES:
		return x86.Operand{Kind: kind, Reg: x86.ES}
	case kind == x86.OpImplicitFS:
		return x86.Operand{Kind: kind, Reg: x86.FS}
	case kind == x86.OpImplicitGS:
		return x86.Operand{Kind: kind, Reg: x86.GS}
	case kind == x86.OpImplicitSS:
		return x86.Operand{Kind: kind, Reg: x86.SS}
	case kind == x86.OpImplicitST0:
		return x86.Operand{Kind: kind, Reg: x86.ST0}
	case kind == x86.OpImplicitXMM0:
		return x86.Operand{Kind: kind, Reg: x86.XMM0}
	case kind == x86.OpImplicitOne:
		return x86.Operand{Kind: kind, Imm: 1}

	case kind == x86.OpImplicitMemSrc8, kind == x86.OpImplicitMemSrc16,
		kind == x86.OpImplicitMemSrc32, kind == x86.OpImplicitMemSrc64:
		return r.implicitStringMem(kind, addressWidth(r.m.mode, r.m.addressSizeOverride), true)
	case kind == x86.OpImplicitMemDst8, kind == x86.OpImplicitMemDst16,
		kind == x86.OpImplicitMemDst32, kind == x86.OpImplicitMemDst64:
		return r.implicitStringMem(kind, addressWidth(r.m.mode, r.m.addressSizeOverride), false)

	case kind == x86.OpOpcodeReg8, kind == x86.OpOpcodeReg16, kind == x86.OpOpcodeReg32, kind == x86.OpOpcodeReg64:
		idx := int(r.m.opcode&7) | boolBit(r.m.rexB())<<3
		return x86.Operand{Kind: kind, Reg: r.registerOfKind(opcodeRegToPlainKind(kind), idx)}

	case kind == x86.OpConditionCode:
		return x86.Operand{Kind: kind}

	case kind == x86.OpVvvvXMM:
		return x86.Operand{Kind: kind, Reg: x86.GetXMM(vvvvReg)}
	case kind == x86.OpVvvvYMM:
		return x86.Operand{Kind: kind, Reg: x86.GetYMM(vvvvReg)}
	case kind == x86.OpVvvvReg32:
		return x86.Operand{Kind: kind, Reg: x86.Get32Bit(vvvvReg)}
	case kind == x86.OpVvvvReg64:
		return x86.Operand{Kind: kind, Reg: x86.Get64Bit(vvvvReg)}

	case kind == x86.OpImm8HighNibXMM:
		return x86.Operand{Kind: kind, Reg: x86.GetXMM(int(r.c.Pop()) >> 4)}
	case kind == x86.OpImm8HighNibYMM:
		return x86.Operand{Kind: kind, Reg: x86.GetYMM(int(r.c.Pop()) >> 4)}

	default:
		return r.unsupported(kind)
	}
}

// opcodeRegToPlainKind maps an OpOpcodeRegN kind onto the plain register
// kind registerOfKind understands.
func opcodeRegToPlainKind(kind x86.OperandKind) x86.OperandKind {
	switch kind {
	case x86.OpOpcodeReg8:
		return x86.OpReg8
	case x86.OpOpcodeReg16:
		return x86.OpReg16
	case x86.OpOpcodeReg64:
		return x86.OpReg64
	default:
		return x86.OpReg32
	}
}

// implicitStringMem builds the fixed (E)SI/(E)DI/(R)SI/(R)DI-based memory
// operand the string-instruction family uses. The segment-override
// asymmetry is architectural: the source (SI-based) form
// honours a segment-override prefix, falling back to DS; the destination
// (DI-based) form is always ES, even if a segment-override prefix is
// present in the encoding (real silicon ignores it there too).
func (r *resolver) implicitStringMem(kind x86.OperandKind, addrWidth int, isSrc bool) x86.Operand {
	bits := 8
	switch kind {
	case x86.OpImplicitMemSrc16, x86.OpImplicitMemDst16:
		bits = 16
	case x86.OpImplicitMemSrc32, x86.OpImplicitMemDst32:
		bits = 32
	case x86.OpImplicitMemSrc64, x86.OpImplicitMemDst64:
		bits = 64
	}

	idx := 6 // SI
	seg := effectiveSegment(r.m, x86.DS)
	if !isSrc {
		idx = 7 // DI
		seg = x86.ES
	}

	base := gprOfWidth(idx, addrWidth)
	return x86.Operand{Kind: kind, Mem: x86.MemoryRef{Bits: bits, Segment: seg, Base: base}}
}

// resolveMoffs reads the moffs-form absolute-address immediate: an
// address-width-sized displacement (16/32/64 bits) with no base/index
// register at all.
func (r *resolver) resolveMoffs(kind x86.OperandKind, native int) x86.Operand {
	addrWidth := addressWidth(r.m.mode, r.m.addressSizeOverride)
	bits := 8
	switch kind {
	case x86.OpMoffs16:
		bits = 16
	case x86.OpMoffs32:
		bits = 32
	case x86.OpMoffs64:
		bits = 64
	}
	disp := r.readImmediate(addrWidth/8, false)
	return x86.Operand{Kind: kind, Mem: x86.MemoryRef{
		Bits:     bits,
		Segment:  effectiveSegment(r.m, x86.RNone),
		Disp:     disp,
		DispIs64: addrWidth == 64,
	}}
}

// unsupported records a diagnostic for a recognised OperandKind the
// resolver has no case for and returns a placeholder R15 register
// operand in its place; the instruction itself stays well-formed.
func (r *resolver) unsupported(kind x86.OperandKind) x86.Operand {
	if r.log != nil {
		r.log.WithFields(logrus.Fields{
			"kind":        kind.String(),
			"opcode":      r.m.opcode,
			"offset":      r.c.Start(),
			"placeholder": x86.Get64Bit(15).Name(),
		}).Warn("unsupported operand kind, substituting placeholder")
	}
	if r.record != nil {
		loc := diagnostics.At(r.c.Start(), r.m.opcode)
		r.record.Warning(loc, "unsupported operand kind: "+kind.String())
	}
	return x86.Operand{Kind: kind, Reg: x86.Get64Bit(15)}
}
