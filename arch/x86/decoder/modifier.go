package decoder

import (
	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/arch/x86/internal/table"
)

// rex carries the four REX extension bits plus whether a REX byte was
// actually present (an absent REX is not the same as a REX with every bit
// clear, because REX's mere presence changes 8-bit register decoding —
// see x86.Get8BitExtended vs x86.Get8BitLegacy).
type rex struct {
	present bool
	w, r, x, b bool
}

// vex carries the fields decoded out of a 2- or 3-byte VEX prefix.
type vex struct {
	present bool
	w       bool
	l       bool // vector length: false=128, true=256
	vvvv    int  // already inverted; 0..15
	r, x, b bool
	mmmmm   int // map selector: 1 = 0F, 2 = 0F38, 3 = 0F3A
	pp      int // 0=none,1=66,2=F3,3=F2 (raw VEX.pp encoding)
}

// modifier is the decoder-internal record accumulated by the prefix
// scanner and consulted by the dispatcher and operand resolver.
type modifier struct {
	mode x86.Mode

	opcode byte
	hasModRM bool
	modrm  byte

	rex rex
	vex vex

	operandSizeOverride bool
	addressSizeOverride bool

	segmentOverride x86.Register // x86.RNone if absent.

	lock bool
	rep  x86.RepKind

	mandatoryPrefix table.MandatoryPrefix

	defaultTo64       bool
	directRegisterIdx bool
}

// modrmMod, modrmReg, modrmRm split the cached ModR/M byte into its three
// fields. Callers must have already ensured hasModRM / that ModR/M was
// peeked before calling these.
func (m *modifier) modrmMod() int { return int(m.modrm>>6) & 3 }
func (m *modifier) modrmReg() int { return int(m.modrm>>3) & 7 }
func (m *modifier) modrmRm() int  { return int(m.modrm) & 7 }

// rexW / rexR / rexX / rexB fold REX and VEX into a single source of
// extension bits: VEX (if present) always wins. A REX byte that precedes a
// VEX header stays recorded in m.rex, but its W/R/X/B bits are not read.
func (m *modifier) rexW() bool {
	if m.vex.present {
		return m.vex.w
	}
	return m.rex.present && m.rex.w
}
func (m *modifier) rexR() bool {
	if m.vex.present {
		return m.vex.r
	}
	return m.rex.present && m.rex.r
}
func (m *modifier) rexX() bool {
	if m.vex.present {
		return m.vex.x
	}
	return m.rex.present && m.rex.x
}
func (m *modifier) rexB() bool {
	if m.vex.present {
		return m.vex.b
	}
	return m.rex.present && m.rex.b
}

// vexL returns 0 or 1 for ExtByVEXL lookups; meaningless when vex is absent.
func (m *modifier) vexL() int {
	if m.vex.l {
		return 1
	}
	return 0
}
