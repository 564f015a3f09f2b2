package decoder

import (
	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/arch/x86/internal/table"
)

// mapSelector names which top-level table the opcode dispatcher should
// start walking once the prefix scanner has finished. It covers only the
// maps the scanner itself can distinguish — the eight x87 tables and the
// ModR/M-indexed group sub-tables are selected later, inside dispatch.
type mapSelector int

const (
	mapPrimary mapSelector = iota
	mapSecondary           // 0F xx
	mapExt38               // 0F 38 xx
	mapExt3A               // 0F 3A xx
	mapThreeDNow            // 0F 0F ... xx (suffix trails the operands)
	mapVex1                // VEX.mmmmm == 1 (implied 0F map)
	mapVex2                // VEX.mmmmm == 2 (implied 0F38 map)
	mapVex3                // VEX.mmmmm == 3 (implied 0F3A map)
)

// isLegacyPrefix reports whether b is one of the bytes the scanner's prefix
// loop recognises.
// 66/67 are size overrides, 2E/3E/26/64/65/36 are segment overrides, F0 is
// LOCK, F3/F2 are REP/REPNE.
func isLegacyPrefix(b byte) bool {
	switch b {
	case 0x66, 0x67, 0x2E, 0x3E, 0x26, 0x64, 0x65, 0x36, 0xF0, 0xF3, 0xF2:
		return true
	default:
		return false
	}
}

// scanPrefixes runs the prefix state machine: the legacy-prefix loop,
// the REX/VEX tests, and the escape-byte walk. It consumes every byte that is
// part of the instruction's prefix/escape sequence and returns the
// partially-populated modifier plus which table the opcode dispatcher
// should read the next (real opcode) byte from.
func scanPrefixes(c *Cursor, mode x86.Mode) (*modifier, mapSelector) {
	m := &modifier{mode: mode, segmentOverride: x86.RNone}

	for isLegacyPrefix(c.Peek(0)) {
		b := c.Pop()
		switch b {
		case 0x66:
			m.operandSizeOverride = true
		case 0x67:
			m.addressSizeOverride = true
		case 0x2E:
			m.segmentOverride = x86.CS
		case 0x3E:
			m.segmentOverride = x86.DS
		case 0x26:
			m.segmentOverride = x86.ES
		case 0x64:
			m.segmentOverride = x86.FS
		case 0x65:
			m.segmentOverride = x86.GS
		case 0x36:
			m.segmentOverride = x86.SS
		case 0xF0:
			m.lock = true
		case 0xF3:
			m.rep = x86.RepPlain
		case 0xF2:
			m.rep = x86.RepNotEqual // last REP/REPNE wins; see cases above/below.
		}
	}
	// Re-apply REP precedence: whichever of F3/F2 physically occurred last
	// in the prefix run is the one that should win. The loop above already
	// gives that (each case simply overwrites m.rep), so nothing further
	// is needed here; this comment documents the invariant for readers.

	if mode == x86.Long && c.Peek(0)>>4 == 0x4 {
		b := c.Pop()
		m.rex = rex{
			present: true,
			w:       b&0x08 != 0,
			r:       b&0x04 != 0,
			x:       b&0x02 != 0,
			b:       b&0x01 != 0,
		}
	}

	if isVexIntroducer(c, mode) {
		scanVex(c, m)
	}

	if m.vex.present {
		switch m.vex.mmmmm {
		case 2:
			return m, mapVex2
		case 3:
			return m, mapVex3
		default:
			return m, mapVex1
		}
	}

	if c.Peek(0) == 0x0F {
		c.Pop()
		switch c.Peek(0) {
		case 0x38:
			c.Pop()
			m.mandatoryPrefix = legacyMandatoryPrefix(m)
			return m, mapExt38
		case 0x3A:
			c.Pop()
			m.mandatoryPrefix = legacyMandatoryPrefix(m)
			return m, mapExt3A
		case 0x0F:
			c.Pop()
			return m, mapThreeDNow
		default:
			m.mandatoryPrefix = legacyMandatoryPrefix(m)
			return m, mapSecondary
		}
	}

	return m, mapPrimary
}

// legacyMandatoryPrefix applies the non-VEX escape-path precedence
// order: repnz (F2) beats rep (F3) beats operand-size (66) beats none.
func legacyMandatoryPrefix(m *modifier) table.MandatoryPrefix {
	switch {
	case m.rep == x86.RepNotEqual:
		return table.MPF2
	case m.rep == x86.RepPlain:
		return table.MPF3
	case m.operandSizeOverride:
		return table.MP66
	default:
		return table.MPNone
	}
}

// isVexIntroducer reports whether the next byte should be parsed as a VEX
// prefix rather than (in Legacy/Compat mode) as the LES/LDS opcode that
// also happens to start with 0xC4/0xC5. LES/LDS always take a memory
// operand, so ModR/M.mod == 11 (the top two bits of the following byte)
// can never legally appear for them; VEX uses exactly that bit pattern in
// its own header, which is how the two are told apart. In Long mode LES/
// LDS don't exist at all, so C4/C5 is unconditionally VEX there.
func isVexIntroducer(c *Cursor, mode x86.Mode) bool {
	b := c.Peek(0)
	if b != 0xC4 && b != 0xC5 {
		return false
	}
	if mode == x86.Long {
		return true
	}
	return c.Peek(1)>>6 == 0x3
}

// scanVex consumes a 2- or 3-byte VEX header and populates m.vex.
func scanVex(c *Cursor, m *modifier) {
	lead := c.Pop()
	if lead == 0xC5 {
		b := c.Pop()
		m.vex = vex{
			present: true,
			w:       false,
			r:       b&0x80 == 0,
			x:       false,
			b:       false,
			mmmmm:   1,
			vvvv:    (^(int(b) >> 3)) & 0xF,
			l:       b&0x04 != 0,
			pp:      int(b) & 0x3,
		}
		m.mandatoryPrefix = vexPPToMandatory(m.vex.pp)
		return
	}

	b1 := c.Pop()
	b2 := c.Pop()
	m.vex = vex{
		present: true,
		r:       b1&0x80 == 0,
		x:       b1&0x40 == 0,
		b:       b1&0x20 == 0,
		mmmmm:   int(b1) & 0x1F,
		w:       b2&0x80 != 0,
		vvvv:    (^(int(b2) >> 3)) & 0xF,
		l:       b2&0x04 != 0,
		pp:      int(b2) & 0x3,
	}
	m.mandatoryPrefix = vexPPToMandatory(m.vex.pp)
}

// vexPPToMandatory maps VEX.pp's own encoding (0=none,1=66,2=F3,3=F2) onto
// table.MandatoryPrefix, whose numbering (none, 66, F2, F3) puts F2 before
// F3 and so does not line up positionally.
func vexPPToMandatory(pp int) table.MandatoryPrefix {
	switch pp {
	case 1:
		return table.MP66
	case 2:
		return table.MPF3
	case 3:
		return table.MPF2
	default:
		return table.MPNone
	}
}
