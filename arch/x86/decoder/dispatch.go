package decoder

import (
	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/arch/x86/internal/table"
)

// dispatch is the opcode dispatcher: given a modifier already populated
// by scanPrefixes (everything up to but not including the opcode byte) and
// which top-level table the scanner selected, pop the opcode byte, walk
// the table to a Terminal (or Blank) entry, and consume the ModR/M byte
// exactly once if the resolved form calls for one. It returns the
// resolved table.Form and the VEX vvvv-selected register index (0 if no
// VEX prefix was present).
func dispatch(c *Cursor, m *modifier, sel mapSelector) (table.Form, int) {
	if sel == mapThreeDNow {
		return dispatch3DNow(c, m)
	}

	opcode := c.Pop()
	m.opcode = opcode

	if opcode == 0x90 && sel == mapPrimary {
		if m.rep == x86.RepPlain {
			m.rep = x86.RepNone
			return table.Form{Mnemonic: x86.MPause}, 0
		}
		return table.Form{Mnemonic: x86.MNop}, 0
	}

	top := topEntry(sel, opcode)

	modByte := c.Peek(0)
	reg := int(modByte>>3) & 7
	rm := int(modByte) & 7
	mod := int(modByte>>6) & 3

	var entry *table.Entry
	var usedModRM bool
	if ve, ok := top.(*table.VexEntry); ok {
		entry = ve.Lookup(mod == 3, m.mandatoryPrefix, m.rexW(), m.vex.l)
		entry, usedModRM = entry.Lookup(reg, rm, mod, m.rexW(), m.mandatoryPrefix, m.vexL())
	} else {
		e, _ := top.(*table.Entry)
		entry, usedModRM = e.Lookup(reg, rm, mod, m.rexW(), m.mandatoryPrefix, m.vexL())
	}

	if entry == nil {
		return table.Form{Mnemonic: x86.MInvalid}, m.vex.vvvv
	}

	form := entry.Form
	if entry.Kind != table.Terminal {
		// Lookup walked off the tree (a nil child) without reaching a
		// Terminal/Blank leaf; treat it the same as Blank.
		form = table.Form{Mnemonic: x86.MInvalid}
	}

	// The ModR/M byte is consumed exactly once: either the terminal form
	// encodes operands through it, or some extension along the dispatch
	// path already selected on it.
	if form.HasModRM || usedModRM {
		m.hasModRM = true
		m.modrm = c.Pop()
	}

	if form.DefaultTo64 {
		m.defaultTo64 = true
	}
	if form.NoRexW {
		m.rex.w = false
		m.vex.w = false
	}

	// A REP-class byte that fed the mandatory-prefix channel of an escaped
	// opcode is part of the opcode, not a repeat prefix. 66 stays visible —
	// it is only repurposed in its operand-size role, which fixed-width
	// SSE operand kinds ignore anyway.
	if sel != mapPrimary && form.Mnemonic != x86.MInvalid &&
		(m.mandatoryPrefix == table.MPF2 || m.mandatoryPrefix == table.MPF3) {
		m.rep = x86.RepNone
	}

	form = resolveStringOpWidth(form, m)
	form = resolveMovMoffsWidth(form, m)

	// CMPS/SCAS share the 0xF3 prefix byte with MOVS/STOS/LODS, but mean
	// REPE rather than plain REP there (AMD64 manual vol. 3, REP/REPE/
	// REPNE table) — the distinction is purely semantic, not re-encoded.
	if m.rep == x86.RepPlain && isCmpsOrScas(form.Mnemonic) {
		m.rep = x86.RepEqual
	}

	return form, m.vex.vvvv
}

func isCmpsOrScas(m x86.Mnemonic) bool {
	switch m {
	case x86.MCmpsb, x86.MCmpsw, x86.MCmpsd, x86.MCmpsq,
		x86.MScasb, x86.MScasw, x86.MScasd, x86.MScasq:
		return true
	default:
		return false
	}
}

// topEntry returns the *table.Entry or *table.VexEntry the dispatcher
// should start walking for the given mapSelector/opcode pair.
func topEntry(sel mapSelector, opcode byte) interface{} {
	switch sel {
	case mapSecondary:
		return table.Secondary[opcode]
	case mapExt38:
		return table.Ext38[opcode]
	case mapExt3A:
		return table.Ext3A[opcode]
	case mapVex1:
		return table.VexMap1[opcode]
	case mapVex2:
		return table.VexMap2[opcode]
	case mapVex3:
		return table.VexMap3[opcode]
	default:
		return table.Primary[opcode]
	}
}

// dispatch3DNow implements the 3DNow! suffix-trails-operands encoding:
// the escape
// (0F 0F) has already been consumed by scanPrefixes; the fixed ModR/M
// byte (and any SIB/displacement it selects) comes next, and only then
// does the trailing byte name the mnemonic. The form is returned with
// ThreeDNowSuffix set and no mnemonic — Read resolves the fixed
// (MMX, MMX/mem64) operand pair first and pops the suffix afterwards.
func dispatch3DNow(c *Cursor, m *modifier) (table.Form, int) {
	m.hasModRM = true
	m.modrm = c.Pop()
	return table.Form{
		Operands:        []x86.OperandKind{x86.OpRegMMX, x86.OpRegMemMMX},
		HasModRM:        true,
		ThreeDNowSuffix: true,
	}, 0
}

// resolveStringOpWidth narrows a string-instruction form's fixed 32-bit
// mnemonic/operand-kind pair (as tabulated for the 0xA4-0xAF opcode
// range) down to its 16- or up to its 64-bit sibling, matching the
// active operand-size override / REX.W the way the mnemonic catalogue's
// separate MMovsw/MMovsq (etc.) forms expect.
func resolveStringOpWidth(form table.Form, m *modifier) table.Form {
	width, ok := stringOpWidth(form.Mnemonic)
	if !ok {
		return form
	}

	native := width
	if m.rexW() {
		native = 64
	} else if m.mode == x86.Legacy {
		if m.operandSizeOverride {
			native = 32
		} else {
			native = 16
		}
	} else if m.operandSizeOverride {
		native = 16
	} else {
		native = 32
	}

	form.Mnemonic = stringOpMnemonic(form.Mnemonic, native)
	ops := make([]x86.OperandKind, len(form.Operands))
	for i, op := range form.Operands {
		ops[i] = narrowStringOpKind(op, native)
	}
	form.Operands = ops
	return form
}

// resolveMovMoffsWidth widens/narrows the fixed 32-bit MOV-with-moffs forms
// (opcodes 0xA1/0xA3 are tabulated at OpImplicitEAX/OpMoffs32; the byte
// forms 0xA0/0xA2 keep OpImplicitAL/OpMoffs8) to match the active
// REX.W/operand-size-override promotion, the same way string operations
// need width resolution deferred past table construction: the mnemonic
// itself never changes (it's always "mov"), only the implicit register and
// moffs operand kinds do. The rewritten kinds go into a copy of the operand
// list; the shared table form is left untouched.
func resolveMovMoffsWidth(form table.Form, m *modifier) table.Form {
	hasMoffs := false
	for _, op := range form.Operands {
		if op == x86.OpMoffs8 || op == x86.OpMoffs16 || op == x86.OpMoffs32 || op == x86.OpMoffs64 {
			hasMoffs = true
		}
	}
	if form.Mnemonic != x86.MMov || !hasMoffs {
		return form
	}

	var native int
	switch {
	case m.rexW():
		native = 64
	case m.mode == x86.Legacy:
		if m.operandSizeOverride {
			native = 32
		} else {
			native = 16
		}
	default:
		if m.operandSizeOverride {
			native = 16
		} else {
			native = 32
		}
	}

	ops := make([]x86.OperandKind, len(form.Operands))
	for i, op := range form.Operands {
		ops[i] = op
		switch op {
		case x86.OpImplicitEAX:
			ops[i] = implicitAccWidth(native)
		case x86.OpMoffs16, x86.OpMoffs32, x86.OpMoffs64:
			ops[i] = moffsOfWidth(native)
		}
	}
	form.Operands = ops
	return form
}

func implicitAccWidth(width int) x86.OperandKind {
	switch width {
	case 16:
		return x86.OpImplicitAX
	case 64:
		return x86.OpImplicitRAX
	default:
		return x86.OpImplicitEAX
	}
}

func moffsOfWidth(width int) x86.OperandKind {
	switch width {
	case 16:
		return x86.OpMoffs16
	case 64:
		return x86.OpMoffs64
	default:
		return x86.OpMoffs32
	}
}

func stringOpWidth(m x86.Mnemonic) (int, bool) {
	switch m {
	case x86.MMovsd, x86.MStosd, x86.MLodsd, x86.MScasd, x86.MCmpsd:
		return 32, true
	default:
		return 0, false
	}
}

func stringOpMnemonic(m x86.Mnemonic, width int) x86.Mnemonic {
	switch m {
	case x86.MMovsd:
		if width == 16 {
			return x86.MMovsw
		} else if width == 64 {
			return x86.MMovsq
		}
	case x86.MStosd:
		if width == 16 {
			return x86.MStosw
		} else if width == 64 {
			return x86.MStosq
		}
	case x86.MLodsd:
		if width == 16 {
			return x86.MLodsw
		} else if width == 64 {
			return x86.MLodsq
		}
	case x86.MScasd:
		if width == 16 {
			return x86.MScasw
		} else if width == 64 {
			return x86.MScasq
		}
	case x86.MCmpsd:
		if width == 16 {
			return x86.MCmpsw
		} else if width == 64 {
			return x86.MCmpsq
		}
	}
	return m
}

func narrowStringOpKind(kind x86.OperandKind, width int) x86.OperandKind {
	switch kind {
	case x86.OpImplicitMemSrc32:
		return implicitMemKind(true, width)
	case x86.OpImplicitMemDst32:
		return implicitMemKind(false, width)
	case x86.OpImplicitEAX:
		if width == 16 {
			return x86.OpImplicitAX
		} else if width == 64 {
			return x86.OpImplicitRAX
		}
	}
	return kind
}

func implicitMemKind(isSrc bool, width int) x86.OperandKind {
	if isSrc {
		switch width {
		case 16:
			return x86.OpImplicitMemSrc16
		case 64:
			return x86.OpImplicitMemSrc64
		default:
			return x86.OpImplicitMemSrc32
		}
	}
	switch width {
	case 16:
		return x86.OpImplicitMemDst16
	case 64:
		return x86.OpImplicitMemDst64
	default:
		return x86.OpImplicitMemDst32
	}
}
