package decoder

import (
	"github.com/sirupsen/logrus"

	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/arch/x86/internal/table"
	"github.com/keurnel/x64dis/internal/diagnostics"
)

// Option configures an optional diagnostic sink for Read. Both a logrus
// logger and a diagnostics.Recorder may be supplied at once — the logger
// gets a warning line for every unsupported-but-recognised operand kind,
// while diagnostics.Recorder gives a caller a structured, queryable
// record of the same events.
type Option func(*resolver)

// WithLogger routes unsupported-operand-kind warnings (and nothing else)
// to the given logrus.Logger. Without it they go to
// logrus.StandardLogger().
func WithLogger(log *logrus.Logger) Option {
	return func(r *resolver) { r.log = log }
}

// WithRecorder additionally records unsupported-operand-kind warnings
// into rec, tagged with the decoding stage and byte offset in play.
func WithRecorder(rec *diagnostics.Recorder) Option {
	return func(r *resolver) { r.record = rec }
}

// Read decodes exactly one instruction starting at the cursor's current
// position: scan prefixes, dispatch the opcode through
// the appropriate table, resolve every declared operand in order, and
// assemble the result. The cursor is left positioned just past the last
// byte consumed, ready for a subsequent Read call over the next
// instruction in the stream.
func Read(c *Cursor, mode x86.Mode, opts ...Option) x86.Instruction {
	c.Mark()

	m, sel := scanPrefixes(c, mode)
	form, vvvv := dispatch(c, m, sel)

	res := &resolver{c: c, m: m, log: logrus.StandardLogger()}
	for _, opt := range opts {
		opt(res)
	}
	if res.record != nil {
		res.record.SetStage("operand-resolve")
	}

	operands := make([]x86.Operand, len(form.Operands))
	for i, kind := range form.Operands {
		immSigned := form.ImmSize != 0 && kind != x86.OpImm8
		operands[i] = res.resolveOperand(kind, immSigned, vvvv)
	}

	if form.ThreeDNowSuffix {
		// The 3DNow! opcode byte trails the operands; only now that every
		// addressing byte is consumed can it be read.
		form.Mnemonic = table.ThreeDNow[c.Pop()]
	}

	inst := x86.Instruction{
		Mnemonic:            form.Mnemonic,
		Operands:            operands,
		Mode:                mode,
		Lock:                m.lock,
		RepPrefix:           m.rep,
		SegmentOverride:     m.segmentOverride,
		OperandSizeOverride: m.operandSizeOverride,
		AddressSizeOverride: m.addressSizeOverride,
		VEX:                 m.vex.present,
	}
	if m.vex.present {
		if m.vex.l {
			inst.VectorLen = 256
		} else {
			inst.VectorLen = 128
		}
	}
	if form.ConditionCoded {
		inst.Condition = x86.ConditionFromNibble(m.opcode & 0xF)
	} else {
		inst.Condition = x86.CondNone
	}

	inst.RawBytes = c.Bytes()
	inst.Length = len(inst.RawBytes)
	return inst
}
