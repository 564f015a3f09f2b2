// Package intel renders a decoded x86.Instruction as Intel-syntax text:
// "<mnemonic> <dst>, <src>, ...", with memory operands written
// "<SIZE> PTR [<seg>:<base> + <index>*<scale> + <disp>]" and registers by
// their bare name.
package intel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keurnel/x64dis/arch/x86"
)

// Format renders inst in Intel syntax. ip is the address the instruction
// was decoded at, used to compute the absolute target of relative branch
// operands.
func Format(inst x86.Instruction, ip uint64) string {
	var b strings.Builder

	if inst.Lock {
		b.WriteString("lock ")
	}
	switch inst.RepPrefix {
	case x86.RepPlain:
		b.WriteString("rep ")
	case x86.RepEqual:
		b.WriteString("repe ")
	case x86.RepNotEqual:
		b.WriteString("repne ")
	}

	b.WriteString(mnemonicText(inst))

	for i, op := range inst.Operands {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(formatOperand(op, ip))
	}

	return b.String()
}

// mnemonicText resolves the printable mnemonic, expanding the three
// condition-coded placeholders (Jcc/Setcc/Cmovcc) into their concrete
// "j<cc>"/"set<cc>"/"cmov<cc>" form.
func mnemonicText(inst x86.Instruction) string {
	switch inst.Mnemonic {
	case x86.MJcc:
		return "j" + inst.Condition.Suffix()
	case x86.MSetcc:
		return "set" + inst.Condition.Suffix()
	case x86.MCmovcc:
		return "cmov" + inst.Condition.Suffix()
	default:
		return inst.Mnemonic.Name()
	}
}

func formatOperand(op x86.Operand, ip uint64) string {
	switch {
	case op.Kind == x86.OpConditionCode:
		return ""
	case op.Reg.Present():
		return op.Reg.Name()
	case op.Kind == x86.OpFarPtrImm || op.Kind == x86.OpFarPtrMem:
		if op.Kind == x86.OpFarPtrMem {
			return formatMemory(op.Mem)
		}
		return fmt.Sprintf("0x%x:0x%x", op.Far.Selector, op.Far.Offset)
	case op.Kind == x86.OpRel8 || op.Kind == x86.OpRel16 || op.Kind == x86.OpRel32:
		return fmt.Sprintf("0x%x", uint64(int64(ip)+op.Rel.Delta))
	case op.Kind == x86.OpImplicitOne:
		return "1"
	case isMemoryOperand(op.Kind):
		return formatMemory(op.Mem)
	case isImmediateOperand(op.Kind):
		return fmt.Sprintf("0x%x", truncateImm(op))
	default:
		return "??"
	}
}

// truncateImm masks an immediate down to its encoded width, so a
// sign-extended imm8 of -1 prints as 0xff rather than a 64-bit mask.
func truncateImm(op x86.Operand) uint64 {
	switch op.Kind {
	case x86.OpImm8, x86.OpImm8Sx:
		return uint64(op.Imm) & 0xFF
	case x86.OpImm16:
		return uint64(op.Imm) & 0xFFFF
	case x86.OpImm32:
		return uint64(op.Imm) & 0xFFFFFFFF
	default:
		return uint64(op.Imm)
	}
}

func isMemoryOperand(kind x86.OperandKind) bool {
	return kind.IsMemoryOnly() || kind.IsRegOrMemory() ||
		kind == x86.OpMoffs8 || kind == x86.OpMoffs16 || kind == x86.OpMoffs32 || kind == x86.OpMoffs64
}

func isImmediateOperand(kind x86.OperandKind) bool {
	switch kind {
	case x86.OpImm8, x86.OpImm16, x86.OpImm32, x86.OpImm64, x86.OpImm8Sx:
		return true
	default:
		return false
	}
}

// sizePrefix maps a MemoryRef's bit width onto its Intel "PTR" keyword.
func sizePrefix(bits int) string {
	switch bits {
	case 8:
		return "BYTE PTR "
	case 16:
		return "WORD PTR "
	case 32:
		return "DWORD PTR "
	case 64:
		return "QWORD PTR "
	case 80:
		return "TWORD PTR "
	case 128:
		return "XMMWORD PTR "
	case 256:
		return "YMMWORD PTR "
	case 512:
		return "ZMMWORD PTR "
	default:
		return ""
	}
}

func formatMemory(mem x86.MemoryRef) string {
	var segment string
	if mem.Segment.Present() {
		segment = mem.Segment.Name() + ":"
	}

	if !mem.Base.Present() && !mem.Index.Present() {
		return sizePrefix(mem.Bits) + "[" + segment + hexSigned(mem.Disp) + "]"
	}

	var b strings.Builder
	b.WriteString(sizePrefix(mem.Bits))
	b.WriteByte('[')
	b.WriteString(segment)

	if mem.Base.Present() {
		b.WriteString(mem.Base.Name())
		if mem.Index.Present() || mem.Disp != 0 {
			b.WriteString(" + ")
		}
	}
	if mem.Index.Present() {
		b.WriteString(mem.Index.Name())
		if mem.Scale > 1 {
			b.WriteByte('*')
			b.WriteString(strconv.Itoa(mem.Scale))
		}
		if mem.Disp != 0 {
			b.WriteString(" + ")
		}
	}
	if mem.Disp != 0 {
		b.WriteString(hexSigned(mem.Disp))
	}

	b.WriteByte(']')
	return b.String()
}

func hexSigned(v int64) string {
	if v < 0 {
		return "-0x" + strconv.FormatUint(uint64(-v), 16)
	}
	return "0x" + strconv.FormatUint(uint64(v), 16)
}
