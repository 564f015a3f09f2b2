// Package att renders a decoded x86.Instruction as AT&T-syntax text:
// reversed operand order, "%reg" register sigils, "$imm" immediate
// sigils, and "disp(base, index, scale)" memory syntax, with a
// size-suffixed mnemonic standing in for Intel's explicit PTR keyword.
package att

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/keurnel/x64dis/arch/x86"
)

// Format renders inst in AT&T syntax. ip is the address the instruction
// was decoded at, used to resolve relative-branch targets.
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

	suffix := operandSizeSuffix(inst)
	b.WriteString(mnemonicText(inst))
	b.WriteString(suffix)

	ops := reversedOperands(inst.Operands)
	for i, op := range ops {
		if i == 0 {
			b.WriteByte(' ')
		} else {
			b.WriteString(", ")
		}
		b.WriteString(formatOperand(op, ip))
	}

	return b.String()
}

func mnemonicText(inst x86.Instruction) string {
	switch inst.Mnemonic {
	case x86.MJcc:
		return "j" + inst.Condition.Suffix()
	case x86.MSetcc:
		return "set" + inst.Condition.Suffix()
	case x86.MCmovcc:
		return "cmov" + inst.Condition.Suffix()
	case x86.MMov:
		if _, ok := movAbsOperand(inst); ok {
			return "movabs"
		}
		return inst.Mnemonic.Name()
	default:
		return inst.Mnemonic.Name()
	}
}

// movAbsOperand returns the moffs operand of an absolute-displacement MOV
// (the form spelled "movabs" in AT&T syntax), if the instruction is one.
func movAbsOperand(inst x86.Instruction) (x86.Operand, bool) {
	if inst.Mnemonic != x86.MMov {
		return x86.Operand{}, false
	}
	for _, op := range inst.Operands {
		if (op.Kind == x86.OpMoffs64) || (op.Kind == x86.OpMem64 && op.Mem.DispIs64) {
			return op, true
		}
	}
	return x86.Operand{}, false
}

// operandSizeSuffix picks AT&T's b/w/l/q disambiguation suffix from the
// width of a memory operand when the instruction has no register operand;
// register operands already disambiguate on their own (%eax vs %rax) so no
// suffix is added when one is present. Immediates carry no width here, so
// an instruction whose only operand is an immediate gets no suffix.
// Absolute-displacement moves are the exception: "movabs" always carries
// the width suffix ("movabsq"), accumulator operand notwithstanding.
func operandSizeSuffix(inst x86.Instruction) string {
	if op, ok := movAbsOperand(inst); ok {
		return widthSuffix(op.Mem.Bits)
	}

	hasReg := false
	var bits int
	for _, op := range inst.Operands {
		if op.Reg.Present() {
			hasReg = true
		}
		if isMemoryOperandKind(op.Kind) && op.Mem.Bits != 0 {
			bits = op.Mem.Bits
		}
	}
	if hasReg || bits == 0 {
		return ""
	}
	return widthSuffix(bits)
}

func widthSuffix(bits int) string {
	switch bits {
	case 8:
		return "b"
	case 16:
		return "w"
	case 32:
		return "l"
	case 64:
		return "q"
	default:
		return ""
	}
}

func reversedOperands(ops []x86.Operand) []x86.Operand {
	out := make([]x86.Operand, len(ops))
	for i, op := range ops {
		out[len(ops)-1-i] = op
	}
	return out
}

func formatOperand(op x86.Operand, ip uint64) string {
	switch {
	case op.Kind == x86.OpConditionCode:
		return ""
	case op.Reg.Present():
		return "%" + op.Reg.Name()
	case op.Kind == x86.OpFarPtrImm || op.Kind == x86.OpFarPtrMem:
		if op.Kind == x86.OpFarPtrMem {
			return formatMemory(op.Mem)
		}
		return fmt.Sprintf("$0x%x:0x%x", op.Far.Selector, op.Far.Offset)
	case op.Kind == x86.OpRel8 || op.Kind == x86.OpRel16 || op.Kind == x86.OpRel32:
		return fmt.Sprintf("0x%x", uint64(int64(ip)+op.Rel.Delta))
	case op.Kind == x86.OpImplicitOne:
		return "$1"
	case isMemoryOperandKind(op.Kind):
		return formatMemory(op.Mem)
	case isImmediateOperandKind(op.Kind):
		return fmt.Sprintf("$0x%x", truncateImm(op))
	default:
		return "??"
	}
}

// truncateImm masks an immediate down to its encoded width, matching the
// Intel printer's truncation rule.
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

func isMemoryOperandKind(kind x86.OperandKind) bool {
	return kind.IsMemoryOnly() || kind.IsRegOrMemory() ||
		kind == x86.OpMoffs8 || kind == x86.OpMoffs16 || kind == x86.OpMoffs32 || kind == x86.OpMoffs64
}

func isImmediateOperandKind(kind x86.OperandKind) bool {
	switch kind {
	case x86.OpImm8, x86.OpImm16, x86.OpImm32, x86.OpImm64, x86.OpImm8Sx:
		return true
	default:
		return false
	}
}

func formatMemory(mem x86.MemoryRef) string {
	var segment string
	if mem.Segment.Present() {
		segment = "%" + mem.Segment.Name() + ":"
	}

	if !mem.Base.Present() && !mem.Index.Present() {
		return segment + hexSigned(mem.Disp)
	}

	var b strings.Builder
	b.WriteString(segment)
	if mem.Disp != 0 {
		b.WriteString(hexSigned(mem.Disp))
	}

	b.WriteByte('(')
	if mem.Base.Present() {
		b.WriteString("%" + mem.Base.Name())
	}
	if mem.Index.Present() {
		b.WriteString(", %")
		b.WriteString(mem.Index.Name())
		if mem.Scale != 1 {
			b.WriteString(", ")
			b.WriteString(strconv.Itoa(mem.Scale))
		}
	}
	b.WriteByte(')')
	return b.String()
}

func hexSigned(v int64) string {
	if v < 0 {
		return "-0x" + strconv.FormatUint(uint64(-v), 16)
	}
	return "0x" + strconv.FormatUint(uint64(v), 16)
}
