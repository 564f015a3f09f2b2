package intel_test

import (
	"testing"

	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/format/intel"
)

func TestFormat_LeaRegMem(t *testing.T) {
	inst := x86.Instruction{
		Mnemonic: x86.MLea,
		Operands: []x86.Operand{
			{Kind: x86.OpReg64, Reg: x86.RAX},
			{Kind: x86.OpMem, Mem: x86.MemoryRef{Bits: 64, Base: x86.Get64Bit(6), Disp: 0x10}},
		},
	}
	got := intel.Format(inst, 0)
	want := "lea rax, QWORD PTR [rsi + 0x10]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_NoDefaultSegmentNoise(t *testing.T) {
	inst := x86.Instruction{
		Mnemonic: x86.MMov,
		Operands: []x86.Operand{
			{Kind: x86.OpRegMem32, Reg: x86.Get32Bit(0)},
			{Kind: x86.OpMem32, Mem: x86.MemoryRef{Bits: 32, Base: x86.Get64Bit(6)}},
		},
	}
	got := intel.Format(inst, 0)
	want := "mov eax, DWORD PTR [rsi]"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_ConditionCodedJcc(t *testing.T) {
	inst := x86.Instruction{
		Mnemonic:  x86.MJcc,
		Condition: x86.CondNZ,
		Operands:  []x86.Operand{{Kind: x86.OpRel32, Rel: x86.RelativeOffset{Delta: 5, Width: 32}}},
	}
	got := intel.Format(inst, 0x1000)
	want := "jnz 0x1005"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_ImmediateTruncatedToEncodedWidth(t *testing.T) {
	// A sign-extended imm8 of -1 renders as 0xff, not a 64-bit mask.
	inst := x86.Instruction{
		Mnemonic: x86.MPush,
		Operands: []x86.Operand{{Kind: x86.OpImm8Sx, Imm: -1}},
	}
	got := intel.Format(inst, 0)
	want := "push 0xff"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_ShiftByOneLiteral(t *testing.T) {
	inst := x86.Instruction{
		Mnemonic: x86.MShl,
		Operands: []x86.Operand{
			{Kind: x86.OpReg32, Reg: x86.Get32Bit(0)},
			{Kind: x86.OpImplicitOne, Imm: 1},
		},
	}
	got := intel.Format(inst, 0)
	want := "shl eax, 1"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_LockPrefix(t *testing.T) {
	inst := x86.Instruction{
		Mnemonic: x86.MAdd,
		Lock:     true,
		Operands: []x86.Operand{
			{Kind: x86.OpRegMem32, Mem: x86.MemoryRef{Bits: 32, Base: x86.Get64Bit(3)}},
			{Kind: x86.OpReg32, Reg: x86.Get32Bit(0)},
		},
	}
	got := intel.Format(inst, 0)
	want := "lock add DWORD PTR [rbx], eax"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
