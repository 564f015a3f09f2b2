package att_test

import (
	"testing"

	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/format/att"
)

func TestFormat_MovRegMemReversedOrder(t *testing.T) {
	// Intel "mov eax, [rsi]" is AT&T "mov (%rsi), %eax" — operand order reverses.
	inst := x86.Instruction{
		Mnemonic: x86.MMov,
		Operands: []x86.Operand{
			{Kind: x86.OpRegMem32, Reg: x86.Get32Bit(0)},
			{Kind: x86.OpMem32, Mem: x86.MemoryRef{Bits: 32, Base: x86.Get64Bit(6)}},
		},
	}
	got := att.Format(inst, 0)
	want := "mov (%rsi), %eax"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_MovabsForMoffs64(t *testing.T) {
	// The absolute-displacement move always takes the width suffix, even
	// though its register operand would normally suppress one.
	inst := x86.Instruction{
		Mnemonic: x86.MMov,
		Operands: []x86.Operand{
			{Kind: x86.OpImplicitRAX, Reg: x86.RAX},
			{Kind: x86.OpMoffs64, Mem: x86.MemoryRef{Bits: 64, Disp: 0x1122334455667788, DispIs64: true}},
		},
	}
	got := att.Format(inst, 0)
	want := "movabsq 0x1122334455667788, %rax"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_SizeSuffixOnlyWithoutRegister(t *testing.T) {
	// "incl (%rbx)" — no register operand present, so the suffix disambiguates.
	inst := x86.Instruction{
		Mnemonic: x86.MInc,
		Operands: []x86.Operand{
			{Kind: x86.OpRegMem32, Mem: x86.MemoryRef{Bits: 32, Base: x86.Get64Bit(3)}},
		},
	}
	got := att.Format(inst, 0)
	want := "incl (%rbx)"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestFormat_IndexedMemoryWithScale(t *testing.T) {
	inst := x86.Instruction{
		Mnemonic: x86.MLea,
		Operands: []x86.Operand{
			{Kind: x86.OpReg64, Reg: x86.RAX},
			{Kind: x86.OpMem, Mem: x86.MemoryRef{
				Bits: 64, Base: x86.Get64Bit(6), Index: x86.Get64Bit(1), Scale: 4, Disp: 0x10,
			}},
		},
	}
	got := att.Format(inst, 0)
	want := "lea 0x10(%rsi, %rcx, 4), %rax"
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
