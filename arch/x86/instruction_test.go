package x86

import "testing"

func TestInstruction_IsValid(t *testing.T) {
	valid := Instruction{Mnemonic: MMov}
	if !valid.IsValid() {
		t.Error("expected MMov instruction to be valid")
	}

	invalid := Instruction{Mnemonic: MInvalid, Length: 1}
	if invalid.IsValid() {
		t.Error("expected MInvalid instruction to be invalid")
	}

	none := Instruction{Mnemonic: MNone}
	if none.IsValid() {
		t.Error("expected MNone instruction to be invalid (absent, not a real op)")
	}
}

func TestMnemonic_NameRoundTrips(t *testing.T) {
	cases := map[Mnemonic]string{
		MMov: "mov", MLea: "lea", MNop: "nop", MCpuid: "cpuid", MPxor: "pxor",
	}
	for m, want := range cases {
		if got := m.Name(); got != want {
			t.Errorf("%v.Name() = %q, want %q", m, got, want)
		}
	}
}

func TestCondition_Suffix(t *testing.T) {
	if CondZ.Suffix() != "z" {
		t.Errorf("CondZ.Suffix() = %q, want z", CondZ.Suffix())
	}
	if CondNone.Suffix() != "" {
		t.Errorf("CondNone.Suffix() = %q, want empty", CondNone.Suffix())
	}
	if ConditionFromNibble(0x4) != CondZ {
		t.Errorf("ConditionFromNibble(0x4) = %v, want CondZ", ConditionFromNibble(0x4))
	}
}
