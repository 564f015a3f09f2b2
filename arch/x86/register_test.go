package x86

import "testing"

func TestRegister_EqualityIsByIdentityNotName(t *testing.T) {
	a := Get64Bit(0)
	b := Register{Class: RegGPR, Index: 0, Width: 64}
	if a != b {
		t.Fatalf("expected %+v == %+v", a, b)
	}
	if a.Name() != "rax" {
		t.Errorf("Name() = %q, want rax", a.Name())
	}
}

func TestRegister_8BitLegacyVsExtended(t *testing.T) {
	cases := []struct {
		index int
		want  string
	}{
		{0, "al"}, {3, "bl"}, {4, "ah"}, {7, "bh"},
	}
	for _, c := range cases {
		got := Get8BitLegacy(c.index).Name()
		if got != c.want {
			t.Errorf("Get8BitLegacy(%d) = %q, want %q", c.index, got, c.want)
		}
	}

	extCases := []struct {
		index int
		want  string
	}{
		{4, "spl"}, {5, "bpl"}, {6, "sil"}, {7, "dil"}, {8, "r8b"}, {15, "r15b"},
	}
	for _, c := range extCases {
		got := Get8BitExtended(c.index).Name()
		if got != c.want {
			t.Errorf("Get8BitExtended(%d) = %q, want %q", c.index, got, c.want)
		}
	}
}

func TestRegister_OutOfRangeYieldsInvalid(t *testing.T) {
	checks := []Register{
		Get16Bit(16),
		Get8BitLegacy(8),
		GetSegment(6),
		GetControl(16),
		GetX87(8),
		GetXMM(16),
	}
	for _, r := range checks {
		if r != RInvalid {
			t.Errorf("expected RInvalid, got %+v", r)
		}
		if r.Present() {
			t.Errorf("expected Present() == false for %+v", r)
		}
	}
}

func TestRegister_NoneIsNotPresent(t *testing.T) {
	if RNone.Present() {
		t.Error("RNone.Present() should be false")
	}
	if RNone.Name() != "" {
		t.Errorf("RNone.Name() = %q, want empty", RNone.Name())
	}
}

func TestRegister_MonotonicGPRChainAcrossWidths(t *testing.T) {
	// The same encoding index names the "same" register across widths —
	// index 0 is always the accumulator, index 5 always the
	// base-pointer-ish slot, etc. — per the register-class monotonicity
	// property.
	for idx := 0; idx < 16; idx++ {
		r8 := Get8BitExtended(idx)
		r16 := Get16Bit(idx)
		r32 := Get32Bit(idx)
		r64 := Get64Bit(idx)
		if r8.Index != idx || r16.Index != idx || r32.Index != idx || r64.Index != idx {
			t.Errorf("index mismatch at encoding %d", idx)
		}
		if r8.Class != RegGPR || r16.Class != RegGPR || r32.Class != RegGPR || r64.Class != RegGPR {
			t.Errorf("class mismatch at encoding %d", idx)
		}
	}
}

func TestRegister_SegmentNamesMatchEncodingOrder(t *testing.T) {
	want := []string{"es", "cs", "ss", "ds", "fs", "gs"}
	for i, name := range want {
		if got := GetSegment(i).Name(); got != name {
			t.Errorf("GetSegment(%d) = %q, want %q", i, got, name)
		}
	}
}
