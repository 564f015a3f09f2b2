package decoder_test

import (
	"encoding/hex"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/keurnel/x64dis/arch/x86"
	"github.com/keurnel/x64dis/arch/x86/decoder"
)

func decodeHex(t *testing.T, s string, mode x86.Mode) x86.Instruction {
	t.Helper()
	buf, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex fixture %q: %v", s, err)
	}
	c := decoder.NewCursor(buf)
	inst := decoder.Read(c, mode)
	if inst.Length != len(buf) {
		t.Fatalf("%s: consumed %d of %d bytes", s, inst.Length, len(buf))
	}
	return inst
}

func TestRead_LeaRegMem(t *testing.T) {
	// 48 8D 46 10 -> lea rax, [rsi + 0x10]
	inst := decodeHex(t, "488D4610", x86.Long)
	if inst.Mnemonic != x86.MLea {
		t.Fatalf("mnemonic = %s, want lea", inst.Mnemonic)
	}
	if len(inst.Operands) != 2 {
		t.Fatalf("operands = %d, want 2", len(inst.Operands))
	}
	if inst.Operands[0].Reg != x86.RAX {
		t.Errorf("dst = %s, want rax", inst.Operands[0].Reg)
	}
	want := x86.MemoryRef{Bits: 64, Base: x86.Get64Bit(6), Disp: 0x10}
	if diff := cmp.Diff(want, inst.Operands[1].Mem); diff != "" {
		t.Errorf("mem mismatch (-want +got):\n%s", diff)
	}
}

func TestRead_MovRegMemStore(t *testing.T) {
	// 48 89 06 -> mov [rsi], rax
	inst := decodeHex(t, "488906", x86.Long)
	if inst.Mnemonic != x86.MMov {
		t.Fatalf("mnemonic = %s, want mov", inst.Mnemonic)
	}
	if inst.Operands[0].Mem.Base != x86.Get64Bit(6) {
		t.Errorf("dst base = %s, want rsi", inst.Operands[0].Mem.Base)
	}
	if inst.Operands[1].Reg != x86.RAX {
		t.Errorf("src = %s, want rax", inst.Operands[1].Reg)
	}
}

func TestRead_Moffs64(t *testing.T) {
	// 48 A1 55 AA 55 AA 55 AA 55 AA -> mov rax, [0xaa55aa55aa55aa55]
	inst := decodeHex(t, "48A155AA55AA55AA55AA", x86.Long)
	if inst.Mnemonic != x86.MMov {
		t.Fatalf("mnemonic = %s, want mov", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.RAX {
		t.Errorf("dst = %s, want rax (REX.W widens the implicit accumulator)", inst.Operands[0].Reg)
	}
	mem := inst.Operands[1].Mem
	if mem.Bits != 64 {
		t.Errorf("mem.Bits = %d, want 64", mem.Bits)
	}
	if !mem.DispIs64 {
		t.Errorf("expected DispIs64")
	}
	var wantDisp uint64 = 0xaa55aa55aa55aa55
	if mem.Disp != int64(wantDisp) {
		t.Errorf("disp = %#x, want 0xaa55aa55aa55aa55", uint64(mem.Disp))
	}
}

func TestRead_MovdqaLoad(t *testing.T) {
	// 66 0F 6F 4C 24 20 -> movdqa xmm1, [rsp + 0x20]
	inst := decodeHex(t, "660F6F4C2420", x86.Long)
	if inst.Mnemonic != x86.MMovdqa {
		t.Fatalf("mnemonic = %s, want movdqa", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.GetXMM(1) {
		t.Errorf("dst = %s, want xmm1", inst.Operands[0].Reg)
	}
	mem := inst.Operands[1].Mem
	if mem.Base != x86.Get64Bit(4) || mem.Disp != 0x20 || mem.Bits != 128 {
		t.Errorf("mem = %+v", mem)
	}
}

func TestRead_RepMovsb_SegmentOverrideAsymmetry(t *testing.T) {
	// 65 F3 A4 -> rep movsb, with a GS override on the source only.
	inst := decodeHex(t, "65F3A4", x86.Long)
	if inst.Mnemonic != x86.MMovsb {
		t.Fatalf("mnemonic = %s, want movsb", inst.Mnemonic)
	}
	if inst.RepPrefix != x86.RepPlain {
		t.Errorf("rep = %v, want RepPlain", inst.RepPrefix)
	}
	src := inst.Operands[1].Mem
	dst := inst.Operands[0].Mem
	if src.Segment != x86.GS {
		t.Errorf("src segment = %s, want gs (override honoured)", src.Segment)
	}
	if dst.Segment != x86.ES {
		t.Errorf("dst segment = %s, want es (override ignored)", dst.Segment)
	}
}

func TestRead_CmpsbIsRepEqual(t *testing.T) {
	// F3 A6 -> repe cmpsb; the 0xF3 byte means REPE here, not plain REP.
	inst := decodeHex(t, "F3A6", x86.Long)
	if inst.Mnemonic != x86.MCmpsb {
		t.Fatalf("mnemonic = %s, want cmpsb", inst.Mnemonic)
	}
	if inst.RepPrefix != x86.RepEqual {
		t.Errorf("rep = %v, want RepEqual", inst.RepPrefix)
	}
}

func TestRead_VexVmovsdLoad(t *testing.T) {
	// C5 FB 10 07 -> vmovsd xmm0, [rdi] (the memory form is two-operand;
	// only the register-register form carries the vvvv merge operand).
	inst := decodeHex(t, "C5FB1007", x86.Long)
	if inst.Mnemonic != x86.MVmovsd {
		t.Fatalf("mnemonic = %s, want vmovsd", inst.Mnemonic)
	}
	if !inst.VEX {
		t.Errorf("expected VEX flag set")
	}
	if inst.Operands[0].Reg != x86.GetXMM(0) {
		t.Errorf("dst = %s, want xmm0", inst.Operands[0].Reg)
	}
	if len(inst.Operands) != 2 {
		t.Fatalf("operands = %d, want 2 (dst, mem)", len(inst.Operands))
	}
	if inst.Operands[1].Mem.Base != x86.Get64Bit(7) {
		t.Errorf("mem base = %s, want rdi", inst.Operands[1].Mem.Base)
	}
	if inst.Operands[1].Mem.Bits != 64 {
		t.Errorf("mem bits = %d, want 64 (scalar double)", inst.Operands[1].Mem.Bits)
	}
}

func TestRead_VexVmovsdRegisterFormCarriesVvvv(t *testing.T) {
	// C5 EB 10 C1 -> vmovsd xmm0, xmm2, xmm1 (mod == 3 merge form).
	inst := decodeHex(t, "C5EB10C1", x86.Long)
	if inst.Mnemonic != x86.MVmovsd {
		t.Fatalf("mnemonic = %s, want vmovsd", inst.Mnemonic)
	}
	if len(inst.Operands) != 3 {
		t.Fatalf("operands = %d, want 3 (dst, vvvv, src)", len(inst.Operands))
	}
	if inst.Operands[1].Reg != x86.GetXMM(2) {
		t.Errorf("vvvv = %s, want xmm2", inst.Operands[1].Reg)
	}
	if inst.Operands[2].Reg != x86.GetXMM(1) {
		t.Errorf("src = %s, want xmm1", inst.Operands[2].Reg)
	}
}

func TestRead_VexVbroadcastss(t *testing.T) {
	// C4 E2 79 18 00 -> vbroadcastss xmm0, dword ptr [rax]
	inst := decodeHex(t, "C4E2791800", x86.Long)
	if inst.Mnemonic != x86.MVbroadcastss {
		t.Fatalf("mnemonic = %s, want vbroadcastss", inst.Mnemonic)
	}
	if inst.Operands[1].Mem.Bits != 32 {
		t.Errorf("mem bits = %d, want 32", inst.Operands[1].Mem.Bits)
	}
	if inst.Operands[1].Mem.Base != x86.Get64Bit(0) {
		t.Errorf("mem base = %s, want rax", inst.Operands[1].Mem.Base)
	}
}

func TestRead_RipRelativeOnlyInLongMode(t *testing.T) {
	// 8B 05 10 00 00 00 -> mov eax, [rip + 0x10] in Long mode, but
	// mov eax, [0x10] (absolute, no base) in Compat mode.
	inst := decodeHex(t, "8B0510000000", x86.Long)
	if !inst.Operands[1].Mem.RIPRelative {
		t.Errorf("expected RIP-relative addressing in Long mode")
	}
	if inst.Operands[1].Mem.Base != x86.RIP {
		t.Errorf("base = %s, want rip", inst.Operands[1].Mem.Base)
	}

	compat := decodeHex(t, "8B0510000000", x86.Compat)
	if compat.Operands[1].Mem.RIPRelative {
		t.Errorf("RIP-relative addressing should not apply outside Long mode")
	}
	if compat.Operands[1].Mem.Base.Present() {
		t.Errorf("base = %s, want absent (disp32-no-base)", compat.Operands[1].Mem.Base)
	}
}

func TestRead_LesLds(t *testing.T) {
	// C4 07 -> les ax, [bx] in Legacy mode (0xC4 is LES there, not a VEX introducer).
	inst := decodeHex(t, "C407", x86.Legacy)
	if inst.Mnemonic != x86.MLes {
		t.Fatalf("mnemonic = %s, want les", inst.Mnemonic)
	}
	if inst.VEX {
		t.Errorf("LES must not be treated as a VEX introducer in Legacy mode")
	}
}

func TestRead_PauseVsNop(t *testing.T) {
	nop := decodeHex(t, "90", x86.Long)
	if nop.Mnemonic != x86.MNop {
		t.Fatalf("mnemonic = %s, want nop", nop.Mnemonic)
	}

	pause := decodeHex(t, "F390", x86.Long)
	if pause.Mnemonic != x86.MPause {
		t.Fatalf("mnemonic = %s, want pause", pause.Mnemonic)
	}
	if pause.RepPrefix != x86.RepNone {
		t.Errorf("pause should absorb the F3 prefix rather than report RepPlain")
	}
}

func TestRead_StringOpWidthNarrowing(t *testing.T) {
	// 66 A5 -> movsw (operand-size override narrows the table's movsd entry).
	word := decodeHex(t, "66A5", x86.Long)
	if word.Mnemonic != x86.MMovsw {
		t.Fatalf("mnemonic = %s, want movsw", word.Mnemonic)
	}

	// 48 A5 -> movsq (REX.W widens it).
	quad := decodeHex(t, "48A5", x86.Long)
	if quad.Mnemonic != x86.MMovsq {
		t.Fatalf("mnemonic = %s, want movsq", quad.Mnemonic)
	}
}

func TestRead_Ext38Pmovzxbw(t *testing.T) {
	// 66 0F 38 30 C1 -> pmovzxbw xmm0, xmm1
	inst := decodeHex(t, "660F3830C1", x86.Long)
	if inst.Mnemonic != x86.MPmovzxbw {
		t.Fatalf("mnemonic = %s, want pmovzxbw", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.GetXMM(0) || inst.Operands[1].Reg != x86.GetXMM(1) {
		t.Errorf("operands = %+v", inst.Operands)
	}
}

func TestRead_Ext38PabsbNoMandatoryPrefixUsesMMX(t *testing.T) {
	// 0F 38 1C C1 -> pabsb mm0, mm1 (no mandatory prefix selects the MMX form).
	inst := decodeHex(t, "0F381CC1", x86.Long)
	if inst.Mnemonic != x86.MPabsb {
		t.Fatalf("mnemonic = %s, want pabsb", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.GetMMX(0) || inst.Operands[1].Reg != x86.GetMMX(1) {
		t.Errorf("operands = %+v", inst.Operands)
	}
}

func TestRead_ThreeDNowSuffixTrailsOperands(t *testing.T) {
	// 0F 0F C1 9E -> pfadd mm0, mm1 (suffix byte 0x9E comes after ModR/M).
	inst := decodeHex(t, "0F0FC19E", x86.Long)
	if inst.Mnemonic != x86.MPfadd {
		t.Fatalf("mnemonic = %s, want pfadd", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.GetMMX(0) || inst.Operands[1].Reg != x86.GetMMX(1) {
		t.Errorf("operands = %+v", inst.Operands)
	}
}

func TestRead_NativeWidthPromotion(t *testing.T) {
	// 01 D8 in Legacy mode -> add ax, bx (mode default 16).
	legacy := decodeHex(t, "01D8", x86.Legacy)
	if legacy.Operands[0].Reg != x86.Get16Bit(0) || legacy.Operands[1].Reg != x86.Get16Bit(3) {
		t.Errorf("legacy add = %+v, want ax, bx", legacy.Operands)
	}

	// 66 89 C8 in Long mode -> mov ax, cx (override narrows 32 to 16).
	word := decodeHex(t, "6689C8", x86.Long)
	if word.Operands[0].Reg != x86.Get16Bit(0) || word.Operands[1].Reg != x86.Get16Bit(1) {
		t.Errorf("66-override mov = %+v, want ax, cx", word.Operands)
	}

	// 89 C8 plain -> mov eax, ecx; 48 89 C8 -> mov rax, rcx.
	dword := decodeHex(t, "89C8", x86.Long)
	if dword.Operands[0].Reg != x86.Get32Bit(0) {
		t.Errorf("plain mov dst = %s, want eax", dword.Operands[0].Reg)
	}
	qword := decodeHex(t, "4889C8", x86.Long)
	if qword.Operands[0].Reg != x86.Get64Bit(0) {
		t.Errorf("REX.W mov dst = %s, want rax", qword.Operands[0].Reg)
	}
}

func TestRead_PushDefaultsTo64(t *testing.T) {
	// 55 -> push rbp in Long mode (default-64, no REX needed).
	inst := decodeHex(t, "55", x86.Long)
	if inst.Mnemonic != x86.MPush {
		t.Fatalf("mnemonic = %s, want push", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.Get64Bit(5) {
		t.Errorf("operand = %s, want rbp", inst.Operands[0].Reg)
	}

	// 66 55 -> push bp (the 16-bit carve-out).
	narrow := decodeHex(t, "6655", x86.Long)
	if narrow.Operands[0].Reg != x86.Get16Bit(5) {
		t.Errorf("operand = %s, want bp", narrow.Operands[0].Reg)
	}
}

func TestRead_PushImmNativeInLegacyMode(t *testing.T) {
	// 68 34 12 -> push 0x1234 (imm16 in Legacy mode).
	inst := decodeHex(t, "683412", x86.Legacy)
	if inst.Mnemonic != x86.MPush {
		t.Fatalf("mnemonic = %s, want push", inst.Mnemonic)
	}
	if inst.Operands[0].Kind != x86.OpImm16 || inst.Operands[0].Imm != 0x1234 {
		t.Errorf("operand = %+v, want imm16 0x1234", inst.Operands[0])
	}
}

func TestRead_CallRelNativeWidth(t *testing.T) {
	// E8 is rel32 in Long mode and rel16 in Legacy mode.
	long := decodeHex(t, "E878563412", x86.Long)
	if long.Operands[0].Rel.Width != 32 || long.Operands[0].Rel.Delta != 0x12345678 {
		t.Errorf("long call rel = %+v, want rel32 0x12345678", long.Operands[0].Rel)
	}
	legacy := decodeHex(t, "E83412", x86.Legacy)
	if legacy.Operands[0].Rel.Width != 16 || legacy.Operands[0].Rel.Delta != 0x1234 {
		t.Errorf("legacy call rel = %+v, want rel16 0x1234", legacy.Operands[0].Rel)
	}
}

func TestRead_Group1SignExtendedImm8(t *testing.T) {
	// 48 83 C0 FF -> add rax, -1 (imm8 sign-extended to 64).
	inst := decodeHex(t, "4883C0FF", x86.Long)
	if inst.Mnemonic != x86.MAdd {
		t.Fatalf("mnemonic = %s, want add", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.Get64Bit(0) {
		t.Errorf("dst = %s, want rax", inst.Operands[0].Reg)
	}
	if inst.Operands[1].Imm != -1 {
		t.Errorf("imm = %d, want -1", inst.Operands[1].Imm)
	}
}

func TestRead_ShldWithImm8(t *testing.T) {
	// 0F A4 D8 02 -> shld eax, ebx, 2.
	inst := decodeHex(t, "0FA4D802", x86.Long)
	if inst.Mnemonic != x86.MShld {
		t.Fatalf("mnemonic = %s, want shld", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.Get32Bit(0) || inst.Operands[1].Reg != x86.Get32Bit(3) {
		t.Errorf("operands = %+v, want eax, ebx", inst.Operands)
	}
	if inst.Operands[2].Imm != 2 {
		t.Errorf("imm = %d, want 2", inst.Operands[2].Imm)
	}
}

func TestRead_ShiftByOneHasLiteralOperand(t *testing.T) {
	// D1 E0 -> shl eax, 1 (the implicit-one form).
	inst := decodeHex(t, "D1E0", x86.Long)
	if inst.Mnemonic != x86.MShl {
		t.Fatalf("mnemonic = %s, want shl", inst.Mnemonic)
	}
	if len(inst.Operands) != 2 || inst.Operands[1].Kind != x86.OpImplicitOne {
		t.Errorf("operands = %+v, want eax, 1", inst.Operands)
	}
}

func TestRead_Cmpxchg8b16b(t *testing.T) {
	// 0F C7 0F -> cmpxchg8b [rdi]; with REX.W -> cmpxchg16b.
	m64 := decodeHex(t, "0FC70F", x86.Long)
	if m64.Mnemonic != x86.MCmpxchg8b || m64.Operands[0].Mem.Bits != 64 {
		t.Errorf("got %s/%d, want cmpxchg8b m64", m64.Mnemonic, m64.Operands[0].Mem.Bits)
	}
	m128 := decodeHex(t, "480FC70F", x86.Long)
	if m128.Mnemonic != x86.MCmpxchg16b || m128.Operands[0].Mem.Bits != 128 {
		t.Errorf("got %s/%d, want cmpxchg16b m128", m128.Mnemonic, m128.Operands[0].Mem.Bits)
	}
}

func TestRead_Group15Fences(t *testing.T) {
	// 0F AE E8/F0/F8 -> lfence/mfence/sfence; the ModR/M byte is consumed
	// even though the terminal has no ModR/M-encoded operand.
	cases := []struct {
		hex  string
		want x86.Mnemonic
	}{
		{"0FAEE8", x86.MLfence},
		{"0FAEF0", x86.MMfence},
		{"0FAEF8", x86.MSfence},
	}
	for _, tc := range cases {
		inst := decodeHex(t, tc.hex, x86.Long)
		if inst.Mnemonic != tc.want {
			t.Errorf("%s: mnemonic = %s, want %s", tc.hex, inst.Mnemonic, tc.want)
		}
	}

	// 0F AE 10 -> ldmxcsr dword [rax] (the memory half of group 15).
	ld := decodeHex(t, "0FAE10", x86.Long)
	if ld.Mnemonic != x86.MLdmxcsr || ld.Operands[0].Mem.Bits != 32 {
		t.Errorf("got %s, want ldmxcsr m32", ld.Mnemonic)
	}
}

func TestRead_X87RegisterForms(t *testing.T) {
	// D8 C1 -> fadd st, st(1).
	fadd := decodeHex(t, "D8C1", x86.Long)
	if fadd.Mnemonic != x86.MFadd {
		t.Fatalf("mnemonic = %s, want fadd", fadd.Mnemonic)
	}
	if fadd.Operands[0].Reg != x86.ST0 || fadd.Operands[1].Reg != x86.ST1 {
		t.Errorf("operands = %+v, want st(0), st(1)", fadd.Operands)
	}

	// DE C1 -> faddp st(1), st.
	faddp := decodeHex(t, "DEC1", x86.Long)
	if faddp.Mnemonic != x86.MFaddp {
		t.Fatalf("mnemonic = %s, want faddp", faddp.Mnemonic)
	}
	if faddp.Operands[0].Reg != x86.ST1 {
		t.Errorf("dst = %s, want st(1)", faddp.Operands[0].Reg)
	}

	// DF E0 -> fnstsw ax.
	fnstsw := decodeHex(t, "DFE0", x86.Long)
	if fnstsw.Mnemonic != x86.MFnstsw || fnstsw.Operands[0].Reg != x86.AX {
		t.Errorf("got %s %+v, want fnstsw ax", fnstsw.Mnemonic, fnstsw.Operands)
	}

	// D9 FE -> fsin (transcendental group, no operands).
	fsin := decodeHex(t, "D9FE", x86.Long)
	if fsin.Mnemonic != x86.MFsin || len(fsin.Operands) != 0 {
		t.Errorf("got %s, want fsin", fsin.Mnemonic)
	}

	// D8 04 24 -> fadd dword [rsp] (memory half still works).
	fmem := decodeHex(t, "D80424", x86.Long)
	if fmem.Mnemonic != x86.MFadd || fmem.Operands[0].Mem.Bits != 32 {
		t.Errorf("got %s, want fadd m32", fmem.Mnemonic)
	}
}

func TestRead_ThreeDNowMemoryFormSuffixOrdering(t *testing.T) {
	// 0F 0F 04 24 BB -> pswapd mm0, [rsp]: the SIB byte and the suffix
	// both follow ModR/M, and the suffix is read last.
	inst := decodeHex(t, "0F0F0424BB", x86.Long)
	if inst.Mnemonic != x86.MPswapd {
		t.Fatalf("mnemonic = %s, want pswapd", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.GetMMX(0) {
		t.Errorf("dst = %s, want mm0", inst.Operands[0].Reg)
	}
	if inst.Operands[1].Mem.Base != x86.Get64Bit(4) {
		t.Errorf("mem base = %s, want rsp", inst.Operands[1].Mem.Base)
	}
}

func TestRead_Ext3ARoundpsAndPextrq(t *testing.T) {
	// 66 0F 3A 08 C1 03 -> roundps xmm0, xmm1, 3.
	round := decodeHex(t, "660F3A08C103", x86.Long)
	if round.Mnemonic != x86.MRoundps {
		t.Fatalf("mnemonic = %s, want roundps", round.Mnemonic)
	}
	if round.Operands[2].Imm != 3 {
		t.Errorf("imm = %d, want 3", round.Operands[2].Imm)
	}

	// 66 48 0F 3A 16 C0 01 -> pextrq rax, xmm0, 1 (REX.W selects the
	// 64-bit extract).
	pextrq := decodeHex(t, "66480F3A16C001", x86.Long)
	if pextrq.Mnemonic != x86.MPextrq {
		t.Fatalf("mnemonic = %s, want pextrq", pextrq.Mnemonic)
	}
	if pextrq.Operands[0].Reg != x86.Get64Bit(0) {
		t.Errorf("dst = %s, want rax", pextrq.Operands[0].Reg)
	}
}

func TestRead_MovbeAndCrc32ShareAnOpcode(t *testing.T) {
	// 0F 38 F0 06 -> movbe eax, [rsi]; F2 0F 38 F1 C8 -> crc32 ecx, eax.
	movbe := decodeHex(t, "0F38F006", x86.Long)
	if movbe.Mnemonic != x86.MMovbe {
		t.Fatalf("mnemonic = %s, want movbe", movbe.Mnemonic)
	}
	crc := decodeHex(t, "F20F38F1C8", x86.Long)
	if crc.Mnemonic != x86.MCrc32 {
		t.Fatalf("mnemonic = %s, want crc32", crc.Mnemonic)
	}
	if crc.Operands[0].Reg != x86.Get32Bit(1) || crc.Operands[1].Reg != x86.Get32Bit(0) {
		t.Errorf("operands = %+v, want ecx, eax", crc.Operands)
	}
}

func TestRead_VexYmmForms(t *testing.T) {
	// C5 F4 58 C2 -> vaddps ymm0, ymm1, ymm2 (VEX.L selects 256).
	inst := decodeHex(t, "C5F458C2", x86.Long)
	if inst.Mnemonic != x86.MVaddps {
		t.Fatalf("mnemonic = %s, want vaddps", inst.Mnemonic)
	}
	if inst.VectorLen != 256 {
		t.Errorf("vector length = %d, want 256", inst.VectorLen)
	}
	if inst.Operands[0].Reg != x86.GetYMM(0) || inst.Operands[1].Reg != x86.GetYMM(1) || inst.Operands[2].Reg != x86.GetYMM(2) {
		t.Errorf("operands = %+v, want ymm0, ymm1, ymm2", inst.Operands)
	}
}

func TestRead_VexShiftGroupUsesVvvvDestination(t *testing.T) {
	// C5 F1 71 D2 05 -> vpsrlw xmm1, xmm2, 5: the destination comes from
	// VEX.vvvv, the source from ModR/M.rm, selected by ModR/M.reg == 2.
	inst := decodeHex(t, "C5F171D205", x86.Long)
	if inst.Mnemonic != x86.MVpsrlw {
		t.Fatalf("mnemonic = %s, want vpsrlw", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.GetXMM(1) {
		t.Errorf("dst = %s, want xmm1 (from vvvv)", inst.Operands[0].Reg)
	}
	if inst.Operands[1].Reg != x86.GetXMM(2) {
		t.Errorf("src = %s, want xmm2", inst.Operands[1].Reg)
	}
	if inst.Operands[2].Imm != 5 {
		t.Errorf("imm = %d, want 5", inst.Operands[2].Imm)
	}
}

func TestRead_VexBlendvIs4Operand(t *testing.T) {
	// C4 E3 69 4A C1 30 -> vblendvps xmm0, xmm2, xmm1, xmm3: the fourth
	// operand register index is the high nibble of the trailing imm8.
	inst := decodeHex(t, "C4E3694AC130", x86.Long)
	if inst.Mnemonic != x86.MVblendvps {
		t.Fatalf("mnemonic = %s, want vblendvps", inst.Mnemonic)
	}
	if len(inst.Operands) != 4 {
		t.Fatalf("operands = %d, want 4", len(inst.Operands))
	}
	if inst.Operands[1].Reg != x86.GetXMM(2) {
		t.Errorf("vvvv = %s, want xmm2", inst.Operands[1].Reg)
	}
	if inst.Operands[3].Reg != x86.GetXMM(3) {
		t.Errorf("is4 = %s, want xmm3 (high nibble of 0x30)", inst.Operands[3].Reg)
	}
}

func TestRead_VexGatherVSIB(t *testing.T) {
	// C4 E2 69 92 04 0B -> vgatherdps xmm0, [rbx + xmm1*1], xmm2.
	inst := decodeHex(t, "C4E26992040B", x86.Long)
	if inst.Mnemonic != x86.MVgatherdps {
		t.Fatalf("mnemonic = %s, want vgatherdps", inst.Mnemonic)
	}
	mem := inst.Operands[1].Mem
	if mem.Base != x86.Get64Bit(3) {
		t.Errorf("base = %s, want rbx", mem.Base)
	}
	if mem.Index != x86.GetXMM(1) {
		t.Errorf("index = %s, want xmm1 (VSIB)", mem.Index)
	}
	if inst.Operands[2].Reg != x86.GetXMM(2) {
		t.Errorf("mask = %s, want xmm2", inst.Operands[2].Reg)
	}
}

func TestRead_VexRorxImmForm(t *testing.T) {
	// C4 E3 7B F0 C1 02 -> rorx eax, ecx, 2 (BMI2, F2-mandatory, map 3).
	inst := decodeHex(t, "C4E37BF0C102", x86.Long)
	if inst.Mnemonic != x86.MRorx {
		t.Fatalf("mnemonic = %s, want rorx", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.Get32Bit(0) || inst.Operands[1].Reg != x86.Get32Bit(1) {
		t.Errorf("operands = %+v, want eax, ecx", inst.Operands)
	}
	if inst.Operands[2].Imm != 2 {
		t.Errorf("imm = %d, want 2", inst.Operands[2].Imm)
	}
}

func TestRead_BmiWSelects64Bit(t *testing.T) {
	// C4 E2 E8 F7 C3 -> bextr rax, rbx, rdx (VEX.W=1 selects the 64-bit
	// GPR file; vvvv = rdx is the last operand for BEXTR).
	inst := decodeHex(t, "C4E2E8F7C3", x86.Long)
	if inst.Mnemonic != x86.MBextr {
		t.Fatalf("mnemonic = %s, want bextr", inst.Mnemonic)
	}
	if inst.Operands[0].Reg != x86.Get64Bit(0) {
		t.Errorf("dst = %s, want rax", inst.Operands[0].Reg)
	}
	if inst.Operands[1].Reg != x86.Get64Bit(3) {
		t.Errorf("src = %s, want rbx", inst.Operands[1].Reg)
	}
	if inst.Operands[2].Reg != x86.Get64Bit(2) {
		t.Errorf("vvvv = %s, want rdx", inst.Operands[2].Reg)
	}
}

func TestRead_MandatoryPrefixIsNotARepPrefix(t *testing.T) {
	// F3 0F 10 C1 -> movss xmm0, xmm1: the F3 byte is part of the opcode
	// identity, not a REP prefix, and must not surface as one.
	inst := decodeHex(t, "F30F10C1", x86.Long)
	if inst.Mnemonic != x86.MMovss {
		t.Fatalf("mnemonic = %s, want movss", inst.Mnemonic)
	}
	if inst.RepPrefix != x86.RepNone {
		t.Errorf("rep = %v, want RepNone (F3 consumed as mandatory prefix)", inst.RepPrefix)
	}
}

func TestRead_SixteenBitAddressing(t *testing.T) {
	// 8B 40 10 in Legacy mode -> mov ax, [bx + si + 0x10].
	inst := decodeHex(t, "8B4010", x86.Legacy)
	if inst.Mnemonic != x86.MMov {
		t.Fatalf("mnemonic = %s, want mov", inst.Mnemonic)
	}
	mem := inst.Operands[1].Mem
	if mem.Base != x86.Get16Bit(3) || mem.Index != x86.Get16Bit(6) {
		t.Errorf("mem = %+v, want [bx + si]", mem)
	}
	if mem.Disp != 0x10 {
		t.Errorf("disp = %#x, want 0x10", mem.Disp)
	}
}

func TestRead_AamAadXlat(t *testing.T) {
	aam := decodeHex(t, "D40A", x86.Legacy)
	if aam.Mnemonic != x86.MAam {
		t.Fatalf("mnemonic = %s, want aam", aam.Mnemonic)
	}
	xlat := decodeHex(t, "D7", x86.Legacy)
	if xlat.Mnemonic != x86.MXlat {
		t.Fatalf("mnemonic = %s, want xlat", xlat.Mnemonic)
	}
}
