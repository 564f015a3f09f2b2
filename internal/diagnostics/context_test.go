package diagnostics

import "testing"

func TestRecorder_RecordsInInsertionOrder(t *testing.T) {
	r := NewRecorder()
	r.SetStage("operand-resolve")

	r.Warning(At(4, 0x0F), "unsupported operand kind RegYmmMem256, substituting r15")
	r.Info(At(9, 0x90), "0x90 resolved to PAUSE under rep prefix")

	entries := r.Entries()
	if len(entries) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(entries))
	}
	if entries[0].Severity() != SeverityWarning {
		t.Errorf("expected first entry to be a warning, got %s", entries[0].Severity())
	}
	if entries[0].Stage() != "operand-resolve" {
		t.Errorf("expected stage 'operand-resolve', got %q", entries[0].Stage())
	}
	if entries[1].Severity() != SeverityInfo {
		t.Errorf("expected second entry to be info, got %s", entries[1].Severity())
	}
}

func TestRecorder_WarningsFiltersBySeverity(t *testing.T) {
	r := NewRecorder()
	r.Warning(At(0, 0xC5), "placeholder register substituted")
	r.Info(At(1, 0x90), "informational only")
	r.Error(At(2, 0x00), "blank table slot")

	warnings := r.Warnings()
	if len(warnings) != 1 {
		t.Fatalf("expected 1 warning, got %d", len(warnings))
	}
	if warnings[0].Message() != "placeholder register substituted" {
		t.Errorf("unexpected warning message: %q", warnings[0].Message())
	}

	if r.Count() != 3 {
		t.Errorf("expected 3 total entries, got %d", r.Count())
	}
}

func TestEntry_WithHintChains(t *testing.T) {
	r := NewRecorder()
	e := r.Warning(At(0, 0xC4), "unsupported far-pointer memory form").WithHint("cross-check against AMD vol. 3")

	if e.Hint() != "cross-check against AMD vol. 3" {
		t.Errorf("expected hint to be set, got %q", e.Hint())
	}
	want := "warning [] +0x0 (opcode 0xc4): unsupported far-pointer memory form"
	if e.String() != want {
		t.Errorf("String() = %q, want %q", e.String(), want)
	}
}
