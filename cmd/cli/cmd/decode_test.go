package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"

	"github.com/keurnel/x64dis/arch/x86"
)

func TestParseMode(t *testing.T) {
	cases := []struct {
		in   string
		want x86.Mode
	}{
		{"legacy", x86.Legacy},
		{"compat", x86.Compat},
		{"long", x86.Long},
		{"LONG", x86.Long},
	}
	for _, tc := range cases {
		got, err := parseMode(tc.in)
		if err != nil {
			t.Fatalf("parseMode(%q): unexpected error: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("parseMode(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestParseMode_Unknown(t *testing.T) {
	if _, err := parseMode("protected"); err == nil {
		t.Fatal("expected an error for an unknown mode")
	}
}

func TestReadDecodeInput_MissingFile(t *testing.T) {
	if _, err := readDecodeInput(filepath.Join(t.TempDir(), "does-not-exist.bin")); err == nil {
		t.Fatal("expected an error for a missing file")
	}
}

func TestReadDecodeInput_HexText(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "input.hex")
	if err := os.WriteFile(path, []byte("48 89\nc3"), 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	decodeHexFlag = true
	defer func() { decodeHexFlag = false }()

	buf, err := readDecodeInput(path)
	if err != nil {
		t.Fatalf("readDecodeInput: %v", err)
	}
	if !bytes.Equal(buf, []byte{0x48, 0x89, 0xc3}) {
		t.Errorf("got %x, want 4889c3", buf)
	}
}

func TestRunDecode_PrintsOneLinePerInstruction(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "input.bin")
	// mov rax, [rsi] ; ret
	if err := os.WriteFile(path, []byte{0x48, 0x8b, 0x06, 0xc3}, 0644); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}

	decodeModeFlag = "long"
	decodeSyntaxFlag = "intel"
	decodeLimitFlag = 0
	decodeHexFlag = false

	var out bytes.Buffer
	fakeCmd := &cobra.Command{}
	fakeCmd.SetOut(&out)
	fakeCmd.SetErr(&out)

	if err := runDecode(fakeCmd, []string{path}); err != nil {
		t.Fatalf("runDecode: %v", err)
	}

	lines := strings.Split(strings.TrimRight(out.String(), "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out.String())
	}
	if !strings.Contains(lines[0], "mov") || !strings.Contains(lines[0], "488b06") {
		t.Errorf("line 1 = %q, want mov .../488b06 prefix", lines[0])
	}
	if !strings.Contains(lines[1], "ret") {
		t.Errorf("line 2 = %q, want ret", lines[1])
	}
}
