package x86

// RegisterClass partitions the register file the decoder can name. Two
// classes are sentinels rather than real registers: None (a legal "absent"
// slot, e.g. a memory reference with no base) and Invalid (a decoding
// poison value).
type RegisterClass int

const (
	RegNone RegisterClass = iota
	RegInvalid
	RegGPR        // AL/AX/EAX/RAX and friends, and SPL/BPL/SIL/DIL/R8B.. under REX
	RegGPRHigh8   // AH/CH/DH/BH — only reachable without a REX prefix
	RegIP         // IP/EIP/RIP — display-only, never a decode target itself
	RegSegment    // ES/CS/SS/DS/FS/GS
	RegControl    // CR0..CR15
	RegDebug      // DR0..DR15
	RegX87        // ST(0)..ST(7)
	RegMMX        // MMX0..MMX7
	RegXMM        // XMM0..XMM15
	RegYMM        // YMM0..YMM15
)

// Register is an immutable (class, index, width) tuple. Two registers are
// the same register iff their (Class, Index, Width) agree; the textual
// name returned by Name() is display-only and is deliberately not an
// independent identity component — it is a pure function of the other
// three fields.
type Register struct {
	Class RegisterClass
	Index int // 0..15; meaningless (and left at 0) for None/Invalid.
	Width int // bits.
}

// RegNoneVal and RegInvalidVal are the two sentinel values. NONE means "no
// register slot here" (a legal value, e.g. a memory ref with no index).
// INVALID is a poison value produced when an index or class can't be
// resolved; it still renders (as "??") rather than panicking.
var (
	RNone    = Register{Class: RegNone}
	RInvalid = Register{Class: RegInvalid}
)

// Present reports whether the register is neither NONE nor INVALID.
func (r Register) Present() bool {
	return r.Class != RegNone && r.Class != RegInvalid
}

// Name returns the canonical lower-case display name of the register. It is
// computed, not stored, so that two Registers with the same (Class, Index,
// Width) are always rendered identically.
func (r Register) Name() string {
	switch r.Class {
	case RegNone:
		return ""
	case RegInvalid:
		return "??"
	case RegGPR:
		return gprName(r.Index, r.Width)
	case RegGPRHigh8:
		return gprHigh8Name(r.Index)
	case RegIP:
		return ipName(r.Width)
	case RegSegment:
		return segmentNames[r.Index%len(segmentNames)]
	case RegControl:
		return "cr" + itoa(r.Index)
	case RegDebug:
		return "dr" + itoa(r.Index)
	case RegX87:
		return "st(" + itoa(r.Index) + ")"
	case RegMMX:
		return "mm" + itoa(r.Index)
	case RegXMM:
		return "xmm" + itoa(r.Index)
	case RegYMM:
		return "ymm" + itoa(r.Index)
	default:
		return "??"
	}
}

func (r Register) String() string { return r.Name() }

// --- GPR name tables, one row per index 0..15, one column per width. ---

var gpr8Low = [16]string{
	"al", "cl", "dl", "bl", "spl", "bpl", "sil", "dil",
	"r8b", "r9b", "r10b", "r11b", "r12b", "r13b", "r14b", "r15b",
}

var gpr16 = [16]string{
	"ax", "cx", "dx", "bx", "sp", "bp", "si", "di",
	"r8w", "r9w", "r10w", "r11w", "r12w", "r13w", "r14w", "r15w",
}

var gpr32 = [16]string{
	"eax", "ecx", "edx", "ebx", "esp", "ebp", "esi", "edi",
	"r8d", "r9d", "r10d", "r11d", "r12d", "r13d", "r14d", "r15d",
}

var gpr64 = [16]string{
	"rax", "rcx", "rdx", "rbx", "rsp", "rbp", "rsi", "rdi",
	"r8", "r9", "r10", "r11", "r12", "r13", "r14", "r15",
}

var gprHigh8 = [4]string{"ah", "ch", "dh", "bh"}

var segmentNames = [6]string{"es", "cs", "ss", "ds", "fs", "gs"}

func gprName(index, width int) string {
	if index < 0 || index > 15 {
		return "??"
	}
	switch width {
	case 8:
		return gpr8Low[index]
	case 16:
		return gpr16[index]
	case 32:
		return gpr32[index]
	case 64:
		return gpr64[index]
	default:
		return "??"
	}
}

func gprHigh8Name(index int) string {
	if index < 4 || index > 7 {
		return "??"
	}
	return gprHigh8[index-4]
}

func ipName(width int) string {
	switch width {
	case 16:
		return "ip"
	case 32:
		return "eip"
	case 64:
		return "rip"
	default:
		return "??"
	}
}

// itoa avoids pulling in strconv for a handful of single/double digit
// register indices.
func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	if n < 0 {
		return "-" + itoa(-n)
	}
	var buf [4]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[i:])
}

// --- Lookup helpers (component B). Every one yields RInvalid for an
// out-of-range index; none allocate. ---

// Get8BitLegacy is the pre-REX 8-bit GPR lookup: indices 0..3 are
// AL/CL/DL/BL, and indices 4..7 are the high-byte registers AH/CH/DH/BH.
// Only valid for index 0..7 — there is no legacy encoding for 8..15.
func Get8BitLegacy(index int) Register {
	if index < 0 || index > 7 {
		return RInvalid
	}
	if index < 4 {
		return Register{Class: RegGPR, Index: index, Width: 8}
	}
	return Register{Class: RegGPRHigh8, Index: index, Width: 8}
}

// Get8BitExtended is the REX-present 8-bit GPR lookup: indices 4..7 select
// SPL/BPL/SIL/DIL (the high-byte registers become unreachable), and 8..15
// select R8B..R15B.
func Get8BitExtended(index int) Register {
	if index < 0 || index > 15 {
		return RInvalid
	}
	return Register{Class: RegGPR, Index: index, Width: 8}
}

// Get16Bit, Get32Bit, Get64Bit look up a GPR of the given width by its
// 0..15 encoding.
func Get16Bit(index int) Register { return getGPR(index, 16) }
func Get32Bit(index int) Register { return getGPR(index, 32) }
func Get64Bit(index int) Register { return getGPR(index, 64) }

func getGPR(index, width int) Register {
	if index < 0 || index > 15 {
		return RInvalid
	}
	return Register{Class: RegGPR, Index: index, Width: width}
}

// GetSegment looks up one of the 6 segment registers (ES,CS,SS,DS,FS,GS).
func GetSegment(index int) Register {
	if index < 0 || index > 5 {
		return RInvalid
	}
	return Register{Class: RegSegment, Index: index, Width: 16}
}

// GetControl looks up one of the 16 control registers.
func GetControl(index int) Register {
	if index < 0 || index > 15 {
		return RInvalid
	}
	return Register{Class: RegControl, Index: index, Width: 64}
}

// GetDebug looks up one of the 16 debug registers.
func GetDebug(index int) Register {
	if index < 0 || index > 15 {
		return RInvalid
	}
	return Register{Class: RegDebug, Index: index, Width: 64}
}

// GetX87 looks up one of the 8 x87 stack registers ST(0)..ST(7).
func GetX87(index int) Register {
	if index < 0 || index > 7 {
		return RInvalid
	}
	return Register{Class: RegX87, Index: index, Width: 80}
}

// GetMMX looks up one of the 8 64-bit MMX registers.
func GetMMX(index int) Register {
	if index < 0 || index > 7 {
		return RInvalid
	}
	return Register{Class: RegMMX, Index: index, Width: 64}
}

// GetXMM looks up one of the 16 128-bit XMM registers.
func GetXMM(index int) Register {
	if index < 0 || index > 15 {
		return RInvalid
	}
	return Register{Class: RegXMM, Index: index, Width: 128}
}

// GetYMM looks up one of the 16 256-bit YMM registers.
func GetYMM(index int) Register {
	if index < 0 || index > 15 {
		return RInvalid
	}
	return Register{Class: RegYMM, Index: index, Width: 256}
}

// Named constants for the implicit-operand registers the tables and the
// operand resolver refer to directly (AL, DX, CS, ST0, ST1, XMM0, ...).
var (
	AL  = Register{Class: RegGPR, Index: 0, Width: 8}
	CL  = Register{Class: RegGPR, Index: 1, Width: 8}
	AX  = Register{Class: RegGPR, Index: 0, Width: 16}
	CX  = Register{Class: RegGPR, Index: 1, Width: 16}
	DX  = Register{Class: RegGPR, Index: 2, Width: 16}
	EAX = Register{Class: RegGPR, Index: 0, Width: 32}
	ECX = Register{Class: RegGPR, Index: 1, Width: 32}
	RAX = Register{Class: RegGPR, Index: 0, Width: 64}

	RIP = Register{Class: RegIP, Index: 0, Width: 64}
	EIP = Register{Class: RegIP, Index: 0, Width: 32}

	CS = Register{Class: RegSegment, Index: 1, Width: 16}
	DS = Register{Class: RegSegment, Index: 3, Width: 16}
	ES = Register{Class: RegSegment, Index: 0, Width: 16}
	FS = Register{Class: RegSegment, Index: 4, Width: 16}
	GS = Register{Class: RegSegment, Index: 5, Width: 16}
	SS = Register{Class: RegSegment, Index: 2, Width: 16}

	XMM0 = Register{Class: RegXMM, Index: 0, Width: 128}
	ST0  = Register{Class: RegX87, Index: 0, Width: 80}
	ST1  = Register{Class: RegX87, Index: 1, Width: 80}
)
