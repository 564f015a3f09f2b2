package diagnostics

import "fmt"

// Location identifies a position within a decoded byte stream. It is a value
// type — safe to copy and compare. Unlike a text assembler, the decoder has
// no line/column notion; the only coordinate it can name is a byte offset
// into the buffer it was given, plus the opcode byte that triggered the
// entry.
type Location struct {
	offset int  // Byte offset of the start of the instruction being decoded.
	opcode byte // The opcode byte active when the entry was recorded.
}

// At creates a Location from a byte offset and the opcode byte being
// processed at that offset.
func At(offset int, opcode byte) Location {
	return Location{offset: offset, opcode: opcode}
}

// Offset returns the byte offset of the location.
func (l Location) Offset() int { return l.offset }

// Opcode returns the opcode byte active at the location.
func (l Location) Opcode() byte { return l.opcode }

// String returns a human-readable representation of the location, e.g.
// "+0x10 (opcode 0x2a)".
func (l Location) String() string {
	return fmt.Sprintf("+0x%x (opcode 0x%02x)", l.offset, l.opcode)
}
