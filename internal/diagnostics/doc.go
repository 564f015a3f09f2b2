// Package diagnostics provides a passive, append-only data structure that
// accumulates diagnostic entries as the decoder walks a byte stream. It does
// not perform I/O or formatting — a caller (the CLI, or a test) reads the
// recorded entries and decides what to do with them.
//
// The decoder core never returns an error from its public entry point; the
// only failure signal it produces is the sentinel INVALID mnemonic.
// diagnostics.Recorder exists for the one known limitation that is not a
// bug: a recognised-but-unsupported operand kind, where the decoder still
// returns a well-formed (if imprecise) instruction and additionally wants
// to tell someone about it.
package diagnostics
