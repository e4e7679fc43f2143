// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package asm implements the assembly-style textual dialect spec.md §6
// specifies as the analyzer's out-of-scope textual collaborator: bare
// OP_NAME tokens name opcodes, <hex> tokens push a literal byte string using
// the minimal push opcode, decimal integers push the minimal script-encoded
// integer, and "#" begins a comment that runs to end of line. Assemble and
// Disassemble round-trip through script.Decode's canonical opcode list
// (spec.md §8).
package asm

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"

	"github.com/wangxinyu2018/bsa/script"
)

// ParseError reports the token and its index (0-based, among whitespace-
// separated tokens after comment-stripping) that failed to assemble.
type ParseError struct {
	Token string
	Pos   int
	Msg   string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("asm: token %q at index %d: %s", e.Token, e.Pos, e.Msg)
}

// Assemble tokenizes src and emits the raw script bytes it describes. The
// result is handed to script.Decode exactly like a hex-sourced script; asm
// itself performs no opcode-availability or consensus validation, leaving
// that entirely to the decoder (spec.md §6 "round-trip through the
// decoder's canonical opcode list").
func Assemble(src string) ([]byte, error) {
	var out []byte
	for pos, tok := range tokenize(src) {
		switch {
		case strings.HasPrefix(tok, "<") && strings.HasSuffix(tok, ">"):
			payload, err := hex.DecodeString(tok[1 : len(tok)-1])
			if err != nil {
				return nil, &ParseError{Token: tok, Pos: pos, Msg: "invalid hex literal: " + err.Error()}
			}
			out = append(out, encodeMinimalPush(payload)...)

		case isDecimalLiteral(tok):
			n, err := strconv.ParseInt(tok, 10, 64)
			if err != nil {
				return nil, &ParseError{Token: tok, Pos: pos, Msg: "integer out of range: " + err.Error()}
			}
			out = append(out, encodeMinimalPush(script.MinimalNumberBytes(n))...)

		default:
			b, ok := script.LookupOpcode(strings.ToUpper(tok))
			if !ok {
				return nil, &ParseError{Token: tok, Pos: pos, Msg: "unknown opcode"}
			}
			out = append(out, b)
		}
	}
	return out, nil
}

// Disassemble renders a decoded instruction stream back into the asm
// dialect. When every push in ops is minimal, Assemble(Disassemble(ops))
// decodes to the same Opcode sequence (spec.md §8's round-trip invariant).
// A non-minimal push comes back in its minimal form, so its Value differs
// (a one-byte payload of 1..16 or 0x81 becomes OP_1..OP_16 or OP_1NEGATE).
func Disassemble(ops []script.Opcode) string {
	parts := make([]string, len(ops))
	for i, op := range ops {
		if op.IsDataPush() {
			parts[i] = "<" + hex.EncodeToString(op.Data) + ">"
			continue
		}
		parts[i] = op.Name()
	}
	return strings.Join(parts, " ")
}

// tokenize splits src on whitespace, stripping "#"-to-end-of-line comments.
func tokenize(src string) []string {
	var tokens []string
	for _, line := range strings.Split(src, "\n") {
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		tokens = append(tokens, strings.Fields(line)...)
	}
	return tokens
}

func isDecimalLiteral(tok string) bool {
	s := tok
	if strings.HasPrefix(s, "-") {
		s = s[1:]
	}
	if s == "" {
		return false
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

// encodeMinimalPush returns the shortest opcode sequence that pushes payload
// onto the stack, matching script.Decode's own minimal-push detection: the
// small-integer opcodes for {}, {1..16}, and {0x81}, otherwise a
// length-prefixed direct push or PUSHDATA1/2/4 depending on size.
func encodeMinimalPush(payload []byte) []byte {
	switch {
	case len(payload) == 0:
		return []byte{script.OP_0}
	case len(payload) == 1 && payload[0] >= 1 && payload[0] <= 16:
		return []byte{byte(script.OP_1) + payload[0] - 1}
	case len(payload) == 1 && payload[0] == 0x81:
		return []byte{script.OP_1NEGATE}
	case len(payload) <= script.OP_DATA_75:
		return append([]byte{byte(len(payload))}, payload...)
	case len(payload) <= 0xff:
		return append([]byte{script.OP_PUSHDATA1, byte(len(payload))}, payload...)
	case len(payload) <= 0xffff:
		n := len(payload)
		return append([]byte{script.OP_PUSHDATA2, byte(n), byte(n >> 8)}, payload...)
	default:
		n := len(payload)
		return append([]byte{script.OP_PUSHDATA4, byte(n), byte(n >> 8), byte(n >> 16), byte(n >> 24)}, payload...)
	}
}
