// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"

	"github.com/wangxinyu2018/bsa/internal/limits"
)

// Opcode values, byte for byte identical to Bitcoin Core's script/script.h
// and to the teacher's txscript opcode space.
const (
	OP_0         = 0x00
	OP_DATA_1    = 0x01
	OP_DATA_75   = 0x4b
	OP_PUSHDATA1 = 0x4c
	OP_PUSHDATA2 = 0x4d
	OP_PUSHDATA4 = 0x4e
	OP_1NEGATE   = 0x4f
	OP_RESERVED  = 0x50
	OP_1         = 0x51
	OP_2         = 0x52
	OP_3         = 0x53
	OP_4         = 0x54
	OP_5         = 0x55
	OP_6         = 0x56
	OP_7         = 0x57
	OP_8         = 0x58
	OP_9         = 0x59
	OP_10        = 0x5a
	OP_11        = 0x5b
	OP_12        = 0x5c
	OP_13        = 0x5d
	OP_14        = 0x5e
	OP_15        = 0x5f
	OP_16        = 0x60

	OP_NOP      = 0x61
	OP_VER      = 0x62
	OP_IF       = 0x63
	OP_NOTIF    = 0x64
	OP_VERIF    = 0x65
	OP_VERNOTIF = 0x66
	OP_ELSE     = 0x67
	OP_ENDIF    = 0x68
	OP_VERIFY   = 0x69
	OP_RETURN   = 0x6a

	OP_TOALTSTACK   = 0x6b
	OP_FROMALTSTACK = 0x6c
	OP_2DROP        = 0x6d
	OP_2DUP         = 0x6e
	OP_3DUP         = 0x6f
	OP_2OVER        = 0x70
	OP_2ROT         = 0x71
	OP_2SWAP        = 0x72
	OP_IFDUP        = 0x73
	OP_DEPTH        = 0x74
	OP_DROP         = 0x75
	OP_DUP          = 0x76
	OP_NIP          = 0x77
	OP_OVER         = 0x78
	OP_PICK         = 0x79
	OP_ROLL         = 0x7a
	OP_ROT          = 0x7b
	OP_SWAP         = 0x7c
	OP_TUCK         = 0x7d

	OP_CAT    = 0x7e
	OP_SUBSTR = 0x7f
	OP_LEFT   = 0x80
	OP_RIGHT  = 0x81
	OP_SIZE   = 0x82

	OP_INVERT = 0x83
	OP_AND    = 0x84
	OP_OR     = 0x85
	OP_XOR    = 0x86
	OP_EQUAL  = 0x87
	OP_EQUALVERIFY = 0x88
	OP_RESERVED1   = 0x89
	OP_RESERVED2   = 0x8a

	OP_1ADD      = 0x8b
	OP_1SUB      = 0x8c
	OP_2MUL      = 0x8d
	OP_2DIV      = 0x8e
	OP_NEGATE    = 0x8f
	OP_ABS       = 0x90
	OP_NOT       = 0x91
	OP_0NOTEQUAL = 0x92
	OP_ADD       = 0x93
	OP_SUB       = 0x94
	OP_MUL       = 0x95
	OP_DIV       = 0x96
	OP_MOD       = 0x97
	OP_LSHIFT    = 0x98
	OP_RSHIFT    = 0x99

	OP_BOOLAND            = 0x9a
	OP_BOOLOR             = 0x9b
	OP_NUMEQUAL           = 0x9c
	OP_NUMEQUALVERIFY     = 0x9d
	OP_NUMNOTEQUAL        = 0x9e
	OP_LESSTHAN           = 0x9f
	OP_GREATERTHAN        = 0xa0
	OP_LESSTHANOREQUAL    = 0xa1
	OP_GREATERTHANOREQUAL = 0xa2
	OP_MIN                = 0xa3
	OP_MAX                = 0xa4
	OP_WITHIN             = 0xa5

	OP_RIPEMD160      = 0xa6
	OP_SHA1           = 0xa7
	OP_SHA256         = 0xa8
	OP_HASH160        = 0xa9
	OP_HASH256        = 0xaa
	OP_CODESEPARATOR  = 0xab
	OP_CHECKSIG       = 0xac
	OP_CHECKSIGVERIFY = 0xad
	OP_CHECKMULTISIG  = 0xae
	OP_CHECKMULTISIGVERIFY = 0xaf

	OP_NOP1               = 0xb0
	OP_CHECKLOCKTIMEVERIFY = 0xb1
	OP_CHECKSEQUENCEVERIFY = 0xb2
	OP_NOP4                = 0xb3
	OP_NOP5                = 0xb4
	OP_NOP6                = 0xb5
	OP_NOP7                = 0xb6
	OP_NOP8                = 0xb7
	OP_NOP9                = 0xb8
	OP_NOP10               = 0xb9

	// Tapscript-only.
	OP_CHECKSIGADD = 0xba

	OP_INVALIDOPCODE = 0xff
)

// opInfo describes one opcode byte, independent of version: its canonical
// name and, for pushes, how its length is encoded.
type opInfo struct {
	name   string
	length int // fixed length including the opcode byte; -1/-2/-4 mean a
	// trailing 1/2/4-byte length prefix follows the opcode byte.
}

const (
	lenPushData1 = -1
	lenPushData2 = -2
	lenPushData4 = -4
)

// opcodeNames is the base opcode table, shared by every ScriptVersion. Byte
// availability/disabling is version-specific and layered on top by
// isDisabled and isKnownInVersion below.
var opcodeNames = buildOpcodeNames()

func buildOpcodeNames() [256]opInfo {
	var t [256]opInfo
	for i := 0; i <= OP_DATA_75; i++ {
		if i == OP_0 {
			t[i] = opInfo{"OP_0", 1}
			continue
		}
		t[i] = opInfo{fmt.Sprintf("OP_DATA_%d", i), i + 1}
	}
	t[OP_PUSHDATA1] = opInfo{"OP_PUSHDATA1", lenPushData1}
	t[OP_PUSHDATA2] = opInfo{"OP_PUSHDATA2", lenPushData2}
	t[OP_PUSHDATA4] = opInfo{"OP_PUSHDATA4", lenPushData4}
	t[OP_1NEGATE] = opInfo{"OP_1NEGATE", 1}
	t[OP_RESERVED] = opInfo{"OP_RESERVED", 1}
	for i := OP_1; i <= OP_16; i++ {
		t[i] = opInfo{fmt.Sprintf("OP_%d", i-OP_1+1), 1}
	}

	named := map[byte]string{
		OP_NOP: "OP_NOP", OP_VER: "OP_VER", OP_IF: "OP_IF", OP_NOTIF: "OP_NOTIF",
		OP_VERIF: "OP_VERIF", OP_VERNOTIF: "OP_VERNOTIF", OP_ELSE: "OP_ELSE",
		OP_ENDIF: "OP_ENDIF", OP_VERIFY: "OP_VERIFY", OP_RETURN: "OP_RETURN",

		OP_TOALTSTACK: "OP_TOALTSTACK", OP_FROMALTSTACK: "OP_FROMALTSTACK",
		OP_2DROP: "OP_2DROP", OP_2DUP: "OP_2DUP", OP_3DUP: "OP_3DUP",
		OP_2OVER: "OP_2OVER", OP_2ROT: "OP_2ROT", OP_2SWAP: "OP_2SWAP",
		OP_IFDUP: "OP_IFDUP", OP_DEPTH: "OP_DEPTH", OP_DROP: "OP_DROP",
		OP_DUP: "OP_DUP", OP_NIP: "OP_NIP", OP_OVER: "OP_OVER",
		OP_PICK: "OP_PICK", OP_ROLL: "OP_ROLL", OP_ROT: "OP_ROT",
		OP_SWAP: "OP_SWAP", OP_TUCK: "OP_TUCK",

		OP_CAT: "OP_CAT", OP_SUBSTR: "OP_SUBSTR", OP_LEFT: "OP_LEFT",
		OP_RIGHT: "OP_RIGHT", OP_SIZE: "OP_SIZE",

		OP_INVERT: "OP_INVERT", OP_AND: "OP_AND", OP_OR: "OP_OR", OP_XOR: "OP_XOR",
		OP_EQUAL: "OP_EQUAL", OP_EQUALVERIFY: "OP_EQUALVERIFY",
		OP_RESERVED1: "OP_RESERVED1", OP_RESERVED2: "OP_RESERVED2",

		OP_1ADD: "OP_1ADD", OP_1SUB: "OP_1SUB", OP_2MUL: "OP_2MUL",
		OP_2DIV: "OP_2DIV", OP_NEGATE: "OP_NEGATE", OP_ABS: "OP_ABS",
		OP_NOT: "OP_NOT", OP_0NOTEQUAL: "OP_0NOTEQUAL", OP_ADD: "OP_ADD",
		OP_SUB: "OP_SUB", OP_MUL: "OP_MUL", OP_DIV: "OP_DIV", OP_MOD: "OP_MOD",
		OP_LSHIFT: "OP_LSHIFT", OP_RSHIFT: "OP_RSHIFT",

		OP_BOOLAND: "OP_BOOLAND", OP_BOOLOR: "OP_BOOLOR",
		OP_NUMEQUAL: "OP_NUMEQUAL", OP_NUMEQUALVERIFY: "OP_NUMEQUALVERIFY",
		OP_NUMNOTEQUAL: "OP_NUMNOTEQUAL", OP_LESSTHAN: "OP_LESSTHAN",
		OP_GREATERTHAN: "OP_GREATERTHAN", OP_LESSTHANOREQUAL: "OP_LESSTHANOREQUAL",
		OP_GREATERTHANOREQUAL: "OP_GREATERTHANOREQUAL", OP_MIN: "OP_MIN",
		OP_MAX: "OP_MAX", OP_WITHIN: "OP_WITHIN",

		OP_RIPEMD160: "OP_RIPEMD160", OP_SHA1: "OP_SHA1", OP_SHA256: "OP_SHA256",
		OP_HASH160: "OP_HASH160", OP_HASH256: "OP_HASH256",
		OP_CODESEPARATOR: "OP_CODESEPARATOR", OP_CHECKSIG: "OP_CHECKSIG",
		OP_CHECKSIGVERIFY: "OP_CHECKSIGVERIFY", OP_CHECKMULTISIG: "OP_CHECKMULTISIG",
		OP_CHECKMULTISIGVERIFY: "OP_CHECKMULTISIGVERIFY",

		OP_NOP1: "OP_NOP1", OP_CHECKLOCKTIMEVERIFY: "OP_CHECKLOCKTIMEVERIFY",
		OP_CHECKSEQUENCEVERIFY: "OP_CHECKSEQUENCEVERIFY", OP_NOP4: "OP_NOP4",
		OP_NOP5: "OP_NOP5", OP_NOP6: "OP_NOP6", OP_NOP7: "OP_NOP7",
		OP_NOP8: "OP_NOP8", OP_NOP9: "OP_NOP9", OP_NOP10: "OP_NOP10",

		OP_CHECKSIGADD:   "OP_CHECKSIGADD",
		OP_INVALIDOPCODE: "OP_INVALIDOPCODE",
	}
	for b, name := range named {
		t[b] = opInfo{name, 1}
	}

	// 0xbb..0xfe are OP_SUCCESS80..OP_SUCCESS254-eligible bytes outside
	// tapscript's small set of named opcodes above; Bitcoin Core's
	// tapscript rules treat every currently-undefined opcode byte as
	// OP_SUCCESSx. Name them generically here; IsSuccessOpcode below
	// decides which bytes actually behave as OP_SUCCESS for a version.
	for i := 0; i < 256; i++ {
		if t[i].name == "" {
			t[i] = opInfo{fmt.Sprintf("OP_UNKNOWN_0x%02x", i), 1}
		}
	}
	return t
}

// disabledLegacy is the consensus-disabled opcode set for Legacy/SegWitV0,
// per spec.md §4.3.
var disabledLegacy = map[byte]bool{
	OP_CAT: true, OP_SUBSTR: true, OP_LEFT: true, OP_RIGHT: true,
	OP_INVERT: true, OP_AND: true, OP_OR: true, OP_XOR: true,
	OP_2MUL: true, OP_2DIV: true, OP_MUL: true, OP_DIV: true, OP_MOD: true,
	OP_LSHIFT: true, OP_RSHIFT: true,
}

// alwaysIllegal are opcodes that fail unconditionally the moment they are
// decoded into an executing path, even though they are not in the
// consensus "disabled" set (they are reserved words, not arithmetic ops).
var alwaysIllegal = map[byte]bool{
	OP_VERIF: true, OP_VERNOTIF: true,
}

// tapscript has no consensus-disabled opcode set in the legacy/v0 sense:
// BIP342 instead routes every opcode byte it does not define to
// OP_SUCCESS (IsSuccessOpcode below). The one rejection tapscript keeps is
// CHECKMULTISIG(VERIFY), absent from the table per spec.md Open Question (b).

// IsPush reports whether b is a push opcode (including OP_0/OP_1NEGATE/OP_1..OP_16
// which push directly without a payload byte-string). OP_RESERVED (0x50) sits
// between OP_1NEGATE and OP_1 but is not itself a push.
func IsPush(b byte) bool {
	if b == OP_RESERVED {
		return false
	}
	return b <= OP_16
}

// isDataPush reports whether b pushes an explicit payload (excludes the
// small-integer pushes OP_0, OP_1NEGATE, OP_1..OP_16).
func isDataPush(b byte) bool {
	return b >= OP_DATA_1 && b <= OP_PUSHDATA4
}

// isDisabled reports whether opcode b is disabled under version v. Disabled
// opcodes fail the whole script even when encountered in a non-executed
// conditional branch (spec.md §4.3, §9 "Conditional-branch skipping").
func isDisabled(b byte, v limits.ScriptVersion) bool {
	if v == limits.TapscriptV1 {
		return false
	}
	return disabledLegacy[b]
}

// isKnownInVersion reports whether byte b names a real opcode under version
// v. Legacy/v0 know every byte up to OP_NOP10 and none above it (so
// OP_CHECKSIGADD is unknown there). Tapscript's disabled set is "absent",
// not "present but rejected": an
// absent opcode decodes successfully as an OP_SUCCESS trigger (per BIP342),
// except CHECKMULTISIG(VERIFY) which tapscript rejects at decode time
// (spec.md Open Question (b)).
func isKnownInVersion(b byte, v limits.ScriptVersion) bool {
	if v != limits.TapscriptV1 {
		// Legacy/v0 define every byte below OP_CHECKSIGADD and nothing from
		// it upward.
		return b < OP_CHECKSIGADD
	}
	if b == OP_CHECKMULTISIG || b == OP_CHECKMULTISIGVERIFY {
		return false
	}
	return true
}

// IsSuccessOpcode reports whether byte b is an OP_SUCCESSx trigger under
// tapscript: BIP342 §"Rules for signature opcodes" enumerates the exact set
// of opcode bytes not otherwise defined as OP_SUCCESS80..254 (bytes 80, 98,
// 126-129, 131-134, 137-138, 141-142, 149-153, 187-254), per spec.md §4.3
// ("Tapscript OP_SUCCESS*"). Note 0xba (OP_CHECKSIGADD) falls just below
// the final range and is a real opcode, not OP_SUCCESS.
func IsSuccessOpcode(b byte) bool {
	switch {
	case b == 0x50:
		return true
	case b == 0x62:
		return true
	case b >= 0x7e && b <= 0x81:
		return true
	case b >= 0x83 && b <= 0x86:
		return true
	case b >= 0x89 && b <= 0x8a:
		return true
	case b >= 0x8d && b <= 0x8e:
		return true
	case b >= 0x95 && b <= 0x99:
		return true
	case b >= 0xbb && b <= 0xfe:
		return true
	default:
		return false
	}
}

// OpName returns the canonical name for opcode byte b.
func OpName(b byte) string {
	return opcodeNames[b].name
}

// opcodeByName is OpName's inverse, built lazily from the same table so the
// two can never drift apart; consumed by the asm assembler (spec.md §6).
var opcodeByName = buildOpcodeByName()

func buildOpcodeByName() map[string]byte {
	m := make(map[string]byte, 256)
	for i := 0; i < 256; i++ {
		name := opcodeNames[i].name
		if _, exists := m[name]; !exists {
			m[name] = byte(i)
		}
	}
	return m
}

// LookupOpcode returns the opcode byte named by name (e.g. "OP_CHECKSIG"),
// and reports whether that name is known.
func LookupOpcode(name string) (byte, bool) {
	b, ok := opcodeByName[name]
	return b, ok
}
