// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package limits holds the consensus and policy constants that bound a
// script analysis, the way mass-core's config package holds chain-wide
// parameters (block size, subsidy schedule) as plain exported values.
package limits

// ScriptVersion selects the opcode table, numeric limits, and signature
// policy in effect for an analysis.
type ScriptVersion int

const (
	Legacy ScriptVersion = iota
	SegWitV0
	TapscriptV1
)

func (v ScriptVersion) String() string {
	switch v {
	case Legacy:
		return "legacy"
	case SegWitV0:
		return "segwit-v0"
	case TapscriptV1:
		return "tapscript-v1"
	default:
		return "unknown"
	}
}

// RuleSet selects whether standardness/policy rules layer on top of bare
// consensus rules.
type RuleSet int

const (
	ConsensusOnly RuleSet = iota
	ConsensusAndPolicy
)

func (r RuleSet) String() string {
	if r == ConsensusAndPolicy {
		return "consensus+policy"
	}
	return "consensus-only"
}

// Consensus-wide constants shared across versions, lifted from mass-core's
// txscript constants of the same meaning (MaxOpsPerScript, maxScriptSize,
// MaxScriptElementSize, maxStackSize).
const (
	MaxOpsPerScriptLegacy = 201
	MaxScriptSize         = 10000
	MaxScriptElementSize  = 520
	MaxStackSize          = 1000
	MaxIfDepth            = 1000

	// MaxScriptSizeTapscript relaxes the byte cap: tapscript leaves are
	// bound by the overall witness weight budget, not a flat script-size
	// constant, so the analyzer uses a generous but finite cap to bound
	// its own work (spec.md §1 Non-goals: no adversarial-performance
	// target, only a finite one).
	MaxScriptSizeTapscript = 40000

	// MaxNumericOperandBytesLegacy is the 4-byte minimal-encoding ceiling
	// for legacy/v0 arithmetic (spec.md §3, ScriptVersion).
	MaxNumericOperandBytesLegacy = 4

	// MaxNumericOperandBytesTapscript widens arithmetic for CHECKSIGADD's
	// counter and other tapscript-only numeric contexts.
	MaxNumericOperandBytesTapscript = 4

	// MaxMultisigKeys bounds CHECKMULTISIG's N operand.
	MaxMultisigKeys = 20

	// MaxPathExplosion is the analyzer's own explicit fork-count budget
	// (spec.md §4.4), independent of consensus script-length limits.
	MaxPathExplosion = 100000
)

// MaxOpsPerScript returns the non-push opcode-count ceiling for a version.
// Tapscript has no such ceiling — BIP342 replaces it with a sigops budget
// (50 plus one per witness byte at spend time), which this analyzer does
// not enforce (DESIGN.md records the omission) since it has no concrete
// witness to weigh — so it is reported as 0 meaning "unbounded by opcode
// count".
func MaxOpsPerScript(v ScriptVersion) int {
	if v == TapscriptV1 {
		return 0
	}
	return MaxOpsPerScriptLegacy
}

// MaxScriptSizeFor returns the byte-length ceiling for a version.
func MaxScriptSizeFor(v ScriptVersion) int {
	if v == TapscriptV1 {
		return MaxScriptSizeTapscript
	}
	return MaxScriptSize
}

// MaxNumericOperandBytes returns the script-number width ceiling for a
// version's arithmetic opcodes.
func MaxNumericOperandBytes(v ScriptVersion) int {
	if v == TapscriptV1 {
		return MaxNumericOperandBytesTapscript
	}
	return MaxNumericOperandBytesLegacy
}
