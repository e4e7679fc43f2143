// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/wangxinyu2018/bsa/internal/limits"
)

// ClassifyWitnessProgram inspects a scriptPubKey and reports the
// ScriptVersion that a script spending it should be analyzed under,
// mirroring the teacher's isWitnessProgram/extractWitnessProgramInfo
// pattern: OP_0 <20-or-32-byte program> is a v0 witness program,
// OP_1 <32-byte program> is a v1 (taproot/tapscript) witness program. It
// does not extract or decode the spending script itself — a scriptPubKey
// only commits to a hash or a key, never to the executed script — so this
// is purely a ScriptVersion-selection affordance for an embedder that has
// a scriptPubKey on hand but must supply the actual witnessScript/tapscript
// leaf separately (spec.md §6 "--from-spk").
func ClassifyWitnessProgram(spk []byte) (version limits.ScriptVersion, ok bool) {
	if len(spk) < 4 || len(spk) > 42 {
		return 0, false
	}
	if int(spk[1]) != len(spk)-2 {
		return 0, false
	}
	programLen := len(spk) - 2

	switch {
	case spk[0] == OP_0:
		if programLen == 20 || programLen == 32 {
			return limits.SegWitV0, true
		}
		return 0, false
	case spk[0] == OP_1:
		if programLen == 32 {
			return limits.TapscriptV1, true
		}
		return 0, false
	case spk[0] > OP_1 && spk[0] <= OP_16:
		// Future witness versions (2..16) are defined by BIP141 to decode
		// cleanly but are not modeled by any ScriptVersion this analyzer
		// knows how to evaluate.
		return 0, false
	default:
		return 0, false
	}
}
