package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangxinyu2018/bsa/internal/limits"
)

func TestParseVersion(t *testing.T) {
	cases := map[string]limits.ScriptVersion{
		"legacy":       limits.Legacy,
		"segwit-v0":    limits.SegWitV0,
		"segwitv0":     limits.SegWitV0,
		"tapscript-v1": limits.TapscriptV1,
		"tapscriptv1":  limits.TapscriptV1,
	}
	for in, want := range cases {
		v, err := parseVersion(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, v, in)
	}
}

func TestParseVersionRejectsUnknown(t *testing.T) {
	_, err := parseVersion("segwit-v99")
	assert.Error(t, err)
}

func TestParseRuleset(t *testing.T) {
	v, err := parseRuleset("consensus")
	require.NoError(t, err)
	assert.Equal(t, limits.ConsensusOnly, v)

	v, err = parseRuleset("consensus+policy")
	require.NoError(t, err)
	assert.Equal(t, limits.ConsensusAndPolicy, v)

	v, err = parseRuleset("policy")
	require.NoError(t, err)
	assert.Equal(t, limits.ConsensusAndPolicy, v)
}

func TestParseRulesetRejectsUnknown(t *testing.T) {
	_, err := parseRuleset("nonsense")
	assert.Error(t, err)
}

// resetGlobals restores the package-level flag/cache state the root command
// mutates, so tests don't leak into one another.
func resetGlobals(t *testing.T) {
	t.Helper()
	versionFlag = "legacy"
	rulesetFlag = "consensus"
	jsonOutput = false
	parallelFlag = false
	fromSPKFlag = ""
	anyInputFailed = false
	cache = newAnalysisCache(256)
}

func TestRunAllHexSubcommandPrintsReport(t *testing.T) {
	resetGlobals(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"hex", "51ac"}) // OP_1 OP_CHECKSIG-shaped single push + checksig

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "script: 51ac")
	assert.False(t, anyInputFailed)
}

func TestRunAllAsmSubcommandPrintsReport(t *testing.T) {
	resetGlobals(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"asm", "OP_DUP OP_DROP OP_1"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), "script: OP_DUP OP_DROP OP_1")
}

func TestRunAllReportsPerInputFailureWithoutStoppingBatch(t *testing.T) {
	resetGlobals(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"hex", "zz", "51"})

	require.NoError(t, root.Execute())
	s := out.String()
	assert.Contains(t, s, "script: zz\n  error:")
	assert.Contains(t, s, "script: 51")
	assert.True(t, anyInputFailed)
}

func TestRunAllJSONOutput(t *testing.T) {
	resetGlobals(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--json", "hex", "51"})

	require.NoError(t, root.Execute())
	assert.Contains(t, out.String(), `"max_witness_stack_depth"`)
}

func TestRunAllFromSPKInfersVersion(t *testing.T) {
	resetGlobals(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	// A P2WSH scriptPubKey: OP_0 <32-byte hash>.
	spk := "0020" + stringRepeat("ab", 32)
	root.SetArgs([]string{"--from-spk", spk, "hex", "51"})

	require.NoError(t, root.Execute())
	assert.False(t, anyInputFailed)
}

func TestRunAllFromSPKRejectsNonWitnessScript(t *testing.T) {
	resetGlobals(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--from-spk", "76a9", "hex", "51"})

	assert.Error(t, root.Execute())
}

func TestParseVersionFlagRejectedByRunAll(t *testing.T) {
	resetGlobals(t)
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetArgs([]string{"--version", "bogus", "hex", "51"})

	assert.Error(t, root.Execute())
}

func stringRepeat(s string, n int) string {
	out := make([]byte, 0, len(s)*n)
	for i := 0; i < n; i++ {
		out = append(out, s...)
	}
	return string(out)
}
