package limits

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptVersionString(t *testing.T) {
	cases := []struct {
		v    ScriptVersion
		want string
	}{
		{Legacy, "legacy"},
		{SegWitV0, "segwit-v0"},
		{TapscriptV1, "tapscript-v1"},
		{ScriptVersion(99), "unknown"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.v.String())
	}
}

func TestRuleSetString(t *testing.T) {
	assert.Equal(t, "consensus-only", ConsensusOnly.String())
	assert.Equal(t, "consensus+policy", ConsensusAndPolicy.String())
}

func TestMaxOpsPerScript(t *testing.T) {
	assert.Equal(t, MaxOpsPerScriptLegacy, MaxOpsPerScript(Legacy))
	assert.Equal(t, MaxOpsPerScriptLegacy, MaxOpsPerScript(SegWitV0))
	assert.Equal(t, 0, MaxOpsPerScript(TapscriptV1))
}

func TestMaxScriptSizeFor(t *testing.T) {
	assert.Equal(t, MaxScriptSize, MaxScriptSizeFor(Legacy))
	assert.Equal(t, MaxScriptSize, MaxScriptSizeFor(SegWitV0))
	assert.Equal(t, MaxScriptSizeTapscript, MaxScriptSizeFor(TapscriptV1))
}

func TestMaxNumericOperandBytes(t *testing.T) {
	assert.Equal(t, MaxNumericOperandBytesLegacy, MaxNumericOperandBytes(Legacy))
	assert.Equal(t, MaxNumericOperandBytesTapscript, MaxNumericOperandBytes(TapscriptV1))
}
