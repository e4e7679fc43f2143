package script

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wangxinyu2018/bsa/internal/limits"
)

func TestDecodeSimplePushesAndOps(t *testing.T) {
	raw := []byte{OP_DUP, OP_HASH160, 0x14}
	raw = append(raw, bytes.Repeat([]byte{0xaa}, 20)...)
	raw = append(raw, OP_EQUALVERIFY, OP_CHECKSIG)

	ops, err := Decode(raw, limits.Legacy)
	require.NoError(t, err)
	require.Len(t, ops, 5)
	assert.Equal(t, byte(OP_DUP), ops[0].Value)
	assert.Equal(t, byte(OP_HASH160), ops[1].Value)
	assert.Equal(t, byte(0x14), ops[2].Value)
	assert.Len(t, ops[2].Data, 20)
	assert.True(t, ops[2].Minimal)
	assert.Equal(t, byte(OP_EQUALVERIFY), ops[3].Value)
	assert.Equal(t, byte(OP_CHECKSIG), ops[4].Value)
}

func TestDecodeSmallIntegerPushes(t *testing.T) {
	ops, err := Decode([]byte{OP_0, OP_1NEGATE, OP_1, OP_16}, limits.Legacy)
	require.NoError(t, err)
	require.Len(t, ops, 4)
	for _, op := range ops {
		assert.True(t, op.IsPush())
		assert.False(t, op.IsDataPush())
	}
}

func TestDecodeTruncatedDirectPush(t *testing.T) {
	_, err := Decode([]byte{0x05, 0x01, 0x02}, limits.Legacy)
	require.Error(t, err)
	derr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, UnexpectedEnd, derr.Kind)
}

func TestDecodePushData1(t *testing.T) {
	payload := bytes.Repeat([]byte{0x42}, 0x4c) // 76 bytes, too big for direct push
	raw := append([]byte{OP_PUSHDATA1, byte(len(payload))}, payload...)
	ops, err := Decode(raw, limits.Legacy)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.Equal(t, payload, ops[0].Data)
	assert.True(t, ops[0].Minimal)
}

func TestDecodeNonMinimalPushDetected(t *testing.T) {
	// A single byte value 5 pushed via OP_DATA_1 instead of OP_5 is non-minimal.
	raw := []byte{OP_DATA_1, 0x05}
	ops, err := Decode(raw, limits.Legacy)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.False(t, ops[0].Minimal)
}

func TestDecodeScriptTooLong(t *testing.T) {
	raw := bytes.Repeat([]byte{OP_NOP}, limits.MaxScriptSize+1)
	_, err := Decode(raw, limits.Legacy)
	require.Error(t, err)
	derr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, ScriptTooLong, derr.Kind)
}

func TestDecodeRejectsCheckMultisigUnderTapscript(t *testing.T) {
	_, err := Decode([]byte{OP_CHECKMULTISIG}, limits.TapscriptV1)
	require.Error(t, err)
	derr, ok := err.(*DecodeError)
	require.True(t, ok)
	assert.Equal(t, UnknownOpcodeInVersion, derr.Kind)
}

func TestDecodeMarksDisabledOpcode(t *testing.T) {
	ops, err := Decode([]byte{OP_CAT}, limits.Legacy)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].Disabled)
}

func TestDecodeMarksTapscriptSuccessOpcode(t *testing.T) {
	ops, err := Decode([]byte{0xbb}, limits.TapscriptV1)
	require.NoError(t, err)
	require.Len(t, ops, 1)
	assert.True(t, ops[0].Success)
}

func TestEncodeRoundTripsMinimalPushes(t *testing.T) {
	raw := []byte{OP_DUP, OP_HASH160, 0x02, 0xaa, 0xbb, OP_EQUAL}
	ops, err := Decode(raw, limits.Legacy)
	require.NoError(t, err)
	out, err := Encode(ops)
	require.NoError(t, err)
	assert.Equal(t, raw, out)
}
