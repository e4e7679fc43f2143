package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScriptNumBytesRoundTrip(t *testing.T) {
	cases := []int64{0, 1, -1, 127, 128, -128, 255, 256, -256, 1000000}
	for _, n := range cases {
		encoded := scriptNum(n).Bytes()
		decoded, err := makeScriptNum(encoded, true, 8)
		require.NoError(t, err, "n=%d", n)
		assert.Equal(t, n, int64(decoded), "n=%d encoded=%x", n, encoded)
	}
}

func TestScriptNumZeroEncodesEmpty(t *testing.T) {
	assert.Empty(t, scriptNum(0).Bytes())
}

func TestMinimalNumberBytesMatchesBytes(t *testing.T) {
	assert.Equal(t, scriptNum(42).Bytes(), MinimalNumberBytes(42))
}

func TestCheckMinimalDataEncodingRejectsTrailingZero(t *testing.T) {
	err := checkMinimalDataEncoding([]byte{0x01, 0x00})
	assert.Error(t, err)
}

func TestCheckMinimalDataEncodingAcceptsRequiredSignByte(t *testing.T) {
	// 128 encodes as [0x80, 0x00]: the second byte is required so the
	// magnitude byte's own high bit isn't mistaken for a sign flag.
	err := checkMinimalDataEncoding(scriptNum(128).Bytes())
	assert.NoError(t, err)
}

func TestMakeScriptNumEnforcesWidthCap(t *testing.T) {
	_, err := makeScriptNum([]byte{1, 2, 3, 4, 5}, false, 4)
	assert.Error(t, err)
}

func TestMakeScriptNumRejectsNonMinimalWhenRequired(t *testing.T) {
	_, err := makeScriptNum([]byte{0x01, 0x00}, true, 8)
	assert.Error(t, err)

	_, err = makeScriptNum([]byte{0x01, 0x00}, false, 8)
	assert.NoError(t, err)
}

func TestInt32Clamps(t *testing.T) {
	assert.Equal(t, int32(2147483647), scriptNum(1<<40).Int32())
	assert.Equal(t, int32(-2147483648), scriptNum(-(1 << 40)).Int32())
}
