package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func validDERSig() []byte {
	// A syntactically valid low-S DER signature (r=1, s=1) plus a SIGHASH_ALL byte.
	return []byte{
		0x30, 0x06,
		0x02, 0x01, 0x01,
		0x02, 0x01, 0x01,
		byte(SigHashAll),
	}
}

func TestIsEmptySignature(t *testing.T) {
	assert.True(t, isEmptySignature(nil))
	assert.True(t, isEmptySignature([]byte{}))
	assert.False(t, isEmptySignature([]byte{0x30}))
}

func TestIsStaticallyWellFormedSignatureAcceptsValidDER(t *testing.T) {
	assert.True(t, isStaticallyWellFormedSignature(validDERSig()))
}

func TestIsStaticallyWellFormedSignatureRejectsBadPrefix(t *testing.T) {
	sig := validDERSig()
	sig[0] = 0x00
	assert.False(t, isStaticallyWellFormedSignature(sig))
}

func TestIsStaticallyWellFormedSignatureRejectsTooShort(t *testing.T) {
	assert.False(t, isStaticallyWellFormedSignature([]byte{0x30}))
}

func TestIsStaticallyWellFormedPubKeyCompressed(t *testing.T) {
	key := make([]byte, 33)
	key[0] = 0x02
	assert.True(t, isStaticallyWellFormedPubKey(key, false))

	key[0] = 0x03
	assert.True(t, isStaticallyWellFormedPubKey(key, false))
}

func TestIsStaticallyWellFormedPubKeyUncompressed(t *testing.T) {
	key := make([]byte, 65)
	key[0] = 0x04
	assert.True(t, isStaticallyWellFormedPubKey(key, false))
}

func TestIsStaticallyWellFormedPubKeyXOnlyRequiresTapscript(t *testing.T) {
	key := make([]byte, 32)
	assert.True(t, isStaticallyWellFormedPubKey(key, true))
	assert.False(t, isStaticallyWellFormedPubKey(key, false))
}

func TestIsStaticallyWellFormedPubKeyRejectsBadLength(t *testing.T) {
	assert.False(t, isStaticallyWellFormedPubKey(make([]byte, 10), false))
}
