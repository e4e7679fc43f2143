// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"errors"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

// halfOrder is used to tame ECDSA malleability (see BIP0062), lifted
// verbatim from the teacher's txscript engine.
var halfOrder = new(big.Int).Rsh(btcec.S256().N, 1)

// SigHashType mirrors the teacher's txscript.SigHashType: the low byte of
// a signature's trailing sighash-flags byte.
type SigHashType byte

const (
	SigHashOld          SigHashType = 0x0
	SigHashAll          SigHashType = 0x1
	SigHashNone         SigHashType = 0x2
	SigHashSingle       SigHashType = 0x3
	SigHashAnyOneCanPay SigHashType = 0x80
)

// isEmptySignature reports whether sig is the empty byte string, which
// Bitcoin Core always treats as a failed signature check without ever
// invoking the crypto, per spec.md §4.3 "empty signature must yield
// Bool(false) with no predicate, matching consensus."
func isEmptySignature(sig []byte) bool {
	return len(sig) == 0
}

// isStaticallyWellFormedSignature reports whether a concrete signature
// byte string parses as a DER-encoded ECDSA signature (plus trailing
// sighash byte) under strict encoding and BIP0062 low-S rules. Lifted
// from the teacher's checkSignatureEncoding, which performed the identical
// checks to decide whether to fail a *live* verification; here the same
// checks decide whether OP_CHECKSIG may emit a SignatureValid predicate at
// all (an ill-formed signature makes the check statically false with no
// predicate, per spec.md §4.3).
func isStaticallyWellFormedSignature(sigWithHashType []byte) bool {
	if len(sigWithHashType) < 1 {
		return false
	}
	sig := sigWithHashType[:len(sigWithHashType)-1]
	if err := checkSignatureEncoding(sig); err != nil {
		return false
	}
	return true
}

// checkSignatureEncoding is lifted near-verbatim from the teacher's
// txscript engine.checkSignatureEncoding.
func checkSignatureEncoding(sig []byte) error {
	if len(sig) < 8 {
		return errMalformedSig
	}
	if len(sig) > 72 {
		return errMalformedSig
	}
	if sig[0] != 0x30 {
		return errMalformedSig
	}
	if int(sig[1]) != len(sig)-2 {
		return errMalformedSig
	}

	rLen := int(sig[3])
	if rLen+5 > len(sig) {
		return errMalformedSig
	}
	sLen := int(sig[rLen+5])
	if rLen+sLen+6 != len(sig) {
		return errMalformedSig
	}
	if sig[2] != 0x02 {
		return errMalformedSig
	}
	if rLen == 0 {
		return errMalformedSig
	}
	if sig[4]&0x80 != 0 {
		return errMalformedSig
	}
	if rLen > 1 && sig[4] == 0x00 && sig[5]&0x80 == 0 {
		return errMalformedSig
	}
	if sig[rLen+4] != 0x02 {
		return errMalformedSig
	}
	if sLen == 0 {
		return errMalformedSig
	}
	if sig[rLen+6]&0x80 != 0 {
		return errMalformedSig
	}
	if sLen > 1 && sig[rLen+6] == 0x00 && sig[rLen+7]&0x80 == 0 {
		return errMalformedSig
	}

	sValue := new(big.Int).SetBytes(sig[rLen+6 : rLen+6+sLen])
	if sValue.Cmp(halfOrder) > 0 {
		return errHighS
	}
	return nil
}

// isStaticallyWellFormedPubKey mirrors the teacher's checkPubKeyEncoding:
// compressed (0x02/0x03, 33 bytes) or uncompressed (0x04, 65 bytes).
// x-only (32-byte) keys are accepted for TapscriptV1 per BIP340.
func isStaticallyWellFormedPubKey(pubKey []byte, tapscript bool) bool {
	if tapscript && len(pubKey) == 32 {
		return true
	}
	if len(pubKey) == 33 && (pubKey[0] == 0x02 || pubKey[0] == 0x03) {
		return true
	}
	if len(pubKey) == 65 && pubKey[0] == 0x04 {
		return true
	}
	return false
}

var errMalformedSig = errors.New("malformed DER signature")
var errHighS = errors.New("signature S value exceeds half curve order")
