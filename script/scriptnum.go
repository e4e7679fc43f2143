// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import "fmt"

// scriptNum represents a numeric value used in the scripting engine with
// special handling to deal with the subtle semantics required by
// consensus: little-endian, sign-magnitude, minimally encoded. Lifted
// near-verbatim from the teacher's txscript scriptnum pattern (mass-core's
// makeScriptNum/bytes helpers, referenced but not retrieved in engine.go).
type scriptNum int64

const defaultScriptNumLen = 4

// checkMinimalDataEncoding returns whether the given byte array adheres to
// the minimal encoding rules.
func checkMinimalDataEncoding(v []byte) error {
	if len(v) == 0 {
		return nil
	}
	if v[len(v)-1]&0x7f == 0 {
		if len(v) == 1 || v[len(v)-2]&0x80 == 0 {
			return fmt.Errorf("non-minimally encoded script number")
		}
	}
	return nil
}

// makeScriptNum decodes script-number bytes into an int64, enforcing the
// given maximum byte width and, optionally, minimal-encoding.
func makeScriptNum(v []byte, requireMinimal bool, scriptNumLen int) (scriptNum, error) {
	if len(v) > scriptNumLen {
		return 0, fmt.Errorf("numeric value encoded as %d bytes, max allowed is %d", len(v), scriptNumLen)
	}
	if requireMinimal {
		if err := checkMinimalDataEncoding(v); err != nil {
			return 0, err
		}
	}
	if len(v) == 0 {
		return 0, nil
	}
	var result int64
	for i, b := range v {
		result |= int64(b) << uint8(8*i)
	}
	if v[len(v)-1]&0x80 != 0 {
		result &= ^(int64(0x80) << uint8(8*(len(v)-1)))
		return scriptNum(-result), nil
	}
	return scriptNum(result), nil
}

// Bytes returns the minimally-encoded, little-endian, sign-magnitude byte
// representation of the number.
func (n scriptNum) Bytes() []byte {
	if n == 0 {
		return nil
	}

	isNegative := n < 0
	m := n
	if isNegative {
		m = -m
	}

	var result []byte
	for m > 0 {
		result = append(result, byte(m&0xff))
		m >>= 8
	}

	if result[len(result)-1]&0x80 != 0 {
		extraByte := byte(0x00)
		if isNegative {
			extraByte = 0x80
		}
		result = append(result, extraByte)
	} else if isNegative {
		result[len(result)-1] |= 0x80
	}
	return result
}

// MinimalNumberBytes returns the minimally-encoded, little-endian,
// sign-magnitude byte representation of n, the encoding an assembler must
// use when a script literal pushes a decimal integer (spec.md §6 asm
// dialect: "Decimal integers push the minimal script-encoded integer").
func MinimalNumberBytes(n int64) []byte {
	return scriptNum(n).Bytes()
}

func (n scriptNum) Int32() int32 {
	const (
		min = -2147483648
		max = 2147483647
	)
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return int32(n)
}
