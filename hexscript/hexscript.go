// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package hexscript implements spec.md §6's hex interface: standard
// lowercase/uppercase hex, even length, no whitespace beyond leading/
// trailing. Named to avoid colliding with the stdlib encoding/hex package it
// wraps.
package hexscript

import (
	"encoding/hex"
	"strings"

	"github.com/pkg/errors"
)

// Decode trims surrounding whitespace and decodes s as a hex-encoded
// script. An odd-length or non-hex body is rejected before ever reaching
// script.Decode, per spec.md §6.
func Decode(s string) ([]byte, error) {
	s = strings.TrimSpace(s)
	raw, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "hexscript: invalid hex")
	}
	return raw, nil
}

// Encode renders b as lowercase hex, the canonical form this package always
// produces (Decode accepts either case on input).
func Encode(b []byte) string {
	return hex.EncodeToString(b)
}
