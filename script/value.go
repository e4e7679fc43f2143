// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"crypto/sha1"
	"fmt"
	"sort"
	"strings"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"golang.org/x/crypto/ripemd160"
)

// Kind tags a symbolic stack Value's representation (spec.md §3 Symbolic value).
type Kind int

const (
	KindBytes Kind = iota
	KindInt
	KindBool
	KindWitnessRef
	KindDerived
)

// Value is a symbolic stack element: a concrete byte string, a tracked
// script number, a concrete boolean, an opaque witness reference, or a
// derived expression over at least one opaque child. Smart constructors
// (Equal, Hash160Of and the other *Of hashes, arithUnary, arithBinary,
// boolFold) constant-fold eagerly so
// KindDerived values are only ever built when at least one operand is
// non-concrete, per spec.md §3 Invariants.
type Value struct {
	Kind Kind

	Bytes    []byte // KindBytes
	Int      int64  // KindInt
	IntWidth int    // KindInt: byte-width of the original encoding, for minimality checks
	Bool     bool   // KindBool

	WitnessIndex int    // KindWitnessRef
	WitnessLabel string // KindWitnessRef: human label, e.g. "pubkey", "sig"

	DerivedOp   string  // KindDerived, e.g. "HASH160", "ADD", "EQUAL"
	DerivedArgs []Value // KindDerived
}

// NewBytes wraps a concrete byte string.
func NewBytes(b []byte) Value {
	return Value{Kind: KindBytes, Bytes: append([]byte(nil), b...)}
}

// NewInt wraps a concrete script number.
func NewInt(n int64) Value {
	return Value{Kind: KindInt, Int: n, IntWidth: len(scriptNum(n).Bytes())}
}

// NewBool wraps a concrete boolean.
func NewBool(b bool) Value {
	return Value{Kind: KindBool, Bool: b}
}

// NewWitnessRef constructs the i-th opaque witness input.
func NewWitnessRef(i int, label string) Value {
	return Value{Kind: KindWitnessRef, WitnessIndex: i, WitnessLabel: label}
}

// IsConcrete reports whether v is fully known (Bytes, Int, or Bool) as
// opposed to opaque (WitnessRef) or partially opaque (Derived).
func (v Value) IsConcrete() bool {
	return v.Kind == KindBytes || v.Kind == KindInt || v.Kind == KindBool
}

// ToBytes returns v's consensus byte-string encoding when v is concrete.
func (v Value) ToBytes() ([]byte, bool) {
	switch v.Kind {
	case KindBytes:
		return v.Bytes, true
	case KindInt:
		return scriptNum(v.Int).Bytes(), true
	case KindBool:
		if v.Bool {
			return []byte{1}, true
		}
		return nil, true
	default:
		return nil, false
	}
}

// asBool reduces v to a concrete boolean using Bitcoin's stack-truthiness
// rule: false iff every byte is 0x00 except a single permitted trailing
// 0x80 (negative zero), per spec.md §4.2. Returns ok=false when v is not
// concrete; the caller must branch on a predicate instead.
func asBool(v Value) (result bool, ok bool) {
	if v.Kind == KindBool {
		return v.Bool, true
	}
	b, isConcrete := v.ToBytes()
	if !isConcrete {
		return false, false
	}
	for i, c := range b {
		if c != 0 {
			if i == len(b)-1 && c == 0x80 {
				continue
			}
			return true, true
		}
	}
	return false, true
}

// asInt decodes v as a script number, enforcing maxBytes and, if
// requireMinimal, minimal encoding. Returns ok=false when v is not
// concrete.
// errNumericOverflow is returned by asInt when a concrete value's encoding
// is wider than maxBytes or fails minimal-encoding policy; callers in
// eval.go translate it into a PathFailure{NumericOverflow}, since the
// offending value is already fixed by earlier, witness-independent
// decisions on this path.
var errNumericOverflow = fmt.Errorf("script number exceeds allowed width or is non-minimally encoded")

func asInt(v Value, maxBytes int, requireMinimal bool) (n int64, ok bool, err error) {
	if v.Kind == KindInt {
		if v.IntWidth > maxBytes {
			return 0, true, errNumericOverflow
		}
		return v.Int, true, nil
	}
	b, isConcrete := v.ToBytes()
	if !isConcrete {
		return 0, false, nil
	}
	sn, err := makeScriptNum(b, requireMinimal, maxBytes)
	if err != nil {
		return 0, true, errNumericOverflow
	}
	return int64(sn), true, nil
}

// sortKey returns a total-order key used to stabilize the children of
// commutative Derived operations, per spec.md §9 "Predicate canonicalization".
func (v Value) sortKey() string {
	switch v.Kind {
	case KindBytes:
		return "0:" + hexString(v.Bytes)
	case KindInt:
		return fmt.Sprintf("1:%d", v.Int)
	case KindBool:
		return fmt.Sprintf("2:%v", v.Bool)
	case KindWitnessRef:
		return fmt.Sprintf("3:%d", v.WitnessIndex)
	default:
		parts := make([]string, len(v.DerivedArgs))
		for i, a := range v.DerivedArgs {
			parts[i] = a.sortKey()
		}
		return "4:" + v.DerivedOp + "(" + strings.Join(parts, ",") + ")"
	}
}

// commutativeOps is the set of Derived operators whose children are
// reordered to a canonical order at construction, so that e.g.
// Add(WitnessRef(0), WitnessRef(1)) and Add(WitnessRef(1), WitnessRef(0))
// (which Bitcoin Script can never actually produce from the same inputs,
// but whose *semantic* commutativity matters for predicate dedup) compare
// structurally equal.
var commutativeOps = map[string]bool{
	"ADD": true, "EQUAL": true, "NUMEQUAL": true, "BOOLAND": true, "BOOLOR": true,
	"MIN": true, "MAX": true,
}

// newDerived builds a KindDerived node, canonicalizing commutative operand
// order. Callers are expected to have already attempted constant-folding;
// newDerived itself never folds (each opcode's fold rule lives alongside
// the opcode in eval.go / this file's Hash*/Equal/arith helpers).
func newDerived(op string, args ...Value) Value {
	args = append([]Value(nil), args...)
	if commutativeOps[op] {
		sort.SliceStable(args, func(i, j int) bool {
			return args[i].sortKey() < args[j].sortKey()
		})
	}
	return Value{Kind: KindDerived, DerivedOp: op, DerivedArgs: args}
}

// CanonicalKey returns a stable, structural string key for v, used to
// deduplicate predicates and Derived expressions (spec.md §9).
func (v Value) CanonicalKey() string {
	return v.sortKey()
}

// valuesEqual reports static equality: true/false when decidable, ok=false
// when unknown (spec.md §4.2 "Equality reduction").
func valuesEqual(a, b Value) (equal bool, ok bool) {
	ab, aConcrete := a.ToBytes()
	bb, bConcrete := b.ToBytes()
	if aConcrete && bConcrete {
		if len(ab) != len(bb) {
			return false, true
		}
		for i := range ab {
			if ab[i] != bb[i] {
				return false, true
			}
		}
		return true, true
	}
	return false, false
}

// Equal constructs the symbolic result of OP_EQUAL: a concrete Bool when
// decidable, otherwise a Derived("EQUAL", a, b) expression.
func Equal(a, b Value) Value {
	if eq, ok := valuesEqual(a, b); ok {
		return NewBool(eq)
	}
	return newDerived("EQUAL", a, b)
}

// hashFold applies a concrete hash function fn to v if v is concrete,
// otherwise builds a Derived node tagged op.
func hashFold(op string, v Value, fn func([]byte) []byte) Value {
	if b, ok := v.ToBytes(); ok {
		return NewBytes(fn(b))
	}
	return newDerived(op, v)
}

func Ripemd160Of(v Value) Value {
	return hashFold("RIPEMD160", v, func(b []byte) []byte {
		h := ripemd160.New()
		h.Write(b)
		return h.Sum(nil)
	})
}

func Sha1Of(v Value) Value {
	return hashFold("SHA1", v, func(b []byte) []byte {
		h := sha1.Sum(b)
		return h[:]
	})
}

func Sha256Of(v Value) Value {
	return hashFold("SHA256", v, chainhash.HashB)
}

func Hash160Of(v Value) Value {
	return hashFold("HASH160", v, func(b []byte) []byte {
		h := ripemd160.New()
		h.Write(chainhash.HashB(b))
		return h.Sum(nil)
	})
}

func Hash256Of(v Value) Value {
	return hashFold("HASH256", v, chainhash.DoubleHashB)
}

// arithUnary decodes v with asInt and applies a concrete int->int transform
// if v is concrete, building a Derived node otherwise.
func arithUnary(op string, v Value, maxBytes int, requireMinimal bool, fn func(int64) int64) (Value, error) {
	n, ok, err := asInt(v, maxBytes, requireMinimal)
	if err != nil {
		return Value{}, err
	}
	if !ok {
		return newDerived(op, v), nil
	}
	return NewInt(fn(n)), nil
}

func arithBinary(op string, a, b Value, maxBytes int, requireMinimal bool, fn func(int64, int64) int64) (Value, error) {
	na, aok, err := asInt(a, maxBytes, requireMinimal)
	if err != nil {
		return Value{}, err
	}
	nb, bok, err := asInt(b, maxBytes, requireMinimal)
	if err != nil {
		return Value{}, err
	}
	if aok && bok {
		return NewInt(fn(na, nb)), nil
	}
	return newDerived(op, a, b), nil
}

func boolFold(op string, v Value, fn func(bool) bool) Value {
	if bv, ok := asBool(v); ok {
		return NewBool(fn(bv))
	}
	return newDerived(op, v)
}
