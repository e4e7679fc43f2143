// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"sort"
	"strings"
)

// PredicateKind tags the atomic assertions a path can carry (spec.md §3
// Predicate).
type PredicateKind int

const (
	PredIsTrue PredicateKind = iota
	PredIsFalse
	PredEqual
	PredSignatureValid
	PredHashPreimage
	PredLockTime
	PredSequence
)

// Predicate is an atomic assertion a path's continuation depends on. Two
// Predicates with equal CanonicalKey are the same assertion for
// deduplication purposes (spec.md §3, §9).
type Predicate struct {
	Kind PredicateKind

	// PredIsTrue / PredIsFalse
	Value Value

	// PredEqual
	A, B Value

	// PredSignatureValid: single-key form uses PubKey/Signature; the
	// CHECKMULTISIG form uses Keys/Sigs/M instead (PubKey/Signature left
	// zero), covering the aggregate "at least M of these keys signed".
	PubKey       Value
	Signature    Value
	SighashFlags byte
	Keys         []Value
	Sigs         []Value
	M            int

	// PredHashPreimage
	HashOp    string
	Digest    Value
	Preimage  Value

	// PredLockTime / PredSequence
	Cmp string // "lt","le","eq","ge","gt"
	N   Value
}

// CanonicalKey is the stable string used to compare, sort, and deduplicate
// predicates (spec.md §3 "carry a canonicalized form", §9).
func (p Predicate) CanonicalKey() string {
	switch p.Kind {
	case PredIsTrue:
		return "IsTrue(" + p.Value.CanonicalKey() + ")"
	case PredIsFalse:
		return "IsFalse(" + p.Value.CanonicalKey() + ")"
	case PredEqual:
		a, b := p.A.CanonicalKey(), p.B.CanonicalKey()
		if a > b {
			a, b = b, a
		}
		return "Equal(" + a + "," + b + ")"
	case PredSignatureValid:
		if len(p.Keys) > 0 || len(p.Sigs) > 0 {
			keys := make([]string, len(p.Keys))
			for i, k := range p.Keys {
				keys[i] = k.CanonicalKey()
			}
			sigs := make([]string, len(p.Sigs))
			for i, s := range p.Sigs {
				sigs[i] = s.CanonicalKey()
			}
			sort.Strings(keys)
			sort.Strings(sigs)
			return fmt.Sprintf("SignatureValid(%d-of-%s,sigs=%s)", p.M, strings.Join(keys, "|"), strings.Join(sigs, "|"))
		}
		return fmt.Sprintf("SignatureValid(%s,%s,%d)", p.PubKey.CanonicalKey(), p.Signature.CanonicalKey(), p.SighashFlags)
	case PredHashPreimage:
		return fmt.Sprintf("HashPreimage(%s,%s,%s)", p.HashOp, p.Digest.CanonicalKey(), p.Preimage.CanonicalKey())
	case PredLockTime:
		return fmt.Sprintf("LockTime(%s,%s)", p.Cmp, p.N.CanonicalKey())
	case PredSequence:
		return fmt.Sprintf("Sequence(%s,%s)", p.Cmp, p.N.CanonicalKey())
	default:
		return "Unknown"
	}
}

// Negation returns the predicate that must hold on the opposite branch of
// an IF/NOTIF fork, when that negation is itself expressible as a single
// atomic predicate (true for IsTrue/IsFalse; for every other kind p is
// returned unchanged). IsSatisfiable calls it only on IsTrue/IsFalse.
func (p Predicate) Negation() Predicate {
	switch p.Kind {
	case PredIsTrue:
		return Predicate{Kind: PredIsFalse, Value: p.Value}
	case PredIsFalse:
		return Predicate{Kind: PredIsTrue, Value: p.Value}
	default:
		return p
	}
}

func (p Predicate) String() string {
	switch p.Kind {
	case PredIsTrue:
		return "IsTrue(" + describeValue(p.Value) + ")"
	case PredIsFalse:
		return "IsFalse(" + describeValue(p.Value) + ")"
	case PredEqual:
		return "Equal(" + describeValue(p.A) + "," + describeValue(p.B) + ")"
	case PredSignatureValid:
		if len(p.Keys) > 0 || len(p.Sigs) > 0 {
			keys := make([]string, len(p.Keys))
			for i, k := range p.Keys {
				keys[i] = describeValue(k)
			}
			return fmt.Sprintf("SignatureValid(%d-of-{%s})", p.M, strings.Join(keys, ","))
		}
		return "SignatureValid(" + describeValue(p.PubKey) + "," + describeValue(p.Signature) + ")"
	case PredHashPreimage:
		return p.HashOp + "Preimage(" + describeValue(p.Digest) + "," + describeValue(p.Preimage) + ")"
	case PredLockTime:
		return "LockTime(" + p.Cmp + "," + describeValue(p.N) + ")"
	case PredSequence:
		return "Sequence(" + p.Cmp + "," + describeValue(p.N) + ")"
	default:
		return "?"
	}
}

func describeValue(v Value) string {
	switch v.Kind {
	case KindWitnessRef:
		if v.WitnessLabel != "" {
			return fmt.Sprintf("WitnessRef(%d)_%s", v.WitnessIndex, v.WitnessLabel)
		}
		return fmt.Sprintf("WitnessRef(%d)", v.WitnessIndex)
	case KindBytes:
		return hexString(v.Bytes)
	case KindInt:
		return fmt.Sprintf("%d", v.Int)
	case KindBool:
		return fmt.Sprintf("%v", v.Bool)
	default:
		args := make([]string, len(v.DerivedArgs))
		for i, a := range v.DerivedArgs {
			args[i] = describeValue(a)
		}
		s := v.DerivedOp + "("
		for i, a := range args {
			if i > 0 {
				s += ","
			}
			s += a
		}
		return s + ")"
	}
}

// Conjunction is a set of predicates that must all hold on one path. Add
// keeps it free of duplicates (by CanonicalKey) and keeps members in
// insertion order; it is not sorted.
type Conjunction struct {
	preds []Predicate
	keys  map[string]bool
}

// NewConjunction returns an empty conjunction.
func NewConjunction() Conjunction {
	return Conjunction{keys: map[string]bool{}}
}

// Add returns a new Conjunction with p appended, preserving value
// semantics the way spec.md §5 requires of Path forks ("deep-copy only
// what differs").
func (c Conjunction) Add(p Predicate) Conjunction {
	key := p.CanonicalKey()
	if c.keys[key] {
		return c
	}
	out := Conjunction{
		preds: make([]Predicate, len(c.preds), len(c.preds)+1),
		keys:  make(map[string]bool, len(c.keys)+1),
	}
	copy(out.preds, c.preds)
	for k := range c.keys {
		out.keys[k] = true
	}
	out.preds = append(out.preds, p)
	out.keys[key] = true
	return out
}

// Has reports whether the conjunction already contains a predicate with
// canonical key key.
func (c Conjunction) Has(key string) bool {
	return c.keys[key]
}

// Predicates returns the conjunction's members in insertion order. Callers
// that need a canonical ordering use sortConditions.
func (c Conjunction) Predicates() []Predicate {
	return append([]Predicate(nil), c.preds...)
}

// Len reports the number of distinct predicates.
func (c Conjunction) Len() int {
	return len(c.preds)
}

// IsSatisfiable reports false when the conjunction contains both a
// predicate and its negation for the same underlying value — spec.md §3
// Invariants, §7 UnsatisfiablePredicateSet.
func (c Conjunction) IsSatisfiable() bool {
	for _, p := range c.preds {
		if p.Kind != PredIsTrue && p.Kind != PredIsFalse {
			continue
		}
		neg := p.Negation()
		if c.keys[neg.CanonicalKey()] {
			return false
		}
	}
	return true
}
