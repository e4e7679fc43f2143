// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"fmt"
	"sort"
	"strings"

	set "gopkg.in/fatih/set.v0"
)

// SpendingPath is one way the script can be satisfied: the conjunction of
// predicates that must hold, and the minimum witness-stack depth that path
// requires (spec.md §3 Analysis result, §4.5).
type SpendingPath struct {
	Conditions      []Predicate
	MinWitnessDepth int
}

// Analysis is the public result of analyzing a script (spec.md §6).
type Analysis struct {
	MaxWitnessStackDepth int
	SpendingPaths        []SpendingPath
}

// conditionKey returns a canonical, order-independent signature for a
// spending path's predicate set, used to merge and subsume paths.
func conditionKey(preds []Predicate) string {
	keys := make([]string, len(preds))
	for i, p := range preds {
		keys[i] = p.CanonicalKey()
	}
	sort.Strings(keys)
	return strings.Join(keys, "&")
}

func conditionSet(preds []Predicate) *set.Set {
	s := set.New()
	for _, p := range preds {
		s.Add(p.CanonicalKey())
	}
	return s
}

// normalize implements spec.md §4.5: drop duplicate predicates within a
// path (already guaranteed by Conjunction), merge paths with an identical
// predicate set keeping the larger MinWitnessDepth, then drop any path
// whose predicate set is a strict superset of another surviving path's —
// the superset path is redundant because the subset path already describes
// every witness that satisfies it (spec.md §9 "Predicate canonicalization").
func normalize(paths []SpendingPath) []SpendingPath {
	merged := map[string]SpendingPath{}
	order := []string{}
	for _, p := range paths {
		key := conditionKey(p.Conditions)
		if existing, ok := merged[key]; ok {
			if p.MinWitnessDepth > existing.MinWitnessDepth {
				existing.MinWitnessDepth = p.MinWitnessDepth
				merged[key] = existing
			}
			continue
		}
		p.Conditions = sortConditions(p.Conditions)
		merged[key] = p
		order = append(order, key)
	}

	sets := make(map[string]*set.Set, len(order))
	for _, k := range order {
		sets[k] = conditionSet(merged[k].Conditions)
	}

	var out []SpendingPath
	for _, k := range order {
		subsumed := false
		for _, other := range order {
			if other == k {
				continue
			}
			if isStrictSuperset(sets[k], sets[other]) {
				subsumed = true
				break
			}
		}
		if !subsumed {
			out = append(out, merged[k])
		}
	}

	sort.Slice(out, func(i, j int) bool {
		return conditionKey(out[i].Conditions) < conditionKey(out[j].Conditions)
	})
	return out
}

// sortConditions orders preds by CanonicalKey so a SpendingPath's
// Conditions are emitted in a canonical, stable order (spec.md §4.5, §8)
// rather than Conjunction.Predicates()'s insertion order.
func sortConditions(preds []Predicate) []Predicate {
	sort.Slice(preds, func(i, j int) bool {
		return preds[i].CanonicalKey() < preds[j].CanonicalKey()
	})
	return preds
}

// isStrictSuperset reports whether a contains every element of b plus at
// least one more.
func isStrictSuperset(a, b *set.Set) bool {
	if a.Size() <= b.Size() {
		return false
	}
	return set.Intersection(a, b).Size() == b.Size()
}

// FormatPath renders one spending path as a single human-readable line,
// used by the CLI's report output and by TRACE logging of per-path verdicts
// (SPEC_FULL.md supplement 2, the symbolic analogue of the teacher's
// DisasmPC/DisasmScript stepping traces).
func FormatPath(sp SpendingPath) string {
	if len(sp.Conditions) == 0 {
		return fmt.Sprintf("witness depth=%d (unconditional)", sp.MinWitnessDepth)
	}
	parts := make([]string, len(sp.Conditions))
	for i, c := range sp.Conditions {
		parts[i] = c.String()
	}
	return fmt.Sprintf("witness depth=%d: %s", sp.MinWitnessDepth, strings.Join(parts, " & "))
}

// maxWitnessDepth returns the largest MinWitnessDepth across all spending paths —
// spec.md §3 "MaxWitnessStackDepth is the maximum, over all spending
// paths, of that path's minimum required witness depth."
func maxWitnessDepth(paths []SpendingPath) int {
	max := 0
	for _, p := range paths {
		if p.MinWitnessDepth > max {
			max = p.MinWitnessDepth
		}
	}
	return max
}
