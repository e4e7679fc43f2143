// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import "errors"

// StackModel is the symbolic analogue of the teacher's dstack/astack pair
// (txscript's `stack` type): an ordered sequence of symbolic values for the
// main and alt stacks, plus the counters spec.md §3 requires (current
// opcode count and minted-witness-depth). Every mutating method returns a
// new StackModel; callers never observe a StackModel change out from under
// them, matching spec.md §5's "value-semantics" contract for Path forks.
type StackModel struct {
	main   []Value
	alt    []Value
	minted int // number of WitnessRef values synthesized so far == min witness depth
	numOps int
}

// NewStackModel returns the empty initial stack.
func NewStackModel() StackModel {
	return StackModel{}
}

// Depth returns the number of elements on the main stack.
func (s StackModel) Depth() int {
	return len(s.main)
}

// AltDepth returns the number of elements on the alt stack.
func (s StackModel) AltDepth() int {
	return len(s.alt)
}

// MintedWitness returns how many distinct WitnessRef values this stack has
// synthesized so far — the path's current minimum witness depth.
func (s StackModel) MintedWitness() int {
	return s.minted
}

// clone deep-copies the slices so the returned StackModel shares no
// backing array with s — the explicit deep-copy spec.md §5/§9 permits in
// place of a persistent vector.
func (s StackModel) clone() StackModel {
	out := StackModel{minted: s.minted, numOps: s.numOps}
	if len(s.main) > 0 {
		out.main = append([]Value(nil), s.main...)
	}
	if len(s.alt) > 0 {
		out.alt = append([]Value(nil), s.alt...)
	}
	return out
}

// Push appends v to the top of the main stack.
func (s StackModel) Push(v Value) StackModel {
	out := s.clone()
	out.main = append(out.main, v)
	return out
}

// ensureDepth mints fresh WitnessRef values, prepending them to the bottom
// of the main stack one at a time, until Depth() >= n. Minting shallow
// positions first and deep positions last means the first value actually
// popped afterwards always receives the lowest WitnessRef index — matching
// what a sequence of single Pop calls would have produced (spec.md §4.3
// "pop from a virtual initial witness region, fresh WitnessRef(i) values").
func (s StackModel) ensureDepth(n int) StackModel {
	out := s.clone()
	for len(out.main) < n {
		ref := NewWitnessRef(out.minted, "")
		out.minted++
		out.main = append([]Value{ref}, out.main...)
	}
	return out
}

// PopN pops the top n values (labels[i] names the i-th popped value, top
// first, for any freshly minted WitnessRef — existing labels are never
// overwritten) and returns them top-to-bottom alongside the updated stack.
func (s StackModel) PopN(n int, labels []string) (StackModel, []Value, error) {
	if n == 0 {
		return s, nil, nil
	}
	out := s.ensureDepth(n)
	result := make([]Value, n)
	top := len(out.main)
	for i := 0; i < n; i++ {
		idx := top - 1 - i
		v := out.main[idx]
		if v.Kind == KindWitnessRef && v.WitnessLabel == "" && i < len(labels) && labels[i] != "" {
			v.WitnessLabel = labels[i]
			out.main[idx] = v
		}
		result[i] = v
	}
	out.main = out.main[:top-n]
	return out, result, nil
}

// Pop removes and returns the top value, labeling it if it must be
// synthesized from the witness.
func (s StackModel) Pop(label string) (StackModel, Value, error) {
	out, vals, err := s.PopN(1, []string{label})
	if err != nil {
		return s, Value{}, err
	}
	return out, vals[0], nil
}

// Peek returns the value at the given depth (0 = top) without removing it,
// synthesizing a WitnessRef if necessary.
func (s StackModel) Peek(depth int, label string) (StackModel, Value, error) {
	out := s.ensureDepth(depth + 1)
	idx := len(out.main) - 1 - depth
	v := out.main[idx]
	if v.Kind == KindWitnessRef && v.WitnessLabel == "" && label != "" {
		v.WitnessLabel = label
		out.main[idx] = v
	}
	return out, v, nil
}

// Top is shorthand for Peek(0, label).
func (s StackModel) Top(label string) (StackModel, Value, error) {
	return s.Peek(0, label)
}

// Remove deletes the element at the given depth (0 = top), used by NIP and
// by ROLL (which removes then re-pushes).
func (s StackModel) Remove(depth int) (StackModel, Value, error) {
	out := s.ensureDepth(depth + 1)
	idx := len(out.main) - 1 - depth
	v := out.main[idx]
	out.main = append(out.main[:idx], out.main[idx+1:]...)
	return out, v, nil
}

// ToAlt moves the top main-stack value to the alt stack.
func (s StackModel) ToAlt() (StackModel, error) {
	out, v, err := s.Pop("")
	if err != nil {
		return s, err
	}
	out = out.clone()
	out.alt = append(out.alt, v)
	return out, nil
}

// FromAlt moves the top alt-stack value back to the main stack.
func (s StackModel) FromAlt() (StackModel, error) {
	if len(s.alt) == 0 {
		return s, errEmptyAltStack
	}
	out := s.clone()
	v := out.alt[len(out.alt)-1]
	out.alt = out.alt[:len(out.alt)-1]
	out.main = append(out.main, v)
	return out, nil
}

// IncOps increments the non-push opcode counter, enforcing cap — spec.md
// §4.3 "Consensus opcode counter increment."
func (s StackModel) IncOps(cap int) (StackModel, error) {
	out := s.clone()
	out.numOps++
	if cap > 0 && out.numOps > cap {
		return out, errTooManyOps
	}
	return out, nil
}

var errEmptyAltStack = errors.New("alt stack is empty")
var errTooManyOps = errors.New("opcode count exceeded")
