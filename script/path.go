// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/wangxinyu2018/bsa/internal/limits"
	"github.com/wangxinyu2018/bsa/internal/logging"
)

// branchState tags one entry of the conditional-execution stack, mirroring
// the teacher's vfExec in txscript's engine: one boolean per open
// OP_IF/OP_NOTIF reflecting whether that frame's currently active arm
// executes. OpcodeIf/OpcodeNotIf push one, OpcodeElse negates the top one
// (any number of times), OpcodeEndif pops it. The combined executing state
// for the innermost code is the AND of every open frame, not just the top
// one (inSkippedBranch).
type branchState bool

const (
	condExecuting branchState = true
	condSkipping  branchState = false
)

// path is one candidate execution carried through the DFS: the program
// counter into the shared opcode slice, the symbolic stack, the
// conditional-execution stack, and the conjunction of predicates assumed so
// far. Every field is a value type or an immutable-by-convention slice
// handle, so branching a path is just copying this struct (spec.md §5).
type path struct {
	pc      int
	stack   StackModel
	ifStack []branchState
	preds   Conjunction
}

// explorer owns the state shared across every branch of the DFS: the
// accumulated results, the fork-count budget, and — when running in
// parallel mode — the errgroup that joins concurrently explored subtrees,
// with no limit on how many run at once (spec.md §5 "MAY parallelize independent path subtrees;
// workers share only read-only data" — results/forks are the one
// deliberate exception, guarded by mu).
type explorer struct {
	ops []Opcode
	ctx *evalContext

	mu      sync.Mutex
	results []SpendingPath
	forks   int

	eg   *errgroup.Group
	done <-chan struct{}
}

// walkPaths performs the DFS of spec.md §4.4 over the decoded instruction
// stream, exploring every reachable branch up to the fork budget. It
// returns the surviving spending paths (pre-normalization). A PathFailure
// only prunes the one DFS branch it occurs on — walk simply stops
// recursing into that branch and contributes nothing to results. Only a
// *StaticError or *ResourceError aborts the whole walk, propagated as
// walk's error return.
func walkPaths(goCtx context.Context, ops []Opcode, ctx *evalContext, parallel bool) ([]SpendingPath, error) {
	if ctx.version == limits.TapscriptV1 {
		for _, op := range ops {
			if !op.IsPush() && op.Success {
				// spec.md §4.3: an OP_SUCCESS* byte anywhere in the script,
				// executed or not, makes the whole script succeed
				// unconditionally with no predicates and depth 0.
				return []SpendingPath{{Conditions: nil, MinWitnessDepth: 0}}, nil
			}
		}
	}

	ex := &explorer{ops: ops, ctx: ctx}
	if parallel {
		var gctx context.Context
		ex.eg, gctx = errgroup.WithContext(goCtx)
		ex.done = gctx.Done()
	} else {
		ex.done = goCtx.Done()
	}

	start := path{stack: NewStackModel(), preds: NewConjunction()}
	if err := ex.walk(start); err != nil {
		return nil, err
	}
	if ex.eg != nil {
		if err := ex.eg.Wait(); err != nil {
			return nil, err
		}
	}
	return ex.results, nil
}

// incrFork atomically bumps the shared fork counter and reports whether the
// budget (spec.md §5 MaxPathExplosion) is still within bounds.
func (ex *explorer) incrFork() bool {
	ex.mu.Lock()
	defer ex.mu.Unlock()
	ex.forks++
	return ex.forks <= limits.MaxPathExplosion
}

func (ex *explorer) addResult(sp SpendingPath) {
	logging.CPrint(logging.TRACE, "path verdict", logging.LogFormat{"path": FormatPath(sp)})
	ex.mu.Lock()
	defer ex.mu.Unlock()
	ex.results = append(ex.results, sp)
}

// exploreBranch runs p to completion, either inline (sequential mode) or as
// a concurrently scheduled task joined by the explorer's errgroup (parallel
// mode). In parallel mode a hard error is reported through the errgroup,
// not through this call's own return value, so callers must still check
// eg.Wait() after the whole walk finishes.
func (ex *explorer) exploreBranch(p path) error {
	if ex.eg == nil {
		return ex.walk(p)
	}
	ex.eg.Go(func() error { return ex.walk(p) })
	return nil
}

func (ex *explorer) walk(p path) error {
	ops := ex.ops
	ctx := ex.ctx

	for p.pc < len(ops) {
		select {
		case <-ex.done:
			return &ResourceError{Kind: Cancelled}
		default:
		}

		op := ops[p.pc]
		skipping := inSkippedBranch(p.ifStack)

		switch op.Value {
		case OP_IF, OP_NOTIF:
			if skipping {
				// Already skipping: the condition is not popped or
				// evaluated (spec.md §4.4), but a frame is still pushed so
				// the matching OP_ELSE/OP_ENDIF line up with this OP_IF.
				p.ifStack = append(append([]branchState(nil), p.ifStack...), condSkipping)
				p.pc++
				continue
			}
			if len(p.ifStack) >= limits.MaxIfDepth {
				return &StaticError{Kind: UnbalancedConditional, Offset: op.Offset, Detail: "conditional nesting too deep"}
			}
			stack, cond, _ := p.stack.Pop("")
			b, ok := asBool(cond)
			notif := op.Value == OP_NOTIF

			if ok {
				taken := b != notif
				p.stack = stack
				if taken {
					p.ifStack = append(append([]branchState(nil), p.ifStack...), condExecuting)
				} else {
					p.ifStack = append(append([]branchState(nil), p.ifStack...), condSkipping)
				}
				p.pc++
				continue
			}

			if !ex.incrFork() {
				return &ResourceError{Kind: PathExplosion}
			}

			truePath := p
			truePath.stack = stack
			truePath.preds = p.preds.Add(predicateFor(cond, !notif))
			truePath.ifStack = append(append([]branchState(nil), p.ifStack...), condExecuting)
			truePath.pc++

			falsePath := p
			falsePath.stack = stack
			falsePath.preds = p.preds.Add(predicateFor(cond, notif))
			falsePath.ifStack = append(append([]branchState(nil), p.ifStack...), condSkipping)
			falsePath.pc++

			if truePath.preds.IsSatisfiable() {
				if err := ex.exploreBranch(truePath); err != nil {
					return err
				}
			}
			if !falsePath.preds.IsSatisfiable() {
				return nil
			}
			p = falsePath
			continue

		case OP_ELSE:
			if len(p.ifStack) == 0 {
				return &StaticError{Kind: UnbalancedConditional, Offset: op.Offset, Detail: "OP_ELSE without matching OP_IF"}
			}
			// OP_ELSE just negates the top frame's state (spec.md §4.4);
			// consensus permits any number of OP_ELSE for one OP_IF, each
			// one toggling again.
			next := append([]branchState(nil), p.ifStack...)
			next[len(next)-1] = !next[len(next)-1]
			p.ifStack = next
			p.pc++
			continue

		case OP_ENDIF:
			if len(p.ifStack) == 0 {
				return &StaticError{Kind: UnbalancedConditional, Offset: op.Offset, Detail: "OP_ENDIF without matching OP_IF"}
			}
			p.ifStack = p.ifStack[:len(p.ifStack)-1]
			p.pc++
			continue
		}

		if skipping {
			// Always-illegal opcodes abort regardless of branch
			// (spec.md §9); everything else is a no-op while skipped.
			if op.Value == OP_VERIF || op.Value == OP_VERNOTIF {
				return &StaticError{Kind: DisabledOpcode, Offset: op.Offset, Detail: op.Name() + " is illegal regardless of execution"}
			}
			p.pc++
			continue
		}

		if ctx.version == limits.TapscriptV1 && op.Success {
			ex.addResult(SpendingPath{Conditions: nil, MinWitnessDepth: 0})
			return nil
		}

		if op.Value == OP_VERIF || op.Value == OP_VERNOTIF {
			return nil // IllegalOpcodeExecuted: prune this path only
		}

		if !op.IsPush() {
			var opErr error
			p.stack, opErr = p.stack.IncOps(ctx.opsCap)
			if opErr != nil {
				return &StaticError{Kind: OpcodeCountExceeded, Offset: op.Offset, Detail: opErr.Error()}
			}
		}

		step := evalNonControlOpcode(op, p.stack, ctx)
		if step.StaticErr != nil {
			return step.StaticErr
		}
		if step.Fail != nil {
			return nil // PathFailure: prune this branch only
		}

		if step.Fork != nil {
			if !ex.incrFork() {
				return &ResourceError{Kind: PathExplosion}
			}

			truePath := p
			truePath.stack = step.Fork.True.Stack
			if step.Fork.True.Predicate != nil {
				truePath.preds = p.preds.Add(*step.Fork.True.Predicate)
			}
			truePath.pc++
			if truePath.preds.IsSatisfiable() {
				if err := ex.exploreBranch(truePath); err != nil {
					return err
				}
			}

			falsePath := p
			falsePath.stack = step.Fork.False.Stack
			if step.Fork.False.Predicate != nil {
				falsePath.preds = p.preds.Add(*step.Fork.False.Predicate)
			}
			falsePath.pc++
			if !falsePath.preds.IsSatisfiable() {
				return nil
			}
			p = falsePath
			continue
		}

		if step.VerifyPredicate != nil {
			p.preds = p.preds.Add(*step.VerifyPredicate)
			if !p.preds.IsSatisfiable() {
				return nil
			}
		}
		p.stack = step.Stack
		p.pc++
	}

	return ex.finishPath(p)
}

// predicateFor builds the IsTrue/IsFalse predicate that OP_IF/OP_NOTIF adds
// to the branch actually taken: wantTrue reports whether this branch
// requires cond to be truthy.
func predicateFor(cond Value, wantTrue bool) Predicate {
	if wantTrue {
		return Predicate{Kind: PredIsTrue, Value: cond}
	}
	return Predicate{Kind: PredIsFalse, Value: cond}
}

// inSkippedBranch reports whether the currently executing code is inside
// any non-taken conditional arm: the combined executing state is the AND of
// every open frame (the teacher's vfExec), so one skipping ancestor must
// suppress execution even if a nested frame's own condition is true.
func inSkippedBranch(ifStack []branchState) bool {
	for _, s := range ifStack {
		if s == condSkipping {
			return true
		}
	}
	return false
}

// finishPath classifies a path that has run off the end of the script
// (spec.md §4.4 "end of program"): unbalanced conditionals are a static
// error, an empty stack or a statically-false top fail the path, and an
// undecidable top adds a final IsTrue predicate and succeeds.
func (ex *explorer) finishPath(p path) error {
	if len(p.ifStack) != 0 {
		return &StaticError{Kind: UnbalancedConditional, Offset: -1, Detail: "script ends with open OP_IF"}
	}
	if p.stack.Depth() == 0 {
		return nil
	}
	_, top, _ := p.stack.Top("")
	if b, ok := asBool(top); ok {
		if !b {
			return nil
		}
		ex.addResult(SpendingPath{
			Conditions:      p.preds.Predicates(),
			MinWitnessDepth: p.stack.MintedWitness(),
		})
		return nil
	}
	final := p.preds.Add(Predicate{Kind: PredIsTrue, Value: top})
	if !final.IsSatisfiable() {
		return nil
	}
	ex.addResult(SpendingPath{
		Conditions:      final.Predicates(),
		MinWitnessDepth: p.stack.MintedWitness(),
	})
	return nil
}
