// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package script implements the Bitcoin Script decoder and symbolic
// analyzer: Decode turns raw bytes into an Opcode stream (spec.md §4.1),
// Analyze explores every reachable spending path of that stream and
// reports the maximum required witness-stack depth plus the DNF set of
// spending conditions (spec.md §4.4, §4.5, §6).
package script

import (
	"context"

	"github.com/pkg/errors"

	"github.com/wangxinyu2018/bsa/internal/limits"
	"github.com/wangxinyu2018/bsa/internal/logging"
)

// Options configures one call to Analyze (spec.md §5, §6).
type Options struct {
	// Parallel, when true, hands the true branch of every fork in the DFS
	// to golang.org/x/sync/errgroup to explore concurrently, per spec.md §5
	// "MAY parallelize independent path subtrees; workers share only
	// read-only data."
	Parallel bool
}

// Analyze decodes and symbolically executes a script under the given
// ScriptVersion and RuleSet, returning the DNF set of spending conditions
// and the maximum witness-stack depth (spec.md §6). The returned error is
// a *DecodeError, *StaticError, or *ResourceError; a script with zero
// surviving spending paths (unspendable) is not an error.
func Analyze(scriptBytes []byte, version limits.ScriptVersion, ruleset limits.RuleSet, opts ...Options) (Analysis, error) {
	return AnalyzeContext(context.Background(), scriptBytes, version, ruleset, opts...)
}

// AnalyzeContext is Analyze with cooperative cancellation: ctx.Done()
// aborts the walk and surfaces a *ResourceError{Kind: Cancelled}.
func AnalyzeContext(ctx context.Context, scriptBytes []byte, version limits.ScriptVersion, ruleset limits.RuleSet, opts ...Options) (Analysis, error) {
	logging.CPrint(logging.DEBUG, "analyzing script", logging.LogFormat{
		"bytes":   len(scriptBytes),
		"version": version.String(),
		"ruleset": ruleset.String(),
	})

	ops, err := Decode(scriptBytes, version)
	if err != nil {
		return Analysis{}, errors.Wrap(err, "decode")
	}

	if err := scanWholeScript(ops); err != nil {
		return Analysis{}, errors.Wrap(err, "static check")
	}

	evalCtx := newEvalContext(version, ruleset)

	parallel := false
	if len(opts) > 0 {
		parallel = opts[0].Parallel
	}
	if ctx == nil {
		ctx = context.Background()
	}

	paths, err := walkPaths(ctx, ops, evalCtx, parallel)
	if err != nil {
		return Analysis{}, errors.Wrap(err, "path exploration")
	}

	normalized := normalize(paths)
	result := Analysis{
		MaxWitnessStackDepth: maxWitnessDepth(normalized),
		SpendingPaths:        normalized,
	}

	logging.CPrint(logging.DEBUG, "analysis complete", logging.LogFormat{
		"spending_paths": len(result.SpendingPaths),
		"max_depth":      result.MaxWitnessStackDepth,
	})
	return result, nil
}

// scanWholeScript performs the decode-adjacent, branch-independent checks
// spec.md §9 requires happen regardless of whether a byte is ever actually
// executed: disabled opcodes and the two always-illegal reserved opcodes
// make the whole script statically invalid even sitting in a never-taken
// OP_IF branch, because the real interpreter walks every opcode byte
// physically present and only no-ops the *effects* of a skipped branch.
func scanWholeScript(ops []Opcode) error {
	for _, op := range ops {
		if op.Disabled {
			return &StaticError{Kind: DisabledOpcode, Offset: op.Offset, Detail: op.Name() + " is disabled"}
		}
		if op.Value == OP_VERIF || op.Value == OP_VERNOTIF {
			return &StaticError{Kind: DisabledOpcode, Offset: op.Offset, Detail: op.Name() + " is illegal regardless of execution"}
		}
	}
	return nil
}
