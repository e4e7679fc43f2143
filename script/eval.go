// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import (
	"github.com/wangxinyu2018/bsa/internal/limits"
)

// evalContext carries the read-only configuration shared by every path of
// one analysis — the teacher's Engine carries the analogous flags/sigCache
// fields directly on Engine; here they are split out so StackModel (and
// Path) stay pure value types while evalContext is shared, read-only data
// (spec.md §5 "workers share only read-only data").
type evalContext struct {
	version        limits.ScriptVersion
	ruleset        limits.RuleSet
	opsCap         int
	numWidth       int
	requireMinimal bool
}

func newEvalContext(version limits.ScriptVersion, ruleset limits.RuleSet) *evalContext {
	return &evalContext{
		version:        version,
		ruleset:        ruleset,
		opsCap:         limits.MaxOpsPerScript(version),
		numWidth:       limits.MaxNumericOperandBytes(version),
		requireMinimal: ruleset == limits.ConsensusAndPolicy,
	}
}

// Branch is one side of a StepResult fork: a resulting stack and an
// optional predicate to add to that branch's conjunction (nil means no
// predicate is added on that branch).
type Branch struct {
	Stack     StackModel
	Predicate *Predicate
}

// Fork is returned by opcodes whose continuation genuinely splits into two
// live worlds: OP_IF/OP_NOTIF (handled in path.go) and the signature-check
// family (spec.md §4.3: "push Bool(true) guarded by that predicate on one
// branch and Bool(false) on the other").
type Fork struct {
	True  Branch
	False Branch
}

// StepResult is the evaluator's verdict for one opcode application,
// mirroring spec.md §4.3's "Continue, Fork, Succeed, Fail, StaticError".
type StepResult struct {
	Stack     StackModel
	Fork      *Fork
	Succeed   bool
	Fail      *PathFailure
	StaticErr *StaticError

	// VerifyPredicate is set by opcodes that add a single predicate to the
	// conjunction and continue on one path, without forking (OP_VERIFY,
	// EQUALVERIFY, CHECKSIGVERIFY, CHECKLOCKTIMEVERIFY, ...).
	VerifyPredicate *Predicate
}

func contResult(st StackModel) StepResult { return StepResult{Stack: st} }

func failResult(kind PathFailureKind, offset int) StepResult {
	return StepResult{Fail: &PathFailure{Kind: kind, Offset: offset}}
}

func staticResult(kind StaticErrorKind, offset int, detail string) StepResult {
	return StepResult{StaticErr: &StaticError{Kind: kind, Offset: offset, Detail: detail}}
}

// evalNonControlOpcode applies every opcode except OP_IF/NOTIF/ELSE/ENDIF,
// which the path explorer owns directly because forking there is tied to
// if_stack bookkeeping (spec.md §4.4). Disabled opcodes and always-illegal
// opcodes are assumed already rejected by a whole-script prepass (spec.md
// §9 "Conditional-branch skipping"); reserved opcodes that are only
// illegal when executed are handled here.
func evalNonControlOpcode(op Opcode, st StackModel, ctx *evalContext) StepResult {
	if op.IsPush() {
		// Policy (MINIMALDATA): an executed non-minimal push fails the
		// path, the same way a NULLDUMMY violation does below.
		if ctx.requireMinimal && !op.Minimal {
			return failResult(VerifyFailedStatically, op.Offset)
		}
		return evalPush(op, st)
	}

	switch op.Value {
	case OP_VER, OP_RESERVED, OP_RESERVED1, OP_RESERVED2:
		return failResult(ReservedOpcodeExecuted, op.Offset)

	case OP_NOP, OP_NOP1, OP_NOP4, OP_NOP5, OP_NOP6, OP_NOP7, OP_NOP8, OP_NOP9, OP_NOP10, OP_CODESEPARATOR:
		return contResult(st)

	case OP_RETURN:
		return failResult(ExplicitReturn, op.Offset)

	case OP_VERIFY:
		return evalVerifyTop(st, op.Offset)

	case OP_TOALTSTACK:
		out, err := st.ToAlt()
		if err != nil {
			return failResult(EmptyStackOnEnd, op.Offset)
		}
		return contResult(out)

	case OP_FROMALTSTACK:
		out, err := st.FromAlt()
		if err != nil {
			return failResult(EmptyStackOnEnd, op.Offset)
		}
		return contResult(out)

	case OP_DEPTH:
		return contResult(st.Push(NewInt(int64(st.Depth()))))

	case OP_DROP:
		out, _, _ := st.PopN(1, nil)
		return contResult(out)
	case OP_2DROP:
		out, _, _ := st.PopN(2, nil)
		return contResult(out)

	case OP_DUP:
		out, v, _ := st.Top("")
		return contResult(out.Push(v))
	case OP_2DUP:
		out, vs, _ := st.PopN(2, nil)
		out = out.Push(vs[1]).Push(vs[0]).Push(vs[1]).Push(vs[0])
		return contResult(out)
	case OP_3DUP:
		out, vs, _ := st.PopN(3, nil)
		out = out.Push(vs[2]).Push(vs[1]).Push(vs[0]).Push(vs[2]).Push(vs[1]).Push(vs[0])
		return contResult(out)
	case OP_IFDUP:
		out, v, _ := st.Top("")
		if b, ok := asBool(v); ok && !b {
			return contResult(out)
		}
		return contResult(out.Push(v))

	case OP_NIP:
		out, _, _ := st.Remove(1)
		return contResult(out)
	case OP_OVER:
		out, v, _ := st.Peek(1, "")
		return contResult(out.Push(v))
	case OP_2OVER:
		out, a, _ := st.Peek(3, "")
		out, b, _ := out.Peek(2, "")
		return contResult(out.Push(a).Push(b))

	case OP_PICK, OP_ROLL:
		out, nv, _ := st.Pop("")
		n, ok, ierr := asInt(nv, ctx.numWidth, ctx.requireMinimal)
		if ierr != nil {
			return failResult(NumericOverflow, op.Offset)
		}
		if !ok {
			return staticResult(NonConcreteRequired, op.Offset, op.Name()+" requires a concrete index")
		}
		// A negative index can never be satisfied regardless of how much
		// witness data exists below the known stack — the stack beneath is
		// unbounded (ensureDepth mints on demand), so only n<0 fails.
		if n < 0 {
			return failResult(EmptyStackOnEnd, op.Offset)
		}
		if op.Value == OP_PICK {
			out2, v, _ := out.Peek(int(n), "")
			return contResult(out2.Push(v))
		}
		out2, v, _ := out.Remove(int(n))
		return contResult(out2.Push(v))

	case OP_ROT:
		out, vs, _ := st.PopN(3, nil)
		// vs[0]=top=c, vs[1]=b, vs[2]=a (bottom of the three); ROT -> b c a
		out = out.Push(vs[1]).Push(vs[0]).Push(vs[2])
		return contResult(out)
	case OP_SWAP:
		out, vs, _ := st.PopN(2, nil)
		out = out.Push(vs[0]).Push(vs[1])
		return contResult(out)
	case OP_2SWAP:
		out, vs, _ := st.PopN(4, nil)
		// vs top-to-bottom: d c b a ; want b a d c
		out = out.Push(vs[1]).Push(vs[0]).Push(vs[3]).Push(vs[2])
		return contResult(out)
	case OP_2ROT:
		out, vs, _ := st.PopN(6, nil)
		// vs top..bottom: f e d c b a ; 2ROT -> c d e f a b
		out = out.Push(vs[3]).Push(vs[2]).Push(vs[1]).Push(vs[0]).Push(vs[5]).Push(vs[4])
		return contResult(out)
	case OP_TUCK:
		out, vs, _ := st.PopN(2, nil)
		// vs[0]=top=b, vs[1]=a ; result: b a b
		out = out.Push(vs[0]).Push(vs[1]).Push(vs[0])
		return contResult(out)

	case OP_SIZE:
		out, v, _ := st.Top("")
		if b, ok := v.ToBytes(); ok {
			return contResult(out.Push(NewInt(int64(len(b)))))
		}
		return contResult(out.Push(newDerived("SIZE", v)))

	case OP_EQUAL:
		out, vs, _ := st.PopN(2, nil)
		return contResult(out.Push(Equal(vs[0], vs[1])))
	case OP_EQUALVERIFY:
		out, vs, _ := st.PopN(2, nil)
		eq := Equal(vs[0], vs[1])
		return evalVerifyEquality(out, eq, vs[0], vs[1], op.Offset)

	case OP_1ADD:
		return evalUnaryArith(op, st, ctx, "1ADD", func(n int64) int64 { return n + 1 })
	case OP_1SUB:
		return evalUnaryArith(op, st, ctx, "1SUB", func(n int64) int64 { return n - 1 })
	case OP_NEGATE:
		return evalUnaryArith(op, st, ctx, "NEGATE", func(n int64) int64 { return -n })
	case OP_ABS:
		return evalUnaryArith(op, st, ctx, "ABS", func(n int64) int64 {
			if n < 0 {
				return -n
			}
			return n
		})
	case OP_NOT:
		out, v, _ := st.Pop("")
		return contResult(out.Push(boolFold("NOT", v, func(b bool) bool { return !b })))
	case OP_0NOTEQUAL:
		out, v, _ := st.Pop("")
		n, ok, ierr := asInt(v, ctx.numWidth, ctx.requireMinimal)
		if ierr != nil {
			return failResult(NumericOverflow, op.Offset)
		}
		if ok {
			return contResult(out.Push(NewBool(n != 0)))
		}
		return contResult(out.Push(newDerived("0NOTEQUAL", v)))

	case OP_ADD:
		return evalBinaryArith(op, st, ctx, "ADD", func(a, b int64) int64 { return a + b })
	case OP_SUB:
		return evalBinaryArith(op, st, ctx, "SUB", func(a, b int64) int64 { return a - b })
	case OP_MIN:
		return evalBinaryArith(op, st, ctx, "MIN", func(a, b int64) int64 {
			if a < b {
				return a
			}
			return b
		})
	case OP_MAX:
		return evalBinaryArith(op, st, ctx, "MAX", func(a, b int64) int64 {
			if a > b {
				return a
			}
			return b
		})

	case OP_BOOLAND:
		return evalBoolBinary(op, st, "BOOLAND", func(a, b bool) bool { return a && b })
	case OP_BOOLOR:
		return evalBoolBinary(op, st, "BOOLOR", func(a, b bool) bool { return a || b })

	case OP_NUMEQUAL:
		return evalCompare(op, st, ctx, "NUMEQUAL", func(a, b int64) bool { return a == b })
	case OP_NUMEQUALVERIFY:
		out, vs, _ := st.PopN(2, nil)
		eqv, err := arithBinary("NUMEQUAL", vs[1], vs[0], ctx.numWidth, ctx.requireMinimal, func(a, b int64) int64 {
			if a == b {
				return 1
			}
			return 0
		})
		if err != nil {
			return failResult(NumericOverflow, op.Offset)
		}
		return evalVerifyEquality(out, boolFromFoldedInt(eqv), vs[1], vs[0], op.Offset)
	case OP_NUMNOTEQUAL:
		return evalCompare(op, st, ctx, "NUMNOTEQUAL", func(a, b int64) bool { return a != b })
	case OP_LESSTHAN:
		return evalCompare(op, st, ctx, "LESSTHAN", func(a, b int64) bool { return a < b })
	case OP_GREATERTHAN:
		return evalCompare(op, st, ctx, "GREATERTHAN", func(a, b int64) bool { return a > b })
	case OP_LESSTHANOREQUAL:
		return evalCompare(op, st, ctx, "LESSTHANOREQUAL", func(a, b int64) bool { return a <= b })
	case OP_GREATERTHANOREQUAL:
		return evalCompare(op, st, ctx, "GREATERTHANOREQUAL", func(a, b int64) bool { return a >= b })

	case OP_WITHIN:
		out, vs, _ := st.PopN(3, nil)
		x, xok, err := asInt(vs[2], ctx.numWidth, ctx.requireMinimal)
		if err != nil {
			return failResult(NumericOverflow, op.Offset)
		}
		lo, lok, err := asInt(vs[1], ctx.numWidth, ctx.requireMinimal)
		if err != nil {
			return failResult(NumericOverflow, op.Offset)
		}
		hi, hok, err := asInt(vs[0], ctx.numWidth, ctx.requireMinimal)
		if err != nil {
			return failResult(NumericOverflow, op.Offset)
		}
		if xok && lok && hok {
			return contResult(out.Push(NewBool(x >= lo && x < hi)))
		}
		return contResult(out.Push(newDerived("WITHIN", vs[2], vs[1], vs[0])))

	case OP_RIPEMD160:
		out, v, _ := st.Pop("")
		return contResult(out.Push(Ripemd160Of(v)))
	case OP_SHA1:
		out, v, _ := st.Pop("")
		return contResult(out.Push(Sha1Of(v)))
	case OP_SHA256:
		out, v, _ := st.Pop("")
		return contResult(out.Push(Sha256Of(v)))
	case OP_HASH160:
		out, v, _ := st.Pop("")
		return contResult(out.Push(Hash160Of(v)))
	case OP_HASH256:
		out, v, _ := st.Pop("")
		return contResult(out.Push(Hash256Of(v)))

	case OP_CHECKSIG, OP_CHECKSIGVERIFY:
		return evalCheckSig(op, st, ctx)
	case OP_CHECKSIGADD:
		return evalCheckSigAdd(op, st, ctx)
	case OP_CHECKMULTISIG, OP_CHECKMULTISIGVERIFY:
		return evalCheckMultisig(op, st, ctx)

	case OP_CHECKLOCKTIMEVERIFY:
		return evalLockTimeLike(op, st, ctx, PredLockTime)
	case OP_CHECKSEQUENCEVERIFY:
		return evalLockTimeLike(op, st, ctx, PredSequence)

	default:
		// Opcode.Success is resolved as a whole-script prepass (spec.md
		// §4.3 "Tapscript OP_SUCCESS*"); reaching here for an unnamed
		// byte under a non-tapscript version cannot happen because
		// Decode already rejected it.
		return contResult(st)
	}
}

func evalPush(op Opcode, st StackModel) StepResult {
	switch {
	case op.Value == OP_0:
		return contResult(st.Push(NewBytes(nil)))
	case op.Value == OP_1NEGATE:
		return contResult(st.Push(NewInt(-1)))
	case op.Value >= OP_1 && op.Value <= OP_16:
		return contResult(st.Push(NewInt(int64(op.Value - OP_1 + 1))))
	default:
		return contResult(st.Push(NewBytes(op.Data)))
	}
}

func evalUnaryArith(op Opcode, st StackModel, ctx *evalContext, name string, fn func(int64) int64) StepResult {
	out, v, _ := st.Pop("")
	result, aerr := arithUnary(name, v, ctx.numWidth, ctx.requireMinimal, fn)
	if aerr != nil {
		return failResult(NumericOverflow, op.Offset)
	}
	return contResult(out.Push(result))
}

func evalBinaryArith(op Opcode, st StackModel, ctx *evalContext, name string, fn func(int64, int64) int64) StepResult {
	out, vs, _ := st.PopN(2, nil)
	// vs[0] = top = b, vs[1] = a; Bitcoin's ADD/SUB etc. operate (a,b) with
	// a below b on the stack.
	result, aerr := arithBinary(name, vs[1], vs[0], ctx.numWidth, ctx.requireMinimal, fn)
	if aerr != nil {
		return failResult(NumericOverflow, op.Offset)
	}
	return contResult(out.Push(result))
}

func evalBoolBinary(op Opcode, st StackModel, name string, fn func(bool, bool) bool) StepResult {
	out, vs, _ := st.PopN(2, nil)
	a, aok := asBool(vs[1])
	b, bok := asBool(vs[0])
	if aok && bok {
		return contResult(out.Push(NewBool(fn(a, b))))
	}
	return contResult(out.Push(newDerived(name, vs[1], vs[0])))
}

func evalCompare(op Opcode, st StackModel, ctx *evalContext, name string, fn func(int64, int64) bool) StepResult {
	out, vs, _ := st.PopN(2, nil)
	a, aok, err := asInt(vs[1], ctx.numWidth, ctx.requireMinimal)
	if err != nil {
		return failResult(NumericOverflow, op.Offset)
	}
	b, bok, err := asInt(vs[0], ctx.numWidth, ctx.requireMinimal)
	if err != nil {
		return failResult(NumericOverflow, op.Offset)
	}
	if aok && bok {
		return contResult(out.Push(NewBool(fn(a, b))))
	}
	return contResult(out.Push(newDerived(name, vs[1], vs[0])))
}

func boolFromFoldedInt(v Value) Value {
	if v.Kind == KindInt {
		return NewBool(v.Int != 0)
	}
	return v
}

// evalVerifyTop implements OP_VERIFY (spec.md §4.3): pop+test the top; a
// statically-false top prunes the path, a statically-true top continues
// silently, and an undecidable top adds an IsTrue predicate and continues.
func evalVerifyTop(st StackModel, offset int) StepResult {
	out, v, _ := st.Pop("")
	if b, ok := asBool(v); ok {
		if !b {
			return failResult(VerifyFailedStatically, offset)
		}
		return contResult(out)
	}
	return StepResult{Stack: out, VerifyPredicate: &Predicate{Kind: PredIsTrue, Value: v}}
}

// evalVerifyEquality implements EQUALVERIFY/NUMEQUALVERIFY (spec.md §4.3):
// if the underlying comparands reduce to a Derived hash expression versus
// a concrete target, the predicate emitted is HashPreimage, not a bare
// IsTrue(Equal(...)) — spec.md §4.2 "Hash preimage constraints are only
// emitted when the evaluator sees an OP_EQUALVERIFY or OP_EQUAL comparing
// such a Derived hash with a concrete target."
func evalVerifyEquality(st StackModel, eq Value, a, b Value, offset int) StepResult {
	if bv, ok := asBool(eq); ok {
		if !bv {
			return failResult(VerifyFailedStatically, offset)
		}
		return contResult(st)
	}
	if p, ok := hashPreimagePredicate(a, b); ok {
		return StepResult{Stack: st, VerifyPredicate: &p}
	}
	return StepResult{Stack: st, VerifyPredicate: &Predicate{Kind: PredEqual, A: a, B: b}}
}

// hashPreimagePredicate recognizes "Derived(hashOp, x) == concreteDigest"
// (in either operand order) and builds the corresponding HashPreimage
// predicate, per spec.md §4.2.
func hashPreimagePredicate(a, b Value) (Predicate, bool) {
	derived, digest := a, b
	if a.Kind != KindDerived {
		derived, digest = b, a
	}
	if derived.Kind != KindDerived || len(derived.DerivedArgs) != 1 {
		return Predicate{}, false
	}
	switch derived.DerivedOp {
	case "RIPEMD160", "SHA1", "SHA256", "HASH160", "HASH256":
	default:
		return Predicate{}, false
	}
	if !digest.IsConcrete() {
		return Predicate{}, false
	}
	return Predicate{
		Kind:     PredHashPreimage,
		HashOp:   derived.DerivedOp,
		Digest:   digest,
		Preimage: derived.DerivedArgs[0],
	}, true
}

// evalCheckSig implements OP_CHECKSIG/OP_CHECKSIGVERIFY (spec.md §4.3).
func evalCheckSig(op Opcode, st StackModel, ctx *evalContext) StepResult {
	out, vs, _ := st.PopN(2, []string{"pubkey", "sig"})
	pubkey, sig := vs[0], vs[1]

	tapscript := ctx.version == limits.TapscriptV1
	sigBytes, sigConcrete := sig.ToBytes()
	pubBytes, pubConcrete := pubkey.ToBytes()

	sigIllFormed := sigConcrete && len(sigBytes) > 0 && !tapscript && !isStaticallyWellFormedSignature(sigBytes)
	if sigIllFormed && ctx.ruleset == limits.ConsensusOnly && checkSignatureEncoding(sigBytes[:len(sigBytes)-1]) == errHighS {
		// Low-S is a policy rule; consensus accepts a high-S signature.
		sigIllFormed = false
	}
	if sigConcrete && (isEmptySignature(sigBytes) || sigIllFormed) {
		// Statically ill-formed/empty signature: consensus always
		// evaluates this as a failed check, no predicate (spec.md §4.3).
		return pushCheckSigResult(op, out, nil, false)
	}
	if pubConcrete && !isStaticallyWellFormedPubKey(pubBytes, tapscript) {
		return pushCheckSigResult(op, out, nil, false)
	}

	pred := Predicate{Kind: PredSignatureValid, PubKey: pubkey, Signature: sig}
	if op.Value == OP_CHECKSIGVERIFY {
		return StepResult{Stack: out, VerifyPredicate: &pred}
	}
	return pushCheckSigResult(op, out, &pred, true)
}

// evalCheckSigAdd implements tapscript's OP_CHECKSIGADD: pop sig, n, pubkey
// (consensus order), push n+1 guarded by SignatureValid, or n unchanged
// otherwise.
func evalCheckSigAdd(op Opcode, st StackModel, ctx *evalContext) StepResult {
	out, vs, _ := st.PopN(3, []string{"pubkey", "", "sig"})
	pubkey, n, sig := vs[0], vs[1], vs[2]

	nv, ok, err := asInt(n, ctx.numWidth, ctx.requireMinimal)
	if err != nil {
		return failResult(NumericOverflow, op.Offset)
	}
	if !ok {
		return staticResult(NonConcreteRequired, op.Offset, "OP_CHECKSIGADD requires a concrete accumulator")
	}

	sigBytes, sigConcrete := sig.ToBytes()
	if sigConcrete && isEmptySignature(sigBytes) {
		return contResult(out.Push(NewInt(nv)))
	}
	pubBytes, pubConcrete := pubkey.ToBytes()
	if pubConcrete && !isStaticallyWellFormedPubKey(pubBytes, true) {
		return contResult(out.Push(NewInt(nv)))
	}

	pred := Predicate{Kind: PredSignatureValid, PubKey: pubkey, Signature: sig}
	return StepResult{
		Fork: &Fork{
			True:  Branch{Stack: out.Push(NewInt(nv + 1)), Predicate: &pred},
			False: Branch{Stack: out.Push(NewInt(nv))},
		},
	}
}

// evalCheckMultisig implements OP_CHECKMULTISIG(VERIFY) (spec.md §4.3):
// requires concrete N and M; pops N pubkeys, M signatures, and the
// consensus "dummy" extra element, then forks on an aggregate
// SignatureValid predicate covering the M-of-N requirement.
func evalCheckMultisig(op Opcode, st StackModel, ctx *evalContext) StepResult {
	out, nv, _ := st.Pop("")
	n, ok, ierr := asInt(nv, ctx.numWidth, ctx.requireMinimal)
	if ierr != nil {
		return failResult(NumericOverflow, op.Offset)
	}
	if !ok || n < 0 || n > limits.MaxMultisigKeys {
		return staticResult(InvalidMultisigCount, op.Offset, "OP_CHECKMULTISIG requires a concrete, bounded N")
	}
	out, pubkeys, _ := out.PopN(int(n), nil)

	out, mv, _ := out.Pop("")
	m, ok, ierr := asInt(mv, ctx.numWidth, ctx.requireMinimal)
	if ierr != nil {
		return failResult(NumericOverflow, op.Offset)
	}
	if !ok || m < 0 || m > n {
		return staticResult(InvalidMultisigCount, op.Offset, "OP_CHECKMULTISIG requires a concrete 0<=M<=N")
	}
	sigLabels := make([]string, m)
	for i := range sigLabels {
		sigLabels[i] = "sig"
	}
	out, sigs, _ := out.PopN(int(m), sigLabels)

	// Consensus's historical off-by-one: one extra element is popped and
	// ignored (the "dummy"). Under ConsensusAndPolicy, NULLDUMMY requires
	// it be the empty byte string; enforced only when it is concrete.
	out, dummy, _ := out.Pop("")
	if ctx.ruleset == limits.ConsensusAndPolicy {
		if b, concrete := dummy.ToBytes(); concrete && len(b) != 0 {
			return failResult(VerifyFailedStatically, op.Offset)
		}
	}

	pred := Predicate{Kind: PredSignatureValid, Keys: pubkeys, Sigs: sigs, M: int(m)}
	if op.Value == OP_CHECKMULTISIGVERIFY {
		return StepResult{Stack: out, VerifyPredicate: &pred}
	}
	return pushCheckSigResult(op, out, &pred, true)
}

func pushCheckSigResult(op Opcode, st StackModel, pred *Predicate, canSucceed bool) StepResult {
	if !canSucceed {
		return contResult(st.Push(NewBool(false)))
	}
	if op.Value == OP_CHECKSIGVERIFY || op.Value == OP_CHECKMULTISIGVERIFY {
		return StepResult{Stack: st, VerifyPredicate: pred}
	}
	return StepResult{
		Fork: &Fork{
			True:  Branch{Stack: st.Push(NewBool(true)), Predicate: pred},
			False: Branch{Stack: st.Push(NewBool(false))},
		},
	}
}

// evalLockTimeLike implements OP_CHECKLOCKTIMEVERIFY/OP_CHECKSEQUENCEVERIFY
// (spec.md §4.3): peek (do not pop) the top, emit a LockTime/Sequence
// predicate unconditionally, per spec.md example 4.
func evalLockTimeLike(op Opcode, st StackModel, ctx *evalContext, kind PredicateKind) StepResult {
	out, v, _ := st.Top("")
	// BIP65/BIP112 numeric operands are up to 5 bytes wide; only the width
	// check matters here since the comparand itself stays symbolic (the
	// predicate records the raw value, not a folded threshold).
	if _, _, err := asInt(v, 5, ctx.requireMinimal); err != nil {
		return failResult(NumericOverflow, op.Offset)
	}
	pred := Predicate{Kind: kind, Cmp: "ge", N: v}
	return StepResult{Stack: out, VerifyPredicate: &pred}
}
