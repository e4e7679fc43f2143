// Copyright (c) 2013-2015 The btcsuite developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package script

import "fmt"

// DecodeErrorKind enumerates the ways the byte-level decoder can fail
// (spec.md §4.1, §7).
type DecodeErrorKind int

const (
	UnexpectedEnd DecodeErrorKind = iota
	ScriptTooLong
	InvalidPushLength
	UnknownOpcodeInVersion
)

func (k DecodeErrorKind) String() string {
	switch k {
	case UnexpectedEnd:
		return "UnexpectedEnd"
	case ScriptTooLong:
		return "ScriptTooLong"
	case InvalidPushLength:
		return "InvalidPushLength"
	case UnknownOpcodeInVersion:
		return "UnknownOpcodeInVersion"
	default:
		return "UnknownDecodeError"
	}
}

// DecodeError aborts the whole analysis; it carries the byte offset at
// which decoding failed, matching the teacher's ErrStack* sentinel style
// but parameterized the way a static analyzer's diagnostics need to be.
type DecodeError struct {
	Kind   DecodeErrorKind
	Offset int
	Detail string
}

func (e *DecodeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("decode error %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("decode error %s at offset %d", e.Kind, e.Offset)
}

// StaticErrorKind enumerates whole-analysis aborts raised during symbolic
// execution (spec.md §7).
type StaticErrorKind int

const (
	DisabledOpcode StaticErrorKind = iota
	UnbalancedConditional
	NonConcreteRequired
	OpcodeCountExceeded
	StackSizeExceeded
	InvalidMultisigCount
)

func (k StaticErrorKind) String() string {
	switch k {
	case DisabledOpcode:
		return "DisabledOpcode"
	case UnbalancedConditional:
		return "UnbalancedConditional"
	case NonConcreteRequired:
		return "NonConcreteRequired"
	case OpcodeCountExceeded:
		return "OpcodeCountExceeded"
	case StackSizeExceeded:
		return "StackSizeExceeded"
	case InvalidMultisigCount:
		return "InvalidMultisigCount"
	default:
		return "UnknownStaticError"
	}
}

// StaticError aborts the whole analysis, not just one path.
type StaticError struct {
	Kind   StaticErrorKind
	Offset int
	Detail string
}

func (e *StaticError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("static error %s at offset %d: %s", e.Kind, e.Offset, e.Detail)
	}
	return fmt.Sprintf("static error %s at offset %d", e.Kind, e.Offset)
}

// PathFailureKind enumerates per-path prunings; these never escape the
// path explorer (spec.md §7).
type PathFailureKind int

const (
	ExplicitReturn PathFailureKind = iota
	VerifyFailedStatically
	EmptyStackOnEnd
	FalseTopOnEnd
	UnsatisfiablePredicateSet
	ReservedOpcodeExecuted
	IllegalOpcodeExecuted
	NumericOverflow
)

func (k PathFailureKind) String() string {
	switch k {
	case ExplicitReturn:
		return "ExplicitReturn"
	case VerifyFailedStatically:
		return "VerifyFailedStatically"
	case EmptyStackOnEnd:
		return "EmptyStackOnEnd"
	case FalseTopOnEnd:
		return "FalseTopOnEnd"
	case UnsatisfiablePredicateSet:
		return "UnsatisfiablePredicateSet"
	case ReservedOpcodeExecuted:
		return "ReservedOpcodeExecuted"
	case IllegalOpcodeExecuted:
		return "IllegalOpcodeExecuted"
	case NumericOverflow:
		return "NumericOverflow"
	default:
		return "UnknownPathFailure"
	}
}

// PathFailure prunes exactly one path; it reduces the success set but is
// never returned to the caller directly.
type PathFailure struct {
	Kind   PathFailureKind
	Offset int
}

func (e *PathFailure) Error() string {
	return fmt.Sprintf("path failure %s at offset %d", e.Kind, e.Offset)
}

// ResourceErrorKind enumerates resource-exhaustion/cancellation aborts
// (spec.md §5, §7).
type ResourceErrorKind int

const (
	PathExplosion ResourceErrorKind = iota
	Cancelled
)

func (k ResourceErrorKind) String() string {
	if k == Cancelled {
		return "Cancelled"
	}
	return "PathExplosion"
}

// ResourceError aborts the whole analysis.
type ResourceError struct {
	Kind ResourceErrorKind
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("resource error: %s", e.Kind)
}
