package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeMergesDuplicatePathsKeepingLargerDepth(t *testing.T) {
	p := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(0, "")}
	paths := []SpendingPath{
		{Conditions: []Predicate{p}, MinWitnessDepth: 1},
		{Conditions: []Predicate{p}, MinWitnessDepth: 3},
	}
	out := normalize(paths)
	assert.Len(t, out, 1)
	assert.Equal(t, 3, out[0].MinWitnessDepth)
}

func TestNormalizeDropsStrictlySubsumedPaths(t *testing.T) {
	a := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(0, "")}
	b := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(1, "")}
	paths := []SpendingPath{
		{Conditions: []Predicate{a}, MinWitnessDepth: 1},
		{Conditions: []Predicate{a, b}, MinWitnessDepth: 2},
	}
	out := normalize(paths)
	assert.Len(t, out, 1)
	assert.Equal(t, conditionKey([]Predicate{a}), conditionKey(out[0].Conditions))
}

func TestNormalizeKeepsIncomparablePaths(t *testing.T) {
	a := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(0, "")}
	b := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(1, "")}
	paths := []SpendingPath{
		{Conditions: []Predicate{a}},
		{Conditions: []Predicate{b}},
	}
	out := normalize(paths)
	assert.Len(t, out, 2)
}

func TestMaxWitnessDepth(t *testing.T) {
	paths := []SpendingPath{{MinWitnessDepth: 2}, {MinWitnessDepth: 5}, {MinWitnessDepth: 1}}
	assert.Equal(t, 5, maxWitnessDepth(paths))
}

func TestMaxWitnessDepthEmpty(t *testing.T) {
	assert.Equal(t, 0, maxWitnessDepth(nil))
}

func TestFormatPathUnconditional(t *testing.T) {
	s := FormatPath(SpendingPath{MinWitnessDepth: 2})
	assert.Equal(t, "witness depth=2 (unconditional)", s)
}

func TestFormatPathWithConditions(t *testing.T) {
	p := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(0, "x")}
	s := FormatPath(SpendingPath{Conditions: []Predicate{p}, MinWitnessDepth: 1})
	assert.Contains(t, s, "witness depth=1:")
	assert.Contains(t, s, "IsTrue(")
}
