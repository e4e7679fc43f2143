package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPredicateNegation(t *testing.T) {
	p := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(0, "")}
	neg := p.Negation()
	assert.Equal(t, PredIsFalse, neg.Kind)
	assert.Equal(t, p.Value.CanonicalKey(), neg.Value.CanonicalKey())

	assert.Equal(t, PredIsTrue, neg.Negation().Kind)
}

func TestPredicateEqualCanonicalKeyIsOrderIndependent(t *testing.T) {
	a := NewWitnessRef(0, "")
	b := NewWitnessRef(1, "")
	p1 := Predicate{Kind: PredEqual, A: a, B: b}
	p2 := Predicate{Kind: PredEqual, A: b, B: a}
	assert.Equal(t, p1.CanonicalKey(), p2.CanonicalKey())
}

func TestConjunctionAddDeduplicates(t *testing.T) {
	c := NewConjunction()
	p := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(0, "")}
	c = c.Add(p)
	c = c.Add(p)
	assert.Equal(t, 1, c.Len())
}

func TestConjunctionAddDoesNotMutateOriginal(t *testing.T) {
	c1 := NewConjunction()
	c2 := c1.Add(Predicate{Kind: PredIsTrue, Value: NewWitnessRef(0, "")})
	assert.Equal(t, 0, c1.Len())
	assert.Equal(t, 1, c2.Len())
}

func TestConjunctionIsSatisfiableDetectsContradiction(t *testing.T) {
	c := NewConjunction()
	v := NewWitnessRef(0, "")
	c = c.Add(Predicate{Kind: PredIsTrue, Value: v})
	assert.True(t, c.IsSatisfiable())

	c = c.Add(Predicate{Kind: PredIsFalse, Value: v})
	assert.False(t, c.IsSatisfiable())
}

func TestConjunctionHas(t *testing.T) {
	c := NewConjunction()
	p := Predicate{Kind: PredIsTrue, Value: NewWitnessRef(0, "")}
	assert.False(t, c.Has(p.CanonicalKey()))
	c = c.Add(p)
	assert.True(t, c.Has(p.CanonicalKey()))
}
