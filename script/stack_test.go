package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPushAndPop(t *testing.T) {
	s := NewStackModel()
	s = s.Push(NewInt(1)).Push(NewInt(2))
	assert.Equal(t, 2, s.Depth())

	out, v, err := s.Pop("")
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int)
	assert.Equal(t, 1, out.Depth())
}

func TestPopMintsWitnessRefOnEmptyStack(t *testing.T) {
	s := NewStackModel()
	out, v, err := s.Pop("sig")
	require.NoError(t, err)
	assert.Equal(t, KindWitnessRef, v.Kind)
	assert.Equal(t, 0, v.WitnessIndex)
	assert.Equal(t, "sig", v.WitnessLabel)
	assert.Equal(t, 1, out.MintedWitness())
}

func TestPopNOrdersValuesTopFirstAndLabelsInOrder(t *testing.T) {
	s := NewStackModel()
	out, vs, err := s.PopN(2, []string{"sig", "pubkey"})
	require.NoError(t, err)
	require.Len(t, vs, 2)
	assert.Equal(t, "sig", vs[0].WitnessLabel)
	assert.Equal(t, "pubkey", vs[1].WitnessLabel)
	assert.Equal(t, 0, vs[0].WitnessIndex)
	assert.Equal(t, 1, vs[1].WitnessIndex)
	assert.Equal(t, 2, out.MintedWitness())
	assert.Equal(t, 0, out.Depth())
}

func TestPeekDoesNotRemove(t *testing.T) {
	s := NewStackModel().Push(NewInt(7))
	out, v, err := s.Peek(0, "")
	require.NoError(t, err)
	assert.Equal(t, int64(7), v.Int)
	assert.Equal(t, 1, out.Depth())
}

func TestStackModelValueSemantics(t *testing.T) {
	s1 := NewStackModel().Push(NewInt(1))
	s2 := s1.Push(NewInt(2))
	assert.Equal(t, 1, s1.Depth(), "pushing onto s2 must not mutate s1")
	assert.Equal(t, 2, s2.Depth())
}

func TestToAltAndFromAlt(t *testing.T) {
	s := NewStackModel().Push(NewInt(9))
	s, err := s.ToAlt()
	require.NoError(t, err)
	assert.Equal(t, 0, s.Depth())
	assert.Equal(t, 1, s.AltDepth())

	s, err = s.FromAlt()
	require.NoError(t, err)
	assert.Equal(t, 1, s.Depth())
	assert.Equal(t, 0, s.AltDepth())
}

func TestFromAltOnEmptyAltStackErrors(t *testing.T) {
	s := NewStackModel()
	_, err := s.FromAlt()
	assert.Error(t, err)
}

func TestIncOpsEnforcesCap(t *testing.T) {
	s := NewStackModel()
	var err error
	for i := 0; i < 3; i++ {
		s, err = s.IncOps(3)
		require.NoError(t, err)
	}
	_, err = s.IncOps(3)
	assert.Error(t, err)
}

func TestRemoveDeletesAtDepth(t *testing.T) {
	s := NewStackModel().Push(NewInt(1)).Push(NewInt(2)).Push(NewInt(3))
	out, v, err := s.Remove(1)
	require.NoError(t, err)
	assert.Equal(t, int64(2), v.Int)
	assert.Equal(t, 2, out.Depth())
	_, top, _ := out.Top("")
	assert.Equal(t, int64(3), top.Int)
}
