package script

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBytesCopiesInput(t *testing.T) {
	src := []byte{1, 2, 3}
	v := NewBytes(src)
	src[0] = 0xff
	assert.Equal(t, byte(1), v.Bytes[0], "NewBytes must not alias its input")
}

func TestIsConcrete(t *testing.T) {
	assert.True(t, NewBytes([]byte{1}).IsConcrete())
	assert.True(t, NewInt(5).IsConcrete())
	assert.True(t, NewBool(true).IsConcrete())
	assert.False(t, NewWitnessRef(0, "sig").IsConcrete())
	assert.False(t, newDerived("ADD", NewWitnessRef(0, ""), NewInt(1)).IsConcrete())
}

func TestAsBoolStackTruthiness(t *testing.T) {
	cases := []struct {
		name string
		v    Value
		want bool
	}{
		{"empty is false", NewBytes(nil), false},
		{"single zero byte is false", NewBytes([]byte{0x00}), false},
		{"negative zero is false", NewBytes([]byte{0x80}), false},
		{"nonzero byte is true", NewBytes([]byte{0x01}), true},
		{"trailing 0x80 after nonzero is true", NewBytes([]byte{0x01, 0x80}), true},
	}
	for _, c := range cases {
		b, ok := asBool(c.v)
		assert.True(t, ok, c.name)
		assert.Equal(t, c.want, b, c.name)
	}
}

func TestAsBoolUndecidableOnWitnessRef(t *testing.T) {
	_, ok := asBool(NewWitnessRef(0, ""))
	assert.False(t, ok)
}

func TestEqualFoldsConcreteValues(t *testing.T) {
	eq := Equal(NewBytes([]byte{1, 2}), NewBytes([]byte{1, 2}))
	assert.Equal(t, KindBool, eq.Kind)
	assert.True(t, eq.Bool)

	neq := Equal(NewBytes([]byte{1}), NewBytes([]byte{2}))
	assert.Equal(t, KindBool, neq.Kind)
	assert.False(t, neq.Bool)
}

func TestEqualStaysDerivedWhenUndecidable(t *testing.T) {
	eq := Equal(NewWitnessRef(0, ""), NewBytes([]byte{1}))
	assert.Equal(t, KindDerived, eq.Kind)
	assert.Equal(t, "EQUAL", eq.DerivedOp)
}

func TestHashConstantFolding(t *testing.T) {
	input := NewBytes([]byte("hello"))
	for _, fn := range []func(Value) Value{Ripemd160Of, Sha1Of, Sha256Of, Hash160Of, Hash256Of} {
		out := fn(input)
		assert.Equal(t, KindBytes, out.Kind)
	}
}

func TestHashOfWitnessRefStaysDerived(t *testing.T) {
	out := Hash160Of(NewWitnessRef(0, "pubkey"))
	assert.Equal(t, KindDerived, out.Kind)
	assert.Equal(t, "HASH160", out.DerivedOp)
}

func TestSha256OfKnownVector(t *testing.T) {
	// SHA256("") == e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855
	out := Sha256Of(NewBytes(nil))
	assert.Equal(t, "e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855", hexString(out.Bytes))
}

func TestNewDerivedCanonicalizesCommutativeOperands(t *testing.T) {
	a := NewWitnessRef(0, "")
	b := NewWitnessRef(1, "")
	x := newDerived("ADD", a, b)
	y := newDerived("ADD", b, a)
	assert.Equal(t, x.CanonicalKey(), y.CanonicalKey())
}

func TestCanonicalKeyDistinguishesDifferentValues(t *testing.T) {
	a := NewWitnessRef(0, "")
	b := NewWitnessRef(1, "")
	assert.NotEqual(t, a.CanonicalKey(), b.CanonicalKey())
}
