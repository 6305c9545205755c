package unsigned_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/nonneg/unsigned"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// accepted and rejected cover the boundary of the invariant, including both
// zeros, infinities, subnormals and NaN.
var (
	accepted = []float64{
		0, math.Copysign(0, -1), 1, 2, 0.5, math.SmallestNonzeroFloat64,
		math.MaxFloat64, math.Inf(1), 1e-300, 123456.789,
	}
	rejected = []float64{
		-1, -2, -math.SmallestNonzeroFloat64, -math.MaxFloat64, math.Inf(-1), math.NaN(),
	}
)

// TestNew_AcceptsNonNegative verifies New accepts every x >= 0 and returns
// the payload bit for bit.
func TestNew_AcceptsNonNegative(t *testing.T) {
	for _, x := range accepted {
		f, ok := unsigned.New(x)
		require.True(t, ok, "New(%v) must succeed", x)
		assert.Equal(t, math.Float64bits(x), math.Float64bits(f.Float64()), "round trip of %v must be bit-exact", x)
	}
}

// TestNew_RejectsNegativeAndNaN verifies New and TryFrom agree on every rejection.
func TestNew_RejectsNegativeAndNaN(t *testing.T) {
	for _, x := range rejected {
		f, ok := unsigned.New(x)
		assert.False(t, ok, "New(%v) must fail", x)
		assert.Equal(t, unsigned.Zero, f, "failed New returns the zero value")

		_, err := unsigned.TryFrom(x)
		assert.ErrorIs(t, err, unsigned.ErrInvariant, "TryFrom(%v) must fail", x)
	}
}

// TestTryFrom_AgreesWithNew checks both entry points on the same inputs.
func TestTryFrom_AgreesWithNew(t *testing.T) {
	inputs := append(append([]float64{}, accepted...), rejected...)
	for _, x := range inputs {
		a, ok := unsigned.New(x)
		b, err := unsigned.TryFrom(x)
		assert.Equal(t, ok, err == nil, "New and TryFrom disagree on %v", x)
		if ok {
			assert.Equal(t, math.Float64bits(a.Float64()), math.Float64bits(b.Float64()))
		}
	}
}

// TestTryFrom_ErrorIsUnwrapped checks the sentinel is returned as is.
func TestTryFrom_ErrorIsUnwrapped(t *testing.T) {
	_, err := unsigned.TryFrom(-2)
	assert.Same(t, unsigned.ErrInvariant, err)
	assert.EqualError(t, err, "unsigned: invariant violated")
}

// TestMustNew panics only on invalid input.
func TestMustNew(t *testing.T) {
	assert.Equal(t, 2.0, unsigned.MustNew(2).Float64())
	assert.PanicsWithValue(t, unsigned.ErrInvariant, func() { unsigned.MustNew(-2) })
	assert.Panics(t, func() { unsigned.MustNew(math.NaN()) })
}

// TestUnchecked stores the payload without validation.
func TestUnchecked(t *testing.T) {
	assert.Equal(t, 3.5, unsigned.Unchecked(3.5).Float64())
	assert.Equal(t, -1.0, unsigned.Unchecked(-1).Float64(), "Unchecked performs no validation")
}

// TestAbsAndSquare covers the always-succeeding constructors.
func TestAbsAndSquare(t *testing.T) {
	assert.Equal(t, 2.0, unsigned.Abs(-2).Float64())
	assert.Equal(t, 2.0, unsigned.Abs(2).Float64())
	assert.False(t, math.Signbit(unsigned.Abs(math.Copysign(0, -1)).Float64()), "Abs clears the sign of -0")
	assert.Equal(t, 4.0, unsigned.Square(-2).Float64())
	assert.Equal(t, 4.0, unsigned.Square(2).Float64())
	assert.True(t, math.IsInf(unsigned.Square(1e200).Float64(), 1), "overflow saturates at +Inf")

	assert.True(t, unsigned.Abs(math.NaN()).IsNaN(), "Abs passes NaN through")
	assert.True(t, unsigned.Square(math.NaN()).IsNaN(), "Square passes NaN through")
}

// TestFromIntegers covers the generic integer constructors.
func TestFromIntegers(t *testing.T) {
	assert.Equal(t, 7.0, unsigned.FromUnsigned(uint8(7)).Float64())
	assert.Equal(t, float64(math.MaxUint64), unsigned.FromUnsigned(uint64(math.MaxUint64)).Float64())

	f, ok := unsigned.FromInteger(42)
	assert.True(t, ok)
	assert.Equal(t, 42.0, f.Float64())

	_, ok = unsigned.FromInteger(int16(-3))
	assert.False(t, ok)

	f, ok = unsigned.FromInteger(uint32(9))
	assert.True(t, ok)
	assert.Equal(t, 9.0, f.Float64())
}

// TestZeroValue verifies the zero value is a valid +0.0.
func TestZeroValue(t *testing.T) {
	var f unsigned.F64
	assert.Equal(t, 0.0, f.Float64())
	assert.False(t, f.IsSignNegative())
	assert.Equal(t, unsigned.Zero, f)
}

// TestString uses the shortest round-tripping form.
func TestString(t *testing.T) {
	cases := map[string]unsigned.F64{
		"5":                  unsigned.MustNew(5),
		"0.5":                unsigned.MustNew(0.5),
		"8.246211251235321":  unsigned.MustNew(math.Sqrt(68)),
		"+Inf":               unsigned.Infinity,
		"-0":                 unsigned.MustNew(math.Copysign(0, -1)),
		"1e+21":              unsigned.MustNew(1e21),
		"0.6666666666666666": unsigned.MustNew(2.0 / 3.0),
	}
	for want, f := range cases {
		assert.Equal(t, want, f.String())
	}
}

// TestComparisons covers IEEE equality and ordering, also against raw floats.
func TestComparisons(t *testing.T) {
	two, three := unsigned.MustNew(2), unsigned.MustNew(3)
	negZero := unsigned.MustNew(math.Copysign(0, -1))

	assert.True(t, two.Equal(unsigned.MustNew(2)))
	assert.False(t, two.Equal(three))
	assert.True(t, two.EqualFloat(2))
	assert.True(t, two.Less(three))
	assert.False(t, three.Less(two))
	assert.True(t, two.LessFloat(2.5))
	assert.False(t, two.LessFloat(-1))

	assert.True(t, negZero.Equal(unsigned.Zero), "-0 == +0 under IEEE")
	assert.Equal(t, 0, negZero.Compare(unsigned.Zero))
	assert.Equal(t, -1, two.Compare(three))
	assert.Equal(t, 1, three.Compare(two))

	nan := unsigned.Zero.Div(unsigned.Zero)
	assert.False(t, nan.Equal(nan), "NaN equals nothing")
	assert.Equal(t, -1, nan.Compare(unsigned.Zero), "Compare sorts NaN first")
}

// TestSum adds left to right from +0.
func TestSum(t *testing.T) {
	assert.Equal(t, unsigned.Zero, unsigned.Sum())
	got := unsigned.Sum(unsigned.MustNew(1), unsigned.MustNew(2), unsigned.MustNew(3.5))
	assert.Equal(t, 6.5, got.Float64())
}
