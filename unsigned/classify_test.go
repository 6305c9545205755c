package unsigned_test

import (
	"math"
	"sort"
	"testing"

	"github.com/katalvlaran/nonneg/unsigned"
	"github.com/stretchr/testify/assert"
)

// TestClassify checks every category and the derived predicates.
func TestClassify(t *testing.T) {
	nan := unsigned.Zero.Div(unsigned.Zero)
	cases := []struct {
		name string
		in   unsigned.F64
		want unsigned.Category
	}{
		{"nan", nan, unsigned.CategoryNaN},
		{"inf", unsigned.Infinity, unsigned.CategoryInfinite},
		{"zero", unsigned.Zero, unsigned.CategoryZero},
		{"negative zero", negZero, unsigned.CategoryZero},
		{"subnormal", unsigned.SmallestNonzero, unsigned.CategorySubnormal},
		{"min positive", unsigned.MinPositive, unsigned.CategoryNormal},
		{"one", unsigned.One, unsigned.CategoryNormal},
		{"max", unsigned.MaxValue, unsigned.CategoryNormal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.in.Classify())
			assert.Equal(t, tc.want == unsigned.CategoryNaN, tc.in.IsNaN())
			assert.Equal(t, tc.want == unsigned.CategoryInfinite, tc.in.IsInf())
			assert.Equal(t, tc.want == unsigned.CategorySubnormal, tc.in.IsSubnormal())
			assert.Equal(t, tc.want == unsigned.CategoryNormal, tc.in.IsNormal())
			assert.Equal(t, tc.want != unsigned.CategoryNaN && tc.want != unsigned.CategoryInfinite, tc.in.IsFinite())
		})
	}
}

// TestCategoryString names each class.
func TestCategoryString(t *testing.T) {
	assert.Equal(t, "nan", unsigned.CategoryNaN.String())
	assert.Equal(t, "infinite", unsigned.CategoryInfinite.String())
	assert.Equal(t, "zero", unsigned.CategoryZero.String())
	assert.Equal(t, "subnormal", unsigned.CategorySubnormal.String())
	assert.Equal(t, "normal", unsigned.CategoryNormal.String())
	assert.Equal(t, "unknown", unsigned.Category(42).String())
}

// TestTotalCmp checks the IEEE totalOrder, which separates the zeros.
func TestTotalCmp(t *testing.T) {
	assert.Equal(t, -1, negZero.TotalCmp(unsigned.Zero))
	assert.Equal(t, 1, unsigned.Zero.TotalCmp(negZero))
	assert.Equal(t, 0, unsigned.One.TotalCmp(unsigned.One))
	assert.Equal(t, -1, unsigned.One.TotalCmp(unsigned.Infinity))

	nan := unsigned.Zero.Div(unsigned.Zero)
	posNaN := unsigned.Unchecked(math.Float64frombits(math.Float64bits(nan.Float64()) &^ (1 << 63)))
	assert.Equal(t, 1, posNaN.TotalCmp(unsigned.Infinity), "positive NaN sorts after +Inf")

	negInf := unsigned.One.Div(negZero)
	assert.Equal(t, -1, negInf.TotalCmp(negZero), "-Inf sorts before -0")

	vals := []unsigned.F64{unsigned.MustNew(3), unsigned.Zero, unsigned.Infinity, negZero, unsigned.One}
	sort.Slice(vals, func(i, j int) bool { return vals[i].TotalCmp(vals[j]) < 0 })
	assert.True(t, vals[0].IsSignNegative())
	assert.Equal(t, []float64{0, 0, 1, 3, math.Inf(1)}, []float64{
		vals[0].Float64(), vals[1].Float64(), vals[2].Float64(), vals[3].Float64(), vals[4].Float64(),
	})
}
