package shapes

import (
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/x448/float16"

	"github.com/numgo/numgo/types/kinds"
)

func TestFromAnyValue(t *testing.T) {
	shape, kind, err := FromAnyValue([]int32{1, 2, 3})
	require.NoError(t, err)
	assert.True(t, Make(3).Equal(shape))
	assert.Equal(t, kinds.Int32, kind)

	shape, kind, err = FromAnyValue([][]float64{{0, 0}})
	require.NoError(t, err)
	assert.True(t, Make(1, 2).Equal(shape))
	assert.Equal(t, kinds.Float64, kind)

	shape, kind, err = FromAnyValue([][][]complex64{{{1, 2, -3}, {3, 4 + 2i, -7 - 1i}}})
	require.NoError(t, err)
	assert.True(t, Make(1, 2, 3).Equal(shape))
	assert.Equal(t, kinds.Complex64, kind)

	shape, kind, err = FromAnyValue([]float16.Float16{float16.Fromfloat32(1), float16.Fromfloat32(2)})
	require.NoError(t, err)
	assert.True(t, Make(2).Equal(shape))
	assert.Equal(t, kinds.Float16, kind)

	// A scalar resolves to a rank-0 shape.
	shape, kind, err = FromAnyValue(3.25)
	require.NoError(t, err)
	assert.True(t, shape.IsScalar())
	assert.Equal(t, kinds.Float64, kind)

	// Non-scalar leaves are generic objects.
	shape, kind, err = FromAnyValue([]struct{}{{}, {}})
	require.NoError(t, err)
	assert.True(t, Make(2).Equal(shape))
	assert.Equal(t, kinds.Object, kind)
}

func TestFromAnyValueInhomogeneous(t *testing.T) {
	// Ragged nesting is a hard failure, not a best-effort shape.
	_, _, err := FromAnyValue([][]float32{{1, 2, 3}, {4, 5}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInhomogeneousShape))
	assert.Contains(t, err.Error(), "[2]")

	_, _, err = FromAnyValue([][][]int{{{1}, {2}}, {{3}}})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInhomogeneousShape))

	// Mixed scalar kinds in one sequence are also rejected.
	_, _, err = FromAnyValue([]any{int32(1), "two"})
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrInhomogeneousShape))

	// So are empty inner sequences, whose dimensions cannot be resolved.
	_, _, err = FromAnyValue([][]int{})
	require.Error(t, err)
}

func TestScalarKindOf(t *testing.T) {
	assert.Equal(t, kinds.Int64, ScalarKindOf([][]int{{1, 2}, {3, 4}}))
	assert.Equal(t, kinds.Float32, ScalarKindOf([][][]float32{{{1}}}))
	assert.Equal(t, kinds.String, ScalarKindOf([]string{"a"}))
	assert.Equal(t, kinds.Float64, ScalarKindOf(1.5))
	assert.Equal(t, kinds.Object, ScalarKindOf([]map[string]int{{}}))
	// Empty sequences resolve from their static element type.
	assert.Equal(t, kinds.Uint8, ScalarKindOf([][]uint8{}))
	// Boxed values behind an interface are unwrapped.
	assert.Equal(t, kinds.Int32, ScalarKindOf([]any{int32(7)}))
}

func TestIsPrimitiveArray(t *testing.T) {
	// Vacuously primitive.
	assert.True(t, IsPrimitiveArray([]int{}))
	assert.True(t, IsPrimitiveArray([]any{}))

	assert.True(t, IsPrimitiveArray([][]int{{1, 2}, {3, 4}}))
	assert.True(t, IsPrimitiveArray([]float64{1.5}))
	assert.True(t, IsPrimitiveArray([]string{"a", "b"}))
	assert.True(t, IsPrimitiveArray([]bool{true}))

	assert.False(t, IsPrimitiveArray([]struct{}{{}, {}}))
	assert.False(t, IsPrimitiveArray([]map[string]int{{}}))
	assert.False(t, IsPrimitiveArray(42))
	assert.False(t, IsPrimitiveArray(nil))
}

func TestIsScalarValue(t *testing.T) {
	assert.True(t, IsScalarValue(int32(1)))
	assert.True(t, IsScalarValue(3.5))
	assert.True(t, IsScalarValue("text"))
	assert.True(t, IsScalarValue(complex64(1+2i)))

	assert.False(t, IsScalarValue(true))
	assert.False(t, IsScalarValue([]int{1}))
	assert.False(t, IsScalarValue(struct{}{}))
	assert.False(t, IsScalarValue(nil))
}

func TestIsFloatingScalar(t *testing.T) {
	assert.True(t, IsFloatingScalar(float32(1)))
	assert.True(t, IsFloatingScalar(2.5))

	assert.False(t, IsFloatingScalar(int64(1)))
	assert.False(t, IsFloatingScalar("1.5"))
	assert.False(t, IsFloatingScalar(float16.Fromfloat32(1.5)))
	assert.False(t, IsFloatingScalar(nil))
}
