package shapes

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/numgo/numgo/types/kinds"
)

func TestRowMajorStrides(t *testing.T) {
	assert.Equal(t, []int{12, 4, 1}, RowMajorStrides(Make(2, 3, 4)))
	assert.Equal(t, []int{1}, RowMajorStrides(Make(5)))
	assert.Equal(t, []int{3, 1}, RowMajorStrides(Make(7, 3)))
	assert.Empty(t, RowMajorStrides(Make()))
}

func TestByteStrides(t *testing.T) {
	strides, err := ByteStrides(Make(2, 3), kinds.Float64)
	require.NoError(t, err)
	assert.Equal(t, []int{24, 8}, strides)

	strides, err = ByteStrides(Make(4), kinds.Int16)
	require.NoError(t, err)
	assert.Equal(t, []int{2}, strides)

	_, err = ByteStrides(Make(2, 3), kinds.Invalid)
	require.Error(t, err)
	assert.True(t, errors.Is(err, kinds.ErrUnsupportedKind))
}

func TestCoordinates(t *testing.T) {
	assert.Equal(t, []int{1, 2}, Coordinates(5, Make(2, 3)))
	assert.Equal(t, []int{0, 0}, Coordinates(0, Make(2, 3)))
	assert.Equal(t, []int{1, 2, 3}, Coordinates(1*12+2*4+3, Make(2, 3, 4)))
	assert.Empty(t, Coordinates(0, Make()))
}

func TestFlatIndex(t *testing.T) {
	flat, err := FlatIndex([]int{1, 2}, []int{10, 1})
	require.NoError(t, err)
	assert.Equal(t, 12, flat)

	// Transposed (non-row-major) strides are legitimate.
	flat, err = FlatIndex([]int{1, 2}, []int{1, 3})
	require.NoError(t, err)
	assert.Equal(t, 7, flat)

	// Scalars: no coordinates, offset 0.
	flat, err = FlatIndex(nil, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, flat)

	_, err = FlatIndex([]int{1, 2}, []int{100, 10, 1})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDimensionMismatch))
}

// Coordinates and FlatIndex are inverses over every valid flat offset when
// FlatIndex is given the row-major strides of the same shape.
func TestLayoutRoundTrip(t *testing.T) {
	for _, shape := range []Shape{Make(2, 3, 4), Make(5), Make(1, 2, 3), Make(4, 1)} {
		strides := RowMajorStrides(shape)
		for flat := 0; flat < shape.Size(); flat++ {
			coordinates := Coordinates(flat, shape)
			for axis, coordinate := range coordinates {
				require.GreaterOrEqualf(t, coordinate, 0, "shape %s flat %d", shape, flat)
				require.Lessf(t, coordinate, shape[axis], "shape %s flat %d", shape, flat)
			}
			back := must.M1(FlatIndex(coordinates, strides))
			require.Equalf(t, flat, back, "shape %s: round trip of flat offset %d", shape, flat)
		}
	}
}
