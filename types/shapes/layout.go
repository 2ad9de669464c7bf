package shapes

import (
	"github.com/pkg/errors"

	"github.com/numgo/numgo/types/kinds"
)

// ErrDimensionMismatch is returned when paired per-dimension sequences
// (coordinates and strides) do not have the same length.
var ErrDimensionMismatch = errors.New("dimension mismatch")

// RowMajorStrides returns the contiguous row-major strides of the shape, in
// element units: the innermost dimension varies fastest with stride 1, and
// each outer stride is the product of the dimensions inside it.
func RowMajorStrides(s Shape) []int {
	strides := make([]int, len(s))
	if len(s) == 0 {
		return strides
	}
	strides[len(s)-1] = 1
	for axis := len(s) - 2; axis >= 0; axis-- {
		strides[axis] = strides[axis+1] * s[axis+1]
	}
	return strides
}

// ByteStrides returns the contiguous row-major strides of the shape scaled
// to byte offsets for elements of the given kind, as used to address raw
// buffers. It returns kinds.ErrUnsupportedKind if the kind has no registered
// width.
func ByteStrides(s Shape, kind kinds.ElementKind) ([]int, error) {
	width, err := kinds.ByteWidth(kind)
	if err != nil {
		return nil, err
	}
	strides := RowMajorStrides(s)
	for axis := range strides {
		strides[axis] *= width
	}
	return strides, nil
}

// Coordinates decomposes a flat row-major offset into one coordinate per
// dimension of the shape, innermost dimension varying fastest.
//
// The flat index must be in [0, s.Size()); this is a precondition, not a
// runtime check, and an out-of-range offset decomposes into coordinates that
// address no element.
func Coordinates(flatIndex int, s Shape) []int {
	coordinates := make([]int, len(s))
	for axis := len(s) - 1; axis >= 0; axis-- {
		coordinates[axis] = flatIndex % s[axis]
		flatIndex /= s[axis]
	}
	return coordinates
}

// FlatIndex composes per-dimension coordinates and strides into a flat
// offset: the sum of coordinates[i]*strides[i] over all dimensions.
//
// The strides need not be the row-major strides of any particular shape --
// transposed or otherwise non-contiguous layouts are legitimate -- so
// FlatIndex is only the inverse of Coordinates when given RowMajorStrides of
// the same shape.
//
// It returns ErrDimensionMismatch if coordinates and strides differ in
// length; lengths are never truncated or padded.
func FlatIndex(coordinates, strides []int) (int, error) {
	if len(coordinates) != len(strides) {
		return 0, errors.Wrapf(ErrDimensionMismatch, "%d coordinates cannot be combined with %d strides",
			len(coordinates), len(strides))
	}
	flatIndex := 0
	for axis, coordinate := range coordinates {
		flatIndex += coordinate * strides[axis]
	}
	return flatIndex, nil
}
