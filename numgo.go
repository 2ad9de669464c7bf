// Package numgo implements the shape-compatibility and index-layout core of
// an N-dimensional array library.
//
// Among its features:
//
// - NumPy-style broadcasting of operand shapes for element-wise operations.
// - Conversions between flat (linear) buffer offsets and per-dimension
// coordinate tuples, given a shape and a stride vector.
// - Resolution of scalar element kinds to fixed byte widths, and of nested
// Go values to their shape and innermost element kind.
//
// Every operation is a pure, synchronous function over caller-owned inputs:
// no I/O, no retries, no shared mutable state. Incompatible shapes are
// reported as errors and never coerced, since a silently stretched dimension
// would corrupt every downstream numeric result.
//
// The functions here delegate to the subpackages, which can also be used
// directly: shapeinference for broadcasting and shape validation,
// types/shapes for layout and value introspection, and types/kinds for
// element kinds and widths.
package numgo

import (
	"github.com/numgo/numgo/shapeinference"
	"github.com/numgo/numgo/types/kinds"
	"github.com/numgo/numgo/types/shapes"
)

// BroadcastShapes returns the shape resulting from broadcasting lhs and rhs
// together: shapes are aligned at their trailing dimension, missing leading
// dimensions count as 1, and each aligned pair must be equal or contain a 1.
// Incompatible shapes return shapeinference.ErrNotBroadcastable.
func BroadcastShapes(lhs, rhs shapes.Shape) (shapes.Shape, error) {
	return shapeinference.BroadcastShapes(lhs, rhs)
}

// ValidateShape returns a copy of the shape after checking every dimension
// is positive; otherwise it returns shapeinference.ErrInvalidSize.
func ValidateShape(s shapes.Shape) (shapes.Shape, error) {
	return shapeinference.ValidateShape(s)
}

// Reshape returns the target shape after checking the operand holds exactly
// as many elements; otherwise it returns shapeinference.ErrShapeMismatch.
func Reshape(operand, target shapes.Shape) (shapes.Shape, error) {
	return shapeinference.Reshape(operand, target)
}

// ElementSize returns the fixed size in bytes of one element of the given
// kind, or kinds.ErrUnsupportedKind if the kind has no registered width.
func ElementSize(kind kinds.ElementKind) (int, error) {
	return kinds.ByteWidth(kind)
}

// RowMajorStrides returns the contiguous row-major strides of the shape, in
// element units.
func RowMajorStrides(s shapes.Shape) []int {
	return shapes.RowMajorStrides(s)
}

// Coordinates decomposes a flat row-major offset into one coordinate per
// dimension of the shape. The offset must be in [0, s.Size()); see
// shapes.Coordinates.
func Coordinates(flatIndex int, s shapes.Shape) []int {
	return shapes.Coordinates(flatIndex, s)
}

// FlatIndex composes per-dimension coordinates and strides into a flat
// offset, or returns shapes.ErrDimensionMismatch if their lengths differ.
func FlatIndex(coordinates, strides []int) (int, error) {
	return shapes.FlatIndex(coordinates, strides)
}

// ScalarKindOf returns the innermost scalar element kind of an arbitrarily
// nested value.
func ScalarKindOf(value any) kinds.ElementKind {
	return shapes.ScalarKindOf(value)
}

// IsPrimitiveArray returns whether the value is a sequence whose leaf
// elements are scalars; an empty sequence is vacuously primitive.
func IsPrimitiveArray(value any) bool {
	return shapes.IsPrimitiveArray(value)
}

// IsScalarValue returns whether the value is a numeric or text scalar.
func IsScalarValue(value any) bool {
	return shapes.IsScalarValue(value)
}

// IsFloatingScalar returns whether the value is a 32- or 64-bit floating
// point scalar.
func IsFloatingScalar(value any) bool {
	return shapes.IsFloatingScalar(value)
}
