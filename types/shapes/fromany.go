package shapes

import (
	"reflect"

	"github.com/pkg/errors"

	"github.com/numgo/numgo/types/kinds"
)

// ErrInhomogeneousShape is returned when a nested value is ragged: sibling
// sub-sequences at the same depth resolve to different shapes. Ragged arrays
// are a hard failure, never approximated.
var ErrInhomogeneousShape = errors.New("inhomogeneous shape")

// FromAnyValue resolves the shape and scalar element kind of a nested Go
// value: a scalar, a slice of scalars, or arbitrarily deep slices of slices.
//
// Example:
//
//	shape, kind, err := shapes.FromAnyValue([][]float64{{0, 0}}) // [1 2], kinds.Float64
//
// Ragged nesting returns ErrInhomogeneousShape carrying the homogeneous
// shape prefix detected before the offending level.
func FromAnyValue(value any) (Shape, kinds.ElementKind, error) {
	var shape Shape
	kind, err := fromAnyValueRecursive(&shape, reflect.ValueOf(value), reflect.TypeOf(value))
	if err != nil {
		return nil, kinds.Invalid, err
	}
	return shape, kind, nil
}

func fromAnyValueRecursive(shape *Shape, v reflect.Value, t reflect.Type) (kinds.ElementKind, error) {
	if t == nil {
		return kinds.Invalid, errors.Errorf("cannot resolve a shape from a nil value")
	}
	if t.Kind() == reflect.Interface {
		if v.IsNil() {
			return kinds.Invalid, errors.Errorf("cannot resolve a shape from a nil element")
		}
		v = v.Elem()
		t = v.Type()
	}
	if t.Kind() != reflect.Slice && t.Kind() != reflect.Array {
		return leafKind(t), nil
	}

	*shape = append(*shape, v.Len())
	if v.Len() == 0 {
		return kinds.Invalid, errors.Errorf("empty sequence at depth %d: the inner dimensions of %T cannot be resolved", len(*shape), v.Interface())
	}

	// The first element is the reference; every sibling must match its shape
	// and kind.
	prefix := shape.Clone()
	kind, err := fromAnyValueRecursive(shape, v.Index(0), t.Elem())
	if err != nil {
		return kinds.Invalid, err
	}
	for ii := 1; ii < v.Len(); ii++ {
		sibling := prefix.Clone()
		siblingKind, err := fromAnyValueRecursive(&sibling, v.Index(ii), t.Elem())
		if err != nil {
			return kinds.Invalid, err
		}
		if !shape.Equal(sibling) {
			return kinds.Invalid, errors.Wrapf(ErrInhomogeneousShape,
				"detected shape %s + inhomogeneous part after %d dimensions", prefix, len(prefix))
		}
		if siblingKind != kind {
			return kinds.Invalid, errors.Errorf("mixed element kinds %s and %s in the same sequence", kind, siblingKind)
		}
	}
	return kind, nil
}

// leafKind maps a non-sequence Go type to its element kind. Types that are
// not supported scalars are generic objects.
func leafKind(t reflect.Type) kinds.ElementKind {
	if t == nil {
		return kinds.Invalid
	}
	if kind := kinds.FromGoType(t); kind != kinds.Invalid {
		return kind
	}
	return kinds.Object
}

// ScalarKindOf returns the innermost scalar element kind of an arbitrarily
// nested value, descending through nesting levels until a non-sequence is
// reached. Non-scalar leaves resolve to kinds.Object; empty sequences are
// resolved from their static element type.
func ScalarKindOf(value any) kinds.ElementKind {
	v := reflect.ValueOf(value)
	for {
		switch v.Kind() {
		case reflect.Interface:
			if v.IsNil() {
				return kinds.Object
			}
			v = v.Elem()
		case reflect.Slice, reflect.Array:
			if v.Len() == 0 {
				t := v.Type().Elem()
				for t.Kind() == reflect.Slice || t.Kind() == reflect.Array {
					t = t.Elem()
				}
				return leafKind(t)
			}
			v = v.Index(0)
		default:
			if !v.IsValid() {
				return kinds.Invalid
			}
			return leafKind(v.Type())
		}
	}
}

// IsPrimitiveArray returns whether the value is a sequence whose leaf
// elements are scalars (numeric, text, or another machine kind) as opposed
// to reference aggregates. An empty sequence is vacuously primitive;
// non-sequence values are not primitive arrays at all.
func IsPrimitiveArray(value any) bool {
	v := reflect.ValueOf(value)
	if v.Kind() != reflect.Slice && v.Kind() != reflect.Array {
		return false
	}
	if v.Len() == 0 {
		return true
	}
	kind := ScalarKindOf(value)
	return kind != kinds.Invalid && kind != kinds.Object
}

// IsScalarValue returns whether the value itself is a scalar: a number
// (integer, floating point, or complex) or text. Booleans and aggregates are
// not values in this sense.
func IsScalarValue(value any) bool {
	kind := kinds.FromGoType(reflect.TypeOf(value))
	return kind.IsInteger() || kind.IsFloat() || kind.IsComplex() || kind == kinds.String
}

// IsFloatingScalar returns whether the value is a 32- or 64-bit floating
// point scalar.
func IsFloatingScalar(value any) bool {
	kind := kinds.FromGoType(reflect.TypeOf(value))
	return kind == kinds.Float32 || kind == kinds.Float64
}
