package dtype

import (
	"reflect"
)

// IsPrimitive reports whether k is a fixed-size scalar kind.
func IsPrimitive(k reflect.Kind) bool {
	switch k {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsPrimitiveSlice reports whether t is a slice whose elements are primitive.
func IsPrimitiveSlice(t reflect.Type) bool {
	return t.Kind() == reflect.Slice && IsPrimitive(t.Elem().Kind())
}

// HasPointers reports whether values of t hold references to memory they do
// not own.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Array:
		if t.Len() == 0 {
			return false
		}
		return HasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	case reflect.Pointer, reflect.UnsafePointer, reflect.Slice, reflect.String,
		reflect.Map, reflect.Chan, reflect.Func, reflect.Interface:
		return true
	default:
		return !IsPrimitive(t.Kind())
	}
}

// IsPlain reports whether t is a struct or array that can be duplicated as
// raw bytes.
func IsPlain(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Struct, reflect.Array:
		return !HasPointers(t)
	default:
		return false
	}
}

// Name returns a readable name for t, used in diagnostics.
func Name(t reflect.Type) string {
	if t == nil {
		return "<nil>"
	}
	return t.String()
}
