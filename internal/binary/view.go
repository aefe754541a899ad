package binary

import (
	"reflect"
	"unsafe"
)

// Of returns the in-memory image of *p as a byte slice aliasing p.
func Of[T any](p *T) []byte {
	n := unsafe.Sizeof(*p)
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(p)), n)
}

// SliceOf returns the backing array of s as a byte slice aliasing s.
func SliceOf[E any](s []E) []byte {
	if len(s) == 0 {
		return nil
	}
	var zero E
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), len(s)*int(unsafe.Sizeof(zero)))
}

// ValueOf returns the in-memory image of an addressable value.
// It panics if v is not addressable.
func ValueOf(v reflect.Value) []byte {
	n := v.Type().Size()
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(v.Addr().UnsafePointer()), n)
}

// SliceValueOf returns the backing array of a slice value as bytes.
func SliceValueOf(v reflect.Value) []byte {
	if v.Len() == 0 {
		return nil
	}
	n := v.Len() * int(v.Type().Elem().Size())
	if n == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(v.UnsafePointer()), n)
}

// SizeOf returns the size in bytes of a T.
func SizeOf[T any]() int {
	var zero T
	return int(unsafe.Sizeof(zero))
}
