// Package binary provides the raw byte views used to move values across a
// memory-region boundary.
//
// A packed stream is a plain concatenation of value images. Fixed-size values
// are copied bit for bit in the producing process's memory layout; the only
// integers this package encodes itself are the 8-byte length prefixes that
// precede dynamic arrays.
//
// # Views
//
// [Of] and [SliceOf] reinterpret a value or a slice backing array as bytes
// without copying. [ValueOf] does the same for an addressable reflect.Value,
// which is how the dynamic dispatcher reaches values whose static type is
// only known at run time.
//
// The views alias live memory: writing into them mutates the value. Callers
// must only take views of types that are safe to duplicate byte for byte.
//
// # Byte Order
//
// [Config] selects the byte order of the length prefix. [DefaultConfig] uses
// the native order of the running process, matching the layout of the raw
// value images around it.
//
// # Checksums
//
// [Fletcher] computes Fletcher-32 over a packed buffer, written in one piece
// or run by run. It is used to confirm that a buffer survives an
// unpack/repack cycle unchanged.
package binary
