// Package dtype classifies Go types for the pack protocol.
//
// The pack protocol never writes a type tag into a buffer, so every decision
// about how a value is transferred is derived from its type alone. This
// package answers the reflection-level questions behind those decisions:
//
//   - [IsPrimitive]: is the kind a fixed-size scalar (bool, integers, floats,
//     complex numbers) that can be copied as raw bits?
//   - [IsPrimitiveSlice]: is the type a slice of such scalars, transferable as
//     a length prefix followed by a contiguous payload?
//   - [HasPointers]: does the type's memory image contain anything that refers
//     to memory it does not own (pointers, slices, strings, maps, channels,
//     functions, interfaces)? Duplicating such an image byte for byte would
//     alias or dangle.
//   - [IsPlain]: a fixed-size type with no pointers anywhere in its layout.
//
// Results depend only on the type, never on a value.
package dtype
