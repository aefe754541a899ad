// Package alloc plans the byte layout of a packing session before any byte is
// written.
//
// Packing writes into a pre-allocated region and never grows it, so callers
// first run a sizing pass over the same values they are about to pack. The
// [Planner] records each value's byte requirement as an append-only
// reservation, exactly in the order the pack pass will consume the region.
//
// # Planner
//
//   - Append-only reservation: every request is placed at the current end of
//     the plan, which then advances.
//   - Aligned reservation: a request can be padded to a boundary.
//   - Tracking: every reservation keeps a tag (usually the packed type's
//     name) for diagnostics and validation.
//
// # Usage
//
//	p := alloc.New(0)
//	p.Reserve(8, "int64")
//	p.Reserve(20, "[]int32")
//	buf := make([]byte, p.End()) // exactly 28 bytes
package alloc
