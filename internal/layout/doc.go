// Package layout decomposes hyper-rectangular regions of a linearized grid
// into contiguous runs of memory.
//
// Grids are stored with dimension 0 varying fastest: the element at key k
// lives at k[0] + k[1]*sz[0] + k[2]*sz[0]*sz[1] + ... in the flat block. A box
// [start, stop) therefore occupies one contiguous run of stop[0]-start[0]
// elements per combination of the outer coordinates.
//
// # Runs
//
// [Runs] enumerates those runs in increasing address order, which is the same
// order a sub-region odometer visits the keys. Adjacent runs are coalesced, so
// a box spanning the full extent of its leading dimensions is reported as a
// single run.
//
// # Box Copy
//
// [CopyBox] copies a box between two grids of possibly different extents. It
// works by recursively iterating through dimensions:
//
//  1. For each position in the current dimension, calculate the source and
//     destination offsets
//  2. Recurse to the next lower dimension until reaching dimension 0
//  3. At dimension 0, perform a contiguous copy
package layout
