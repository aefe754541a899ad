// Package grid addresses the cells of N-dimensional grids stored as one flat
// block of memory, and transfers grid contents through package pack.
//
// # Addressing
//
// A [Shape] holds the extents of a grid of up to [MaxDims] dimensions.
// Dimension 0 varies fastest: the cell at key k lives at address
//
//	k[0] + k[1]*sz[0] + k[2]*sz[0]*sz[1] + ...
//
// [Shape.Linearize] and [Shape.Delinearize] convert between keys and
// addresses. Neither checks its input in release builds; build with the
// griddebug tag to turn precondition violations into panics, or call
// [Shape.Check] explicitly.
//
// # Iteration
//
// Three iterator flavors enumerate keys in address order:
//
//   - [Iterator] visits every cell of the grid.
//   - [SpanIterator] visits the cells between two linear addresses.
//   - [SubIterator] visits the cells of a hyper-rectangle.
//
// All ranges are half-open: a stop key or address is never visited. Each
// iterator also exposes its remaining keys as an iter.Seq.
//
//	for k := range g.SubIterator(grid.NewKey(1, 0), grid.NewKey(3, 2)).Keys() {
//		fmt.Println(k)
//	}
//
// # Ghost Margins
//
// A shape may reserve a margin of ghost cells on both sides of every
// dimension. The domain is the interior between the margins; see
// [Shape.SetGhost] and [Grid.DomainIterator].
//
// # Packing
//
// [Grid] implements [pack.Packer] for the whole grid and
// [pack.SubPacker] for the region of a [SubIterator]. Grids of pointer-free
// elements are transferred one contiguous run at a time; other element types
// go through pack's dynamic dispatch cell by cell. Passing property indices
// restricts the transfer to those properties of an element type whose
// pointer implements [pack.Aggregate].
package grid
