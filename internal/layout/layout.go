package layout

import (
	"github.com/cockroachdb/errors"
)

// ErrBox is returned when a box does not fit the grid it addresses.
var ErrBox = errors.New("box outside grid")

// Strides returns the element stride of every dimension, dimension 0 first.
func Strides(extents []int) []int {
	strides := make([]int, len(extents))
	if len(extents) == 0 {
		return strides
	}
	strides[0] = 1
	for d := 1; d < len(extents); d++ {
		strides[d] = strides[d-1] * extents[d-1]
	}
	return strides
}

// Runs calls fn for every contiguous run of the box [start, stop) in a grid
// with the given extents. off is the element offset of the run and n its
// length. Runs are reported in increasing offset order, adjacent runs merged.
// An empty box produces no call.
func Runs(extents, start, stop []int, fn func(off, n int) error) error {
	ndims := len(extents)
	if ndims == 0 {
		return nil
	}
	for d := 0; d < ndims; d++ {
		if stop[d] <= start[d] {
			return nil
		}
	}

	pendingOff, pendingN := 0, 0
	emit := func(off, n int) error {
		if pendingN > 0 && pendingOff+pendingN == off {
			pendingN += n
			return nil
		}
		if pendingN > 0 {
			if err := fn(pendingOff, pendingN); err != nil {
				return err
			}
		}
		pendingOff, pendingN = off, n
		return nil
	}

	if err := runsRecursive(Strides(extents), start, stop, 0, ndims-1, emit); err != nil {
		return err
	}
	if pendingN > 0 {
		return fn(pendingOff, pendingN)
	}
	return nil
}

// runsRecursive walks dimensions from the outermost down to dimension 0.
func runsRecursive(strides, start, stop []int, base, dim int, emit func(off, n int) error) error {
	if dim == 0 {
		return emit(base+start[0], stop[0]-start[0])
	}

	for i := start[dim]; i < stop[dim]; i++ {
		if err := runsRecursive(strides, start, stop, base+i*strides[dim], dim-1, emit); err != nil {
			return err
		}
	}
	return nil
}

// CopyBox copies the box of size count at srcStart in src into dst at
// dstStart. Both grids are flat slices with the given extents.
func CopyBox[T any](
	dst []T, dstExtents, dstStart []int,
	src []T, srcExtents, srcStart []int,
	count []int,
) error {
	if empty, err := checkBox(dstExtents, dstStart, srcExtents, srcStart, count); err != nil || empty {
		return err
	}

	copyBoxRecursive(dst, Strides(dstExtents), dstStart, src, Strides(srcExtents), srcStart,
		count, 0, 0, len(count)-1)
	return nil
}

// CopyBoxWithin copies the box of size count at srcStart to dstStart inside
// one grid. The boxes may overlap: when the destination lies after the
// source, rows are visited from the last one back.
func CopyBoxWithin[T any](data []T, extents, dstStart, srcStart, count []int) error {
	if empty, err := checkBox(extents, dstStart, extents, srcStart, count); err != nil || empty {
		return err
	}
	strides := Strides(extents)
	dstOff, srcOff := 0, 0
	for d := range count {
		dstOff += dstStart[d] * strides[d]
		srcOff += srcStart[d] * strides[d]
	}
	copyWithinRecursive(data, strides, dstStart, srcStart, count, 0, 0, len(count)-1, dstOff > srcOff)
	return nil
}

// copyWithinRecursive is copyBoxRecursive over a single slice. Rows of a box
// are at least one row stride apart, so walking them against the direction of
// the shift never reads a row that has already been overwritten.
func copyWithinRecursive[T any](
	data []T, strides, dstStart, srcStart, count []int,
	dstOffset, srcOffset, dim int,
	reverse bool,
) {
	if dim == 0 {
		s := srcOffset + srcStart[0]
		d := dstOffset + dstStart[0]
		copy(data[d:d+count[0]], data[s:s+count[0]])
		return
	}

	for j := 0; j < count[dim]; j++ {
		i := j
		if reverse {
			i = count[dim] - 1 - j
		}
		copyWithinRecursive(data, strides, dstStart, srcStart, count,
			dstOffset+(dstStart[dim]+i)*strides[dim],
			srcOffset+(srcStart[dim]+i)*strides[dim],
			dim-1, reverse)
	}
}

// checkBox validates a copy of size count between two grids. empty is set
// when there is nothing to copy.
func checkBox(dstExtents, dstStart, srcExtents, srcStart, count []int) (empty bool, err error) {
	ndims := len(count)
	if len(dstExtents) != ndims || len(srcExtents) != ndims ||
		len(dstStart) != ndims || len(srcStart) != ndims {
		return false, errors.Wrapf(ErrBox, "dimension mismatch: count has %d dims", ndims)
	}
	if ndims == 0 {
		return true, nil
	}

	for d := 0; d < ndims; d++ {
		if count[d] < 0 || srcStart[d] < 0 || dstStart[d] < 0 {
			return false, errors.Wrapf(ErrBox, "negative start or count in dimension %d", d)
		}
		if count[d] == 0 {
			return true, nil
		}
		if srcStart[d]+count[d] > srcExtents[d] {
			return false, errors.Wrapf(ErrBox, "source dimension %d: start=%d + count=%d > size=%d",
				d, srcStart[d], count[d], srcExtents[d])
		}
		if dstStart[d]+count[d] > dstExtents[d] {
			return false, errors.Wrapf(ErrBox, "destination dimension %d: start=%d + count=%d > size=%d",
				d, dstStart[d], count[d], dstExtents[d])
		}
	}

	return false, nil
}

// copyBoxRecursive recursively copies box data, dimension 0 innermost.
func copyBoxRecursive[T any](
	dst []T, dstStrides, dstStart []int,
	src []T, srcStrides, srcStart []int,
	count []int,
	dstOffset, srcOffset, dim int,
) {
	if dim == 0 {
		// Innermost dimension - copy contiguously
		s := srcOffset + srcStart[0]
		d := dstOffset + dstStart[0]
		copy(dst[d:d+count[0]], src[s:s+count[0]])
		return
	}

	for i := 0; i < count[dim]; i++ {
		copyBoxRecursive(dst, dstStrides, dstStart, src, srcStrides, srcStart, count,
			dstOffset+(dstStart[dim]+i)*dstStrides[dim],
			srcOffset+(srcStart[dim]+i)*srcStrides[dim],
			dim-1)
	}
}
