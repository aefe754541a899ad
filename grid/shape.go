package grid

import (
	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
)

// Shape holds the extents, strides and ghost margins of a grid.
// It is immutable after construction except for SetGhost.
type Shape struct {
	// sz is the extent of every dimension
	sz [MaxDims]int

	// szS[i] is the product sz[0]*...*sz[i]
	szS [MaxDims]int

	// mrgs is the ghost margin of every dimension
	mrgs [MaxDims]int

	dims int
	size int
}

// NewShape creates a shape with the given extents, dimension 0 first.
// Zero extents are valid and describe an empty grid.
func NewShape(extents ...int) (Shape, error) {
	var s Shape
	if len(extents) == 0 || len(extents) > MaxDims {
		return s, errors.Wrapf(ErrDimensions, "got %d, want 1..%d", len(extents), MaxDims)
	}
	for i, e := range extents {
		if e < 0 {
			return s, errors.Wrapf(ErrExtent, "dimension %d has extent %d", i, e)
		}
	}

	s.dims = len(extents)
	copy(s.sz[:], extents)
	s.szS[0] = s.sz[0]
	for i := 1; i < s.dims; i++ {
		s.szS[i] = s.szS[i-1] * s.sz[i]
	}
	s.size = TotalSize(extents...)
	return s, nil
}

// TotalSize returns the number of cells of a grid with the given extents.
func TotalSize(extents ...int) int {
	if len(extents) == 0 {
		return 0
	}
	return lo.Reduce(extents, func(acc, e int, _ int) int { return acc * e }, 1)
}

// Dims returns the number of dimensions.
func (s *Shape) Dims() int {
	return s.dims
}

// Size returns the total number of cells.
func (s *Shape) Size() int {
	return s.size
}

// SizeAt returns the extent of dimension i.
func (s *Shape) SizeAt(i int) int {
	return s.sz[i]
}

// Extents returns the extents as a new slice.
func (s *Shape) Extents() []int {
	out := make([]int, s.dims)
	copy(out, s.sz[:s.dims])
	return out
}

// ExtentsKey returns the extents as a key.
func (s *Shape) ExtentsKey() Key {
	return Key{k: s.sz, dims: s.dims}
}

// Strides returns the cumulative extent products: element i is
// sz[0]*...*sz[i].
func (s *Shape) Strides() []int {
	out := make([]int, s.dims)
	copy(out, s.szS[:s.dims])
	return out
}

// Linearize returns the flat address of k.
// k must satisfy 0 <= k[i] < sz[i]; this is only verified in griddebug builds.
func (s *Shape) Linearize(k Key) int {
	if debugChecks {
		s.assertKey(k)
	}
	addr := k.k[0]
	for i := 1; i < s.dims; i++ {
		addr += k.k[i] * s.szS[i-1]
	}
	return addr
}

// LinearizeSlice is Linearize over a raw index slice of length Dims.
func (s *Shape) LinearizeSlice(idx []int) int {
	if debugChecks {
		s.assertKey(NewKey(idx...))
	}
	addr := idx[0]
	for i := 1; i < s.dims; i++ {
		addr += idx[i] * s.szS[i-1]
	}
	return addr
}

// Delinearize returns the key stored at addr. For 0 <= addr < Size it is the
// exact inverse of Linearize. Delinearize(Size()) returns the key one past
// the last cell, whose last component equals the last extent.
func (s *Shape) Delinearize(addr int) Key {
	if debugChecks {
		if addr < 0 || addr > s.size {
			panic(errors.AssertionFailedf("delinearize address %d of %d", addr, s.size))
		}
	}
	k := Key{dims: s.dims}
	if s.size == 0 {
		return k
	}
	last := s.dims - 1
	for i := 0; i < last; i++ {
		k.k[i] = addr % s.sz[i]
		addr /= s.sz[i]
	}
	k.k[last] = addr
	return k
}

// IsLinearizeAdditive reports whether Linearize(a+b) equals
// Linearize(a)+Linearize(b). It always holds for stride tables.
func (s *Shape) IsLinearizeAdditive() bool {
	return true
}

// Check verifies that k addresses a cell of the shape.
func (s *Shape) Check(k Key) error {
	if k.dims != s.dims {
		return errors.Wrapf(ErrDimensionMismatch, "key %s has %d dimensions, shape has %d", k, k.dims, s.dims)
	}
	for i := 0; i < s.dims; i++ {
		if k.k[i] < 0 || k.k[i] >= s.sz[i] {
			return errors.Wrapf(ErrOutOfRange, "key %s, dimension %d outside [0, %d)", k, i, s.sz[i])
		}
	}
	return nil
}

// CheckAddress verifies that addr addresses a cell of the shape.
func (s *Shape) CheckAddress(addr int) error {
	if addr < 0 || addr >= s.size {
		return errors.Wrapf(ErrOutOfRange, "address %d outside [0, %d)", addr, s.size)
	}
	return nil
}

// SetGhost sets the ghost margin of every dimension. Each margin must fit
// twice inside its extent.
func (s *Shape) SetGhost(margins ...int) error {
	if len(margins) != s.dims {
		return errors.Wrapf(ErrGhost, "got %d margins for %d dimensions", len(margins), s.dims)
	}
	for i, m := range margins {
		if m < 0 || 2*m > s.sz[i] {
			return errors.Wrapf(ErrGhost, "dimension %d: margin %d with extent %d", i, m, s.sz[i])
		}
	}
	copy(s.mrgs[:], margins)
	return nil
}

// Ghost returns the ghost margins.
func (s *Shape) Ghost() Key {
	return Key{k: s.mrgs, dims: s.dims}
}

// DomainStart returns the first interior key: the margins.
func (s *Shape) DomainStart() Key {
	return s.Ghost()
}

// DomainStop returns the exclusive end of the interior: sz[i]-mrgs[i].
func (s *Shape) DomainStop() Key {
	k := Key{dims: s.dims}
	for i := 0; i < s.dims; i++ {
		k.k[i] = s.sz[i] - s.mrgs[i]
	}
	return k
}

// DomainStartStop returns DomainStart and DomainStop.
func (s *Shape) DomainStartStop() (Key, Key) {
	return s.DomainStart(), s.DomainStop()
}

// Equal reports whether s and o have the same extents.
func (s *Shape) Equal(o *Shape) bool {
	return s.dims == o.dims && s.sz == o.sz
}

func (s *Shape) assertKey(k Key) {
	if err := s.Check(k); err != nil {
		panic(errors.NewAssertionErrorWithWrappedErrf(err, "linearize"))
	}
}
