package memory

import "github.com/cockroachdb/errors"

// ErrOutOfBounds is returned when an access falls outside a region.
var ErrOutOfBounds = errors.New("access outside memory region")

// Region is a fixed-capacity block of host-addressable memory.
type Region interface {
	// Size returns the capacity in bytes.
	Size() int

	// Slice returns the n bytes starting at off. The caller guarantees
	// 0 <= off and off+n <= Size().
	Slice(off, n int) []byte
}

// Check verifies that [off, off+n) lies inside r.
func Check(r Region, off, n int) error {
	if off < 0 || n < 0 || off+n > r.Size() {
		return errors.Wrapf(ErrOutOfBounds, "range [%d, %d) with capacity %d", off, off+n, r.Size())
	}
	return nil
}

// Heap is a region backed by a heap allocation it owns.
type Heap struct {
	buf []byte
}

// NewHeap allocates a zeroed heap region of size bytes.
func NewHeap(size int) *Heap {
	if size < 0 {
		size = 0
	}
	return &Heap{buf: make([]byte, size)}
}

// Size returns the capacity in bytes.
func (h *Heap) Size() int {
	return len(h.buf)
}

// Slice returns the n bytes starting at off.
func (h *Heap) Slice(off, n int) []byte {
	return h.buf[off : off+n : off+n]
}

// Resize changes the capacity, preserving the common prefix.
func (h *Heap) Resize(size int) {
	if size < 0 {
		size = 0
	}
	if size <= cap(h.buf) {
		old := len(h.buf)
		h.buf = h.buf[:size]
		if size > old {
			clear(h.buf[old:])
		}
		return
	}
	buf := make([]byte, size)
	copy(buf, h.buf)
	h.buf = buf
}

// Bytes returns the whole block.
func (h *Heap) Bytes() []byte {
	return h.buf
}

// External is a region over memory owned by someone else.
type External []byte

// Size returns the capacity in bytes.
func (e External) Size() int {
	return len(e)
}

// Slice returns the n bytes starting at off.
func (e External) Slice(off, n int) []byte {
	return e[off : off+n : off+n]
}
