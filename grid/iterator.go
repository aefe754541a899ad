package grid

import (
	"iter"

	"github.com/cockroachdb/errors"
)

// KeyIterator enumerates keys in address order.
//
//	for it := g.Iterator(); it.Valid(); it.Next() {
//		use(it.Key())
//	}
type KeyIterator interface {
	// Valid reports whether Key may be called.
	Valid() bool
	// Key returns the current key.
	Key() Key
	// Next advances to the following key. It has no effect once Valid
	// returns false.
	Next()
}

// keys adapts the remaining positions of it to a range-over-func sequence.
func keys(it KeyIterator) iter.Seq[Key] {
	return func(yield func(Key) bool) {
		for ; it.Valid(); it.Next() {
			if !yield(it.Key()) {
				return
			}
		}
	}
}

// Iterator visits every cell of a shape.
type Iterator struct {
	shape Shape
	cur   Key
	empty bool
}

// NewIterator creates an iterator positioned at the all-zero key.
func NewIterator(s Shape) *Iterator {
	it := &Iterator{shape: s}
	it.Reset()
	return it
}

// Reset returns the iterator to the all-zero key.
func (it *Iterator) Reset() {
	it.cur = Key{dims: it.shape.dims}
	it.empty = it.shape.size == 0
}

func (it *Iterator) Valid() bool {
	last := it.shape.dims - 1
	return !it.empty && last >= 0 && it.cur.k[last] < it.shape.sz[last]
}

func (it *Iterator) Key() Key {
	return it.cur
}

func (it *Iterator) Next() {
	if !it.Valid() {
		return
	}
	last := it.shape.dims - 1
	for i := 0; i < last; i++ {
		it.cur.k[i]++
		if it.cur.k[i] < it.shape.sz[i] {
			return
		}
		it.cur.k[i] = 0
	}
	it.cur.k[last]++
}

// SetDim moves dimension d of the current key to v.
func (it *Iterator) SetDim(d, v int) {
	it.cur.k[d] = v
}

// Keys returns the keys from the current position to the end.
func (it *Iterator) Keys() iter.Seq[Key] {
	return keys(it)
}

// SpanIterator visits the cells at linear addresses [from, to).
type SpanIterator struct {
	shape       Shape
	from, to    int
	start, stop Key
	cur         Key
	err         error
}

// NewSpanIterator creates an iterator over the addresses [from, to).
// An empty span yields nothing. A span outside [0, Size] is recorded in Err
// and also yields nothing.
func NewSpanIterator(s Shape, from, to int) *SpanIterator {
	it := &SpanIterator{shape: s, from: from, to: to}
	switch {
	case from < 0 || to > s.size:
		it.err = errors.Wrapf(ErrRegion, "span [%d, %d) outside [0, %d]", from, to, s.size)
	case from < to:
		it.start = s.Delinearize(from)
		it.stop = s.Delinearize(to)
	}
	it.Reset()
	return it
}

// Reset returns the iterator to the start of the span.
func (it *SpanIterator) Reset() {
	it.cur = it.start
}

// Err returns the construction diagnostic, if any.
func (it *SpanIterator) Err() error {
	return it.err
}

// Range returns the linear bounds [from, to).
func (it *SpanIterator) Range() (from, to int) {
	return it.from, it.to
}

// Valid compares the current key against the stop key starting from the
// most significant dimension.
func (it *SpanIterator) Valid() bool {
	if it.err != nil || it.from >= it.to {
		return false
	}
	for i := it.shape.dims - 1; i >= 0; i-- {
		if it.cur.k[i] != it.stop.k[i] {
			return it.cur.k[i] < it.stop.k[i]
		}
	}
	return false
}

func (it *SpanIterator) Key() Key {
	return it.cur
}

func (it *SpanIterator) Next() {
	if !it.Valid() {
		return
	}
	last := it.shape.dims - 1
	for i := 0; i < last; i++ {
		it.cur.k[i]++
		if it.cur.k[i] < it.shape.sz[i] {
			return
		}
		it.cur.k[i] = 0
	}
	it.cur.k[last]++
}

// Keys returns the keys from the current position to the end.
func (it *SpanIterator) Keys() iter.Seq[Key] {
	return keys(it)
}

// SubIterator visits the cells of the hyper-rectangle [start, stop).
type SubIterator struct {
	shape       Shape
	start, stop Key
	cur         Key
	empty       bool
	err         error
}

// NewSubIterator creates an iterator over [start[i], stop[i]) in every
// dimension. A region that does not fit the shape is recorded in Err and
// yields nothing.
func NewSubIterator(s Shape, start, stop Key) *SubIterator {
	it := &SubIterator{shape: s, start: start, stop: stop}
	it.err = s.checkRegion(start, stop)
	it.Reset()
	return it
}

func (s *Shape) checkRegion(start, stop Key) error {
	if start.dims != s.dims || stop.dims != s.dims {
		return errors.Wrapf(ErrDimensionMismatch, "region %s-%s in %d dimensions", start, stop, s.dims)
	}
	for i := 0; i < s.dims; i++ {
		if start.k[i] < 0 || start.k[i] > stop.k[i] || stop.k[i] > s.sz[i] {
			return errors.Wrapf(ErrRegion, "region %s-%s, dimension %d with extent %d",
				start, stop, i, s.sz[i])
		}
	}
	return nil
}

// Reset returns the iterator to the start key.
func (it *SubIterator) Reset() {
	it.cur = it.start
	it.empty = it.err != nil || it.Count() == 0
}

// Err returns the construction diagnostic, if any.
func (it *SubIterator) Err() error {
	return it.err
}

// Start returns the first key of the region.
func (it *SubIterator) Start() Key {
	return it.start
}

// Stop returns the exclusive end of the region.
func (it *SubIterator) Stop() Key {
	return it.stop
}

// Shape returns the shape the region lies in.
func (it *SubIterator) Shape() Shape {
	return it.shape
}

// Count returns the number of cells in the region.
func (it *SubIterator) Count() int {
	if it.err != nil {
		return 0
	}
	n := 1
	for i := 0; i < it.shape.dims; i++ {
		n *= it.stop.k[i] - it.start.k[i]
	}
	return n
}

// LinearRange returns the addresses [lo, hi) spanned by the region. The
// range includes every cell of the region but, unless the region spans
// whole rows, also cells outside it.
func (it *SubIterator) LinearRange() (lo, hi int) {
	if it.Count() == 0 {
		return 0, 0
	}
	last := it.stop
	for i := 0; i < it.shape.dims; i++ {
		last.k[i]--
	}
	return it.shape.Linearize(it.start), it.shape.Linearize(last) + 1
}

func (it *SubIterator) Valid() bool {
	last := it.shape.dims - 1
	return !it.empty && last >= 0 && it.cur.k[last] < it.stop.k[last]
}

func (it *SubIterator) Key() Key {
	return it.cur
}

func (it *SubIterator) Next() {
	if !it.Valid() {
		return
	}
	last := it.shape.dims - 1
	for i := 0; i < last; i++ {
		it.cur.k[i]++
		if it.cur.k[i] < it.stop.k[i] {
			return
		}
		it.cur.k[i] = it.start.k[i]
	}
	it.cur.k[last]++
}

// Keys returns the keys from the current position to the end.
func (it *SubIterator) Keys() iter.Seq[Key] {
	return keys(it)
}
