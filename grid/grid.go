package grid

import (
	"reflect"

	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-ndgrid/internal/dtype"
	"github.com/robert-malhotra/go-ndgrid/internal/layout"
	"github.com/robert-malhotra/go-ndgrid/pack"
)

// Grid is an N-dimensional array of T stored in address order.
// A Grid is not safe for concurrent use.
type Grid[T any] struct {
	shape Shape
	data  []T
	log   *zap.Logger

	// plain is set when T has no delegate and can be transferred as raw
	// bytes
	plain bool
}

// New creates a zeroed grid with the given extents, dimension 0 first.
func New[T any](extents []int, opts ...Option) (*Grid[T], error) {
	o := buildOptions(opts)
	s, err := NewShape(extents...)
	if err != nil {
		return nil, err
	}
	if o.ghost != nil {
		if err := s.SetGhost(o.ghost...); err != nil {
			return nil, err
		}
	}
	return newGrid[T](s, o.logger), nil
}

// NewLike creates a zeroed grid of T with the extents and margins of g.
// WithGhost replaces the margins and is validated as in New.
func NewLike[T, S any](g *Grid[S], opts ...Option) (*Grid[T], error) {
	o := options{logger: g.log}
	for _, opt := range opts {
		opt(&o)
	}
	s := g.shape
	if o.ghost != nil {
		if err := s.SetGhost(o.ghost...); err != nil {
			return nil, err
		}
	}
	return newGrid[T](s, o.logger), nil
}

func newGrid[T any](s Shape, l *zap.Logger) *Grid[T] {
	// ClassifyType looks through one pointer level, so pointer elements are
	// excluded here before asking for the category.
	t := reflect.TypeFor[T]()
	cat := pack.ClassifyType(t)
	return &Grid[T]{
		shape: s,
		data:  make([]T, s.size),
		log:   l,
		plain: !dtype.HasPointers(t) && (cat == pack.Primitive || cat == pack.ObjectPointerCheckable),
	}
}

// Shape returns a copy of the grid's shape.
func (g *Grid[T]) Shape() Shape {
	return g.shape
}

// Size returns the number of cells.
func (g *Grid[T]) Size() int {
	return g.shape.size
}

// Data returns the cells in address order. The slice aliases the grid.
func (g *Grid[T]) Data() []T {
	return g.data
}

// Get returns the cell at k.
func (g *Grid[T]) Get(k Key) T {
	return g.data[g.shape.Linearize(k)]
}

// GetPtr returns a pointer to the cell at k.
func (g *Grid[T]) GetPtr(k Key) *T {
	return &g.data[g.shape.Linearize(k)]
}

// Set stores v at k.
func (g *Grid[T]) Set(k Key, v T) {
	g.data[g.shape.Linearize(k)] = v
}

// Iterator returns an iterator over every cell.
func (g *Grid[T]) Iterator() *Iterator {
	return NewIterator(g.shape)
}

// SpanIterator returns an iterator over the addresses [from, to).
func (g *Grid[T]) SpanIterator(from, to int) *SpanIterator {
	it := NewSpanIterator(g.shape, from, to)
	if err := it.Err(); err != nil {
		g.log.Warn("empty span iterator", zap.Error(err))
	}
	return it
}

// SubIterator returns an iterator over the region [start, stop).
func (g *Grid[T]) SubIterator(start, stop Key) *SubIterator {
	it := NewSubIterator(g.shape, start, stop)
	if err := it.Err(); err != nil {
		g.log.Warn("empty sub iterator", zap.Error(err))
	}
	return it
}

// DomainIterator returns an iterator over the interior between the ghost
// margins.
func (g *Grid[T]) DomainIterator() *SubIterator {
	start, stop := g.shape.DomainStartStop()
	return NewSubIterator(g.shape, start, stop)
}

// CopyRegion copies the cells of src in [srcStart, srcStop) into g, placing
// srcStart at dstStart. src may be g itself, with overlapping boxes.
func (g *Grid[T]) CopyRegion(src *Grid[T], srcStart, srcStop, dstStart Key) error {
	if err := src.shape.checkRegion(srcStart, srcStop); err != nil {
		return err
	}
	if dstStart.dims != g.shape.dims {
		return errors.Wrapf(ErrDimensionMismatch, "destination key %s in %d dimensions", dstStart, g.shape.dims)
	}
	count := srcStop.Sub(srcStart)
	var err error
	if src == g {
		err = layout.CopyBoxWithin(g.data, g.shape.Extents(), dstStart.Slice(), srcStart.Slice(), count.Slice())
	} else {
		err = layout.CopyBox(
			g.data, g.shape.Extents(), dstStart.Slice(),
			src.data, src.shape.Extents(), srcStart.Slice(),
			count.Slice(),
		)
	}
	if err != nil {
		return errors.Wrapf(ErrRegion, "copy %s-%s to %s: %v", srcStart, srcStop, dstStart, err)
	}
	return nil
}
