package grid

import (
	"github.com/cockroachdb/errors"
	"go.uber.org/zap"

	"github.com/robert-malhotra/go-ndgrid/internal/binary"
	"github.com/robert-malhotra/go-ndgrid/internal/layout"
	"github.com/robert-malhotra/go-ndgrid/pack"
)

var (
	_ pack.Packer                  = (*Grid[float64])(nil)
	_ pack.SubPacker[*SubIterator] = (*Grid[float64])(nil)
)

// Pack transfers every cell in address order.
func (g *Grid[T]) Pack(c *pack.Cursor, props ...int) error {
	return g.PackSub(c, g.wholeRegion(), props...)
}

// Unpack overwrites every cell in address order.
func (g *Grid[T]) Unpack(c *pack.Cursor, props ...int) error {
	return g.UnpackSub(c, g.wholeRegion(), props...)
}

// PackSize returns the bytes Pack transfers.
func (g *Grid[T]) PackSize(props ...int) (int, error) {
	return g.PackSubSize(g.wholeRegion(), props...)
}

// PackSub transfers the cells of the region of it in address order,
// independently of the iterator's current position. Nothing is written if
// the cursor cannot hold the whole region.
func (g *Grid[T]) PackSub(c *pack.Cursor, it *SubIterator, props ...int) error {
	if err := g.checkSub(it); err != nil {
		return err
	}
	n, err := g.PackSubSize(it, props...)
	if err != nil {
		return err
	}
	if n > c.Remaining() {
		return errors.Wrapf(pack.ErrShortBuffer, "region %s-%s needs %d bytes, %d remaining",
			it.start, it.stop, n, c.Remaining())
	}

	if g.plain && len(props) == 0 {
		return g.runs(it, func(cells []T) error {
			return c.WriteBytes(binary.SliceOf(cells))
		})
	}
	return g.eachCell(it, func(p *T) error {
		return packCell(c, p, props)
	})
}

// UnpackSub overwrites the cells of the region of it in address order.
// Unpacking from a zero-capacity region is a no-op.
func (g *Grid[T]) UnpackSub(c *pack.Cursor, it *SubIterator, props ...int) error {
	if c.Size() == 0 {
		g.log.Debug("skipping unpack from empty region")
		return nil
	}
	if err := g.checkSub(it); err != nil {
		return err
	}

	if g.plain && len(props) == 0 {
		n := it.Count() * binary.SizeOf[T]()
		if n > c.Remaining() {
			return errors.Wrapf(pack.ErrShortBuffer, "region %s-%s needs %d bytes, %d remaining",
				it.start, it.stop, n, c.Remaining())
		}
		return g.runs(it, func(cells []T) error {
			return c.ReadBytes(binary.SliceOf(cells))
		})
	}
	return g.eachCell(it, func(p *T) error {
		return unpackCell(c, p, props)
	})
}

// PackSubSize returns the bytes PackSub transfers.
func (g *Grid[T]) PackSubSize(it *SubIterator, props ...int) (int, error) {
	if err := g.checkSub(it); err != nil {
		return 0, err
	}
	if g.plain && len(props) == 0 {
		return it.Count() * binary.SizeOf[T](), nil
	}
	total := 0
	err := g.eachCell(it, func(p *T) error {
		n, err := sizeCell(p, props)
		total += n
		return err
	})
	return total, err
}

func (g *Grid[T]) wholeRegion() *SubIterator {
	return NewSubIterator(g.shape, ZeroKey(g.shape.dims), g.shape.ExtentsKey())
}

func (g *Grid[T]) checkSub(it *SubIterator) error {
	if it == nil {
		return errors.Wrap(ErrRegion, "nil iterator")
	}
	if err := it.Err(); err != nil {
		g.log.Warn("invalid region", zap.Error(err))
		return err
	}
	if !g.shape.Equal(&it.shape) {
		return errors.Wrapf(ErrShapeMismatch, "iterator over %s, grid %s",
			it.shape.ExtentsKey(), g.shape.ExtentsKey())
	}
	return nil
}

// runs calls fn for each contiguous run of cells in the region of it.
func (g *Grid[T]) runs(it *SubIterator, fn func(cells []T) error) error {
	return layout.Runs(g.shape.Extents(), it.start.Slice(), it.stop.Slice(), func(off, n int) error {
		return fn(g.data[off : off+n])
	})
}

// eachCell calls fn for each cell of the region of it, in address order.
func (g *Grid[T]) eachCell(it *SubIterator, fn func(p *T) error) error {
	sub := *it
	sub.Reset()
	for k := range sub.Keys() {
		if err := fn(&g.data[g.shape.Linearize(k)]); err != nil {
			return errors.Wrapf(err, "cell %s", k)
		}
	}
	return nil
}

func aggregate[T any](p *T) (pack.Aggregate, error) {
	a, ok := any(p).(pack.Aggregate)
	if !ok {
		return nil, errors.Wrapf(ErrNotAggregate, "%T", p)
	}
	return a, nil
}

func packCell[T any](c *pack.Cursor, p *T, props []int) error {
	if len(props) == 0 {
		return pack.Pack(c, p)
	}
	a, err := aggregate(p)
	if err != nil {
		return err
	}
	return pack.PackProps(c, a, props...)
}

func unpackCell[T any](c *pack.Cursor, p *T, props []int) error {
	if len(props) == 0 {
		return pack.Unpack(c, p)
	}
	a, err := aggregate(p)
	if err != nil {
		return err
	}
	return pack.UnpackProps(c, a, props...)
}

func sizeCell[T any](p *T, props []int) (int, error) {
	if len(props) == 0 {
		return pack.Size(p)
	}
	a, err := aggregate(p)
	if err != nil {
		return 0, err
	}
	return pack.SizeProps(a, props...)
}
