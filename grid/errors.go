package grid

import "github.com/cockroachdb/errors"

// Common errors
var (
	ErrDimensions        = errors.New("invalid number of dimensions")
	ErrExtent            = errors.New("invalid extent")
	ErrGhost             = errors.New("invalid ghost margin")
	ErrDimensionMismatch = errors.New("dimension mismatch")
	ErrOutOfRange        = errors.New("coordinate out of range")
	ErrRegion            = errors.New("invalid region")
	ErrShapeMismatch     = errors.New("grid shapes differ")
	ErrNotAggregate      = errors.New("element type has no properties")
)
