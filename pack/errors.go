package pack

import "github.com/cockroachdb/errors"

// Common errors
var (
	ErrShortBuffer   = errors.New("buffer too short")
	ErrUnsupported   = errors.New("no pack strategy for type")
	ErrUnimplemented = errors.New("pack strategy not implemented")
	ErrHasPointers   = errors.New("type holds pointers")
	ErrNotPointer    = errors.New("value is not a non-nil pointer")
	ErrPropIndex     = errors.New("property index out of range")
)
