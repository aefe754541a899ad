package pack

import (
	"github.com/cockroachdb/errors"
	"golang.org/x/exp/constraints"

	"github.com/robert-malhotra/go-ndgrid/internal/binary"
)

// PrimitiveType is the set of scalar types transferred by raw bit copy.
type PrimitiveType interface {
	~bool | constraints.Integer | constraints.Float | constraints.Complex
}

// PackPrimitive copies the bits of v to the cursor.
func PackPrimitive[T PrimitiveType](c *Cursor, v T) error {
	if err := c.WriteBytes(binary.Of(&v)); err != nil {
		return errors.Wrapf(err, "pack %T", v)
	}
	return nil
}

// UnpackPrimitive copies bits from the cursor into *v.
func UnpackPrimitive[T PrimitiveType](c *Cursor, v *T) error {
	if err := c.ReadBytes(binary.Of(v)); err != nil {
		return errors.Wrapf(err, "unpack %T", *v)
	}
	return nil
}

// SizePrimitive returns the number of bytes a T occupies in the stream.
func SizePrimitive[T PrimitiveType]() int {
	return binary.SizeOf[T]()
}

// PackArray writes the element count of s as an 8-byte length followed by
// the raw element bytes.
func PackArray[E PrimitiveType](c *Cursor, s []E) error {
	if err := c.writeArray(len(s), binary.SliceOf(s)); err != nil {
		return errors.Wrapf(err, "pack %T of length %d", s, len(s))
	}
	return nil
}

// UnpackArray reads a length-prefixed array into *s. The destination is
// resized to the stored length, reusing its backing array when it has the
// capacity.
func UnpackArray[E PrimitiveType](c *Cursor, s *[]E) error {
	n, payload, err := c.reserveArray(binary.SizeOf[E]())
	if err != nil {
		return errors.Wrapf(err, "unpack %T", *s)
	}
	if cap(*s) >= n {
		*s = (*s)[:n]
	} else {
		*s = make([]E, n)
	}
	copy(binary.SliceOf(*s), payload)
	return nil
}

// SizeArray returns the number of bytes s occupies in the stream.
func SizeArray[E PrimitiveType](s []E) int {
	return binary.LengthSize + len(s)*binary.SizeOf[E]()
}
