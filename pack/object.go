package pack

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/robert-malhotra/go-ndgrid/internal/binary"
	"github.com/robert-malhotra/go-ndgrid/internal/dtype"
)

// Plain marks a struct as safe to transfer by raw copy. Embed it as the
// first field:
//
//	type Cell struct {
//		pack.Plain
//		Density  float64
//		Velocity [3]float64
//	}
//
// Embedding is a promise, not a proof: PackObject still verifies the layout
// by reflection before copying.
type Plain struct{}

func (Plain) plainObject() {}

// PointerFree is satisfied by types that embed Plain.
type PointerFree interface {
	plainObject()
}

// PackObject copies the in-memory image of *v to the cursor.
func PackObject[T PointerFree](c *Cursor, v *T) error {
	if err := checkPlain[T](); err != nil {
		return err
	}
	if err := c.WriteBytes(binary.Of(v)); err != nil {
		return errors.Wrapf(err, "pack %T", *v)
	}
	return nil
}

// UnpackObject overwrites *v with bytes from the cursor.
func UnpackObject[T PointerFree](c *Cursor, v *T) error {
	if err := checkPlain[T](); err != nil {
		return err
	}
	if err := c.ReadBytes(binary.Of(v)); err != nil {
		return errors.Wrapf(err, "unpack %T", *v)
	}
	return nil
}

// SizeObject returns the number of bytes a T occupies in the stream.
func SizeObject[T any]() int {
	return binary.SizeOf[T]()
}

// PackObjectUnchecked copies the in-memory image of *v without checking its
// layout. If T holds pointers, the packed bytes duplicate addresses that are
// meaningless outside this process and invisible to the garbage collector.
func PackObjectUnchecked[T any](c *Cursor, v *T) error {
	if err := c.WriteBytes(binary.Of(v)); err != nil {
		return errors.Wrapf(err, "pack %T", *v)
	}
	return nil
}

// UnpackObjectUnchecked overwrites *v with bytes from the cursor without
// checking its layout. Never use it on types holding pointers unless the
// bytes were packed by this process and every referent is still alive.
func UnpackObjectUnchecked[T any](c *Cursor, v *T) error {
	if err := c.ReadBytes(binary.Of(v)); err != nil {
		return errors.Wrapf(err, "unpack %T", *v)
	}
	return nil
}

func checkPlain[T any]() error {
	return checkPlainType(reflect.TypeFor[T]())
}

func checkPlainType(t reflect.Type) error {
	if dtype.HasPointers(t) {
		return errors.Wrapf(ErrHasPointers, "type %s", dtype.Name(t))
	}
	return nil
}
