package pack

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/robert-malhotra/go-ndgrid/internal/binary"
	"github.com/robert-malhotra/go-ndgrid/internal/dtype"
)

// Pack transfers *v to the cursor using the strategy for its type.
// v must be a non-nil pointer, except for Encapsulated values.
// props is forwarded to delegates and ignored by raw strategies.
func Pack(c *Cursor, v any, props ...int) error {
	if e, ok := v.(Encapsulated); ok {
		return PackEncapsulated(c, e)
	}
	rv, err := target(v)
	if err != nil {
		return err
	}
	switch ClassifyType(rv.Type()) {
	case Primitive, ObjectPointerCheckable:
		if err := c.WriteBytes(binary.ValueOf(rv.Elem())); err != nil {
			return errors.Wrapf(err, "pack %s", dtype.Name(rv.Type().Elem()))
		}
		return nil
	case PrimitiveArray:
		s := rv.Elem()
		if err := c.writeArray(s.Len(), binary.SliceValueOf(s)); err != nil {
			return errors.Wrapf(err, "pack %s of length %d", dtype.Name(s.Type()), s.Len())
		}
		return nil
	case GeneralPackable, GridPackable:
		if p, ok := v.(Packer); ok {
			return PackGeneral(c, p, props...)
		}
		return PackProps(c, v.(Aggregate), props...)
	case EncapsulatedObject:
		return errors.Wrapf(ErrUnimplemented, "pack encapsulated object %s", dtype.Name(rv.Type()))
	default:
		return unsupported(rv.Type().Elem())
	}
}

// Unpack transfers bytes from the cursor into *v using the strategy for its
// type. Primitive slices are resized to the stored length.
func Unpack(c *Cursor, v any, props ...int) error {
	if e, ok := v.(Encapsulated); ok {
		return UnpackEncapsulated(c, e)
	}
	rv, err := target(v)
	if err != nil {
		return err
	}
	switch ClassifyType(rv.Type()) {
	case Primitive, ObjectPointerCheckable:
		if err := c.ReadBytes(binary.ValueOf(rv.Elem())); err != nil {
			return errors.Wrapf(err, "unpack %s", dtype.Name(rv.Type().Elem()))
		}
		return nil
	case PrimitiveArray:
		s := rv.Elem()
		n, payload, err := c.reserveArray(int(s.Type().Elem().Size()))
		if err != nil {
			return errors.Wrapf(err, "unpack %s", dtype.Name(s.Type()))
		}
		if s.Cap() >= n {
			s.SetLen(n)
		} else {
			s.Set(reflect.MakeSlice(s.Type(), n, n))
		}
		copy(binary.SliceValueOf(s), payload)
		return nil
	case GeneralPackable, GridPackable:
		if p, ok := v.(Packer); ok {
			return UnpackGeneral(c, p, props...)
		}
		if c.Size() == 0 {
			return nil
		}
		return UnpackProps(c, v.(Aggregate), props...)
	case EncapsulatedObject:
		return errors.Wrapf(ErrUnimplemented, "unpack encapsulated object %s", dtype.Name(rv.Type()))
	default:
		return unsupported(rv.Type().Elem())
	}
}

// Size returns the number of bytes Pack would transfer for v.
func Size(v any, props ...int) (int, error) {
	if e, ok := v.(Encapsulated); ok {
		return 0, errors.Wrapf(ErrUnimplemented, "size of encapsulated object %T", e)
	}
	rv, err := target(v)
	if err != nil {
		return 0, err
	}
	switch ClassifyType(rv.Type()) {
	case Primitive, ObjectPointerCheckable:
		return int(rv.Type().Elem().Size()), nil
	case PrimitiveArray:
		s := rv.Elem()
		return binary.LengthSize + s.Len()*int(s.Type().Elem().Size()), nil
	case GeneralPackable, GridPackable:
		if p, ok := v.(Packer); ok {
			return p.PackSize(props...)
		}
		return SizeProps(v.(Aggregate), props...)
	case EncapsulatedObject:
		return 0, errors.Wrapf(ErrUnimplemented, "size of encapsulated object %s", dtype.Name(rv.Type()))
	default:
		return 0, unsupported(rv.Type().Elem())
	}
}

func target(v any) (reflect.Value, error) {
	rv := reflect.ValueOf(v)
	if !rv.IsValid() || rv.Kind() != reflect.Pointer || rv.IsNil() {
		return reflect.Value{}, errors.Wrapf(ErrNotPointer, "got %T", v)
	}
	return rv, nil
}

func unsupported(t reflect.Type) error {
	return errors.Wrapf(ErrUnsupported, "type %s", dtype.Name(t))
}
