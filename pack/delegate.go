package pack

import (
	"github.com/cockroachdb/errors"
)

// Packer is implemented by types that encode themselves.
//
// props optionally restricts the transfer to a subset of the value's
// properties; an empty list means all of them. Pack and Unpack must move
// exactly PackSize bytes for the same props.
type Packer interface {
	Pack(c *Cursor, props ...int) error
	Unpack(c *Cursor, props ...int) error
	PackSize(props ...int) (int, error)
}

// SubPacker is implemented by containers that can transfer the part of
// themselves an iterator of type I covers.
type SubPacker[I any] interface {
	PackSub(c *Cursor, it I, props ...int) error
	UnpackSub(c *Cursor, it I, props ...int) error
	PackSubSize(it I, props ...int) (int, error)
}

// Aggregate is implemented by types made of numbered properties.
// Prop returns a pointer to property i, for 0 <= i < NumProps().
type Aggregate interface {
	NumProps() int
	Prop(i int) any
}

// Encapsulated marks a view of a single cell that packs as its own object.
type Encapsulated interface {
	Encapsulated()
}

// PackGeneral delegates to v.
func PackGeneral(c *Cursor, v Packer, props ...int) error {
	return v.Pack(c, props...)
}

// UnpackGeneral delegates to v. Unpacking from a zero-capacity region is a
// no-op, so a peer that sent nothing leaves v untouched.
func UnpackGeneral(c *Cursor, v Packer, props ...int) error {
	if c.Size() == 0 {
		return nil
	}
	return v.Unpack(c, props...)
}

// PackSub delegates the part of v covered by it.
func PackSub[I any](c *Cursor, v SubPacker[I], it I, props ...int) error {
	return v.PackSub(c, it, props...)
}

// UnpackSub delegates the part of v covered by it.
func UnpackSub[I any](c *Cursor, v SubPacker[I], it I, props ...int) error {
	return v.UnpackSub(c, it, props...)
}

// PackEncapsulated is not implemented; it transfers nothing.
func PackEncapsulated(c *Cursor, v Encapsulated) error {
	return errors.Wrapf(ErrUnimplemented, "pack encapsulated object %T", v)
}

// UnpackEncapsulated is not implemented; it transfers nothing.
func UnpackEncapsulated(c *Cursor, v Encapsulated) error {
	return errors.Wrapf(ErrUnimplemented, "unpack encapsulated object %T", v)
}

// PropList returns props, or every index of a when props is empty.
// Indices are validated before anything is transferred.
func PropList(a Aggregate, props []int) ([]int, error) {
	n := a.NumProps()
	if len(props) == 0 {
		all := make([]int, n)
		for i := range all {
			all[i] = i
		}
		return all, nil
	}
	for _, p := range props {
		if p < 0 || p >= n {
			return nil, errors.Wrapf(ErrPropIndex, "property %d of %T with %d properties", p, a, n)
		}
	}
	return props, nil
}

// PackProps packs the selected properties of a in list order.
func PackProps(c *Cursor, a Aggregate, props ...int) error {
	list, err := PropList(a, props)
	if err != nil {
		return err
	}
	for _, p := range list {
		if err := Pack(c, a.Prop(p)); err != nil {
			return errors.Wrapf(err, "property %d", p)
		}
	}
	return nil
}

// UnpackProps unpacks the selected properties of a in list order.
func UnpackProps(c *Cursor, a Aggregate, props ...int) error {
	list, err := PropList(a, props)
	if err != nil {
		return err
	}
	for _, p := range list {
		if err := Unpack(c, a.Prop(p)); err != nil {
			return errors.Wrapf(err, "property %d", p)
		}
	}
	return nil
}

// SizeProps returns the bytes PackProps would transfer.
func SizeProps(a Aggregate, props ...int) (int, error) {
	list, err := PropList(a, props)
	if err != nil {
		return 0, err
	}
	total := 0
	for _, p := range list {
		n, err := Size(a.Prop(p))
		if err != nil {
			return 0, errors.Wrapf(err, "property %d", p)
		}
		total += n
	}
	return total, nil
}
