package grid

import (
	"reflect"

	"github.com/cockroachdb/errors"

	"github.com/robert-malhotra/go-ndgrid/pack"
)

// Encap is a view of one cell of a grid, bound to the cell's key. It is
// classified as an encapsulated object by package pack, which does not
// transfer it.
type Encap[T any] struct {
	ptr *T
	key Key
}

var _ pack.Encapsulated = Encap[int]{}

// Encap returns a view of the cell at k.
func (g *Grid[T]) Encap(k Key) Encap[T] {
	return Encap[T]{ptr: g.GetPtr(k), key: k}
}

// Encapsulated implements pack.Encapsulated.
func (Encap[T]) Encapsulated() {}

// Key returns the key of the viewed cell.
func (e Encap[T]) Key() Key {
	return e.key
}

// Ptr returns a pointer to the viewed cell.
func (e Encap[T]) Ptr() *T {
	return e.ptr
}

// Get returns the viewed cell.
func (e Encap[T]) Get() T {
	return *e.ptr
}

// CopyProp copies property prop of the cell viewed by src into the cell of
// dst at k. *T must implement pack.Aggregate. Slices are cloned.
func CopyProp[T any](dst *Grid[T], k Key, src Encap[T], prop int) error {
	to, from, err := copyTargets(dst, k, src)
	if err != nil {
		return err
	}
	ta, err := aggregate(to)
	if err != nil {
		return err
	}
	fa, _ := aggregate(from)
	if _, err := pack.PropList(ta, []int{prop}); err != nil {
		return err
	}
	cloneInto(reflect.ValueOf(ta.Prop(prop)).Elem(), reflect.ValueOf(fa.Prop(prop)).Elem())
	return nil
}

// CopyCell copies the whole cell viewed by src into the cell of dst at k.
// Slices directly inside the cell are cloned.
func CopyCell[T any](dst *Grid[T], k Key, src Encap[T]) error {
	to, from, err := copyTargets(dst, k, src)
	if err != nil {
		return err
	}
	cloneInto(reflect.ValueOf(to).Elem(), reflect.ValueOf(from).Elem())
	return nil
}

func copyTargets[T any](dst *Grid[T], k Key, src Encap[T]) (*T, *T, error) {
	if src.ptr == nil {
		return nil, nil, errors.Wrap(ErrOutOfRange, "empty cell view")
	}
	if err := dst.shape.Check(k); err != nil {
		return nil, nil, err
	}
	return dst.GetPtr(k), src.ptr, nil
}

func cloneInto(dst, src reflect.Value) {
	switch src.Kind() {
	case reflect.Slice:
		if src.IsNil() {
			dst.SetZero()
			return
		}
		s := reflect.MakeSlice(src.Type(), src.Len(), src.Len())
		reflect.Copy(s, src)
		dst.Set(s)
	case reflect.Struct:
		dst.Set(src)
		for i := 0; i < src.NumField(); i++ {
			if f := dst.Field(i); f.CanSet() && f.Kind() == reflect.Slice {
				cloneInto(f, src.Field(i))
			}
		}
	default:
		dst.Set(src)
	}
}
