package pack

import (
	"reflect"

	"github.com/robert-malhotra/go-ndgrid/internal/dtype"
)

// Category selects the transfer strategy for a type.
type Category int

const (
	Unregistered Category = iota
	Primitive
	PrimitiveArray
	ObjectWarnPointers
	ObjectPointerCheckable
	GeneralPackable
	GridPackable
	EncapsulatedObject
)

var categoryNames = [...]string{
	Unregistered:           "unregistered",
	Primitive:              "primitive",
	PrimitiveArray:         "primitive array",
	ObjectWarnPointers:     "object (unchecked)",
	ObjectPointerCheckable: "object",
	GeneralPackable:        "general packable",
	GridPackable:           "grid packable",
	EncapsulatedObject:     "encapsulated object",
}

func (c Category) String() string {
	if c < 0 || int(c) >= len(categoryNames) {
		return "unknown"
	}
	return categoryNames[c]
}

var (
	packerType       = reflect.TypeFor[Packer]()
	aggregateType    = reflect.TypeFor[Aggregate]()
	encapsulatedType = reflect.TypeFor[Encapsulated]()
)

// Classify reports the category the dynamic entry points use for v.
// A pointer is classified by the type it points to. The result depends only
// on the type of v, never on its value.
func Classify(v any) Category {
	return ClassifyType(reflect.TypeOf(v))
}

// ClassifyType reports the category for values of type t, or of the type t
// points to.
//
// ObjectWarnPointers is never chosen automatically: it is reachable only
// through PackObjectUnchecked.
func ClassifyType(t reflect.Type) Category {
	if t == nil {
		return Unregistered
	}
	pt := t
	if t.Kind() == reflect.Pointer {
		t = t.Elem()
	} else {
		pt = reflect.PointerTo(t)
	}

	switch {
	case pt.Implements(encapsulatedType):
		return EncapsulatedObject
	case pt.Implements(packerType):
		if _, ok := pt.MethodByName("PackSub"); ok {
			return GridPackable
		}
		return GeneralPackable
	case pt.Implements(aggregateType):
		return GeneralPackable
	case dtype.IsPrimitive(t.Kind()):
		return Primitive
	case dtype.IsPrimitiveSlice(t):
		return PrimitiveArray
	case dtype.IsPlain(t):
		return ObjectPointerCheckable
	}
	return Unregistered
}
