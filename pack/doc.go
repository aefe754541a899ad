// Package pack moves typed values between Go memory and caller-owned,
// pre-allocated memory regions.
//
// A packing session threads one [Cursor] through many calls. Each call
// transfers one value at the cursor's offset and advances it by exactly the
// number of bytes transferred. The stream carries no type tags: the reader
// must know, out of band, the sequence and types of the values that were
// packed, and unpack them in the same order.
//
// # Categories
//
// How a value is transferred depends only on its type:
//
//	Category                | Pack / Unpack                        | Bytes
//	------------------------|--------------------------------------|------------------
//	Primitive               | PackPrimitive / UnpackPrimitive      | sizeof(T)
//	PrimitiveArray          | PackArray / UnpackArray              | 8 + len*sizeof(E)
//	ObjectWarnPointers      | PackObjectUnchecked / Unpack...      | sizeof(T)
//	ObjectPointerCheckable  | PackObject / UnpackObject            | sizeof(T)
//	GeneralPackable         | PackGeneral / UnpackGeneral          | delegate-defined
//	GridPackable            | PackSub / UnpackSub                  | delegate-defined
//	EncapsulatedObject      | PackEncapsulated / Unpack...         | not implemented
//
// The typed functions resolve the strategy at compile time. [Pack], [Unpack]
// and [Size] are the dynamic entry points: they classify the pointed-to type
// with [Classify] and report [ErrUnsupported] for types no strategy covers,
// without touching the buffer.
//
// # Raw Copies
//
// Primitive, array and object strategies copy the in-memory image of the
// value in the producer's native layout and byte order. [PackObject] only
// accepts types that embed [Plain], and additionally verifies by reflection
// that the layout holds no pointers, slices, strings, maps, channels,
// functions or interfaces. [PackObjectUnchecked] skips both checks and is
// only for callers who have established by other means that duplicating the
// bytes is harmless.
//
// # Sizing
//
// Regions are never grown. Run a [Request] over the values first to learn the
// exact number of bytes the session will need, then allocate once.
//
//	req := pack.NewRequest()
//	req.Add(&count)
//	req.AddAligned(8, &samples)
//	mem, err := req.Alloc()
//	...
//	c := pack.NewCursor(mem)
//	pack.Pack(c, &count)
//	c.Align(8)
//	pack.Pack(c, &samples)
//
// # Concurrency
//
// Nothing in this package holds shared state. A Cursor must not be used by
// more than one goroutine at a time.
package pack
