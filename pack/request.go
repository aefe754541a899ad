package pack

import (
	"fmt"

	"github.com/samber/lo"

	"github.com/robert-malhotra/go-ndgrid/internal/alloc"
	"github.com/robert-malhotra/go-ndgrid/memory"
)

// Item is one sized entry of a Request.
type Item struct {
	Offset int
	Size   int
	Tag    string
}

// Stats summarizes a Request.
type Stats struct {
	Items   int // Number of non-empty entries
	Bytes   int // Bytes of packed data, excluding alignment padding
	Padding int // Bytes skipped by AddAligned
	Largest int // Largest single entry
}

// Request accumulates the byte requirements of a pack session before the
// region is allocated. Entries are laid out in the order they are added,
// which must match the order of the later Pack calls.
type Request struct {
	plan *alloc.Planner
}

// NewRequest creates an empty request for a session starting at offset 0.
func NewRequest() *Request {
	return NewRequestAt(0)
}

// NewRequestAt creates an empty request for a session whose first value is
// packed at offset. Alignment padding is computed from that offset, matching
// Cursor.Align on a cursor already advanced by offset bytes.
func NewRequestAt(offset int) *Request {
	return &Request{plan: alloc.New(offset)}
}

// Add records the bytes Pack(c, v, props...) will transfer.
func (r *Request) Add(v any, props ...int) error {
	n, err := Size(v, props...)
	if err != nil {
		return err
	}
	r.plan.Reserve(n, fmt.Sprintf("%T", v))
	return nil
}

// AddAligned records the padding Cursor.Align(alignment) will skip followed
// by the bytes Pack(c, v, props...) will transfer.
func (r *Request) AddAligned(alignment int, v any, props ...int) error {
	n, err := Size(v, props...)
	if err != nil {
		return err
	}
	r.plan.ReserveAligned(n, alignment, fmt.Sprintf("%T", v))
	return nil
}

// AddBytes records n bytes under tag.
func (r *Request) AddBytes(n int, tag string) {
	r.plan.Reserve(n, tag)
}

// AddSub records the bytes PackSub(c, v, it, props...) will transfer.
func AddSub[I any](r *Request, v SubPacker[I], it I, props ...int) error {
	n, err := v.PackSubSize(it, props...)
	if err != nil {
		return err
	}
	r.plan.Reserve(n, fmt.Sprintf("%T sub", v))
	return nil
}

// Offset returns the offset the session starts at.
func (r *Request) Offset() int {
	return r.plan.Base()
}

// Total returns the number of bytes the session needs after its start
// offset, padding included.
func (r *Request) Total() int {
	return r.plan.Len()
}

// End returns the offset one past the last byte of the session.
func (r *Request) End() int {
	return r.plan.End()
}

// Items returns the recorded entries. Zero-byte entries are omitted.
func (r *Request) Items() []Item {
	return lo.Map(r.plan.Reservations(), func(res alloc.Reservation, _ int) Item {
		return Item{Offset: res.Offset, Size: res.Size, Tag: res.Tag}
	})
}

// Stats returns a summary of the recorded entries.
func (r *Request) Stats() Stats {
	s := r.plan.Stats()
	return Stats{
		Items:   s.Reservations,
		Bytes:   s.TotalBytes,
		Padding: s.PaddingBytes,
		Largest: s.Largest,
	}
}

// Alloc checks the layout and returns a heap region of End bytes, so that a
// cursor advanced to Offset has exactly Total bytes left.
func (r *Request) Alloc() (*memory.Heap, error) {
	if err := r.plan.Validate(); err != nil {
		return nil, err
	}
	return memory.NewHeap(r.End()), nil
}

// Reset clears the request for reuse. The start offset is kept.
func (r *Request) Reset() {
	r.plan.Reset()
}
