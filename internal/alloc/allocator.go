package alloc

import (
	"github.com/cockroachdb/errors"
)

// Planner lays out consecutive byte reservations starting at a base offset.
// A Planner is not safe for concurrent use.
type Planner struct {
	// end is the offset of the next reservation
	end int

	// base is the offset of the first reservation
	base int

	reservations []Reservation
	stats        Stats
}

// Reservation is one planned byte span.
type Reservation struct {
	Offset int
	Size   int
	Tag    string
}

// Stats contains planning statistics.
type Stats struct {
	Reservations int // Number of non-empty reservations
	TotalBytes   int // Bytes reserved, excluding alignment padding
	PaddingBytes int // Bytes skipped for alignment
	Largest      int // Largest single reservation
}

// New creates a Planner whose first reservation starts at base.
func New(base int) *Planner {
	return &Planner{
		end:  base,
		base: base,
	}
}

// Reserve plans size bytes at the current end and returns their offset.
func (p *Planner) Reserve(size int, tag string) int {
	if size <= 0 {
		return p.end
	}

	off := p.end
	p.end += size

	p.reservations = append(p.reservations, Reservation{
		Offset: off,
		Size:   size,
		Tag:    tag,
	})

	p.stats.Reservations++
	p.stats.TotalBytes += size
	if size > p.stats.Largest {
		p.stats.Largest = size
	}

	return off
}

// ReserveAligned plans size bytes starting at a multiple of alignment.
func (p *Planner) ReserveAligned(size, alignment int, tag string) int {
	if alignment > 1 {
		if rem := p.end % alignment; rem != 0 {
			pad := alignment - rem
			p.end += pad
			p.stats.PaddingBytes += pad
		}
	}
	return p.Reserve(size, tag)
}

// End returns the offset one past the last planned byte.
func (p *Planner) End() int {
	return p.end
}

// Len returns the number of bytes planned since the base offset.
func (p *Planner) Len() int {
	return p.end - p.base
}

// Base returns the offset of the first reservation.
func (p *Planner) Base() int {
	return p.base
}

// Stats returns a copy of the planning statistics.
func (p *Planner) Stats() Stats {
	return p.stats
}

// Reservations returns a copy of all reservations in plan order.
func (p *Planner) Reservations() []Reservation {
	out := make([]Reservation, len(p.reservations))
	copy(out, p.reservations)
	return out
}

// Validate checks that reservations are ordered, disjoint and inside the plan.
func (p *Planner) Validate() error {
	prevEnd := p.base
	for i, r := range p.reservations {
		if r.Offset < prevEnd {
			return errors.Newf("reservation %d (%s) at %d overlaps previous end %d", i, r.Tag, r.Offset, prevEnd)
		}
		if r.Offset+r.Size > p.end {
			return errors.Newf("reservation %d (%s) at %d size %d extends past end %d", i, r.Tag, r.Offset, r.Size, p.end)
		}
		prevEnd = r.Offset + r.Size
	}
	return nil
}

// Reset discards all reservations.
func (p *Planner) Reset() {
	p.end = p.base
	p.reservations = nil
	p.stats = Stats{}
}
