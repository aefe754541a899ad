package alloc

import (
	"testing"
)

func TestPlannerBasic(t *testing.T) {
	p := New(16)

	off1 := p.Reserve(8, "int64")
	if off1 != 16 {
		t.Errorf("first reservation: got %d, want %d", off1, 16)
	}

	off2 := p.Reserve(20, "[]int32")
	if off2 != 24 {
		t.Errorf("second reservation: got %d, want %d", off2, 24)
	}

	if p.End() != 44 {
		t.Errorf("End: got %d, want %d", p.End(), 44)
	}
	if p.Len() != 28 {
		t.Errorf("Len: got %d, want %d", p.Len(), 28)
	}
}

func TestPlannerZeroSize(t *testing.T) {
	p := New(0)

	off := p.Reserve(0, "empty")
	if off != 0 {
		t.Errorf("zero reservation: got %d, want 0", off)
	}
	if p.End() != 0 {
		t.Errorf("End after zero reservation: got %d, want 0", p.End())
	}
	if len(p.Reservations()) != 0 {
		t.Errorf("zero reservation should not be tracked")
	}
}

func TestPlannerAligned(t *testing.T) {
	p := New(0)

	p.Reserve(3, "bytes") // now at 3

	off := p.ReserveAligned(8, 8, "float64")
	if off != 8 {
		t.Errorf("aligned reservation: got %d, want 8", off)
	}
	if p.Stats().PaddingBytes != 5 {
		t.Errorf("PaddingBytes: got %d, want 5", p.Stats().PaddingBytes)
	}

	// Already aligned: no padding
	off = p.ReserveAligned(4, 8, "int32")
	if off != 16 {
		t.Errorf("aligned reservation: got %d, want 16", off)
	}
}

func TestPlannerStats(t *testing.T) {
	p := New(0)

	p.Reserve(8, "a")
	p.Reserve(20, "b")
	p.Reserve(4, "c")

	stats := p.Stats()
	if stats.Reservations != 3 {
		t.Errorf("Reservations: got %d, want 3", stats.Reservations)
	}
	if stats.TotalBytes != 32 {
		t.Errorf("TotalBytes: got %d, want 32", stats.TotalBytes)
	}
	if stats.Largest != 20 {
		t.Errorf("Largest: got %d, want 20", stats.Largest)
	}
}

func TestPlannerReservationsCopy(t *testing.T) {
	p := New(0)
	p.Reserve(4, "x")

	rs := p.Reservations()
	rs[0].Size = 100

	if p.Reservations()[0].Size != 4 {
		t.Error("Reservations should return a copy")
	}
	if p.Reservations()[0].Tag != "x" {
		t.Errorf("unexpected tag %q", p.Reservations()[0].Tag)
	}
}

func TestPlannerValidate(t *testing.T) {
	p := New(10)

	p.Reserve(5, "a")
	p.ReserveAligned(7, 4, "b")
	p.Reserve(1, "c")

	if err := p.Validate(); err != nil {
		t.Errorf("valid plan should not error: %v", err)
	}

	// Corrupt the plan to force an overlap
	p.reservations[1].Offset = 12
	if err := p.Validate(); err == nil {
		t.Error("expected overlap error")
	}
}

func TestPlannerReset(t *testing.T) {
	p := New(100)

	p.Reserve(10, "a")
	p.Reserve(20, "b")

	p.Reset()

	if p.End() != 100 {
		t.Errorf("End after reset: got %d, want 100", p.End())
	}
	if len(p.Reservations()) != 0 {
		t.Errorf("reservations after reset: got %d, want 0", len(p.Reservations()))
	}
	if p.Stats() != (Stats{}) {
		t.Errorf("stats after reset: got %+v", p.Stats())
	}
	if p.Base() != 100 {
		t.Errorf("Base: got %d, want 100", p.Base())
	}
}
