package binary

import (
	"encoding/binary"
	"reflect"
	"testing"
)

func TestOfAliasesValue(t *testing.T) {
	v := uint32(0x01020304)
	b := Of(&v)
	if len(b) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(b))
	}
	if got := binary.NativeEndian.Uint32(b); got != v {
		t.Errorf("expected 0x%08x, got 0x%08x", v, got)
	}

	// Writing through the view mutates the value
	binary.NativeEndian.PutUint32(b, 0xDEADBEEF)
	if v != 0xDEADBEEF {
		t.Errorf("expected value to change through view, got 0x%08x", v)
	}
}

func TestOfZeroSize(t *testing.T) {
	var s struct{}
	if b := Of(&s); b != nil {
		t.Errorf("expected nil view for zero-size value, got %v", b)
	}
}

func TestSliceOf(t *testing.T) {
	s := []int32{1, 2, 3}
	b := SliceOf(s)
	if len(b) != 12 {
		t.Fatalf("expected 12 bytes, got %d", len(b))
	}
	for i, want := range s {
		got := int32(binary.NativeEndian.Uint32(b[i*4:]))
		if got != want {
			t.Errorf("element %d: expected %d, got %d", i, want, got)
		}
	}

	if SliceOf([]int32(nil)) != nil {
		t.Error("expected nil view for empty slice")
	}
}

func TestValueOf(t *testing.T) {
	type pair struct {
		A int16
		B int16
	}
	p := pair{A: 7, B: -1}
	b := ValueOf(reflect.ValueOf(&p).Elem())
	if len(b) != 4 {
		t.Fatalf("expected 4 bytes, got %d", len(b))
	}
	if int16(binary.NativeEndian.Uint16(b)) != 7 {
		t.Errorf("unexpected first field bytes %v", b[:2])
	}

	s := []float64{1.5, 2.5}
	sb := SliceValueOf(reflect.ValueOf(s))
	if len(sb) != 16 {
		t.Errorf("expected 16 bytes, got %d", len(sb))
	}
}

func TestLengthPrefix(t *testing.T) {
	tests := []struct {
		name  string
		order binary.ByteOrder
		want  []byte
	}{
		{"little", binary.LittleEndian, []byte{3, 0, 0, 0, 0, 0, 0, 0}},
		{"big", binary.BigEndian, []byte{0, 0, 0, 0, 0, 0, 0, 3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{ByteOrder: tt.order}
			buf := make([]byte, LengthSize)
			cfg.PutLength(buf, 3)
			for i := range buf {
				if buf[i] != tt.want[i] {
					t.Fatalf("expected %v, got %v", tt.want, buf)
				}
			}
			if got := cfg.Length(buf); got != 3 {
				t.Errorf("expected 3, got %d", got)
			}
		})
	}
}

func TestDefaultConfigIsNative(t *testing.T) {
	cfg := DefaultConfig()
	if cfg.ByteOrder != binary.NativeEndian {
		t.Errorf("expected native byte order, got %v", cfg.ByteOrder)
	}

	// A zero Config falls back to native order too
	buf := make([]byte, LengthSize)
	Config{}.PutLength(buf, 42)
	if binary.NativeEndian.Uint64(buf) != 42 {
		t.Errorf("zero config did not use native order: %v", buf)
	}
}
