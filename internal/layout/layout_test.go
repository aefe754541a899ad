package layout

import (
	"errors"
	"testing"
)

type run struct{ off, n int }

func collectRuns(t *testing.T, extents, start, stop []int) []run {
	t.Helper()
	var got []run
	err := Runs(extents, start, stop, func(off, n int) error {
		got = append(got, run{off, n})
		return nil
	})
	if err != nil {
		t.Fatalf("Runs failed: %v", err)
	}
	return got
}

func TestStrides(t *testing.T) {
	got := Strides([]int{4, 3, 2})
	want := []int{1, 4, 12}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	if len(Strides(nil)) != 0 {
		t.Error("expected no strides for zero dims")
	}
}

func TestRuns2D(t *testing.T) {
	// 4x3 grid, box (1,0)-(3,2): two runs of two elements
	got := collectRuns(t, []int{4, 3}, []int{1, 0}, []int{3, 2})
	want := []run{{1, 2}, {5, 2}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRunsCoalesceFullRows(t *testing.T) {
	// Full leading extent: the rows of the box touch and merge into one run
	got := collectRuns(t, []int{4, 3}, []int{0, 1}, []int{4, 3})
	if len(got) != 1 || got[0] != (run{4, 8}) {
		t.Errorf("expected single run {4 8}, got %v", got)
	}
}

func TestRuns3D(t *testing.T) {
	// 2x2x2 grid, box (1,0,0)-(2,2,2): elements 1,3,5,7
	got := collectRuns(t, []int{2, 2, 2}, []int{1, 0, 0}, []int{2, 2, 2})
	want := []run{{1, 1}, {3, 1}, {5, 1}, {7, 1}}
	if len(got) != len(want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("run %d: expected %v, got %v", i, want[i], got[i])
		}
	}
}

func TestRunsEmptyBox(t *testing.T) {
	if got := collectRuns(t, []int{4, 3}, []int{2, 1}, []int{2, 3}); len(got) != 0 {
		t.Errorf("expected no runs, got %v", got)
	}
	if got := collectRuns(t, nil, nil, nil); len(got) != 0 {
		t.Errorf("expected no runs for zero dims, got %v", got)
	}
}

func TestRunsStopsOnError(t *testing.T) {
	sentinel := errors.New("stop")
	calls := 0
	err := Runs([]int{4, 3}, []int{1, 0}, []int{3, 3}, func(off, n int) error {
		calls++
		return sentinel
	})
	if !errors.Is(err, sentinel) {
		t.Errorf("expected sentinel error, got %v", err)
	}
	if calls != 1 {
		t.Errorf("expected one call, got %d", calls)
	}
}

func TestCopyBox(t *testing.T) {
	// Source 4x3 grid holding its own linear index
	src := make([]int, 12)
	for i := range src {
		src[i] = i
	}
	dst := make([]int, 6) // 3x2 grid

	err := CopyBox(dst, []int{3, 2}, []int{1, 0}, src, []int{4, 3}, []int{2, 1}, []int{2, 2})
	if err != nil {
		t.Fatalf("CopyBox failed: %v", err)
	}

	// src (2,1)=6 (3,1)=7 (2,2)=10 (3,2)=11 land at dst (1,0),(2,0),(1,1),(2,1)
	want := []int{0, 6, 7, 0, 10, 11}
	for i := range want {
		if dst[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, dst)
		}
	}
}

func TestCopyBoxErrors(t *testing.T) {
	src := make([]int, 12)
	dst := make([]int, 12)
	ext := []int{4, 3}

	tests := []struct {
		name               string
		dstStart, srcStart []int
		count              []int
	}{
		{"source overrun", []int{0, 0}, []int{3, 0}, []int{2, 1}},
		{"destination overrun", []int{0, 2}, []int{0, 0}, []int{1, 2}},
		{"negative count", []int{0, 0}, []int{0, 0}, []int{-1, 1}},
		{"dimension mismatch", []int{0}, []int{0, 0}, []int{1, 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := CopyBox(dst, ext, tt.dstStart, src, ext, tt.srcStart, tt.count)
			if !errors.Is(err, ErrBox) {
				t.Errorf("expected ErrBox, got %v", err)
			}
		})
	}

	// Zero count is a no-op
	if err := CopyBox(dst, ext, []int{0, 0}, src, ext, []int{0, 0}, []int{0, 3}); err != nil {
		t.Errorf("zero count should not fail: %v", err)
	}
}

func TestCopyBoxWithinOverlap(t *testing.T) {
	seq := func() []int { return []int{0, 1, 2, 3, 4, 5, 6, 7} }
	ext := []int{2, 4}

	tests := []struct {
		name               string
		dstStart, srcStart []int
		count              []int
		want               []int
	}{
		{"shift forward", []int{0, 1}, []int{0, 0}, []int{2, 3}, []int{0, 1, 0, 1, 2, 3, 4, 5}},
		{"shift backward", []int{0, 0}, []int{0, 1}, []int{2, 3}, []int{2, 3, 4, 5, 6, 7, 6, 7}},
		{"shift within row", []int{1, 0}, []int{0, 0}, []int{1, 4}, []int{0, 0, 2, 2, 4, 4, 6, 6}},
		{"same place", []int{0, 0}, []int{0, 0}, []int{2, 4}, []int{0, 1, 2, 3, 4, 5, 6, 7}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data := seq()
			if err := CopyBoxWithin(data, ext, tt.dstStart, tt.srcStart, tt.count); err != nil {
				t.Fatalf("CopyBoxWithin failed: %v", err)
			}
			for i := range tt.want {
				if data[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", data, tt.want)
				}
			}
		})
	}

	if err := CopyBoxWithin(seq(), ext, []int{1, 0}, []int{0, 0}, []int{2, 1}); !errors.Is(err, ErrBox) {
		t.Errorf("expected ErrBox, got %v", err)
	}
}
