package grid

import (
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustShape(t *testing.T, extents ...int) Shape {
	t.Helper()
	s, err := NewShape(extents...)
	require.NoError(t, err)
	return s
}

func TestLinearize(t *testing.T) {
	s := mustShape(t, 4, 3)

	assert.Equal(t, 12, s.Size())
	assert.Equal(t, []int{4, 12}, s.Strides())
	assert.Equal(t, 6, s.Linearize(NewKey(2, 1)))
	assert.Equal(t, NewKey(2, 1), s.Delinearize(6))
	assert.Equal(t, 6, s.LinearizeSlice([]int{2, 1}))
	assert.True(t, s.IsLinearizeAdditive())
}

func TestDelinearizeInverse(t *testing.T) {
	tests := []struct {
		name    string
		extents []int
	}{
		{"1d", []int{7}},
		{"2d", []int{4, 3}},
		{"3d", []int{3, 4, 5}},
		{"4d", []int{2, 3, 1, 4}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := mustShape(t, tt.extents...)
			for addr := 0; addr < s.Size(); addr++ {
				k := s.Delinearize(addr)
				require.NoError(t, s.Check(k))
				require.Equal(t, addr, s.Linearize(k), "key %s", k)
			}
		})
	}
}

func TestDelinearizeEnd(t *testing.T) {
	s := mustShape(t, 4, 3)
	assert.Equal(t, NewKey(0, 3), s.Delinearize(12))
}

func TestLinearizeAdditive(t *testing.T) {
	s := mustShape(t, 3, 4, 5)
	k1 := NewKey(1, 1, 0)
	k2 := NewKey(1, 2, 3)
	assert.Equal(t, s.Linearize(k1)+s.Linearize(k2), s.Linearize(k1.Add(k2)))
	assert.Equal(t, k1, k1.Add(k2).Sub(k2))
}

func TestNewShapeErrors(t *testing.T) {
	_, err := NewShape()
	assert.True(t, errors.Is(err, ErrDimensions))

	_, err = NewShape(1, 1, 1, 1, 1, 1, 1, 1, 1)
	assert.True(t, errors.Is(err, ErrDimensions))

	_, err = NewShape(3, -1)
	assert.True(t, errors.Is(err, ErrExtent))

	s, err := NewShape(3, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, s.Size())
	assert.Equal(t, 0, TotalSize(3, 0))
	assert.Equal(t, 24, TotalSize(2, 3, 4))
	assert.Equal(t, 0, TotalSize())
}

func TestCheck(t *testing.T) {
	s := mustShape(t, 4, 3)

	assert.NoError(t, s.Check(NewKey(3, 2)))
	assert.True(t, errors.Is(s.Check(NewKey(4, 0)), ErrOutOfRange))
	assert.True(t, errors.Is(s.Check(NewKey(0, -1)), ErrOutOfRange))
	assert.True(t, errors.Is(s.Check(NewKey(1)), ErrDimensionMismatch))

	assert.NoError(t, s.CheckAddress(11))
	assert.True(t, errors.Is(s.CheckAddress(12), ErrOutOfRange))
	assert.True(t, errors.Is(s.CheckAddress(-1), ErrOutOfRange))
}

func TestGhost(t *testing.T) {
	s := mustShape(t, 8, 6)

	start, stop := s.DomainStartStop()
	assert.Equal(t, NewKey(0, 0), start)
	assert.Equal(t, NewKey(8, 6), stop)

	require.NoError(t, s.SetGhost(1, 2))
	assert.Equal(t, NewKey(1, 2), s.DomainStart())
	assert.Equal(t, NewKey(7, 4), s.DomainStop())
	assert.Equal(t, NewKey(1, 2), s.Ghost())

	require.NoError(t, s.SetGhost(4, 3), "margins may meet in the middle")
	assert.Equal(t, s.DomainStart(), s.DomainStop())

	assert.True(t, errors.Is(s.SetGhost(5, 0), ErrGhost))
	assert.True(t, errors.Is(s.SetGhost(1), ErrGhost))
	assert.True(t, errors.Is(s.SetGhost(-1, 0), ErrGhost))
	assert.Equal(t, NewKey(4, 3), s.Ghost(), "failed calls keep the margins")
}

func TestShapeEqual(t *testing.T) {
	a := mustShape(t, 4, 3)
	b := mustShape(t, 4, 3)
	c := mustShape(t, 3, 4)
	require.NoError(t, b.SetGhost(1, 1))

	assert.True(t, a.Equal(&b))
	assert.False(t, a.Equal(&c))
	assert.Equal(t, []int{4, 3}, a.Extents())
	assert.Equal(t, NewKey(4, 3), a.ExtentsKey())
	assert.Equal(t, 3, a.SizeAt(1))
	assert.Equal(t, 2, a.Dims())
}
