package pack

import (
	"math"
	"testing"

	"github.com/cockroachdb/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robert-malhotra/go-ndgrid/internal/binary"
	"github.com/robert-malhotra/go-ndgrid/memory"
)

func TestCursorAlign(t *testing.T) {
	c := NewCursor(memory.NewHeap(32))

	require.NoError(t, c.Skip(3))
	require.NoError(t, c.Align(8))
	assert.Equal(t, 8, c.Offset())

	require.NoError(t, c.Align(8))
	assert.Equal(t, 8, c.Offset(), "aligned offset is unchanged")

	require.NoError(t, c.Align(1))
	assert.Equal(t, 8, c.Offset())

	require.NoError(t, c.AddOffset(23))
	err := c.Align(64)
	assert.True(t, errors.Is(err, ErrShortBuffer))
	assert.Equal(t, 31, c.Offset())
}

func TestCursorReservePeek(t *testing.T) {
	mem := memory.NewHeap(4)
	c := NewCursor(mem)

	buf, err := c.Peek(4)
	require.NoError(t, err)
	buf[0] = 9
	assert.Equal(t, 0, c.Offset())

	buf, err = c.Reserve(2)
	require.NoError(t, err)
	assert.Equal(t, []byte{9, 0}, buf)
	assert.Equal(t, 2, c.Remaining())

	_, err = c.Reserve(3)
	assert.True(t, errors.Is(err, ErrShortBuffer))
	_, err = c.Reserve(-1)
	assert.Error(t, err)
	assert.Equal(t, 2, c.Offset())
}

func TestCursorLength(t *testing.T) {
	c := NewCursor(memory.External(make([]byte, 8+513)))
	require.NoError(t, c.WriteLength(513))

	c.Reset()
	n, err := c.ReadLength()
	require.NoError(t, err)
	assert.Equal(t, 513, n)

	require.NoError(t, c.Skip(513))
	_, err = c.ReadLength()
	assert.True(t, errors.Is(err, ErrShortBuffer))
}

func TestCursorLengthBeyondRegion(t *testing.T) {
	for _, prefix := range []uint64{math.MaxUint64, 1 << 63, 17} {
		mem := memory.External(make([]byte, 24))
		binary.DefaultConfig().PutLength(mem, prefix)

		c := NewCursor(mem)
		n, err := c.ReadLength()
		assert.True(t, errors.Is(err, ErrShortBuffer), "prefix %d", prefix)
		assert.Zero(t, n)
		assert.Equal(t, 0, c.Offset(), "prefix %d", prefix)
	}

	mem := memory.External(make([]byte, 24))
	binary.DefaultConfig().PutLength(mem, 16)
	n, err := NewCursor(mem).ReadLength()
	require.NoError(t, err)
	assert.Equal(t, 16, n)
}

func TestCursorNilRegion(t *testing.T) {
	c := NewCursor(nil)
	assert.Equal(t, 0, c.Size())
	assert.Equal(t, 0, c.Remaining())
	assert.NoError(t, c.WriteBytes(nil))
	assert.True(t, errors.Is(c.WriteBytes([]byte{1}), ErrShortBuffer))
}

func TestCursorShortBufferIsOutOfBounds(t *testing.T) {
	c := NewCursor(memory.NewHeap(4))
	require.NoError(t, c.Skip(3))

	_, err := c.Reserve(2)
	assert.True(t, errors.Is(err, ErrShortBuffer))
	assert.True(t, errors.Is(err, memory.ErrOutOfBounds))
	assert.Equal(t, 3, c.Offset())
}
