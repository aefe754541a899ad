package pack

import (
	stdbinary "encoding/binary"

	"github.com/cockroachdb/errors"

	"github.com/robert-malhotra/go-ndgrid/internal/binary"
	"github.com/robert-malhotra/go-ndgrid/memory"
)

// Cursor tracks the number of bytes consumed from a memory region during a
// pack or unpack session. Every transfer reserves its whole byte span before
// copying, so a failed transfer leaves the cursor where it was.
type Cursor struct {
	mem memory.Region
	cfg binary.Config
	off int
}

// CursorOption configures a Cursor.
type CursorOption func(*Cursor)

// WithByteOrder sets the byte order of dynamic array length prefixes.
// Both sides of a session must agree on it.
func WithByteOrder(order stdbinary.ByteOrder) CursorOption {
	return func(c *Cursor) {
		if order != nil {
			c.cfg.ByteOrder = order
		}
	}
}

// NewCursor creates a cursor at offset 0 of mem. A nil region has no
// capacity.
func NewCursor(mem memory.Region, opts ...CursorOption) *Cursor {
	if mem == nil {
		mem = memory.External(nil)
	}
	c := &Cursor{
		mem: mem,
		cfg: binary.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Offset returns the number of bytes consumed so far.
func (c *Cursor) Offset() int {
	return c.off
}

// Region returns the underlying memory region.
func (c *Cursor) Region() memory.Region {
	return c.mem
}

// Size returns the capacity of the underlying region.
func (c *Cursor) Size() int {
	return c.mem.Size()
}

// Remaining returns the number of bytes left after the offset.
func (c *Cursor) Remaining() int {
	return c.Size() - c.off
}

// Reset rewinds the cursor to offset 0.
func (c *Cursor) Reset() {
	c.off = 0
}

// Reserve returns the next n bytes of the region and advances past them.
// Delegates use it to write or read their own encodings in place.
func (c *Cursor) Reserve(n int) ([]byte, error) {
	buf, err := c.Peek(n)
	if err != nil {
		return nil, err
	}
	c.off += n
	return buf, nil
}

// Peek returns the next n bytes without advancing.
func (c *Cursor) Peek(n int) ([]byte, error) {
	if n < 0 {
		return nil, errors.Newf("negative length %d", n)
	}
	if n == 0 {
		return nil, nil
	}
	if err := memory.Check(c.mem, c.off, n); err != nil {
		return nil, errors.Mark(errors.Wrapf(err, "need %d bytes at offset %d", n, c.off), ErrShortBuffer)
	}
	return c.mem.Slice(c.off, n), nil
}

// AddOffset advances the offset past n bytes a delegate wrote or read
// directly through Region.
func (c *Cursor) AddOffset(n int) error {
	_, err := c.Reserve(n)
	return err
}

// Skip advances the offset by n bytes without transferring anything.
func (c *Cursor) Skip(n int) error {
	return c.AddOffset(n)
}

// Align advances the offset to the next multiple of alignment.
// If already aligned, the offset is unchanged.
func (c *Cursor) Align(alignment int) error {
	if alignment <= 1 {
		return nil
	}
	if rem := c.off % alignment; rem != 0 {
		return c.Skip(alignment - rem)
	}
	return nil
}

// WriteBytes copies data to the region at the offset.
func (c *Cursor) WriteBytes(data []byte) error {
	buf, err := c.Reserve(len(data))
	if err != nil {
		return err
	}
	copy(buf, data)
	return nil
}

// ReadBytes fills dst from the region at the offset.
func (c *Cursor) ReadBytes(dst []byte) error {
	buf, err := c.Reserve(len(dst))
	if err != nil {
		return err
	}
	copy(dst, buf)
	return nil
}

// WriteLength writes an 8-byte length prefix.
func (c *Cursor) WriteLength(n int) error {
	buf, err := c.Reserve(binary.LengthSize)
	if err != nil {
		return err
	}
	c.cfg.PutLength(buf, uint64(n))
	return nil
}

// ReadLength reads an 8-byte length prefix. A length larger than the bytes
// left after the prefix cannot describe data in the region and is rejected
// without consuming the prefix.
func (c *Cursor) ReadLength() (int, error) {
	buf, err := c.Peek(binary.LengthSize)
	if err != nil {
		return 0, err
	}
	n := c.cfg.Length(buf)
	if avail := uint64(c.Remaining() - binary.LengthSize); n > avail {
		return 0, errors.Wrapf(ErrShortBuffer, "length %d at offset %d exceeds the %d bytes left", n, c.off, avail)
	}
	c.off += binary.LengthSize
	return int(n), nil
}

// reserveArray reserves a length prefix plus n elements of elemSize bytes on
// the unpack side. It returns the payload; nothing is consumed on error.
func (c *Cursor) reserveArray(elemSize int) (int, []byte, error) {
	hdr, err := c.Peek(binary.LengthSize)
	if err != nil {
		return 0, nil, err
	}
	n := c.cfg.Length(hdr)
	avail := uint64(c.Remaining() - binary.LengthSize)
	if elemSize > 0 && n > avail/uint64(elemSize) {
		return 0, nil, errors.Wrapf(ErrShortBuffer, "array of %d elements at offset %d exceeds capacity %d",
			n, c.off, c.Size())
	}
	buf, err := c.Reserve(binary.LengthSize + int(n)*elemSize)
	if err != nil {
		return 0, nil, err
	}
	return int(n), buf[binary.LengthSize:], nil
}

// writeArray writes a length prefix followed by payload as one transfer.
func (c *Cursor) writeArray(n int, payload []byte) error {
	buf, err := c.Reserve(binary.LengthSize + len(payload))
	if err != nil {
		return err
	}
	c.cfg.PutLength(buf, uint64(n))
	copy(buf[binary.LengthSize:], payload)
	return nil
}
