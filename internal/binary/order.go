package binary

import "encoding/binary"

// LengthSize is the width in bytes of a dynamic array length prefix.
const LengthSize = 8

// Config holds the byte order used for length prefixes.
type Config struct {
	ByteOrder binary.ByteOrder
}

// DefaultConfig returns a configuration using the native byte order.
func DefaultConfig() Config {
	return Config{ByteOrder: binary.NativeEndian}
}

// PutLength encodes n into the first LengthSize bytes of buf.
func (c Config) PutLength(buf []byte, n uint64) {
	c.order().PutUint64(buf, n)
}

// Length decodes a length prefix from the first LengthSize bytes of buf.
func (c Config) Length(buf []byte) uint64 {
	return c.order().Uint64(buf)
}

func (c Config) order() binary.ByteOrder {
	if c.ByteOrder == nil {
		return binary.NativeEndian
	}
	return c.ByteOrder
}
