package binary

// Fletcher accumulates a Fletcher-32 checksum over little-endian 16-bit
// words. A trailing odd byte is padded with zero when the sum is read, so
// feeding data in pieces gives the same result as feeding it at once.
// The zero value is ready to use.
type Fletcher struct {
	sum1, sum2 uint32

	// pending holds the low byte of a word split across writes
	pending byte
	odd     bool
}

// Write adds p to the checksum. It never fails.
func (f *Fletcher) Write(p []byte) (int, error) {
	n := len(p)
	if f.odd && len(p) > 0 {
		f.add(uint32(f.pending) | uint32(p[0])<<8)
		f.odd = false
		p = p[1:]
	}
	for ; len(p) >= 2; p = p[2:] {
		f.add(uint32(p[0]) | uint32(p[1])<<8)
	}
	if len(p) == 1 {
		f.pending, f.odd = p[0], true
	}
	return n, nil
}

func (f *Fletcher) add(word uint32) {
	f.sum1 = (f.sum1 + word) % 65535
	f.sum2 = (f.sum2 + f.sum1) % 65535
}

// Sum32 returns the checksum of everything written so far.
func (f *Fletcher) Sum32() uint32 {
	sum1, sum2 := f.sum1, f.sum2
	if f.odd {
		sum1 = (sum1 + uint32(f.pending)) % 65535
		sum2 = (sum2 + sum1) % 65535
	}
	return sum2<<16 | sum1
}

// Reset clears the checksum.
func (f *Fletcher) Reset() {
	*f = Fletcher{}
}

// Fletcher32 returns the Fletcher-32 checksum of data.
func Fletcher32(data []byte) uint32 {
	var f Fletcher
	_, _ = f.Write(data)
	return f.Sum32()
}
