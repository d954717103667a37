// Package bits provides bounded, position-tracked bit reading over a
// byte slice.
package bits

// Reader reads bits from a byte buffer, most significant bit first.
//
// It uses a two-word approach for efficient bit reading:
//   - bufa holds the 32 bits currently being consumed
//   - bufb pre-loads the next 32 bits for look-ahead
//
// Reads past the end of the buffer return zero bits and set the
// overrun flag; they never touch memory outside the buffer. This is
// what lets callers treat a truncated bitstream as damage to absorb
// rather than a bounds error.
type Reader struct {
	buffer   []byte // underlying data, never mutated
	bufa     uint32 // current 32-bit word
	bufb     uint32 // look-ahead 32-bit word
	bitsLeft uint32 // unconsumed bits in bufa (0-32)
	pos      int    // byte offset of the next word to load
	err      bool   // overrun flag
}

// NewReader creates a Reader over data. The first 64 bits (or as many
// as available, zero-padded) are pre-loaded.
func NewReader(data []byte) *Reader {
	r := &Reader{}
	r.Reset(data)
	return r
}

// Reset re-points the Reader at data and rewinds it to the first bit.
// It allows reusing a Reader without allocating a new one.
func (r *Reader) Reset(data []byte) {
	r.buffer = data
	r.bufa = loadWord(data, 0)
	r.bufb = loadWord(data, 4)
	r.pos = 8
	r.bitsLeft = 32
	r.err = false
}

// loadWord loads up to 4 bytes at offset as a big-endian uint32,
// zero-padding on the right past the end of data.
func loadWord(data []byte, offset int) uint32 {
	if offset >= len(data) {
		return 0
	}
	rem := data[offset:]
	if len(rem) >= 4 {
		return uint32(rem[0])<<24 | uint32(rem[1])<<16 |
			uint32(rem[2])<<8 | uint32(rem[3])
	}
	var w uint32
	for i, b := range rem {
		w |= uint32(b) << (24 - 8*uint(i))
	}
	return w
}

// Overrun reports whether any read consumed bits past the end of the
// buffer.
func (r *Reader) Overrun() bool {
	return r.err
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int {
	return r.pos*8 - int(r.bitsLeft) - 32
}

// BitsLeft returns the number of unread bits in the buffer, never
// negative.
func (r *Reader) BitsLeft() int {
	n := len(r.buffer)*8 - r.BitsRead()
	if n < 0 {
		return 0
	}
	return n
}

// ShowBits returns the next n bits without consuming them. n must be
// 0-32.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	if n <= uint(r.bitsLeft) {
		return (r.bufa << (32 - r.bitsLeft)) >> (32 - n)
	}
	// Straddles bufa and bufb.
	fromB := n - uint(r.bitsLeft)
	var hi uint32
	if r.bitsLeft > 0 {
		hi = (r.bufa & ((1 << r.bitsLeft) - 1)) << fromB
	}
	return hi | r.bufb>>(32-fromB)
}

// FlushBits discards n bits. n must be 0-32.
func (r *Reader) FlushBits(n uint) {
	if n < uint(r.bitsLeft) {
		r.bitsLeft -= uint32(n)
	} else {
		// Rotate bufb into bufa and pull the next word.
		r.bufa = r.bufb
		r.bufb = loadWord(r.buffer, r.pos)
		r.pos += 4
		r.bitsLeft += 32 - uint32(n)
	}
	if r.BitsRead() > len(r.buffer)*8 {
		r.err = true
	}
}

// GetBits reads and returns n bits. n must be 0-32.
func (r *Reader) GetBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	v := r.ShowBits(n)
	r.FlushBits(n)
	return v
}

// Get1Bit reads a single bit. Fast path for Huffman tree walks.
func (r *Reader) Get1Bit() uint8 {
	if r.bitsLeft > 0 {
		r.bitsLeft--
		return uint8((r.bufa >> r.bitsLeft) & 1)
	}
	return uint8(r.GetBits(1))
}

// SetPosition moves the read position to an absolute bit offset from
// the start of the buffer. It is used to realign after a bounded
// region (a granule's bit budget) regardless of where decoding inside
// the region stopped.
func (r *Reader) SetPosition(bit int) {
	if bit < 0 {
		bit = 0
	}
	word := bit / 32
	r.bufa = loadWord(r.buffer, word*4)
	r.bufb = loadWord(r.buffer, word*4+4)
	r.pos = word*4 + 8
	r.bitsLeft = uint32(32 - (bit - word*32))
	r.err = bit > len(r.buffer)*8
}

// SkipBits discards n bits, where n may exceed 32.
func (r *Reader) SkipBits(n uint) {
	for n > 32 {
		r.FlushBits(32)
		n -= 32
	}
	if n > 0 {
		r.FlushBits(n)
	}
}
