// Package bits implements an MSB-first bit reader for AC-4 bitstreams.
package bits

import "errors"

// ErrOverrun indicates a read past the end of the buffer.
var ErrOverrun = errors.New("bits: read past end of buffer")

// Reader reads bits from a byte buffer.
//
// It keeps two 32-bit words: bufa holds the bits being read from and
// bufb pre-loads the next word for look-ahead.
type Reader struct {
	buffer   []byte
	bufa     uint32 // Current 32-bit word
	bufb     uint32 // Next 32-bit word
	bitsLeft uint32 // Unread bits in bufa (1-32)
	pos      int    // Byte offset of the next word to load
	consumed int    // Total bits consumed
	err      error
}

// NewReader creates a Reader from a byte slice. Reading from an empty
// buffer yields ErrOverrun.
func NewReader(data []byte) *Reader {
	r := &Reader{buffer: data}
	if len(data) == 0 {
		r.err = ErrOverrun
		return r
	}

	r.bufa = r.loadWord(0)
	r.bufb = r.loadWord(4)
	r.pos = 8
	r.bitsLeft = 32
	return r
}

// loadWord loads up to 4 bytes at offset as a big-endian word, padding
// missing bytes with zeros.
func (r *Reader) loadWord(offset int) uint32 {
	var w uint32
	for i := 0; i < 4; i++ {
		w <<= 8
		if offset+i < len(r.buffer) {
			w |= uint32(r.buffer[offset+i])
		}
	}
	return w
}

// Err returns ErrOverrun once a read went past the end of the buffer.
func (r *Reader) Err() error {
	return r.err
}

// BitsRead returns the number of bits consumed so far.
func (r *Reader) BitsRead() int {
	return r.consumed
}

// ShowBits returns the next n bits without consuming them.
// n must be 0-32.
func (r *Reader) ShowBits(n uint) uint32 {
	if n == 0 {
		return 0
	}
	if n <= uint(r.bitsLeft) {
		return (r.bufa << (32 - r.bitsLeft)) >> (32 - n)
	}

	fromB := n - uint(r.bitsLeft)
	return ((r.bufa & (1<<r.bitsLeft - 1)) << fromB) | (r.bufb >> (32 - fromB))
}

// FlushBits discards n bits from the stream.
func (r *Reader) FlushBits(n uint) {
	if r.err != nil {
		return
	}

	r.consumed += int(n)
	if r.consumed > len(r.buffer)*8 {
		r.err = ErrOverrun
		return
	}

	if n < uint(r.bitsLeft) {
		r.bitsLeft -= uint32(n)
		return
	}

	r.bufa = r.bufb
	r.bufb = r.loadWord(r.pos)
	r.pos += 4
	r.bitsLeft += 32 - uint32(n)
}

// GetBits reads and returns n bits from the stream. n must be 0-32.
// After an overrun GetBits returns 0.
func (r *Reader) GetBits(n uint) uint32 {
	if n == 0 || r.err != nil {
		return 0
	}

	v := r.ShowBits(n)
	r.FlushBits(n)
	if r.err != nil {
		return 0
	}
	return v
}

// Get1Bit reads a single bit as a bool.
func (r *Reader) Get1Bit() bool {
	return r.GetBits(1) == 1
}

// VariableBits reads an AC-4 variable_bits(n) value: groups of n bits,
// each followed by a continuation flag.
func (r *Reader) VariableBits(n uint) uint32 {
	var value uint32
	for {
		value += r.GetBits(n)
		if !r.Get1Bit() {
			return value
		}
		value <<= n
		value += 1 << n
	}
}
