package xfft

import (
	"strconv"
	"strings"
)

// Word is an arbitrary-width bit vector stored as little-endian 64-bit
// limbs; bit 0 is the least significant bit of the first limb. Reads past
// the end return zero and writes grow the vector.
type Word []uint64

// NewWord returns a zero Word able to hold width bits without growing.
func NewWord(width int) Word {
	return make(Word, (width+63)/64)
}

// Bit returns bit i.
func (w Word) Bit(i int) uint {
	if i < 0 || i/64 >= len(w) {
		return 0
	}

	return uint(w[i/64]>>(i%64)) & 1
}

// SetBit sets bit i to the low bit of v.
func (w *Word) SetBit(i int, v uint) {
	w.SetField(i, 1, uint64(v))
}

// Field returns width bits starting at bit lo. width must be at most 64.
func (w Word) Field(lo, width int) uint64 {
	var v uint64
	for i := 0; i < width; i++ {
		v |= uint64(w.Bit(lo+i)) << i
	}

	return v
}

// SetField stores the low width bits of v starting at bit lo. width must be
// at most 64.
func (w *Word) SetField(lo, width int, v uint64) {
	if width <= 0 {
		return
	}

	if need := (lo + width + 63) / 64; need > len(*w) {
		grown := make(Word, need)
		copy(grown, *w)
		*w = grown
	}

	for i := 0; i < width; i++ {
		pos := lo + i
		mask := uint64(1) << (pos % 64)

		if v>>i&1 == 1 {
			(*w)[pos/64] |= mask
		} else {
			(*w)[pos/64] &^= mask
		}
	}
}

// IsZero reports whether no bit is set.
func (w Word) IsZero() bool {
	for _, limb := range w {
		if limb != 0 {
			return false
		}
	}

	return true
}

// Equal reports whether w and v hold the same bits, ignoring zero limbs
// past the end of the shorter one.
func (w Word) Equal(v Word) bool {
	n := max(len(w), len(v))
	for i := 0; i < n; i++ {
		var a, b uint64
		if i < len(w) {
			a = w[i]
		}

		if i < len(v) {
			b = v[i]
		}

		if a != b {
			return false
		}
	}

	return true
}

// String returns w in hexadecimal, most significant digit first.
func (w Word) String() string {
	i := len(w) - 1
	for i > 0 && w[i] == 0 {
		i--
	}

	if i < 0 {
		return "0x0"
	}

	var sb strings.Builder

	sb.WriteString("0x")
	sb.WriteString(strconv.FormatUint(w[i], 16))

	for i--; i >= 0; i-- {
		digits := strconv.FormatUint(w[i], 16)
		sb.WriteString(strings.Repeat("0", 16-len(digits)))
		sb.WriteString(digits)
	}

	return sb.String()
}
