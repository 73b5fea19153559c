package math

// ComputeBitReversalIndices returns the bit-reversal permutation indices
// for a size-n radix-2 transform.
func ComputeBitReversalIndices(n int) []int {
	if n <= 0 {
		return nil
	}

	bitrev := make([]int, n)
	bits := Log2(n)

	for i := 0; i < n; i++ {
		bitrev[i] = ReverseBits(i, bits)
	}

	return bitrev
}

// Log2 returns the base-2 logarithm of n (assuming n is a power of 2).
func Log2(n int) int {
	result := 0

	for n > 1 {
		n >>= 1
		result++
	}

	return result
}

// ReverseBits reverses the lower 'bits' bits of x.
// Example: ReverseBits(6, 3) = ReverseBits(0b110, 3) = 0b011 = 3.
func ReverseBits(x, bits int) int {
	result := 0
	for _i := 0; _i < bits; _i++ {
		result = (result << 1) | (x & 1)
		x >>= 1
	}

	return result
}

// IsPowerOf2 reports whether n is a positive power of two.
func IsPowerOf2(n int) bool {
	return n > 0 && n&(n-1) == 0
}

// RoundUpToByte rounds a bit count up to the next multiple of 8.
func RoundUpToByte(bits int) int {
	return ((bits + 7) >> 3) << 3
}
