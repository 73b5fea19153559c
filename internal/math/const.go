package math

import "math"

// Mathematical constants for FFT computations.

// TwoPi is 2π with full float64 precision.
const TwoPi = 2.0 * math.Pi

// ComputeTwiddleFactors returns the roots of unity for a size-n transform:
// W_n^k = exp(-2πik/n) for k = 0..n/2-1. Radix-2 stages only ever index
// the first half.
func ComputeTwiddleFactors(n int) []complex128 {
	if n <= 1 {
		return nil
	}

	twiddle := make([]complex128, n/2)
	for k := range twiddle {
		angle := -TwoPi * float64(k) / float64(n)
		twiddle[k] = complex(math.Cos(angle), math.Sin(angle))
	}

	return twiddle
}
