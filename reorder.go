package xfft

import (
	"fmt"
	"slices"
	"unsafe"

	mathpkg "github.com/cwbudde/xfft/internal/math"
)

// maxReorderNFFT bounds the transform sizes Reorder accepts.
const maxReorderNFFT = 30

// BitReverse returns i with its low nfft bits reversed.
func BitReverse(i, nfft int) int {
	return mathpkg.ReverseBits(i, nfft)
}

// Reorder returns samples in the delivery order o: a copy for Natural,
// and out[i] = samples[BitReverse(i, nfft)] for BitReversed. It returns
// nil if len(samples) is not 1<<nfft.
func Reorder(samples SampleBuffer, o Ordering, nfft int) SampleBuffer {
	if nfft < 0 || nfft > maxReorderNFFT || len(samples) != 1<<nfft {
		return nil
	}

	out := make(SampleBuffer, len(samples))
	_ = ReorderTo(out, samples, o, nfft)

	return out
}

// ReorderTo writes src into dst in the delivery order o. dst and src may
// be the same buffer or overlap in any way.
func ReorderTo(dst, src SampleBuffer, o Ordering, nfft int) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if nfft < 0 || nfft > maxReorderNFFT {
		return fmt.Errorf("%w: nfft=%d", ErrNFFT, nfft)
	}

	n := 1 << nfft
	if len(dst) != n || len(src) != n {
		return fmt.Errorf("%w: dst=%d src=%d, want %d", ErrLengthMismatch, len(dst), len(src), n)
	}

	if o == Natural {
		copy(dst, src)
		return nil
	}

	if &dst[0] == &src[0] {
		for i := 0; i < n; i++ {
			if j := BitReverse(i, nfft); i < j {
				dst[i], dst[j] = dst[j], dst[i]
			}
		}

		return nil
	}

	if overlaps(dst, src) {
		src = slices.Clone(src)
	}

	for i := 0; i < n; i++ {
		dst[i] = src[BitReverse(i, nfft)]
	}

	return nil
}

// overlaps reports whether a and b share any backing memory.
func overlaps(a, b SampleBuffer) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	aLo := uintptr(unsafe.Pointer(&a[0]))
	aHi := uintptr(unsafe.Pointer(&a[len(a)-1]))
	bLo := uintptr(unsafe.Pointer(&b[0]))
	bHi := uintptr(unsafe.Pointer(&b[len(b)-1]))

	return aLo <= bHi && bLo <= aHi
}
