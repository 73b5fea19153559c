package engine

import (
	"math"

	"github.com/cwbudde/xfft"
)

// load checks the array sizes of one call and returns the input as
// complex samples.
func load(in xfft.Inputs, out *xfft.Outputs) ([]complex128, int) {
	if in.NFFT < 0 || in.NFFT > 30 {
		return nil, CodeInvalidInput
	}

	n := 1 << in.NFFT
	if len(in.Re) != n || len(in.Im) != n {
		return nil, CodeInvalidInput
	}

	if out == nil || len(out.Re) != n || len(out.Im) != n {
		return nil, CodeInvalidOutput
	}

	x := make([]complex128, n)
	for i := range x {
		x[i] = complex(in.Re[i], in.Im[i])
	}

	return x, 0
}

// store applies the core's arithmetic to an ideal transform y and writes
// it to out. Floating-point cores are never scaled.
func store(g xfft.Generics, in xfft.Inputs, y []complex128, out *xfft.Outputs) {
	switch {
	case g.FloatingPoint:
	case g.HasBFP:
		out.BlockExp = normalize(y)
	case g.HasScaling:
		scaleAll(y, -totalShift(in.Scaling))
		out.Overflow = !inRange(y)
	}

	for i, v := range y {
		out.Re[i], out.Im[i] = real(v), imag(v)
	}
}

func totalShift(sched []uint8) int {
	total := 0
	for _, s := range sched {
		total += int(s)
	}

	return total
}

// scaleAll multiplies every sample by 2^exp.
func scaleAll(y []complex128, exp int) {
	if exp == 0 {
		return
	}

	s := complex(math.Ldexp(1, exp), 0)
	for i := range y {
		y[i] *= s
	}
}

// inRange reports whether every component lies in [-1, 1), the range of
// the data path's sign bit and fraction.
func inRange(y []complex128) bool {
	for _, v := range y {
		if !componentInRange(real(v)) || !componentInRange(imag(v)) {
			return false
		}
	}

	return true
}

func componentInRange(x float64) bool {
	return x >= -1 && x < 1
}

// normalize halves y until it fits the data path and returns the number of
// halvings.
func normalize(y []complex128) uint8 {
	var exp uint8
	for !inRange(y) && exp < math.MaxUint8 {
		scaleAll(y, -1)
		exp++
	}

	return exp
}
