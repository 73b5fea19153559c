package engine

import (
	"github.com/mjibson/go-dsp/fft"

	"github.com/cwbudde/xfft"
)

// GoDSP computes the ideal transform with go-dsp's FFT. It is an
// independent implementation of the same contract as Reference.
type GoDSP struct{}

// Simulate implements xfft.Engine.
func (GoDSP) Simulate(g xfft.Generics, in xfft.Inputs, out *xfft.Outputs) int {
	x, code := load(in, out)
	if code != 0 {
		return code
	}

	var y []complex128
	if in.Direction == xfft.Forward {
		y = fft.FFT(x)
	} else {
		// go-dsp normalizes its inverse by 1/N.
		y = fft.IFFT(x)
		scaleBy(y, float64(len(y)))
	}

	store(g, in, y, out)

	return 0
}

func scaleBy(y []complex128, s float64) {
	c := complex(s, 0)
	for i := range y {
		y[i] *= c
	}
}
