package engine

import (
	"sync"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/cwbudde/xfft"
)

// Reference computes the ideal double-precision transform with gonum's
// complex FFT and then applies the core's scaling. The inverse transform
// is not normalized.
type Reference struct {
	mu    sync.Mutex
	pools map[int]*sync.Pool
}

// NewReference returns a Reference engine.
func NewReference() *Reference {
	return &Reference{pools: map[int]*sync.Pool{}}
}

// Simulate implements xfft.Engine.
func (r *Reference) Simulate(g xfft.Generics, in xfft.Inputs, out *xfft.Outputs) int {
	x, code := load(in, out)
	if code != 0 {
		return code
	}

	// CmplxFFT keeps scratch space, so each call borrows its own.
	pool := r.pool(len(x))
	fft := pool.Get().(*fourier.CmplxFFT)
	defer pool.Put(fft)

	var y []complex128
	if in.Direction == xfft.Forward {
		y = fft.Coefficients(nil, x)
	} else {
		y = fft.Sequence(nil, x)
	}

	store(g, in, y, out)

	return 0
}

func (r *Reference) pool(n int) *sync.Pool {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.pools == nil {
		r.pools = map[int]*sync.Pool{}
	}

	p, ok := r.pools[n]
	if !ok {
		p = &sync.Pool{New: func() any { return fourier.NewCmplxFFT(n) }}
		r.pools[n] = p
	}

	return p
}
