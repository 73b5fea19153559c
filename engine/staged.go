package engine

import (
	"math"

	"github.com/cwbudde/xfft"
	"github.com/cwbudde/xfft/fixed"
	mathpkg "github.com/cwbudde/xfft/internal/math"
)

// Staged models the core as a sequence of radix-2 decimation-in-time
// stages. Radix-4 architectures are modeled as pairs of radix-2 stages,
// with a trailing radix-2 stage for odd transform sizes.
//
// For fixed-point cores the twiddle factors are quantized to the phase
// factor width. With scaled or block floating point arithmetic the data is
// also quantized to the input resolution after every scaling point, using
// the core's rounding mode; the overflow flag is raised when a scaled
// stage leaves [-1, 1).
type Staged struct{}

// Simulate implements xfft.Engine.
func (Staged) Simulate(g xfft.Generics, in xfft.Inputs, out *xfft.Outputs) int {
	x, code := load(in, out)
	if code != 0 {
		return code
	}

	n := len(x)
	nfft := in.NFFT

	rev := mathpkg.ComputeBitReversalIndices(n)
	work := make([]sample, n)

	for i, j := range rev {
		work[i] = fixed.FromComplex128(x[j])
	}

	tw := twiddles(g, n, in.Direction)
	quantize := dataQuantizer(g)

	var (
		exp      uint8
		overflow bool
	)

	for s := 1; s <= nfft; s++ {
		butterflies(work, tw, s)

		if g.FloatingPoint {
			continue
		}

		idx, ok := scalingPoint(g.Arch, s, nfft)
		if !ok {
			continue
		}

		switch {
		case g.HasBFP:
			exp += normalizeStage(work)
		case g.HasScaling:
			if idx < len(in.Scaling) {
				scaleStage(work, -int(in.Scaling[idx]))
			}

			if !stageInRange(work) {
				overflow = true
			}
		}

		if quantize != nil {
			for i, v := range work {
				work[i] = fixed.NewComplex(fixed.Float(quantize(float64(v.Re))), fixed.Float(quantize(float64(v.Im))))
			}
		}
	}

	for i, v := range work {
		out.Re[i], out.Im[i] = float64(v.Re), float64(v.Im)
	}

	out.BlockExp = exp
	out.Overflow = overflow

	return 0
}

type sample = fixed.Complex[fixed.Float]

// butterflies runs radix-2 stage s (1-based) in place over bit-reversed
// data. Products take the format of the data, not of the twiddles.
func butterflies[R fixed.Real[R]](x, tw []fixed.Complex[R], s int) {
	n := len(x)
	half := 1 << (s - 1)
	step := n >> s

	for k := 0; k < n; k += 2 * half {
		for j := 0; j < half; j++ {
			t := x[k+j+half].Mul(tw[j*step])
			u := x[k+j]
			x[k+j] = u.Add(t)
			x[k+j+half] = u.Sub(t)
		}
	}
}

func scaleStage(x []sample, exp int) {
	if exp == 0 {
		return
	}

	f := fixed.Float(math.Ldexp(1, exp))
	for i := range x {
		x[i] = x[i].Scale(f)
	}
}

func stageInRange(x []sample) bool {
	for _, v := range x {
		if !componentInRange(float64(v.Re)) || !componentInRange(float64(v.Im)) {
			return false
		}
	}

	return true
}

// normalizeStage halves x until it fits the data path and returns the
// number of halvings.
func normalizeStage(x []sample) uint8 {
	var exp uint8
	for !stageInRange(x) && exp < math.MaxUint8 {
		scaleStage(x, -1)
		exp++
	}

	return exp
}

// scalingPoint reports whether a scaling value applies after radix-2 stage
// s and, if so, its index in the schedule.
func scalingPoint(arch xfft.Architecture, s, nfft int) (int, bool) {
	switch {
	case arch.Radix2():
		return s - 1, true
	case s%2 == 0:
		return s/2 - 1, true
	case s == nfft:
		return (s - 1) / 2, true
	default:
		return 0, false
	}
}

// twiddles returns the n/2 twiddle factors for the direction, quantized to
// the phase factor width for fixed-point cores. One integer bit above the
// sign keeps the factor 1 representable.
func twiddles(g xfft.Generics, n int, dir xfft.Direction) []sample {
	ideal := mathpkg.ComputeTwiddleFactors(n)
	if ideal == nil {
		ideal = []complex128{1}
	}

	tw := make([]sample, len(ideal))

	var q fixed.Format
	if !g.FloatingPoint && g.TwiddleWidth > 0 {
		q = fixed.Format{Width: g.TwiddleWidth + 1, Int: 2}
	}

	for i, w := range ideal {
		if dir == xfft.Inverse {
			w = complex(real(w), -imag(w))
		}

		if q.Width > 0 {
			w = complex(q.QuantizeMode(real(w), fixed.Convergent), q.QuantizeMode(imag(w), fixed.Convergent))
		}

		tw[i] = fixed.FromComplex128(w)
	}

	return tw
}

// dataQuantizer returns the rounding applied to the data path after each
// scaling point, or nil when the data path keeps full precision.
func dataQuantizer(g xfft.Generics) func(float64) float64 {
	if g.FloatingPoint || !g.HasScaling || g.InputWidth <= 1 {
		return nil
	}

	frac := g.InputWidth - 1
	q := fixed.Format{Width: fixed.MaxWidth, Int: fixed.MaxWidth - frac}

	mode := fixed.Truncate
	if g.Rounding == xfft.ConvergentRounding {
		mode = fixed.Convergent
	}

	return func(x float64) float64 { return q.QuantizeMode(x, mode) }
}
