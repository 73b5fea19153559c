package fixed

import (
	"errors"
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// MaxWidth is the widest supported fixed-point format.
const MaxWidth = 64

// ErrInvalidFormat is returned for a Format outside the supported range.
var ErrInvalidFormat = errors.New("fixed: invalid format")

// RoundMode selects how values are quantized to a format's resolution.
type RoundMode uint8

const (
	// Truncate rounds toward negative infinity (drops fractional bits).
	Truncate RoundMode = iota
	// Convergent rounds to nearest with ties to even.
	Convergent
)

// Format is a two's-complement fixed-point format with Width total bits of
// which Int are integer bits (sign included). The representable range is
// [-2^(Int-1), 2^(Int-1) - 2^-Frac].
type Format struct {
	Width int
	Int   int
}

// Frac returns the number of fractional bits.
func (f Format) Frac() int { return f.Width - f.Int }

// Validate returns ErrInvalidFormat unless 1 <= Width <= MaxWidth and
// 1 <= Int <= Width.
func (f Format) Validate() error {
	if f.Width < 1 || f.Width > MaxWidth || f.Int < 1 || f.Int > f.Width {
		return fmt.Errorf("%w: width=%d int=%d", ErrInvalidFormat, f.Width, f.Int)
	}

	return nil
}

// Eps returns the value of one least significant bit.
func (f Format) Eps() float64 { return math.Ldexp(1, -f.Frac()) }

// Min returns the most negative representable value.
func (f Format) Min() float64 { return -math.Ldexp(1, f.Int-1) }

// Max returns the most positive representable value.
func (f Format) Max() float64 { return math.Ldexp(1, f.Int-1) - f.Eps() }

func (f Format) String() string {
	return "Q" + strconv.Itoa(f.Width) + "." + strconv.Itoa(f.Frac())
}

// FromFloat quantizes x into f with truncation and wrap-around.
// NaN maps to zero; infinities, and values too large to scale into a
// float64, map to Min and Max.
func (f Format) FromFloat(x float64) Q {
	return f.FromFloatMode(x, Truncate)
}

// FromFloatMode quantizes x into f using the given rounding mode.
func (f Format) FromFloatMode(x float64, mode RoundMode) Q {
	switch {
	case math.IsNaN(x):
		return Q{f: f}
	case math.IsInf(x, 1):
		return Q{raw: f.wrap(new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), uint(f.Width-1)), big.NewInt(1))), f: f}
	case math.IsInf(x, -1):
		return Q{raw: f.wrap(new(big.Int).Neg(new(big.Int).Lsh(big.NewInt(1), uint(f.Width-1)))), f: f}
	}

	scaled := math.Ldexp(x, f.Frac())
	if math.IsInf(scaled, 0) {
		return f.FromFloatMode(scaled, mode)
	}

	if mode == Convergent {
		scaled = math.RoundToEven(scaled)
	} else {
		scaled = math.Floor(scaled)
	}

	v, _ := new(big.Float).SetFloat64(scaled).Int(nil)

	return Q{raw: f.wrap(v), f: f}
}

// Quantize returns x after a round trip through f.
func (f Format) Quantize(x float64) float64 {
	return f.FromFloat(x).Float64()
}

// QuantizeMode returns x after a round trip through f using mode.
func (f Format) QuantizeMode(x float64, mode RoundMode) float64 {
	return f.FromFloatMode(x, mode).Float64()
}

// FromRaw builds a Q from its two's-complement bit pattern.
func (f Format) FromRaw(raw int64) Q {
	return Q{raw: f.wrap(big.NewInt(raw)), f: f}
}

// wrap reduces v modulo 2^Width into the signed range of the format.
func (f Format) wrap(v *big.Int) int64 {
	if f.Width <= 0 {
		return 0
	}

	mod := new(big.Int).Lsh(big.NewInt(1), uint(f.Width))
	low := new(big.Int).And(v, new(big.Int).Sub(mod, big.NewInt(1)))

	if low.Bit(f.Width-1) == 1 {
		low.Sub(low, mod)
	}

	return low.Int64()
}

// fromScaled converts v, which carries frac fractional bits, into f.
func (f Format) fromScaled(v *big.Int, frac int) Q {
	switch shift := frac - f.Frac(); {
	case shift > 0:
		v.Rsh(v, uint(shift))
	case shift < 0:
		v.Lsh(v, uint(-shift))
	}

	return Q{raw: f.wrap(v), f: f}
}

// Q is a fixed-point value. Binary operations return a value in the
// receiver's format; a zero Q has no format and adopts the format of the
// other operand.
type Q struct {
	raw int64
	f   Format
}

// Format returns the format of q.
func (q Q) Format() Format { return q.f }

// Raw returns the two's-complement bit pattern of q, sign-extended.
func (q Q) Raw() int64 { return q.raw }

// Float64 returns the exact value of q when Width <= 53, and the nearest
// float64 otherwise.
func (q Q) Float64() float64 { return math.Ldexp(float64(q.raw), -q.f.Frac()) }

// IsZero reports whether q is zero.
func (q Q) IsZero() bool { return q.raw == 0 }

// Neg returns -q. Negating the most negative value wraps to itself.
func (q Q) Neg() Q {
	return q.f.fromScaled(new(big.Int).Neg(big.NewInt(q.raw)), q.f.Frac())
}

// Add returns q+r.
func (q Q) Add(r Q) Q {
	a, b, frac := align(q, r)
	return q.resultFormat(r).fromScaled(a.Add(a, b), frac)
}

// Sub returns q-r.
func (q Q) Sub(r Q) Q {
	a, b, frac := align(q, r)
	return q.resultFormat(r).fromScaled(a.Sub(a, b), frac)
}

// Mul returns q·r.
func (q Q) Mul(r Q) Q {
	p := new(big.Int).Mul(big.NewInt(q.raw), big.NewInt(r.raw))
	return q.resultFormat(r).fromScaled(p, q.f.Frac()+r.f.Frac())
}

// Quo returns q/r. It panics if r is zero.
func (q Q) Quo(r Q) Q {
	if r.raw == 0 {
		panic("fixed: division by zero")
	}

	f := q.resultFormat(r)
	num := big.NewInt(q.raw)
	den := big.NewInt(r.raw)

	// raw = floor(q.raw * 2^(f.Frac+r.Frac-q.Frac) / r.raw)
	k := f.Frac() + r.f.Frac() - q.f.Frac()
	if k >= 0 {
		num.Lsh(num, uint(k))
	} else {
		den.Lsh(den, uint(-k))
	}

	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}

	// Euclidean division floors for a positive divisor.
	num.Div(num, den)

	return Q{raw: f.wrap(num), f: f}
}

func (q Q) resultFormat(r Q) Format {
	if q.f.Width == 0 {
		return r.f
	}

	return q.f
}

func (q Q) String() string {
	return strconv.FormatFloat(q.Float64(), 'g', -1, 64)
}

func align(q, r Q) (*big.Int, *big.Int, int) {
	a := big.NewInt(q.raw)
	b := big.NewInt(r.raw)
	fa, fb := q.f.Frac(), r.f.Frac()

	switch {
	case fa > fb:
		b.Lsh(b, uint(fa-fb))
		return a, b, fa
	case fb > fa:
		a.Lsh(a, uint(fb-fa))
		return a, b, fb
	default:
		return a, b, fa
	}
}
