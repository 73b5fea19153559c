package fixed

// Float is a float64 real representation.
type Float float64

func (x Float) Add(y Float) Float { return x + y }
func (x Float) Sub(y Float) Float { return x - y }
func (x Float) Mul(y Float) Float { return x * y }
func (x Float) Quo(y Float) Float { return x / y }
func (x Float) Neg() Float { return -x }
func (x Float) IsZero() bool { return x == 0 }
func (x Float) Float64() float64 { return float64(x) }

// FromComplex128 converts a built-in complex value to Complex[Float].
func FromComplex128(c complex128) Complex[Float] {
	return Complex[Float]{Re: Float(real(c)), Im: Float(imag(c))}
}

// QuantizeFloat32 returns x rounded to the nearest float32.
func QuantizeFloat32(x float64) float64 {
	return float64(float32(x))
}
