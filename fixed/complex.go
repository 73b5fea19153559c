package fixed

import "fmt"

// Real is the arithmetic a real representation must provide to be used as
// the component type of Complex.
type Real[R any] interface {
	Add(R) R
	Sub(R) R
	Mul(R) R
	Quo(R) R
	Neg() R
	IsZero() bool
	Float64() float64
}

// Complex is a complex number with components of representation R.
// The zero value is 0+0i.
type Complex[R Real[R]] struct {
	Re R
	Im R
}

// NewComplex returns re+im·i.
func NewComplex[R Real[R]](re, im R) Complex[R] {
	return Complex[R]{Re: re, Im: im}
}

// Add returns z+w.
func (z Complex[R]) Add(w Complex[R]) Complex[R] {
	return Complex[R]{Re: z.Re.Add(w.Re), Im: z.Im.Add(w.Im)}
}

// Sub returns z-w.
func (z Complex[R]) Sub(w Complex[R]) Complex[R] {
	return Complex[R]{Re: z.Re.Sub(w.Re), Im: z.Im.Sub(w.Im)}
}

// Mul returns z·w.
func (z Complex[R]) Mul(w Complex[R]) Complex[R] {
	return Complex[R]{
		Re: z.Re.Mul(w.Re).Sub(z.Im.Mul(w.Im)),
		Im: z.Re.Mul(w.Im).Add(z.Im.Mul(w.Re)),
	}
}

// Quo returns z/w computed as z·conj(w) / (w·conj(w)). It panics if w is
// zero and R panics on division by zero.
func (z Complex[R]) Quo(w Complex[R]) Complex[R] {
	cj := w.Conj()
	num := z.Mul(cj)
	den := cj.Mul(w)

	return Complex[R]{Re: num.Re.Quo(den.Re), Im: num.Im.Quo(den.Re)}
}

// Scale returns z·s for a real s.
func (z Complex[R]) Scale(s R) Complex[R] {
	return Complex[R]{Re: z.Re.Mul(s), Im: z.Im.Mul(s)}
}

// Conj returns the complex conjugate of z.
func (z Complex[R]) Conj() Complex[R] {
	return Complex[R]{Re: z.Re, Im: z.Im.Neg()}
}

// IsZero reports whether both components are zero.
func (z Complex[R]) IsZero() bool {
	return z.Re.IsZero() && z.Im.IsZero()
}

// Complex128 converts z to a built-in complex value.
func (z Complex[R]) Complex128() complex128 {
	return complex(z.Re.Float64(), z.Im.Float64())
}

func (z Complex[R]) String() string {
	return fmt.Sprintf("(%v%+vi)", z.Re.Float64(), z.Im.Float64())
}
