package fixed

import (
	"math"
	"math/cmplx"
	"testing"
)

func TestComplexFloat(t *testing.T) {
	t.Parallel()

	z := FromComplex128(3 + 4i)
	w := FromComplex128(1 - 2i)

	tests := []struct {
		name string
		got  Complex[Float]
		want complex128
	}{
		{"add", z.Add(w), 4 + 2i},
		{"sub", z.Sub(w), 2 + 6i},
		{"mul", z.Mul(w), (3 + 4i) * (1 - 2i)},
		{"quo", z.Quo(w), (3 + 4i) / (1 - 2i)},
		{"conj", z.Conj(), 3 - 4i},
		{"scale", z.Scale(0.5), 1.5 + 2i},
	}

	for _, tt := range tests {
		if got := tt.got.Complex128(); cmplx.Abs(got-tt.want) > 1e-12 {
			t.Errorf("%s = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestComplexQuoInvertsMul(t *testing.T) {
	t.Parallel()

	f := Format{Width: 32, Int: 8}
	q := func(c complex128) Complex[Q] {
		return NewComplex(f.FromFloat(real(c)), f.FromFloat(imag(c)))
	}

	z := q(0.75 - 1.5i)
	w := q(-0.5 + 0.25i)

	got := z.Mul(w).Quo(w).Complex128()

	// Each multiply and divide truncates once at 2^-24; a few LSBs is enough.
	tol := 16 * f.Eps()
	if math.Abs(real(got)-0.75) > tol || math.Abs(imag(got)+1.5) > tol {
		t.Errorf("(z*w)/w = %v, want %v", got, z.Complex128())
	}
}

func TestComplexFixedMatchesFloat(t *testing.T) {
	t.Parallel()

	f := Format{Width: 24, Int: 4}
	a := NewComplex(f.FromFloat(0.5), f.FromFloat(-0.25))
	b := NewComplex(f.FromFloat(1.5), f.FromFloat(0.75))

	// Operands are dyadic with few bits, so fixed-point results are exact.
	if got, want := a.Mul(b).Complex128(), (0.5-0.25i)*(1.5+0.75i); got != want {
		t.Errorf("Mul = %v, want %v", got, want)
	}

	if got, want := a.Add(b).Complex128(), 2+0.5i; got != want {
		t.Errorf("Add = %v, want %v", got, want)
	}

	var zero Complex[Q]
	if !zero.IsZero() || zero.Add(a).Complex128() != a.Complex128() {
		t.Errorf("zero value is not an additive identity")
	}
}

func TestComplexString(t *testing.T) {
	t.Parallel()

	if got := FromComplex128(1 - 2i).String(); got != "(1-2i)" {
		t.Errorf("String() = %q, want %q", got, "(1-2i)")
	}
}

func TestQuantizeFloat32(t *testing.T) {
	t.Parallel()

	if got := QuantizeFloat32(0.5); got != 0.5 {
		t.Errorf("QuantizeFloat32(0.5) = %v, want 0.5", got)
	}

	x := 1 + 1e-12
	if got := QuantizeFloat32(x); got != 1 {
		t.Errorf("QuantizeFloat32(%v) = %v, want 1", x, got)
	}
}
