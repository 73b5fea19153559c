// Package fixed provides a complex number type that is generic over its real
// representation, together with two representations: Float (float64) and Q,
// a two's-complement fixed-point value with an explicit width and integer
// part.
//
// Q follows the default quantization of hardware fixed-point types:
// results are truncated toward negative infinity and overflow wraps around
// modulo 2^Width. Arithmetic is exact before quantization and the result
// always takes the format of the receiver, so
//
//	a.Mul(b)
//
// behaves like the compound assignment a *= b on a hardware type.
package fixed
