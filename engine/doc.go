// Package engine provides DFT engines for xfft cores.
//
// An engine computes the transform of one channel in natural order and
// applies the core's scaling: the per-stage shifts of a scaled schedule,
// block-exponent normalization, or nothing for unscaled arithmetic. Engines
// are looked up by name through a registry so that tools can select one at
// run time:
//
//	eng, err := engine.New("reference")
//	core, err := xfft.NewCore(desc, eng)
//
// Reference and GoDSP compute the ideal transform with third-party FFT
// packages. Staged models the core stage by stage in radix-2 butterflies
// and is the only engine that applies rounding between stages. Passthrough
// and Failing are test doubles.
package engine
