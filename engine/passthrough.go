package engine

import "github.com/cwbudde/xfft"

// Passthrough stands in for the synthesized core: it copies its input to
// its output and asks the Core to echo each channel's direction in the
// status word. A Core delivers the copy without reordering but still
// quantizes it to the output port. Unlike the synthesis stub, the copy is
// made for every request, including a zero direction and schedule.
// It is meant for tests of the surrounding plumbing.
type Passthrough struct{}

// Simulate implements xfft.Engine.
func (Passthrough) Simulate(_ xfft.Generics, in xfft.Inputs, out *xfft.Outputs) int {
	if _, code := load(in, out); code != 0 {
		return code
	}

	copy(out.Re, in.Re)
	copy(out.Im, in.Im)

	return 0
}

// EchoesDirection implements xfft.DirectionEchoer.
func (Passthrough) EchoesDirection() bool { return true }

// Failing is an engine that always fails with Code, or CodeFailed when
// Code is zero.
type Failing struct {
	Code int
}

// Simulate implements xfft.Engine.
func (f Failing) Simulate(xfft.Generics, xfft.Inputs, *xfft.Outputs) int {
	if f.Code == 0 {
		return CodeFailed
	}

	return f.Code
}
