package xfft

// Generics are the static parameters of the DFT engine, derived from a
// Descriptor.
type Generics struct {
	NFFTMax       int
	Arch          Architecture
	HasNFFT       bool
	InputWidth    int
	TwiddleWidth  int
	HasScaling    bool
	HasBFP        bool
	Rounding      Rounding
	FloatingPoint bool
}

// Inputs is one channel's input to the engine. Re and Im hold 1<<NFFT
// samples already quantized to the input port format.
type Inputs struct {
	NFFT      int
	Re        []float64
	Im        []float64
	Scaling   []uint8
	Direction Direction
}

// Outputs receives one channel's engine results. Re and Im are allocated by
// the caller with 1<<NFFT entries and are filled in natural order.
type Outputs struct {
	Re       []float64
	Im       []float64
	BlockExp uint8
	Overflow bool
}

// Engine computes the transform of one channel. Simulate returns 0 on
// success and a nonzero code on failure. Implementations must be safe for
// concurrent use; a Core calls Simulate for several channels at once.
type Engine interface {
	Simulate(g Generics, in Inputs, out *Outputs) int
}

// DirectionEchoer is implemented by engines that stand in for the
// synthesized core and report each channel's direction in the status word
// instead of the arithmetic status.
type DirectionEchoer interface {
	EchoesDirection() bool
}

// EngineFunc adapts a function to the Engine interface.
type EngineFunc func(g Generics, in Inputs, out *Outputs) int

// Simulate calls f.
func (f EngineFunc) Simulate(g Generics, in Inputs, out *Outputs) int {
	return f(g, in, out)
}
