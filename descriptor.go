package xfft

import (
	"github.com/cwbudde/xfft/fixed"
	mathpkg "github.com/cwbudde/xfft/internal/math"
)

// Limits of the core's configuration space.
const (
	MinChannels = 1
	MaxChannels = 12
	MinNFFT     = 3
	MaxNFFT     = 16
)

// Descriptor is the static configuration of an FFT core. A Descriptor is
// copied into a Core on creation and never changes afterwards.
type Descriptor struct {
	Channels int `yaml:"channels"`
	MaxNFFT  int `yaml:"max_nfft"`

	// Length is the number of samples in each channel buffer. Zero means
	// 1<<MaxNFFT.
	Length int `yaml:"length,omitempty"`

	InputWidth int `yaml:"input_width"`

	// OutputWidth is the sample width of the output port. Zero means the
	// width the input width and scaling imply.
	OutputWidth int `yaml:"output_width,omitempty"`

	Architecture     Architecture `yaml:"architecture"`
	Scaling          Scaling      `yaml:"scaling"`
	Rounding         Rounding     `yaml:"rounding"`
	Format           DataFormat   `yaml:"data_format"`
	PhaseFactorWidth int          `yaml:"phase_factor_width"`
	RuntimeNFFT      bool         `yaml:"runtime_nfft"`
	Ordering         Ordering     `yaml:"ordering"`

	// Overflow enables overflow reporting in the status word. It only has
	// an effect with scaled arithmetic.
	Overflow bool `yaml:"overflow"`
}

// DefaultDescriptor returns the configuration the core uses when nothing
// is overridden.
func DefaultDescriptor() Descriptor {
	return Descriptor{
		Channels:         1,
		MaxNFFT:          10,
		InputWidth:       16,
		OutputWidth:      16,
		Architecture:     PipelinedStreaming,
		Scaling:          Scaled,
		Rounding:         Truncation,
		Format:           FixedPoint,
		PhaseFactorWidth: 16,
		Ordering:         BitReversed,
		Overflow:         true,
	}
}

// WithDerivedWidths returns a copy of d with Length and OutputWidth filled
// in when they are zero.
func (d Descriptor) WithDerivedWidths() Descriptor {
	d.Length = d.length()
	d.OutputWidth = d.outputWidth()

	return d
}

// ExpectedOutputWidth returns the only output width d accepts: the input
// width grown by MaxNFFT+1 bits and padded to a byte for unscaled
// fixed-point arithmetic, the input width otherwise.
func (d Descriptor) ExpectedOutputWidth() int {
	if d.Scaling == Unscaled && d.Format == FixedPoint {
		return mathpkg.RoundUpToByte(d.InputWidth + d.MaxNFFT + 1)
	}

	return d.InputWidth
}

// Stages returns the number of scaling stages of a 2^nfft-point transform:
// one per radix-2 butterfly for the radix-2 architectures, one per radix-4
// butterfly (the last may be radix-2) otherwise.
func (d Descriptor) Stages(nfft int) int {
	if d.Architecture.Radix2() {
		return nfft
	}

	return (nfft + 1) / 2
}

// ConfigWidth returns the byte-padded width of the configuration word.
func (d Descriptor) ConfigWidth() int {
	return mathpkg.RoundUpToByte(d.nfftFieldWidth() + d.Channels + d.Channels*d.scheduleFieldWidth())
}

// StatusWidth returns the byte-padded width of the status word, or 0 when
// the core reports nothing.
func (d Descriptor) StatusWidth() int {
	switch {
	case d.Scaling == BlockFloatingPoint:
		return blockExponentBits * d.Channels
	case d.Scaling == Scaled && d.Overflow:
		return mathpkg.RoundUpToByte(d.Channels)
	default:
		return 0
	}
}

// InputFormat returns the fixed-point format of the input samples.
func (d Descriptor) InputFormat() fixed.Format {
	return fixed.Format{Width: mathpkg.RoundUpToByte(d.InputWidth), Int: 1}
}

// OutputFormat returns the fixed-point format of the output samples. The
// binary point stays where the input put it; growth goes to integer bits.
func (d Descriptor) OutputFormat() fixed.Format {
	w := mathpkg.RoundUpToByte(d.outputWidth())
	return fixed.Format{Width: w, Int: w - d.InputWidth + 1}
}

// Generics returns the engine parameters implied by d.
func (d Descriptor) Generics() Generics {
	return Generics{
		NFFTMax:       d.MaxNFFT,
		Arch:          d.Architecture,
		HasNFFT:       d.RuntimeNFFT,
		InputWidth:    d.InputWidth,
		TwiddleWidth:  d.PhaseFactorWidth,
		HasScaling:    d.Scaling != Unscaled,
		HasBFP:        d.Scaling == BlockFloatingPoint,
		Rounding:      d.Rounding,
		FloatingPoint: d.Format == FloatingPoint,
	}
}

func (d Descriptor) length() int {
	if d.Length == 0 && d.MaxNFFT >= 0 && d.MaxNFFT < 63 {
		return 1 << d.MaxNFFT
	}

	return d.Length
}

func (d Descriptor) outputWidth() int {
	if d.OutputWidth == 0 {
		return d.ExpectedOutputWidth()
	}

	return d.OutputWidth
}

const (
	blockExponentBits = 8
	nfftFieldBits     = 8
)

func (d Descriptor) nfftFieldWidth() int {
	if d.RuntimeNFFT {
		return nfftFieldBits
	}

	return 0
}

// scheduleFieldWidth is the per-channel width of the scaling schedule
// field, sized for the largest transform.
func (d Descriptor) scheduleFieldWidth() int {
	if d.Scaling != Scaled {
		return 0
	}

	return 2 * d.Stages(d.MaxNFFT)
}
