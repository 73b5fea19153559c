package xfft

import (
	mathpkg "github.com/cwbudde/xfft/internal/math"
)

// Validate checks d against the core's legality rules in a fixed order and
// returns a *ConfigError for the first rule that fails.
//
// The architecture rule precedes the data format rule: a floating-point
// descriptor with several channels on PipelinedStreaming fails with
// ErrArchitecture, on any other architecture with ErrFloatChannels.
func (d Descriptor) Validate() error {
	if d.Channels < MinChannels || d.Channels > MaxChannels {
		return newConfigError(ErrChannels, "Channels", d.Channels,
			"Channels = %d is illegal. It should be from %d to %d.", d.Channels, MinChannels, MaxChannels)
	}

	if d.MaxNFFT < MinNFFT || d.MaxNFFT > MaxNFFT {
		return newConfigError(ErrMaxNFFT, "NFFT_MAX", d.MaxNFFT,
			"NFFT_MAX = %d is illegal. It should be from %d to %d.", d.MaxNFFT, MinNFFT, MaxNFFT)
	}

	if err := d.validateLength(); err != nil {
		return err
	}

	if !validInputWidth(d.InputWidth) {
		return newConfigError(ErrInputWidth, "FFT_INPUT_WIDTH", d.InputWidth,
			"FFT_INPUT_WIDTH = %d is illegal. It should be 8,16,24,32,40.", d.InputWidth)
	}

	if out := d.outputWidth(); out != d.ExpectedOutputWidth() {
		if d.Scaling == Unscaled && d.Format == FixedPoint {
			return newConfigError(ErrOutputWidth, "FFT_OUTPUT_WIDTH", out,
				"FFT_OUTPUT_WIDTH = %d is illegal with unscaled arithmetic. It should be input_width+nfft_max+1.", out)
		}

		return newConfigError(ErrOutputWidth, "FFT_OUTPUT_WIDTH", out,
			"FFT_OUTPUT_WIDTH = %d is illegal. It should be the same as input_width.", out)
	}

	if d.Channels > 1 && d.Architecture == PipelinedStreaming {
		return newConfigError(ErrArchitecture, "FFT_CHANNELS", d.Channels,
			"FFT_CHANNELS = %d and FFT_ARCH = %s is illegal. %s architecture is not supported when channels is bigger than 1.",
			d.Channels, PipelinedStreaming, PipelinedStreaming)
	}

	if d.Channels > 1 && d.Format == FloatingPoint {
		return newConfigError(ErrFloatChannels, "FFT_CHANNELS", d.Channels,
			"FFT_CHANNELS = %d is illegal with floating point data format. Floating point data format only supports 1 channel.",
			d.Channels)
	}

	if d.Format == FloatingPoint {
		if d.PhaseFactorWidth != 24 && d.PhaseFactorWidth != 25 {
			return newConfigError(ErrPhaseFactorWidth, "FFT_PHASE_FACTOR_WIDTH", d.PhaseFactorWidth,
				"FFT_PHASE_FACTOR_WIDTH = %d is illegal with floating point data format. It should be 24 or 25.",
				d.PhaseFactorWidth)
		}
	} else if d.PhaseFactorWidth < 8 || d.PhaseFactorWidth > 34 {
		return newConfigError(ErrPhaseFactorWidth, "FFT_PHASE_FACTOR_WIDTH", d.PhaseFactorWidth,
			"FFT_PHASE_FACTOR_WIDTH = %d is illegal. It should be from 8 to 34.", d.PhaseFactorWidth)
	}

	return d.validateEnums()
}

func (d Descriptor) validateLength() error {
	length := d.length()

	if !d.RuntimeNFFT {
		if length != 1<<d.MaxNFFT {
			return newConfigError(ErrLength, "FFT_LENGTH", length,
				"FFT_LENGTH = %d is illegal. Log2(FFT_LENGTH) should equal to NFFT_MAX when run-time configurable length is disabled.",
				length)
		}

		return nil
	}

	if !mathpkg.IsPowerOf2(length) {
		return newConfigError(ErrLength, "FFT_LENGTH", length,
			"FFT_LENGTH = %d is illegal. It should be the integer power of 2.", length)
	}

	return d.validateNFFT(mathpkg.Log2(length))
}

func (d Descriptor) validateNFFT(nfft int) error {
	if nfft < MinNFFT || nfft > MaxNFFT {
		return newConfigError(ErrNFFT, "NFFT", nfft,
			"NFFT = %d is illegal. It should be from %d to %d.", nfft, MinNFFT, MaxNFFT)
	}

	if nfft > d.MaxNFFT {
		return newConfigError(ErrNFFT, "NFFT", nfft,
			"NFFT = %d is illegal. It should be less than or equal to %d.", nfft, d.MaxNFFT)
	}

	return nil
}

func (d Descriptor) validateEnums() error {
	checks := []struct {
		param string
		value int
		ok    bool
	}{
		{"FFT_ARCH", int(d.Architecture), d.Architecture.valid()},
		{"FFT_SCALING", int(d.Scaling), d.Scaling.valid()},
		{"FFT_ROUNDING", int(d.Rounding), d.Rounding.valid()},
		{"FFT_DATA_FORMAT", int(d.Format), d.Format.valid()},
		{"FFT_ORDERING", int(d.Ordering), d.Ordering.valid()},
	}

	for _, c := range checks {
		if !c.ok {
			return newConfigError(ErrInvalidEnum, c.param, c.value,
				"%s = %d is illegal. It is not a defined option.", c.param, c.value)
		}
	}

	return nil
}

func validInputWidth(w int) bool {
	switch w {
	case 8, 16, 24, 32, 40:
		return true
	default:
		return false
	}
}

// ValidateRequest checks r against d and returns the log2 size of the
// transform it selects. d is assumed valid.
func (d Descriptor) ValidateRequest(r Request) (int, error) {
	nfft := d.MaxNFFT

	if d.RuntimeNFFT {
		nfft = r.NFFT
		if nfft == 0 {
			nfft = mathpkg.Log2(d.length())
		}

		if err := d.validateNFFT(nfft); err != nil {
			return 0, err
		}
	}

	if len(r.PerChannel) != 0 && len(r.PerChannel) != d.Channels {
		return 0, newConfigError(ErrChannels, "PerChannel", len(r.PerChannel),
			"per-channel settings for %d channels are illegal. There should be one per channel (%d).",
			len(r.PerChannel), d.Channels)
	}

	stages := d.Stages(nfft)

	for c := 0; c < d.Channels; c++ {
		cfg := r.Channel(c)

		if !cfg.Direction.valid() {
			return 0, newConfigError(ErrInvalidEnum, "FWD_INV", int(cfg.Direction),
				"FWD_INV = %d on channel %d is illegal. It should be 0 or 1.", cfg.Direction, c)
		}

		if d.Scaling == Scaled {
			if err := d.validateSchedule(cfg.Schedule, nfft, stages, c); err != nil {
				return 0, err
			}
		}
	}

	return nfft, nil
}

func (d Descriptor) validateSchedule(s Schedule, nfft, stages, channel int) error {
	if uint64(s)>>(2*stages) != 0 {
		return newConfigError(ErrSchedule, "SCALE_SCH", int(s),
			"SCALE_SCH = %#x on channel %d is illegal. It should fit in %d bits for NFFT = %d.",
			uint32(s), channel, 2*stages, nfft)
	}

	// A radix-4 core ends an odd-sized transform with a radix-2 stage,
	// which grows by at most one bit.
	if !d.Architecture.Radix2() && nfft%2 == 1 && s.Stage(stages-1) > 1 {
		return newConfigError(ErrSchedule, "SCALE_SCH", int(s),
			"SCALE_SCH = %#x on channel %d is illegal. The final radix-2 stage of NFFT = %d can only shift by 0 or 1.",
			uint32(s), channel, nfft)
	}

	return nil
}
