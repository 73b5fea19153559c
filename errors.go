package xfft

import (
	"errors"
	"fmt"
)

// Sentinel errors. Configuration failures are reported as *ConfigError and
// engine failures as *ComputeError; both unwrap to one of these.
var (
	// ErrChannels is returned when the channel count is outside [1, 12], or
	// when per-channel request settings do not cover every channel.
	ErrChannels = errors.New("xfft: invalid channel count")

	// ErrMaxNFFT is returned when NFFT_MAX is outside [3, 16].
	ErrMaxNFFT = errors.New("xfft: invalid maximum transform size")

	// ErrLength is returned when the buffer length does not match the
	// transform size rules.
	ErrLength = errors.New("xfft: invalid transform length")

	// ErrNFFT is returned when a run-time transform size is out of range.
	ErrNFFT = errors.New("xfft: invalid transform size")

	// ErrInputWidth is returned when the input width is not 8, 16, 24, 32 or 40.
	ErrInputWidth = errors.New("xfft: invalid input width")

	// ErrOutputWidth is returned when the output width does not follow from
	// the input width, scaling and data format.
	ErrOutputWidth = errors.New("xfft: invalid output width")

	// ErrArchitecture is returned when the architecture cannot serve the
	// requested channel count.
	ErrArchitecture = errors.New("xfft: architecture does not support configuration")

	// ErrFloatChannels is returned when floating point is combined with
	// more than one channel.
	ErrFloatChannels = errors.New("xfft: floating point supports one channel")

	// ErrPhaseFactorWidth is returned when the phase factor width is out of range.
	ErrPhaseFactorWidth = errors.New("xfft: invalid phase factor width")

	// ErrInvalidEnum is returned when an enumerated field holds an undefined value.
	ErrInvalidEnum = errors.New("xfft: invalid enumeration value")

	// ErrSchedule is returned when a scaling schedule does not fit the stage count.
	ErrSchedule = errors.New("xfft: invalid scaling schedule")

	// ErrEngine is wrapped by every *ComputeError.
	ErrEngine = errors.New("xfft: engine failure")

	// ErrNilEngine is returned when a Core is created without an engine.
	ErrNilEngine = errors.New("xfft: nil engine")

	// ErrNilSlice is returned when a nil buffer is passed to a transform.
	ErrNilSlice = errors.New("xfft: nil slice")

	// ErrLengthMismatch is returned when buffer counts or lengths do not
	// match the transform.
	ErrLengthMismatch = errors.New("xfft: slice length mismatch")
)

// ConfigError describes the first legality rule a Descriptor or Request
// violates. Param and Value name the offending parameter as the core's
// configuration documents it.
type ConfigError struct {
	Param string
	Value int

	err error
	msg string
}

func newConfigError(sentinel error, param string, value int, format string, args ...any) *ConfigError {
	return &ConfigError{
		Param: param,
		Value: value,
		err:   sentinel,
		msg:   fmt.Sprintf(format, args...),
	}
}

func (e *ConfigError) Error() string {
	return "xfft: " + e.msg
}

func (e *ConfigError) Unwrap() error {
	return e.err
}

// CodeOutputSize is the ComputeError code used when an engine reports
// success but leaves its output arrays at the wrong length.
const CodeOutputSize = -1

// ComputeError reports a nonzero return code from the engine. The
// transform that produced it has no output.
type ComputeError struct {
	Channel int
	Code    int
}

func (e *ComputeError) Error() string {
	if e.Code == CodeOutputSize {
		return fmt.Sprintf("xfft: engine returned wrongly sized output on channel %d", e.Channel)
	}

	return fmt.Sprintf("xfft: an error occurred when simulating the FFT core on channel %d: return code %d", e.Channel, e.Code)
}

func (e *ComputeError) Unwrap() error {
	return ErrEngine
}
