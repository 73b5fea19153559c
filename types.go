package xfft

import (
	"fmt"
	"strconv"
)

// SampleBuffer holds one channel's complex samples.
type SampleBuffer []complex128

// Direction selects a forward or inverse transform. The values match the
// FWD_INV bit of the configuration word.
type Direction uint8

const (
	Inverse Direction = 0
	Forward Direction = 1
)

// Scaling selects the arithmetic the core uses between stages.
type Scaling uint8

const (
	// Scaled applies the per-stage right shifts of the request's schedule.
	Scaled Scaling = iota
	// Unscaled keeps full precision; the output grows by NFFT_MAX+1 bits.
	Unscaled
	// BlockFloatingPoint normalizes the output and reports a block exponent.
	BlockFloatingPoint
)

// DataFormat selects fixed- or floating-point samples.
type DataFormat uint8

const (
	FixedPoint DataFormat = iota
	FloatingPoint
)

// Architecture selects the hardware implementation of the core.
type Architecture uint8

const (
	Radix4Burst        Architecture = 1
	Radix2Burst        Architecture = 2
	PipelinedStreaming Architecture = 3
	Radix2LiteBurst    Architecture = 4
)

// Radix2 reports whether every stage of a is a radix-2 butterfly.
func (a Architecture) Radix2() bool {
	return a == Radix2Burst || a == Radix2LiteBurst
}

// Ordering selects the order in which output samples are delivered.
type Ordering uint8

const (
	BitReversed Ordering = iota
	Natural
)

// Rounding selects how the core drops fractional bits.
type Rounding uint8

const (
	Truncation Rounding = iota
	ConvergentRounding
)

var (
	directionNames    = []string{"inverse", "forward"}
	scalingNames      = []string{"scaled", "unscaled", "block_floating_point"}
	dataFormatNames   = []string{"fixed_point", "floating_point"}
	architectureNames = []string{"", "radix_4_burst_io", "radix_2_burst_io", "pipelined_streaming_io", "radix_2_lite_burst_io"}
	orderingNames     = []string{"bit_reversed_order", "natural_order"}
	roundingNames     = []string{"truncation", "convergent_rounding"}
)

func (d Direction) String() string    { return enumString("Direction", directionNames, int(d)) }
func (s Scaling) String() string      { return enumString("Scaling", scalingNames, int(s)) }
func (f DataFormat) String() string   { return enumString("DataFormat", dataFormatNames, int(f)) }
func (a Architecture) String() string { return enumString("Architecture", architectureNames, int(a)) }
func (o Ordering) String() string     { return enumString("Ordering", orderingNames, int(o)) }
func (r Rounding) String() string     { return enumString("Rounding", roundingNames, int(r)) }

func (d Direction) valid() bool    { return enumValid(directionNames, int(d)) }
func (s Scaling) valid() bool      { return enumValid(scalingNames, int(s)) }
func (f DataFormat) valid() bool   { return enumValid(dataFormatNames, int(f)) }
func (a Architecture) valid() bool { return enumValid(architectureNames, int(a)) }
func (o Ordering) valid() bool     { return enumValid(orderingNames, int(o)) }
func (r Rounding) valid() bool     { return enumValid(roundingNames, int(r)) }

// MarshalText encodes d by name.
func (d Direction) MarshalText() ([]byte, error) {
	return enumMarshal("Direction", directionNames, int(d))
}

// UnmarshalText decodes a Direction name.
func (d *Direction) UnmarshalText(text []byte) error {
	return enumUnmarshal("Direction", directionNames, text, d)
}

// MarshalText encodes s by name.
func (s Scaling) MarshalText() ([]byte, error) {
	return enumMarshal("Scaling", scalingNames, int(s))
}

// UnmarshalText decodes a Scaling name.
func (s *Scaling) UnmarshalText(text []byte) error {
	return enumUnmarshal("Scaling", scalingNames, text, s)
}

// MarshalText encodes f by name.
func (f DataFormat) MarshalText() ([]byte, error) {
	return enumMarshal("DataFormat", dataFormatNames, int(f))
}

// UnmarshalText decodes a DataFormat name.
func (f *DataFormat) UnmarshalText(text []byte) error {
	return enumUnmarshal("DataFormat", dataFormatNames, text, f)
}

// MarshalText encodes a by name.
func (a Architecture) MarshalText() ([]byte, error) {
	return enumMarshal("Architecture", architectureNames, int(a))
}

// UnmarshalText decodes an Architecture name.
func (a *Architecture) UnmarshalText(text []byte) error {
	return enumUnmarshal("Architecture", architectureNames, text, a)
}

// MarshalText encodes o by name.
func (o Ordering) MarshalText() ([]byte, error) {
	return enumMarshal("Ordering", orderingNames, int(o))
}

// UnmarshalText decodes an Ordering name.
func (o *Ordering) UnmarshalText(text []byte) error {
	return enumUnmarshal("Ordering", orderingNames, text, o)
}

// MarshalText encodes r by name.
func (r Rounding) MarshalText() ([]byte, error) {
	return enumMarshal("Rounding", roundingNames, int(r))
}

// UnmarshalText decodes a Rounding name.
func (r *Rounding) UnmarshalText(text []byte) error {
	return enumUnmarshal("Rounding", roundingNames, text, r)
}

func enumValid(names []string, v int) bool {
	return v >= 0 && v < len(names) && names[v] != ""
}

func enumString(kind string, names []string, v int) string {
	if enumValid(names, v) {
		return names[v]
	}

	return kind + "(" + strconv.Itoa(v) + ")"
}

func enumMarshal(kind string, names []string, v int) ([]byte, error) {
	if !enumValid(names, v) {
		return nil, fmt.Errorf("%w: %s(%d)", ErrInvalidEnum, kind, v)
	}

	return []byte(names[v]), nil
}

func enumUnmarshal[E ~uint8](kind string, names []string, text []byte, dst *E) error {
	s := string(text)
	for i, name := range names {
		if name != "" && name == s {
			*dst = E(i)
			return nil
		}
	}

	return fmt.Errorf("%w: unknown %s %q", ErrInvalidEnum, kind, s)
}
