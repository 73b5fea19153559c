package xfft

import (
	"errors"
	"testing"
)

func TestEnumNames(t *testing.T) {
	t.Parallel()

	tests := []struct {
		v    interface{ String() string }
		want string
	}{
		{Forward, "forward"},
		{Inverse, "inverse"},
		{Scaled, "scaled"},
		{BlockFloatingPoint, "block_floating_point"},
		{FloatingPoint, "floating_point"},
		{Radix4Burst, "radix_4_burst_io"},
		{Radix2LiteBurst, "radix_2_lite_burst_io"},
		{PipelinedStreaming, "pipelined_streaming_io"},
		{BitReversed, "bit_reversed_order"},
		{Natural, "natural_order"},
		{ConvergentRounding, "convergent_rounding"},
		{Architecture(0), "Architecture(0)"},
		{Scaling(9), "Scaling(9)"},
	}

	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEnumText(t *testing.T) {
	t.Parallel()

	for _, a := range []Architecture{Radix4Burst, Radix2Burst, PipelinedStreaming, Radix2LiteBurst} {
		text, err := a.MarshalText()
		if err != nil {
			t.Fatalf("%d: MarshalText: %v", a, err)
		}

		var got Architecture
		if err := got.UnmarshalText(text); err != nil || got != a {
			t.Errorf("UnmarshalText(%q) = %d, %v, want %d", text, got, err, a)
		}
	}

	if _, err := Architecture(0).MarshalText(); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("MarshalText(0) error = %v, want ErrInvalidEnum", err)
	}

	var s Scaling
	if err := s.UnmarshalText([]byte("sort_of_scaled")); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("UnmarshalText error = %v, want ErrInvalidEnum", err)
	}

	// The empty name of the unused architecture slot must not decode.
	var a Architecture
	if err := a.UnmarshalText(nil); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("UnmarshalText(\"\") error = %v, want ErrInvalidEnum", err)
	}
}

func TestArchitectureRadix2(t *testing.T) {
	t.Parallel()

	if !Radix2Burst.Radix2() || !Radix2LiteBurst.Radix2() || Radix4Burst.Radix2() || PipelinedStreaming.Radix2() {
		t.Error("Radix2() misclassifies an architecture")
	}
}
