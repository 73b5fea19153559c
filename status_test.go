package xfft

import (
	"testing"
)

func TestAssembleBlockExponent(t *testing.T) {
	t.Parallel()

	results := []ChannelOutput{{BlockExp: 0x11}, {BlockExp: 0}, {BlockExp: 0xff}, {BlockExp: 7, Overflow: true}}

	s := Assemble(results, BlockFloatingPoint, true)
	if s.Kind != StatusBlockExponent {
		t.Fatalf("Kind = %s, want %s", s.Kind, StatusBlockExponent)
	}

	for c, r := range results {
		if got := s.BlockExponent(c); got != r.BlockExp {
			t.Errorf("BlockExponent(%d) = %#x, want %#x", c, got, r.BlockExp)
		}

		if s.Overflow(c) {
			t.Errorf("Overflow(%d) set in a block exponent status", c)
		}
	}

	// Nothing beyond the packed exponents is set.
	if got := s.Word.Field(32, 64); got != 0 {
		t.Errorf("bits above the exponents = %#x, want 0", got)
	}

	if got := s.Word.Field(0, 32); got != 0x07ff0011 {
		t.Errorf("packed exponents = %#x, want 0x07ff0011", got)
	}
}

func TestAssembleOverflow(t *testing.T) {
	t.Parallel()

	results := []ChannelOutput{{Overflow: true}, {}, {Overflow: true, BlockExp: 3}}

	s := Assemble(results, Scaled, true)
	if s.Kind != StatusOverflow {
		t.Fatalf("Kind = %s, want %s", s.Kind, StatusOverflow)
	}

	if got := s.Word.Field(0, 64); got != 0b101 {
		t.Errorf("overflow bits = %#b, want 0b101", got)
	}

	if !s.Overflow(0) || s.Overflow(1) || !s.Overflow(2) {
		t.Errorf("Overflow() = %v %v %v, want true false true", s.Overflow(0), s.Overflow(1), s.Overflow(2))
	}

	if s.BlockExponent(2) != 0 {
		t.Errorf("BlockExponent in an overflow status = %d, want 0", s.BlockExponent(2))
	}
}

func TestAssembleNothingToReport(t *testing.T) {
	t.Parallel()

	results := []ChannelOutput{{Overflow: true, BlockExp: 4}}

	for _, tc := range []struct {
		s        Scaling
		overflow bool
	}{
		{Unscaled, true},
		{Unscaled, false},
		{Scaled, false},
	} {
		s := Assemble(results, tc.s, tc.overflow)
		if s.Kind != StatusNone || !s.Word.IsZero() {
			t.Errorf("%s overflow=%v: status = %+v, want empty", tc.s, tc.overflow, s)
		}
	}
}

func TestAssembleEcho(t *testing.T) {
	t.Parallel()

	s := AssembleEcho([]Direction{Forward, Inverse, Forward})
	if s.Kind != StatusDirectionEcho {
		t.Fatalf("Kind = %s, want %s", s.Kind, StatusDirectionEcho)
	}

	for c, want := range []Direction{Forward, Inverse, Forward} {
		if got, ok := s.Direction(c); !ok || got != want {
			t.Errorf("Direction(%d) = %s, %v, want %s", c, got, ok, want)
		}
	}

	if _, ok := Assemble(nil, Scaled, true).Direction(0); ok {
		t.Errorf("overflow status reports a direction")
	}
}

func TestWordFields(t *testing.T) {
	t.Parallel()

	var w Word

	w.SetField(60, 8, 0xab)

	if len(w) != 2 {
		t.Fatalf("len(w) = %d, want 2", len(w))
	}

	if got := w.Field(60, 8); got != 0xab {
		t.Errorf("Field(60, 8) = %#x, want 0xab", got)
	}

	if got := w.String(); got != "0xab000000000000000" {
		t.Errorf("String() = %s", got)
	}

	w.SetField(60, 8, 0)

	if !w.IsZero() {
		t.Errorf("cleared word is not zero: %s", w)
	}

	w.SetBit(130, 1)

	if w.Bit(130) != 1 || w.Bit(129) != 0 || w.Bit(1000) != 0 || w.Bit(-1) != 0 {
		t.Errorf("Bit() mismatch around bit 130: %s", w)
	}

	if !w.Equal(Word{0, 0, 4, 0}) || w.Equal(Word{0, 0, 4, 1}) {
		t.Errorf("Equal mismatch for %s", w)
	}

	if got := (Word{}).String(); got != "0x0" {
		t.Errorf("empty String() = %s, want 0x0", got)
	}
}

func TestStatusKindString(t *testing.T) {
	t.Parallel()

	if got := StatusKind(9).String(); got != "StatusKind(9)" {
		t.Errorf("String() = %s", got)
	}

	if got := StatusOverflow.String(); got != "overflow" {
		t.Errorf("String() = %s", got)
	}
}
