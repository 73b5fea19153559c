package xfft

import "strconv"

// StatusKind says what a Status word carries.
type StatusKind uint8

const (
	// StatusNone means the configuration reports nothing.
	StatusNone StatusKind = iota
	// StatusOverflow carries one overflow bit per channel.
	StatusOverflow
	// StatusBlockExponent carries one 8-bit block exponent per channel.
	StatusBlockExponent
	// StatusDirectionEcho carries each channel's direction bit. Only the
	// synthesis stub engine produces it.
	StatusDirectionEcho
)

func (k StatusKind) String() string {
	switch k {
	case StatusNone:
		return "none"
	case StatusOverflow:
		return "overflow"
	case StatusBlockExponent:
		return "block_exponent"
	case StatusDirectionEcho:
		return "direction_echo"
	default:
		return "StatusKind(" + strconv.Itoa(int(k)) + ")"
	}
}

// Status is the packed per-channel status of one transform.
type Status struct {
	Kind StatusKind
	Word Word
}

// Overflow reports whether channel c overflowed.
func (s Status) Overflow(c int) bool {
	return s.Kind == StatusOverflow && s.Word.Bit(c) == 1
}

// BlockExponent returns the block exponent of channel c, or 0 when s does
// not carry exponents.
func (s Status) BlockExponent(c int) uint8 {
	if s.Kind != StatusBlockExponent {
		return 0
	}

	return uint8(s.Word.Field(c*blockExponentBits, blockExponentBits))
}

// Direction returns the echoed direction of channel c, if s carries one.
func (s Status) Direction(c int) (Direction, bool) {
	if s.Kind != StatusDirectionEcho {
		return 0, false
	}

	return Direction(s.Word.Bit(c)), true
}

// ChannelOutput is the per-channel status an engine reports.
type ChannelOutput struct {
	BlockExp uint8
	Overflow bool
}

// Assemble packs per-channel results into a status word. Block floating
// point places channel c's exponent in bits [8c, 8c+7]; scaled arithmetic
// with overflow reporting places channel c's flag in bit c. Any other
// configuration yields an empty status.
func Assemble(results []ChannelOutput, s Scaling, overflow bool) Status {
	switch {
	case s == BlockFloatingPoint:
		w := NewWord(blockExponentBits * len(results))
		for c, r := range results {
			w.SetField(c*blockExponentBits, blockExponentBits, uint64(r.BlockExp))
		}

		return Status{Kind: StatusBlockExponent, Word: w}
	case s == Scaled && overflow:
		w := NewWord(len(results))
		for c, r := range results {
			if r.Overflow {
				w.SetBit(c, 1)
			}
		}

		return Status{Kind: StatusOverflow, Word: w}
	default:
		return Status{Kind: StatusNone}
	}
}

// AssembleEcho builds the status of the synthesis stub: bit c holds the
// direction of channel c.
func AssembleEcho(directions []Direction) Status {
	w := NewWord(len(directions))
	for c, d := range directions {
		w.SetBit(c, uint(d))
	}

	return Status{Kind: StatusDirectionEcho, Word: w}
}
