package xfft

import "fmt"

// Schedule is a scaling schedule: one 2-bit right shift per stage, the
// first stage in the least significant bits.
type Schedule uint32

// NewSchedule packs per-stage shifts, first stage first. Each value is
// truncated to 2 bits.
func NewSchedule(stages ...uint8) Schedule {
	var s Schedule
	for i, v := range stages {
		s |= Schedule(v&3) << (2 * i)
	}

	return s
}

// Stage returns the shift applied after stage i.
func (s Schedule) Stage(i int) uint8 {
	return uint8(s>>(2*i)) & 3
}

// Stages unpacks the first n stage shifts.
func (s Schedule) Stages(n int) []uint8 {
	out := make([]uint8, n)
	for i := range out {
		out[i] = s.Stage(i)
	}

	return out
}

// Shift returns the total right shift of the first n stages.
func (s Schedule) Shift(n int) int {
	total := 0
	for i := 0; i < n; i++ {
		total += int(s.Stage(i))
	}

	return total
}

func (s Schedule) String() string {
	return fmt.Sprintf("%v", s.Stages(stagesIn(s)))
}

// stagesIn is the number of stages up to the last nonzero one.
func stagesIn(s Schedule) int {
	n := 0
	for ; s != 0; s >>= 2 {
		n++
	}

	return n
}

// ChannelConfig holds the run-time settings of one channel.
type ChannelConfig struct {
	Direction Direction `yaml:"direction"`
	Schedule  Schedule  `yaml:"schedule"`
}

// Request carries the run-time configuration of one transform.
type Request struct {
	// NFFT is log2 of the transform size. It is only read when the
	// descriptor enables run-time configurable length; zero selects
	// log2 of the descriptor's Length.
	NFFT int

	Direction Direction
	Schedule  Schedule

	// PerChannel, when not empty, overrides Direction and Schedule for
	// each channel. It must hold exactly one entry per channel.
	PerChannel []ChannelConfig
}

// Channel returns the settings that apply to channel c.
func (r Request) Channel(c int) ChannelConfig {
	if len(r.PerChannel) > 0 {
		return r.PerChannel[c]
	}

	return ChannelConfig{Direction: r.Direction, Schedule: r.Schedule}
}
