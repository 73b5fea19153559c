package xfft

import (
	"fmt"
	"io"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/cwbudde/xfft/fixed"
	"github.com/cwbudde/xfft/internal/cpu"
)

// Core adapts buffer-level transform calls to a DFT engine. It validates
// its Descriptor once, on creation; Transform may be called concurrently.
type Core struct {
	desc        Descriptor
	engine      Engine
	generics    Generics
	concurrency int
	logger      *slog.Logger
	echo        bool
	host        string
}

// Option configures a Core.
type Option func(*Core)

// WithConcurrency bounds the number of channels transformed at once.
// n <= 0 selects GOMAXPROCS.
func WithConcurrency(n int) Option {
	return func(c *Core) {
		if n <= 0 {
			n = runtime.GOMAXPROCS(0)
		}

		c.concurrency = n
	}
}

// WithLogger sets the logger that receives a debug record per engine call.
func WithLogger(l *slog.Logger) Option {
	return func(c *Core) {
		if l != nil {
			c.logger = l
		}
	}
}

// NewCore validates d and returns a Core that runs transforms on eng.
//
// Returns a *ConfigError if d is illegal and ErrNilEngine if eng is nil.
func NewCore(d Descriptor, eng Engine, opts ...Option) (*Core, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}

	if eng == nil {
		return nil, ErrNilEngine
	}

	c := &Core{
		desc:        d.WithDerivedWidths(),
		engine:      eng,
		generics:    d.Generics(),
		concurrency: runtime.GOMAXPROCS(0),
		logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	}

	if e, ok := eng.(DirectionEchoer); ok {
		c.echo = e.EchoesDirection()
	}

	for _, opt := range opts {
		opt(c)
	}

	c.host = cpu.DetectFeatures().String()
	c.logger = c.logger.With(slog.String("cpu", c.host))

	return c, nil
}

// Descriptor returns the configuration of c with derived widths filled in.
func (c *Core) Descriptor() Descriptor { return c.desc }

// Generics returns the engine parameters of c.
func (c *Core) Generics() Generics { return c.generics }

// Result is the outcome of one transform.
type Result struct {
	NFFT    int
	Outputs []SampleBuffer
	Status  Status

	// Host summarizes the CPU the transform ran on, e.g. "amd64:sse2,avx2".
	Host string
}

// channelSlot holds one channel's results. Slots are written by different
// goroutines, so each sits on its own cache line.
type channelSlot struct {
	out SampleBuffer
	res ChannelOutput
	err error
	_   cpu.CacheLinePad
}

// Transform runs r over one buffer per channel. Inputs are quantized to the
// input port format, transformed by the engine, delivered in the
// descriptor's order and quantized to the output port format. Output of a
// direction-echo engine keeps the order the engine wrote it in.
//
// Returns a *ConfigError if r is illegal, ErrLengthMismatch or ErrNilSlice
// for malformed buffers, and a *ComputeError if the engine fails on any
// channel. On error no output is returned.
func (c *Core) Transform(r Request, in []SampleBuffer) (Result, error) {
	nfft, err := c.desc.ValidateRequest(r)
	if err != nil {
		return Result{}, err
	}

	if len(in) != c.desc.Channels {
		return Result{}, fmt.Errorf("%w: got %d channel buffers, want %d", ErrLengthMismatch, len(in), c.desc.Channels)
	}

	n := 1 << nfft

	for ch, buf := range in {
		if buf == nil {
			return Result{}, fmt.Errorf("%w: channel %d", ErrNilSlice, ch)
		}

		if len(buf) != n {
			return Result{}, fmt.Errorf("%w: channel %d has %d samples, want %d", ErrLengthMismatch, ch, len(buf), n)
		}
	}

	slots := make([]channelSlot, len(in))

	var g errgroup.Group

	g.SetLimit(c.concurrency)

	for ch := range in {
		ch := ch
		g.Go(func() error {
			s := &slots[ch]
			s.out, s.res, s.err = c.runChannel(ch, nfft, r.Channel(ch), in[ch])

			return s.err
		})
	}

	if g.Wait() != nil {
		// Report the lowest failing channel, not the first to finish.
		for _, s := range slots {
			if s.err != nil {
				return Result{}, s.err
			}
		}
	}

	outputs := make([]SampleBuffer, len(in))
	results := make([]ChannelOutput, len(in))

	for ch, s := range slots {
		outputs[ch], results[ch] = s.out, s.res
	}

	res := Result{NFFT: nfft, Outputs: outputs, Host: c.host}

	if c.echo {
		dirs := make([]Direction, len(in))
		for ch := range dirs {
			dirs[ch] = r.Channel(ch).Direction
		}

		res.Status = AssembleEcho(dirs)
	} else {
		res.Status = Assemble(results, c.desc.Scaling, c.desc.Overflow)
	}

	return res, nil
}

func (c *Core) runChannel(ch, nfft int, cfg ChannelConfig, src SampleBuffer) (SampleBuffer, ChannelOutput, error) {
	n := len(src)
	in := Inputs{
		NFFT:      nfft,
		Re:        make([]float64, n),
		Im:        make([]float64, n),
		Scaling:   make([]uint8, c.desc.Stages(nfft)),
		Direction: cfg.Direction,
	}

	for i, v := range src {
		in.Re[i] = c.quantizeInput(real(v))
		in.Im[i] = c.quantizeInput(imag(v))
	}

	if c.desc.Scaling == Scaled {
		in.Scaling = cfg.Schedule.Stages(len(in.Scaling))
	}

	out := Outputs{Re: make([]float64, n), Im: make([]float64, n)}

	c.logger.Debug("simulating channel",
		slog.Int("channel", ch),
		slog.Int("nfft", nfft),
		slog.String("direction", cfg.Direction.String()),
		slog.String("arch", c.generics.Arch.String()),
		slog.String("scaling", fmt.Sprint(in.Scaling)),
	)

	if code := c.engine.Simulate(c.generics, in, &out); code != 0 {
		return nil, ChannelOutput{}, &ComputeError{Channel: ch, Code: code}
	}

	if len(out.Re) != n || len(out.Im) != n {
		return nil, ChannelOutput{}, &ComputeError{Channel: ch, Code: CodeOutputSize}
	}

	buf := make(SampleBuffer, n)
	for i := range buf {
		buf[i] = complex(out.Re[i], out.Im[i])
	}

	if !c.echo {
		if err := ReorderTo(buf, buf, c.desc.Ordering, nfft); err != nil {
			return nil, ChannelOutput{}, err
		}
	}

	for i, v := range buf {
		buf[i] = complex(c.quantizeOutput(real(v)), c.quantizeOutput(imag(v)))
	}

	return buf, ChannelOutput{BlockExp: out.BlockExp, Overflow: out.Overflow}, nil
}

func (c *Core) quantizeInput(x float64) float64 {
	if c.desc.Format == FloatingPoint {
		return fixed.QuantizeFloat32(x)
	}

	return c.desc.InputFormat().Quantize(x)
}

func (c *Core) quantizeOutput(x float64) float64 {
	if c.desc.Format == FloatingPoint {
		return fixed.QuantizeFloat32(x)
	}

	return c.desc.OutputFormat().Quantize(x)
}
