// Command xfftcheck validates an FFT core descriptor, reports the widths
// it implies and optionally runs an impulse through an engine.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/tebeka/atexit"

	"github.com/cwbudde/xfft"
	"github.com/cwbudde/xfft/engine"
	"github.com/cwbudde/xfft/internal/cpu"
)

const (
	exitOK = iota
	exitInvalid
	exitFailed
)

func main() {
	var (
		descFile  = flag.String("descriptor", "", "YAML descriptor file (default: built-in defaults)")
		writeFile = flag.String("write", "", "write the effective descriptor to file")
		engName   = flag.String("engine", "reference", "engine used for -impulse")
		impulse   = flag.Bool("impulse", false, "transform a unit impulse on every channel")
		amplitude = flag.Float64("amplitude", 0.5, "impulse amplitude")
		direction = flag.String("direction", "forward", "transform direction: forward, inverse")
		nfft      = flag.Int("nfft", 0, "log2 transform size for run-time configurable cores")
		schedule  = flag.String("schedule", "", "comma-separated per-stage shifts, first stage first")
		list      = flag.Bool("engines", false, "list registered engines and exit")
		logFile   = flag.String("log", "", "write JSON debug logs to file")
	)
	flag.Parse()

	if *logFile != "" {
		f, err := os.Create(*logFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error creating log file: %v\n", err)
			atexit.Exit(exitFailed)
		}

		atexit.Register(func() { _ = f.Close() })

		handler := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: slog.LevelDebug})
		slog.SetDefault(slog.New(handler))
	}

	if *list {
		fmt.Println(renderEngines())
		atexit.Exit(exitOK)
	}

	d := xfft.DefaultDescriptor()

	if *descFile != "" {
		loaded, err := xfft.LoadDescriptor(*descFile)
		if err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			atexit.Exit(exitFailed)
		}

		d = loaded
	}

	fmt.Printf("host: %s\n", cpu.DetectFeatures())
	fmt.Println(renderDescriptor(d))

	if err := d.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid descriptor: %v\n", err)
		atexit.Exit(exitInvalid)
	}

	if *writeFile != "" {
		if err := xfft.SaveDescriptor(*writeFile, d.WithDerivedWidths()); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			atexit.Exit(exitFailed)
		}

		fmt.Printf("descriptor written to: %s\n", *writeFile)
	}

	if !*impulse {
		atexit.Exit(exitOK)
	}

	r, err := buildRequest(*direction, *nfft, *schedule)
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		atexit.Exit(exitInvalid)
	}

	if err := runImpulse(d, *engName, r, *amplitude); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		atexit.Exit(exitFailed)
	}

	atexit.Exit(exitOK)
}

func runImpulse(d xfft.Descriptor, engName string, r xfft.Request, amplitude float64) error {
	eng, err := engine.New(engName)
	if err != nil {
		return err
	}

	core, err := xfft.NewCore(d, eng, xfft.WithLogger(slog.Default()))
	if err != nil {
		return err
	}

	nfft, err := core.Descriptor().ValidateRequest(r)
	if err != nil {
		return err
	}

	in := make([]xfft.SampleBuffer, d.Channels)
	for c := range in {
		in[c] = make(xfft.SampleBuffer, 1<<nfft)
		in[c][0] = complex(amplitude, 0)
	}

	res, err := core.Transform(r, in)
	if err != nil {
		return err
	}

	fmt.Println(renderResult(core.Descriptor(), res))

	return nil
}

func buildRequest(direction string, nfft int, schedule string) (xfft.Request, error) {
	var r xfft.Request

	if err := r.Direction.UnmarshalText([]byte(direction)); err != nil {
		return r, err
	}

	stages, err := parseSchedule(schedule)
	if err != nil {
		return r, err
	}

	r.NFFT = nfft
	r.Schedule = xfft.NewSchedule(stages...)

	return r, nil
}

func parseSchedule(list string) ([]uint8, error) {
	parts := strings.Split(list, ",")

	out := make([]uint8, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		v, err := strconv.ParseUint(part, 10, 8)
		if err != nil || v > 3 {
			return nil, fmt.Errorf("invalid stage shift %q: want 0..3", part)
		}

		out = append(out, uint8(v))
	}

	return out, nil
}
