package engine

import (
	"fmt"
	"slices"
	"sync"

	"github.com/cwbudde/xfft"
)

// Factory creates an engine.
type Factory func() xfft.Engine

// Info describes a registered engine.
type Info struct {
	Name        string
	Description string
}

type entry struct {
	info    Info
	factory Factory
}

var (
	registryMu sync.RWMutex
	registry   = map[string]entry{}
)

func init() {
	MustRegister(Info{Name: "reference", Description: "ideal DFT on gonum dsp/fourier"}, func() xfft.Engine { return NewReference() })
	MustRegister(Info{Name: "godsp", Description: "ideal DFT on go-dsp/fft"}, func() xfft.Engine { return GoDSP{} })
	MustRegister(Info{Name: "staged", Description: "radix-2 stage model with per-stage scaling and rounding"}, func() xfft.Engine { return Staged{} })
	MustRegister(Info{Name: "passthrough", Description: "synthesis stub: copies input, echoes direction"}, func() xfft.Engine { return Passthrough{} })
}

// Register adds an engine factory under info.Name.
//
// Returns ErrDuplicateEngine if the name is already registered.
func Register(info Info, f Factory) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	if _, ok := registry[info.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateEngine, info.Name)
	}

	registry[info.Name] = entry{info: info, factory: f}

	return nil
}

// MustRegister is like Register but panics on error.
func MustRegister(info Info, f Factory) {
	if err := Register(info, f); err != nil {
		panic(err)
	}
}

// New creates the engine registered under name.
//
// Returns ErrUnknownEngine if nothing is registered under name.
func New(name string) (xfft.Engine, error) {
	registryMu.RLock()
	e, ok := registry[name]
	registryMu.RUnlock()

	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, name)
	}

	return e.factory(), nil
}

// Names returns the registered engine names in sorted order.
func Names() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()

	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}

	slices.Sort(names)

	return names
}

// Lookup reports the Info registered under name.
func Lookup(name string) (Info, bool) {
	registryMu.RLock()
	e, ok := registry[name]
	registryMu.RUnlock()

	return e.info, ok
}
