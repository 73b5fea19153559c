package engine

import "errors"

var (
	// ErrUnknownEngine is returned by New for a name nothing is registered under.
	ErrUnknownEngine = errors.New("xfft/engine: unknown engine")

	// ErrDuplicateEngine is returned by Register when the name is taken.
	ErrDuplicateEngine = errors.New("xfft/engine: engine already registered")
)

// Return codes of the engines in this package.
const (
	// CodeInvalidInput means the input arrays do not hold 1<<NFFT samples.
	CodeInvalidInput = 1
	// CodeInvalidOutput means the output arrays do not hold 1<<NFFT samples.
	CodeInvalidOutput = 2
	// CodeFailed is the default code of Failing.
	CodeFailed = 3
)
