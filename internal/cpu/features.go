// Package cpu reports host CPU capabilities.
package cpu

import (
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"
)

// Features describes the host CPU's SIMD capabilities. They are reported
// with each run and not used for dispatch.
type Features struct {
	HasSSE2      bool
	HasAVX       bool
	HasAVX2      bool
	HasFMA       bool
	HasAVX512    bool
	HasNEON      bool
	Architecture string
	NumCPU       int
}

// CacheLinePad pads structs written by different goroutines onto separate
// cache lines.
type CacheLinePad = cpu.CacheLinePad

// DetectFeatures reports the available CPU features for the current process.
func DetectFeatures() Features {
	return Features{
		HasSSE2:      cpu.X86.HasSSE2,
		HasAVX:       cpu.X86.HasAVX,
		HasAVX2:      cpu.X86.HasAVX2,
		HasFMA:       cpu.X86.HasFMA,
		HasAVX512:    cpu.X86.HasAVX512F,
		HasNEON:      cpu.ARM64.HasASIMD,
		Architecture: runtime.GOARCH,
		NumCPU:       runtime.NumCPU(),
	}
}

// String lists the detected SIMD extensions, e.g. "amd64:sse2,avx,avx2,fma".
func (f Features) String() string {
	var ext []string

	for _, e := range []struct {
		ok   bool
		name string
	}{
		{f.HasSSE2, "sse2"},
		{f.HasAVX, "avx"},
		{f.HasAVX2, "avx2"},
		{f.HasFMA, "fma"},
		{f.HasAVX512, "avx512"},
		{f.HasNEON, "neon"},
	} {
		if e.ok {
			ext = append(ext, e.name)
		}
	}

	if len(ext) == 0 {
		return f.Architecture + ":generic"
	}

	return f.Architecture + ":" + strings.Join(ext, ",")
}
