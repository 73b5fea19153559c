package cpu

import (
	"runtime"
	"strings"
	"testing"
)

func TestDetectFeatures(t *testing.T) {
	t.Parallel()

	f := DetectFeatures()
	if f.Architecture != runtime.GOARCH {
		t.Errorf("Architecture = %q, want %q", f.Architecture, runtime.GOARCH)
	}

	if f.NumCPU < 1 {
		t.Errorf("NumCPU = %d, want >= 1", f.NumCPU)
	}

	if f.HasAVX2 && runtime.GOARCH != "amd64" && runtime.GOARCH != "386" {
		t.Errorf("AVX2 reported on %s", runtime.GOARCH)
	}
}

func TestFeaturesString(t *testing.T) {
	t.Parallel()

	tests := []struct {
		f    Features
		want string
	}{
		{Features{Architecture: "wasm"}, "wasm:generic"},
		{Features{Architecture: "arm64", HasNEON: true}, "arm64:neon"},
		{Features{Architecture: "amd64", HasSSE2: true, HasAVX: true, HasAVX2: true, HasFMA: true}, "amd64:sse2,avx,avx2,fma"},
	}

	for _, tt := range tests {
		if got := tt.f.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}

	if s := DetectFeatures().String(); !strings.HasPrefix(s, runtime.GOARCH+":") {
		t.Errorf("DetectFeatures().String() = %q, want prefix %q", s, runtime.GOARCH+":")
	}
}
