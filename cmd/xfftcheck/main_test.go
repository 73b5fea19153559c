package main

import (
	"slices"
	"strings"
	"testing"

	"github.com/cwbudde/xfft"
)

func TestParseSchedule(t *testing.T) {
	t.Parallel()

	got, err := parseSchedule(" 1, 2,,3 ")
	if err != nil {
		t.Fatalf("parseSchedule: %v", err)
	}

	if !slices.Equal(got, []uint8{1, 2, 3}) {
		t.Errorf("parseSchedule = %v, want [1 2 3]", got)
	}

	for _, bad := range []string{"4", "-1", "x"} {
		if _, err := parseSchedule(bad); err == nil {
			t.Errorf("parseSchedule(%q) succeeded", bad)
		}
	}
}

func TestBuildRequest(t *testing.T) {
	t.Parallel()

	r, err := buildRequest("inverse", 5, "1,1")
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}

	if r.Direction != xfft.Inverse || r.NFFT != 5 || r.Schedule != xfft.NewSchedule(1, 1) {
		t.Errorf("buildRequest = %+v", r)
	}

	if _, err := buildRequest("sideways", 0, ""); err == nil {
		t.Error("buildRequest accepted an unknown direction")
	}
}

func TestRenderDescriptor(t *testing.T) {
	t.Parallel()

	out := renderDescriptor(xfft.DefaultDescriptor())

	for _, want := range []string{"pipelined_streaming_io", "config word bits", "Q16.15"} {
		if !strings.Contains(out, want) {
			t.Errorf("descriptor table lacks %q:\n%s", want, out)
		}
	}
}

func TestRenderEngines(t *testing.T) {
	t.Parallel()

	if out := renderEngines(); !strings.Contains(out, "reference") {
		t.Errorf("engine table lacks the reference engine:\n%s", out)
	}
}
