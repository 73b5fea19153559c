package main

import (
	"fmt"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"

	"github.com/cwbudde/xfft"
	"github.com/cwbudde/xfft/engine"
)

func renderDescriptor(d xfft.Descriptor) string {
	t := table.NewWriter()
	t.SetTitle("Descriptor")
	t.AppendHeader(table.Row{"Parameter", "Value"})

	derived := d.WithDerivedWidths()

	t.AppendRows([]table.Row{
		{"channels", d.Channels},
		{"max_nfft", d.MaxNFFT},
		{"length", derived.Length},
		{"runtime_nfft", d.RuntimeNFFT},
		{"architecture", d.Architecture},
		{"scaling", d.Scaling},
		{"rounding", d.Rounding},
		{"data_format", d.Format},
		{"ordering", d.Ordering},
		{"overflow", d.Overflow},
		{"input_width", d.InputWidth},
		{"output_width", derived.OutputWidth},
		{"phase_factor_width", d.PhaseFactorWidth},
	})

	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"expected output width", d.ExpectedOutputWidth()},
		{"stages at max_nfft", d.Stages(d.MaxNFFT)},
		{"config word bits", d.ConfigWidth()},
		{"status word bits", d.StatusWidth()},
		{"input port", d.InputFormat()},
		{"output port", d.OutputFormat()},
	})

	return t.Render()
}

func renderEngines() string {
	t := table.NewWriter()
	t.SetTitle("Engines")
	t.AppendHeader(table.Row{"Name", "Description"})

	for _, name := range engine.Names() {
		info, _ := engine.Lookup(name)
		t.AppendRow(table.Row{name, info.Description})
	}

	return t.Render()
}

func renderResult(d xfft.Descriptor, res xfft.Result) string {
	t := table.NewWriter()
	t.SetTitle(fmt.Sprintf("Impulse response (NFFT=%d, %s)", res.NFFT, d.Ordering))

	header := table.Row{"Bin"}
	for c := range res.Outputs {
		header = append(header, "ch"+strconv.Itoa(c))
	}

	t.AppendHeader(header)

	n := 0
	if len(res.Outputs) > 0 {
		n = len(res.Outputs[0])
	}

	for i := 0; i < n; i++ {
		row := table.Row{i}
		for _, out := range res.Outputs {
			row = append(row, strconv.FormatComplex(out[i], 'g', 6, 128))
		}

		t.AppendRow(row)
	}

	t.AppendFooter(table.Row{"status", fmt.Sprintf("%s %s", res.Status.Kind, res.Status.Word)})

	return t.Render()
}
