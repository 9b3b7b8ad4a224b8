package cli

import (
	"fmt"
	"io"
	"runtime"
	"strings"

	"golang.org/x/sys/cpu"

	"github.com/agbru/decicalc/internal/config"
	"github.com/agbru/decicalc/internal/format"
	"github.com/agbru/decicalc/internal/multiply"
	"github.com/agbru/decicalc/internal/ui"
)

// cpuFeatures lists the SIMD extensions reported by the processor. They
// matter to the float64 transforms of the convolution algorithms.
func cpuFeatures() string {
	var features []string
	add := func(name string, ok bool) {
		if ok {
			features = append(features, name)
		}
	}
	add("SSE4.1", cpu.X86.HasSSE41)
	add("AVX", cpu.X86.HasAVX)
	add("AVX2", cpu.X86.HasAVX2)
	add("FMA", cpu.X86.HasFMA)
	add("AVX-512F", cpu.X86.HasAVX512F)
	add("ASIMD", cpu.ARM64.HasASIMD)
	add("FPHP", cpu.ARM64.HasFPHP)
	if len(features) == 0 {
		return "none detected"
	}
	return strings.Join(features, ", ")
}

// PrintExecutionConfig prints the operands, timeout and environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Multiplying %s (%d digits) by %s (%d digits) with a timeout of %s.\n",
		t.Paint(t.Primary, format.TruncateProduct(cfg.A, DisplayEdges)), format.CountDigits(cfg.A),
		t.Paint(t.Primary, format.TruncateProduct(cfg.B, DisplayEdges)), format.CountDigits(cfg.B),
		t.Paint(t.Warning, cfg.Timeout.String()))
	fmt.Fprintf(out, "Environment: %s logical processors, Go %s, %s/%s.\n",
		t.Paint(t.Info, fmt.Sprint(runtime.NumCPU())), t.Paint(t.Info, runtime.Version()), runtime.GOOS, runtime.GOARCH)
	fmt.Fprintf(out, "CPU features: %s. Convolution digit order: %s.\n",
		t.Paint(t.Info, cpuFeatures()), t.Paint(t.Info, cfg.ToOptions().Order.String()))
}

// PrintExecutionMode states whether one algorithm runs or several are
// compared.
func PrintExecutionMode(multipliers []multiply.Multiplier, out io.Writer) {
	t := ui.GetCurrentTheme()
	var mode string
	switch len(multipliers) {
	case 0:
		mode = "no algorithm selected"
	case 1:
		mode = fmt.Sprintf("Single multiplication with the %s algorithm", t.Paint(t.Success, multipliers[0].Name()))
	default:
		names := make([]string, len(multipliers))
		for i, m := range multipliers {
			names[i] = m.Name()
		}
		mode = fmt.Sprintf("Parallel comparison of %d algorithms (%s)", len(multipliers), strings.Join(names, ", "))
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", mode)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}

// configFor builds the configuration of an ad hoc comparison run.
func configFor(a, b, order string) config.AppConfig {
	return config.AppConfig{A: a, B: b, Algo: config.DefaultAlgo, Order: order}
}
