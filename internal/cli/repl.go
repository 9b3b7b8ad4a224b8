// Package cli implements the terminal front end: progress display, result
// presentation, file and JSON output, shell completion and the REPL.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/agbru/decicalc/internal/bignum"
	"github.com/agbru/decicalc/internal/dft"
	"github.com/agbru/decicalc/internal/format"
	"github.com/agbru/decicalc/internal/metrics"
	"github.com/agbru/decicalc/internal/multiply"
	"github.com/agbru/decicalc/internal/orchestration"
	"github.com/agbru/decicalc/internal/ui"
)

// REPLConfig configures an interactive session.
type REPLConfig struct {
	// DefaultAlgo is the algorithm used by mul; "all" or "" picks grid.
	DefaultAlgo string
	Timeout     time.Duration
	Order       dft.Order
	// Gatherer is read by the stats command. Nil means the default registry.
	Gatherer prometheus.Gatherer
}

// REPL is an interactive arithmetic session.
type REPL struct {
	config      REPLConfig
	factory     multiply.Factory
	currentAlgo string
	in          io.Reader
	out         io.Writer
}

const fallbackAlgo = "grid"

// NewREPL creates a session reading stdin and writing stdout.
func NewREPL(factory multiply.Factory, config REPLConfig) *REPL {
	algo := config.DefaultAlgo
	if algo == "" || algo == "all" || strings.Contains(algo, ",") {
		algo = fallbackAlgo
	}
	if config.Gatherer == nil {
		config.Gatherer = prometheus.DefaultGatherer
	}
	return &REPL{
		config:      config,
		factory:     factory,
		currentAlgo: algo,
		in:          os.Stdin,
		out:         os.Stdout,
	}
}

// SetInput replaces the input reader.
func (r *REPL) SetInput(in io.Reader) { r.in = in }

// SetOutput replaces the output writer.
func (r *REPL) SetOutput(out io.Writer) { r.out = out }

// Start reads commands until exit, quit or end of input.
func (r *REPL) Start() {
	t := ui.GetCurrentTheme()
	r.printBanner()
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, t.Paint(t.Success, "dec> "))
		input, err := reader.ReadString('\n')
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(line) {
				return
			}
		}
		if err != nil {
			if !errors.Is(err, io.EOF) {
				fmt.Fprintln(r.out, t.Paint(t.Error, "Read error: "+err.Error()))
			}
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printBanner() {
	t := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "\n%s\n", t.Paint(t.Primary, "╔════════════════════════════════════════════╗"))
	fmt.Fprintf(r.out, "%s  %s  %s\n", t.Paint(t.Primary, "║"), t.Paint(t.Bold, "Decimal Arithmetic - Interactive Mode    "), t.Paint(t.Primary, "║"))
	fmt.Fprintf(r.out, "%s\n\n", t.Paint(t.Primary, "╚════════════════════════════════════════════╝"))
}

var replCommands = []struct{ usage, help string }{
	{"mul <a> <b>", "Multiply with the current algorithm"},
	{"compare <a> <b>", "Multiply with every algorithm and compare"},
	{"add <a> <b>", "Add two integers"},
	{"sub <a> <b>", "Subtract two integers"},
	{"cmp <a> <b>", "Compare two integers"},
	{"split <a> <k>", "Split an integer at 10^k into low and high parts"},
	{"dft <a> <b>", "Multiply two unsigned integers by DFT convolution"},
	{"algo <name>", "Change the current algorithm"},
	{"list", "List available algorithms"},
	{"stats", "Show per-algorithm counters and memory"},
	{"help", "Display this help"},
	{"exit / quit", "Leave interactive mode"},
}

func (r *REPL) printHelp() {
	t := ui.GetCurrentTheme()
	fmt.Fprintln(r.out, t.Paint(t.Bold, "Available commands:"))
	for _, c := range replCommands {
		fmt.Fprintf(r.out, "  %s%s - %s\n", t.Paint(t.Warning, c.usage), pad(16-len(c.usage)), c.help)
	}
}

// processCommand runs one command line and returns false on exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}
	cmd, args := strings.ToLower(parts[0]), parts[1:]

	switch cmd {
	case "mul", "m":
		r.withTwo(cmd, args, r.cmdMul)
	case "compare":
		r.withTwo(cmd, args, r.cmdCompare)
	case "add":
		r.withTwo(cmd, args, func(a, b string) { r.integerOp(a, b, "+", bignum.Add) })
	case "sub":
		r.withTwo(cmd, args, func(a, b string) { r.integerOp(a, b, "-", bignum.Sub) })
	case "cmp":
		r.withTwo(cmd, args, r.cmdCmp)
	case "split":
		r.withTwo(cmd, args, r.cmdSplit)
	case "dft":
		r.withTwo(cmd, args, r.cmdDFT)
	case "algo":
		r.cmdAlgo(args)
	case "list", "ls":
		r.cmdList()
	case "stats":
		r.cmdStats()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		t := ui.GetCurrentTheme()
		fmt.Fprintln(r.out, t.Paint(t.Success, "Goodbye!"))
		return false
	default:
		r.fail("Unknown command: %s (type help)", cmd)
	}
	return true
}

func (r *REPL) fail(format string, a ...any) {
	t := ui.GetCurrentTheme()
	fmt.Fprintln(r.out, t.Paint(t.Error, fmt.Sprintf(format, a...)))
}

func (r *REPL) withTwo(cmd string, args []string, run func(a, b string)) {
	if len(args) != 2 {
		r.fail("Usage: %s <a> <b>", cmd)
		return
	}
	run(args[0], args[1])
}

func (r *REPL) cmdMul(a, b string) {
	m, err := r.factory.Get(r.currentAlgo)
	if err != nil {
		r.fail("Algorithm not found: %s", r.currentAlgo)
		return
	}
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	progressChan := make(chan multiply.ProgressUpdate, orchestration.ProgressBufferMultiplier)
	var wg sync.WaitGroup
	wg.Add(1)
	go DisplayProgress(&wg, progressChan, 1, r.out)

	start := time.Now()
	product, err := m.Multiply(ctx, progressChan, 0, a, b, multiply.Options{Order: r.config.Order})
	duration := time.Since(start)
	close(progressChan)
	wg.Wait()

	if err != nil {
		r.fail("Error: %v", err)
		return
	}
	t := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "  Algorithm: %s  Time: %s  Digits: %d\n",
		t.Paint(t.Primary, m.Name()), t.Paint(t.Success, displayDuration(duration)), format.CountDigits(product))
	if len(product) > TruncationLimit {
		product = format.TruncateProduct(product, DisplayEdges)
	}
	fmt.Fprintf(r.out, "  %s × %s = %s\n\n", a, b, t.Paint(t.Success, product))
}

func (r *REPL) cmdCompare(a, b string) {
	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	multipliers := make([]multiply.Multiplier, 0)
	for _, name := range r.factory.List() {
		if m, err := r.factory.Get(name); err == nil {
			multipliers = append(multipliers, m)
		}
	}
	order := "desc"
	if r.config.Order == dft.Ascending {
		order = "asc"
	}
	results := orchestration.ExecuteMultiplications(ctx, multipliers,
		configFor(a, b, order), orchestration.NullProgressReporter{}, r.out)
	orchestration.SortResults(results)
	CLIResultPresenter{}.PresentComparisonTable(results, r.out)

	t := ui.GetCurrentTheme()
	if bad, left, right := orchestration.Mismatch(results); bad {
		fmt.Fprintln(r.out, t.Paint(t.Error, fmt.Sprintf("✗ INCONSISTENT: %s and %s disagree", left, right)))
	} else if len(results) > 0 && results[0].OK() {
		fmt.Fprintf(r.out, "%s %s\n", t.Paint(t.Success, "✓ consistent:"), format.TruncateProduct(results[0].Product, DisplayEdges))
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) parseInts(a, b string) (bignum.Int, bignum.Int, bool) {
	x, err := bignum.Parse(a)
	if err != nil {
		r.fail("Invalid integer: %v", err)
		return x, x, false
	}
	y, err := bignum.Parse(b)
	if err != nil {
		r.fail("Invalid integer: %v", err)
		return x, y, false
	}
	return x, y, true
}

func (r *REPL) integerOp(a, b, symbol string, op func(x, y bignum.Int) bignum.Int) {
	x, y, ok := r.parseInts(a, b)
	if !ok {
		return
	}
	t := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "  %s %s %s = %s\n", x, symbol, y, t.Paint(t.Success, op(x, y).String()))
}

func (r *REPL) cmdCmp(a, b string) {
	x, y, ok := r.parseInts(a, b)
	if !ok {
		return
	}
	rel := map[int]string{-1: "<", 0: "=", 1: ">"}[bignum.Cmp(x, y)]
	fmt.Fprintf(r.out, "  %s %s %s\n", x, rel, y)
}

func (r *REPL) cmdSplit(a, k string) {
	x, err := bignum.Parse(a)
	if err != nil {
		r.fail("Invalid integer: %v", err)
		return
	}
	power, err := strconv.ParseUint(k, 10, 32)
	if err != nil {
		r.fail("Invalid split position: %s", k)
		return
	}
	low, high := x.DecimalDecompose(uint(power))
	fmt.Fprintf(r.out, "  %s = %s × 10^%d + %s\n", x, high, power, low)
}

func (r *REPL) cmdDFT(a, b string) {
	start := time.Now()
	product, err := dft.Multiply(a, b, dft.Descending)
	if err != nil {
		r.fail("Error: %v", err)
		return
	}
	t := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "  %s × %s = %s (%s)\n", a, b, t.Paint(t.Success, product), displayDuration(time.Since(start)))
}

func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		r.fail("Usage: algo <name> (%s)", strings.Join(r.factory.List(), ", "))
		return
	}
	name := strings.ToLower(args[0])
	if _, err := r.factory.Get(name); err != nil {
		r.fail("Unknown algorithm: %s (%s)", name, strings.Join(r.factory.List(), ", "))
		return
	}
	r.currentAlgo = name
	t := ui.GetCurrentTheme()
	fmt.Fprintf(r.out, "Algorithm changed to: %s\n", t.Paint(t.Success, name))
}

func (r *REPL) cmdList() {
	t := ui.GetCurrentTheme()
	fmt.Fprintln(r.out, t.Paint(t.Bold, "\nAvailable algorithms:"))
	for _, name := range r.factory.List() {
		marker := "  "
		if name == r.currentAlgo {
			marker = t.Paint(t.Success, "► ")
		}
		fmt.Fprintf(r.out, "%s%s\n", marker, t.Paint(t.Warning, name))
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdStats() {
	stats, err := metrics.Summarize(r.config.Gatherer)
	if err != nil {
		r.fail("Cannot gather metrics: %v", err)
		return
	}
	t := ui.GetCurrentTheme()
	fmt.Fprintln(r.out, t.Paint(t.Bold, "\nMultiplications:"))
	if len(stats) == 0 {
		fmt.Fprintln(r.out, "  none yet")
	}
	for _, s := range stats {
		fmt.Fprintf(r.out, "  %s%s calls=%d ok=%d skipped=%d failed=%d canceled=%d mean=%s\n",
			t.Paint(t.Warning, s.Name), pad(12-len(s.Name)), s.Calls(), s.Success, s.Skipped, s.Errors, s.Canceled,
			displayDuration(time.Duration(s.MeanSeconds*float64(time.Second))))
	}
	mem := metrics.ReadMemory()
	fmt.Fprintf(r.out, "Heap in use: %s bytes, GC cycles: %d\n\n", format.GroupDigits(fmt.Sprint(mem.HeapAlloc), ','), mem.NumGC)
}
