// Command mt19937 prints, verifies and measures MT19937 streams.
//
// Defaults are read from a .env file in the working directory and from
// MT19937_* environment variables (see internal/config).
package main

import (
	"encoding/csv"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"

	"github.com/alecthomas/kong"

	"github.com/nozzle/mt19937"
	"github.com/nozzle/mt19937/internal/config"
	"github.com/nozzle/mt19937/internal/quality"
	"github.com/nozzle/mt19937/internal/reference"
)

type cli struct {
	Verbose bool `short:"v" help:"Verbose output."`

	Print  printCmd  `cmd:"" help:"Print values drawn from a stream."`
	Verify verifyCmd `cmd:"" help:"Compare the generator against published reference outputs."`
	Stats  statsCmd  `cmd:"" help:"Report the statistical quality of one or more streams."`
}

// env is bound into every command's Run method.
type env struct {
	out     io.Writer
	log     *log.Logger
	verbose bool
}

func (e *env) logf(format string, args ...any) {
	if e.verbose {
		e.log.Printf(format, args...)
	}
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mt19937: ")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config failed: %s", err)
	}

	if err := run(os.Args[1:], cfg, os.Stdout, os.Stderr); err != nil {
		log.Fatalln(err)
	}
}

// run parses args against the command grammar, with defaults taken from cfg,
// and executes the selected command.
func run(args []string, cfg config.Config, stdout, stderr io.Writer) error {
	var c cli
	parser, err := kong.New(&c,
		kong.Name("mt19937"),
		kong.Description("MT19937 Mersenne Twister reference tool."),
		kong.UsageOnError(),
		kong.Writers(stdout, stderr),
		kong.Vars(cfg.Vars()),
	)
	if err != nil {
		return err
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	return ctx.Run(&env{
		out:     stdout,
		log:     log.New(stderr, "mt19937: ", 0),
		verbose: c.Verbose,
	})
}

type printCmd struct {
	Seed   uint32 `short:"s" default:"${seed}" help:"Seed of the stream."`
	Count  int    `short:"n" default:"${count}" help:"Number of values to print."`
	Kind   string `short:"k" enum:"u32,u64,float,double,res53" default:"u32" help:"Value kind: ${enum}."`
	Format string `short:"f" enum:"text,csv" default:"text" help:"Output format: ${enum}."`
	Output string `short:"o" type:"path" help:"File to write to instead of stdout."`
}

// perRow is the number of values per line in text output.
var perRow = map[string]int{"u32": 5, "u64": 3, "float": 5, "double": 5, "res53": 5}

func (p *printCmd) Run(e *env) error {
	if p.Count < 0 {
		return fmt.Errorf("count must not be negative, got %d", p.Count)
	}

	e.logf("printing %d %s values for seed %d", p.Count, p.Kind, p.Seed)

	g := mt19937.New(p.Seed)
	values := make([]string, p.Count)
	for i := range values {
		values[i] = formatValue(g, p.Kind)
	}

	if p.Output == "" {
		return p.write(e.out, values)
	}

	file, err := os.Create(p.Output)
	if err != nil {
		return err
	}
	if err := p.write(file, values); err != nil {
		file.Close()
		return err
	}
	if err := file.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", p.Output, err)
	}

	e.logf("saved %d values to %s", p.Count, p.Output)
	return nil
}

func (p *printCmd) write(w io.Writer, values []string) error {
	if p.Format == "csv" {
		return writeCSV(w, values)
	}
	return writeText(w, values, perRow[p.Kind])
}

// formatValue draws one value of the given kind.
func formatValue(g *mt19937.Generator, kind string) string {
	switch kind {
	case "u64":
		return strconv.FormatUint(g.Uint64(), 10)
	case "float":
		return strconv.FormatFloat(float64(g.Float32()), 'f', 6, 32)
	case "double":
		return strconv.FormatFloat(g.Float64(), 'f', 6, 64)
	case "res53":
		return strconv.FormatFloat(g.Float64Res53(), 'f', 6, 64)
	default:
		return strconv.FormatUint(uint64(g.Uint32()), 10)
	}
}

// writeText right-aligns values in columns of the widest value, n per line.
func writeText(w io.Writer, values []string, n int) error {
	width := 0
	for _, v := range values {
		width = max(width, len(v))
	}
	for i, v := range values {
		sep := " "
		if i%n == n-1 || i == len(values)-1 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%*s%s", width, v, sep); err != nil {
			return err
		}
	}
	return nil
}

// writeCSV writes one value per record.
func writeCSV(w io.Writer, values []string) error {
	writer := csv.NewWriter(w)
	for _, v := range values {
		if err := writer.Write([]string{v}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

type verifyCmd struct {
	Full bool `help:"Check the whole doubled-index table, up to position 2^32-1. This walks 4 billion outputs."`
}

// quickDoubledK covers positions up to 2^20-1.
const quickDoubledK = 20

// newStream returns the generator verify checks.
var newStream = func() reference.Stream { return mt19937.New(1) }

func (v *verifyCmd) Run(e *env) error {
	maxK := quickDoubledK
	if v.Full {
		maxK = len(reference.Seed1Doubled) - 1
	}

	g := newStream()
	checks := []struct {
		name string
		run  func() []reference.Mismatch
	}{
		{"seed 1, first 200 values", func() []reference.Mismatch { return reference.CheckSequence(g) }},
		{"init_by_array, first 10 values", func() []reference.Mismatch { return reference.CheckArray(g) }},
		{"default seed, value 10000", func() []reference.Mismatch { return reference.CheckDefault(g) }},
		{fmt.Sprintf("seed 1, positions 2^k-1 for k <= %d", maxK), func() []reference.Mismatch {
			return reference.CheckDoubled(g, maxK)
		}},
	}

	wrong := 0
	for _, c := range checks {
		e.logf("checking %s", c.name)
		bad := c.run()
		status := "ok"
		if len(bad) > 0 {
			status = "FAIL"
		}
		fmt.Fprintf(e.out, "%-40s %s\n", c.name, status)
		for _, m := range bad {
			fmt.Fprintf(e.out, "  %s\n", m)
		}
		wrong += len(bad)
	}

	fmt.Fprintf(e.out, "Found %d incorrect numbers\n", wrong)
	if wrong > 0 {
		return fmt.Errorf("%d values differ from the reference", wrong)
	}
	return nil
}

type statsCmd struct {
	Seeds   []uint32 `short:"s" default:"${seed}" help:"Seeds to analyze, one independent stream each."`
	Samples int      `short:"n" default:"${samples}" help:"Draws per stream."`
	Bins    int      `short:"b" default:"${bins}" help:"Chi-square buckets."`
	Workers int      `short:"w" default:"${workers}" help:"Concurrent streams (0 = one per CPU)."`
	Alpha   float64  `short:"a" default:"${alpha}" help:"Significance level of the chi-square test."`
}

func (s *statsCmd) Run(e *env) error {
	e.logf("analyzing %d streams of %d samples", len(s.Seeds), s.Samples)

	reports, err := quality.AnalyzeSeeds(s.Seeds, s.Samples, s.Bins, s.Workers)
	if err != nil {
		return err
	}

	failed := 0
	for _, r := range reports {
		status := "ok"
		if !r.Pass(s.Alpha) {
			status = "FAIL"
			failed++
		}
		fmt.Fprintf(e.out, "%s %s\n", r, status)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d streams failed at alpha=%g", failed, len(reports), s.Alpha)
	}
	return nil
}
