// Command pcegs predicts protein complexes from a PPI network and GO
// annotations, or merges previously written complex files.
//
//	pcegs detect -config pcegs.yaml [-ppi f] [-alpha a] [-beta b] [-out f]
//	pcegs dedup  -in run1.txt -in run2.txt [-known ppi.txt] [-out f]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/ppicomplex/complexes"
	"github.com/katalvlaran/ppicomplex/config"
	"github.com/katalvlaran/ppicomplex/pipeline"
	"github.com/katalvlaran/ppicomplex/ppi"
)

var errUsage = errors.New("usage: pcegs detect|dedup [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pcegs:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	switch args[0] {
	case "detect":
		return detect(ctx, args[1:], stdout)
	case "dedup":
		return dedup(args[1:], stdout)
	default:
		return fmt.Errorf("%w: unknown mode %q", errUsage, args[0])
	}
}

func detect(ctx context.Context, args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("detect", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML configuration file")
	ppiPath := fs.String("ppi", "", "PPI edge list (overrides inputs.ppi)")
	isA := fs.String("is-a", "", "IS_A relation file (overrides inputs.is_a)")
	partOf := fs.String("part-of", "", "PART_OF relation file (overrides inputs.part_of)")
	ann := fs.String("annotations", "", "protein GO annotation file (overrides inputs.annotations)")
	ess := fs.String("essential", "", "essential protein list (overrides inputs.essential)")
	out := fs.String("out", "", "complex output file (default stdout)")
	metrics := fs.String("metrics", "", "prometheus textfile to write after the run")
	alpha := fs.Float64("alpha", 0, "functional share of the edge weight")
	beta := fs.Float64("beta", 0, "attachment threshold")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "ppi":
			cfg.Inputs.PPI = *ppiPath
		case "is-a":
			cfg.Inputs.IsA = *isA
		case "part-of":
			cfg.Inputs.PartOf = *partOf
		case "annotations":
			cfg.Inputs.Annotations = *ann
		case "essential":
			cfg.Inputs.Essential = *ess
		case "out":
			cfg.Output.Complexes = *out
		case "metrics":
			cfg.Output.Metrics = *metrics
		case "alpha":
			cfg.Alpha = *alpha
		case "beta":
			cfg.Beta = *beta
		}
	})
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger, err := pipeline.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	in, err := pipeline.LoadInputs(cfg)
	if err != nil {
		return err
	}
	m := pipeline.NewMetrics(nil)
	res, err := pipeline.NewRunner(cfg, logger, m).Run(ctx, in)
	if err != nil {
		return err
	}

	n, err := writeComplexes(cfg.Output.Complexes, stdout, res.Complexes, cfg.MinCohesion)
	if err != nil {
		return err
	}
	logger.Info("complexes written",
		zap.String("run_id", res.RunID),
		zap.Int("written", n),
		zap.String("path", cfg.Output.Complexes),
	)

	if cfg.Output.Metrics != "" {
		return m.WriteTextfile(cfg.Output.Metrics)
	}
	return nil
}

// stringsFlag collects a repeatable string flag.
type stringsFlag []string

func (s *stringsFlag) String() string     { return strings.Join(*s, ",") }
func (s *stringsFlag) Set(v string) error { *s = append(*s, v); return nil }

func dedup(args []string, stdout io.Writer) error {
	def := config.Default()
	fs := flag.NewFlagSet("dedup", flag.ContinueOnError)
	var inputs stringsFlag
	fs.Var(&inputs, "in", "complex file to merge (repeatable)")
	known := fs.String("known", "", "PPI edge list restricting members to its proteins")
	minSize := fs.Int("min", def.MinComplexSize, "smallest complex kept while reading")
	maxSize := fs.Int("max", def.MaxComplexSize, "largest complex kept while reading")
	overlap := fs.Float64("overlap", def.OverlapScore, "overlap ratio marking a complex redundant")
	minCohesion := fs.Float64("min-cohesion", def.MinCohesion, "complexes at or below this cohesion are not written")
	out := fs.String("out", "", "output file (default stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if len(inputs) == 0 {
		return fmt.Errorf("%w: dedup needs at least one -in", errUsage)
	}

	var proteins map[string]struct{}
	if *known != "" {
		f, err := os.Open(*known)
		if err != nil {
			return err
		}
		g, err := ppi.ReadEdgeList(f, false)
		f.Close()
		if err != nil {
			return err
		}
		proteins = make(map[string]struct{}, g.NodeCount())
		for _, p := range g.Labels() {
			proteins[p] = struct{}{}
		}
	}

	var all []complexes.Complex
	for _, path := range inputs {
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		cs, err := complexes.Read(f, proteins, *minSize, *maxSize)
		f.Close()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		all = append(all, cs...)
	}

	kept := complexes.Deduplicate(all, complexes.WithOverlapThreshold(*overlap))
	_, err := writeComplexes(*out, stdout, kept, *minCohesion)
	return err
}

func writeComplexes(path string, stdout io.Writer, cs []complexes.Complex, minCohesion float64) (int, error) {
	if path == "" {
		return complexes.Write(stdout, cs, minCohesion)
	}
	f, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	n, err := complexes.Write(f, cs, minCohesion)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return n, err
}
