// Command gosim scores pairs read from stdin with GO semantic similarity.
//
// Each input line holds two identifiers; each output line is
// "x<TAB>y<TAB>score". Protein modes (ancestor, child, combined) expect
// protein names, term modes (term, wang) expect GO term ids.
//
//	gosim -config pcegs.yaml -mode combined < pairs.txt
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/katalvlaran/ppicomplex/config"
	"github.com/katalvlaran/ppicomplex/ontology"
	"github.com/katalvlaran/ppicomplex/pipeline"
)

var errMode = errors.New("gosim: mode must be one of ancestor, child, combined, term, wang")

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "gosim:", err)
		os.Exit(1)
	}
}

func run(args []string, stdin io.Reader, stdout io.Writer) error {
	fs := flag.NewFlagSet("gosim", flag.ContinueOnError)
	cfgPath := fs.String("config", "", "YAML configuration file")
	isA := fs.String("is-a", "", "IS_A relation file (overrides inputs.is_a)")
	partOf := fs.String("part-of", "", "PART_OF relation file (overrides inputs.part_of)")
	ann := fs.String("annotations", "", "annotation file (overrides inputs.annotations)")
	mode := fs.String("mode", "ancestor", "ancestor|child|combined|term|wang")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if *isA != "" {
		cfg.Inputs.IsA = *isA
	}
	if *partOf != "" {
		cfg.Inputs.PartOf = *partOf
	}
	if *ann != "" {
		cfg.Inputs.Annotations = *ann
	}
	if cfg.Inputs.IsA == "" {
		return fmt.Errorf("%w: inputs.is_a", pipeline.ErrMissingInput)
	}

	logger, err := pipeline.NewLogger(cfg.Log)
	if err != nil {
		return err
	}
	defer func() { _ = logger.Sync() }()

	dag, err := loadDAG(cfg)
	if err != nil {
		return err
	}
	score, err := scorer(dag, *mode)
	if err != nil {
		return err
	}

	pairs, err := scorePairs(stdin, stdout, score)
	st := dag.CacheStats()
	logger.Info("pairs scored",
		zap.String("mode", *mode),
		zap.Int("pairs", pairs),
		zap.Uint64("cache_hits", st.Hits),
		zap.Uint64("cache_misses", st.Misses),
	)

	return err
}

// scorePairs writes one scored line per input pair. Lines scored before a
// failure are still flushed to out.
func scorePairs(in io.Reader, out io.Writer, score func(a, b string) (float64, error)) (pairs int, err error) {
	w := bufio.NewWriter(out)
	defer func() { err = errors.Join(err, w.Flush()) }()

	sc := bufio.NewScanner(in)
	for line := 1; sc.Scan(); line++ {
		f := strings.Fields(sc.Text())
		if len(f) == 0 {
			continue
		}
		if len(f) != 2 {
			return pairs, fmt.Errorf("line %d: want two identifiers, got %d", line, len(f))
		}
		v, err := score(f[0], f[1])
		if err != nil {
			return pairs, fmt.Errorf("line %d: %w", line, err)
		}
		fmt.Fprintf(w, "%s\t%s\t%.4f\n", f[0], f[1], v)
		pairs++
	}

	return pairs, sc.Err()
}
