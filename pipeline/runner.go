package pipeline

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/katalvlaran/ppicomplex/complexes"
	"github.com/katalvlaran/ppicomplex/config"
	"github.com/katalvlaran/ppicomplex/pcegs"
	"github.com/katalvlaran/ppicomplex/ppi"
	"github.com/katalvlaran/ppicomplex/reweight"
)

var (
	// ErrNilInput indicates Run was given no graph or no ontology.
	ErrNilInput = errors.New("pipeline: graph and ontology are required")

	// ErrNoEssential indicates essential_only without a reference set.
	ErrNoEssential = errors.New("pipeline: essential_only set but no essential proteins loaded")
)

// Result summarises one run.
type Result struct {
	RunID      string
	Complexes  []complexes.Complex // deduplicated, in component order
	Raw        int                 // complexes before deduplication
	Reweight   reweight.Stats
	Components int
	Degeneracy int // largest core number of the reweighted graph
	Duration   time.Duration
}

// Runner executes the detection pipeline with a fixed configuration.
type Runner struct {
	cfg     *config.Config
	log     *zap.Logger
	metrics *Metrics
}

// NewRunner returns a Runner. A nil logger is replaced by a no-op logger
// and nil metrics by a private registry.
func NewRunner(cfg *config.Config, logger *zap.Logger, m *Metrics) *Runner {
	if logger == nil {
		logger = zap.NewNop()
	}
	if m == nil {
		m = NewMetrics(nil)
	}
	return &Runner{cfg: cfg, log: logger, metrics: m}
}

// Run reweights in.Graph in place, clusters it and deduplicates the
// complexes of every part. ctx is checked between stages and parts.
func (r *Runner) Run(ctx context.Context, in Inputs) (*Result, error) {
	if in.Graph == nil || in.DAG == nil {
		return nil, ErrNilInput
	}
	if r.cfg.EssentialOnly && in.Essential == nil {
		return nil, ErrNoEssential
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	res := &Result{RunID: uuid.NewString()}
	log := r.log.With(zap.String("run_id", res.RunID))
	log.Info("run started",
		zap.Int("proteins", in.Graph.NodeCount()),
		zap.Int("interactions", in.Graph.EdgeCount()),
		zap.Int("go_terms", in.DAG.TermCount()),
	)

	sim := reweight.Similarity(in.DAG.ProteinSimilarity)
	if r.cfg.CombinedSimilarity {
		sim = in.DAG.CombinedSimilarity
	}
	t := time.Now()
	st, err := reweight.Reweight(in.Graph, sim,
		reweight.WithAlpha(r.cfg.Alpha),
		reweight.WithPruneThreshold(r.cfg.FunctionSimPrune),
	)
	if err != nil {
		return nil, fmt.Errorf("pipeline: reweight: %w", err)
	}
	res.Reweight = st
	r.metrics.EdgesScored.Add(float64(st.Edges))
	r.metrics.EdgesPruned.Add(float64(st.Pruned))
	r.metrics.observeCache(in.DAG.CacheStats())
	r.stage(log, "reweight", t, zap.Int("scored", st.Edges), zap.Int("pruned", st.Pruned))

	for _, k := range in.Graph.CoreNumbers() {
		res.Degeneracy = max(res.Degeneracy, k)
	}

	parts := []*ppi.Graph{in.Graph}
	if r.cfg.SplitComponents {
		t = time.Now()
		parts = in.Graph.Split(r.cfg.MinComplexSize)
		r.stage(log, "split", t, zap.Int("components", len(parts)))
	}
	res.Components = len(parts)
	r.metrics.Components.Set(float64(len(parts)))

	opts := []pcegs.Option{pcegs.WithBeta(r.cfg.Beta), pcegs.WithMinSize(r.cfg.MinComplexSize)}
	if r.cfg.EssentialOnly {
		opts = append(opts, pcegs.WithEssential(in.Essential))
	}

	t = time.Now()
	for i, part := range parts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		raw, err := pcegs.Detect(part, opts...)
		if err != nil {
			return nil, fmt.Errorf("pipeline: cluster part %d: %w", i, err)
		}
		kept := complexes.Deduplicate(raw, complexes.WithOverlapThreshold(r.cfg.OverlapScore))
		res.Raw += len(raw)
		res.Complexes = append(res.Complexes, kept...)
		log.Debug("part clustered",
			zap.Int("part", i),
			zap.Int("proteins", part.NodeCount()),
			zap.Int("raw", len(raw)),
			zap.Int("kept", len(kept)),
		)
	}
	r.metrics.ComplexesRaw.Add(float64(res.Raw))
	r.metrics.ComplexesKept.Add(float64(len(res.Complexes)))
	r.stage(log, "cluster", t, zap.Int("raw", res.Raw), zap.Int("kept", len(res.Complexes)))

	res.Duration = time.Since(start)
	log.Info("run finished",
		zap.Int("complexes", len(res.Complexes)),
		zap.Int("degeneracy", res.Degeneracy),
		zap.Duration("duration", res.Duration),
	)

	return res, nil
}

func (r *Runner) stage(log *zap.Logger, name string, since time.Time, fields ...zap.Field) {
	d := time.Since(since)
	r.metrics.StageDuration.WithLabelValues(name).Observe(d.Seconds())
	log.Info("stage done", append([]zap.Field{zap.String("stage", name), zap.Duration("duration", d)}, fields...)...)
}
