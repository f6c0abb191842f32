package pipeline

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/ppicomplex/ontology"
)

const namespace = "pcegs"

// Metrics holds the Prometheus collectors of the pipeline. Each Metrics
// owns its registry so several runners can coexist in one process.
type Metrics struct {
	registry *prometheus.Registry

	EdgesScored   prometheus.Counter
	EdgesPruned   prometheus.Counter
	ComplexesRaw  prometheus.Counter
	ComplexesKept prometheus.Counter
	Components    prometheus.Gauge
	CacheHits     prometheus.Gauge
	CacheMisses   prometheus.Gauge
	StageDuration *prometheus.HistogramVec
}

// NewMetrics registers all collectors on reg, or on a fresh registry when
// reg is nil.
func NewMetrics(reg *prometheus.Registry) *Metrics {
	if reg == nil {
		reg = prometheus.NewRegistry()
	}
	m := &Metrics{
		registry: reg,
		EdgesScored: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_scored_total",
			Help:      "PPI edges rescored with topology and GO similarity",
		}),
		EdgesPruned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "edges_pruned_total",
			Help:      "PPI edges removed for low functional similarity",
		}),
		ComplexesRaw: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complexes_raw_total",
			Help:      "Complexes emitted by core-attachment clustering",
		}),
		ComplexesKept: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "complexes_kept_total",
			Help:      "Complexes surviving deduplication",
		}),
		Components: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "components",
			Help:      "Graph parts clustered in the last run",
		}),
		CacheHits: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "similarity_cache_hits",
			Help:      "Term similarity cache hits",
		}),
		CacheMisses: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "similarity_cache_misses",
			Help:      "Term similarity cache misses",
		}),
		StageDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "stage_duration_seconds",
			Help:      "Wall time per pipeline stage",
			Buckets:   prometheus.DefBuckets,
		}, []string{"stage"}),
	}
	reg.MustRegister(
		m.EdgesScored, m.EdgesPruned,
		m.ComplexesRaw, m.ComplexesKept,
		m.Components, m.CacheHits, m.CacheMisses,
		m.StageDuration,
	)

	return m
}

// Registry exposes the underlying registry for gathering.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile dumps all metrics in the node_exporter textfile format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) observeCache(s ontology.CacheStats) {
	m.CacheHits.Set(float64(s.Hits))
	m.CacheMisses.Set(float64(s.Misses))
}
