package reweight

import "errors"

// Defaults.
const (
	DefaultAlpha          = 0.5
	DefaultPruneThreshold = 0.1
)

var (
	// ErrInvalidAlpha indicates alpha outside [0,1].
	ErrInvalidAlpha = errors.New("reweight: alpha must be in [0,1]")

	// ErrNilInput indicates a nil graph or similarity function.
	ErrNilInput = errors.New("reweight: graph and similarity must be non-nil")
)

// Similarity scores two proteins by label. Implementations must be
// symmetric; (*ontology.DAG).ProteinSimilarity satisfies it as a method value.
type Similarity func(a, b string) float64

// Options for Reweight.
type Options struct {
	Alpha          float64
	PruneThreshold float64
	Closed         bool
}

// Option mutates Options.
type Option func(*Options)

// WithAlpha sets the functional share of the new weight.
func WithAlpha(a float64) Option { return func(o *Options) { o.Alpha = a } }

// WithPruneThreshold sets the functional similarity at or below which an
// edge is removed.
func WithPruneThreshold(th float64) Option { return func(o *Options) { o.PruneThreshold = th } }

// WithClosedNeighborhood scores topology with JaccardPlus.
func WithClosedNeighborhood() Option { return func(o *Options) { o.Closed = true } }

// DefaultOptions returns alpha 0.5 and prune threshold 0.1.
func DefaultOptions() Options {
	return Options{Alpha: DefaultAlpha, PruneThreshold: DefaultPruneThreshold}
}

// Stats summarises one Reweight call.
type Stats struct {
	Edges  int // edges scored
	Pruned int // edges removed
}
