package pipeline

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/ppicomplex/config"
	"github.com/katalvlaran/ppicomplex/ontology"
	"github.com/katalvlaran/ppicomplex/ppi"
)

// ErrMissingInput indicates a required input path is empty.
var ErrMissingInput = errors.New("pipeline: missing input")

// Inputs are the in-memory structures a run consumes.
type Inputs struct {
	Graph     *ppi.Graph
	DAG       *ontology.DAG
	Essential map[string]struct{} // nil when no reference set was given
}

// LoadInputs reads every file named in cfg.Inputs. The PPI, IS_A and
// annotation files are required; PART_OF and essential are optional.
func LoadInputs(cfg *config.Config) (Inputs, error) {
	in := cfg.Inputs
	for _, req := range [][2]string{{"ppi", in.PPI}, {"is_a", in.IsA}, {"annotations", in.Annotations}} {
		if req[1] == "" {
			return Inputs{}, fmt.Errorf("%w: inputs.%s", ErrMissingInput, req[0])
		}
	}

	var out Inputs
	err := withFile(in.PPI, func(r io.Reader) (err error) {
		out.Graph, err = ppi.ReadEdgeList(r, cfg.WeightedPPI)
		return err
	})
	if err != nil {
		return Inputs{}, err
	}

	isA, err := os.Open(in.IsA)
	if err != nil {
		return Inputs{}, err
	}
	defer isA.Close()
	ann, err := os.Open(in.Annotations)
	if err != nil {
		return Inputs{}, err
	}
	defer ann.Close()
	var partOf io.Reader
	if in.PartOf != "" {
		f, err := os.Open(in.PartOf)
		if err != nil {
			return Inputs{}, err
		}
		defer f.Close()
		partOf = f
	}
	out.DAG, err = ontology.Load(isA, partOf, ann,
		ontology.WithIsAWeight(cfg.IsAWeight),
		ontology.WithPartOfWeight(cfg.PartOfWeight),
	)
	if err != nil {
		return Inputs{}, err
	}

	if in.Essential != "" {
		err = withFile(in.Essential, func(r io.Reader) (err error) {
			out.Essential, err = ppi.ReadProteinSet(r)
			return err
		})
		if err != nil {
			return Inputs{}, err
		}
	}

	return out, nil
}

func withFile(path string, fn func(io.Reader) error) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()
	if err := fn(f); err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	return nil
}
