// Package config holds the run configuration of the complex detection
// pipeline and loads it from defaults, an optional YAML file and the
// environment, in that order.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

var (
	// ErrInvalidConfig wraps every validation failure.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrInvalidEnv indicates an environment override that does not parse.
	ErrInvalidEnv = errors.New("config: invalid environment override")
)

// Environment variables applied after the YAML file.
const (
	EnvAlpha    = "PCEGS_ALPHA"
	EnvBeta     = "PCEGS_BETA"
	EnvLogLevel = "PCEGS_LOG_LEVEL"
)

// Config is the full set of tunables for one run.
type Config struct {
	IsAWeight    float64 `yaml:"is_a_weight" validate:"gt=0,lte=1"`
	PartOfWeight float64 `yaml:"part_of_weight" validate:"gt=0,lte=1"`

	MinComplexSize int     `yaml:"min_complex_size" validate:"gte=1"`
	MaxComplexSize int     `yaml:"max_complex_size" validate:"gtefield=MinComplexSize"`
	OverlapScore   float64 `yaml:"overlap_score" validate:"gt=0,lte=1"`

	FunctionSimPrune float64 `yaml:"function_sim_prune" validate:"gte=0,lte=1"`
	Alpha            float64 `yaml:"alpha" validate:"gte=0,lte=1"`
	Beta             float64 `yaml:"beta" validate:"gte=0"`

	CombinedSimilarity bool `yaml:"combined_similarity"`
	SplitComponents    bool `yaml:"split_components"`
	EssentialOnly      bool `yaml:"essential_only"`
	WeightedPPI        bool `yaml:"weighted_ppi"`

	MinCohesion float64 `yaml:"min_cohesion" validate:"gte=0"`

	Inputs Inputs    `yaml:"inputs"`
	Output Output    `yaml:"output"`
	Log    LogConfig `yaml:"log"`
}

// Inputs are file paths; empty means "not provided".
type Inputs struct {
	PPI         string `yaml:"ppi"`
	IsA         string `yaml:"is_a"`
	PartOf      string `yaml:"part_of"`
	Annotations string `yaml:"annotations"`
	Essential   string `yaml:"essential"`
}

// Output are file paths; an empty Complexes path means stdout and an empty
// Metrics path disables the metrics textfile.
type Output struct {
	Complexes string `yaml:"complexes"`
	Metrics   string `yaml:"metrics"`
}

// LogConfig selects the zap preset and level.
type LogConfig struct {
	Level       string `yaml:"level" validate:"oneof=debug info warn error"`
	Development bool   `yaml:"development"`
}

// Default returns the published parameter set.
func Default() *Config {
	return &Config{
		IsAWeight:        0.8,
		PartOfWeight:     0.6,
		MinComplexSize:   3,
		MaxComplexSize:   20,
		OverlapScore:     0.6,
		FunctionSimPrune: 0.1,
		Alpha:            0.5,
		Beta:             0.4,
		MinCohesion:      0.2,
		Log:              LogConfig{Level: "info"},
	}
}

// Load builds a Config from defaults, the YAML file at path (skipped when
// path is empty) and environment overrides, then validates it.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		f, err := os.Open(path)
		if err != nil {
			return nil, fmt.Errorf("config: open %s: %w", path, err)
		}
		defer f.Close()

		dec := yaml.NewDecoder(f)
		dec.KnownFields(true)
		if err := dec.Decode(cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v, ok := os.LookupEnv(EnvAlpha); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvAlpha, v)
		}
		c.Alpha = f
	}
	if v, ok := os.LookupEnv(EnvBeta); ok {
		f, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("%w: %s=%q", ErrInvalidEnv, EnvBeta, v)
		}
		c.Beta = f
	}
	if v, ok := os.LookupEnv(EnvLogLevel); ok && v != "" {
		c.Log.Level = strings.ToLower(v)
	}

	return nil
}

var validate = validator.New()

// Validate checks field ranges and cross-field rules.
func (c *Config) Validate() error {
	var msgs []string
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		for _, e := range verrs {
			msgs = append(msgs, fieldMessage(e))
		}
	}
	if c.EssentialOnly && c.Inputs.Essential == "" {
		msgs = append(msgs, "inputs.essential is required when essential_only is set")
	}
	if len(msgs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(msgs, "; "))
	}

	return nil
}

func fieldMessage(e validator.FieldError) string {
	field := e.Namespace()
	if i := strings.IndexByte(field, '.'); i >= 0 {
		field = field[i+1:]
	}
	switch e.Tag() {
	case "gt":
		return fmt.Sprintf("%s must be > %s", field, e.Param())
	case "gte":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "lte":
		return fmt.Sprintf("%s must be <= %s", field, e.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be >= %s", field, e.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", field, e.Param())
	default:
		return fmt.Sprintf("%s is invalid", field)
	}
}
