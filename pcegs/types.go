// SPDX-License-Identifier: MIT
// File: types.go
// Role: options and sentinel errors.

package pcegs

import "errors"

// Defaults.
const (
	DefaultBeta    = 0.4
	DefaultMinSize = 3
)

var (
	// ErrNilGraph indicates Detect was called without a graph.
	ErrNilGraph = errors.New("pcegs: graph is nil")

	// ErrInvalidBeta indicates a negative or NaN attachment threshold.
	ErrInvalidBeta = errors.New("pcegs: beta must be >= 0")

	// ErrInvalidMinSize indicates a minimum complex size below 1.
	ErrInvalidMinSize = errors.New("pcegs: min size must be >= 1")
)

// Options configure Detect.
type Options struct {
	Beta      float64
	MinSize   int
	Essential map[string]struct{} // nil disables the essential variant
}

// Option mutates Options.
type Option func(*Options)

// WithBeta sets the attachment threshold.
func WithBeta(b float64) Option { return func(o *Options) { o.Beta = b } }

// WithMinSize sets the smallest complex that is emitted.
func WithMinSize(n int) Option { return func(o *Options) { o.MinSize = n } }

// WithEssential restricts seeds and cores to the given protein labels.
func WithEssential(set map[string]struct{}) Option {
	return func(o *Options) { o.Essential = set }
}

// DefaultOptions returns beta 0.4 and minimum size 3.
func DefaultOptions() Options {
	return Options{Beta: DefaultBeta, MinSize: DefaultMinSize}
}
