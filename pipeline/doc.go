// Package pipeline wires the library packages into one complex detection
// run: load inputs, reweight the interaction graph with GO similarity,
// optionally split it into connected components, cluster each part with
// PCEGS and deduplicate the result.
//
// Library packages never log; Runner logs one structured line per stage
// (zap) tagged with a per-run UUID and records counters and stage
// durations in a Prometheus registry owned by Metrics.
package pipeline
