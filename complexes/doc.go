// SPDX-License-Identifier: MIT
// Package complexes defines predicted protein complexes, their overlap
// measures, cohesion-ranked deduplication and the tab-separated text format
// used to exchange them.
//
// Deduplicate sorts by cohesion (descending, stable), keeps every complex
// that does not overlap an already kept one, and then returns only the
// first half of the kept list. The halving is part of the published
// scoring protocol and is applied unconditionally.
//
// Text format, one complex per line:
//
//	P1<TAB>P2<TAB>...<TAB>0.1234
//
// Read accepts any whitespace between fields and treats a trailing numeric
// field as the cohesion.
package complexes
