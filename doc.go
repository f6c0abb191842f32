// Package ppicomplex predicts protein complexes in a protein-protein
// interaction (PPI) network by combining network topology with Gene
// Ontology semantic similarity.
//
// What is inside?
//
//	ppi/          index-addressed weighted interaction graph, Jaccard
//	              neighborhoods, clustering coefficient, cohesion, k-core,
//	              component split, edge-list reader
//	unionfind/    disjoint sets with path halving and union by rank
//	ontology/     GO term DAG, semantic values, LCA with paths, term and
//	              protein similarity with concurrent-safe memoization
//	reweight/     topology + function edge weights with deferred pruning
//	pcegs/        seed-ordered core-attachment clustering (PCEGS)
//	complexes/    overlap measures, cohesion-ranked deduplication, text I/O
//	config/       YAML + environment configuration with validation
//	pipeline/     load → reweight → cluster → deduplicate, zap logging,
//	              Prometheus metrics
//	cmd/pcegs     detect and dedup front-end
//	cmd/gosim     similarity queries for term or protein pairs
//
// Data flow:
//
//	edge list + GO files → ppi.Graph + ontology.DAG
//	  → reweight.Reweight (mutates the graph)
//	  → pcegs.Detect (per component when split_components is set)
//	  → complexes.Deduplicate → complexes.Write
//
// Quick start:
//
//	cfg, _ := config.Load("pcegs.yaml")
//	in, _ := pipeline.LoadInputs(cfg)
//	res, _ := pipeline.NewRunner(cfg, logger, nil).Run(ctx, in)
//	complexes.Write(os.Stdout, res.Complexes, cfg.MinCohesion)
package ppicomplex
