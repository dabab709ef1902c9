// Package experiment is the external collaborator that drives repeated
// bounded-cost searches over a domain.Domain and records the results in
// the CSV/text formats spec'd for downstream analysis. It never makes a
// search-algorithm decision itself — it only calls search.AStar and
// search.PotentialSearch and records whatever they return, the same
// boundary other_examples' FromYaml-style config loaders keep between
// "how config is read" and "what the config is used for".
//
// Three file formats are produced/consumed, all round-tripped
// byte-identically with the upstream pts_heu_comparison.py reference:
//
//   - instance-ids CSV: header "instance_id,stack,cost", one row per
//     generated problem instance plus its true (optimal) cost.
//   - results CSV: header
//     "instance_id,degradation,bound,h_cost,h_expanded,p_cost,p_expanded",
//     one row per (instance, degradation, bound) triple; -1 marks a
//     timeout, -2 marks no-solution-within-bound.
//   - state-cost text: "<space-sep state integers>;<cost>" per line, for
//     heuristic-accuracy analysis; domain identity (tile vs pancake) is
//     supplied out-of-band by the caller, never encoded in the file.
//
// Config is loaded through a viper-backed loader (LoadConfig) with the
// spec's experiment defaults as fallback, mirroring the
// viper.New()/SetConfigFile/ReadInConfig pattern used for app
// configuration elsewhere in the retrieved example pack.
package experiment
