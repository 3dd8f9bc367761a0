// Package model binds a graph, a list of incremental network
// statistics (terms), and a parameter vector θ into a single LOLOG
// model.
//
// A Term is a reversible incremental statistic: after Initialize its
// Value reflects the current graph; DyadUpdate proposes a single dyad
// flip and adjusts the value as if the flip had happened; Rollback
// undoes the last proposal. The engine (package sampler) toggles the
// graph itself only after it decides to keep a proposal, so terms
// always compute deltas from the pre-toggle graph plus the proposed
// endpoints and the visitation history.
//
// The Model keeps the statistic vector consistent with its graph
// across every committed toggle and rollback, exposes the
// log-likelihood θ·stats, and supports deep cloning so each
// simulation can own an isolated copy.
package model
