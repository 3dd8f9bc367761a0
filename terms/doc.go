// Package terms provides incremental network statistics implementing
// the model.Term contract: edges, two-stars, triangles, nodal
// covariate sums, and an order-dependent preferential-attachment
// statistic.
//
// Every term follows the same reversible pattern: DyadUpdate computes
// the delta of the statistic for flipping one dyad from the pre-toggle
// graph, adds it to the running value, and journals it; Rollback
// subtracts the journaled delta. The engine toggles the graph only
// after deciding to keep a proposal, so deltas are always derived from
// the graph state before the flip.
//
// Terms are classified along two documentary axes:
//   - dyad-independent: the delta for a dyad ignores the rest of the
//     graph (edges, nodeCov);
//   - order-independent: the delta ignores the visitation history
//     (all but preferential attachment).
package terms
