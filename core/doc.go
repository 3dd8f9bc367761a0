// Package core provides the mutable simple graph underlying LOLOG
// simulation: a fixed integer vertex set {0..n-1}, directed or
// undirected edges with no loops and no multi-edges, and named
// per-vertex attribute vectors.
//
// ✨ Key properties:
//   - Toggle is its own inverse: flipping a dyad twice restores the
//     exact edge set.
//   - Neighbor sets are ordered (red-black tree backed), so Neighbors
//     and Edgelist iterate deterministically without re-sorting.
//   - Clone is a deep copy; RemoveEdges empties the edge set while
//     keeping vertices and attributes.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/lolog/core"
//
//	g, err := core.NewGraph(10)              // undirected
//	d, err := core.NewGraph(10, core.WithDirected())
//	_ = g.Toggle(0, 1)                       // add edge {0,1}
//	_ = g.Toggle(0, 1)                       // remove it again
//
// Performance:
//
//   - HasEdge / Toggle: O(log d) on the endpoint's neighbor set.
//   - Neighbors(v): O(d) to materialize the sorted slice.
//
// The package is not goroutine-safe; each simulation owns its clone
// exclusively (see package sampler).
package core
