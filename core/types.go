// Package core types, options, and sentinel errors.
//
// This file declares the Graph type, GraphOption, sentinel errors,
// and the NewGraph constructor.
package core

import (
	"errors"

	"github.com/emirpasic/gods/sets/treeset"
)

// OrderAttribute is the reserved discrete attribute name under which
// generated networks record each vertex's rank in the visitation order.
const OrderAttribute = "__order__"

// Sentinel errors for core graph operations.
var (
	// ErrBadSize indicates a negative vertex count passed to NewGraph.
	ErrBadSize = errors.New("core: vertex count must be non-negative")

	// ErrVertexRange indicates a vertex index outside {0..n-1}.
	ErrVertexRange = errors.New("core: vertex index out of range")

	// ErrSelfLoop indicates an attempted edge from a vertex to itself.
	ErrSelfLoop = errors.New("core: self-loops not allowed")

	// ErrAttrLength indicates an attribute vector whose length differs
	// from the number of vertices.
	ErrAttrLength = errors.New("core: attribute length must equal vertex count")

	// ErrAttrNotFound indicates a lookup of an attribute that was never set.
	ErrAttrNotFound = errors.New("core: attribute not found")
)

// GraphOption configures a Graph before creation.
type GraphOption func(g *Graph)

// WithDirected makes the graph directed; edges become ordered pairs
// and HasEdge(u,v) is no longer symmetric.
func WithDirected() GraphOption {
	return func(g *Graph) { g.directed = true }
}

// Graph is a mutable simple graph over the fixed vertex set {0..n-1}.
//
// Adjacency is stored as one ordered set per vertex (out-neighbors;
// a mirror set of in-neighbors is kept for directed graphs), so dyad
// queries and toggles cost O(log d) and neighbor iteration is sorted
// without extra work. Attribute vectors are stored by name and copied
// on write.
type Graph struct {
	n        int
	directed bool
	numEdges int

	// out[v] holds v's neighbors (out-neighbors when directed).
	out []*treeset.Set
	// in[v] holds v's in-neighbors; nil for undirected graphs.
	in []*treeset.Set

	discrete   map[string][]int
	continuous map[string][]float64
}

// NewGraph creates an edgeless graph on n vertices.
// Returns ErrBadSize if n < 0.
// Complexity: O(n).
func NewGraph(n int, opts ...GraphOption) (*Graph, error) {
	if n < 0 {
		return nil, ErrBadSize
	}
	g := &Graph{
		n:          n,
		discrete:   make(map[string][]int),
		continuous: make(map[string][]float64),
	}
	for _, opt := range opts {
		opt(g)
	}

	g.out = newAdjacency(n)
	if g.directed {
		g.in = newAdjacency(n)
	}

	return g, nil
}

// newAdjacency allocates n empty ordered neighbor sets.
func newAdjacency(n int) []*treeset.Set {
	adj := make([]*treeset.Set, n)
	for v := 0; v < n; v++ {
		adj[v] = treeset.NewWithIntComparator()
	}
	return adj
}
