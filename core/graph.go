package core

import "github.com/emirpasic/gods/sets/treeset"

// Size returns the number of vertices.
// Complexity: O(1).
func (g *Graph) Size() int { return g.n }

// IsDirected reports whether edges are ordered pairs.
// Complexity: O(1).
func (g *Graph) IsDirected() bool { return g.directed }

// NumEdges returns the current number of edges.
// Complexity: O(1).
func (g *Graph) NumEdges() int { return g.numEdges }

// MaxEdges returns the number of distinct dyads:
// n(n-1) when directed, n(n-1)/2 otherwise.
// Complexity: O(1).
func (g *Graph) MaxEdges() int {
	e := g.n * (g.n - 1)
	if !g.directed {
		e /= 2
	}
	return e
}

// inRange reports whether v is a valid vertex index.
func (g *Graph) inRange(v int) bool { return v >= 0 && v < g.n }

// HasEdge reports whether the dyad (u,v) is present. Symmetric for
// undirected graphs. Out-of-range indices report false.
// Complexity: O(log d).
func (g *Graph) HasEdge(u, v int) bool {
	if !g.inRange(u) || !g.inRange(v) || u == v {
		return false
	}
	return g.out[u].Contains(v)
}

// Toggle flips the dyad (u,v): the edge is added if absent, removed if
// present. Toggle is its own inverse.
// Returns ErrVertexRange or ErrSelfLoop on invalid endpoints.
// Complexity: O(log d).
func (g *Graph) Toggle(u, v int) error {
	if !g.inRange(u) || !g.inRange(v) {
		return ErrVertexRange
	}
	if u == v {
		return ErrSelfLoop
	}

	if g.out[u].Contains(v) {
		g.out[u].Remove(v)
		if g.directed {
			g.in[v].Remove(u)
		} else {
			g.out[v].Remove(u)
		}
		g.numEdges--

		return nil
	}

	g.out[u].Add(v)
	if g.directed {
		g.in[v].Add(u)
	} else {
		g.out[v].Add(u)
	}
	g.numEdges++

	return nil
}

// Neighbors returns v's neighbors in ascending order
// (out-neighbors when directed).
// Complexity: O(d).
func (g *Graph) Neighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	return setToSlice(g.out[v])
}

// InNeighbors returns v's in-neighbors in ascending order.
// For undirected graphs this equals Neighbors.
// Complexity: O(d).
func (g *Graph) InNeighbors(v int) []int {
	if !g.inRange(v) {
		return nil
	}
	if !g.directed {
		return setToSlice(g.out[v])
	}
	return setToSlice(g.in[v])
}

// Degree returns the neighbor count of v (out-degree when directed).
// Out-of-range indices report 0.
// Complexity: O(1).
func (g *Graph) Degree(v int) int {
	if !g.inRange(v) {
		return 0
	}
	return g.out[v].Size()
}

// InDegree returns the in-neighbor count of v.
// For undirected graphs this equals Degree.
// Complexity: O(1).
func (g *Graph) InDegree(v int) int {
	if !g.inRange(v) {
		return 0
	}
	if !g.directed {
		return g.out[v].Size()
	}
	return g.in[v].Size()
}

// SharedNeighbors returns the number of w adjacent to both u and v
// (out-neighbors on directed graphs). The smaller neighbor set is
// scanned against the larger.
// Complexity: O(min(dᵤ,dᵥ)·log max(dᵤ,dᵥ)).
func (g *Graph) SharedNeighbors(u, v int) int {
	if !g.inRange(u) || !g.inRange(v) {
		return 0
	}
	small, large := g.out[u], g.out[v]
	if small.Size() > large.Size() {
		small, large = large, small
	}

	shared := 0
	it := small.Iterator()
	for it.Next() {
		if large.Contains(it.Value().(int)) {
			shared++
		}
	}

	return shared
}

// Edgelist returns each edge exactly once: (tail,head) pairs for
// directed graphs, {min,max} pairs for undirected. Pairs are emitted
// in ascending order of the first endpoint, then the second.
// Complexity: O(n + |E|).
func (g *Graph) Edgelist() [][2]int {
	edges := make([][2]int, 0, g.numEdges)
	for u := 0; u < g.n; u++ {
		it := g.out[u].Iterator()
		for it.Next() {
			v := it.Value().(int)
			if !g.directed && v < u {
				continue // undirected edge already emitted from v's side
			}
			edges = append(edges, [2]int{u, v})
		}
	}

	return edges
}

// RemoveEdges deletes every edge, keeping vertices and attributes.
// Complexity: O(n).
func (g *Graph) RemoveEdges() {
	g.out = newAdjacency(g.n)
	if g.directed {
		g.in = newAdjacency(g.n)
	}
	g.numEdges = 0
}

// Clone returns a deep copy: adjacency and attribute vectors are
// duplicated, so mutations of the clone never touch the original.
// Complexity: O(n + |E| log d).
func (g *Graph) Clone() *Graph {
	c := &Graph{
		n:          g.n,
		directed:   g.directed,
		numEdges:   g.numEdges,
		out:        cloneAdjacency(g.out),
		discrete:   make(map[string][]int, len(g.discrete)),
		continuous: make(map[string][]float64, len(g.continuous)),
	}
	if g.directed {
		c.in = cloneAdjacency(g.in)
	}
	for name, vals := range g.discrete {
		c.discrete[name] = append([]int(nil), vals...)
	}
	for name, vals := range g.continuous {
		c.continuous[name] = append([]float64(nil), vals...)
	}

	return c
}

// cloneAdjacency deep-copies a slice of ordered neighbor sets.
func cloneAdjacency(adj []*treeset.Set) []*treeset.Set {
	c := make([]*treeset.Set, len(adj))
	for v, set := range adj {
		c[v] = treeset.NewWithIntComparator()
		it := set.Iterator()
		for it.Next() {
			c[v].Add(it.Value())
		}
	}
	return c
}

// setToSlice materializes an ordered neighbor set as an []int.
func setToSlice(set *treeset.Set) []int {
	out := make([]int, 0, set.Size())
	it := set.Iterator()
	for it.Next() {
		out = append(out, it.Value().(int))
	}
	return out
}
