package terms

import (
	"github.com/katalvlaran/lolog/core"
	"github.com/katalvlaran/lolog/model"
)

// NodeCov sums a continuous vertex covariate over edge endpoints:
// Σ_{(u,v)∈E} x[u]+x[v]. Dyad-independent and order-independent.
//
// The covariate is read from the graph's continuous attribute store at
// Initialize time; a missing attribute is a programmer error and
// panics with the attribute name.
type NodeCov struct {
	attr      string
	g         *core.Graph
	x         []float64
	value     float64
	lastDelta float64
}

// NewNodeCov returns a nodal covariate term reading the named
// continuous attribute. Panics on an empty name.
func NewNodeCov(attr string) *NodeCov {
	if attr == "" {
		panic("terms: NewNodeCov(\"\")")
	}

	return &NodeCov{attr: attr}
}

// Name implements model.Term.
func (t *NodeCov) Name() string { return "nodeCov." + t.attr }

// Initialize implements model.Term.
//
// Complexity: O(n + |E|).
func (t *NodeCov) Initialize(g *core.Graph) {
	x, err := g.ContinuousAttribute(t.attr)
	if err != nil {
		panic("terms: nodeCov attribute " + t.attr + " not set on graph")
	}
	t.g = g
	t.x = x
	t.lastDelta = 0

	total := 0.0
	for _, e := range g.Edgelist() {
		total += x[e[0]] + x[e[1]]
	}
	t.value = total
}

// Value implements model.Term.
func (t *NodeCov) Value() float64 { return t.value }

// DyadUpdate implements model.Term.
func (t *NodeCov) DyadUpdate(u, v int, _ []int, _ int) {
	delta := t.x[u] + t.x[v]
	if t.g.HasEdge(u, v) {
		delta = -delta
	}
	t.value += delta
	t.lastDelta = delta
}

// Rollback implements model.Term.
func (t *NodeCov) Rollback() {
	t.value -= t.lastDelta
	t.lastDelta = 0
}

// Clone implements model.Term.
func (t *NodeCov) Clone() model.Term {
	c := *t
	c.x = append([]float64(nil), t.x...)

	return &c
}

// IsDyadIndependent implements model.Term.
func (t *NodeCov) IsDyadIndependent() bool { return true }

// IsOrderIndependent implements model.Term.
func (t *NodeCov) IsOrderIndependent() bool { return true }
