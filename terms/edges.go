package terms

import (
	"github.com/katalvlaran/lolog/core"
	"github.com/katalvlaran/lolog/model"
)

// Edges counts the edges of the graph. The delta of a dyad flip is +1
// for an add and -1 for a removal, regardless of the rest of the
// graph: the canonical dyad-independent, order-independent term.
type Edges struct {
	g         *core.Graph
	value     float64
	lastDelta float64
}

// NewEdges returns an uninitialized edge-count term.
func NewEdges() *Edges { return &Edges{} }

// Name implements model.Term.
func (t *Edges) Name() string { return "edges" }

// Initialize implements model.Term.
func (t *Edges) Initialize(g *core.Graph) {
	t.g = g
	t.value = float64(g.NumEdges())
	t.lastDelta = 0
}

// Value implements model.Term.
func (t *Edges) Value() float64 { return t.value }

// DyadUpdate implements model.Term.
func (t *Edges) DyadUpdate(u, v int, _ []int, _ int) {
	delta := 1.0
	if t.g.HasEdge(u, v) {
		delta = -1.0
	}
	t.value += delta
	t.lastDelta = delta
}

// Rollback implements model.Term.
func (t *Edges) Rollback() {
	t.value -= t.lastDelta
	t.lastDelta = 0
}

// Clone implements model.Term. The clone keeps its cached value but
// must be rebound to a graph via Initialize before further updates.
func (t *Edges) Clone() model.Term {
	c := *t
	return &c
}

// IsDyadIndependent implements model.Term.
func (t *Edges) IsDyadIndependent() bool { return true }

// IsOrderIndependent implements model.Term.
func (t *Edges) IsOrderIndependent() bool { return true }
