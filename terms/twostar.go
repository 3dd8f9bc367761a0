package terms

import (
	"github.com/katalvlaran/lolog/core"
	"github.com/katalvlaran/lolog/model"
)

// TwoStar counts two-stars: pairs of edges sharing an endpoint.
// Undirected graphs sum C(deg(v),2) over vertices; directed graphs
// count out-two-stars, C(outdeg(v),2). Since C(d+1,2)-C(d,2)=d, the
// delta of an add is the pre-flip degree sum of the gaining endpoints.
type TwoStar struct {
	g         *core.Graph
	value     float64
	lastDelta float64
}

// NewTwoStar returns an uninitialized two-star term.
func NewTwoStar() *TwoStar { return &TwoStar{} }

// Name implements model.Term.
func (t *TwoStar) Name() string { return "twoStar" }

// Initialize implements model.Term.
func (t *TwoStar) Initialize(g *core.Graph) {
	t.g = g
	t.lastDelta = 0

	total := 0.0
	for v := 0; v < g.Size(); v++ {
		d := float64(g.Degree(v))
		total += d * (d - 1) / 2
	}
	t.value = total
}

// Value implements model.Term.
func (t *TwoStar) Value() float64 { return t.value }

// DyadUpdate implements model.Term.
func (t *TwoStar) DyadUpdate(u, v int, _ []int, _ int) {
	var delta float64
	if t.g.HasEdge(u, v) {
		// Removal: both endpoints (the tail only, when directed) lose a
		// degree that currently pairs with each of their other edges.
		delta = -float64(t.g.Degree(u) - 1)
		if !t.g.IsDirected() {
			delta -= float64(t.g.Degree(v) - 1)
		}
	} else {
		delta = float64(t.g.Degree(u))
		if !t.g.IsDirected() {
			delta += float64(t.g.Degree(v))
		}
	}
	t.value += delta
	t.lastDelta = delta
}

// Rollback implements model.Term.
func (t *TwoStar) Rollback() {
	t.value -= t.lastDelta
	t.lastDelta = 0
}

// Clone implements model.Term.
func (t *TwoStar) Clone() model.Term {
	c := *t
	return &c
}

// IsDyadIndependent implements model.Term.
func (t *TwoStar) IsDyadIndependent() bool { return false }

// IsOrderIndependent implements model.Term.
func (t *TwoStar) IsOrderIndependent() bool { return true }
