package terms

import (
	"github.com/katalvlaran/lolog/core"
	"github.com/katalvlaran/lolog/model"
)

// Triangles counts closed triads. On undirected graphs this is the
// plain triangle count; on directed graphs it counts transitive
// triads (u→v, u→w, v→w), each exactly once.
type Triangles struct {
	g         *core.Graph
	value     float64
	lastDelta float64
}

// NewTriangles returns an uninitialized triangle term.
func NewTriangles() *Triangles { return &Triangles{} }

// Name implements model.Term.
func (t *Triangles) Name() string { return "triangles" }

// Initialize implements model.Term.
//
// Complexity: O(|E| · d log d).
func (t *Triangles) Initialize(g *core.Graph) {
	t.g = g
	t.lastDelta = 0

	// Summing shared out-neighbors over edges counts each undirected
	// triangle three times and each transitive triad exactly once.
	total := 0.0
	for _, e := range g.Edgelist() {
		total += float64(g.SharedNeighbors(e[0], e[1]))
	}
	if !g.IsDirected() {
		total /= 3
	}
	t.value = total
}

// Value implements model.Term.
func (t *Triangles) Value() float64 { return t.value }

// DyadUpdate implements model.Term.
//
// The delta is the number of triads the flipped dyad opens or closes,
// computed from the pre-flip graph: shared neighbors on undirected
// graphs; for directed graphs the three transitive roles of u→v
// (base, first leg, closing leg) are counted separately.
func (t *Triangles) DyadUpdate(u, v int, _ []int, _ int) {
	var closed float64
	if t.g.IsDirected() {
		outU, inU := t.g.Neighbors(u), t.g.InNeighbors(u)
		outV, inV := t.g.Neighbors(v), t.g.InNeighbors(v)
		closed = float64(intersectCount(outU, outV) +
			intersectCount(outU, inV) +
			intersectCount(inU, inV))
	} else {
		closed = float64(t.g.SharedNeighbors(u, v))
	}

	delta := closed
	if t.g.HasEdge(u, v) {
		delta = -closed
	}
	t.value += delta
	t.lastDelta = delta
}

// Rollback implements model.Term.
func (t *Triangles) Rollback() {
	t.value -= t.lastDelta
	t.lastDelta = 0
}

// Clone implements model.Term.
func (t *Triangles) Clone() model.Term {
	c := *t
	return &c
}

// IsDyadIndependent implements model.Term.
func (t *Triangles) IsDyadIndependent() bool { return false }

// IsOrderIndependent implements model.Term.
func (t *Triangles) IsOrderIndependent() bool { return true }

// intersectCount returns |a ∩ b| for ascending-sorted slices.
// Complexity: O(len(a)+len(b)).
func intersectCount(a, b []int) int {
	count, i, j := 0, 0, 0
	for i < len(a) && j < len(b) {
		switch {
		case a[i] < b[j]:
			i++
		case a[i] > b[j]:
			j++
		default:
			count++
			i++
			j++
		}
	}

	return count
}
