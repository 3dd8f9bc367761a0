package terms

import (
	"math"

	"github.com/katalvlaran/lolog/core"
	"github.com/katalvlaran/lolog/model"
)

// PreferentialAttachment is an order-dependent statistic: the delta
// for adding dyad (vertex, alter) while order[0..pos] has been placed
// is log((1+deg(alter)) / max(1,pos)) — the log relative propensity
// of attaching to alter given its degree among the pos vertices
// already placed. Positive θ on this term reproduces rich-get-richer
// growth; θ=0 recovers uniform attachment.
//
// Because the statistic accumulates over the growth history, a fresh
// Initialize resets the accumulator to zero rather than recomputing a
// graph-level value: there is no history-free closed form on a static
// graph. Consumers comparing generated statistics against a fresh
// initialization must restrict themselves to order-independent terms.
type PreferentialAttachment struct {
	g         *core.Graph
	value     float64
	lastDelta float64
}

// NewPreferentialAttachment returns an uninitialized
// preferential-attachment term.
func NewPreferentialAttachment() *PreferentialAttachment {
	return &PreferentialAttachment{}
}

// Name implements model.Term.
func (t *PreferentialAttachment) Name() string { return "preferentialAttachment" }

// Initialize implements model.Term. Resets the accumulator.
func (t *PreferentialAttachment) Initialize(g *core.Graph) {
	t.g = g
	t.value = 0
	t.lastDelta = 0
}

// Value implements model.Term.
func (t *PreferentialAttachment) Value() float64 { return t.value }

// DyadUpdate implements model.Term.
//
// deg(alter) is read from the pre-flip graph. Removing an existing
// edge subtracts the log-propensity it would carry at the current
// position, so an immediate re-add at the same position is a no-op.
func (t *PreferentialAttachment) DyadUpdate(u, v int, _ []int, pos int) {
	placed := float64(pos)
	if placed < 1 {
		placed = 1
	}

	var delta float64
	if t.g.HasEdge(u, v) {
		delta = -math.Log(float64(t.g.Degree(v)) / placed)
	} else {
		delta = math.Log(float64(1+t.g.Degree(v)) / placed)
	}
	t.value += delta
	t.lastDelta = delta
}

// Rollback implements model.Term.
func (t *PreferentialAttachment) Rollback() {
	t.value -= t.lastDelta
	t.lastDelta = 0
}

// Clone implements model.Term.
func (t *PreferentialAttachment) Clone() model.Term {
	c := *t
	return &c
}

// IsDyadIndependent implements model.Term.
func (t *PreferentialAttachment) IsDyadIndependent() bool { return false }

// IsOrderIndependent implements model.Term.
func (t *PreferentialAttachment) IsOrderIndependent() bool { return false }
