// Package model types, the Term contract, options, and sentinel errors.
package model

import (
	"errors"

	"github.com/katalvlaran/lolog/core"
)

// Sentinel errors for model operations.
var (
	// ErrNilGraph indicates a nil graph passed to NewModel or SetNetwork.
	ErrNilGraph = errors.New("model: graph must not be nil")

	// ErrNoTerms indicates a model constructed without any terms.
	ErrNoTerms = errors.New("model: at least one term is required")

	// ErrThetaLength indicates a θ vector whose length differs from the
	// number of terms.
	ErrThetaLength = errors.New("model: theta length must equal term count")

	// ErrOrderLength indicates a partial vertex order whose length
	// differs from the number of vertices.
	ErrOrderLength = errors.New("model: vertex order length must equal vertex count")
)

// Term is a reversible incremental network statistic.
//
// Contract:
//   - After Initialize(g), Value() equals the statistic on g.
//   - DyadUpdate(u, v, order, pos) proposes flipping dyad (u,v) given
//     that order[0..pos] is the committed visitation history; afterward
//     Value() reports the statistic as if the flip had happened. The
//     delta must be computed from the pre-toggle graph: the engine
//     toggles g only after deciding to keep the proposal.
//   - Rollback() undoes the last DyadUpdate. At most one proposal may
//     be outstanding; a second DyadUpdate before toggle-or-Rollback is
//     undefined.
//   - Clone() returns a deep copy bound to g's clone via Initialize or
//     the model's own cloning; term-internal caches must not be shared.
type Term interface {
	// Name identifies the statistic (e.g. "edges", "triangles").
	Name() string

	// Initialize computes the statistic from scratch on g and rebinds
	// the term's internal caches to g.
	Initialize(g *core.Graph)

	// Value returns the current statistic. O(1) expected.
	Value() float64

	// DyadUpdate proposes the flip of dyad (u,v). order[0..pos] is the
	// visitation history to date; order-dependent terms may consult it.
	DyadUpdate(u, v int, order []int, pos int)

	// Rollback undoes the last DyadUpdate.
	Rollback()

	// Clone returns a deep copy of the term and its caches.
	Clone() Term

	// IsDyadIndependent reports whether the term's delta for a dyad is
	// independent of the rest of the graph. Documentary.
	IsDyadIndependent() bool

	// IsOrderIndependent reports whether the term's delta ignores the
	// visitation history. Documentary.
	IsOrderIndependent() bool
}

// ModelOption configures a Model before creation.
type ModelOption func(m *Model)

// WithVertexOrder attaches a partial vertex order π: visitation orders
// sampled for this model respect π, ties broken uniformly at random.
// The slice is copied.
func WithVertexOrder(partial []int) ModelOption {
	return func(m *Model) {
		m.vertexOrder = append([]int(nil), partial...)
	}
}
