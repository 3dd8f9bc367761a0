package model

import (
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/lolog/core"
)

// Model references a graph, an ordered list of terms, a parameter
// vector θ, and an optional partial vertex order. After construction
// and after every committed toggle or rollback the term values are
// consistent with the graph.
type Model struct {
	g           *core.Graph
	terms       []Term
	thetas      []float64
	vertexOrder []int // nil when unordered

	statsBuf []float64 // scratch for LogLik
}

// NewModel binds g, terms, and θ into a Model and computes all term
// values from scratch. The terms slice and θ are copied; the term
// objects themselves become owned by the model.
//
// Returns ErrNilGraph, ErrNoTerms, ErrThetaLength, or ErrOrderLength.
// Complexity: dominated by term initialization.
func NewModel(g *core.Graph, terms []Term, thetas []float64, opts ...ModelOption) (*Model, error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if len(terms) == 0 {
		return nil, ErrNoTerms
	}
	if len(thetas) != len(terms) {
		return nil, ErrThetaLength
	}

	m := &Model{
		g:        g,
		terms:    append([]Term(nil), terms...),
		thetas:   append([]float64(nil), thetas...),
		statsBuf: make([]float64, len(terms)),
	}
	for _, opt := range opts {
		opt(m)
	}
	if m.vertexOrder != nil && len(m.vertexOrder) != g.Size() {
		return nil, ErrOrderLength
	}

	m.Calculate()

	return m, nil
}

// Network returns the model's graph.
func (m *Model) Network() *core.Graph { return m.g }

// SetNetwork rebinds the model to g and recomputes every term.
// Returns ErrNilGraph on nil input.
func (m *Model) SetNetwork(g *core.Graph) error {
	if g == nil {
		return ErrNilGraph
	}
	m.g = g
	m.Calculate()

	return nil
}

// Calculate recomputes every term from scratch on the current graph.
// Used after SetNetwork and by tests as the slow-path reference.
func (m *Model) Calculate() {
	for _, t := range m.terms {
		t.Initialize(m.g)
	}
}

// NTerms returns the number of terms.
func (m *Model) NTerms() int { return len(m.terms) }

// TermNames returns the term names in model order.
func (m *Model) TermNames() []string {
	names := make([]string, len(m.terms))
	for k, t := range m.terms {
		names[k] = t.Name()
	}

	return names
}

// SetThetas replaces the parameter vector.
// Returns ErrThetaLength when len(thetas) != NTerms().
func (m *Model) SetThetas(thetas []float64) error {
	if len(thetas) != len(m.terms) {
		return ErrThetaLength
	}
	copy(m.thetas, thetas)

	return nil
}

// Thetas returns a copy of the parameter vector.
func (m *Model) Thetas() []float64 {
	return append([]float64(nil), m.thetas...)
}

// Statistics returns the current statistic vector as a fresh slice.
// Complexity: O(k).
func (m *Model) Statistics() []float64 {
	stats := make([]float64, len(m.terms))
	m.StatisticsInto(stats)

	return stats
}

// StatisticsInto writes the current statistic vector into dst, which
// must have length NTerms(). Allocation-free variant for hot loops.
func (m *Model) StatisticsInto(dst []float64) {
	for k, t := range m.terms {
		dst[k] = t.Value()
	}
}

// LogLik returns θ·stats for the current statistic vector.
// Complexity: O(k).
func (m *Model) LogLik() float64 {
	m.StatisticsInto(m.statsBuf)

	return floats.Dot(m.thetas, m.statsBuf)
}

// DyadUpdate proposes the flip of dyad (u,v) on every term, given the
// committed visitation history order[0..pos]. The graph itself is not
// touched; the caller either toggles the dyad (commit) or calls
// Rollback. At most one proposal may be outstanding.
func (m *Model) DyadUpdate(u, v int, order []int, pos int) {
	for _, t := range m.terms {
		t.DyadUpdate(u, v, order, pos)
	}
}

// Rollback undoes the last DyadUpdate on every term.
func (m *Model) Rollback() {
	for _, t := range m.terms {
		t.Rollback()
	}
}

// HasVertexOrder reports whether a partial vertex order is attached.
func (m *Model) HasVertexOrder() bool { return m.vertexOrder != nil }

// VertexOrder returns a copy of the partial vertex order, or nil.
func (m *Model) VertexOrder() []int {
	if m.vertexOrder == nil {
		return nil
	}

	return append([]int(nil), m.vertexOrder...)
}

// Clone returns a deep copy: the graph is cloned, every term is
// cloned and re-initialized on the cloned graph, and θ and the vertex
// order are copied. Mutations of the clone never touch the original.
func (m *Model) Clone() *Model {
	c := &Model{
		g:        m.g.Clone(),
		terms:    make([]Term, len(m.terms)),
		thetas:   append([]float64(nil), m.thetas...),
		statsBuf: make([]float64, len(m.terms)),
	}
	if m.vertexOrder != nil {
		c.vertexOrder = append([]int(nil), m.vertexOrder...)
	}
	for k, t := range m.terms {
		c.terms[k] = t.Clone()
	}
	c.Calculate()

	return c
}
