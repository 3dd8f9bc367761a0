// Package sampler types, options, and sentinel errors.
//
// Contract (strict):
//   - Options are functional (type SamplerOption func(*Sampler)).
//   - Option constructors VALIDATE and PANIC on meaningless inputs;
//     sampler methods themselves never panic, they return errors.
//   - Determinism is explicit: seeding is done via WithSeed or WithRand.
//   - No hidden globals; all randomness flows through the Sampler's RNG.
package sampler

import (
	"errors"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lolog/core"
	"github.com/katalvlaran/lolog/order"
)

// Sentinel errors for sampler operations.
var (
	// ErrNilModel indicates a nil model passed to NewSampler.
	ErrNilModel = errors.New("sampler: model must not be nil")

	// ErrPermLength indicates a vertex-order or dyad-list vector of the
	// wrong length.
	ErrPermLength = errors.New("sampler: permutation has wrong length")

	// ErrNotPermutation indicates a vertex order that is not a
	// permutation of {0..n-1}.
	ErrNotPermutation = errors.New("sampler: vertex order is not a permutation")

	// ErrVertexRange indicates a head, tail, or order entry outside
	// {0..n-1}, or a dyad whose endpoints coincide.
	ErrVertexRange = errors.New("sampler: vertex index out of range")

	// ErrBadRate indicates a downsample rate outside [0,1] or a
	// truncation rate outside (0,1].
	ErrBadRate = errors.New("sampler: rate out of range")

	// ErrEdgeExists indicates a proposed add on a dyad already present
	// in the running graph; a term or graph invariant is broken.
	ErrEdgeExists = errors.New("sampler: dyad already present in running graph")

	// ErrNonFinite indicates a non-finite log-likelihood change; a term
	// returned NaN or infinity.
	ErrNonFinite = errors.New("sampler: non-finite log-likelihood change")

	// ErrNilOrderFunc indicates a nil vertex-ordering callback.
	ErrNilOrderFunc = errors.New("sampler: ordering function must not be nil")
)

// SamplerOption customizes a Sampler at construction time.
type SamplerOption func(*Sampler)

// WithSeed seeds the sampler's RNG deterministically (seed==0 maps to
// a fixed default stream). Prefer this for reproducible runs.
func WithSeed(seed int64) SamplerOption {
	return func(s *Sampler) { s.rng = order.NewRand(seed) }
}

// WithRand provides an explicit RNG, e.g. an order.DeriveRand stream
// for a parallel worker. Panics on nil.
func WithRand(r *rand.Rand) SamplerOption {
	if r == nil {
		panic("sampler: WithRand(nil)")
	}

	return func(s *Sampler) { s.rng = r }
}

// WithLogger attaches a logger for non-fatal diagnostics (truncated
// dyad-list notices, debug traces). Panics on nil.
func WithLogger(l *logrus.Logger) SamplerOption {
	if l == nil {
		panic("sampler: WithLogger(nil)")
	}

	return func(s *Sampler) { s.log = l }
}

// GenResult is the output of a generation call.
type GenResult struct {
	// Network is the generated graph, carrying the core.OrderAttribute
	// discrete attribute: each vertex's rank in the visitation order.
	Network *core.Graph

	// EmptyNetworkStats are the term values on the empty graph.
	EmptyNetworkStats []float64

	// Stats are the realized statistics accumulated over accepted dyads
	// (generated-graph statistics relative to EmptyNetworkStats).
	Stats []float64

	// ExpectedStats is Σ Δ·p over all visited dyads, a
	// Rao–Blackwellised expectation of Stats.
	ExpectedStats []float64

	// ChangeStats holds the per-dyad change vectors at their canonical
	// dyad indices; nil unless requested.
	ChangeStats [][]float64
}

// Frame is a model frame: one row per sampled dyad, in visitation
// order. Outcome[i] is 1 when the observed graph has the dyad.
// Samples[k][i] is term k's proposed change statistic for row i; all
// inner lengths equal len(Outcome).
type Frame struct {
	Outcome []int
	Samples [][]float64
}
