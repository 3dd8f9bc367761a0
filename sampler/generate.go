package sampler

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lolog/core"
	"github.com/katalvlaran/lolog/model"
	"github.com/katalvlaran/lolog/order"
)

// growth is the per-call state of a generation run: the running model
// grown from the empty graph plus the statistic bookkeeping shared by
// the node-sequential and edge-permutation modes.
type growth struct {
	s       *Sampler
	running *model.Model

	terms    []float64 // statistic vector of the committed running graph
	newTerms []float64 // scratch: statistics after the proposed flip
	stats    []float64 // realized statistics relative to the empty graph
	eStats   []float64 // Σ Δ·p, the Rao–Blackwellised expectation
	empty    []float64 // term values on the empty graph
}

// newGrowth clones the no-tie model and zeroes the accumulators.
func (s *Sampler) newGrowth() *growth {
	running := s.noTie.Clone()
	k := running.NTerms()

	return &growth{
		s:        s,
		running:  running,
		terms:    running.Statistics(),
		newTerms: make([]float64, k),
		stats:    make([]float64, k),
		eStats:   make([]float64, k),
		empty:    running.Statistics(),
	}
}

// propose runs the propose-accept-bookkeep cycle for one dyad: compute
// the log-likelihood change of flipping (vertex,alter), Bernoulli-draw
// against the logistic probability, commit the toggle or roll back,
// and fold the change vector into the accumulators. When change is
// non-nil the Δ vector is written into it.
//
// Returns whether the proposed flip was committed (for a flip that
// removes a present edge, true means the dyad ended up absent), and
// ErrNonFinite when a
// term produced a non-finite log-likelihood change.
func (gr *growth) propose(vertex, alter int, vertOrder []int, pos int, change []float64) (bool, error) {
	llik := gr.running.LogLik()
	gr.running.DyadUpdate(vertex, alter, vertOrder, pos)
	gr.running.StatisticsInto(gr.newTerms)

	llikChange := gr.running.LogLik() - llik
	if !finite(llikChange) {
		return false, fmt.Errorf("sampler: dyad (%d,%d): %w", vertex, alter, ErrNonFinite)
	}
	probTie := logistic(llikChange)

	hasEdge := false
	if gr.s.rng.Float64() < probTie {
		if err := gr.running.Network().Toggle(vertex, alter); err != nil {
			return false, err
		}
		hasEdge = true
	} else {
		gr.running.Rollback()
	}

	for m := range gr.terms {
		diff := gr.newTerms[m] - gr.terms[m]
		gr.eStats[m] += diff * probTie
		if change != nil {
			change[m] = diff
		}
		if hasEdge {
			gr.stats[m] += diff
			gr.terms[m] += diff
		}
	}

	return hasEdge, nil
}

// result stamps the visitation order onto the generated graph and
// assembles the GenResult.
func (gr *growth) result(vertOrder []int, changeStats [][]float64) (*GenResult, error) {
	g := gr.running.Network()
	if err := g.SetDiscreteAttribute(core.OrderAttribute, inversePermutation(vertOrder)); err != nil {
		return nil, err
	}

	return &GenResult{
		Network:           g,
		EmptyNetworkStats: gr.empty,
		Stats:             gr.stats,
		ExpectedStats:     gr.eStats,
		ChangeStats:       changeStats,
	}, nil
}

// GenerateNetwork simulates one network from the model, sampling the
// visitation order internally.
func (s *Sampler) GenerateNetwork(ctx context.Context) (*GenResult, error) {
	vertOrder, err := s.sampleOrder()
	if err != nil {
		return nil, err
	}

	return s.GenerateNetworkWithOrder(ctx, vertOrder, false)
}

// GenerateNetworkReturnChanges simulates one network and additionally
// records the per-dyad change vectors at their canonical indices.
func (s *Sampler) GenerateNetworkReturnChanges(ctx context.Context) (*GenResult, error) {
	vertOrder, err := s.sampleOrder()
	if err != nil {
		return nil, err
	}

	return s.GenerateNetworkWithOrder(ctx, vertOrder, true)
}

// GenerateNetworkWithOrder runs node-sequential generation along the
// given visitation order.
//
// At outer step i the already-placed vertices (positions 0..i-1 of a
// working copy) are re-shuffled, so alters are revisited in random
// order; the history terms observe is the original vertOrder. Vertex
// vertOrder[i] is joined against each already-placed alter: the
// dyad is Bernoulli-drawn from the logistic of the log-likelihood
// change. When storeChangeStats is set, Δ vectors land at the
// canonical dyad index: i(i-1)/2+j undirected, i(i-1)+2j and
// i(i-1)+2j+1 directed.
//
// Cancellation is honored between outer steps.
// Complexity: O(n² · termUpdate).
func (s *Sampler) GenerateNetworkWithOrder(ctx context.Context, vertOrder []int, storeChangeStats bool) (*GenResult, error) {
	if err := s.checkPermutation(vertOrder); err != nil {
		return nil, err
	}

	gr := s.newGrowth()
	g := gr.running.Network()
	n := g.Size()
	directed := g.IsDirected()
	k := gr.running.NTerms()

	var changeStats [][]float64
	if storeChangeStats {
		changeStats = make([][]float64, g.MaxEdges())
	}

	s.log.WithFields(logrus.Fields{
		"n": n, "terms": k, "directed": directed,
	}).Debug("sampler: node-sequential generation")

	working := append([]int(nil), vertOrder...)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vertex := working[i]
		// Randomize the order already-placed vertices are revisited as
		// alters; working[i:] and the history passed to terms stay fixed.
		if err := order.PartialShuffle(working, i, s.rng); err != nil {
			return nil, err
		}

		for j := 0; j < i; j++ {
			alter := working[j]
			if g.HasEdge(vertex, alter) {
				return nil, fmt.Errorf("sampler: dyad (%d,%d): %w", vertex, alter, ErrEdgeExists)
			}

			var change []float64
			if storeChangeStats {
				change = make([]float64, k)
			}
			if _, err := gr.propose(vertex, alter, vertOrder, i, change); err != nil {
				return nil, err
			}
			if storeChangeStats {
				if directed {
					changeStats[i*(i-1)+2*j] = change
				} else {
					changeStats[i*(i-1)/2+j] = change
				}
			}

			if directed {
				if g.HasEdge(alter, vertex) {
					return nil, fmt.Errorf("sampler: dyad (%d,%d): %w", alter, vertex, ErrEdgeExists)
				}
				var changeRev []float64
				if storeChangeStats {
					changeRev = make([]float64, k)
				}
				if _, err := gr.propose(alter, vertex, vertOrder, i, changeRev); err != nil {
					return nil, err
				}
				if storeChangeStats {
					changeStats[i*(i-1)+2*j+1] = changeRev
				}
			}
		}
	}

	return gr.result(vertOrder, changeStats)
}

// GenerateNetworkUnconstrained simulates over a rejection-sampled
// candidate dyad list of ⌊e·truncRate⌋ random distinct pairs walked in
// edge order — the truncated LOLOG variant. truncRate must lie in
// (0,1].
func (s *Sampler) GenerateNetworkUnconstrained(ctx context.Context, truncRate float64) (*GenResult, error) {
	if truncRate <= 0 || truncRate > 1 {
		return nil, fmt.Errorf("sampler: truncRate %v: %w", truncRate, ErrBadRate)
	}

	g := s.obs.Network()
	count := int(float64(g.MaxEdges()) * truncRate)
	heads, tails := s.randomDyads(count)

	return s.GenerateNetworkWithEdgeOrder(ctx, heads, tails)
}

// randomDyads rejection-samples count dyads with distinct uniform
// endpoints. Heads and tails may repeat dyads.
func (s *Sampler) randomDyads(count int) (heads, tails []int) {
	n := s.obs.Network().Size()
	heads = make([]int, 0, count)
	tails = make([]int, 0, count)
	if n < 2 {
		return heads, tails
	}

	for i := 0; i < count; i++ {
		u, v := s.rng.Intn(n), s.rng.Intn(n)
		for u == v {
			u, v = s.rng.Intn(n), s.rng.Intn(n)
		}
		heads = append(heads, u)
		tails = append(tails, v)
	}

	return heads, tails
}

// GenerateNetworkWithEdgeOrder simulates over a prebuilt candidate
// dyad list (tails[i],heads[i]) walked in order. A visitation order is
// still sampled for order-dependent terms to read; the actor index
// passed to terms is the real position of the tail in that order. The
// Δ vector of every visited dyad is recorded at index i.
//
// A list shorter or longer than the full dyad count is allowed (the
// truncated variant) and logged at debug level. Duplicate dyads are
// tolerated: a revisit of a committed edge proposes its removal.
//
// Cancellation is honored between dyads.
func (s *Sampler) GenerateNetworkWithEdgeOrder(ctx context.Context, heads, tails []int) (*GenResult, error) {
	if err := s.checkDyadList(heads, tails); err != nil {
		return nil, err
	}

	gr := s.newGrowth()
	g := gr.running.Network()
	if e := g.MaxEdges(); len(heads) != e {
		s.log.WithFields(logrus.Fields{
			"dyads": len(heads), "full": e,
		}).Debug("sampler: dyad list differs from full dyad count; expected for truncated runs")
	}

	vertOrder, err := s.sampleOrder()
	if err != nil {
		return nil, err
	}
	pos := inversePermutation(vertOrder)

	k := gr.running.NTerms()
	changeStats := make([][]float64, len(heads))
	for i := range heads {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		vertex, alter := tails[i], heads[i]
		change := make([]float64, k)
		if _, err = gr.propose(vertex, alter, vertOrder, pos[vertex], change); err != nil {
			return nil, err
		}
		changeStats[i] = change
	}

	return gr.result(vertOrder, changeStats)
}
