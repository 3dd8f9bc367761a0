package sampler

import (
	"context"
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lolog/model"
	"github.com/katalvlaran/lolog/order"
)

// frameReserve pads the row-buffer reservation beyond the expected
// ⌊rate·maxEdges⌋ sampled rows.
const frameReserve = 1000

// frameRun is the per-call state of a model-frame production run: the
// running model replaying the observed graph's growth plus the frame
// under construction.
type frameRun struct {
	s       *Sampler
	running *model.Model

	terms    []float64
	newTerms []float64
	frame    *Frame
}

// newFrameRun clones the no-tie model and pre-reserves the output
// buffers for the expected number of sampled rows.
func (s *Sampler) newFrameRun(rate float64) *frameRun {
	running := s.noTie.Clone()
	k := running.NTerms()

	rows := int(rate*float64(running.Network().MaxEdges())) + frameReserve
	frame := &Frame{
		Outcome: make([]int, 0, rows),
		Samples: make([][]float64, k),
	}
	for m := 0; m < k; m++ {
		frame.Samples[m] = make([]float64, 0, rows)
	}

	return &frameRun{
		s:        s,
		running:  running,
		terms:    make([]float64, k),
		newTerms: make([]float64, k),
		frame:    frame,
	}
}

// observe advances the running model through one dyad of the observed
// graph's growth. When the dyad is sampled, a frame row is emitted:
// the observed outcome plus the proposed Δ vector. Sampled or not, the
// running model is committed to the observed state so it keeps
// tracking the observed graph. A dyad the observed graph has is
// toggled on every visit, so a repeated dyad in an edge-order list
// removes it again from the running graph.
func (fr *frameRun) observe(vertex, alter int, vertOrder []int, pos int, sampled bool) error {
	hasEdge := fr.s.obs.Network().HasEdge(vertex, alter)

	if !sampled {
		if hasEdge {
			fr.running.DyadUpdate(vertex, alter, vertOrder, pos)
			return fr.running.Network().Toggle(vertex, alter)
		}

		return nil
	}

	fr.running.StatisticsInto(fr.terms)
	fr.running.DyadUpdate(vertex, alter, vertOrder, pos)
	fr.running.StatisticsInto(fr.newTerms)

	outcome := 0
	if hasEdge {
		if err := fr.running.Network().Toggle(vertex, alter); err != nil {
			return err
		}
		outcome = 1
	} else {
		fr.running.Rollback()
	}

	fr.frame.Outcome = append(fr.frame.Outcome, outcome)
	for k := range fr.terms {
		fr.frame.Samples[k] = append(fr.frame.Samples[k], fr.newTerms[k]-fr.terms[k])
	}

	return nil
}

// hasSelfPair reports whether any dyad i has heads[i] == tails[i].
func hasSelfPair(heads, tails []int) bool {
	for i := range heads {
		if heads[i] == tails[i] {
			return true
		}
	}

	return false
}

// checkRate validates a downsample rate in [0,1].
func checkRate(rate float64) error {
	if rate < 0 || rate > 1 {
		return fmt.Errorf("sampler: downsampleRate %v: %w", rate, ErrBadRate)
	}

	return nil
}

// ModelFrameGivenOrder replays the observed graph along the given
// visitation order and emits one frame row per sampled dyad: the
// observed outcome and the per-term change statistics, in visitation
// order. Each vertex pair is sampled independently with probability
// downsampleRate (on directed graphs one draw covers both arcs of the
// pair); unsampled dyads still commit the observed state so
// the running model reaches the observed graph.
//
// Cancellation is honored between outer steps.
// Complexity: O(n² · termUpdate).
func (s *Sampler) ModelFrameGivenOrder(ctx context.Context, downsampleRate float64, vertOrder []int) (*Frame, error) {
	if err := checkRate(downsampleRate); err != nil {
		return nil, err
	}
	if err := s.checkPermutation(vertOrder); err != nil {
		return nil, err
	}

	fr := s.newFrameRun(downsampleRate)
	g := fr.running.Network()
	n := g.Size()
	directed := g.IsDirected()

	working := append([]int(nil), vertOrder...)
	for i := 0; i < n; i++ {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		vertex := working[i]
		if err := order.PartialShuffle(working, i, s.rng); err != nil {
			return nil, err
		}

		for j := 0; j < i; j++ {
			alter := working[j]
			// One downsample draw covers both directions of the pair.
			sampled := s.rng.Float64() < downsampleRate

			if g.HasEdge(vertex, alter) {
				return nil, fmt.Errorf("sampler: dyad (%d,%d): %w", vertex, alter, ErrEdgeExists)
			}
			if err := fr.observe(vertex, alter, vertOrder, i, sampled); err != nil {
				return nil, err
			}

			if directed {
				if g.HasEdge(alter, vertex) {
					return nil, fmt.Errorf("sampler: dyad (%d,%d): %w", alter, vertex, ErrEdgeExists)
				}
				if err := fr.observe(alter, vertex, vertOrder, i, sampled); err != nil {
					return nil, err
				}
			}
		}
	}

	return fr.frame, nil
}

// ModelFrameGivenEdgeOrder is the frame producer over a prebuilt dyad
// list (tails[i],heads[i]) walked in order. A visitation order is
// sampled for order-dependent terms; the actor index passed to terms
// is the real position of the tail in that order. Duplicate dyads are
// tolerated: a revisit of a committed edge proposes its removal.
//
// Cancellation is honored between dyads.
func (s *Sampler) ModelFrameGivenEdgeOrder(ctx context.Context, downsampleRate float64, heads, tails []int) (*Frame, error) {
	if err := checkRate(downsampleRate); err != nil {
		return nil, err
	}
	if err := s.checkDyadList(heads, tails); err != nil {
		return nil, err
	}

	fr := s.newFrameRun(downsampleRate)
	g := fr.running.Network()
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

	directed := g.IsDirected()
	for i := range heads {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		vertex, alter := tails[i], heads[i]
		sampled := s.rng.Float64() < downsampleRate
		if err = fr.observe(vertex, alter, vertOrder, pos[vertex], sampled); err != nil {
			return nil, err
		}
		if directed {
			if err = fr.observe(alter, vertex, vertOrder, pos[vertex], sampled); err != nil {
				return nil, err
			}
		}
	}

	return fr.frame, nil
}

// VariationalModelFrame produces nOrders independent frames, each
// along a freshly sampled visitation order.
func (s *Sampler) VariationalModelFrame(ctx context.Context, nOrders int, downsampleRate float64) ([]*Frame, error) {
	frames := make([]*Frame, 0, nOrders)
	for i := 0; i < nOrders; i++ {
		vertOrder, err := s.sampleOrder()
		if err != nil {
			return nil, err
		}
		frame, err := s.ModelFrameGivenOrder(ctx, downsampleRate, vertOrder)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return frames, nil
}

// VariationalModelFrameUnconstrained produces nOrders frames in
// edge-permutation mode over a candidate list seeded with the observed
// edges and padded with random distinct pairs up to ⌊e·truncRate⌋
// dyads. truncRate must lie in (0,1].
//
// Heads and tails are shuffled independently each round: the seeded
// observed-edge endpoints deliberately do not survive as pairs, only
// their marginal endpoint distribution is preserved. Estimators are
// calibrated against exactly this candidate law.
func (s *Sampler) VariationalModelFrameUnconstrained(ctx context.Context, nOrders int, downsampleRate, truncRate float64) ([]*Frame, error) {
	if truncRate <= 0 || truncRate > 1 {
		return nil, fmt.Errorf("sampler: truncRate %v: %w", truncRate, ErrBadRate)
	}

	g := s.obs.Network()
	target := int(float64(g.MaxEdges()) * truncRate)

	edges := g.Edgelist()
	permHeads := make([]int, 0, target)
	permTails := make([]int, 0, target)
	for _, e := range edges {
		permHeads = append(permHeads, e[0])
		permTails = append(permTails, e[1])
	}

	frames := make([]*Frame, 0, nOrders)
	for i := 0; i < nOrders; i++ {
		if pad := target - len(permHeads); pad > 0 {
			h, t := s.randomDyads(pad)
			permHeads = append(permHeads, h...)
			permTails = append(permTails, t...)
		}

		if err := order.PartialShuffle(permHeads, len(permHeads), s.rng); err != nil {
			return nil, err
		}
		if err := order.PartialShuffle(permTails, len(permTails), s.rng); err != nil {
			return nil, err
		}
		// Independent shuffles can align a vertex with itself; re-deal
		// tails until every dyad has distinct endpoints.
		for attempt := 0; attempt < 64 && hasSelfPair(permHeads, permTails); attempt++ {
			if err := order.PartialShuffle(permTails, len(permTails), s.rng); err != nil {
				return nil, err
			}
		}

		frame, err := s.ModelFrameGivenEdgeOrder(ctx, downsampleRate, permHeads, permTails)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return frames, nil
}

// VariationalModelFrameWithFunc produces nOrders frames with the
// visitation orders supplied by an external callback.
// Returns ErrNilOrderFunc on a nil callback.
func (s *Sampler) VariationalModelFrameWithFunc(ctx context.Context, nOrders int, downsampleRate float64, orderFn func() ([]int, error)) ([]*Frame, error) {
	if orderFn == nil {
		return nil, ErrNilOrderFunc
	}

	frames := make([]*Frame, 0, nOrders)
	for i := 0; i < nOrders; i++ {
		vertOrder, err := orderFn()
		if err != nil {
			return nil, err
		}
		frame, err := s.ModelFrameGivenOrder(ctx, downsampleRate, vertOrder)
		if err != nil {
			return nil, err
		}
		frames = append(frames, frame)
	}

	return frames, nil
}
