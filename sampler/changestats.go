package sampler

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// CalcChangeStats walks a full dyad list without acceptance sampling:
// for each dyad (tails[i],heads[i]) the change vector of the flip is
// computed on the running model grown from the empty graph, then the
// running model is committed to the observed state (toggle when the
// observed graph has the edge, rollback otherwise).
//
// heads and tails must each list all e distinct dyads of the graph;
// exactly e change vectors are returned. A sampled visitation order
// supplies the actor index for order-dependent terms.
//
// Cancellation is honored between dyads.
// Complexity: O(e · termUpdate).
func (s *Sampler) CalcChangeStats(ctx context.Context, heads, tails []int) ([][]float64, error) {
	if err := s.checkDyadList(heads, tails); err != nil {
		return nil, err
	}
	e := s.obs.Network().MaxEdges()
	if len(heads) != e {
		return nil, fmt.Errorf("sampler: got %d dyads, want all %d: %w", len(heads), e, ErrPermLength)
	}

	vertOrder, err := s.sampleOrder()
	if err != nil {
		return nil, err
	}
	pos := inversePermutation(vertOrder)

	running := s.noTie.Clone()
	g := running.Network()
	k := running.NTerms()
	stat := make([]float64, k)
	statNew := make([]float64, k)

	result := make([][]float64, e)
	for i := 0; i < e; i++ {
		if err = ctx.Err(); err != nil {
			return nil, err
		}

		vertex, alter := tails[i], heads[i]
		if g.HasEdge(vertex, alter) {
			return nil, fmt.Errorf("sampler: dyad (%d,%d): %w", vertex, alter, ErrEdgeExists)
		}

		running.StatisticsInto(stat)
		running.DyadUpdate(vertex, alter, vertOrder, pos[vertex])
		running.StatisticsInto(statNew)

		change := make([]float64, k)
		floats.SubTo(change, statNew, stat)
		result[i] = change

		if s.obs.Network().HasEdge(vertex, alter) {
			if err = g.Toggle(vertex, alter); err != nil {
				return nil, err
			}
		} else {
			running.Rollback()
		}
	}

	return result, nil
}
