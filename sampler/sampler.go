package sampler

import (
	"fmt"
	"math"
	"math/rand"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/lolog/model"
	"github.com/katalvlaran/lolog/order"
)

// llikClamp bounds the log-likelihood change fed to the logistic so
// exp never overflows; beyond ±500 the probability is saturated anyway.
const llikClamp = 500.0

// Sampler is the latent-order likelihood engine. It owns the observed
// model (reference graph) and the no-tie model (same terms and θ on an
// emptied clone); every simulation starts from a fresh clone of the
// no-tie model.
type Sampler struct {
	obs   *model.Model
	noTie *model.Model

	rng *rand.Rand
	log *logrus.Logger
}

// NewSampler deep-copies m into the observed model, derives the no-tie
// model by emptying a second clone, and applies the options. The
// caller's model is never mutated by sampler calls.
//
// Returns ErrNilModel on nil input.
func NewSampler(m *model.Model, opts ...SamplerOption) (*Sampler, error) {
	if m == nil {
		return nil, ErrNilModel
	}

	s := &Sampler{
		obs:   m.Clone(),
		noTie: m.Clone(),
	}
	s.noTie.Network().RemoveEdges()
	s.noTie.Calculate()

	for _, opt := range opts {
		opt(s)
	}
	if s.rng == nil {
		s.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if s.log == nil {
		s.log = logrus.New()
	}

	return s, nil
}

// Model returns the sampler's observed model.
func (s *Sampler) Model() *model.Model { return s.obs }

// SetThetas replaces θ on both held models.
// Returns model.ErrThetaLength on a length mismatch.
func (s *Sampler) SetThetas(thetas []float64) error {
	if err := s.obs.SetThetas(thetas); err != nil {
		return err
	}

	return s.noTie.SetThetas(thetas)
}

// sampleOrder draws a visitation order: respecting the model's partial
// vertex order when one is attached, uniform otherwise.
func (s *Sampler) sampleOrder() ([]int, error) {
	n := s.obs.Network().Size()
	if s.obs.HasVertexOrder() {
		return order.Generate(s.obs.VertexOrder(), n, s.rng)
	}

	return order.Generate(nil, n, s.rng)
}

// checkPermutation verifies vertOrder is a permutation of {0..n-1}.
func (s *Sampler) checkPermutation(vertOrder []int) error {
	n := s.obs.Network().Size()
	if len(vertOrder) != n {
		return fmt.Errorf("sampler: got %d order entries for %d vertices: %w",
			len(vertOrder), n, ErrPermLength)
	}

	seen := make([]bool, n)
	for _, v := range vertOrder {
		if v < 0 || v >= n {
			return fmt.Errorf("sampler: order entry %d: %w", v, ErrVertexRange)
		}
		if seen[v] {
			return fmt.Errorf("sampler: vertex %d repeated: %w", v, ErrNotPermutation)
		}
		seen[v] = true
	}

	return nil
}

// checkDyadList verifies heads/tails agree in length and every listed
// dyad has two distinct in-range endpoints.
func (s *Sampler) checkDyadList(heads, tails []int) error {
	if len(heads) != len(tails) {
		return fmt.Errorf("sampler: %d heads vs %d tails: %w",
			len(heads), len(tails), ErrPermLength)
	}

	n := s.obs.Network().Size()
	for i := range heads {
		if heads[i] < 0 || heads[i] >= n || tails[i] < 0 || tails[i] >= n {
			return fmt.Errorf("sampler: dyad %d (%d,%d): %w",
				i, tails[i], heads[i], ErrVertexRange)
		}
		if heads[i] == tails[i] {
			return fmt.Errorf("sampler: dyad %d is a self-pair on vertex %d: %w",
				i, heads[i], ErrVertexRange)
		}
	}

	return nil
}

// inversePermutation returns pos with pos[vertOrder[i]] = i, the O(1)
// actor-index lookup used by the edge-order modes.
func inversePermutation(vertOrder []int) []int {
	pos := make([]int, len(vertOrder))
	for i, v := range vertOrder {
		pos[v] = i
	}

	return pos
}

// logistic returns 1/(1+exp(-x)) using the numerically stable branch
// for each sign, with |x| clamped to llikClamp.
func logistic(x float64) float64 {
	if x > llikClamp {
		x = llikClamp
	} else if x < -llikClamp {
		x = -llikClamp
	}
	if x >= 0 {
		return 1 / (1 + math.Exp(-x))
	}
	e := math.Exp(x)

	return e / (1 + e)
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
