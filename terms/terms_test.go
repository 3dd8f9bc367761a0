package terms_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lolog/core"
	"github.com/katalvlaran/lolog/model"
	"github.com/katalvlaran/lolog/order"
	"github.com/katalvlaran/lolog/terms"
)

// randomGraph grows a seeded Erdős–Rényi-style graph for slow-path
// delta comparisons.
func randomGraph(t *testing.T, n int, p float64, seed int64, opts ...core.GraphOption) *core.Graph {
	t.Helper()
	g, err := core.NewGraph(n, opts...)
	require.NoError(t, err)

	rng := order.NewRand(seed)
	for u := 0; u < n; u++ {
		for v := 0; v < n; v++ {
			if u == v || (!g.IsDirected() && u > v) {
				continue
			}
			if rng.Float64() < p {
				require.NoError(t, g.Toggle(u, v))
			}
		}
	}

	return g
}

// identityOrder returns [0..n-1].
func identityOrder(n int) []int {
	ord := make([]int, n)
	for i := range ord {
		ord[i] = i
	}

	return ord
}

// checkDeltaAgainstRecompute verifies, for every dyad of g, that the
// incremental value after DyadUpdate equals a from-scratch Initialize
// on the flipped graph, and that Rollback restores the original value.
// Valid only for order-independent terms.
func checkDeltaAgainstRecompute(t *testing.T, g *core.Graph, fresh func() model.Term) {
	t.Helper()
	ord := identityOrder(g.Size())

	term := fresh()
	term.Initialize(g)
	base := term.Value()

	for u := 0; u < g.Size(); u++ {
		for v := 0; v < g.Size(); v++ {
			if u == v || (!g.IsDirected() && u > v) {
				continue
			}

			term.DyadUpdate(u, v, ord, g.Size()-1)
			got := term.Value()

			require.NoError(t, g.Toggle(u, v))
			slow := fresh()
			slow.Initialize(g)
			assert.InDeltaf(t, slow.Value(), got, 1e-9,
				"dyad (%d,%d): incremental %v vs recomputed %v", u, v, got, slow.Value())
			require.NoError(t, g.Toggle(u, v))

			term.Rollback()
			assert.InDeltaf(t, base, term.Value(), 1e-9, "dyad (%d,%d): rollback drifted", u, v)
		}
	}
}

//----------------------------------------------------------------------------//
// Initialize values on known graphs
//----------------------------------------------------------------------------//

func TestInitialize_KnownValues(t *testing.T) {
	// K3 plus a pendant vertex 3 attached to 2.
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}, {2, 3}} {
		require.NoError(t, g.Toggle(e[0], e[1]))
	}
	require.NoError(t, g.SetContinuousAttribute("x", []float64{1, 2, 4, 8}))

	cases := []struct {
		term model.Term
		want float64
	}{
		{terms.NewEdges(), 4},
		{terms.NewTwoStar(), 5}, // degrees 2,2,3,1 → 1+1+3+0
		{terms.NewTriangles(), 1},
		{terms.NewNodeCov("x"), 26}, // (1+2)+(1+4)+(2+4)+(4+8)
	}
	for _, tc := range cases {
		tc.term.Initialize(g)
		assert.InDeltaf(t, tc.want, tc.term.Value(), 1e-12, "term %s", tc.term.Name())
	}
}

func TestInitialize_DirectedTriangles(t *testing.T) {
	g, err := core.NewGraph(3, core.WithDirected())
	require.NoError(t, err)
	// Transitive triad 0→1, 0→2, 1→2.
	for _, e := range [][2]int{{0, 1}, {0, 2}, {1, 2}} {
		require.NoError(t, g.Toggle(e[0], e[1]))
	}

	tri := terms.NewTriangles()
	tri.Initialize(g)
	assert.InDelta(t, 1.0, tri.Value(), 1e-12)

	// A 3-cycle 0→1→2→0 contains no transitive triad.
	cyc, err := core.NewGraph(3, core.WithDirected())
	require.NoError(t, err)
	for _, e := range [][2]int{{0, 1}, {1, 2}, {2, 0}} {
		require.NoError(t, cyc.Toggle(e[0], e[1]))
	}
	tri.Initialize(cyc)
	assert.InDelta(t, 0.0, tri.Value(), 1e-12)
}

//----------------------------------------------------------------------------//
// Incremental deltas vs slow-path recompute
//----------------------------------------------------------------------------//

func TestDelta_MatchesRecompute_Undirected(t *testing.T) {
	g := randomGraph(t, 9, 0.4, 17)
	require.NoError(t, g.SetContinuousAttribute("x", []float64{1, -2, 3, 0.5, -1, 2, 7, -0.25, 4}))

	cases := []struct {
		name  string
		fresh func() model.Term
	}{
		{"edges", func() model.Term { return terms.NewEdges() }},
		{"twoStar", func() model.Term { return terms.NewTwoStar() }},
		{"triangles", func() model.Term { return terms.NewTriangles() }},
		{"nodeCov", func() model.Term { return terms.NewNodeCov("x") }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkDeltaAgainstRecompute(t, g, tc.fresh)
		})
	}
}

func TestDelta_MatchesRecompute_Directed(t *testing.T) {
	g := randomGraph(t, 7, 0.35, 23, core.WithDirected())

	cases := []struct {
		name  string
		fresh func() model.Term
	}{
		{"edges", func() model.Term { return terms.NewEdges() }},
		{"twoStar", func() model.Term { return terms.NewTwoStar() }},
		{"triangles", func() model.Term { return terms.NewTriangles() }},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			checkDeltaAgainstRecompute(t, g, tc.fresh)
		})
	}
}

//----------------------------------------------------------------------------//
// Preferential attachment
//----------------------------------------------------------------------------//

func TestPreferentialAttachment_Deltas(t *testing.T) {
	g, err := core.NewGraph(4)
	require.NoError(t, err)
	require.NoError(t, g.Toggle(0, 1))
	ord := identityOrder(4)

	pa := terms.NewPreferentialAttachment()
	pa.Initialize(g)
	assert.Zero(t, pa.Value(), "accumulator must reset on Initialize")

	// Add toward alter 0 (degree 1) with one vertex placed: log(2/1).
	pa.DyadUpdate(2, 0, ord, 1)
	assert.InDelta(t, math.Log(2), pa.Value(), 1e-12)
	pa.Rollback()
	assert.Zero(t, pa.Value())

	// Remove (0,1): alter 1 has degree 1, two placed: -log(1/2) = log 2.
	pa.DyadUpdate(0, 1, ord, 2)
	assert.InDelta(t, math.Log(2), pa.Value(), 1e-12)
	pa.Rollback()

	// pos 0 clamps the denominator to 1.
	pa.DyadUpdate(2, 3, ord, 0)
	assert.InDelta(t, math.Log(1), pa.Value(), 1e-12)
}

func TestPreferentialAttachment_AddRemoveCancels(t *testing.T) {
	g, err := core.NewGraph(5)
	require.NoError(t, err)
	require.NoError(t, g.Toggle(0, 2))
	ord := identityOrder(5)

	pa := terms.NewPreferentialAttachment()
	pa.Initialize(g)

	// Commit an add, then propose removing the same edge at the same
	// position: the two deltas must cancel exactly.
	pa.DyadUpdate(3, 2, ord, 3)
	require.NoError(t, g.Toggle(3, 2))
	afterAdd := pa.Value()
	assert.InDelta(t, math.Log(2.0/3.0), afterAdd, 1e-12)

	pa.DyadUpdate(3, 2, ord, 3)
	assert.InDelta(t, 0.0, pa.Value(), 1e-12)
}

//----------------------------------------------------------------------------//
// Contract plumbing
//----------------------------------------------------------------------------//

func TestTermFlagsAndNames(t *testing.T) {
	cases := []struct {
		term      model.Term
		name      string
		dyadIndep bool
		ordIndep  bool
	}{
		{terms.NewEdges(), "edges", true, true},
		{terms.NewTwoStar(), "twoStar", false, true},
		{terms.NewTriangles(), "triangles", false, true},
		{terms.NewNodeCov("age"), "nodeCov.age", true, true},
		{terms.NewPreferentialAttachment(), "preferentialAttachment", false, false},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.name, tc.term.Name())
		assert.Equal(t, tc.dyadIndep, tc.term.IsDyadIndependent(), tc.name)
		assert.Equal(t, tc.ordIndep, tc.term.IsOrderIndependent(), tc.name)
	}
}

func TestNodeCov_Panics(t *testing.T) {
	assert.Panics(t, func() { terms.NewNodeCov("") })

	g, err := core.NewGraph(2)
	require.NoError(t, err)
	nc := terms.NewNodeCov("missing")
	assert.Panics(t, func() { nc.Initialize(g) })
}

func TestClone_IsolatedCaches(t *testing.T) {
	g, err := core.NewGraph(3)
	require.NoError(t, err)
	require.NoError(t, g.Toggle(0, 1))
	require.NoError(t, g.SetContinuousAttribute("x", []float64{1, 1, 1}))

	nc := terms.NewNodeCov("x")
	nc.Initialize(g)
	clone := nc.Clone()

	// Advancing the original proposal state must not leak into the clone.
	nc.DyadUpdate(1, 2, identityOrder(3), 2)
	assert.InDelta(t, 2.0, clone.Value(), 1e-12)
	assert.InDelta(t, 4.0, nc.Value(), 1e-12)
}
