// Package sampler implements the latent-order likelihood engine: the
// LOLOG simulator and model-frame producer.
//
// 🚀 What is a LOLOG?
//
//	A Latent Order Logistic model defines a distribution over graphs
//	via a sequential growth process: dyads are visited in a random
//	order consistent with an optional partial vertex ordering, and at
//	each step the presence of the dyad is drawn from a logistic
//	regression whose linear predictor is the change in θ·stats caused
//	by adding the edge.
//
// The Sampler owns two models: the observed model (reference graph)
// and a no-tie model (identical terms and θ on an emptied clone).
// Every simulation starts from a fresh clone of the no-tie model and
// grows it dyad by dyad, maintaining realized statistics, expected
// (Rao–Blackwellised) statistics, and optional per-dyad change
// vectors.
//
// ✨ Entry points:
//   - GenerateNetwork / GenerateNetworkReturnChanges /
//     GenerateNetworkWithOrder — node-sequential generation.
//   - GenerateNetworkUnconstrained / GenerateNetworkWithEdgeOrder —
//     edge-permutation generation, including the truncated variant.
//   - ModelFrameGivenOrder / ModelFrameGivenEdgeOrder and the
//     Variational* batch producers — (outcome, change-statistic) rows
//     consumed by an external estimator as logistic training data.
//   - CalcChangeStats — change vectors for a full dyad list, no
//     acceptance sampling.
//
// ⚙️ Usage:
//
//	m, _ := model.NewModel(g, []model.Term{terms.NewEdges()}, []float64{0})
//	s, _ := sampler.NewSampler(m, sampler.WithSeed(42))
//	res, err := s.GenerateNetwork(context.Background())
//
// Concurrency: a Sampler is single-threaded; each call owns its
// running model clone exclusively. For parallel workers create one
// Sampler per worker with independent RNG streams (order.DeriveRand).
// Long-running calls honor context cancellation between outer
// iterations of the growth loop.
package sampler
