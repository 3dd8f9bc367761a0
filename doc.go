// Package lolog is an in-memory engine for fitting and simulating
// Latent Order Logistic (LOLOG) models of random graphs.
//
// 🚀 What is a LOLOG?
//
//	A LOLOG defines a distribution over graphs via a sequential growth
//	process: dyads (potential edges) are visited in a random order
//	consistent with an optional partial vertex ordering, and each
//	dyad's presence is drawn from a logistic regression whose linear
//	predictor is the change in θ·statistics caused by adding the edge.
//	Inference recovers θ from an observed graph, typically by method
//	of moments against simulated networks.
//
// ✨ What the module provides:
//   - Simulation of networks from a parameterized LOLOG, in
//     node-sequential and edge-permutation (truncated) modes
//   - Model frames — (outcome, change-statistic) rows consumed by an
//     external estimator as logistic training data
//   - A reversible incremental statistics engine with a small term
//     library, including order-dependent statistics
//
// Under the hood, everything is organized into five subpackages:
//
//	core/    — mutable simple graph: toggle, neighbors, attributes, clone
//	order/   — visitation-order sampling: ranks with random ties,
//	           partial Fisher–Yates, deterministic RNG streams
//	model/   — the Term contract and the Model (graph + terms + θ)
//	terms/   — edges, twoStar, triangles, nodeCov, preferentialAttachment
//	sampler/ — the latent-order likelihood engine: generation and
//	           model-frame production
//
// Quick start:
//
//	g, _ := core.NewGraph(30)
//	m, _ := model.NewModel(g,
//	    []model.Term{terms.NewEdges(), terms.NewTriangles()},
//	    []float64{-2.0, 0.5})
//	s, _ := sampler.NewSampler(m, sampler.WithSeed(42))
//	res, _ := s.GenerateNetwork(context.Background())
//	frames, _ := s.VariationalModelFrame(context.Background(), 10, 1.0)
//
// The engine is single-threaded per call; for parallel simulation
// create one Sampler per worker with order.DeriveRand streams.
package lolog
