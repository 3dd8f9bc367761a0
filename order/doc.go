// Package order samples vertex visitation orders for LOLOG simulation.
//
// A visitation order is a permutation of {0..n-1}. When a partial
// vertex order π is supplied, the sampled permutation respects it:
// vertices with smaller π keys always precede vertices with larger
// keys, and ties are broken uniformly at random. This is implemented
// as a rank-with-random-ties transform followed by an argsort on the
// integer ranks, which is preferred over rejection-sampling
// topological orders.
//
// The package also exposes the partial Fisher–Yates shuffle used by
// the sampler's growth loop and deterministic RNG helpers for
// reproducible runs and independent worker streams.
//
// All randomness flows through an explicit *rand.Rand; no hidden
// global sources.
package order
