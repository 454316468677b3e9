// Package builder provides deterministic generators of common topologies
// (Path, Cycle, Star, Grid, Complete, RandomSparse) as *graph.CSR values,
// for tests, benchmarks, examples and the command-line tool.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildGraph:        applies Constructors in order to one graph.Builder.
//     – Constructor:       a closure adding one node block and its relationships.
//   - Configuration primitives:
//     – BuilderOption:     a function that mutates builderConfig before use.
//     – WithSeed/WithRand: RNG for stochastic constructors.
//   - Relationship-weight distributions (WeightFn implementations):
//     – DefaultWeightFn:   constant weight DefaultEdgeWeight.
//     – ConstantWeightFn:  fixed user-provided value (may be negative).
//     – UniformWeightFn:   uniform ∼U[min,max).
//     – IntegerWeightFn:   uniform integers in [min,max].
//
// Guarantees:
//
//   - Determinism: same constructors, options and seed ⇒ identical graphs.
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Constructors return sentinel errors wrapped with method context and
//     never panic.
//
// Example:
//
//	g, err := builder.BuildGraph(
//	    []graph.Option{graph.WithWeighted()},
//	    []builder.BuilderOption{builder.WithSeed(7), builder.WithIntegerWeight(-2, 10)},
//	    builder.RandomSparse(1000, 0.01),
//	)
package builder
