// Package builder assembles deterministic graph fixtures on top of core.
//
// It is used to produce graphs for tests, benchmarks and demos of the route
// searches: a handful of topologies, seeded randomness, and pluggable vertex
// ID and edge weight schemes.
//
// Components:
//
//   - BuildGraph(gopts, bopts, cons...): create a core.Graph and apply
//     Constructors in order.
//   - Constructors: Path(n), Cycle(n), Grid(rows, cols), RandomSparse(n, p).
//   - Options (BuilderOption): WithSeed, WithRand, WithIDScheme, WithWeightFn,
//     plus shorthands WithPrefixIDs, WithLetterIDs, WithConstantWeight,
//     WithUniformWeight.
//   - ID schemes (IDFn): DefaultIDFn, LetterIDFn, PrefixIDFn.
//   - Weight schemes (WeightFn): DefaultWeightFn, ConstantWeightFn, UniformWeightFn.
//
// Guarantees:
//
//   - Same options, seed and constructor order ⇒ identical graph.
//   - Option constructors panic on meaningless values; Constructors return
//     sentinel errors (ErrTooFewVertices, ErrInvalidProbability,
//     ErrNeedRandSource, ErrConstructFailed) wrapped with method context.
package builder
