// Package builder provides producers for tensor.Tensor: the code path that
// element-assembly loops use to accumulate contributions before handing the
// tensor over to the reordering operations.
//
// The package offers two entry points:
//
//   - Builder[T]: an incremental accumulator. Each Add appends one entry
//     (coefficient + one coordinate per axis). Coordinates are kept in one
//     column per axis, so Build emits the axis-major layout with a single
//     concatenation and no transposition.
//   - RandomSparse: a seeded generator of random coordinate tensors for
//     tests, examples and benchmarks.
//
// Configuration follows the functional-options style:
//
//   - Option:        a function that mutates builderConfig before use.
//   - WithSeed / WithRand select the RNG; WithValueFn the coefficient draw.
//
// Guarantees:
//
//   - Fast-fail on invalid option parameters via panics in option constructors.
//   - Runtime errors are sentinel-based (errors.Is), wrapped with the method name.
//   - Nothing is appended by a failing Add; Build never returns an invalid tensor.
//   - RandomSparse is deterministic for a fixed seed and argument list.
package builder
