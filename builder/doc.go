// SPDX-License-Identifier: MIT

// Package builder provides reusable “functional‐options”‐style constructors
// that populate a topology.Topology with routers and links.
//
// The package offers the following key components:
//
//   - Orchestration:
//     – BuildTopology:     new store + options + constructors in order.
//     – Apply:             the same against an existing store.
//   - Constructors:
//     – RandomNetwork(n):  connected random network with congestion/failures.
//     – Path(n), Cycle(n), Star(n): deterministic fixtures.
//   - Router-ID schemes (IDFn implementations):
//     – RouterIDFn:        "R1","R2",… (default).
//     – DecimalIDFn:       "0","1",….
//     – SymbolIDFn:        "A","B",….
//     – PrefixIDFn:        prefix + one-based index.
//   - Attribute distributions (WeightFn implementations):
//     – ConstantWeightFn, UniformIntFn, UniformWeightFn, ChoiceFn.
//
// Guarantees:
//
//   - Determinism: all randomness flows from the *rand.Rand given by WithSeed
//     or WithRand. The global math/rand source is never used.
//   - Fast‐fail on invalid option parameters via panics in option‐constructors.
//   - Constructors return wrapped sentinel errors and never panic.
package builder
