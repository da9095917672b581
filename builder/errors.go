// SPDX-License-Identifier: MIT
// Package: routesim/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy (explicit and strict):
//   • Only sentinel variables (package-level) are exposed.
//   • Callers MUST use errors.Is(err, ErrX) to branch on semantics.
//   • Implementations attach context using `%w`.
//   • Constructors MUST NOT panic at runtime; validation panics are confined to
//     option constructor functions (WithX...).

package builder

import "errors"

// ErrTooFewRouters indicates that a size parameter is smaller than the
// allowed minimum for the requested constructor.
var ErrTooFewRouters = errors.New("builder: parameter too small")

// ErrInvalidProbability indicates that a probability value is outside [0,1].
var ErrInvalidProbability = errors.New("builder: probability out of range")

// ErrNeedRandSource indicates that a stochastic constructor requires a non-nil
// *rand.Rand in the resolved builderConfig (WithSeed/WithRand must be set).
var ErrNeedRandSource = errors.New("builder: rng is required")

// ErrConstructFailed indicates that the builder could not construct a
// topology (e.g. a nil constructor was supplied).
var ErrConstructFailed = errors.New("builder: construction failed")

// ErrUnknownIDScheme indicates an ID scheme name that IDSchemeByName does not
// recognize, or a scheme that cannot label the requested router count.
var ErrUnknownIDScheme = errors.New("builder: unknown id scheme")
