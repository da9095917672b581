// SPDX-License-Identifier: MIT

// Package builder provides validation helpers for callers that resolve
// builder parameters from untrusted input (config files, CLI flags) and want
// errors instead of the option constructors' panics.
package builder

import "fmt"

// ValidateProbability enforces p ∈ [MinProbability, MaxProbability].
// Returns an error wrapping ErrInvalidProbability otherwise.
func ValidateProbability(name string, p float64) error {
	if !(p >= MinProbability && p <= MaxProbability) {
		return fmt.Errorf("%s=%g not in [%.1f,%.1f]: %w", name, p, MinProbability, MaxProbability, ErrInvalidProbability)
	}

	return nil
}

// ValidateRouterCount enforces n ≥ MinRandomRouters for RandomNetwork.
func ValidateRouterCount(n int) error {
	if n < MinRandomRouters {
		return fmt.Errorf("%s: n=%d < min=%d: %w", MethodRandomNetwork, n, MinRandomRouters, ErrTooFewRouters)
	}

	return nil
}
