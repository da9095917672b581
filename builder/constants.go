// SPDX-License-Identifier: MIT

// Package builder defines shared constants used by topology builders, ensuring
// consistent defaults and validation across all constructors.
package builder

//-----------------------------------------------------------------------------
// Builder Method Name Constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodPath is the canonical name for the Path constructor.
	MethodPath = "Path"
	// MethodCycle is the canonical name for the Cycle constructor.
	MethodCycle = "Cycle"
	// MethodStar is the canonical name for the Star constructor.
	MethodStar = "Star"
	// MethodRandomNetwork is the canonical name for the RandomNetwork constructor.
	MethodRandomNetwork = "RandomNetwork"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinPathRouters is the minimum router count for Path.
	MinPathRouters = 2
	// MinCycleRouters is the minimum router count for Cycle.
	MinCycleRouters = 3
	// MinStarRouters is the minimum router count for Star (hub + one leaf).
	MinStarRouters = 2
	// MinRandomRouters is the minimum router count for RandomNetwork.
	MinRandomRouters = 2
)

//-----------------------------------------------------------------------------
// Probability bounds
//-----------------------------------------------------------------------------

const (
	// MinProbability is the lowest admissible probability.
	MinProbability = 0.0
	// MaxProbability is the highest admissible probability.
	MaxProbability = 1.0
)
