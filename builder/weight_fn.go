// SPDX-License-Identifier: MIT
// Package: sssp/builder
//
// weight_fn.go - relationship weight distributions.
//
// Weights may be negative (Bellman-Ford handles them) but are always finite;
// constructors for distributions panic on NaN/±Inf parameters.

package builder

import (
	"fmt"
	"math"
	"math/rand"
)

// DefaultEdgeWeight is the default weight assigned to each relationship when
// no custom WeightFn is provided.
const DefaultEdgeWeight float64 = 1

// WeightFn produces a relationship weight given an optional *rand.Rand source.
// It must be deterministic for a given RNG seed.
type WeightFn func(rng *rand.Rand) float64

// DefaultWeightFn always returns the constant DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand) float64 {
	return DefaultEdgeWeight
}

// ConstantWeightFn returns a WeightFn that always yields value.
// Panics if value is NaN or ±Inf.
func ConstantWeightFn(value float64) WeightFn {
	if !finite(value) {
		panic(fmt.Sprintf("ConstantWeightFn: value must be finite, got %g", value))
	}

	return func(_ *rand.Rand) float64 {
		return value
	}
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max).
// Panics if a bound is not finite or max < min.
// If rng is nil, yields min to maintain a deterministic fallback.
func UniformWeightFn(min, max float64) WeightFn {
	if !finite(min) || !finite(max) || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require finite min ≤ max, got min=%g, max=%g", min, max))
	}

	return func(rng *rand.Rand) float64 {
		if rng == nil || max == min {
			return min
		}

		return min + rng.Float64()*(max-min)
	}
}

// IntegerWeightFn returns a WeightFn sampling integers uniformly in [min, max].
// Sums of such weights are exact in float64 up to 2^53. Panics if max < min.
// If rng is nil, yields min.
func IntegerWeightFn(min, max int64) WeightFn {
	if max < min {
		panic(fmt.Sprintf("IntegerWeightFn: require min ≤ max, got min=%d, max=%d", min, max))
	}
	span := max - min + 1

	return func(rng *rand.Rand) float64 {
		if rng == nil || span == 1 {
			return float64(min)
		}

		return float64(min + rng.Int63n(span))
	}
}

// WithConstantWeight sets a fixed relationship weight via ConstantWeightFn.
func WithConstantWeight(w float64) BuilderOption {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight sets weights ∼ U[min,max) via UniformWeightFn.
func WithUniformWeight(min, max float64) BuilderOption {
	return WithWeightFn(UniformWeightFn(min, max))
}

// WithIntegerWeight sets integer weights uniform in [min,max] via IntegerWeightFn.
func WithIntegerWeight(min, max int64) BuilderOption {
	return WithWeightFn(IntegerWeightFn(min, max))
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}
