// Package builder_test contains unit tests for the WeightFn implementations
// in the builder package, covering both correct behavior and panic conditions.
package builder_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/sssp/builder"
)

// TestWeightFnConstructors verifies that WeightFn constructors panic
// on invalid parameters according to their documented contracts.
func TestWeightFnConstructors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		constructor func() builder.WeightFn
	}{
		{"ConstantWeightFn_NaN", func() builder.WeightFn { return builder.ConstantWeightFn(math.NaN()) }},
		{"ConstantWeightFn_Inf", func() builder.WeightFn { return builder.ConstantWeightFn(math.Inf(-1)) }},
		{"UniformWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.UniformWeightFn(5, 4) }},
		{"UniformWeightFn_infiniteMax", func() builder.WeightFn { return builder.UniformWeightFn(0, math.Inf(1)) }},
		{"IntegerWeightFn_maxLessThanMin", func() builder.WeightFn { return builder.IntegerWeightFn(3, 2) }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Panics(t, func() { tc.constructor() })
		})
	}

	require.Panics(t, func() { builder.WithWeightFn(nil) })
	require.Panics(t, func() { builder.WithRand(nil) })
}

// TestWeightFnBehavior covers the runtime behavior of each WeightFn.
func TestWeightFnBehavior(t *testing.T) {
	t.Parallel()

	rng := rand.New(rand.NewSource(42))

	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(nil))
	require.Equal(t, builder.DefaultEdgeWeight, builder.DefaultWeightFn(rng))

	// Negative constants are allowed.
	require.Equal(t, -2.5, builder.ConstantWeightFn(-2.5)(rng))

	uni := builder.UniformWeightFn(-3, 4)
	require.Equal(t, -3.0, uni(nil))
	for i := 0; i < 1000; i++ {
		w := uni(rng)
		require.GreaterOrEqual(t, w, -3.0)
		require.Less(t, w, 4.0)
	}
	require.Equal(t, 2.0, builder.UniformWeightFn(2, 2)(rng))

	ints := builder.IntegerWeightFn(-1, 1)
	require.Equal(t, -1.0, ints(nil))
	seen := map[float64]bool{}
	for i := 0; i < 1000; i++ {
		w := ints(rng)
		require.Equal(t, math.Trunc(w), w)
		require.GreaterOrEqual(t, w, -1.0)
		require.LessOrEqual(t, w, 1.0)
		seen[w] = true
	}
	require.Len(t, seen, 3)
}
