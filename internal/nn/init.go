package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/scalar"
)

// Uniform creates a leaf node drawn from the uniform distribution
// U(lo, hi).
//
// Weights and biases are initialized from U(-1, 1) by the network
// constructors.
func Uniform(rng *rand.Rand, lo, hi float64) *scalar.Value {
	//nolint:gosec // math/rand is fine for weight initialization (not security-critical)
	return scalar.New(lo + rng.Float64()*(hi-lo))
}
