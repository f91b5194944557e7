package optim_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/scalar"
)

// TestTraining_LinearModel trains predicted = w*x + b on a single pair
// with a small fixed learning rate and checks the overall loss trend.
// Per-step monotonic decrease is not guaranteed by the engine; the mean
// loss over iterations must end up well below the untrained loss.
func TestTraining_LinearModel(t *testing.T) {
	w := nn.NewParameter("w", scalar.New(0.5))
	b := nn.NewParameter("b", scalar.New(0.0))
	optimizer := optim.NewSGD([]*nn.Parameter{w, b}, optim.SGDConfig{LR: 1e-4})

	// Target relationship: y = 2x, sampled at x = 3.
	buildLoss := func() *scalar.Value {
		x := scalar.New(3.0)
		target := scalar.New(6.0)
		predicted := w.Value().Mul(x).Add(b.Value())
		return predicted.Sub(target).Squared()
	}

	initial := buildLoss().Data()
	require.Greater(t, initial, 0.0)

	var total float64
	const iterations = 1000
	for i := 0; i < iterations; i++ {
		loss := buildLoss()
		total += loss.Data()
		loss.ComputeGradients()
		optimizer.Step()
	}

	final := buildLoss().Data()
	mean := total / iterations

	assert.Less(t, final, initial, "training did not reduce the loss")
	assert.Less(t, mean, initial, "mean loss over training did not trend below the starting loss")
	assert.Less(t, final, initial/10, "loss reduction too small for 1000 iterations")
}

// TestTraining_NetworkLearnsAddition trains a 2→1 network to add its
// inputs, mirroring the reference training program at a smaller scale.
func TestTraining_NetworkLearnsAddition(t *testing.T) {
	net := nn.NewNetworkRand(rand.New(rand.NewSource(42)), 2, 1)
	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 1e-4})

	inputs := [][2]float64{{5, 5}, {4, 3}, {10, 3}, {-15, 3}, {-5, 3}}
	targets := []float64{10, 7, 13, -12, -2}

	buildLoss := func() *scalar.Value {
		var squareError *scalar.Value
		for i, pair := range inputs {
			predicted := net.Forward([]*scalar.Value{
				scalar.New(pair[0]),
				scalar.New(pair[1]),
			})[0]
			diff := predicted.Sub(scalar.New(targets[i])).Squared()
			if squareError == nil {
				squareError = diff
			} else {
				squareError = squareError.Add(diff)
			}
		}
		return squareError.Mul(scalar.New(1.0 / float64(len(inputs))))
	}

	initial := buildLoss().Data()
	for i := 0; i < 1000; i++ {
		loss := buildLoss()
		loss.ComputeGradients()
		optimizer.Step()
	}
	final := buildLoss().Data()

	assert.Less(t, final, initial)
}
