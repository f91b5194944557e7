// Package nn provides a minimal feed-forward network built from scalar
// autograd nodes.
//
// Each neuron is one node-producing expression: the weighted sum of its
// inputs plus a bias. Layers stack neurons of the same width; Network
// chains layers. Every weight and bias is a Parameter sharing its node
// with the expressions built from it, so one ComputeGradients call on a
// loss fills in the gradient of every parameter.
package nn

import (
	"fmt"
	"math/rand"

	"github.com/ember-ml/ember/internal/scalar"
)

// Neuron multiplies each input against a weight and adds a bias:
//
//	out = w0*x0 + w1*x1 + ... + b
//
// Weights and bias are initialized from U(-1, 1).
type Neuron struct {
	weights []*Parameter
	bias    *Parameter
}

// NewNeuron creates a neuron taking the given number of inputs.
func NewNeuron(inputs int, rng *rand.Rand) *Neuron {
	weights := make([]*Parameter, inputs)
	for i := range weights {
		weights[i] = NewParameter(fmt.Sprintf("weight.%d", i), Uniform(rng, -1, 1))
	}

	return &Neuron{
		weights: weights,
		bias:    NewParameter("bias", Uniform(rng, -1, 1)),
	}
}

// Forward builds the neuron's output expression from the given inputs.
//
// Panics if the input width does not match the neuron's weight count.
func (n *Neuron) Forward(inputs []*scalar.Value) *scalar.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("Neuron.Forward: expected %d inputs, got %d", len(n.weights), len(inputs)))
	}

	sum := n.weights[0].Value().Mul(inputs[0])
	for i := 1; i < len(inputs); i++ {
		sum = sum.Add(n.weights[i].Value().Mul(inputs[i]))
	}

	return sum.Add(n.bias.Value())
}

// Parameters returns the neuron's weights followed by its bias.
func (n *Neuron) Parameters() []*Parameter {
	params := make([]*Parameter, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	params = append(params, n.bias)
	return params
}
