package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/scalar"
)

// Layer is a fixed-width stack of neurons sharing the same inputs.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates a layer of outputSize neurons, each taking inputSize
// inputs.
func NewLayer(inputSize, outputSize int, rng *rand.Rand) *Layer {
	neurons := make([]*Neuron, outputSize)
	for i := range neurons {
		neurons[i] = NewNeuron(inputSize, rng)
	}
	return &Layer{neurons: neurons}
}

// Forward feeds the inputs to every neuron and returns their outputs in
// neuron order.
func (l *Layer) Forward(inputs []*scalar.Value) []*scalar.Value {
	outputs := make([]*scalar.Value, len(l.neurons))
	for i, neuron := range l.neurons {
		outputs[i] = neuron.Forward(inputs)
	}
	return outputs
}

// Parameters returns the parameters of every neuron in the layer.
func (l *Layer) Parameters() []*Parameter {
	var params []*Parameter
	for _, neuron := range l.neurons {
		params = append(params, neuron.Parameters()...)
	}
	return params
}
