package nn

import (
	"fmt"
	"io"
	"math/rand"

	"github.com/ember-ml/ember/internal/scalar"
)

// Network chains layers: each layer's outputs become the next layer's
// inputs.
//
// Example:
//
//	net := nn.NewNetwork(2, 4, 1)        // 2 inputs, 4 hidden, 1 output
//	out := net.Forward([]*scalar.Value{x0, x1})
//	loss := out[0].Sub(target).Squared()
//	loss.ComputeGradients()
type Network struct {
	layers []*Layer
}

// NewNetwork creates a network with the given layer widths, the first
// width being the input size. Weights are drawn from U(-1, 1).
//
// Panics if fewer than two widths are given.
func NewNetwork(layerSizes ...int) *Network {
	//nolint:gosec // math/rand is fine for weight initialization
	return NewNetworkRand(rand.New(rand.NewSource(rand.Int63())), layerSizes...)
}

// NewNetworkRand is NewNetwork with a caller-supplied source of
// randomness, for reproducible initialization in tests.
func NewNetworkRand(rng *rand.Rand, layerSizes ...int) *Network {
	if len(layerSizes) < 2 {
		panic(fmt.Sprintf("NewNetwork: need at least an input and an output width, got %v", layerSizes))
	}

	layers := make([]*Layer, len(layerSizes)-1)
	for i := range layers {
		layers[i] = NewLayer(layerSizes[i], layerSizes[i+1], rng)
	}
	return &Network{layers: layers}
}

// Forward runs the inputs through every layer and returns the outputs of
// the last one. Each call builds a fresh expression graph over the shared
// parameter nodes.
func (n *Network) Forward(inputs []*scalar.Value) []*scalar.Value {
	outputs := inputs
	for _, layer := range n.layers {
		outputs = layer.Forward(outputs)
	}
	return outputs
}

// Parameters returns every trainable parameter of every layer, for the
// optimizer.
func (n *Network) Parameters() []*Parameter {
	var params []*Parameter
	for _, layer := range n.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// Dump writes the weights and bias of every neuron, one layer at a time.
// Debug only.
func (n *Network) Dump(w io.Writer) {
	for _, layer := range n.layers {
		fmt.Fprintln(w, "layer")
		for _, neuron := range layer.neurons {
			ws := make([]float64, len(neuron.weights))
			for i, weight := range neuron.weights {
				ws[i] = weight.Data()
			}
			fmt.Fprintf(w, "w=%v, b=%v\n", ws, neuron.bias.Data())
		}
	}
}
