// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides a minimal feed-forward network built on the scalar
// autograd engine.
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/nn"
//	    "github.com/ember-ml/ember/scalar"
//	)
//
//	func main() {
//	    net := nn.NewNetwork(2, 4, 1)
//
//	    out := net.Forward([]*scalar.Value{scalar.New(1.0), scalar.New(2.0)})
//	    loss := out[0].Sub(scalar.New(3.0)).Squared()
//
//	    loss.ComputeGradients()
//	    for _, p := range net.Parameters() {
//	        p.Value().Learn(1e-4)
//	    }
//	}
package nn

import (
	"math/rand"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/scalar"
)

// Parameter represents a trainable scalar in a network.
type Parameter = nn.Parameter

// NewParameter creates a new trainable parameter.
func NewParameter(name string, value *scalar.Value) *Parameter {
	return nn.NewParameter(name, value)
}

// Neuron multiplies each input against a weight and adds a bias.
type Neuron = nn.Neuron

// NewNeuron creates a neuron taking the given number of inputs.
func NewNeuron(inputs int, rng *rand.Rand) *Neuron {
	return nn.NewNeuron(inputs, rng)
}

// Layer is a fixed-width stack of neurons sharing the same inputs.
type Layer = nn.Layer

// NewLayer creates a layer of outputSize neurons with inputSize inputs each.
func NewLayer(inputSize, outputSize int, rng *rand.Rand) *Layer {
	return nn.NewLayer(inputSize, outputSize, rng)
}

// Network chains layers into a feed-forward net.
type Network = nn.Network

// NewNetwork creates a network with the given layer widths, the first
// width being the input size.
//
// Example:
//
//	net := nn.NewNetwork(2, 4, 1) // 2 inputs, 4 hidden neurons, 1 output
func NewNetwork(layerSizes ...int) *Network {
	return nn.NewNetwork(layerSizes...)
}

// NewNetworkRand is NewNetwork with a caller-supplied source of
// randomness, for reproducible initialization.
func NewNetworkRand(rng *rand.Rand, layerSizes ...int) *Network {
	return nn.NewNetworkRand(rng, layerSizes...)
}
