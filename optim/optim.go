// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides parameter-update strategies for training.
//
// # Basic Usage
//
//	import (
//	    "github.com/ember-ml/ember/nn"
//	    "github.com/ember-ml/ember/optim"
//	)
//
//	func main() {
//	    net := nn.NewNetwork(2, 1)
//	    optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 1e-4})
//
//	    for i := 0; i < 1000; i++ {
//	        loss := buildLoss(net)
//	        loss.ComputeGradients()
//	        optimizer.Step()
//	    }
//	}
package optim

import (
	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
)

// Optimizer is the base interface for parameter-update strategies.
type Optimizer = optim.Optimizer

// SGD implements plain stochastic gradient descent.
type SGD = optim.SGD

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over the given parameters.
//
// Example:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR: 1e-4,
//	})
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	return optim.NewSGD(params, config)
}
