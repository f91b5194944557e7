// Package optim implements parameter-update strategies over the scalar
// autograd engine.
//
// The engine computes gradients; an Optimizer decides how to apply them.
// Only plain gradient descent is provided: the update step the engine
// defines is data -= lr * grad, with no per-parameter state.
//
// Example usage:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{LR: 1e-4})
//
//	for range iterations {
//	    loss := buildLoss(net)
//	    loss.ComputeGradients()
//	    optimizer.Step()
//	}
package optim

// Optimizer is the base interface for parameter-update strategies.
type Optimizer interface {
	// Step applies one gradient update to all parameters.
	//
	// Correctness requires ComputeGradients to have run on a loss built
	// from the parameters; without it, gradients default to 0 and Step
	// is a no-op.
	Step()

	// ZeroGrad clears all parameter gradient accumulators.
	//
	// ComputeGradients already resets every node it reaches, so this is
	// only needed to discard gradients between training phases.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}
