package optim

import (
	"github.com/ember-ml/ember/internal/nn"
)

// SGD implements plain stochastic gradient descent.
//
// Update rule, applied to every parameter:
//
//	data = data - lr * gradient
//
// Example:
//
//	optimizer := optim.NewSGD(net.Parameters(), optim.SGDConfig{
//	    LR: 1e-4,
//	})
type SGD struct {
	params []*nn.Parameter
	lr     float64
}

// SGDConfig holds configuration for the SGD optimizer.
type SGDConfig struct {
	LR float64 // Learning rate (default: 0.01)
}

// NewSGD creates a new SGD optimizer over the given parameters.
func NewSGD(params []*nn.Parameter, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params: params,
		lr:     config.LR,
	}
}

// Step applies one gradient-descent update to every parameter.
func (s *SGD) Step() {
	for _, param := range s.params {
		param.Value().Learn(s.lr)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	for _, param := range s.params {
		param.ZeroGrad()
	}
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate. Useful for scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
