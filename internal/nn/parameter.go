package nn

import (
	"github.com/ember-ml/ember/internal/scalar"
)

// Parameter represents a trainable scalar in a network.
//
// Parameters are the leaf nodes the optimizer mutates between iterations:
// weights and biases of neurons. The underlying *scalar.Value is shared
// with every expression built from it, so gradients computed on a loss
// land directly on the parameter.
//
// Example:
//
//	w := nn.NewParameter("weight.0", scalar.New(0.5))
//	out := w.Value().Mul(x)
//	out.ComputeGradients()
//	grad := w.Grad()
type Parameter struct {
	name  string
	value *scalar.Value
}

// NewParameter creates a new trainable parameter.
//
// Parameters:
//   - name: Descriptive name (e.g. "layer0.neuron1.weight.2")
//   - value: The initialized scalar node
func NewParameter(name string, value *scalar.Value) *Parameter {
	return &Parameter{
		name:  name,
		value: value,
	}
}

// Name returns the parameter name.
func (p *Parameter) Name() string {
	return p.name
}

// Value returns the underlying scalar node.
func (p *Parameter) Value() *scalar.Value {
	return p.value
}

// Data returns the parameter's current value.
func (p *Parameter) Data() float64 {
	return p.value.Data()
}

// Grad returns the gradient accumulated by the last backward pass.
func (p *Parameter) Grad() float64 {
	return p.value.Grad()
}

// ZeroGrad clears the parameter's gradient accumulator.
func (p *Parameter) ZeroGrad() {
	p.value.ZeroGrad()
}
