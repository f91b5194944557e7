package optim_test

import (
	"testing"

	"github.com/ember-ml/ember/internal/nn"
	"github.com/ember-ml/ember/internal/optim"
	"github.com/ember-ml/ember/internal/scalar"
)

// Helper to check float equality with tolerance.
func floatEqual(a, b, eps float64) bool {
	diff := a - b
	if diff < 0 {
		diff = -diff
	}
	return diff < eps
}

// TestSGD_SimpleUpdate tests one gradient-descent step.
func TestSGD_SimpleUpdate(t *testing.T) {
	x := scalar.New(2.0)
	param := nn.NewParameter("x", x)

	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	// loss = 3x, so dloss/dx = 3
	loss := x.Mul(scalar.New(3.0))
	loss.ComputeGradients()

	optimizer.Step()

	// Expected: x_new = 2.0 - 0.1 * 3.0 = 1.7
	if !floatEqual(param.Data(), 1.7, 1e-12) {
		t.Errorf("SGD update: got %f, want 1.7", param.Data())
	}
}

// TestSGD_StepWithoutBackward tests that Step before any backward pass
// leaves parameters untouched (gradients default to 0).
func TestSGD_StepWithoutBackward(t *testing.T) {
	param := nn.NewParameter("x", scalar.New(2.0))
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.5})

	optimizer.Step()

	if param.Data() != 2.0 {
		t.Errorf("Step without backward moved the parameter: got %f, want 2.0", param.Data())
	}
}

// TestSGD_DefaultLR tests that a zero LR falls back to the default.
func TestSGD_DefaultLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})

	if optimizer.GetLR() != 0.01 {
		t.Errorf("GetLR() = %f, want default 0.01", optimizer.GetLR())
	}
}

// TestSGD_SetLR tests learning-rate scheduling.
func TestSGD_SetLR(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{LR: 0.1})

	optimizer.SetLR(0.001)

	if optimizer.GetLR() != 0.001 {
		t.Errorf("GetLR() = %f, want 0.001 after SetLR", optimizer.GetLR())
	}
}

// TestSGD_ZeroGrad tests that ZeroGrad clears parameter accumulators.
func TestSGD_ZeroGrad(t *testing.T) {
	x := scalar.New(3.0)
	param := nn.NewParameter("x", x)
	optimizer := optim.NewSGD([]*nn.Parameter{param}, optim.SGDConfig{LR: 0.1})

	x.Mul(x).ComputeGradients()
	if param.Grad() == 0 {
		t.Fatal("expected a nonzero gradient after backward")
	}

	optimizer.ZeroGrad()

	if param.Grad() != 0 {
		t.Errorf("Grad() = %f, want 0 after ZeroGrad", param.Grad())
	}
}

// TestOptimizerInterface verifies SGD satisfies the Optimizer interface.
func TestOptimizerInterface(_ *testing.T) {
	var _ optim.Optimizer = (*optim.SGD)(nil)
}
