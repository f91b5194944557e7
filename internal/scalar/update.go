package scalar

// Learn moves v's data against its gradient, scaled by the learning rate:
//
//	data -= grad * learningRate
//
// This is one gradient-descent step. It only makes sense after
// ComputeGradients has run on some downstream root; calling it beforehand
// is not an error, it applies a zero-magnitude update because the gradient
// defaults to 0.
//
// Learn mutates only this node. Derived nodes computed from v keep the
// data they were constructed with; consumers rebuild the expression on the
// next iteration.
func (v *Value) Learn(learningRate float64) {
	v.data -= v.grad * learningRate
}

// ZeroGrad resets v's gradient accumulator to 0.
//
// ComputeGradients already resets every reachable node at the start of a
// pass, so this is only needed to clear a parameter's gradient outside of
// a pass (e.g. between training phases).
func (v *Value) ZeroGrad() {
	v.grad = 0
}
