package scalar

import "math"

// ComputeGradients computes the derivative of v with respect to every node
// that contributed to it, walking the operation graph from v toward the
// leaves.
//
// Algorithm:
//  1. Reset the gradient of every node reachable from v to 0.
//  2. Seed v's gradient with 1 (derivative of v with respect to itself).
//  3. Descend recursively: each node pushes a contribution into each
//     operand's gradient according to its operation's local derivative
//     rule, scaled by the node's own gradient (chain rule), then recurses.
//
// Contributions accumulate with +=, so a node shared by several derived
// nodes ends up with the sum of the contributions from every path that
// reaches it. The walk revisits shared subtrees once per referencing
// parent; revisits redo work but cannot double-count, because each descent
// only distributes the parent's own gradient.
//
// Repeated calls on the same root with no intervening data mutation are
// idempotent. The pass always runs to completion; the graph is acyclic by
// construction, so termination needs no runtime check.
func (v *Value) ComputeGradients() {
	v.clearGradients()
	v.grad = 1.0
	v.propagate()
}

// clearGradients zeroes the gradient of every node reachable from v.
// Shared nodes are visited once per referencing parent; setting 0
// repeatedly is harmless.
func (v *Value) clearGradients() {
	v.grad = 0
	for _, operand := range v.operands {
		operand.clearGradients()
	}
}

// propagate applies v's local derivative rule to its operands, then
// recurses into each operand.
func (v *Value) propagate() {
	switch v.op {
	case OpAdd:
		// d(a+b)/da = d(a+b)/db = 1: the gradient flows unchanged
		// to both operands.
		for _, operand := range v.operands {
			operand.grad += v.grad
		}

	case OpMul:
		// d(a*b)/da = b, d(a*b)/db = a: each operand receives the
		// gradient scaled by the other operand's data.
		lhs, rhs := v.operands[0], v.operands[1]
		lhs.grad += rhs.data * v.grad
		rhs.grad += lhs.data * v.grad

	case OpPow:
		// d(b^e)/db = e * b^(e-1). The exponent operand never
		// receives a contribution.
		base, exponent := v.operands[0], v.operands[1]
		base.grad += exponent.data * math.Pow(base.data, exponent.data-1.0) * v.grad

	case OpRelu:
		// d(relu(x))/dx = 1 if x > 0, else 0.
		operand := v.operands[0]
		if operand.data > 0 {
			operand.grad += v.grad
		}

	case OpNone:
		// Leaf: nothing to distribute.
	}

	for _, operand := range v.operands {
		operand.propagate()
	}
}
