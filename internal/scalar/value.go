// Package scalar implements reverse-mode automatic differentiation over
// single floating-point values.
//
// Every operation builds a node in a directed acyclic graph: the node holds
// the operation's result (computed eagerly at construction), a gradient
// accumulator, and references to the operand nodes it was derived from.
// Calling ComputeGradients on any node walks the graph backwards and fills
// in the derivative of that node with respect to every node that
// contributed to it.
//
// Architecture:
//   - Value: one graph node (data, gradient, operation tag, operand edges)
//   - Operations: Add, Sub, Mul, Pow, Squared, Relu extend the graph
//   - ComputeGradients: reset, seed, then chain-rule descent
//   - Learn: one gradient-descent step on a node's data
//
// Usage:
//
//	x := scalar.New(2.0)
//	y := scalar.New(3.0)
//	z := scalar.New(4.0)
//
//	out := x.Mul(y).Add(z)
//	out.ComputeGradients()
//
//	fmt.Println(x.Grad()) // 3.0
//	fmt.Println(y.Grad()) // 2.0
//	fmt.Println(z.Grad()) // 1.0
package scalar

import "math"

// Op identifies the operation that produced a Value.
type Op int

// Operation tags. OpNone marks a leaf (a constant or a trainable
// parameter); all other tags fix both the arity and the meaning of the
// node's operand list.
const (
	OpNone Op = iota
	OpAdd
	OpMul
	OpPow
	OpRelu
)

// Value is a scalar node in the operation graph.
//
// A Value remembers how it was produced: the operation tag and the operand
// nodes consumed to compute it. The same Value may appear as an operand of
// arbitrarily many derived nodes, so the graph is a DAG rather than a tree.
// Cycles cannot occur because every operation consumes only nodes that
// already exist.
//
// The operation tag and operand list are fixed at construction. A derived
// node's data is computed once, from its operands' data at that instant; it
// is never recomputed if an operand is later mutated by Learn. Consumers
// that mutate parameters rebuild the expression each iteration.
type Value struct {
	data     float64
	grad     float64
	op       Op
	operands []*Value
}

// New creates a leaf node from a constant.
func New(x float64) *Value {
	return &Value{data: x}
}

// Data returns the node's current value.
func (v *Value) Data() float64 {
	return v.data
}

// Grad returns the derivative accumulated by the last ComputeGradients
// pass, or 0 if no pass has reached this node yet.
func (v *Value) Grad() float64 {
	return v.grad
}

// Operation returns the tag of the operation that produced this node.
// Leaves report OpNone.
func (v *Value) Operation() Op {
	return v.op
}

// Add returns a new node holding v + other.
//
// Backward rule: d(a+b)/da = d(a+b)/db = 1, so the output gradient flows
// unchanged to both operands.
func (v *Value) Add(other *Value) *Value {
	return &Value{
		data:     v.data + other.data,
		op:       OpAdd,
		operands: []*Value{v, other},
	}
}

// Sub returns a new node holding v - other.
//
// Sub is not a primitive: it expands to v + (other * -1), introducing two
// hidden nodes (the -1 constant and the negated operand) into the graph.
// Gradients flow through the expansion by the ordinary Add and Mul rules.
func (v *Value) Sub(other *Value) *Value {
	return v.Add(other.Mul(New(-1.0)))
}

// Mul returns a new node holding v * other.
//
// Backward rule: d(a*b)/da = b and d(a*b)/db = a, so each operand receives
// the output gradient scaled by the other operand's data.
func (v *Value) Mul(other *Value) *Value {
	return &Value{
		data:     v.data * other.data,
		op:       OpMul,
		operands: []*Value{v, other},
	}
}

// Pow returns a new node holding v raised to the given exponent, using
// real exponentiation. A negative base with a fractional exponent yields
// NaN, which propagates through the graph untouched.
//
// Backward rule: d(b^e)/db = e * b^(e-1). The exponent operand is treated
// as non-differentiable and never receives a gradient contribution;
// exponents are literal constants in practice.
func (v *Value) Pow(exponent *Value) *Value {
	return &Value{
		data:     math.Pow(v.data, exponent.data),
		op:       OpPow,
		operands: []*Value{v, exponent},
	}
}

// Squared returns a new node holding v². Shorthand for Pow with a hidden
// constant-2 exponent node.
func (v *Value) Squared() *Value {
	return v.Pow(New(2.0))
}

// Relu returns a new node holding max(0, v).
//
// Backward rule: the output gradient flows to the operand when its data is
// strictly positive; the subgradient at exactly 0 is 0.
func (v *Value) Relu() *Value {
	return &Value{
		data:     math.Max(0, v.data),
		op:       OpRelu,
		operands: []*Value{v},
	}
}
