// Copyright 2025 Ember ML. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package scalar provides the public API of the Ember scalar autograd
// engine.
//
// The engine builds a DAG of arithmetic operations over single
// floating-point values and computes exact derivatives of any resulting
// value with respect to every value that contributed to it, via
// reverse-mode differentiation.
//
// Example:
//
//	x := scalar.New(2.0)
//	y := scalar.New(3.0)
//
//	out := scalar.Add(scalar.Mul(x, y), scalar.New(4.0))
//	scalar.ComputeGradients(out)
//
//	fmt.Println(scalar.Grad(x)) // 3.0
//	fmt.Println(scalar.Grad(y)) // 2.0
//
// The method form is equivalent: x.Mul(y).Add(scalar.New(4.0)).
package scalar

import (
	"github.com/ember-ml/ember/internal/scalar"
)

// Value is a scalar node in the operation graph.
type Value = scalar.Value

// Op identifies the operation that produced a Value.
type Op = scalar.Op

// Operation tags.
const (
	OpNone Op = scalar.OpNone
	OpAdd  Op = scalar.OpAdd
	OpMul  Op = scalar.OpMul
	OpPow  Op = scalar.OpPow
	OpRelu Op = scalar.OpRelu
)

// New creates a leaf node from a constant.
func New(x float64) *Value {
	return scalar.New(x)
}

// Add returns a new node holding a + b.
func Add(a, b *Value) *Value {
	return a.Add(b)
}

// Sub returns a new node holding a - b, expanded as a + b*(-1).
func Sub(a, b *Value) *Value {
	return a.Sub(b)
}

// Mul returns a new node holding a * b.
func Mul(a, b *Value) *Value {
	return a.Mul(b)
}

// Pow returns a new node holding base raised to exponent. The exponent
// operand is treated as non-differentiable.
func Pow(base, exponent *Value) *Value {
	return base.Pow(exponent)
}

// Squared returns a new node holding v².
func Squared(v *Value) *Value {
	return v.Squared()
}

// Relu returns a new node holding max(0, v).
func Relu(v *Value) *Value {
	return v.Relu()
}

// Data returns the node's current value.
func Data(v *Value) float64 {
	return v.Data()
}

// Grad returns the derivative accumulated by the last ComputeGradients
// pass.
func Grad(v *Value) float64 {
	return v.Grad()
}

// ComputeGradients computes the derivative of root with respect to every
// node that contributed to it.
func ComputeGradients(root *Value) {
	root.ComputeGradients()
}

// Learn applies one gradient-descent step: data -= grad * learningRate.
func Learn(v *Value, learningRate float64) {
	v.Learn(learningRate)
}

// Dump prints the data and gradient of v and every node reachable from
// it. Debug only.
func Dump(v *Value) {
	v.Dump()
}
