// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package flows

import (
	"github.com/born-ml/flows/internal/flows"
	"github.com/born-ml/flows/internal/tensor"
)

// Constraint describes the support of a transform's domain or codomain.
type Constraint = flows.Constraint

// Supported constraints.
const (
	// Real means the whole real vector space.
	Real Constraint = flows.Real
)

// ErrNoCachedInverse is returned by transforms whose inverse has no
// analytic form.
var ErrNoCachedInverse = flows.ErrNoCachedInverse

// Transform is the bijector contract: forward map, inverse map and
// log-absolute-determinant of the Jacobian, plus support metadata.
type Transform[B tensor.Backend] = flows.Transform[B]

// ConditionalTransform resolves a concrete Transform from a context vector.
type ConditionalTransform[B tensor.Backend] = flows.ConditionalTransform[B]

// Conditioner maps a context tensor to radial parameters
// (x0, alphaPrime, betaPrime).
type Conditioner[B tensor.Backend] = flows.Conditioner[B]

// ConditionedRadial is a radial transform bound to concrete parameter
// values.
type ConditionedRadial[B tensor.Backend] = flows.ConditionedRadial[B]

// NewConditionedRadial creates a radial transform from concrete
// parameters. x0 has shape [..., D]; alphaPrime and betaPrime have
// shape [..., 1].
func NewConditionedRadial[B tensor.Backend](x0, alphaPrime, betaPrime *tensor.Tensor[float32, B]) *ConditionedRadial[B] {
	return flows.NewConditionedRadial(x0, alphaPrime, betaPrime)
}

// Radial is the trainable radial transform for a fixed input dimension.
//
// Example:
//
//	backend := cpu.New()
//	transform := flows.NewRadial(10, backend)
//
//	x := tensor.Randn[float32](tensor.Shape{64, 10}, backend)
//	y := transform.Forward(x)
//	logDet := transform.LogAbsDetJacobian(x, y)
type Radial[B tensor.Backend] = flows.Radial[B]

// NewRadial creates a trainable radial transform. Parameters are drawn
// from U(-1/sqrt(D), 1/sqrt(D)) and exposed through Parameters().
func NewRadial[B tensor.Backend](inputDim int, backend B) *Radial[B] {
	return flows.NewRadial(inputDim, backend)
}

// ConditionalRadial is a radial transform whose parameters are produced
// from a context vector by a conditioner network.
type ConditionalRadial[B tensor.Backend] = flows.ConditionalRadial[B]

// NewConditionalRadial wraps a hand-written conditioner function.
func NewConditionalRadial[B tensor.Backend](cond Conditioner[B]) *ConditionalRadial[B] {
	return flows.NewConditionalRadial(cond)
}

// NewConditionalRadialNN creates a conditional radial transform driven
// by a DenseNN conditioner with output heads (inputDim, 1, 1).
// hiddenDims defaults to [10*inputDim, 10*inputDim] when nil.
//
// Example:
//
//	backend := cpu.New()
//	cond := flows.NewConditionalRadialNN(3, 5, nil, backend)
//
//	context := tensor.Randn[float32](tensor.Shape{5}, backend)
//	transform := cond.Condition(context)
//	y := transform.Forward(x)
func NewConditionalRadialNN[B tensor.Backend](inputDim, contextDim int, hiddenDims []int, backend B) *ConditionalRadial[B] {
	return flows.NewConditionalRadialNN(inputDim, contextDim, hiddenDims, backend)
}
