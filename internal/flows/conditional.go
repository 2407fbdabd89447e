package flows

import (
	"github.com/born-ml/flows/internal/nn"
	"github.com/born-ml/flows/internal/tensor"
)

// Conditioner maps a context tensor of shape [..., C] to concrete radial
// parameters: x0 of shape [..., D], alphaPrime and betaPrime of shape
// [..., 1].
type Conditioner[B tensor.Backend] func(context *tensor.Tensor[float32, B]) (x0, alphaPrime, betaPrime *tensor.Tensor[float32, B])

// ConditionalRadial is a radial transform whose parameters are produced
// from a context vector by a conditioner, typically a DenseNN. The
// wrapper holds no numeric state of its own: every Condition call asks
// the conditioner for fresh parameter tensors and returns a new
// ConditionedRadial with its own independent one-entry cache. Nothing
// is cached across contexts.
type ConditionalRadial[B tensor.Backend] struct {
	cond   Conditioner[B]
	params []*nn.Parameter[B]
}

// NewConditionalRadial wraps an existing conditioner function.
//
// Transforms produced by the result are not trainable through
// Parameters() unless the conditioner's parameters are registered some
// other way; use NewConditionalRadialNN for the standard trainable
// setup.
func NewConditionalRadial[B tensor.Backend](cond Conditioner[B]) *ConditionalRadial[B] {
	return &ConditionalRadial[B]{cond: cond}
}

// NewConditionalRadialNN creates a conditional radial transform driven
// by a DenseNN conditioner with output heads (inputDim, 1, 1).
//
// hiddenDims defaults to [10*inputDim, 10*inputDim] when nil.
func NewConditionalRadialNN[B tensor.Backend](inputDim, contextDim int, hiddenDims []int, backend B) *ConditionalRadial[B] {
	if hiddenDims == nil {
		hiddenDims = []int{inputDim * 10, inputDim * 10}
	}

	net := nn.NewDenseNN(contextDim, hiddenDims, []int{inputDim, 1, 1}, backend)

	cond := func(context *tensor.Tensor[float32, B]) (x0, alphaPrime, betaPrime *tensor.Tensor[float32, B]) {
		heads := net.Forward(context)
		return heads[0], heads[1], heads[2]
	}

	return &ConditionalRadial[B]{
		cond:   cond,
		params: net.Parameters(),
	}
}

// Domain returns the support of valid inputs: all reals.
func (t *ConditionalRadial[B]) Domain() Constraint { return Real }

// Codomain returns the support of outputs: all reals.
func (t *ConditionalRadial[B]) Codomain() Constraint { return Real }

// Bijective reports true for every produced transform.
func (t *ConditionalRadial[B]) Bijective() bool { return true }

// EventDim returns 1: produced transforms operate on whole trailing vectors.
func (t *ConditionalRadial[B]) EventDim() int { return 1 }

// Condition resolves the context into a concrete radial transform.
func (t *ConditionalRadial[B]) Condition(context *tensor.Tensor[float32, B]) Transform[B] {
	x0, alphaPrime, betaPrime := t.cond(context)
	return NewConditionedRadial(x0, alphaPrime, betaPrime)
}

// Parameters returns the conditioner's trainable parameters, or nil for
// a hand-supplied conditioner function.
func (t *ConditionalRadial[B]) Parameters() []*nn.Parameter[B] {
	return t.params
}
