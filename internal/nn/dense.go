package nn

import (
	"fmt"

	"github.com/born-ml/flows/internal/tensor"
)

// DenseNN is a feed-forward network that maps a context vector to a
// tuple of output tensors with caller-chosen widths.
//
// It is the standard conditioner for conditional transforms: a stack of
// Linear+ReLU hidden layers followed by one Linear output layer whose
// activations are split into heads of widths paramDims. For a radial
// transform the heads are (x0, alphaPrime, betaPrime) with widths
// (inputDim, 1, 1).
//
// Forward accepts a context of shape [context_dim] or
// [batch, context_dim]; each head keeps the context's batch shape.
type DenseNN[B tensor.Backend] struct {
	contextDim int
	paramDims  []int
	hidden     []*Linear[B]
	out        *Linear[B]
	relu       *ReLU[B]
}

// NewDenseNN creates a conditioner network.
//
// Parameters:
//   - contextDim: width of the context vector
//   - hiddenDims: widths of the hidden layers (at least one)
//   - paramDims: widths of the output heads
//   - backend: backend for parameter tensors
func NewDenseNN[B tensor.Backend](contextDim int, hiddenDims, paramDims []int, backend B) *DenseNN[B] {
	if contextDim <= 0 {
		panic(fmt.Sprintf("DenseNN: invalid context dim %d", contextDim))
	}
	if len(hiddenDims) == 0 {
		panic("DenseNN: at least one hidden layer is required")
	}
	if len(paramDims) == 0 {
		panic("DenseNN: at least one output head is required")
	}

	outDim := 0
	for i, d := range paramDims {
		if d <= 0 {
			panic(fmt.Sprintf("DenseNN: invalid width %d for head %d", d, i))
		}
		outDim += d
	}

	hidden := make([]*Linear[B], len(hiddenDims))
	in := contextDim
	for i, h := range hiddenDims {
		hidden[i] = NewLinear(in, h, backend)
		in = h
	}

	return &DenseNN[B]{
		contextDim: contextDim,
		paramDims:  append([]int(nil), paramDims...),
		hidden:     hidden,
		out:        NewLinear(in, outDim, backend),
		relu:       NewReLU[B](),
	}
}

// Forward runs the network and splits the final activations into heads.
//
// A 1D context [context_dim] yields heads of shape [width]; a batched
// context [batch, context_dim] yields heads of shape [batch, width].
func (n *DenseNN[B]) Forward(context *tensor.Tensor[float32, B]) []*tensor.Tensor[float32, B] {
	shape := context.Shape()

	batched := true
	h := context
	switch len(shape) {
	case 1:
		batched = false
		h = context.Reshape(1, shape[0])
	case 2:
	default:
		panic(fmt.Sprintf("DenseNN.Forward: expected 1D or 2D context, got shape %v", shape))
	}

	for _, l := range n.hidden {
		h = n.relu.Forward(l.Forward(h))
	}
	out := n.out.Forward(h)

	heads := make([]*tensor.Tensor[float32, B], len(n.paramDims))
	start := 0
	for i, width := range n.paramDims {
		head := out.Narrow(-1, start, width)
		if !batched {
			head = head.Squeeze(0)
		}
		heads[i] = head
		start += width
	}

	return heads
}

// Parameters returns the trainable parameters of all layers.
func (n *DenseNN[B]) Parameters() []*Parameter[B] {
	var params []*Parameter[B]
	for _, l := range n.hidden {
		params = append(params, l.Parameters()...)
	}
	params = append(params, n.out.Parameters()...)
	return params
}

// ContextDim returns the expected context width.
func (n *DenseNN[B]) ContextDim() int {
	return n.contextDim
}

// ParamDims returns the widths of the output heads.
func (n *DenseNN[B]) ParamDims() []int {
	return append([]int(nil), n.paramDims...)
}
