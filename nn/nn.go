// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"github.com/born-ml/flows/internal/nn"
	"github.com/born-ml/flows/internal/tensor"
)

// Module interface defines the common interface for all neural network modules.
type Module[B tensor.Backend] = nn.Module[B]

// Parameter represents a trainable parameter.
type Parameter[B tensor.Backend] = nn.Parameter[B]

// NewParameter creates a new parameter with the given name and tensor.
func NewParameter[B tensor.Backend](name string, t *tensor.Tensor[float32, B]) *Parameter[B] {
	return nn.NewParameter(name, t)
}

// Layers

// Linear represents a fully connected (dense) layer.
type Linear[B tensor.Backend] = nn.Linear[B]

// NewLinear creates a new linear layer with Xavier initialization.
//
// Example:
//
//	backend := cpu.New()
//	layer := nn.NewLinear(32, 8, backend)
func NewLinear[B tensor.Backend](inFeatures, outFeatures int, backend B) *Linear[B] {
	return nn.NewLinear(inFeatures, outFeatures, backend)
}

// DenseNN is a feed-forward conditioner network that maps a context
// vector to a tuple of output tensors with caller-chosen widths.
type DenseNN[B tensor.Backend] = nn.DenseNN[B]

// NewDenseNN creates a conditioner network with ReLU hidden layers and
// one output layer split into heads of widths paramDims.
//
// Example:
//
//	backend := cpu.New()
//	// Heads (x0, alphaPrime, betaPrime) for a radial transform over D=3.
//	net := nn.NewDenseNN(4, []int{30, 30}, []int{3, 1, 1}, backend)
func NewDenseNN[B tensor.Backend](contextDim int, hiddenDims, paramDims []int, backend B) *DenseNN[B] {
	return nn.NewDenseNN(contextDim, hiddenDims, paramDims, backend)
}

// Activations

// ReLU is a Rectified Linear Unit activation module.
type ReLU[B tensor.Backend] = nn.ReLU[B]

// NewReLU creates a new ReLU activation module.
func NewReLU[B tensor.Backend]() *ReLU[B] {
	return nn.NewReLU[B]()
}

// ReLUBackend is the optional backend capability ReLU dispatches to.
type ReLUBackend = nn.ReLUBackend

// Initialization

// Xavier initializes a tensor with Xavier/Glorot uniform values.
func Xavier[B tensor.Backend](fanIn, fanOut int, shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Xavier(fanIn, fanOut, shape, backend)
}

// Uniform initializes a tensor with values from U(-bound, bound).
func Uniform[B tensor.Backend](shape tensor.Shape, bound float32, backend B) *tensor.Tensor[float32, B] {
	return nn.Uniform(shape, bound, backend)
}

// Zeros initializes a tensor with zeros.
func Zeros[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Zeros(shape, backend)
}

// Ones initializes a tensor with ones.
func Ones[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Ones(shape, backend)
}

// Randn initializes a tensor with standard normal values.
func Randn[B tensor.Backend](shape tensor.Shape, backend B) *tensor.Tensor[float32, B] {
	return nn.Randn(shape, backend)
}
