// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neural network building blocks for conditioner
// networks and trainable transform parameters.
//
// # Overview
//
// This package contains:
//   - Parameter: trainable tensors with externally computed gradients
//   - Linear: fully connected layer with Xavier initialization
//   - ReLU: rectified linear activation
//   - DenseNN: feed-forward conditioner with multi-head output
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/flows/nn"
//	    "github.com/born-ml/flows/backend/cpu"
//	    "github.com/born-ml/flows/tensor"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Conditioner producing (x0, alphaPrime, betaPrime) for D=3.
//	    net := nn.NewDenseNN(4, []int{30, 30}, []int{3, 1, 1}, backend)
//
//	    context := tensor.Randn[float32](tensor.Shape{4}, backend)
//	    heads := net.Forward(context)
//	    _ = heads
//	}
package nn
