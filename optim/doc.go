// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training transform
// parameters.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Optimizer interface for custom optimizers
//
// Gradients are stored on nn.Parameter by whatever computes them (for
// example, numeric differentiation of a flow's training objective); the
// optimizer reads them and updates parameter tensors in place.
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/flows/backend/cpu"
//	    "github.com/born-ml/flows/flows"
//	    "github.com/born-ml/flows/optim"
//	)
//
//	func main() {
//	    backend := cpu.New()
//	    transform := flows.NewRadial(2, backend)
//
//	    sgd := optim.NewSGD(transform.Parameters(), optim.SGDConfig{LR: 0.05}, backend)
//
//	    for epoch := 0; epoch < 100; epoch++ {
//	        // ... compute gradients and SetGrad on each parameter ...
//	        sgd.Step()
//	        sgd.ZeroGrad()
//	    }
//	}
package optim
